package api

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/vocdoni/personnummer/api/apicommon"
)

// buildLoginResponse creates a JWT token for the given client identifier.
// The token is signed with the API secret, following the JWT specification.
// The token is valid for the period specified on jwtExpiration constant.
func (a *API) buildLoginResponse(id string) (*apicommon.LoginResponse, error) {
	j := jwt.New()
	if err := j.Set("clientId", id); err != nil {
		return nil, err
	}
	if err := j.Set(jwt.JwtIDKey, uuid.New().String()); err != nil {
		return nil, err
	}
	expirity := time.Now().Add(jwtExpiration)
	if err := j.Set(jwt.ExpirationKey, expirity); err != nil {
		return nil, err
	}
	lr := apicommon.LoginResponse{}
	lr.Expirity = expirity
	jmap, err := j.AsMap(context.Background())
	if err != nil {
		return nil, err
	}
	_, lr.Token, _ = a.auth.Encode(jmap)
	return &lr, nil
}
