package api

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/vocdoni/personnummer/api/apicommon"
	"github.com/vocdoni/personnummer/errors"
)

// authenticator is a middleware that authenticates the API client from the
// JWT token. If successful, it decodes the client identifier from the token
// claims, adds it to the request context and passes the request to the next
// handler.
func (a *API) authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			errors.ErrUnauthorized.Write(w)
			return
		}
		if token == nil || jwt.Validate(token, jwt.WithRequiredClaim("clientId")) != nil {
			errors.ErrUnauthorized.Withf("clientId claim not found in JWT token").Write(w)
			return
		}
		// retrieve the client identifier from the claims
		clientID, ok := claims["clientId"].(string)
		if !ok || clientID == "" {
			errors.ErrUnauthorized.Withf("clientId claim not found in JWT token").Write(w)
			return
		}
		// add the client to the context and pass the request through
		ctx := context.WithValue(r.Context(), apicommon.ClientMetadataKey, clientID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
