package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/vocdoni/personnummer/api/apicommon"
	"github.com/vocdoni/personnummer/errors"
)

// authTokenHandler godoc
// @Summary Get a JWT token
// @Description Authenticate an API client with the shared secret and get a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body apicommon.TokenRequest true "Client credentials"
// @Success 200 {object} apicommon.LoginResponse
// @Failure 400 {object} errors.Error
// @Failure 401 {object} errors.Error
// @Router /auth/token [post]
func (a *API) authTokenHandler(w http.ResponseWriter, r *http.Request) {
	// get the client credentials from the request body
	tokenReq := &apicommon.TokenRequest{}
	if err := json.NewDecoder(r.Body).Decode(tokenReq); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}
	if tokenReq.ClientID == "" {
		errors.ErrMalformedBody.Withf("clientId is required").Write(w)
		return
	}
	// check the shared secret in constant time
	if subtle.ConstantTimeCompare([]byte(tokenReq.Secret), []byte(a.secret)) != 1 {
		errors.ErrUnauthorized.Write(w)
		return
	}
	// generate a new token with the client identifier as the subject
	res, err := a.buildLoginResponse(tokenReq.ClientID)
	if err != nil {
		errors.ErrGenericInternalServerError.Write(w)
		return
	}
	a.metrics.IncrementTokensIssued()
	// send the token back to the client
	apicommon.HTTPWriteJSON(w, res)
}

// refreshTokenHandler godoc
// @Summary Refresh JWT token
// @Description Refresh the JWT token for an authenticated API client
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} apicommon.LoginResponse
// @Failure 401 {object} errors.Error
// @Router /auth/refresh [post]
func (a *API) refreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	// get the client from the request context
	clientID, ok := apicommon.ClientFromContext(r.Context())
	if !ok {
		errors.ErrUnauthorized.Write(w)
		return
	}
	// generate a new token with the client identifier as the subject
	res, err := a.buildLoginResponse(clientID)
	if err != nil {
		errors.ErrGenericInternalServerError.Write(w)
		return
	}
	a.metrics.IncrementTokensIssued()
	// send the token back to the client
	apicommon.HTTPWriteJSON(w, res)
}
