package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vocdoni/personnummer/api/apicommon"
	"github.com/vocdoni/personnummer/errors"
	"github.com/vocdoni/personnummer/internal"
	"github.com/vocdoni/personnummer/personnummer"
)

// checkPersonnummerHandler godoc
// @Summary Check a personal number
// @Description Check whether a Swedish personal number is valid in any of the accepted layouts
// @Tags personnummer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body apicommon.CheckRequest true "Personal number to check"
// @Success 200 {object} apicommon.CheckResponse
// @Failure 400 {object} errors.Error
// @Failure 401 {object} errors.Error
// @Router /personnummer/check [post]
func (a *API) checkPersonnummerHandler(w http.ResponseWriter, r *http.Request) {
	// get the personal number from the request body
	checkReq := &apicommon.CheckRequest{}
	if err := json.NewDecoder(r.Body).Decode(checkReq); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}
	// check the personal number and report the result back, an invalid number
	// is a regular answer here and not an error
	valid := personnummer.IsValid(checkReq.Number)
	if valid {
		a.metrics.IncrementValidationAccepted()
	} else {
		a.metrics.IncrementValidationRejected()
	}
	apicommon.HTTPWriteJSON(w, &apicommon.CheckResponse{Valid: valid})
}

// validatePersonnummerHandler godoc
// @Summary Validate a personal number
// @Description Validate a Swedish personal number and echo it back unchanged
// @Tags personnummer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body apicommon.ValidateRequest true "Personal number to validate"
// @Success 200 {object} apicommon.ValidateResponse
// @Failure 400 {object} errors.Error
// @Failure 401 {object} errors.Error
// @Router /personnummer/validate [post]
func (a *API) validatePersonnummerHandler(w http.ResponseWriter, r *http.Request) {
	// get the personal number from the request body
	validateReq := &apicommon.ValidateRequest{}
	if err := json.NewDecoder(r.Body).Decode(validateReq); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}
	// validate the personal number
	number, err := personnummer.Validate(validateReq.Number)
	if err != nil {
		a.metrics.IncrementValidationRejected()
		errors.ErrInvalidSSN.Write(w)
		return
	}
	a.metrics.IncrementValidationAccepted()
	// echo the validated number back to the client
	apicommon.HTTPWriteJSON(w, &apicommon.ValidateResponse{Number: number})
}

// normalizePersonnummerHandler godoc
// @Summary Normalize a personal number
// @Description Normalize a Swedish personal number to its 12-digit canonical form
// @Tags personnummer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body apicommon.NormalizeRequest true "Personal number to normalize with an optional reference date"
// @Success 200 {object} apicommon.NormalizeResponse
// @Failure 400 {object} errors.Error
// @Failure 401 {object} errors.Error
// @Router /personnummer/normalize [post]
func (a *API) normalizePersonnummerHandler(w http.ResponseWriter, r *http.Request) {
	// get the personal number and the optional reference date from the request body
	normalizeReq := &apicommon.NormalizeRequest{}
	if err := json.NewDecoder(r.Body).Decode(normalizeReq); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}
	// resolve the reference date, defaulting to today
	refDate := time.Now().UTC()
	refDateStr := refDate.Format(time.DateOnly)
	if normalizeReq.ReferenceDate != "" {
		parsed, normalized, err := internal.ParseReferenceDate(normalizeReq.ReferenceDate)
		if err != nil {
			errors.ErrMalformedReferenceDate.WithErr(err).Write(w)
			return
		}
		refDate = parsed
		refDateStr = normalized
	}
	// normalize the personal number to its canonical form
	normalized, err := personnummer.Normalize(refDate, normalizeReq.Number)
	if err != nil {
		a.metrics.IncrementNormalizationRejected()
		errors.ErrInvalidSSN.Write(w)
		return
	}
	a.metrics.IncrementNormalizationAccepted()
	apicommon.HTTPWriteJSON(w, &apicommon.NormalizeResponse{
		Normalized:    normalized,
		ReferenceDate: refDateStr,
	})
}
