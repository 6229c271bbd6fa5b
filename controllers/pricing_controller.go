package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"ebaypricing/apperr"
	"ebaypricing/models"
)

const (
	errMethodNotAllowed = "Method not allowed"
	errFetchFailed      = "Failed to fetch eBay data"
)

// PricingHandler resolves a product keyword and relays eBay sold listings for it
func (c *Controller) PricingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		c.writeLookupError(w, r, apperr.New(apperr.KindMethodNotAllowed, errMethodNotAllowed))
		return
	}

	req, err := decodePricingRequest(r.Body)
	if err != nil {
		c.writeLookupError(w, r, fmt.Errorf("invalid request body: %w", err))
		return
	}

	result, err := c.pricing.Lookup(r.Context(), req)
	if err != nil {
		c.writeLookupError(w, r, err)
		return
	}

	setCORSHeaders(w)
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	writeJSON(w, http.StatusOK, result.Document)
}

// decodePricingRequest requires the whole body to be a single JSON object
func decodePricingRequest(body io.Reader) (models.PricingRequest, error) {
	var req models.PricingRequest

	data, err := io.ReadAll(body)
	if err != nil {
		return req, err
	}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return req, errors.New("body is null")
	}
	if err := json.Unmarshal(data, &req); err != nil {
		return req, err
	}

	return req, nil
}

// writeLookupError renders client errors with their own status and everything
// else as the generic 500 payload
func (c *Controller) writeLookupError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) && appErr.HTTPStatus() < http.StatusInternalServerError {
		writeJSON(w, appErr.HTTPStatus(), models.ErrorResponse{
			Error:   appErr.Message,
			Message: appErr.Detail,
		})
		return
	}

	zerolog.Ctx(r.Context()).Error().Err(err).Msg("Error calling eBay API")

	setCORSHeaders(w)
	writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
		Error:   errFetchFailed,
		Message: err.Error(),
	})
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
