package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/minibook-dev/minibook/internal/errs"
)

// errorResponse is the standard error payload for the API.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Row   int    `json:"row,omitempty"`
	Field string `json:"field,omitempty"`
}

// toJSON writes a JSON response with status code.
func toJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, resp errorResponse) {
	toJSON(w, status, resp)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeErr(w, http.StatusBadRequest, errorResponse{Error: msg, Code: "invalid_json"})
}

// mapDeriveError picks the status and payload for a failed derivation.
// Malformed input is the caller's fault; anything else is an engine defect.
func mapDeriveError(err error) (int, errorResponse) {
	resp := errorResponse{Error: err.Error(), Code: errs.Kind(err)}
	var me *errs.MalformedError
	if errors.As(err, &me) {
		resp.Row = me.Row
		resp.Field = me.Field
		return http.StatusUnprocessableEntity, resp
	}
	if resp.Code == "" {
		resp.Code = "internal"
	}
	return http.StatusInternalServerError, resp
}
