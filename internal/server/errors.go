package server

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/hemicycle/pkg/errors"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code errors.Code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  string(code),
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"INTERNAL_ERROR"}`))
		return
	}
	_, _ = w.Write(payload)
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeMalformedRecord,
		errors.ErrCodeInvalidSeatCount,
		errors.ErrCodeInvalidColor,
		errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeCapacityExceeded:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeErr reports err as JSON. Errors without a known code are hidden
// behind a generic message.
func writeErr(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusFor(code)
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	writeError(w, status, code, msg)
}
