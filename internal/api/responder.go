package api

import (
	"encoding/json"
	"net/http"

	"github.com/nhalm/canonlog"
)

const (
	codeInvalidBody    = "invalid_body"
	codeValidation     = "validation_failed"
	codeNotFound       = "resource_missing"
	codeInternal       = "internal_error"
	internalErrMessage = "An internal error occurred"
)

func renderJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func renderError(w http.ResponseWriter, r *http.Request, statusCode int, err error, code, message, param string) {
	canonlog.AddRequestError(r.Context(), err)
	if statusCode >= 500 {
		message = internalErrMessage
	}
	renderJSON(w, statusCode, NewErrorResponse(statusCode, code, message, param))
}

func Success(w http.ResponseWriter, data any) {
	renderJSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	renderJSON(w, http.StatusCreated, data)
}

func List(w http.ResponseWriter, data any, count int) {
	renderJSON(w, http.StatusOK, NewListResponse(data, count))
}

func BadRequest(w http.ResponseWriter, r *http.Request, err error, code, message, param string) {
	renderError(w, r, http.StatusBadRequest, err, code, message, param)
}

func NotFound(w http.ResponseWriter, r *http.Request, err error, message string) {
	renderError(w, r, http.StatusNotFound, err, codeNotFound, message, "")
}

func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	renderError(w, r, http.StatusInternalServerError, err, codeInternal, internalErrMessage, "")
}
