package api

import (
	"errors"
	"net/http"

	"github.com/yourorg/shoplist/internal/apperrors"
)

func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var notFoundErr *apperrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		NotFound(w, r, err, err.Error())
		return
	}

	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		BadRequest(w, r, err, codeValidation, validationErr.Message, validationErr.Field)
		return
	}

	InternalError(w, r, err)
}
