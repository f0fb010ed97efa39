package educationerrors

import (
	"net/http"

	"go-booking/internal/shared/apperror"
)

var (
	ErrEducationNotFound = apperror.New(
		apperror.CodeNotFound,
		"education not found",
		http.StatusNotFound,
	)
	ErrInvalidEducationID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid education id",
		http.StatusBadRequest,
	)
	ErrEducationNotDeleted = apperror.New(
		apperror.CodePersistenceFailed,
		"education not deleted",
		http.StatusInternalServerError,
	)
)
