package universityerrors

import (
	"net/http"

	"go-booking/internal/shared/apperror"
)

var (
	ErrUniversityNotFound = apperror.New(
		apperror.CodeNotFound,
		"university not found",
		http.StatusNotFound,
	)
	ErrInvalidUniversityID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid university id",
		http.StatusBadRequest,
	)
	ErrUniversityAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"university with the same code and name already exists",
		http.StatusConflict,
	)
	ErrUniversityNotDeleted = apperror.New(
		apperror.CodePersistenceFailed,
		"university not deleted",
		http.StatusInternalServerError,
	)
)
