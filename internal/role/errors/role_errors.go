package roleerrors

import (
	"net/http"

	"go-booking/internal/shared/apperror"
)

var (
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"role not found",
		http.StatusNotFound,
	)
	ErrInvalidRoleID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid role id",
		http.StatusBadRequest,
	)
	ErrRoleAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"role name already exists",
		http.StatusConflict,
	)
	ErrRoleNotDeleted = apperror.New(
		apperror.CodePersistenceFailed,
		"role not deleted",
		http.StatusInternalServerError,
	)
)
