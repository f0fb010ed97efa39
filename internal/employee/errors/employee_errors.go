package employeeerrors

import (
	"net/http"

	"go-booking/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"employee email already registered",
		http.StatusConflict,
	)
	ErrNikAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"employee nik already issued",
		http.StatusConflict,
	)
	ErrPhoneAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"employee phone number already registered",
		http.StatusConflict,
	)
	ErrEmployeeNotUpdated = apperror.New(
		apperror.CodePersistenceFailed,
		"employee not updated",
		http.StatusInternalServerError,
	)
	ErrEmployeeNotDeleted = apperror.New(
		apperror.CodePersistenceFailed,
		"employee not deleted",
		http.StatusInternalServerError,
	)
)
