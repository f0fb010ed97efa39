package accounterrors

import (
	"net/http"

	"go-booking/internal/shared/apperror"
)

var (
	ErrAccountNotFound = apperror.New(
		apperror.CodeNotFound,
		"account not found",
		http.StatusNotFound,
	)
	ErrInvalidAccountID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid account id",
		http.StatusBadRequest,
	)
	ErrEmailNotRegistered = apperror.New(
		apperror.CodeNotFound,
		"email is not registered",
		http.StatusNotFound,
	)
	ErrInvalidCredential = apperror.New(
		apperror.CodeUnauthorized,
		"email or password is incorrect",
		http.StatusUnauthorized,
	)
	ErrPasswordMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"password and confirmation do not match",
		http.StatusBadRequest,
	)
	ErrOtpMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"otp does not match",
		http.StatusBadRequest,
	)
	ErrOtpAlreadyUsed = apperror.New(
		apperror.CodeAlreadyUsed,
		"otp has already been used",
		http.StatusBadRequest,
	)
	ErrOtpExpired = apperror.New(
		apperror.CodeExpired,
		"otp has expired",
		http.StatusBadRequest,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"token is invalid",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeExpired,
		"token has expired",
		http.StatusUnauthorized,
	)
	ErrTokenGeneration = apperror.New(
		apperror.CodeInternalError,
		"failed to generate token",
		http.StatusInternalServerError,
	)
	ErrAccountAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"account already exists for this employee",
		http.StatusConflict,
	)
	ErrAccountNotUpdated = apperror.New(
		apperror.CodePersistenceFailed,
		"account not updated",
		http.StatusInternalServerError,
	)
	ErrAccountNotDeleted = apperror.New(
		apperror.CodePersistenceFailed,
		"account not deleted",
		http.StatusInternalServerError,
	)
)
