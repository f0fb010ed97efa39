package roomerrors

import (
	"net/http"

	"go-booking/internal/shared/apperror"
)

var (
	ErrRoomNotFound = apperror.New(
		apperror.CodeNotFound,
		"room not found",
		http.StatusNotFound,
	)
	ErrInvalidRoomID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid room id",
		http.StatusBadRequest,
	)
	ErrRoomAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"room name already exists",
		http.StatusConflict,
	)
	ErrRoomNotDeleted = apperror.New(
		apperror.CodePersistenceFailed,
		"room not deleted",
		http.StatusInternalServerError,
	)
)
