package bookingerrors

import (
	"net/http"

	"go-booking/internal/shared/apperror"
)

var (
	ErrBookingNotFound = apperror.New(
		apperror.CodeNotFound,
		"booking not found",
		http.StatusNotFound,
	)
	// Laporan mengembalikan nil saat belum ada booking sama sekali;
	// di boundary HTTP itu berarti 404, bukan 200 dengan data null.
	ErrNoBookingData = apperror.New(
		apperror.CodeNotFound,
		"data not found",
		http.StatusNotFound,
	)
	ErrInvalidBookingID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid booking id",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"booking status is invalid",
		http.StatusBadRequest,
	)
	ErrBookingNotUpdated = apperror.New(
		apperror.CodePersistenceFailed,
		"booking not updated",
		http.StatusInternalServerError,
	)
	ErrBookingNotDeleted = apperror.New(
		apperror.CodePersistenceFailed,
		"booking not deleted",
		http.StatusInternalServerError,
	)
)
