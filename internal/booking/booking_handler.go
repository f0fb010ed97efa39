package booking

import (
	"net/http"

	bookingerrors "go-booking/internal/booking/errors"
	"go-booking/internal/shared/apperror"
	"go-booking/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("booking.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("booking.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("booking request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByGuid(c *gin.Context) {
	resp, err := h.service.GetByGuid(c.Request.Context(), c.Param("guid"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("guid"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("guid")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) GetDetails(c *gin.Context) {
	resp, err := h.service.BookingsDetail(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if resp == nil {
		h.writeServiceError(c, bookingerrors.ErrNoBookingData)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetDetailByGuid(c *gin.Context) {
	resp, err := h.service.BookingDetail(c.Request.Context(), c.Param("guid"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetToday(c *gin.Context) {
	resp, err := h.service.BookingToday(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if resp == nil {
		h.writeServiceError(c, bookingerrors.ErrNoBookingData)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetDuration(c *gin.Context) {
	resp, err := h.service.BookingDuration(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if resp == nil {
		h.writeServiceError(c, bookingerrors.ErrNoBookingData)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
