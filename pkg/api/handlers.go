package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"table_reservations/pkg/reservation"
)

type Handler struct {
	svc    *reservation.Service
	logger *slog.Logger
}

func NewHandler(svc *reservation.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

// adminRequest is the body of every admin call; the password travels with
// each request since there is no session.
type adminRequest struct {
	Password string `json:"password"`
}

func (h *Handler) CreateReservation(c *gin.Context) {
	var request reservation.CreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.svc.Create(c.Request.Context(), request)
	if err != nil {
		h.writeServiceError(c, err, "failed to create reservation")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "reservation created",
		"id":      created.ID,
	})
}

func (h *Handler) AdminLogin(c *gin.Context) {
	var request adminRequest
	// an unreadable body carries no password and fails the check below
	_ = c.ShouldBindJSON(&request)

	if err := h.svc.Login(c.Request.Context(), request.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "login successful"})
}

func (h *Handler) ListReservations(c *gin.Context) {
	var request adminRequest
	_ = c.ShouldBindJSON(&request)

	reservations, err := h.svc.List(c.Request.Context(), request.Password)
	if err != nil {
		h.writeServiceError(c, err, "failed to fetch reservations")
		return
	}
	c.JSON(http.StatusOK, reservations)
}

func (h *Handler) DeleteReservation(c *gin.Context) {
	var request adminRequest
	_ = c.ShouldBindJSON(&request)

	if err := h.svc.Delete(c.Request.Context(), request.Password, c.Param("id")); err != nil {
		h.writeServiceError(c, err, "failed to delete reservation")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reservation deleted"})
}

func (h *Handler) HealthCheck(c *gin.Context) {
	if err := h.svc.Healthy(c.Request.Context()); err != nil {
		h.logger.ErrorContext(c.Request.Context(), "health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "DOWN",
			"details": "Database ping failed",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}

// writeServiceError maps the reservation error taxonomy to a status code.
// Storage failures are logged with their cause and answered with
// storageMessage only.
func (h *Handler) writeServiceError(c *gin.Context, err error, storageMessage string) {
	var (
		validationErr *reservation.ValidationError
		authErr       *reservation.AuthError
		notFoundErr   *reservation.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &authErr):
		c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
	default:
		h.logger.ErrorContext(c.Request.Context(), storageMessage,
			"error", err, "request_id", c.GetString(requestIDKey))
		c.JSON(http.StatusInternalServerError, gin.H{"error": storageMessage})
	}
}
