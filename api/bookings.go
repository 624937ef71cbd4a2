package api

import (
	"context"
	"net/http"

	"github.com/Domenick1991/airdesk/internal/desk"
	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/Domenick1991/airdesk/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingDesk interface {
	Itinerary() desk.ItineraryView
	BookFlight(ctx context.Context, input booking.CreateBookingInput) (*domain.Booking, error)
	CancelBooking(ctx context.Context, id string) (*domain.Booking, error)
	SetBookingStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
}

type BookingHandler struct {
	desk BookingDesk
}

type setStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func NewBookingHandler(d BookingDesk) *BookingHandler {
	return &BookingHandler{desk: d}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("/itinerary", h.itinerary)
	router.POST("/bookings", h.create)
	router.PUT("/bookings/:id/status", h.setStatus)
	router.DELETE("/bookings/:id", h.cancel)
}

func (h *BookingHandler) itinerary(c *gin.Context) {
	c.JSON(http.StatusOK, h.desk.Itinerary())
}

func (h *BookingHandler) create(c *gin.Context) {
	var req booking.CreateBookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.desk.BookFlight(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) setStatus(c *gin.Context) {
	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		writeError(c, err)
		return
	}

	b, err := h.desk.SetBookingStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) cancel(c *gin.Context) {
	b, err := h.desk.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
