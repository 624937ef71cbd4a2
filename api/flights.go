package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/Domenick1991/airdesk/internal/desk"
	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/Domenick1991/airdesk/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightDesk interface {
	Schedule() desk.ScheduleView
	PassengersByKind() []desk.KindGroup
	Announcements() []desk.Announcement
	Broadcast(ctx context.Context, announcements []desk.Announcement) ([]desk.BroadcastResult, error)
	AddFlight(input flights.CreateFlightInput) (*domain.Flight, error)
	Flight(number string) (*domain.Flight, error)
}

type FlightHandler struct {
	desk FlightDesk
}

type flightResponse struct {
	*domain.Flight
	Fare      float64  `json:"fare"`
	Observers []string `json:"observers"`
}

type notifyRequest struct {
	Announcements []desk.Announcement `json:"announcements"`
}

type notifyResponse struct {
	Results []desk.BroadcastResult `json:"results"`
	Error   string                 `json:"error,omitempty"`
}

func NewFlightHandler(d FlightDesk) *FlightHandler {
	return &FlightHandler{desk: d}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/schedule", h.schedule)
	router.GET("/flights/:number", h.get)
	router.POST("/flights", h.create)
	router.GET("/flights/passengers", h.passengersByKind)
	router.POST("/notifications", h.notify)
}

func newFlightResponse(f *domain.Flight) flightResponse {
	return flightResponse{Flight: f, Fare: f.Fare(), Observers: f.Observers()}
}

func (h *FlightHandler) schedule(c *gin.Context) {
	c.JSON(http.StatusOK, h.desk.Schedule())
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.desk.Flight(c.Param("number"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newFlightResponse(flight))
}

func (h *FlightHandler) create(c *gin.Context) {
	var req flights.CreateFlightInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	flight, err := h.desk.AddFlight(req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newFlightResponse(flight))
}

func (h *FlightHandler) passengersByKind(c *gin.Context) {
	c.JSON(http.StatusOK, h.desk.PassengersByKind())
}

// notify broadcasts the posted announcements, or the session's own when the
// body carries none.
func (h *FlightHandler) notify(c *gin.Context) {
	var req notifyRequest
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if len(req.Announcements) == 0 {
		req.Announcements = h.desk.Announcements()
	}

	results, err := h.desk.Broadcast(c.Request.Context(), req.Announcements)
	resp := notifyResponse{Results: results}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}
