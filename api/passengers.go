package api

import (
	"net/http"

	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/Domenick1991/airdesk/internal/service/passengers"
	"github.com/gin-gonic/gin"
)

type PassengerDesk interface {
	RegisterPassenger(input passengers.RegisterPassengerInput) (*domain.Passenger, error)
	Passenger(passport string) (*domain.Passenger, error)
	ModifyPassenger(passport string, field passengers.Field, value string) (*domain.Passenger, error)
}

type PassengerHandler struct {
	desk PassengerDesk
}

type modifyPassengerRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

func NewPassengerHandler(d PassengerDesk) *PassengerHandler {
	return &PassengerHandler{desk: d}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("/:passport", h.get)
	router.PATCH("/:passport", h.modify)
}

func (h *PassengerHandler) create(c *gin.Context) {
	var req passengers.RegisterPassengerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	passenger, err := h.desk.RegisterPassenger(req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, passenger)
}

func (h *PassengerHandler) get(c *gin.Context) {
	passenger, err := h.desk.Passenger(c.Param("passport"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, passenger)
}

func (h *PassengerHandler) modify(c *gin.Context) {
	var req modifyPassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	passenger, err := h.desk.ModifyPassenger(c.Param("passport"), passengers.Field(req.Field), req.Value)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, passenger)
}
