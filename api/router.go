package api

import (
	"sync"

	"github.com/Domenick1991/airdesk/internal/desk"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Desk is the part of a desk session the HTTP API serves.
type Desk interface {
	FlightDesk
	PassengerDesk
	BookingDesk
}

var _ Desk = (*desk.Session)(nil)

// NewRouter mounts every handler under /api/v1. The session is not safe for
// concurrent use, so requests are served one at a time.
func NewRouter(d Desk) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), serialize(&sync.Mutex{}))

	v1 := router.Group("/api/v1")
	NewFlightHandler(d).Register(v1)
	NewPassengerHandler(d).Register(v1.Group("/passengers"))
	NewBookingHandler(d).Register(v1)
	return router
}

func serialize(mu *sync.Mutex) gin.HandlerFunc {
	return func(c *gin.Context) {
		mu.Lock()
		defer mu.Unlock()
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		entry := logrus.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
			"status": c.Writer.Status(),
		})
		if c.Writer.Status() >= 500 {
			entry.Warn("request failed")
			return
		}
		entry.Debug("request served")
	}
}
