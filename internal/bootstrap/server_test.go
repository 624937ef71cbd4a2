package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/airdesk/config"
	"github.com/Domenick1991/airdesk/internal/desk"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) *desk.Session {
	t.Helper()
	s, err := desk.NewSession(config.Default().Desk, nil)
	require.NoError(t, err)
	return s
}

func TestNewServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	srv := newServer(cfg, newSession(t))

	assert.Equal(t, ":8080", srv.Addr)

	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/schedule", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRun_StopsOnCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	cfg.HTTP.Address = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, cfg, newSession(t)) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestNewSession_WithoutKafka(t *testing.T) {
	session, closeFn, err := NewSession(config.Default(), nil)
	require.NoError(t, err)
	defer closeFn()

	assert.Len(t, session.Schedule().Flights, 2)
}

func TestNewSession_WithKafka(t *testing.T) {
	cfg := config.Default()
	cfg.Kafka.Brokers = []string{"127.0.0.1:1"}
	cfg.Desk.Seed = false

	session, closeFn, err := NewSession(cfg, nil)
	require.NoError(t, err)
	closeFn()

	assert.Empty(t, session.Schedule().Flights)
}
