package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-square/internal/config"
	"github.com/MKhiriev/go-square/internal/handler"
	"github.com/MKhiriev/go-square/internal/logger"
	"github.com/MKhiriev/go-square/internal/service"
)

func freeAddress(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func newTestServer(t *testing.T, cfg config.Server) *server {
	t.Helper()

	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_NoAddress(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_ShutdownTimeout(t *testing.T) {
	srv := newTestServer(t, config.Server{HTTPAddress: ":0"})
	assert.Equal(t, defaultShutdownTimeout, srv.shutdownTimeout)

	srv = newTestServer(t, config.Server{HTTPAddress: ":0", RequestTimeout: 5 * time.Second})
	assert.Equal(t, 5*time.Second, srv.shutdownTimeout)
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}

func TestRun_ServesUntilShutdown(t *testing.T) {
	addr := freeAddress(t)
	srv := newTestServer(t, config.Server{HTTPAddress: addr, RequestTimeout: time.Second})

	done := make(chan error, 1)
	go func() { done <- srv.run(context.Background()) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/api/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	srv.Shutdown()
	srv.Shutdown()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_ContextCancelled(t *testing.T) {
	srv := newTestServer(t, config.Server{HTTPAddress: freeAddress(t)})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, srv.run(ctx))
}

func TestRun_ListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	srv := newTestServer(t, config.Server{HTTPAddress: l.Addr().String()})

	assert.Error(t, srv.run(context.Background()))
}
