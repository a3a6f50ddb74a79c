package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/client-keeper/internal/config"
	"github.com/MKhiriev/client-keeper/internal/handler"
	myHTTP "github.com/MKhiriev/client-keeper/internal/handler/http"
	"github.com/MKhiriev/client-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func testHandlers() *handler.Handlers {
	return &handler.Handlers{HTTP: myHTTP.NewHandler(nil, config.ServerApp{}, logger.Nop())}
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, config.ServerHTTP{HTTPAddress: ":3000"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(testHandlers(), config.ServerHTTP{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunServesUntilCancelled(t *testing.T) {
	addr := freeAddress(t)
	srv, err := NewServer(testHandlers(), config.ServerHTTP{HTTPAddress: addr, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// неизвестный маршрут отвечает 404 от роутера
	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s/unknown", addr))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusNotFound
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunFailsOnBusyAddress(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	srv, err := NewServer(testHandlers(), config.ServerHTTP{HTTPAddress: l.Addr().String()}, logger.Nop())
	require.NoError(t, err)

	err = srv.Run(context.Background())
	assert.Error(t, err)
}
