package http

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"fxswap/internal/config"

	"github.com/stretchr/testify/require"
)

func testServerConfig() config.HTTPServer {
	return config.HTTPServer{ReadHeaderTimeoutSeconds: 1, ShutdownTimeoutSeconds: 2}
}

func TestServe_AnswersAndStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, ln, handler, testServerConfig()) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, "ok", string(body))

	cancel()
	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestStart_PortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()

	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	cfg := testServerConfig()
	cfg.Port = port
	err = Start(context.Background(), cfg, http.NotFoundHandler())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to listen on port "+port)
}

func TestServe_AlreadyCanceledContextStopsCleanly(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, Serve(ctx, ln, http.NotFoundHandler(), config.HTTPServer{}))
}
