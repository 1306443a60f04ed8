package main

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMock_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- runMock(ctx, mockConfig{Addr: "127.0.0.1:0", LogLevel: "error"})
	}()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runMock did not return after cancel")
	}
}

func TestRunMock_AddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	err = runMock(context.Background(), mockConfig{Addr: ln.Addr().String(), LogLevel: "error"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "starting mock api")
}
