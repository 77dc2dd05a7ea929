package cmd

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServeCmd(t *testing.T) {
	cmd := newServeCmd()
	assert.Equal(t, "serve", cmd.Use)

	flag := cmd.Flags().Lookup(addrFlagName)
	require.NotNil(t, flag)
}

func TestServeHTTP_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := serveHTTP(ctx, "127.0.0.1:0", http.NotFoundHandler())
	require.NoError(t, err)
}

func TestServeHTTP_ListenError(t *testing.T) {
	err := serveHTTP(context.Background(), "127.0.0.1:-1", http.NotFoundHandler())
	require.Error(t, err)
}
