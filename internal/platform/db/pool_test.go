package db

import (
	"context"
	"testing"
	"time"

	"fxswap/internal/config"

	"github.com/stretchr/testify/require"
)

func TestCreatePoolAndPing_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	pool, err := CreatePoolAndPing(ctx, config.DbServer{
		Host: "127.0.0.1",
		Port: "1",
		User: "fxswap",
		Pass: "fxswap",
		Name: "fxswap",
	})
	require.Nil(t, pool)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to ping db at 127.0.0.1:1")
}
