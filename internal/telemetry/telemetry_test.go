package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/harmonic/internal/telemetry"
)

func TestSetup_NoopWithoutEndpoint(t *testing.T) {
	shutdown, err := telemetry.Setup(context.Background(), "", "harmonic-test")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, shutdown(ctx))
}

func TestSetup_WithEndpoint(t *testing.T) {
	// Non-routable address: nothing is exported because no span is started.
	shutdown, err := telemetry.Setup(context.Background(), "http://192.0.2.1:4318", "harmonic-test")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
