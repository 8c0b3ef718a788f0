package cli

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/config"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/metrics"
)

func TestServe_CleansSessionsAndStopsOnCancel(t *testing.T) {
	mock := stubDB(t)
	mock.ExpectClose()
	repos := stubRepositories(t)

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Server.Port = 0
	cfg.Auth.JWT.SigningKey = testSigningKey
	cfg.Auth.Sessions.CleanupOnStart = true
	cfg.Log.Dir = filepath.Join(t.TempDir(), "logs")

	repos.sessions.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).Return(int64(3), nil)

	before := testutil.ToFloat64(metrics.SessionsCleanedTotal)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	require.NoError(t, serve(ctx, cfg))
	require.Equal(t, before+3, testutil.ToFloat64(metrics.SessionsCleanedTotal))
}
