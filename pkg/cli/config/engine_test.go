package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/doorap-lab/doorap/pkg/cli/config"
)

func writeEngineConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "engine.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestEngineLoad(t *testing.T) {
	t.Run("defaults apply without a file", func(t *testing.T) {
		var e config.Engine
		gt.NoError(t, e.Load())
		gt.Value(t, e.LeaseExpiryDays).Equal(60)
		gt.Value(t, e.DocumentExpiryDays).Equal(30)
		gt.Value(t, e.RefreshInterval()).Equal(15 * time.Minute)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := writeEngineConfig(t, "lease_expiry_days = 90\nrefresh_interval_minutes = 5\n")

		e := config.NewEngineWithPath(path)
		gt.NoError(t, e.Load())
		gt.Value(t, e.LeaseExpiryDays).Equal(90)
		gt.Value(t, e.DocumentExpiryDays).Equal(30)
		gt.Value(t, e.RefreshInterval()).Equal(5 * time.Minute)
	})

	t.Run("out of range values are rejected", func(t *testing.T) {
		path := writeEngineConfig(t, "lease_expiry_days = 4000\n")

		e := config.NewEngineWithPath(path)
		gt.Error(t, e.Load())
	})

	t.Run("malformed toml is rejected", func(t *testing.T) {
		path := writeEngineConfig(t, "lease_expiry_days = {{\n")

		e := config.NewEngineWithPath(path)
		gt.Error(t, e.Load())
	})

	t.Run("missing file is an error", func(t *testing.T) {
		e := config.NewEngineWithPath("/nonexistent/engine.toml")
		gt.Error(t, e.Load())
	})
}
