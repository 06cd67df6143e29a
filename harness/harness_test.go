package harness

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/wanmail/pageobject"
	"github.com/wanmail/pageobject/config"
	"github.com/wanmail/pageobject/internal/pagetest"
	"github.com/wanmail/pageobject/internal/testapp"
)

func TestConfigPath(t *testing.T) {
	t.Setenv(ConfigEnv, "")
	require.Equal(t, DefaultConfigFile, ConfigPath())

	t.Setenv(ConfigEnv, "ci.yaml")
	require.Equal(t, "ci.yaml", ConfigPath())
}

func TestOpenSkipsWithoutDriver(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.DriverDir = t.TempDir()

	var skipped bool
	t.Run("Session", func(t *testing.T) {
		defer func() { skipped = t.Skipped() }()
		OpenWith(t, cfg)
	})
	require.True(t, skipped, "OpenWith() without a driver did not skip the test")
}

// TestPracticeApp drives a real browser through the page objects against a
// local copy of the practice application. It runs when a driver is
// installed, e.g. under drivers/ after running cmd/fetchdrivers.
func TestPracticeApp(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping browser tests in short mode")
	}
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(testapp.New(testapp.Options{LoadDelay: time.Second}))
	defer srv.Close()

	cfg, err := config.Load(ConfigPath())
	require.NoError(t, err)
	if cfg.Remote() {
		t.Skipf("Skipping: remote browsers on %s cannot reach %s", cfg.Host, srv.URL)
	}
	cfg.BaseURL = srv.URL
	if !filepath.IsAbs(cfg.DriverDir) {
		if _, err := os.Stat(cfg.DriverDir); err != nil {
			cfg.DriverDir = filepath.Join("..", cfg.DriverDir)
		}
	}

	c := pagetest.Config{
		Open: func(t *testing.T) *pageobject.Base {
			return OpenWith(t, cfg).Base
		},
		LoadWait: 5 * time.Second,
	}
	t.Run("Login", func(t *testing.T) { pagetest.RunLoginTests(t, c) })
	t.Run("DynamicLoading", func(t *testing.T) { pagetest.RunDynamicLoadingTests(t, c) })
}
