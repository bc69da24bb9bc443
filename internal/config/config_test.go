package config_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomodoro/internal/config"
	"github.com/ayoisaiah/pomodoro/internal/testutil"
)

type TestCase struct {
	Want       *config.Config
	Name       string
	GoldenFile string
	Snapshot   []byte `json:"-"`
}

func (t TestCase) Output() (out []byte, name string) {
	return t.Snapshot, t.GoldenFile
}

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *config.Config {
	return &config.Config{
		Notifications: config.NotificationConfig{
			Enabled: true,
		},
		Server: config.ServerConfig{
			Addr: "127.0.0.1:47321",
		},
		Display: config.DisplayConfig{
			DarkTheme:    true,
			PollInterval: time.Second,
		},
		Log: config.LogConfig{
			Level: "info",
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")

	tc := TestCase{
		Name:       "write default config to file",
		GoldenFile: "defaults",
		Want:       defaultConfig(),
	}

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	if err != nil {
		t.Fatal(err)
	}

	tc.Snapshot, err = os.ReadFile(configPath)
	if err != nil {
		t.Fatal("failed to read config", err)
	}

	testutil.CompareGoldenFile(t, tc)

	assert.Equal(t, tc.Want, cfg)
}

func TestViperReadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")

	err := testutil.CopyFile("testdata/modified_config.yml", configPath)
	if err != nil {
		t.Fatal(err)
	}

	want := &config.Config{
		Notifications: config.NotificationConfig{
			Enabled: false,
			Sound:   "off",
			Cmd:     "notify-send 'Pomodoro' done",
		},
		Server: config.ServerConfig{
			Addr: "localhost:9000",
		},
		Display: config.DisplayConfig{
			DarkTheme:    false,
			PollInterval: 250 * time.Millisecond,
		},
		Log: config.LogConfig{
			Level: "debug",
		},
	}

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, want, cfg)
}

func TestWithDefaults(t *testing.T) {
	cfg, err := config.New(config.WithDefaults())
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)
}

func TestValidate(t *testing.T) {
	wav := filepath.Join(t.TempDir(), "bell.wav")
	require.NoError(t, os.WriteFile(wav, []byte("RIFF"), 0o600))

	cases := []struct {
		name    string
		modify  func(c *config.Config)
		wantErr string
	}{
		{
			name:   "defaults",
			modify: func(*config.Config) {},
		},
		{
			name: "existing sound file",
			modify: func(c *config.Config) {
				c.Notifications.Sound = wav
			},
		},
		{
			name: "unsupported sound format",
			modify: func(c *config.Config) {
				c.Notifications.Sound = "bell.aiff"
			},
			wantErr: "invalid sound file format",
		},
		{
			name: "missing sound file",
			modify: func(c *config.Config) {
				c.Notifications.Sound = filepath.Join(t.TempDir(), "gong.ogg")
			},
			wantErr: "sound file not found",
		},
		{
			name: "unbalanced quotes in cmd",
			modify: func(c *config.Config) {
				c.Notifications.Cmd = `say "done`
			},
			wantErr: "notifications.cmd",
		},
		{
			name: "address without port",
			modify: func(c *config.Config) {
				c.Server.Addr = "localhost"
			},
			wantErr: "server.addr",
		},
		{
			name: "poll interval too short",
			modify: func(c *config.Config) {
				c.Display.PollInterval = time.Millisecond
			},
			wantErr: "display.poll_interval",
		},
		{
			name: "unknown log level",
			modify: func(c *config.Config) {
				c.Log.Level = "verbose"
			},
			wantErr: "log.level",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.modify(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestEmptyLogLevelFallsBackToInfo(t *testing.T) {
	cfg := defaultConfig()
	cfg.Log.Level = ""

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestCLIOverrides(t *testing.T) {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("sound", "", "")
	set.String("cmd", "", "")
	set.String("addr", "", "")
	set.String("log-level", "", "")
	set.Bool("disable-notification", false, "")

	require.NoError(t, set.Parse([]string{
		"--addr", "127.0.0.1:9999",
		"--log-level", "debug",
		"--disable-notification",
	}))

	ctx := cli.NewContext(cli.NewApp(), set, nil)

	cfg, err := config.New(
		config.WithDefaults(),
		config.WithCLIConfig(ctx),
	)
	require.NoError(t, err)

	want := defaultConfig()
	want.Server.Addr = "127.0.0.1:9999"
	want.Log.Level = "debug"
	want.Notifications.Enabled = false

	assert.Equal(t, want, cfg)
}
