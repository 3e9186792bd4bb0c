package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"SPROUTLY_THEME",
	"SPROUTLY_SKIP_SPLASH",
	"SPROUTLY_SEED",
	"SPROUTLY_WIDTH",
	"SPROUTLY_LOG_FILE",
	"SPROUTLY_LOG_LEVEL",
	"SPROUTLY_REPLY_DELAY",
	"SPROUTLY_SPLASH_FACT_INTERVAL",
	"SPROUTLY_SPLASH_NAME_DELAY",
	"SPROUTLY_SPLASH_TYPE_INTERVAL",
	"SPROUTLY_SPLASH_FINISH_DELAY",
	"SPROUTLY_SPLASH_FRAME_INTERVAL",
}

// isolate clears SPROUTLY_* variables and points the user config dir at an
// empty temp dir. The returned loader ignores any .env in the test's cwd.
func isolate(t *testing.T) *Loader {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	l := NewLoader()
	l.SetEnvFile(filepath.Join(t.TempDir(), "missing.env"))
	return l
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := isolate(t).Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, "light", cfg.Theme)
	require.Equal(t, 52, cfg.Width)
	require.Equal(t, time.Second, cfg.ReplyDelay)
	require.Equal(t, 50*time.Millisecond, cfg.Splash.FrameInterval)
}

func TestLoadYAMLFile(t *testing.T) {
	l := isolate(t)
	path := writeFile(t, t.TempDir(), "config.yaml", `
theme: dark
width: 80
seed: 7
reply_delay: 250ms
splash:
  type_interval: 10ms
`)
	l.SetConfigFile(path)

	cfg, err := l.Load()
	require.NoError(t, err)
	require.Equal(t, "dark", cfg.Theme)
	require.Equal(t, 80, cfg.Width)
	require.EqualValues(t, 7, cfg.Seed)
	require.Equal(t, 250*time.Millisecond, cfg.ReplyDelay)
	require.Equal(t, 10*time.Millisecond, cfg.Splash.TypeInterval)
	require.Equal(t, 3*time.Second, cfg.Splash.NameDelay)
}

func TestEnvOverridesFile(t *testing.T) {
	l := isolate(t)
	l.SetConfigFile(writeFile(t, t.TempDir(), "config.yaml", "width: 80\n"))
	t.Setenv("SPROUTLY_WIDTH", "100")
	t.Setenv("SPROUTLY_SPLASH_NAME_DELAY", "1s")
	t.Setenv("SPROUTLY_SKIP_SPLASH", "true")

	cfg, err := l.Load()
	require.NoError(t, err)
	require.Equal(t, 100, cfg.Width)
	require.Equal(t, time.Second, cfg.Splash.NameDelay)
	require.True(t, cfg.SkipSplash)
}

func TestDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	l := isolate(t)
	l.SetEnvFile(writeFile(t, t.TempDir(), ".env", "SPROUTLY_SEED=42\nSPROUTLY_THEME=dark\n"))
	t.Setenv("SPROUTLY_THEME", "auto")
	t.Cleanup(func() { _ = os.Unsetenv("SPROUTLY_SEED") })

	cfg, err := l.Load()
	require.NoError(t, err)
	require.EqualValues(t, 42, cfg.Seed)
	require.Equal(t, "auto", cfg.Theme)
}

func TestExplicitValueWinsOverEnv(t *testing.T) {
	l := isolate(t)
	t.Setenv("SPROUTLY_LOG_LEVEL", "warn")
	l.Viper().Set("log_level", "debug")

	cfg, err := l.Load()
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestDefaultConfigFileIsUsedWhenPresent(t *testing.T) {
	l := isolate(t)
	writeFile(t, os.Getenv("XDG_CONFIG_HOME"), "sproutly/config.yaml", "theme: dark\n")

	cfg, err := l.Load()
	require.NoError(t, err)
	require.Equal(t, "dark", cfg.Theme)
}

func TestMissingExplicitFileFails(t *testing.T) {
	l := isolate(t)
	l.SetConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := l.Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "read config")
}

func TestValidationNamesTheField(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"theme", map[string]string{"SPROUTLY_THEME": "neon"}, "theme: must be one of light|dark|auto"},
		{"width low", map[string]string{"SPROUTLY_WIDTH": "10"}, "width: must be at least 40"},
		{"width high", map[string]string{"SPROUTLY_WIDTH": "500"}, "width: must be at most 120"},
		{"log level", map[string]string{"SPROUTLY_LOG_LEVEL": "trace"}, "log_level"},
		{"duration", map[string]string{"SPROUTLY_SPLASH_FRAME_INTERVAL": "0s"}, "splash.frame_interval: must be positive"},
		{"reply delay", map[string]string{"SPROUTLY_REPLY_DELAY": "-1s"}, "reply_delay"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := isolate(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := l.Load()
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestThemeIsNormalized(t *testing.T) {
	l := isolate(t)
	t.Setenv("SPROUTLY_THEME", " Dark ")

	cfg, err := l.Load()
	require.NoError(t, err)
	require.Equal(t, "dark", cfg.Theme)
}

func TestDarkResolution(t *testing.T) {
	always := func() bool { return true }
	never := func() bool { return false }

	require.False(t, Config{Theme: ThemeLight}.Dark(always))
	require.True(t, Config{Theme: ThemeDark}.Dark(never))
	require.True(t, Config{Theme: ThemeAuto}.Dark(always))
	require.False(t, Config{Theme: ThemeAuto}.Dark(never))
}

func TestTimingsConversion(t *testing.T) {
	cfg := Default()
	timings := cfg.Timings()
	require.Equal(t, cfg.Splash.FactInterval, timings.FactInterval)
	require.Equal(t, cfg.Splash.FinishDelay, timings.FinishDelay)
	require.Equal(t, 5700*time.Millisecond, timings.MinDuration("Sproutly"))
}
