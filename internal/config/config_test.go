package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Log.ShortCount != 20 || cfg.Log.LongCount != 40 {
		t.Errorf("log counts = %d/%d, want 20/40", cfg.Log.ShortCount, cfg.Log.LongCount)
	}
	if !cfg.Update.Check || cfg.Update.Interval != 24*time.Hour {
		t.Errorf("update = %+v, want check every 24h", cfg.Update)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	cfg, err := Parse(`
[log]
short_count = 5

[update]
check = false
interval = "1h30m"

[ui]
theme = "nord"
`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Log.ShortCount != 5 {
		t.Errorf("short_count = %d, want 5", cfg.Log.ShortCount)
	}
	if cfg.Log.LongCount != DefaultLongLogCount {
		t.Errorf("long_count = %d, want default %d", cfg.Log.LongCount, DefaultLongLogCount)
	}
	if cfg.Update.Check {
		t.Error("update.check = true, want false")
	}
	if cfg.Update.Interval != 90*time.Minute {
		t.Errorf("interval = %s, want 1h30m", cfg.Update.Interval)
	}
	if cfg.UI.Theme != "nord" {
		t.Errorf("theme = %q, want nord", cfg.UI.Theme)
	}
}

func TestParse_ExpandsShellConfig(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	cfg, err := Parse("[alias]\nshell_config = \"~/.profile\"\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if want := filepath.Join(home, ".profile"); cfg.Alias.ShellConfig != want {
		t.Errorf("shell_config = %q, want %q", cfg.Alias.ShellConfig, want)
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"syntax", "[log\n", "failed to parse config file"},
		{"zero count", "[log]\nshort_count = 0\n", "log.short_count must be positive"},
		{"negative long count", "[log]\nlong_count = -1\n", "log.long_count must be positive"},
		{"bad interval", "[update]\ninterval = \"soon\"\n", "failed to parse config file"},
		{"negative interval", "[update]\ninterval = \"-1h\"\n", "update.interval must not be negative"},
		{"relative shell config", "[alias]\nshell_config = \"rc/.bashrc\"\n", "alias.shell_config must be absolute"},
		{"unknown theme", "[ui]\ntheme = \"neon\"\n", `invalid ui.theme "neon"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Parse(tt.data)
			if err == nil {
				t.Fatal("Parse() = nil error, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want to contain %q", err, tt.wantErr)
			}
			if cfg != Default() {
				t.Errorf("Parse() returned %+v on error, want defaults", cfg)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("LoadFile() = %+v, want defaults", cfg)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		EnvSkipUpdateCheck: "",
		EnvShellConfig:     "/etc/zshrc.local",
	}
	lookupEnv := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	applyEnv(&cfg, lookupEnv)

	if cfg.Update.Check {
		t.Error("update check still enabled with SUPGIT_SKIP_UPDATE_CHECK set to empty")
	}
	if cfg.Alias.ShellConfig != "/etc/zshrc.local" {
		t.Errorf("shell_config = %q", cfg.Alias.ShellConfig)
	}
}

func TestApplyEnv_Unset(t *testing.T) {
	t.Parallel()

	cfg := Default()
	applyEnv(&cfg, func(string) (string, bool) { return "", false })
	if cfg != Default() {
		t.Errorf("applyEnv changed config without env: %+v", cfg)
	}
}

func TestDefaultFileParses(t *testing.T) {
	t.Parallel()

	var raw map[string]any
	if _, err := toml.Decode(DefaultFile(), &raw); err != nil {
		t.Fatalf("default config is not valid TOML: %v", err)
	}
	cfg, err := Parse(DefaultFile())
	if err != nil {
		t.Fatalf("Parse(DefaultFile()) error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("default file = %+v, want Default()", cfg)
	}
}

func TestInitFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "supgit", "config.toml")
	if err := InitFile(path, false); err != nil {
		t.Fatalf("InitFile() error = %v", err)
	}
	if err := InitFile(path, false); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("second InitFile() error = %v, want already exists", err)
	}
	if err := InitFile(path, true); err != nil {
		t.Errorf("InitFile(force) error = %v", err)
	}
}

func TestValidatePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		wantErr bool
	}{
		{"", false},
		{"~/.bashrc", false},
		{"/home/u/.zshrc", false},
		{".bashrc", true},
		{"../x", true},
	}
	for _, tt := range tests {
		err := ValidatePath(tt.path, "alias.shell_config")
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}

func TestFormatOptions(t *testing.T) {
	t.Parallel()

	if got := formatOptions([]string{"a", "b"}); got != `"a" or "b"` {
		t.Errorf("formatOptions(2) = %s", got)
	}
	if got := formatOptions([]string{"a", "b", "c"}); got != `"a", "b", or "c"` {
		t.Errorf("formatOptions(3) = %s", got)
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	if got := FromContext(context.Background()); *got != Default() {
		t.Errorf("FromContext(empty) = %+v, want defaults", got)
	}

	cfg := Default()
	cfg.Log.ShortCount = 3
	ctx := WithConfig(context.Background(), &cfg)
	if got := FromContext(ctx); got != &cfg {
		t.Error("FromContext did not return the attached config")
	}
}
