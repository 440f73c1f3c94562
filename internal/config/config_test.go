package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bigbag/md2mrkdwn"
)

// writeConfig writes a temp config file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	lib := cfg.Converter()
	if err := lib.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	want := md2mrkdwn.DefaultConfig()
	if *lib != *want {
		t.Errorf("Default().Converter() = %+v, want %+v", lib, want)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Fatalf("LoadConfig(\"\") = %v, want %v", err, ErrEmptyConfigName)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("LoadConfig() = %v, want %v", err, ErrConfigNotFound)
		}
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		path := writeConfig(t, "bulletChar: '-'\nunknownKey: true\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Fatalf("LoadConfig() = %v, want %v", err, ErrConfigParse)
		}
	})

	t.Run("absent keys keep defaults", func(t *testing.T) {
		path := writeConfig(t, "headerStyle: plain\n")
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() = %v", err)
		}

		if cfg.HeaderStyle != "plain" {
			t.Errorf("HeaderStyle = %q, want %q", cfg.HeaderStyle, "plain")
		}
		if cfg.BulletChar != "•" {
			t.Errorf("BulletChar = %q, want default bullet", cfg.BulletChar)
		}
		if !cfg.Convert.Bold {
			t.Error("Convert.Bold = false, want default true")
		}
		if cfg.HorizontalRule.Length != 10 {
			t.Errorf("HorizontalRule.Length = %d, want 10", cfg.HorizontalRule.Length)
		}
	})

	t.Run("full document", func(t *testing.T) {
		path := writeConfig(t, `bulletChar: "-"
checkboxChecked: "[v]"
checkboxUnchecked: "[ ]"
horizontalRule:
  char: "="
  length: 5
headerStyle: prefix
linkFormat: url_only
tableMode: preserve
convert:
  taskLists: false
  tables: false
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() = %v", err)
		}

		lib := cfg.Converter()
		if lib.BulletChar != "-" {
			t.Errorf("BulletChar = %q, want %q", lib.BulletChar, "-")
		}
		if lib.HorizontalRuleChar != "=" || lib.HorizontalRuleLength != 5 {
			t.Errorf("rule = %q x %d, want = x 5", lib.HorizontalRuleChar, lib.HorizontalRuleLength)
		}
		if lib.HeaderStyle != md2mrkdwn.HeaderStylePrefix {
			t.Errorf("HeaderStyle = %q, want prefix", lib.HeaderStyle)
		}
		if lib.LinkFormat != md2mrkdwn.LinkFormatURLOnly {
			t.Errorf("LinkFormat = %q, want url_only", lib.LinkFormat)
		}
		if lib.TableMode != md2mrkdwn.TableModePreserve {
			t.Errorf("TableMode = %q, want preserve", lib.TableMode)
		}
		if lib.ConvertTaskLists || lib.ConvertTables {
			t.Error("taskLists and tables should be disabled")
		}
		if !lib.ConvertBold || !lib.ConvertLists {
			t.Error("unlisted toggles should keep their default true")
		}
		if err := lib.Validate(); err != nil {
			t.Errorf("loaded config invalid: %v", err)
		}
	})
}

func TestConverterRoundTrip(t *testing.T) {
	lib := md2mrkdwn.DefaultConfig()
	lib.BulletChar = "*"
	lib.ConvertImages = false

	got := fromConverter(lib).Converter()
	if *got != *lib {
		t.Errorf("round trip = %+v, want %+v", got, lib)
	}
}
