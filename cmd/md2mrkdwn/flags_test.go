package main

import (
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		flags, files, err := parseFlags([]string{"md2mrkdwn"})
		if err != nil {
			t.Fatalf("parseFlags() = %v", err)
		}
		if flags.config != "" || flags.version || flags.verbose {
			t.Errorf("parseFlags() = %+v, want zero values", flags)
		}
		if len(files) != 0 {
			t.Errorf("files = %v, want none", files)
		}
	})

	t.Run("conversion flags and files", func(t *testing.T) {
		flags, files, err := parseFlags([]string{
			"md2mrkdwn",
			"-c", "team",
			"--header-style", "plain",
			"--link-format", "url_only",
			"--table-mode", "preserve",
			"--bullet", "-",
			"--hr-char", "=",
			"--hr-length", "5",
			"notes.md", "todo.md",
		})
		if err != nil {
			t.Fatalf("parseFlags() = %v", err)
		}

		if flags.config != "team" {
			t.Errorf("config = %q, want %q", flags.config, "team")
		}
		if flags.headerStyle != "plain" || flags.linkFormat != "url_only" || flags.tableMode != "preserve" {
			t.Errorf("mode flags = %q/%q/%q", flags.headerStyle, flags.linkFormat, flags.tableMode)
		}
		if flags.bullet != "-" || flags.hrChar != "=" || flags.hrLength != 5 {
			t.Errorf("glyph flags = %q/%q/%d", flags.bullet, flags.hrChar, flags.hrLength)
		}
		if len(files) != 2 || files[0] != "notes.md" || files[1] != "todo.md" {
			t.Errorf("files = %v, want [notes.md todo.md]", files)
		}
	})

	t.Run("changed tracks explicit flags", func(t *testing.T) {
		flags, _, err := parseFlags([]string{"md2mrkdwn", "--bullet", "-"})
		if err != nil {
			t.Fatalf("parseFlags() = %v", err)
		}
		if !flags.changed("bullet") {
			t.Error("changed(bullet) = false, want true")
		}
		if flags.changed("hr-length") {
			t.Error("changed(hr-length) = true, want false")
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		if _, _, err := parseFlags([]string{"md2mrkdwn", "--bogus"}); err == nil {
			t.Fatal("parseFlags() = nil, want error for unknown flag")
		}
	})
}
