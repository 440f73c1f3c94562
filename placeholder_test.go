package md2mrkdwn

import (
	"regexp"
	"testing"
)

func TestSegmentStore(t *testing.T) {
	t.Run("tokens are sequential per store", func(t *testing.T) {
		store := newSegmentStore("CODE")
		if got := store.protect("`a`"); got != "%%CODE_0%%" {
			t.Errorf("protect() = %q, want %q", got, "%%CODE_0%%")
		}
		if got := store.protect("`b`"); got != "%%CODE_1%%" {
			t.Errorf("protect() = %q, want %q", got, "%%CODE_1%%")
		}
	})

	t.Run("restore substitutes all spans", func(t *testing.T) {
		store := newSegmentStore("IMG")
		a := store.protect("![a](u)")
		b := store.protect("![b](v)")

		line := "x " + a + " y " + b + " z"
		if got := store.restore(line); got != "x ![a](u) y ![b](v) z" {
			t.Errorf("restore() = %q, want %q", got, "x ![a](u) y ![b](v) z")
		}
	})

	t.Run("fresh store restarts numbering", func(t *testing.T) {
		first := newSegmentStore("CODE")
		first.protect("`a`")

		second := newSegmentStore("CODE")
		if got := second.protect("`b`"); got != "%%CODE_0%%" {
			t.Errorf("protect() = %q, want %q (stores must not share counters)", got, "%%CODE_0%%")
		}
	})
}

func TestTableToken(t *testing.T) {
	shape := regexp.MustCompile(`^%%TABLE_[0-9a-f]{8}%%$`)

	t.Run("shape", func(t *testing.T) {
		token := tableToken("```\n| a |\n```")
		if !shape.MatchString(token) {
			t.Errorf("tableToken() = %q, want shape %s", token, shape)
		}
	})

	t.Run("deterministic for equal content", func(t *testing.T) {
		if tableToken("same") != tableToken("same") {
			t.Error("tableToken() must be deterministic for equal content")
		}
	})

	t.Run("distinct for distinct content", func(t *testing.T) {
		if tableToken("one") == tableToken("two") {
			t.Error("tableToken() must differ for distinct content")
		}
	})
}
