package model

import (
	"testing"
	"time"
)

func TestParseScriptTime(t *testing.T) {
	t.Run("minutes and seconds", func(t *testing.T) {
		d, err := ParseScriptTime("02:30")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if d != 2*time.Minute+30*time.Second {
			t.Fatalf("unexpected duration %v", d)
		}
	})

	t.Run("hours minutes seconds", func(t *testing.T) {
		d, err := ParseScriptTime("1:02:03")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if d != time.Hour+2*time.Minute+3*time.Second {
			t.Fatalf("unexpected duration %v", d)
		}
	})

	t.Run("whitespace tolerated", func(t *testing.T) {
		if _, err := ParseScriptTime(" 0:45 "); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("free text rejected", func(t *testing.T) {
		for _, s := range []string{"", "about a minute", "1:2:3:4", "-1:00", "a:b"} {
			if _, err := ParseScriptTime(s); err == nil {
				t.Errorf("ParseScriptTime(%q): expected error", s)
			}
		}
	})
}

func TestFormatScriptTime(t *testing.T) {
	if got := FormatScriptTime(time.Hour + 5*time.Minute + 9*time.Second); got != "01:05:09" {
		t.Fatalf("got %q", got)
	}
	if got := FormatScriptTime(0); got != "00:00:00" {
		t.Fatalf("got %q", got)
	}
}

func TestTotalScriptTime(t *testing.T) {
	shots := []Shot{
		{ScriptTime: "01:00"},
		{ScriptTime: "notes to self"},
		{ScriptTime: "00:30"},
		{ScriptTime: ""},
	}
	if got := TotalScriptTime(shots); got != 90*time.Second {
		t.Fatalf("TotalScriptTime = %v, want 1m30s", got)
	}
}
