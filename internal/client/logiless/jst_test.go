package logiless

import (
	"testing"
	"time"
)

func TestParseTokyo(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-04-01T10:00:00", "2024-04-01T10:00:00+09:00"},
		{"2024-04-01 10:00:00", "2024-04-01T10:00:00+09:00"},
		{"2024-12-31T23:59:59", "2024-12-31T23:59:59+09:00"},
	}
	for _, tt := range tests {
		got, err := ParseTokyo(tt.in)
		if err != nil {
			t.Fatalf("ParseTokyo(%q) err=%v", tt.in, err)
		}
		want, _ := time.Parse(time.RFC3339, tt.want)
		if !got.Equal(want) {
			t.Fatalf("ParseTokyo(%q) = %s, want %s", tt.in, got, want)
		}
	}
}

func TestParseTokyo_Invalid(t *testing.T) {
	if _, err := ParseTokyo("04/01/2024"); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := ParseTokyo(""); err == nil {
		t.Fatalf("expected error")
	}
}

func TestParseTokyo_IgnoresRuntimeZone(t *testing.T) {
	restore := time.Local
	time.Local = time.FixedZone("WEIRD", -7*60*60)
	defer func() { time.Local = restore }()

	got, err := ParseTokyo("2024-04-01T10:00:00")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if got.UTC().Format(time.RFC3339) != "2024-04-01T01:00:00Z" {
		t.Fatalf("got %s, want 2024-04-01T01:00:00Z", got.UTC().Format(time.RFC3339))
	}
}

func TestParseTokyoDate(t *testing.T) {
	got, err := ParseTokyoDate("2024-05-01")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	want, _ := time.Parse(time.RFC3339, "2024-05-01T00:00:00+09:00")
	if !got.Equal(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
	if _, err := ParseTokyoDate("2024-5-1"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestFormatQueryTime(t *testing.T) {
	// 2024-04-30 15:00 UTC is 2024-05-01 00:00 in Tokyo.
	in := time.Date(2024, 4, 30, 15, 0, 0, 0, time.UTC)
	if got := formatQueryTime(in); got != "2024-05-01 00:00:00" {
		t.Fatalf("got %q, want %q", got, "2024-05-01 00:00:00")
	}
}
