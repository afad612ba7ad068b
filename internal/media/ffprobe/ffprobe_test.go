package ffprobe

import (
	"context"
	"testing"
)

func TestDurationSeconds(t *testing.T) {
	result := Result{Format: Format{Duration: "660.123"}}
	seconds, err := result.DurationSeconds()
	if err != nil {
		t.Fatalf("duration: %v", err)
	}
	if seconds != 660.123 {
		t.Fatalf("unexpected duration: %v", seconds)
	}
}

func TestDurationSecondsRejectsMissingOrBadValues(t *testing.T) {
	cases := []Result{
		{},
		{Format: Format{Duration: "   "}},
		{Format: Format{Duration: "bad"}},
		{Format: Format{Duration: "-1"}},
	}
	for _, result := range cases {
		if _, err := result.DurationSeconds(); err == nil {
			t.Fatalf("expected error for duration %q", result.Format.Duration)
		}
	}
}

func TestInspectRejectsEmptyPath(t *testing.T) {
	if _, err := Inspect(context.Background(), "ffprobe", ""); err == nil {
		t.Fatal("expected error for empty path")
	}
}
