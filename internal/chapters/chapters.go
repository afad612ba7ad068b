// Package chapters renders a tracklist as video-description chapter lines.
//
// Timestamps are compacted for display: a zero hours field is dropped
// entirely ("3:07"), and a non-zero hour loses its zero padding ("1:05:09").
// Minutes and seconds keep their padding whenever an hour is shown.
package chapters

import (
	"fmt"
	"strconv"
	"strings"

	"mixtape/internal/tracklist"
)

// FormatTimestamp converts a well-formed "HH:MM:SS" timestamp to its compact
// display form.
func FormatTimestamp(timestamp string) (string, error) {
	parts := strings.Split(strings.TrimSpace(timestamp), ":")
	if len(parts) != 3 {
		return "", fmt.Errorf("timestamp %q: want HH:MM:SS", timestamp)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("timestamp %q: bad hours field", timestamp)
	}
	minutes, seconds := parts[1], parts[2]

	if hours == 0 {
		trimmed, err := strconv.Atoi(minutes)
		if err != nil {
			return "", fmt.Errorf("timestamp %q: bad minutes field", timestamp)
		}
		return fmt.Sprintf("%d:%s", trimmed, seconds), nil
	}
	return fmt.Sprintf("%d:%s:%s", hours, minutes, seconds), nil
}

// Lines renders one chapter line per track: "<timestamp> <artist> - <title>",
// optionally prefixed with a 1-based "Track N:" label.
func Lines(tracks []tracklist.Track, withNumbers bool) ([]string, error) {
	lines := make([]string, 0, len(tracks))
	for i, track := range tracks {
		display, err := FormatTimestamp(track.Timestamp)
		if err != nil {
			return nil, err
		}
		if withNumbers {
			lines = append(lines, fmt.Sprintf("%s Track %d: %s", display, i+1, track.Label()))
		} else {
			lines = append(lines, fmt.Sprintf("%s %s", display, track.Label()))
		}
	}
	return lines, nil
}

// Render joins chapter lines into the file payload, one line per chapter
// with a trailing newline.
func Render(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
