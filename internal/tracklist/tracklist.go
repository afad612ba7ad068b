package tracklist

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"mixtape/internal/logging"
	"mixtape/internal/timecode"
)

// Track is one parsed tracklist entry. Timestamp is the wall-clock offset
// from program start and is expected to be non-decreasing across a list.
type Track struct {
	Artist    string
	Title     string
	Timestamp string
}

// Seconds returns the track's start offset in whole seconds.
func (t Track) Seconds() (int64, error) {
	return timecode.ParseTimestamp(t.Timestamp)
}

// Label renders the "Artist - Title" display form.
func (t Track) Label() string {
	return t.Artist + " - " + t.Title
}

// linePattern matches "<number>. <artist> - <title> - HH:MM:SS". The artist
// and title groups are non-greedy, so a name containing more than one " - "
// separator mis-splits; that is a documented input-format limitation, kept
// rather than reinterpreted.
var linePattern = regexp.MustCompile(`^\d+\.\s+(.+?)\s+-\s+(.+?)\s+-\s+(\d{2}:\d{2}:\d{2})$`)

// Parse reads one track per line, skipping blank lines. Lines that do not
// match the expected pattern are logged as warnings and skipped; only an
// unreadable source produces an error.
func Parse(r io.Reader, logger *slog.Logger) ([]Track, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	var tracks []Track
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		match := linePattern.FindStringSubmatch(line)
		if match == nil {
			logger.Warn("could not parse tracklist line", logging.String("line", line))
			continue
		}
		tracks = append(tracks, Track{
			Artist:    strings.TrimSpace(match[1]),
			Title:     strings.TrimSpace(match[2]),
			Timestamp: strings.TrimSpace(match[3]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read tracklist: %w", err)
	}
	return tracks, nil
}

// ParseFile opens and parses a tracklist file.
func ParseFile(path string, logger *slog.Logger) ([]Track, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tracklist: %w", err)
	}
	defer file.Close()
	return Parse(file, logger)
}
