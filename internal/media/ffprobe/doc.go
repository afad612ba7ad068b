// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// Only container-level format metadata is requested; the sole consumer is
// timeline synthesis, which needs total program duration from the mixtape
// audio file.
package ffprobe
