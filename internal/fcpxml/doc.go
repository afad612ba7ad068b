// Package fcpxml synthesizes a Final Cut Pro XML timeline from a parsed
// tracklist and a probed total program duration.
//
// Each track becomes a title spine with a frame-accurate offset and duration
// at the 24000/1001 frame rate. Spines are built as structured records
// first; the fade-out ramp and trailing cross-dissolve that decorate the
// final spine are applied during rendering, so no rendered text is ever
// post-edited.
package fcpxml
