package fcpxml

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"mixtape/internal/textutil"
	"mixtape/internal/timecode"
	"mixtape/internal/tracklist"
)

// fadeOutSeconds is the length of the opacity ramp and the lead on the
// trailing cross-dissolve at the end of the program.
const fadeOutSeconds = 5

// fadeOutTicks is fadeOutSeconds expressed in frame units.
const fadeOutTicks = fadeOutSeconds * timecode.Scale

// Spine is one title overlay: a track's on-screen text with its offset and
// duration. FadeOut marks the final spine, which alone receives the opacity
// ramp and trailing transition when rendered.
type Spine struct {
	Index    int
	Artist   string
	Title    string
	Offset   timecode.Frames
	Duration timecode.Frames
	FadeOut  bool
}

// Document is a fully computed timeline, immutable once built and rendered
// exactly once.
type Document struct {
	Name            string
	ImageURL        string
	AudioURL        string
	LibraryLocation string
	EventUID        string
	ProjectUID      string
	Spines          []Spine
}

// Build computes spine offsets and durations for the ordered tracks and
// assembles a Document. totalSeconds is the probed program length; the final
// track's duration is measured against it, every other track ends one frame
// before its successor.
func Build(tracks []tracklist.Track, totalSeconds int64, name, imagePath, audioPath, libraryDir string) (*Document, error) {
	if len(tracks) == 0 {
		return nil, errors.New("build timeline: no tracks")
	}

	seconds := make([]int64, len(tracks))
	for i, track := range tracks {
		parsed, err := track.Seconds()
		if err != nil {
			return nil, fmt.Errorf("build timeline: track %d: %w", i+1, err)
		}
		seconds[i] = parsed
	}

	spines := make([]Spine, len(tracks))
	for i, track := range tracks {
		spine := Spine{
			Index:  i + 1,
			Artist: track.Artist,
			Title:  track.Title,
			Offset: timecode.Offset(seconds[i]),
		}
		if i < len(tracks)-1 {
			spine.Duration = timecode.GapDuration(seconds[i], seconds[i+1])
		} else {
			spine.Duration = timecode.TailDuration(seconds[i], totalSeconds)
			spine.FadeOut = true
		}
		spines[i] = spine
	}

	imageURL, err := fileURL(imagePath)
	if err != nil {
		return nil, fmt.Errorf("build timeline: image: %w", err)
	}
	audioURL, err := fileURL(audioPath)
	if err != nil {
		return nil, fmt.Errorf("build timeline: audio: %w", err)
	}

	bundle := filepath.Join(libraryDir, textutil.FileStem(name)+".fcpbundle")
	libraryLocation, err := fileURL(bundle)
	if err != nil {
		return nil, fmt.Errorf("build timeline: library: %w", err)
	}

	return &Document{
		Name:            name,
		ImageURL:        imageURL,
		AudioURL:        audioURL,
		LibraryLocation: libraryLocation + "/",
		EventUID:        newUID(),
		ProjectUID:      newUID(),
		Spines:          spines,
	}, nil
}

// OutputFileName returns the artifact name for a mixtape: the sanitized
// name with an .fcpxml extension.
func OutputFileName(name string) string {
	return textutil.FileStem(name) + ".fcpxml"
}

func newUID() string {
	return strings.ToUpper(uuid.NewString())
}

// fileURL converts a path to an absolute, percent-encoded file:// URL.
func fileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), nil
}

// escapeXML escapes the five reserved markup characters in user-supplied
// text. Ampersand is handled first so already-escaped entities are never
// produced twice.
func escapeXML(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	text = strings.ReplaceAll(text, `"`, "&quot;")
	return strings.ReplaceAll(text, "'", "&apos;")
}
