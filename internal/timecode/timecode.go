package timecode

import (
	"fmt"
	"strconv"
	"strings"
)

// Scale is the tick denominator for all emitted time values: one tick is
// 1/24000 of a second.
const Scale = 24000

// TicksPerFrame is the tick length of a single frame at 24000/1001
// (~23.976) frames per second.
const TicksPerFrame = 1001

// Frames is a tick count over the fixed 24000 denominator.
type Frames int64

// String renders the value in the fractional notation timelines expect,
// e.g. "8065001/24000s".
func (f Frames) String() string {
	return fmt.Sprintf("%d/%ds", int64(f), Scale)
}

// Seconds converts the tick count back to wall-clock seconds.
func (f Frames) Seconds() float64 {
	return float64(f) / Scale
}

// Offset converts a track's wall-clock offset to ticks. The extra frame
// aligns with the destination format's first-frame convention, so a track at
// 00:00:00 lands on tick 1001.
func Offset(seconds int64) Frames {
	return Frames(seconds*Scale + TicksPerFrame)
}

// GapDuration computes the on-screen duration for a track that is followed by
// another: the inter-track gap shortened by one frame so the clip ends
// exactly one frame before the next begins, truncated down to a frame
// boundary.
func GapDuration(current, next int64) Frames {
	ticks := (next-current)*Scale - TicksPerFrame
	return Frames(ticks / TicksPerFrame * TicksPerFrame)
}

// TailDuration computes the duration for the final track, measured against
// total program length instead of a following track. No one-frame shortening
// is applied; the result is still truncated to a frame boundary.
func TailDuration(last, total int64) Frames {
	ticks := (total - last) * Scale
	return Frames(ticks / TicksPerFrame * TicksPerFrame)
}

// ParseTimestamp converts an "HH:MM:SS" wall-clock offset to whole seconds.
func ParseTimestamp(value string) (int64, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("timestamp %q: want HH:MM:SS", value)
	}
	fields := make([]int64, 3)
	for i, part := range parts {
		parsed, err := strconv.ParseInt(part, 10, 64)
		if err != nil || parsed < 0 {
			return 0, fmt.Errorf("timestamp %q: bad field %q", value, part)
		}
		fields[i] = parsed
	}
	return fields[0]*3600 + fields[1]*60 + fields[2], nil
}

// FormatTimestamp renders whole seconds as zero-padded "HH:MM:SS".
func FormatTimestamp(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}

// FormatSeconds renders a fractional second count without a trailing unit,
// using the shortest decimal representation.
func FormatSeconds(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
