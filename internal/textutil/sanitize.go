// Package textutil provides the filename sanitization used when a mixtape
// name becomes part of a filesystem path.
package textutil

import "strings"

// unsafeReplacer removes filesystem-reserved characters.
var unsafeReplacer = strings.NewReplacer(
	"<", "",
	">", "",
	":", "",
	"\"", "",
	"/", "",
	"\\", "",
	"|", "",
	"?", "",
	"*", "",
)

// FileStem converts a display name to a filesystem-safe stem: reserved
// characters are removed and spaces become underscores. Used for both the
// generated .fcpxml filename and the library .fcpbundle name.
func FileStem(name string) string {
	name = unsafeReplacer.Replace(strings.TrimSpace(name))
	return strings.ReplaceAll(name, " ", "_")
}
