// Package ableton extracts an ordered tracklist from an Ableton Live set.
//
// A .als file is a gzip-compressed XML document. The extractor walks the
// element tree for AudioTrack entries, reads each track's EffectiveName
// value, strips the naming-convention prefixes Ableton and the DJ workflow
// add, and collects the results with order-preserving de-duplication.
package ableton

import (
	"compress/gzip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// Ableton numbers tracks on export, e.g. "3-Some Track".
	indexPrefix = regexp.MustCompile(`^\d+-`)
	// Convention prefix "CAMELOT - BPM - ", e.g. "12A - 123 - Some Track".
	conventionPrefix = regexp.MustCompile(`^\w+ - \d{3} - `)
)

// Extract reads a compressed Live set and returns the de-duplicated,
// normalized audio track names in first-seen order. Tracks without a name
// are skipped without error.
func Extract(r io.Reader) ([]string, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("decompress project: %w", err)
	}
	defer gz.Close()

	decoder := xml.NewDecoder(gz)
	seen := make(map[string]struct{})
	var names []string

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse project: %w", err)
		}
		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "AudioTrack" {
			continue
		}
		name, err := effectiveName(decoder)
		if err != nil {
			return nil, fmt.Errorf("parse project: %w", err)
		}
		if name == "" {
			continue
		}
		name = NormalizeName(name)
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names, nil
}

// ExtractFile opens a .als file and extracts its tracklist.
func ExtractFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open project: %w", err)
	}
	defer file.Close()
	return Extract(file)
}

// effectiveName consumes tokens until the enclosing AudioTrack element
// closes, returning the Value attribute of the first EffectiveName found.
func effectiveName(decoder *xml.Decoder) (string, error) {
	depth := 1
	name := ""
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return "", err
		}
		switch element := token.(type) {
		case xml.StartElement:
			depth++
			if name == "" && element.Name.Local == "EffectiveName" {
				for _, attr := range element.Attr {
					if attr.Name.Local == "Value" {
						name = attr.Value
						break
					}
				}
			}
		case xml.EndElement:
			depth--
		}
	}
	return name, nil
}

// NormalizeName strips the numeric index prefix and the two-field
// convention prefix from a raw track name.
func NormalizeName(name string) string {
	name = indexPrefix.ReplaceAllString(name, "")
	return conventionPrefix.ReplaceAllString(name, "")
}

// TitleCase rewrites each name in display title case.
func TitleCase(names []string) []string {
	caser := cases.Title(language.Und)
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = caser.String(name)
	}
	return out
}

// RenderTracklist renders names as a numbered tracklist file payload.
func RenderTracklist(names []string) string {
	var b strings.Builder
	for i, name := range names {
		fmt.Fprintf(&b, "%d. %s\n", i+1, name)
	}
	return b.String()
}
