package section

import (
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_]+`)

// ToFilename maps a section title to the name of its section file. The
// mapping is lossy: titles that differ only in case or punctuation share a
// file. Applying it to its own output returns the same name.
func ToFilename(title, ext string) string {
	if ext == "" {
		ext = DefaultExt
	}
	s := strings.ToLower(title)
	s = strings.TrimSuffix(s, strings.ToLower(ext))
	s = nonWord.ReplaceAllString(s, "-")
	return s + ext
}
