package section

import (
	"io"
	"log/slog"
	"strings"
)

// Marker is the token that opens a section title line.
type Marker string

const (
	// DashMarker is the original separator style: "---- title".
	DashMarker Marker = "----"
	// HashMarker is the heading style: "# title".
	HashMarker Marker = "#"
)

// Markers lists the recognized top-level markers.
var Markers = []Marker{DashMarker, HashMarker}

// DefaultExt is the extension given to section files.
const DefaultExt = ".txt"

// Stdout is the output path sentinel that sends a composed document to the
// configured writer instead of a file.
const Stdout = "-"

// Section is one titled chunk of a composite document.
type Section struct {
	Marker Marker `json:"marker"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// Result lists the sections handled by a run and the files it wrote or read.
type Result struct {
	Sections []Section `json:"sections"`
	Files    []string  `json:"files"`
	Out      string    `json:"out"`
}

// Options configures Decompose and Compose. The zero value is usable.
type Options struct {
	// Ext is the section-file extension, dot included.
	Ext string
	// Marker is used when composing a file that carries no marker line.
	Marker Marker
	// Stdout receives the composed document when the output is Stdout.
	Stdout io.Writer
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Ext == "" {
		o.Ext = DefaultExt
	}
	if !strings.HasPrefix(o.Ext, ".") {
		o.Ext = "." + o.Ext
	}
	if o.Marker == "" {
		o.Marker = HashMarker
	}
	if o.Stdout == nil {
		o.Stdout = io.Discard
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// ParseMarker validates a marker name given on the command line.
func ParseMarker(s string) (Marker, error) {
	for _, m := range Markers {
		if string(m) == s {
			return m, nil
		}
	}
	return "", usageErrorf("unknown marker %q (want %q or %q)", s, DashMarker, HashMarker)
}
