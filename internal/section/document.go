package section

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	rpdf "rsc.io/pdf"
)

// ReadDocument loads a composite document. PDF files are reduced to their
// text, one line per baseline, pages separated by a blank line.
func ReadDocument(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return readPDF(path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", wrapIOError(err, "read %s", path)
	}
	return string(b), nil
}

// readPDF extracts the text of every page. rsc.io/pdf reports malformed
// content by panicking, so panics are turned into errors here.
func readPDF(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", wrapIOError(fmt.Errorf("%v", r), "parse pdf %s", path)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return "", wrapIOError(err, "open %s", path)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return "", wrapIOError(err, "stat %s", path)
	}
	doc, err := rpdf.NewReader(f, fi.Size())
	if err != nil {
		return "", wrapIOError(err, "parse pdf %s", path)
	}

	var pages []string
	for i := 1; i <= doc.NumPage(); i++ {
		p := doc.Page(i)
		if p.V.IsNull() {
			continue
		}
		pages = append(pages, pageLines(p.Content().Text))
	}
	return strings.Join(pages, "\n\n"), nil
}

// pageLines groups text runs sharing a baseline into lines, top of the page
// first.
func pageLines(runs []rpdf.Text) string {
	if len(runs) == 0 {
		return ""
	}
	sorted := make([]rpdf.Text, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Y > sorted[j].Y })

	var groups [][]rpdf.Text
	for _, t := range sorted {
		n := len(groups)
		if n > 0 && sameBaseline(groups[n-1][0], t) {
			groups[n-1] = append(groups[n-1], t)
			continue
		}
		groups = append(groups, []rpdf.Text{t})
	}

	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		sort.SliceStable(g, func(i, j int) bool { return g[i].X < g[j].X })
		var b strings.Builder
		for i, t := range g {
			if i > 0 && wordGap(g[i-1], t) {
				b.WriteByte(' ')
			}
			b.WriteString(t.S)
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return strings.Join(lines, "\n")
}

// wordGap reports whether the space between two glyphs on one line stands
// for a blank. Space glyphs are not part of the extracted text.
func wordGap(prev, next rpdf.Text) bool {
	size := math.Max(prev.FontSize, next.FontSize)
	if size <= 0 {
		size = 1
	}
	return next.X-(prev.X+prev.W) > size*0.15
}

func sameBaseline(a, b rpdf.Text) bool {
	tol := math.Max(a.FontSize, b.FontSize) / 2
	if tol <= 0 {
		tol = 1
	}
	return math.Abs(a.Y-b.Y) < tol
}
