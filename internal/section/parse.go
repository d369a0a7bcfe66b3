package section

import "strings"

// matchMarker reports whether line opens a section and returns its marker and
// title. Only the exact marker token followed by a space counts, so nested
// headings such as "## sub" stay in the body.
func matchMarker(line string) (Marker, string, bool) {
	line = strings.TrimSuffix(line, "\r")
	for _, m := range Markers {
		prefix := string(m) + " "
		if strings.HasPrefix(line, prefix) {
			return m, strings.TrimSpace(line[len(prefix):]), true
		}
	}
	return "", "", false
}

// Parse segments a composite document into sections. Text before the first
// marker line is returned separately as the preamble.
func Parse(text string) (sections []Section, preamble string) {
	const (
		seekingMarker = iota
		inBody
	)

	var (
		state = seekingMarker
		cur   Section
		body  strings.Builder
		pre   strings.Builder
	)
	flush := func() {
		cur.Body = strings.TrimSpace(body.String())
		sections = append(sections, cur)
		body.Reset()
	}

	for line := range strings.Lines(text) {
		line = strings.TrimSuffix(line, "\n")
		if m, title, ok := matchMarker(line); ok {
			if state == inBody {
				flush()
			}
			cur = Section{Marker: m, Title: title}
			state = inBody
			continue
		}
		if state == seekingMarker {
			pre.WriteString(line)
			pre.WriteByte('\n')
			continue
		}
		body.WriteString(strings.TrimSuffix(line, "\r"))
		body.WriteByte('\n')
	}
	if state == inBody {
		flush()
	}
	return sections, strings.TrimSpace(pre.String())
}

// Render formats a section the way it is stored in a section file.
func Render(s Section) string {
	head := string(s.Marker) + " " + s.Title + "\n"
	body := strings.TrimSpace(s.Body)
	if body == "" {
		return head
	}
	return head + "\n" + body + "\n"
}

// renderComposed formats a section as one entry of a composite document.
func renderComposed(s Section) string {
	return Render(s) + "\n"
}
