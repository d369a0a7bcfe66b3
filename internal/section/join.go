package section

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Compose joins section files into a single document written to outPath, or
// to opts.Stdout when outPath is Stdout. inputs is either one directory,
// whose files carrying the section extension are read in name order, or an
// ordered list of files. Nothing is written when no section was read, so an
// existing output is never truncated by an empty run.
func Compose(inputs []string, outPath string, opts Options) (Result, error) {
	opts = opts.withDefaults()
	files, err := resolveInputs(inputs, opts.Ext)
	if err != nil {
		return Result{}, err
	}
	if outPath != Stdout {
		if err := checkOutputFile(outPath); err != nil {
			return Result{}, err
		}
	}

	res := Result{Out: outPath}
	var buf strings.Builder
	for _, path := range files {
		opts.Logger.Info("reading", "file", path)
		s, err := readSectionFile(path, opts.Marker)
		if err != nil {
			return Result{}, err
		}
		buf.WriteString(renderComposed(s))
		res.Sections = append(res.Sections, s)
		res.Files = append(res.Files, path)
	}

	if buf.Len() == 0 {
		opts.Logger.Warn("nothing to compose", "out", outPath)
		return res, nil
	}
	if outPath == Stdout {
		if _, err := io.WriteString(opts.Stdout, buf.String()); err != nil {
			return res, wrapIOError(err, "write stdout")
		}
		return res, nil
	}
	return res, writeFile(outPath, buf.String())
}

// resolveInputs expands the compose arguments into the ordered list of files
// to read.
func resolveInputs(inputs []string, ext string) ([]string, error) {
	if len(inputs) == 0 {
		return nil, usageErrorf("no input paths given")
	}

	var dirs, files []string
	for _, in := range inputs {
		switch {
		case isDir(in):
			dirs = append(dirs, in)
		case isRegularFile(in):
			files = append(files, in)
		case len(inputs) == 1:
			return nil, usageErrorf("%q is not a directory", in)
		default:
			return nil, usageErrorf("%q is not a file", in)
		}
	}
	switch {
	case len(dirs) > 0 && len(files) > 0:
		return nil, usageErrorf("cannot mix directory %q with file arguments", dirs[0])
	case len(dirs) > 1:
		return nil, usageErrorf("expected a single input directory, got %d", len(dirs))
	case len(dirs) == 1:
		return listSectionFiles(dirs[0], ext)
	}
	return files, nil
}

func listSectionFiles(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, wrapIOError(err, "list %s", dir)
	}
	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() || filepath.Ext(e.Name()) != ext {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	out := make([]string, len(names))
	for i, n := range names {
		out[i] = filepath.Join(dir, n)
	}
	return out, nil
}

// readSectionFile rebuilds a section from its file. A file without a marker
// line is titled after its base name.
func readSectionFile(path string, fallback Marker) (Section, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Section{}, wrapIOError(err, "read %s", path)
	}
	text := string(b)

	first, rest, _ := strings.Cut(text, "\n")
	if m, title, ok := matchMarker(first); ok {
		return Section{Marker: m, Title: title, Body: strings.TrimSpace(rest)}, nil
	}
	return Section{
		Marker: fallback,
		Title:  filepath.Base(path),
		Body:   strings.TrimSpace(text),
	}, nil
}
