package section

import "path/filepath"

// Decompose splits the document at inPath into one file per section inside
// outDir. Existing files are overwritten; when two titles map to the same
// filename the later section wins. Files written before a failure are left
// in place.
func Decompose(inPath, outDir string, opts Options) (Result, error) {
	opts = opts.withDefaults()
	if !isRegularFile(inPath) {
		return Result{}, usageErrorf("%q is not a file", inPath)
	}
	if !isDir(outDir) {
		return Result{}, usageErrorf("%q is not a directory", outDir)
	}

	text, err := ReadDocument(inPath)
	if err != nil {
		return Result{}, err
	}
	sections, preamble := Parse(text)
	if preamble != "" {
		opts.Logger.Warn("skipping preamble", "file", inPath, "bytes", len(preamble))
	}

	res := Result{Sections: sections, Out: outDir}
	for _, s := range sections {
		path := filepath.Join(outDir, ToFilename(s.Title, opts.Ext))
		opts.Logger.Info("writing", "file", path)
		if err := writeFile(path, Render(s)); err != nil {
			return res, err
		}
		res.Files = append(res.Files, path)
	}
	return res, nil
}
