package section

import (
	"errors"
	"io/fs"
	"os"
)

func isRegularFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// checkOutputFile accepts a missing path or an existing regular file.
func checkOutputFile(path string) error {
	fi, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return wrapIOError(err, "stat %s", path)
	}
	if !fi.Mode().IsRegular() {
		return usageErrorf("%q is not a file", path)
	}
	return nil
}

func writeFile(path, content string) error {
	f, err := os.Create(path)
	if err != nil {
		return wrapIOError(err, "create %s", path)
	}
	defer f.Close()
	if _, err := f.WriteString(content); err != nil {
		return wrapIOError(err, "write %s", path)
	}
	return wrapIOError(f.Close(), "close %s", path)
}
