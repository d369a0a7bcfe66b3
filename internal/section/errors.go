package section

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const (
	usageErrorCode = "USAGE_ERROR"
	ioErrorCode    = "IO_ERROR"
)

// ErrUsage is the source of every error caused by bad arguments.
var ErrUsage = errors.New("usage error")

func usageErrorf(format string, args ...any) error {
	return goerrors.Wrap(ErrUsage, goerrors.CategoryValidation, fmt.Sprintf(format, args...)).
		WithTextCode(usageErrorCode)
}

func wrapIOError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, fmt.Sprintf(format, args...)).
		WithTextCode(ioErrorCode)
}

// IsUsage reports whether err was caused by invalid arguments or path types.
func IsUsage(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryValidation)
}
