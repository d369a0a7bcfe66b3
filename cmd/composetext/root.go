package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	goerrors "github.com/goliatone/go-errors"
	"github.com/spf13/cobra"
	"github.com/thywilljoshua/composetext/internal/section"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

const longHelp = `Compose/decompose text files with multiple sections

If a text file has separator lines like

	---- the title
or
	# the title

it can be decomposed into multiple files split at the separators. For example,
the-title.txt will contain the text from the title up to the next separator.
Composing reads the files back in name order and joins them.`

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var started bool
	cmd := rootCmd(stdout, stderr, &started)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	switch {
	case err == nil:
		return exitOK
	case !started, section.IsUsage(err), isArgError(err):
		fmt.Fprintf(stderr, "error: %s\n\n%s", usageMessage(err), cmd.UsageString())
		return exitUsage
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}
}

// rootCmd builds the command. started is set once flags and arguments have
// passed cobra's validation, so earlier failures can be reported as usage
// errors.
func rootCmd(stdout, stderr io.Writer, started *bool) *cobra.Command {
	var compose bool
	var decompose bool
	var ext string
	var marker string
	var quiet bool

	cmd := &cobra.Command{
		Use:           "composetext (-c <inputs...> <outpath> | -d <inpath> <outdir>)",
		Short:         "Split a sectioned text file into files, or join them back",
		Long:          longHelp,
		Args:          cobra.MinimumNArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			*started = true
			fallback, err := section.ParseMarker(marker)
			if err != nil {
				return err
			}
			level := slog.LevelInfo
			if quiet {
				level = slog.LevelWarn
			}
			opts := section.Options{
				Ext:    ext,
				Marker: fallback,
				Stdout: stdout,
				Logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
			}

			if decompose {
				if len(args) != 2 {
					return argError{fmt.Errorf("decompose takes exactly 2 paths, got %d", len(args))}
				}
				_, err := section.Decompose(args[0], args[1], opts)
				return err
			}
			_, err = section.Compose(args[:len(args)-1], args[len(args)-1], opts)
			return err
		},
	}
	cmd.Flags().BoolVarP(&compose, "compose", "c", false, "compose multiple text files into a single file (outpath '-' writes to stdout)")
	cmd.Flags().BoolVarP(&decompose, "decompose", "d", false, "decompose a text file with separators into multiple files")
	cmd.Flags().StringVar(&ext, "ext", section.DefaultExt, "extension of section files")
	cmd.Flags().StringVar(&marker, "marker", string(section.HashMarker), "marker for composed files without a title line: '#' or '----'")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only report warnings and errors")
	cmd.MarkFlagsMutuallyExclusive("compose", "decompose")
	cmd.MarkFlagsOneRequired("compose", "decompose")
	return cmd
}

// usageMessage drops the category and source decoration go-errors adds, so
// the user sees only the complaint about the argument.
func usageMessage(err error) string {
	var ge *goerrors.Error
	if errors.As(err, &ge) && ge.Message != "" {
		return ge.Message
	}
	return err.Error()
}

type argError struct{ err error }

func (e argError) Error() string { return e.err.Error() }
func (e argError) Unwrap() error { return e.err }

func isArgError(err error) bool {
	var ae argError
	return errors.As(err, &ae)
}
