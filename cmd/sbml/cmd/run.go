package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	sbmlerror "github.com/msto63/sbml/foundation/core/error"
	sbmllog "github.com/msto63/sbml/foundation/core/log"
	"github.com/msto63/sbml/foundation/sbml"
	"github.com/msto63/sbml/foundation/utils/filex"
	"github.com/msto63/sbml/internal/journal"
	"github.com/msto63/sbml/internal/watch"
	"github.com/spf13/cobra"
)

var runWatch bool

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Run a program",
	Long: `Parses FILE completely and then executes it. A syntax error is
reported before anything is printed; a semantic error stops the program
after the output produced so far.

With --watch the program is run again whenever FILE changes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if runWatch {
			return watchFile(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0])
		}
		return runFile(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false, "re-run when the file changes")
}

// maxProgramBytes caps program files read from disk
var maxProgramBytes int64 = 16 << 20

func readSource(path string) (string, error) {
	if filex.Exists(path) && !filex.IsFile(path) {
		return "", sbmlerror.New("program is not a regular file").
			WithCode(sbmlerror.CodeInvalidInput).
			WithDetail("path", path)
	}
	source, err := filex.ReadSource(path, maxProgramBytes)
	if err != nil {
		return "", sbmlerror.Wrap(err, "failed to read program").
			WithCode(readErrorCode(err)).
			WithDetail("path", path)
	}
	return source, nil
}

func readErrorCode(err error) sbmlerror.Code {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return sbmlerror.CodeNotFound
	case errors.Is(err, filex.ErrTooLarge):
		return sbmlerror.CodeInvalidInput
	default:
		return sbmlerror.CodeInternal
	}
}

func runFile(ctx context.Context, out, errOut io.Writer, path string) error {
	source, err := readSource(path)
	if err != nil {
		return err
	}

	store, err := openJournal()
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	runID, logger := newRunID()
	started := time.Now()
	counter := &lineCounter{w: out}

	interp := sbml.New(sbml.Options{
		Logger:        logger,
		Output:        counter,
		MaxIterations: app.settings.MaxIterations,
	})
	runErr := interp.Run(ctx, source)
	if runErr != nil && isProgramError(runErr) {
		reportProgramError(out, errOut, runErr, source)
	}

	logger.Info("run finished", sbmllog.Fields{
		"path":     path,
		"status":   string(journal.StatusFromError(runErr)),
		"duration": time.Since(started).String(),
	})
	recordRun(store, journal.NewEntry(runID, path, source, started, counter.lines, runErr), logger)
	return runErr
}

// watchFile runs path once and again after every change until ctx is done.
// Program errors do not stop watching.
func watchFile(ctx context.Context, out, errOut io.Writer, path string) error {
	w, err := watch.New(path, watch.Options{
		Logger:   app.logger,
		Debounce: app.settings.WatchDebounce,
	})
	if err != nil {
		return err
	}

	rerun := func(ctx context.Context) {
		if err := runFile(ctx, out, errOut, path); err != nil && !isProgramError(err) {
			printError(errOut, err)
		}
	}

	rerun(ctx)
	fmt.Fprintln(errOut, mutedStyle().Render("watching "+w.Path()+" (Ctrl+C to stop)"))

	return w.Run(ctx, func(ctx context.Context) {
		fmt.Fprintln(errOut, mutedStyle().Render(fmt.Sprintf("--- %s changed, running again ---", path)))
		rerun(ctx)
	})
}

// lineCounter counts the newlines written through it
type lineCounter struct {
	w     io.Writer
	lines int
}

func (c *lineCounter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.lines += bytes.Count(p[:n], []byte{'\n'})
	return n, err
}
