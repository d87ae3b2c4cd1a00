// Package batch runs the Unity editor headless against a project and
// reports how the run ended.
package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"time"

	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"

	"github.com/bianoble/unity-assets/internal/errors"
	"github.com/bianoble/unity-assets/internal/logger"
)

// DefaultTimeout bounds a batch run when Options.Timeout is zero.
const DefaultTimeout = 5 * time.Minute

// Options describes one batch invocation.
type Options struct {
	// Executable is an explicit editor path. Empty resolves through
	// UNITY_PATH and the platform defaults.
	Executable    string
	EditorVersion string

	ProjectPath   string
	ExecuteMethod string

	// Args are passed as "-key value" pairs in sorted key order.
	Args map[string]string

	// LogFile defaults to <tmp>/unity-batch-<unix-ms>.log.
	LogFile string
	Timeout time.Duration

	// Output receives the editor's stdout and stderr. Nil discards them.
	Output io.Writer

	// Resolve overrides environment and filesystem lookups during
	// executable resolution.
	Resolve ResolveOptions
}

// Result describes how a batch run ended.
type Result struct {
	Succeeded bool
	ExitCode  int
	TimedOut  bool
	// Canceled is set when the caller's context ended before the editor.
	Canceled bool

	Executable string
	Command    string
	LogPath    string
	LogTail    string
	HasTail    bool
	Duration   time.Duration
}

// Runner launches the editor.
type Runner struct {
	logger *zap.SugaredLogger
	now    func() time.Time
}

// NewRunner creates a Runner. A nil logger uses the "batch" component
// logger.
func NewRunner(l *zap.SugaredLogger) *Runner {
	return &Runner{logger: logger.OrComponent(l, "batch"), now: time.Now}
}

// Args builds the editor command line for opts with the given log file.
func Args(opts Options, logFile string) []string {
	args := []string{
		"-batchmode",
		"-nographics",
		"-projectPath", opts.ProjectPath,
		"-executeMethod", opts.ExecuteMethod,
		"-logFile", logFile,
		"-quit",
	}
	keys := make([]string, 0, len(opts.Args))
	for k := range opts.Args {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "-"+k, opts.Args[k])
	}
	return args
}

// DefaultLogFile returns the log path used when Options.LogFile is empty.
func DefaultLogFile(now time.Time) string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("unity-batch-%d.log", now.UnixMilli()))
}

// Run launches the editor and waits for it to exit, time out, or be
// canceled. The returned error is non-nil only when no executable could be
// resolved; every outcome after that is described by the Result.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.ProjectPath == "" || opts.ExecuteMethod == "" {
		return nil, errors.Wrap(errors.ErrConfiguration, "batch run needs a project path and an execute method")
	}

	resolve := opts.Resolve
	if opts.Executable != "" {
		resolve.Explicit = opts.Executable
	}
	if resolve.EditorVersion == "" {
		resolve.EditorVersion = opts.EditorVersion
	}
	exe, err := ResolveExecutable(resolve)
	if err != nil {
		return nil, err
	}

	start := r.now()
	logFile := opts.LogFile
	if logFile == "" {
		logFile = DefaultLogFile(start)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	args := Args(opts, logFile)
	result := &Result{
		Executable: exe,
		Command:    shellquote.Join(append([]string{exe}, args...)...),
		LogPath:    logFile,
	}

	r.logger.Infow("Launching Unity in batch mode",
		logger.FieldBinary, exe,
		logger.FieldProject, opts.ProjectPath,
		logger.FieldLogFile, logFile,
		logger.FieldTimeout, timeout.String(),
	)
	r.logger.Debugw("Batch command", "command", result.Command)

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.Command(exe, args...)
	cmd.Dir = opts.ProjectPath
	out := opts.Output
	if out == nil {
		out = io.Discard
	}
	cmd.Stdout = out
	cmd.Stderr = out
	cmd.WaitDelay = time.Second
	setProcessGroup(cmd)

	if err := cmd.Start(); err != nil {
		result.ExitCode = 1
		result.LogTail = err.Error()
		result.HasTail = true
		result.Duration = time.Since(start)
		r.logger.Errorw("Failed to launch Unity", logger.FieldBinary, exe, logger.FieldError, err)
		return result, nil
	}
	r.logger.Debugw("Unity started", logger.FieldPID, cmd.Process.Pid)

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	select {
	case <-runCtx.Done():
		killProcessGroup(cmd)
		<-done
		result.ExitCode = 1
		if ctx.Err() != nil {
			result.Canceled = true
		} else {
			result.TimedOut = true
		}
	case err = <-done:
		result.ExitCode = exitCode(err)
		result.Succeeded = result.ExitCode == 0
	}
	result.Duration = time.Since(start)

	if tail, ok := TailFile(logFile, DefaultTailLines); ok {
		result.LogTail = tail
		result.HasTail = true
	}

	fields := []any{
		logger.FieldExitCode, result.ExitCode,
		logger.FieldDurationMS, result.Duration.Milliseconds(),
		logger.FieldLogFile, logFile,
	}
	switch {
	case result.TimedOut:
		r.logger.Errorw("Unity batch run timed out", fields...)
	case result.Canceled:
		r.logger.Warnw("Unity batch run canceled", fields...)
	case !result.Succeeded:
		r.logger.Errorw("Unity batch run failed", fields...)
	default:
		r.logger.Infow("Unity batch run completed", fields...)
	}
	return result, nil
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code > 0 {
			return code
		}
	}
	return 1
}
