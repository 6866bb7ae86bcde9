// Package shim implements the launcher installed next to a packaged binary.
// It resolves <install-dir>/bin/<name>, checks that the binary is there and
// hands control to it, forwarding the arguments and the exit status.
package shim

import (
	"binshim/internal/executor"
	"binshim/internal/manifest"
	"binshim/pkg/layout"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// ErrBinaryNotFound is returned when the binary path does not name a regular file.
var ErrBinaryNotFound = errors.New("binary not found")

// Options configures a Launcher. Zero fields are filled from the running process.
type Options struct {
	Name       string // Binary base name baked in at link time
	Hint       string // Reinstall command baked in at link time
	InstallDir string
	GOOS       string
	Env        []string
	Stderr     io.Writer
	Logger     *logrus.Logger
	Executor   executor.Executor
}

// Launcher locates the packaged binary and hands control to it.
type Launcher struct {
	name       string
	hint       string
	installDir string
	goos       string
	env        []string
	stderr     io.Writer
	logger     *logrus.Logger
	executor   executor.Executor
}

// New creates a launcher. The manifest in the install directory supplies
// the name and hint when they were not set at link time.
func New(opts Options) (*Launcher, error) {
	l := &Launcher{
		name:       opts.Name,
		hint:       opts.Hint,
		installDir: opts.InstallDir,
		goos:       opts.GOOS,
		env:        opts.Env,
		stderr:     opts.Stderr,
		logger:     opts.Logger,
		executor:   opts.Executor,
	}

	if l.stderr == nil {
		l.stderr = os.Stderr
	}
	if l.logger == nil {
		l.logger = NewLogger(l.stderr, "")
	}
	if l.goos == "" {
		l.goos = runtime.GOOS
	}
	if l.env == nil {
		l.env = os.Environ()
	}
	if l.executor == nil {
		l.executor = executor.ForOS(l.goos, l.logger)
	}

	if l.installDir == "" {
		dir, err := InstallDir()
		if err != nil {
			return nil, err
		}
		l.installDir = dir
	}

	m, err := manifest.Load(l.installDir)
	if err != nil {
		return nil, err
	}
	if l.name == "" {
		l.name = m.Name
	}
	if l.hint == "" {
		l.hint = m.Reinstall
	}
	if l.name == "" {
		l.name = selfName()
	}
	if l.name == "" {
		return nil, errors.New("cannot determine binary name")
	}

	l.logger.WithFields(logrus.Fields{
		"name":        l.name,
		"install_dir": l.installDir,
		"goos":        l.goos,
	}).Debug("launcher configured")

	return l, nil
}

// Path returns the location of the binary on this host.
func (l *Launcher) Path() string {
	if strings.EqualFold(l.goos, runtime.GOOS) {
		return layout.BinaryPath(l.installDir, l.name, l.goos)
	}
	// Simulated OS: keep the host's separator, the file is opened here.
	return filepath.Join(l.installDir, layout.BinDir, layout.BinaryName(l.name, l.goos))
}

// Resolve returns the binary path. If it does not name a regular file the
// path is still returned, with an error wrapping ErrBinaryNotFound.
func (l *Launcher) Resolve() (string, error) {
	path := l.Path()

	info, err := os.Stat(path)
	if err != nil {
		return path, fmt.Errorf("%w at %s: %v", ErrBinaryNotFound, path, err)
	}
	if !info.Mode().IsRegular() {
		return path, fmt.Errorf("%w at %s: not a regular file", ErrBinaryNotFound, path)
	}
	return path, nil
}

// Run hands control to the binary and returns the exit status the launcher
// should terminate with. With the Replace strategy it does not return unless
// the replacement fails.
func (l *Launcher) Run(args []string) int {
	path, err := l.Resolve()
	if err != nil {
		l.logger.Debug(err)
		fmt.Fprintf(l.stderr, "%s binary not found at %s\n", l.prefix(), path)
		fmt.Fprintf(l.stderr, "try reinstalling%s\n", l.hintSuffix())
		return 1
	}

	code, err := l.executor.Execute(context.Background(), executor.NewTarget(path, args, l.env))
	if err != nil {
		var launchErr *executor.LaunchError
		if errors.As(err, &launchErr) {
			fmt.Fprintf(l.stderr, "%s failed to %s %s: %v\n", l.prefix(), launchErr.Op, launchErr.Path, launchErr.Err)
		} else {
			fmt.Fprintf(l.stderr, "%s %v\n", l.prefix(), err)
		}
		return 1
	}
	return code
}

// prefix colours the program name only when stderr itself is a terminal.
func (l *Launcher) prefix() string {
	c := color.New(color.FgRed, color.Bold)
	if f, ok := l.stderr.(*os.File); ok && isTerminal(f.Fd()) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(l.name + ":")
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (l *Launcher) hintSuffix() string {
	if l.hint == "" {
		return ""
	}
	return ": " + l.hint
}

// InstallDir returns the directory holding the running launcher, with
// symlinks resolved so a launcher linked onto PATH still finds its bin/.
func InstallDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate launcher: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// selfName derives a binary name from how the launcher was invoked.
func selfName() string {
	if len(os.Args) == 0 {
		return ""
	}
	name := filepath.Base(os.Args[0])
	if ext := filepath.Ext(name); strings.EqualFold(ext, ".exe") {
		name = strings.TrimSuffix(name, ext)
	}
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	return name
}

// Run executes the launcher for the current process and returns the exit code.
func Run(name, hint string, args []string) int {
	logger := NewLogger(os.Stderr, os.Getenv(DebugEnv))

	l, err := New(Options{Name: name, Hint: hint, Logger: logger})
	if err != nil {
		prog := name
		if prog == "" {
			prog = selfName()
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", prog, err)
		return 1
	}
	return l.Run(args)
}
