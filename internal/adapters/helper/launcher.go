package helper

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"sync"

	"github.com/bnema/swapbot/internal/logging"
	"github.com/bnema/swapbot/internal/ports"
)

const defaultBinary = "casperjs"

var ErrUnsupportedEnvironment = errors.New("unsupported environment for offer helper")

// process is a started child whose output streams are read until EOF before wait is called.
type process struct {
	stdout io.ReadCloser
	stderr io.ReadCloser
	wait   func() error
}

type startFunc func(ctx context.Context, name string, args ...string) (process, error)

// Launcher starts the external trade-offer acceptance script.
type Launcher struct {
	// Binary runs the script. Defaults to casperjs.
	Binary string

	environment string
	script      string
	logger      *slog.Logger
	start       startFunc
}

var _ ports.OfferHelper = (*Launcher)(nil)

func NewLauncher(environment, script string, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Launcher{
		Binary:      defaultBinary,
		environment: environment,
		script:      script,
		logger:      logger,
		start:       spawn,
	}
}

// Command returns the program and arguments used for the configured environment.
func (l *Launcher) Command() (string, []string, error) {
	switch l.environment {
	case "linux":
		return l.Binary, []string{l.script}, nil
	case "windows":
		return "cmd.exe", []string{"/c", l.Binary, l.script}, nil
	default:
		return "", nil, fmt.Errorf("%w: %q", ErrUnsupportedEnvironment, l.environment)
	}
}

func (l *Launcher) Start(ctx context.Context) (ports.OfferRun, error) {
	name, args, err := l.Command()
	if err != nil {
		return nil, err
	}

	proc, err := l.start(ctx, name, args...)
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", name, err)
	}

	run := &Run{done: make(chan struct{})}
	var streams sync.WaitGroup
	streams.Add(2)
	go l.drain(&streams, proc.stdout, slog.LevelInfo)
	go l.drain(&streams, proc.stderr, slog.LevelError)

	go func() {
		streams.Wait()
		run.finish(proc.wait())
	}()

	return run, nil
}

func (l *Launcher) drain(wg *sync.WaitGroup, r io.Reader, level slog.Level) {
	defer wg.Done()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l.logger.Log(context.Background(), level, "offer helper output", "line", scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		l.logger.Warn("read offer helper output failed", "err", err)
	}
}

// Run is the handle of one launched helper process.
type Run struct {
	done chan struct{}
	mu   sync.Mutex
	err  error
}

var _ ports.OfferRun = (*Run)(nil)

func (r *Run) Done() <-chan struct{} {
	return r.done
}

func (r *Run) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func (r *Run) finish(err error) {
	r.mu.Lock()
	r.err = err
	r.mu.Unlock()
	close(r.done)
}

func spawn(ctx context.Context, name string, args ...string) (process, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return process{}, fmt.Errorf("locate %s: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return process{}, fmt.Errorf("open stdout: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return process{}, fmt.Errorf("open stderr: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return process{}, err
	}

	return process{stdout: stdout, stderr: stderr, wait: cmd.Wait}, nil
}
