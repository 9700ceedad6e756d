package growthbench

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Subject is the program under test. It has exactly two modes:
// generate an input file of a given size, and process a file.
type Subject interface {
	// GenerateInput writes an input of the given size to path.
	GenerateInput(ctx context.Context, size int, path string) error

	// Process runs the subject on path and returns the wall-clock time it took.
	Process(ctx context.Context, path string) (time.Duration, error)
}

// Invocation modes, used in errors, logs and metrics.
const (
	ModeGenerate = "generate"
	ModeProcess  = "process"
)

// SubjectError reports a failed subject invocation: a non-zero exit or a
// process that could not be launched.
type SubjectError struct {
	Mode   string // ModeGenerate or ModeProcess
	Size   int    // Input size, 0 when unknown to the subject
	Output string // Combined stdout/stderr, trimmed
	Err    error
}

func (e *SubjectError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s failed", e.Mode)
	if e.Size > 0 {
		fmt.Fprintf(&b, " for size %d", e.Size)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	if e.Output != "" {
		fmt.Fprintf(&b, " (output: %s)", e.Output)
	}
	return b.String()
}

func (e *SubjectError) Unwrap() error { return e.Err }

// CommandSubject shells out to an executable.
//
// Command is the argv prefix, e.g. ["dune", "exec", "certified_sanitizer", "--"].
// Generation appends `--input-gen --size=<N> --file=<path>`, processing
// appends the file path as the single positional argument.
type CommandSubject struct {
	Command []string
	Dir     string   // Working directory for the subject (empty = current)
	Env     []string // Extra environment, appended to os.Environ()
}

// NewCommandSubject splits a command line on whitespace.
func NewCommandSubject(command string) (*CommandSubject, error) {
	argv := strings.Fields(command)
	if len(argv) == 0 {
		return nil, errors.New("subject command is empty")
	}
	return &CommandSubject{Command: argv}, nil
}

// GenerateInput runs the subject in input-generation mode.
func (s *CommandSubject) GenerateInput(ctx context.Context, size int, path string) error {
	_, err := s.run(ctx, "--input-gen", fmt.Sprintf("--size=%d", size), fmt.Sprintf("--file=%s", path))
	if err != nil {
		err.Mode = ModeGenerate
		err.Size = size
		return err
	}
	return nil
}

// Process runs the subject on path. The measured time spans the whole
// process lifetime, startup included.
func (s *CommandSubject) Process(ctx context.Context, path string) (time.Duration, error) {
	elapsed, err := s.run(ctx, path)
	if err != nil {
		err.Mode = ModeProcess
		return 0, err
	}
	return elapsed, nil
}

func (s *CommandSubject) run(ctx context.Context, args ...string) (time.Duration, *SubjectError) {
	if len(s.Command) == 0 {
		return 0, &SubjectError{Err: errors.New("subject command is empty")}
	}

	argv := append(append([]string{}, s.Command[1:]...), args...)
	cmd := exec.CommandContext(ctx, s.Command[0], argv...)
	cmd.Dir = s.Dir
	if len(s.Env) > 0 {
		cmd.Env = append(os.Environ(), s.Env...)
	}

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	// time.Now carries a monotonic reading; Since uses it.
	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		return 0, &SubjectError{Output: strings.TrimSpace(out.String()), Err: err}
	}
	return elapsed, nil
}

// StubSubject is an in-memory subject for tests and dry runs. It writes a file
// of Size bytes and reports a synthetic latency without sleeping.
type StubSubject struct {
	// Latency returns the time to report for a given size. Nil means zero.
	Latency func(size int) time.Duration

	// FailGenerate and FailProcess select sizes whose invocation fails.
	FailGenerate func(size int) bool
	FailProcess  func(size int) bool

	// Calls records every invocation in order, e.g. "generate 100", "process 100".
	Calls []string

	sizes map[string]int
}

// QuadraticLatency returns a latency function c·n² seconds.
func QuadraticLatency(c float64) func(int) time.Duration {
	return func(n int) time.Duration {
		return time.Duration(c * float64(n) * float64(n) * float64(time.Second))
	}
}

// GenerateInput writes size bytes to path unless the size is configured to fail.
func (s *StubSubject) GenerateInput(ctx context.Context, size int, path string) error {
	s.Calls = append(s.Calls, fmt.Sprintf("%s %d", ModeGenerate, size))
	if err := ctx.Err(); err != nil {
		return &SubjectError{Mode: ModeGenerate, Size: size, Err: err}
	}
	if s.FailGenerate != nil && s.FailGenerate(size) {
		return &SubjectError{Mode: ModeGenerate, Size: size, Err: errors.New("exit status 1")}
	}
	if err := os.WriteFile(path, bytes.Repeat([]byte{'a'}, size), 0o644); err != nil {
		return &SubjectError{Mode: ModeGenerate, Size: size, Err: err}
	}
	if s.sizes == nil {
		s.sizes = make(map[string]int)
	}
	s.sizes[path] = size
	return nil
}

// Process reports the configured latency for the file generated at path.
func (s *StubSubject) Process(ctx context.Context, path string) (time.Duration, error) {
	size := s.sizes[path]
	s.Calls = append(s.Calls, fmt.Sprintf("%s %d", ModeProcess, size))
	if err := ctx.Err(); err != nil {
		return 0, &SubjectError{Mode: ModeProcess, Size: size, Err: err}
	}
	if _, err := os.Stat(path); err != nil {
		return 0, &SubjectError{Mode: ModeProcess, Size: size, Err: err}
	}
	if s.FailProcess != nil && s.FailProcess(size) {
		return 0, &SubjectError{Mode: ModeProcess, Size: size, Err: errors.New("exit status 2")}
	}
	if s.Latency == nil {
		return 0, nil
	}
	return s.Latency(size), nil
}
