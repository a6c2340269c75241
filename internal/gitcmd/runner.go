// Package gitcmd provides a narrow, typed query surface over the git
// command-line tool.
package gitcmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// maxOutputBytes bounds the stdout/stderr captured from a single git
// invocation. Output beyond the bound is a hard failure rather than a
// silent truncation.
const maxOutputBytes = 4 << 20

// ErrOutputTruncated is returned when a git command produces more output
// than the capture buffer allows.
var ErrOutputTruncated = errors.New("git output exceeded capture limit")

// GitRunner defines the function signature for executing git commands.
// This allows mocking the actual git execution during tests.
type GitRunner func(ctx context.Context, args ...string) (stdout string, err error)

// Runner is the package-level variable holding the function used to run git
// commands. It defaults to the real implementation but can be swapped out in
// tests.
var Runner GitRunner = runGitCommandReal

// boundedBuffer is a bytes.Buffer that refuses writes past a byte limit.
type boundedBuffer struct {
	buf   bytes.Buffer
	limit int
}

func (b *boundedBuffer) Write(p []byte) (int, error) {
	if b.buf.Len()+len(p) > b.limit {
		return 0, ErrOutputTruncated
	}
	return b.buf.Write(p)
}

func (b *boundedBuffer) String() string { return b.buf.String() }

// runGitCommandReal is the actual implementation that executes git commands.
func runGitCommandReal(ctx context.Context, args ...string) (string, error) {
	if _, deadlineSet := ctx.Deadline(); !deadlineSet {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)

	stdoutBuf := &boundedBuffer{limit: maxOutputBytes}
	stderrBuf := &boundedBuffer{limit: maxOutputBytes}
	cmd.Stdout = stdoutBuf
	cmd.Stderr = stderrBuf

	err := cmd.Run()
	stdout := strings.TrimSpace(stdoutBuf.String())
	stderr := strings.TrimSpace(stderrBuf.String())

	if err != nil {
		if errors.Is(err, ErrOutputTruncated) {
			return "", fmt.Errorf("git command output too large: %w\nargs: %v", ErrOutputTruncated, args)
		}
		return stdout, fmt.Errorf("git command failed: %w\nargs: %v\nstderr: %s", err, args, stderr)
	}

	return stdout, nil
}

// RunGitCommand is a convenience wrapper that uses the package-level Runner.
// All internal gitcmd functions should use this instead of calling
// runGitCommandReal directly.
func RunGitCommand(ctx context.Context, args ...string) (string, error) {
	if Runner == nil {
		return "", fmt.Errorf("GitRunner is not initialized")
	}
	return Runner(ctx, args...)
}

// RunGitCommandQuiet runs a git command and swallows any failure, returning
// empty output instead. Used for queries where a non-zero exit is an
// expected answer (missing ref, detached HEAD) rather than an error.
func RunGitCommandQuiet(ctx context.Context, args ...string) string {
	out, err := RunGitCommand(ctx, args...)
	if err != nil {
		return ""
	}
	return out
}

// stderrOf extracts the stderr portion of an error produced by
// runGitCommandReal, falling back to the full error text.
func stderrOf(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, "stderr:"); idx >= 0 {
		if tail := strings.TrimSpace(msg[idx+len("stderr:"):]); tail != "" {
			return tail
		}
	}
	return msg
}
