package gitcmd

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestBoundedBufferRefusesOverflow(t *testing.T) {
	b := &boundedBuffer{limit: 8}

	if _, err := b.Write([]byte("12345678")); err != nil {
		t.Fatalf("write within limit failed: %v", err)
	}
	if _, err := b.Write([]byte("9")); !errors.Is(err, ErrOutputTruncated) {
		t.Errorf("expected ErrOutputTruncated past the limit, got %v", err)
	}
	// The buffer must hold exactly what was accepted, nothing partial.
	if b.String() != "12345678" {
		t.Errorf("buffer content mismatch: %q", b.String())
	}
}

func TestRunGitCommandQuiet(t *testing.T) {
	ctx := context.Background()

	t.Run("Failure Swallowed", func(t *testing.T) {
		teardown := setupMockRunner(t, func(_ context.Context, _ ...string) (string, error) {
			return "partial", errors.New("boom")
		})
		defer teardown()

		if out := RunGitCommandQuiet(ctx, "status"); out != "" {
			t.Errorf("expected empty output on failure, got %q", out)
		}
	})

	t.Run("Success Passed Through", func(t *testing.T) {
		teardown := setupMockRunner(t, func(_ context.Context, _ ...string) (string, error) {
			return "ok", nil
		})
		defer teardown()

		if out := RunGitCommandQuiet(ctx, "status"); out != "ok" {
			t.Errorf("expected ok, got %q", out)
		}
	})
}

func TestStderrOf(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "Extracts Stderr Tail",
			err:  errors.New("git command failed: exit status 1\nargs: [branch -d x]\nstderr: not fully merged"),
			want: "not fully merged",
		},
		{
			name: "Plain Error Unchanged",
			err:  errors.New("plain error message"),
			want: "plain error message",
		},
		{
			name: "Empty Stderr Falls Back",
			err:  errors.New("git command failed: exit status 1\nstderr:"),
			want: "git command failed: exit status 1\nstderr:",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := stderrOf(tc.err); got != tc.want {
				t.Errorf("stderrOf mismatch.\nGot:  %q\nWant: %q", got, tc.want)
			}
		})
	}
}

func TestRunGitCommandNilRunner(t *testing.T) {
	original := Runner
	Runner = nil
	defer func() { Runner = original }()

	_, err := RunGitCommand(context.Background(), "status")
	if err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("expected initialization error, got %v", err)
	}
}
