// Helpers for mocking git command execution in this package's tests.
package gitcmd

import (
	"context"
	"errors"
	"testing"
)

// setupMockRunner swaps the package Runner for the given mock and returns a
// teardown function restoring the original.
func setupMockRunner(t *testing.T, mockFunc func(ctx context.Context, args ...string) (string, error)) func() {
	t.Helper()
	originalRunner := Runner
	Runner = func(ctx context.Context, args ...string) (string, error) {
		if mockFunc == nil {
			return "", errors.New("mock runner not implemented")
		}
		return mockFunc(ctx, args...)
	}
	return func() {
		Runner = originalRunner
	}
}
