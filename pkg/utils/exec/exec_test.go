package exec

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitEmailLookup(t *testing.T) {
	var gotName string
	var gotArgs []string
	runner := func(ctx context.Context, name string, args ...string) (string, error) {
		gotName, gotArgs = name, args
		return "  dev@example.com\n", nil
	}

	email, err := GitEmailLookup(runner)(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "dev@example.com", email)
	assert.Equal(t, "git", gotName)
	assert.Equal(t, []string{"config", "--get", "user.email"}, gotArgs)
}

func TestGitEmailLookup_RunnerFails(t *testing.T) {
	runner := func(ctx context.Context, name string, args ...string) (string, error) {
		return "", errors.New("exit status 1")
	}

	_, err := GitEmailLookup(runner)(context.Background())
	assert.Error(t, err)
}

func TestDefaultRecipients(t *testing.T) {
	tests := []struct {
		name     string
		lookup   EmailLookup
		expected string
	}{
		{
			name: "lookup returns an address",
			lookup: func(ctx context.Context) (string, error) {
				return "dev@example.com", nil
			},
			expected: "dev@example.com",
		},
		{
			name: "lookup fails",
			lookup: func(ctx context.Context) (string, error) {
				return "", errors.New("git not found")
			},
			expected: "",
		},
		{
			name: "lookup returns nothing",
			lookup: func(ctx context.Context) (string, error) {
				return "", nil
			},
			expected: "",
		},
		{
			name:     "no lookup",
			lookup:   nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DefaultRecipients(context.Background(), tt.lookup))
		})
	}
}

func TestRunCommand_MissingBinary(t *testing.T) {
	_, err := RunCommand(context.Background(), "definitely-not-a-real-binary-for-launcher-tests")
	assert.Error(t, err)
}
