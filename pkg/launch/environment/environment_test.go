package environment

import (
	"testing"
	"time"

	launchTypes "github.com/litmuschaos/hyperion-launcher/pkg/launch/types"
	"github.com/stretchr/testify/assert"
)

func TestGetENV_FlagsOverrideEnv(t *testing.T) {
	t.Setenv(UsernameEnv, "env-user")
	t.Setenv(PasswordEnv, "env-pass")
	t.Setenv(TenantNameEnv, "env-tenant")

	details := launchTypes.LaunchDetails{Username: "flag-user"}
	GetENV(&details)

	assert.Equal(t, "flag-user", details.Username)
	assert.Equal(t, "env-pass", details.Password)
	assert.Equal(t, "env-tenant", details.TenantName)
}

func TestGetENV_Defaults(t *testing.T) {
	t.Setenv(EndpointEnv, "")
	t.Setenv(TimeoutEnv, "")

	details := launchTypes.LaunchDetails{}
	GetENV(&details)

	assert.Equal(t, launchTypes.DefaultEndpoint, details.Endpoint)
	assert.Equal(t, launchTypes.DefaultDuration, details.Duration)
	assert.Equal(t, launchTypes.DefaultTimeout, details.Timeout)
	assert.Equal(t, launchTypes.RecipientsKey, details.Features.RecipientsKey)
	assert.Equal(t, launchTypes.PrintFormatJSON, details.Features.PrintFormat)
}

func TestGetENV_EndpointAndTimeoutFromEnv(t *testing.T) {
	t.Setenv(EndpointEnv, "http://127.0.0.1:9999/launch")
	t.Setenv(TimeoutEnv, "5s")

	details := launchTypes.LaunchDetails{}
	GetENV(&details)

	assert.Equal(t, "http://127.0.0.1:9999/launch", details.Endpoint)
	assert.Equal(t, 5*time.Second, details.Timeout)
}

func TestGetDurationEnv(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{"valid duration", "45s", 45 * time.Second},
		{"unset", "", time.Minute},
		{"garbage", "soon", time.Minute},
		{"negative", "-3s", time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LAUNCHER_TEST_DURATION", tt.value)
			assert.Equal(t, tt.expected, GetDurationEnv("LAUNCHER_TEST_DURATION", time.Minute))
		})
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("LAUNCHER_TEST_KEY", "")
	assert.Equal(t, "fallback", Getenv("LAUNCHER_TEST_KEY", "fallback"))

	t.Setenv("LAUNCHER_TEST_KEY", "set")
	assert.Equal(t, "set", Getenv("LAUNCHER_TEST_KEY", "fallback"))
}
