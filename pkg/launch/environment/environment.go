package environment

import (
	"os"
	"time"

	launchTypes "github.com/litmuschaos/hyperion-launcher/pkg/launch/types"
)

const (
	UsernameEnv     = "ANTITHESIS_USERNAME"
	PasswordEnv     = "ANTITHESIS_PASSWORD"
	TenantNameEnv   = "TENANT_NAME"
	EndpointEnv     = "ANTITHESIS_ENDPOINT"
	TimeoutEnv      = "ANTITHESIS_TIMEOUT"
	OTELEndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	PushgatewayEnv  = "PROMETHEUS_PUSHGATEWAY_URL"
	LogLevelEnv     = "LAUNCHER_LOG_LEVEL"
)

//GetENV fills every detail the user left empty from the env, flags take precedence
func GetENV(launchDetails *launchTypes.LaunchDetails) {
	launchDetails.Username = FlagOrEnv(launchDetails.Username, UsernameEnv)
	launchDetails.Password = FlagOrEnv(launchDetails.Password, PasswordEnv)
	launchDetails.TenantName = FlagOrEnv(launchDetails.TenantName, TenantNameEnv)
	launchDetails.Endpoint = FlagOrEnv(launchDetails.Endpoint, EndpointEnv)

	if launchDetails.Endpoint == "" {
		launchDetails.Endpoint = launchTypes.DefaultEndpoint
	}
	if launchDetails.Duration == "" {
		launchDetails.Duration = launchTypes.DefaultDuration
	}
	if launchDetails.Timeout <= 0 {
		launchDetails.Timeout = GetDurationEnv(TimeoutEnv, launchTypes.DefaultTimeout)
	}
	if launchDetails.Features.RecipientsKey == "" {
		launchDetails.Features.RecipientsKey = launchTypes.RecipientsKey
	}
	if launchDetails.Features.PrintFormat == "" {
		launchDetails.Features.PrintFormat = launchTypes.PrintFormatJSON
	}
}

// Getenv fetch the env and set the default value, if any
func Getenv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	return value
}

// FlagOrEnv returns the flag value when it was set, the env value otherwise
func FlagOrEnv(flagValue string, key string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(key)
}

// GetDurationEnv parses a duration env, falling back to the default on bad input
func GetDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
