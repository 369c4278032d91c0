package types

import "time"

const (
	// DefaultEndpoint is the launch experiment API of the hyperion service
	DefaultEndpoint = "https://hyperion.antithesis.com/api/v1/launch_experiment/basic_test"
	// DefaultDuration is the experiment duration in minutes
	DefaultDuration = "15"
	// DefaultDescription is used when no description is passed
	DefaultDescription = "Basic test run"
	// DefaultTimeout bounds the launch request
	DefaultTimeout = 30 * time.Second

	// RecipientsKey is the parameter key accepted for the report recipients
	RecipientsKey = "antithesis.recipients"
	// ReportRecipientsKey is the alternative recipients key
	ReportRecipientsKey = "antithesis.report.recipients"

	// PrintFormatJSON prints the parameters as indented json
	PrintFormatJSON = "json"
	// PrintFormatYAML prints the parameters as yaml
	PrintFormatYAML = "yaml"
)

// Features switches between the launcher behaviours
type Features struct {
	DeriveRecipients bool
	QualifyImages    bool
	PrintParams      bool
	PrintFormat      string
	RecipientsKey    string
}

// LaunchDetails is for collecting all the launch-related details
type LaunchDetails struct {
	Username          string
	Password          string
	Duration          string
	Description       string
	ConfigImage       string
	Recipients        string
	RecipientsFromCLI bool
	Images            []string
	TenantName        string
	Endpoint          string
	Timeout           time.Duration
	DryRun            bool
	Features          Features
}

// DefaultFeatures enables the full behaviour: derived recipients, tenant
// qualification and the parameter dump
func DefaultFeatures() Features {
	return Features{
		DeriveRecipients: true,
		QualifyImages:    true,
		PrintParams:      true,
		PrintFormat:      PrintFormatJSON,
		RecipientsKey:    RecipientsKey,
	}
}
