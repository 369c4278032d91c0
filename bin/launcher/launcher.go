package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/litmuschaos/hyperion-launcher/experiments/launch/experiment"
	"github.com/litmuschaos/hyperion-launcher/pkg/cerrors"
	"github.com/litmuschaos/hyperion-launcher/pkg/launch/environment"
	launchTypes "github.com/litmuschaos/hyperion-launcher/pkg/launch/types"
	"github.com/litmuschaos/hyperion-launcher/pkg/log"
	"github.com/litmuschaos/hyperion-launcher/pkg/telemetry"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

const telemetryFlushTimeout = 5 * time.Second

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:          true,
		DisableSorting:         true,
		DisableLevelTruncation: true,
	})
	logrus.SetOutput(os.Stderr)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newLaunchCommand(experiment.DefaultDependencies()).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// newLaunchCommand builds the root command, deps carries the side effects of the launch
func newLaunchCommand(deps experiment.Dependencies) *cobra.Command {
	launchDetails := launchTypes.LaunchDetails{Features: launchTypes.DefaultFeatures()}
	var logLevel, otelEndpoint, pushgateway string

	cmd := &cobra.Command{
		Use:     "hyperion-launcher [flags]",
		Short:   "Launch an experiment on the hyperion api",
		Long:    "Collects the experiment parameters and submits them to the hyperion launch experiment api with basic authentication",
		Args:    cobra.NoArgs,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := log.SetLevel(logLevel); err != nil {
				return cerrors.Error{ErrorCode: cerrors.ErrorTypeArgument, Target: logLevel, Reason: "unsupported log level"}
			}

			launchDetails.RecipientsFromCLI = cmd.Flags().Changed("recipients")
			environment.GetENV(&launchDetails)
			if err := experiment.Validate(&launchDetails); err != nil {
				return err
			}

			// arguments are valid, failures from here on are reported by the launch itself
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true

			if deps.Stdout == nil {
				deps.Stdout = cmd.OutOrStdout()
			}
			if deps.Stderr == nil {
				deps.Stderr = cmd.ErrOrStderr()
			}

			ctx := cmd.Context()
			shutdownTracing := initTracing(ctx, environment.FlagOrEnv(otelEndpoint, environment.OTELEndpointEnv))
			defer shutdownTracing()

			pushgatewayURL := environment.FlagOrEnv(pushgateway, environment.PushgatewayEnv)
			flushMetrics := initMetrics(ctx, pushgatewayURL, &deps)
			defer flushMetrics()

			_, err := experiment.Launch(ctx, &launchDetails, deps)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&launchDetails.Username, "username", "", "Antithesis API username (env "+environment.UsernameEnv+")")
	flags.StringVar(&launchDetails.Password, "password", "", "Antithesis API password (env "+environment.PasswordEnv+")")
	flags.StringVar(&launchDetails.Duration, "duration", launchTypes.DefaultDuration, "Test duration in minutes")
	flags.StringVar(&launchDetails.Description, "description", launchTypes.DefaultDescription, "Test description")
	flags.StringVar(&launchDetails.ConfigImage, "config-image", "", "Config image URL")
	flags.StringVar(&launchDetails.Recipients, "recipients", "", "Email recipients (comma-separated), defaults to the git user email")
	flags.StringArrayVar(&launchDetails.Images, "image", nil, "Docker images to test (can be specified multiple times)")
	flags.StringVar(&launchDetails.TenantName, "tenant-name", "", "Tenant used to qualify bare image names (env "+environment.TenantNameEnv+")")

	flags.BoolVar(&launchDetails.Features.DeriveRecipients, "derive-recipients", true, "Default the recipients to the git user email")
	flags.BoolVar(&launchDetails.Features.QualifyImages, "qualify-images", true, "Qualify bare image names with the tenant repository")
	flags.BoolVar(&launchDetails.Features.PrintParams, "print-params", true, "Print the parameters before sending them")
	flags.StringVar(&launchDetails.Features.PrintFormat, "print-format", launchTypes.PrintFormatJSON, "Format of the printed parameters (json, yaml)")
	flags.StringVar(&launchDetails.Features.RecipientsKey, "recipients-key", launchTypes.RecipientsKey, "Parameter key of the recipients ("+launchTypes.RecipientsKey+", "+launchTypes.ReportRecipientsKey+")")

	flags.StringVar(&launchDetails.Endpoint, "endpoint", "", "Launch experiment endpoint (env "+environment.EndpointEnv+")")
	flags.DurationVar(&launchDetails.Timeout, "timeout", environment.GetDurationEnv(environment.TimeoutEnv, launchTypes.DefaultTimeout), "Timeout of the launch request")
	flags.BoolVar(&launchDetails.DryRun, "dry-run", false, "Print the parameters without sending the launch request")
	flags.StringVar(&logLevel, "log-level", environment.Getenv(environment.LogLevelEnv, "info"), "Log level (debug, info, warn, error)")
	flags.StringVar(&otelEndpoint, "otel-endpoint", "", "OTLP gRPC endpoint for traces (env "+environment.OTELEndpointEnv+")")
	flags.StringVar(&pushgateway, "pushgateway", "", "Prometheus pushgateway url for launch metrics (env "+environment.PushgatewayEnv+")")

	_ = cmd.MarkFlagRequired("config-image")
	_ = flags.MarkHidden("endpoint")

	return cmd
}

// initTracing installs the otlp tracer when an endpoint is configured
func initTracing(ctx context.Context, endpoint string) func() {
	if endpoint == "" {
		return func() {}
	}
	shutdown, err := telemetry.InitOTelSDK(ctx, endpoint)
	if err != nil {
		log.Warnf("[Telemetry]: Unable to initialise the tracer, err: %v", err)
		return func() {}
	}
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			log.Warnf("[Telemetry]: Unable to flush the traces, err: %v", err)
		}
	}
}

// initMetrics records the launch metrics and pushes them once the launch is over
func initMetrics(ctx context.Context, pushgatewayURL string, deps *experiment.Dependencies) func() {
	if pushgatewayURL == "" {
		return func() {}
	}
	metrics, err := telemetry.NewMetrics(ctx)
	if err != nil {
		log.Warnf("[Telemetry]: Unable to initialise the metrics, err: %v", err)
		return func() {}
	}
	deps.Metrics = metrics
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
		defer cancel()
		if err := metrics.Push(ctx, pushgatewayURL); err != nil {
			log.Warnf("[Telemetry]: Unable to push the launch metrics to %v, err: %v", pushgatewayURL, err)
		}
		if err := metrics.Shutdown(ctx); err != nil {
			log.Warnf("[Telemetry]: Unable to stop the meter provider, err: %v", err)
		}
	}
}
