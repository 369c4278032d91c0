package experiment

import (
	"context"
	"io"
	"os"

	"github.com/litmuschaos/hyperion-launcher/pkg/cerrors"
	"github.com/litmuschaos/hyperion-launcher/pkg/clients"
	"github.com/litmuschaos/hyperion-launcher/pkg/launch/params"
	launchTypes "github.com/litmuschaos/hyperion-launcher/pkg/launch/types"
	"github.com/litmuschaos/hyperion-launcher/pkg/log"
	"github.com/litmuschaos/hyperion-launcher/pkg/result"
	"github.com/litmuschaos/hyperion-launcher/pkg/telemetry"
	"github.com/litmuschaos/hyperion-launcher/pkg/types"
	"github.com/litmuschaos/hyperion-launcher/pkg/utils/exec"
	"github.com/litmuschaos/hyperion-launcher/pkg/utils/stringutils"
	"github.com/palantir/stacktrace"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

// Dependencies holds the side effects of a launch so they can be substituted
type Dependencies struct {
	Stdout      io.Writer
	Stderr      io.Writer
	EmailLookup exec.EmailLookup
	Metrics     *telemetry.Metrics
}

// DefaultDependencies writes to the process streams and reads the email from git
func DefaultDependencies() Dependencies {
	return Dependencies{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		EmailLookup: exec.GitEmailLookup(exec.RunCommand),
	}
}

// Validate checks the arguments that must be present before anything is sent
func Validate(launchDetails *launchTypes.LaunchDetails) error {
	switch {
	case launchDetails.Username == "":
		return cerrors.Error{ErrorCode: cerrors.ErrorTypeArgument, Reason: "username is required, pass --username or set ANTITHESIS_USERNAME"}
	case launchDetails.Password == "":
		return cerrors.Error{ErrorCode: cerrors.ErrorTypeArgument, Reason: "password is required, pass --password or set ANTITHESIS_PASSWORD"}
	case launchDetails.ConfigImage == "":
		return cerrors.Error{ErrorCode: cerrors.ErrorTypeArgument, Reason: "config image is required, pass --config-image"}
	case launchDetails.Features.RecipientsKey != "" && !params.ValidRecipientsKey(launchDetails.Features.RecipientsKey):
		return cerrors.Error{ErrorCode: cerrors.ErrorTypeArgument, Target: launchDetails.Features.RecipientsKey, Reason: "unsupported recipients key"}
	}
	switch launchDetails.Features.PrintFormat {
	case "", launchTypes.PrintFormatJSON, launchTypes.PrintFormatYAML:
	default:
		return cerrors.Error{ErrorCode: cerrors.ErrorTypeArgument, Target: launchDetails.Features.PrintFormat, Reason: "unsupported print format"}
	}
	return nil
}

// Launch resolves the parameters, prints them and sends the launch request.
// Every failure is reported on deps.Stderr before it is returned.
func Launch(ctx context.Context, launchDetails *launchTypes.LaunchDetails, deps Dependencies) (*types.ResultDetails, error) {
	ctx, span := telemetry.StartTracing(ctx, "LaunchExperiment")
	defer span.End()

	resultDetails := types.ResultDetails{}
	types.SetResultAttributes(&resultDetails)

	fail := func(failStep string, err error) (*types.ResultDetails, error) {
		result.RecordAfterFailure(&resultDetails, failStep, err)
		result.ReportFailure(deps.Stderr, &resultDetails, err)
		span.SetStatus(codes.Error, failStep)
		span.RecordError(err)
		return &resultDetails, err
	}

	if err := Validate(launchDetails); err != nil {
		return fail(result.ArgumentValidation, err)
	}

	// the git lookup is best effort, an unset email leaves the recipients empty
	if !launchDetails.RecipientsFromCLI && launchDetails.Features.DeriveRecipients {
		launchDetails.Recipients = resolveRecipients(ctx, deps.EmailLookup)
	}

	log.InfoWithValues("[Info]: The launch information is as follows", logrus.Fields{
		"Username":    launchDetails.Username,
		"Password":    stringutils.MaskSecret(launchDetails.Password),
		"Tenant":      launchDetails.TenantName,
		"Endpoint":    launchDetails.Endpoint,
		"Images":      len(launchDetails.Images),
		"Recipients":  len(stringutils.SplitRecipients(launchDetails.Recipients)),
		"ConfigImage": launchDetails.ConfigImage,
	})

	launchParams := params.Build(launchDetails)

	if launchDetails.Features.PrintParams {
		if err := params.Render(deps.Stdout, launchParams, launchDetails.Features.PrintFormat); err != nil {
			return fail(result.ParamsRender, stacktrace.Propagate(err, "could not print the experiment parameters"))
		}
	}

	body, err := params.Body(launchParams)
	if err != nil {
		return fail(result.RequestBuild, stacktrace.Propagate(err, "could not build the launch request"))
	}

	if launchDetails.DryRun {
		resultDetails.Verdict = types.DryRunVerdict
		return &resultDetails, result.ReportDryRun(deps.Stdout)
	}

	client := clients.NewHyperionClient(launchDetails.Endpoint, launchDetails.Timeout)
	defer client.Close()

	log.Infof("[Launch]: Sending the launch request to %v", client.Endpoint())
	resp, err := client.Launch(ctx, clients.Credentials{
		Username: launchDetails.Username,
		Password: launchDetails.Password,
	}, body)
	if resp != nil {
		resultDetails.StatusCode = resp.StatusCode
		resultDetails.Status = resp.Status
		resultDetails.Body = resp.Body
		resultDetails.Elapsed = resp.Elapsed
	}
	if err != nil {
		recordMetrics(ctx, deps.Metrics, types.FailVerdict, err, &resultDetails)
		return fail(result.LaunchRequest, stacktrace.Propagate(err, "could not launch the experiment"))
	}

	resultDetails.Verdict = types.PassVerdict
	recordMetrics(ctx, deps.Metrics, types.PassVerdict, nil, &resultDetails)
	return &resultDetails, result.ReportSuccess(deps.Stdout, &resultDetails)
}

func resolveRecipients(ctx context.Context, lookup exec.EmailLookup) string {
	ctx, span := telemetry.StartTracing(ctx, "ResolveRecipients")
	defer span.End()

	recipients := exec.DefaultRecipients(ctx, lookup)
	if recipients == "" {
		span.AddEvent("no default recipients")
	}
	return recipients
}

func recordMetrics(ctx context.Context, metrics *telemetry.Metrics, verdict string, err error, resultDetails *types.ResultDetails) {
	if metrics == nil {
		return
	}
	errorCode := ""
	if err != nil {
		_, code := cerrors.GetRootCauseAndErrorCode(err)
		errorCode = string(code)
	}
	metrics.RecordLaunch(ctx, verdict, errorCode, resultDetails.Elapsed)
}
