package result

import (
	"bytes"
	"io"
	"testing"

	"github.com/litmuschaos/hyperion-launcher/pkg/cerrors"
	"github.com/litmuschaos/hyperion-launcher/pkg/log"
	"github.com/litmuschaos/hyperion-launcher/pkg/types"
	"github.com/palantir/stacktrace"
	"github.com/stretchr/testify/assert"
)

func init() {
	log.SetOutput(io.Discard)
}

func TestRecordAfterFailure(t *testing.T) {
	resultDetails := types.ResultDetails{}
	types.SetResultAttributes(&resultDetails)

	err := stacktrace.Propagate(cerrors.HTTPStatus{StatusCode: 401, Status: "401 Unauthorized"}, "could not launch")
	RecordAfterFailure(&resultDetails, LaunchRequest, err)

	assert.Equal(t, types.FailVerdict, resultDetails.Verdict)
	assert.Equal(t, "[launch]: failed to launch the experiment, HTTP status 401 Unauthorized", resultDetails.FailStep)
}

func TestReportSuccess(t *testing.T) {
	var out bytes.Buffer
	err := ReportSuccess(&out, &types.ResultDetails{Verdict: types.PassVerdict, StatusCode: 200})

	assert.NoError(t, err)
	assert.Equal(t, "Successfully launched experiment\n", out.String())
}

func TestReportFailure_UsesRootCause(t *testing.T) {
	var out bytes.Buffer
	err := stacktrace.Propagate(cerrors.Error{ErrorCode: cerrors.ErrorTypeNetwork, Reason: "launch request failed: connection refused"}, "could not launch")

	ReportFailure(&out, &types.ResultDetails{Verdict: types.FailVerdict}, err)

	assert.Equal(t, "Failed to launch experiment: launch request failed: connection refused\n", out.String())
}

func TestReportDryRun(t *testing.T) {
	var out bytes.Buffer
	assert.NoError(t, ReportDryRun(&out))
	assert.Equal(t, "Dry run: experiment not launched\n", out.String())
}
