package result

import (
	"fmt"
	"io"

	"github.com/kyokomi/emoji"
	"github.com/litmuschaos/hyperion-launcher/pkg/cerrors"
	"github.com/litmuschaos/hyperion-launcher/pkg/log"
	"github.com/litmuschaos/hyperion-launcher/pkg/types"
	"github.com/sirupsen/logrus"
)

//RecordAfterFailure marks the result as failed at the given step
func RecordAfterFailure(resultDetails *types.ResultDetails, failStep string, err error) {
	msg, _ := cerrors.GetRootCauseAndErrorCode(err)
	resultDetails.Verdict = types.FailVerdict
	resultDetails.FailStep = fmt.Sprintf("%s, %s", failStep, msg)
}

// ReportSuccess prints the confirmation and logs the launch summary
func ReportSuccess(w io.Writer, resultDetails *types.ResultDetails) error {
	log.InfoWithValues("[Result]: The experiment has been launched "+emoji.Sprint(":rocket:"), logrus.Fields{
		"Verdict":    resultDetails.Verdict,
		"StatusCode": resultDetails.StatusCode,
		"Elapsed":    resultDetails.Elapsed.String(),
	})
	_, err := fmt.Fprintln(w, "Successfully launched experiment")
	return err
}

// ReportDryRun prints the confirmation of a launch that was not sent
func ReportDryRun(w io.Writer) error {
	log.Info("[Result]: Dry run, the launch request was not sent")
	_, err := fmt.Fprintln(w, "Dry run: experiment not launched")
	return err
}

// ReportFailure prints the failure reason and logs its error code
func ReportFailure(w io.Writer, resultDetails *types.ResultDetails, err error) {
	msg, errorCode := cerrors.GetRootCauseAndErrorCode(err)
	log.ErrorWithValues("[Result]: The experiment launch has failed "+emoji.Sprint(":cry:"), logrus.Fields{
		"Verdict":    resultDetails.Verdict,
		"FailStep":   resultDetails.FailStep,
		"ErrorCode":  errorCode,
		"StatusCode": resultDetails.StatusCode,
	})
	fmt.Fprintf(w, "Failed to launch experiment: %s\n", msg)
}
