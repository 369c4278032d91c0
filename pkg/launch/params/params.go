package params

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/litmuschaos/hyperion-launcher/pkg/cerrors"
	"github.com/litmuschaos/hyperion-launcher/pkg/images"
	launchTypes "github.com/litmuschaos/hyperion-launcher/pkg/launch/types"
	"github.com/litmuschaos/hyperion-launcher/pkg/utils/stringutils"
	"gopkg.in/yaml.v2"
)

const (
	DurationKey    = "antithesis.duration"
	DescriptionKey = "antithesis.description"
	ConfigImageKey = "antithesis.config_image"
	ImagesKey      = "antithesis.images"
)

// Params is the experiment parameter mapping sent to the launch endpoint
type Params map[string]string

// Request is the body of the launch request
type Request struct {
	Params Params `json:"params"`
}

// Build assembles the parameters from the resolved launch details.
// The images key is only present when at least one image was passed.
func Build(launchDetails *launchTypes.LaunchDetails) Params {
	configImage := launchDetails.ConfigImage
	imageList := launchDetails.Images
	if launchDetails.Features.QualifyImages {
		configImage = images.Qualify(configImage, launchDetails.TenantName)
		imageList = images.QualifyAll(imageList, launchDetails.TenantName)
	}

	recipientsKey := launchDetails.Features.RecipientsKey
	if recipientsKey == "" {
		recipientsKey = launchTypes.RecipientsKey
	}

	params := Params{
		DurationKey:    launchDetails.Duration,
		DescriptionKey: launchDetails.Description,
		ConfigImageKey: configImage,
		recipientsKey:  launchDetails.Recipients,
	}
	if len(imageList) > 0 {
		params[ImagesKey] = stringutils.JoinImages(imageList)
	}
	return params
}

// ValidRecipientsKey reports whether the key is one the endpoint knows about
func ValidRecipientsKey(key string) bool {
	return key == launchTypes.RecipientsKey || key == launchTypes.ReportRecipientsKey
}

// Body serializes the parameters under the params wrapper key
func Body(params Params) ([]byte, error) {
	body, err := json.Marshal(Request{Params: params})
	if err != nil {
		return nil, cerrors.Error{ErrorCode: cerrors.ErrorTypeSerialization, Reason: fmt.Sprintf("failed to serialize the launch request: %v", err)}
	}
	return body, nil
}

// Render writes the parameters to w in the requested format
func Render(w io.Writer, params Params, format string) error {
	var (
		out []byte
		err error
	)

	switch format {
	case launchTypes.PrintFormatJSON, "":
		out, err = json.MarshalIndent(params, "", "  ")
	case launchTypes.PrintFormatYAML:
		out, err = yaml.Marshal(params)
	default:
		return cerrors.Error{ErrorCode: cerrors.ErrorTypeArgument, Target: format, Reason: "unsupported print format"}
	}
	if err != nil {
		return cerrors.Error{ErrorCode: cerrors.ErrorTypeSerialization, Reason: fmt.Sprintf("failed to render the parameters: %v", err)}
	}

	if _, err := fmt.Fprintln(w, "Launching experiment with parameters:"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.TrimRight(string(out), "\n")); err != nil {
		return err
	}
	return nil
}
