package clients

import (
	"context"
	"fmt"
	"time"

	"github.com/litmuschaos/hyperion-launcher/pkg/cerrors"
	"github.com/litmuschaos/hyperion-launcher/pkg/telemetry"
	"github.com/litmuschaos/hyperion-launcher/pkg/utils"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"resty.dev/v3"
)

// Credentials is the basic auth pair of the launch api
type Credentials struct {
	Username string
	Password string
}

// LaunchResponse contains the answer of the launch endpoint
type LaunchResponse struct {
	StatusCode int
	Status     string
	Body       string
	Elapsed    time.Duration
}

// HyperionClient sends launch requests to the hyperion api
type HyperionClient struct {
	client   *resty.Client
	endpoint string
}

// NewHyperionClient returns a client bound to the endpoint, every request is
// bounded by the timeout and never retried
func NewHyperionClient(endpoint string, timeout time.Duration) *HyperionClient {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetLogger(logrus.StandardLogger()).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &HyperionClient{
		client:   client,
		endpoint: endpoint,
	}
}

// Endpoint returns the url the launch requests are sent to
func (c *HyperionClient) Endpoint() string {
	return c.endpoint
}

// Close releases the idle connections of the underlying client
func (c *HyperionClient) Close() error {
	return c.client.Close()
}

// Launch posts the serialized launch request. Any non-success status is an error.
func (c *HyperionClient) Launch(ctx context.Context, creds Credentials, body []byte) (*LaunchResponse, error) {
	ctx, span := telemetry.StartTracing(ctx, "LaunchExperimentRequest")
	defer span.End()
	span.SetAttributes(attribute.String("http.url", c.endpoint))

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetBasicAuth(creds.Username, creds.Password).
		SetBody(body).
		Post(c.endpoint)
	elapsed := time.Since(start)

	if err != nil {
		span.SetStatus(codes.Error, "launch request failed")
		span.RecordError(err)
		if utils.HttpTimeout(err) {
			return nil, cerrors.Error{ErrorCode: cerrors.ErrorTypeTimeout, Target: c.endpoint, Reason: fmt.Sprintf("launch request timed out: %v", err)}
		}
		return nil, cerrors.Error{ErrorCode: cerrors.ErrorTypeNetwork, Target: c.endpoint, Reason: fmt.Sprintf("launch request failed: %v", err)}
	}

	launchResponse := &LaunchResponse{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Body:       resp.String(),
		Elapsed:    elapsed,
	}
	span.SetAttributes(attribute.Int("http.status_code", launchResponse.StatusCode))

	if !resp.IsSuccess() {
		span.SetStatus(codes.Error, "launch request rejected")
		return launchResponse, cerrors.HTTPStatus{
			StatusCode: launchResponse.StatusCode,
			Status:     launchResponse.Status,
			Body:       launchResponse.Body,
		}
	}
	return launchResponse, nil
}
