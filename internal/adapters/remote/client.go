// Package remote implements the HTTP client for the verification service.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.osec.io/solverify/internal/core/domain"
	"go.osec.io/solverify/internal/core/ports"
	"go.trai.ch/zerr"
)

// Client implements ports.RemoteVerifier against the verification service.
type Client struct {
	baseURL string
	http    *http.Client
	logger  ports.Logger
}

var _ ports.RemoteVerifier = (*Client)(nil)

// NewClient creates a client for the service at baseURL. The HTTP timeout is
// on the order of hours because the submission round trip can block while the
// service schedules slow verification builds.
func NewClient(baseURL string, logger ports.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		logger:  logger,
		http: &http.Client{
			Timeout: domain.DefaultSubmitTimeout,
		},
	}
}

// WithHTTPClient overrides the underlying HTTP client. Used in tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

// WithTimeout overrides the request timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	c.http.Timeout = d
	return c
}

// Submit sends the verification request. A 409 reply is an alternate
// successful termination of the submission step: it is decoded exactly once
// here into the closed domain.SubmitOutcome variant, never retried.
func (c *Client) Submit(ctx context.Context, req domain.VerificationRequest) (domain.SubmitOutcome, error) {
	payload := verifyRequest{
		Repository: req.Repository,
		CommitHash: optional(req.CommitHash),
		ProgramID:  req.ProgramID.String(),
		LibName:    optional(req.LibraryName),
		BPFFlag:    req.BPFFlag,
		MountPath:  optional(req.MountPath),
		BaseImage:  optional(req.BaseImage),
		CargoArgs:  req.CargoArgs,
	}

	var body bytes.Buffer
	if err := json.NewEncoder(&body).Encode(payload); err != nil {
		return domain.SubmitOutcome{}, zerr.Wrap(err, "failed to encode verification request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/verify", &body)
	if err != nil {
		return domain.SubmitOutcome{}, zerr.Wrap(err, "failed to create submit request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(httpReq)
	if err != nil {
		return domain.SubmitOutcome{}, zerr.Wrap(err, "failed to send job to remote")
	}
	defer res.Body.Close() //nolint:errcheck // Best effort close in defer

	switch {
	case res.StatusCode >= 200 && res.StatusCode < 300:
		var accepted verifyResponse
		if err := json.NewDecoder(res.Body).Decode(&accepted); err != nil {
			return domain.SubmitOutcome{}, zerr.Wrap(err, "failed to decode submit response")
		}
		return domain.SubmitOutcome{
			Kind:   domain.SubmitAccepted,
			Handle: domain.JobHandle{RequestID: accepted.RequestID},
		}, nil

	case res.StatusCode == http.StatusConflict:
		return c.classifyConflict(res.Body)

	default:
		raw, _ := io.ReadAll(res.Body)
		return domain.SubmitOutcome{}, zerr.With(zerr.With(zerr.Wrap(domain.ErrSubmitRejected, ""),
			"status_code", res.StatusCode),
			"body", string(raw),
		)
	}
}

// classifyConflict maps a 409 payload onto the closed variant. Unrecognized
// shapes fall back to "already processed" without further detail.
func (c *Client) classifyConflict(body io.Reader) (domain.SubmitOutcome, error) {
	var conflict conflictResponse
	if err := json.NewDecoder(body).Decode(&conflict); err != nil {
		c.logger.Warn(fmt.Sprintf("unreadable conflict payload: %v", err))
		return domain.SubmitOutcome{Kind: domain.SubmitAlreadyProcessed}, nil
	}

	switch {
	case conflict.IsVerified != nil && *conflict.IsVerified:
		return domain.SubmitOutcome{
			Kind: domain.SubmitAlreadyVerified,
			Outcome: &domain.JobOutcome{
				OnChainHash:    conflict.OnChainHash,
				ExecutableHash: conflict.ExecutableHash,
				RepoURL:        conflict.RepoURL,
			},
		}, nil
	case conflict.IsVerified != nil:
		return domain.SubmitOutcome{Kind: domain.SubmitAlreadyProcessed}, nil
	case conflict.Status == "error":
		return domain.SubmitOutcome{
			Kind: domain.SubmitConflictError,
			Err:  conflict.Error,
		}, nil
	default:
		return domain.SubmitOutcome{Kind: domain.SubmitAlreadyProcessed}, nil
	}
}

// Poll queries the job state once. Transport failures and non-success
// responses are fatal for the whole job; there is no retry at this layer.
func (c *Client) Poll(ctx context.Context, handle domain.JobHandle) (domain.PollResult, error) {
	url := fmt.Sprintf("%s/job/%s", c.baseURL, handle.RequestID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.PollResult{}, zerr.Wrap(err, "failed to create status request")
	}

	res, err := c.http.Do(httpReq)
	if err != nil {
		return domain.PollResult{}, zerr.Wrap(domain.ErrPollFailed, err.Error())
	}
	defer res.Body.Close() //nolint:errcheck // Best effort close in defer

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		raw, _ := io.ReadAll(res.Body)
		return domain.PollResult{}, zerr.With(zerr.With(zerr.With(zerr.Wrap(domain.ErrPollFailed, ""),
			"request_id", handle.RequestID),
			"status_code", res.StatusCode),
			"body", string(raw),
		)
	}

	var job jobResponse
	if err := json.NewDecoder(res.Body).Decode(&job); err != nil {
		return domain.PollResult{}, zerr.Wrap(err, "failed to decode status response")
	}

	status := domain.ParseJobStatus(job.Status)
	result := domain.PollResult{Status: status}
	if status.Terminal() {
		result.Outcome = &domain.JobOutcome{
			OnChainHash:    job.OnChainHash,
			ExecutableHash: job.ExecutableHash,
			RepoURL:        job.RepoURL,
			Message:        job.Message,
		}
	}
	return result, nil
}
