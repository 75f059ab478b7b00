package attribution

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"attribution/model/model"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	maxAttempts     = 3
	interBatchDelay = time.Second
	requestTimeout  = 60 * time.Second
)

// submissionState tracks one batch through its retry budget.
type submissionState int

const (
	statePending submissionState = iota
	stateAttempting
	stateSucceeded
	stateExhausted
)

// backoffDuration returns the wait after failed attempt n, n starting at 1.
func backoffDuration(attempt int) time.Duration {
	return time.Duration(1<<uint(attempt)) * time.Second
}

// Client submits journey batches to the IHC attribution API.
type Client struct {
	endpoint string
	apiKey   string
	httpc    *http.Client
	sleep    func(time.Duration)
}

func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpc:    &http.Client{Timeout: requestTimeout},
		sleep:    time.Sleep,
	}
}

// Submit posts every batch in order, tolerating per-batch failures. Successful
// submissions are paced one second apart. It returns the raw bodies of the
// successful submissions with the success/total counts; the error is set only
// when not a single batch succeeded.
func (c *Client) Submit(batches []Batch, convTypeID string) ([]model.RawResponse, int, int, error) {
	total := len(batches)
	if convTypeID == "" {
		return nil, 0, total, errors.New("conv_type_id cannot be empty")
	}

	responses := make([]model.RawResponse, 0, total)
	successful := 0

	for i, batch := range batches {
		logCtx := log.WithFields(log.Fields{
			"batch":         i + 1,
			"total_batches": total,
			"entries":       len(batch),
		})

		state := statePending
		attempt := 0
		for state != stateSucceeded && state != stateExhausted {
			state = stateAttempting

			raw, err := c.post(batch, convTypeID)
			if err == nil {
				logCtx.Info("Batch succeeded.")
				responses = append(responses, raw)
				successful++
				state = stateSucceeded
				if i < total-1 {
					c.sleep(interBatchDelay)
				}
				continue
			}

			attempt++
			wait := backoffDuration(attempt)
			logCtx.WithError(err).WithFields(log.Fields{
				"attempt": attempt,
				"wait":    wait.String(),
			}).Warn("Batch attempt failed, backing off.")
			c.sleep(wait)

			if attempt >= maxAttempts {
				logCtx.WithField("attempts", attempt).Error("Batch failed after final attempt, moving on.")
				state = stateExhausted
			} else {
				state = statePending
			}
		}
	}

	log.WithFields(log.Fields{"successful": successful, "total": total}).Info("Completed sending batches.")

	if len(responses) == 0 {
		return nil, successful, total, ErrNoValidResponses
	}
	return responses, successful, total, nil
}

func (c *Client) post(batch Batch, convTypeID string) (model.RawResponse, error) {
	body, err := json.Marshal(model.AttributionRequest{
		CustomerJourneys:        batch,
		RedistributionParameter: model.DefaultRedistributionParameter(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal request body")
	}

	requestURL := fmt.Sprintf("%s?conv_type_id=%s", c.endpoint, url.QueryEscape(convTypeID))
	req, err := http.NewRequest(http.MethodPost, requestURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header = http.Header{
		"Content-Type": {"application/json"},
		"x-api-key":    {c.apiKey},
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute request")
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return nil, fmt.Errorf("api returned %d: %s", resp.StatusCode, truncate(respBytes, 512))
	}
	if !json.Valid(respBytes) {
		return nil, errors.New("response body is not valid JSON")
	}

	return model.RawResponse(respBytes), nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
