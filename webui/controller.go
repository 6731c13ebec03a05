package webui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/user/yt-summarizer/models"
	"github.com/user/yt-summarizer/validation"
)

// Messages surfaced by the submission flow.
const (
	msgEmptyURL       = "Please enter a YouTube URL"
	msgInvalidURL     = "Please enter a valid YouTube URL"
	msgRequestFailed  = "Failed to generate summary"
	msgGenericFailure = "An error occurred while generating the summary"
)

// State is the submission flow's only state value.
type State int

const (
	StateIdle State = iota
	StateLoading
)

func (s State) String() string {
	if s == StateLoading {
		return "loading"
	}
	return "idle"
}

// Doer issues HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Controller owns the summarization request lifecycle: it gates input,
// toggles the loading state, issues the request, and hands the outcome
// to the renderer or the error panel. One submission runs at a time;
// there is no cancellation path for a request in flight.
type Controller struct {
	endpoint string
	client   Doer
	view     View
	renderer *Renderer
	state    State
}

func NewController(endpoint string, client Doer, view View) *Controller {
	return &Controller{
		endpoint: endpoint,
		client:   client,
		view:     view,
		renderer: NewRenderer(view),
		state:    StateIdle,
	}
}

// State reports the current flow state.
func (c *Controller) State() State {
	return c.state
}

// Submit runs the full summarization flow for a raw input value. The
// loading state is cleared on every exit path once it has been entered.
func (c *Controller) Submit(ctx context.Context, rawURL string) {
	url := strings.TrimSpace(rawURL)
	if url == "" {
		c.view.ShowError(msgEmptyURL)
		return
	}

	if !validation.IsValidYouTubeURL(url) {
		c.view.ShowError(msgInvalidURL)
		return
	}

	c.state = StateLoading
	c.view.SetLoading(true)
	defer func() {
		c.state = StateIdle
		c.view.SetLoading(false)
	}()

	c.view.ClearPanels()

	payload, err := c.request(ctx, url)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = msgGenericFailure
		}
		c.view.ShowError(msg)
		return
	}

	c.renderer.Render(payload)
}

func (c *Controller) request(ctx context.Context, url string) (*models.SummarizeResponse, error) {
	body, err := json.Marshal(models.SummarizeRequest{URL: url})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New(failureMessage(resp.Body))
	}

	var payload models.SummarizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return &payload, nil
}

// failureMessage composes the display message for a server-reported
// failure: the error text, then the suggestion, then the example URL,
// joined by blank lines in that order.
func failureMessage(body io.Reader) string {
	var failure models.FailureResponse
	_ = json.NewDecoder(body).Decode(&failure)

	msg := failure.Error
	if msg == "" {
		msg = msgRequestFailed
	}

	parts := []string{msg}
	if failure.Suggestion != "" {
		parts = append(parts, failure.Suggestion)
	}
	if failure.ExampleURL != "" {
		parts = append(parts, "Example: "+failure.ExampleURL)
	}

	return strings.Join(parts, "\n\n")
}
