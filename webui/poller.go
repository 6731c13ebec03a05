package webui

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/user/yt-summarizer/models"
)

const msgStatusUnknown = "Agent Status Unknown"

// StatusPoller fetches the agent status once and paints the badge. Any
// failure downgrades the badge; nothing propagates to the caller.
type StatusPoller struct {
	endpoint string
	client   Doer
	view     StatusView
	logger   *logrus.Logger
}

func NewStatusPoller(endpoint string, client Doer, view StatusView) *StatusPoller {
	return &StatusPoller{
		endpoint: endpoint,
		client:   client,
		view:     view,
		logger:   logrus.StandardLogger(),
	}
}

// Poll runs the single status fetch. It is called once per page load
// and never retried.
func (p *StatusPoller) Poll(ctx context.Context) {
	status, err := p.fetch(ctx)
	if err != nil {
		p.logger.WithError(err).Warn("Agent status fetch failed")
		p.view.SetBadge(msgStatusUnknown, false)
		return
	}

	label := fmt.Sprintf(
		"Agent %s - %d actions",
		agentSuffix(status.AgentInfo.AgentID),
		status.AgentInfo.ActionsTaken,
	)
	p.view.SetBadge(label, true)

	// Full payload kept visible for diagnostics.
	p.logger.WithField("agent_status", status).Debug("Agent status payload")

	p.view.ShowDetails(DetailLines(status))
}

func (p *StatusPoller) fetch(ctx context.Context) (*models.AgentStatusResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("status endpoint returned HTTP %d", resp.StatusCode)
	}

	var status models.AgentStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, err
	}

	return &status, nil
}

// agentSuffix derives the badge's short agent name: the token after the
// first underscore of the agent id, or the whole id when it has none.
func agentSuffix(id string) string {
	parts := strings.Split(id, "_")
	if len(parts) > 1 {
		return parts[1]
	}
	return id
}

// DetailLines formats the secondary, non-blocking agent detail view.
func DetailLines(status *models.AgentStatusResponse) []string {
	cached := "None"
	if len(status.AgentInfo.CachedAnalyses) > 0 {
		cached = strings.Join(status.AgentInfo.CachedAnalyses, ", ")
	}

	return []string{
		"Agent ID: " + status.AgentInfo.AgentID,
		fmt.Sprintf("Actions taken: %d", status.AgentInfo.ActionsTaken),
		"Cached analyses: " + cached,
		"Model: " + status.ModelName,
		"Capabilities: " + strings.Join(status.Capabilities, ", "),
	}
}
