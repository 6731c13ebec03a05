package summary

import (
	"context"
	"time"

	"github.com/user/yt-summarizer/models"
)

type Service interface {
	// Summarize runs the full analysis for a video URL and returns the
	// response payload rendered to clients.
	Summarize(ctx context.Context, url string) (*models.SummarizeResponse, error)

	// Status snapshots the agent's diagnostic counters.
	Status(ctx context.Context) (*models.AgentStatusResponse, error)

	// Reset clears agent state and returns the new agent id.
	Reset(ctx context.Context) (string, error)
}

type Config struct {
	// ModelName is reported in the status payload.
	ModelName string `json:"model_name"`

	// ProcessTimeout bounds a single engine analysis call.
	ProcessTimeout time.Duration `json:"process_timeout"`
}
