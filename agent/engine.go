package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Analysis is the engine's report for a single video. The reasoning that
// produces it lives entirely inside the external service.
type Analysis struct {
	Summary        string   `json:"summary"`
	Title          string   `json:"title"`
	DurationSec    int64    `json:"duration"`
	Channel        string   `json:"channel"`
	ViewCount      int64    `json:"view_count"`
	UploadDate     string   `json:"upload_date"`
	FramesAnalyzed int      `json:"frames_analyzed"`
	AudioProcessed bool     `json:"audio_processed"`
	AnalysisType   string   `json:"analysis_type"`
	QualityScore   float64  `json:"quality_score"`
	StepsCompleted []string `json:"analysis_steps_completed"`
	Reasoning      string   `json:"agent_reasoning"`
}

// Engine is the external generative-AI collaborator that performs the
// actual video analysis.
type Engine interface {
	Analyze(ctx context.Context, url string) (*Analysis, error)
}

// Failure categories reported by the engine.
var (
	// ErrInvalidVideo means the URL did not resolve to an accessible video.
	ErrInvalidVideo = errors.New("invalid or inaccessible video")

	// ErrRestricted means the video exists but cannot be downloaded for
	// analysis (private, region-locked, age-gated).
	ErrRestricted = errors.New("video is private or restricted")
)

type engineFailure struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

// Config holds settings for the HTTP engine client.
type Config struct {
	BaseURL   string
	APIKey    string
	ModelName string
	Timeout   time.Duration
}

// HTTPEngine talks JSON to the hosted analysis service. No retries: a
// failed analysis is reported to the caller, who decides what to show.
type HTTPEngine struct {
	config Config
	client *http.Client
	logger *logrus.Logger
}

func NewHTTPEngine(cfg Config) (*HTTPEngine, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("engine base URL is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Minute
	}

	return &HTTPEngine{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logrus.StandardLogger(),
	}, nil
}

type analyzeRequest struct {
	URL   string `json:"url"`
	Model string `json:"model,omitempty"`
}

func (e *HTTPEngine) Analyze(ctx context.Context, url string) (*Analysis, error) {
	body, err := json.Marshal(analyzeRequest{URL: url, Model: e.config.ModelName})
	if err != nil {
		return nil, errors.Wrap(err, "encoding analyze request")
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		e.config.BaseURL+"/v1/analyze",
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, errors.Wrap(err, "building analyze request")
	}
	req.Header.Set("Content-Type", "application/json")
	if e.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.config.APIKey)
	}

	start := time.Now()
	resp, err := e.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "calling analysis engine")
	}
	defer resp.Body.Close()

	e.logger.WithFields(logrus.Fields{
		"url":      url,
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	}).Debug("Engine analyze call completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, e.decodeFailure(resp)
	}

	var analysis Analysis
	if err := json.NewDecoder(resp.Body).Decode(&analysis); err != nil {
		return nil, errors.Wrap(err, "decoding analysis response")
	}

	return &analysis, nil
}

func (e *HTTPEngine) decodeFailure(resp *http.Response) error {
	var failure engineFailure
	if err := json.NewDecoder(resp.Body).Decode(&failure); err != nil {
		return errors.Errorf("engine returned HTTP %d", resp.StatusCode)
	}

	switch failure.Reason {
	case "invalid_url", "not_found":
		return errors.Wrap(ErrInvalidVideo, failure.Error)
	case "restricted":
		return errors.Wrap(ErrRestricted, failure.Error)
	default:
		if failure.Error == "" {
			return errors.Errorf("engine returned HTTP %d", resp.StatusCode)
		}
		return fmt.Errorf("engine: %s", failure.Error)
	}
}
