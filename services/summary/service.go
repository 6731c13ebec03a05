package summary

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/user/yt-summarizer/agent"
	"github.com/user/yt-summarizer/errors"
	"github.com/user/yt-summarizer/models"
	"github.com/user/yt-summarizer/validation"
)

type service struct {
	engine  agent.Engine
	tracker *agent.Tracker
	config  Config
	logger  *logrus.Logger
}

// NewService creates the summarization service over the analysis engine
// and the agent tracker.
func NewService(engine agent.Engine, tracker *agent.Tracker, config Config, logger *logrus.Logger) Service {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &service{
		engine:  engine,
		tracker: tracker,
		config:  config,
		logger:  logger,
	}
}

func (s *service) Summarize(ctx context.Context, url string) (*models.SummarizeResponse, error) {
	const op = "SummaryService.Summarize"
	logger := s.logger.WithContext(ctx).WithField("url", url)

	if strings.TrimSpace(url) == "" {
		return nil, errors.InvalidInput(op, nil, "YouTube URL is required")
	}

	if !validation.IsValidYouTubeURL(strings.TrimSpace(url)) {
		logger.Warn("Rejected non-YouTube URL")
		return nil, errors.InvalidInput(op, nil, "Invalid YouTube URL or video not accessible").
			WithSuggestion("Use a youtube.com/watch, youtube.com/embed, or youtu.be link.").
			WithExample(validation.ExampleVideoURL)
	}

	logger.Info("Starting video analysis")
	s.tracker.Record("EXECUTION_START")

	if s.config.ProcessTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.ProcessTimeout)
		defer cancel()
	}

	analysis, err := s.engine.Analyze(ctx, strings.TrimSpace(url))
	if err != nil {
		s.tracker.Record("EXECUTION_ERROR")
		logger.WithError(err).Error("Engine analysis failed")
		return nil, s.mapEngineError(op, err)
	}

	s.tracker.Record("EXECUTION_COMPLETE")
	s.tracker.Remember("analysis_plan")
	for _, step := range analysis.StepsCompleted {
		s.tracker.CacheAnalysis(step)
	}

	info := s.tracker.Snapshot()
	resp := s.buildResponse(analysis, info)

	logger.WithFields(logrus.Fields{
		"summary_length": len(resp.Summary),
		"frames":         analysis.FramesAnalyzed,
		"quality_score":  analysis.QualityScore,
	}).Info("Video analysis completed")

	return resp, nil
}

func (s *service) mapEngineError(op string, err error) error {
	switch {
	case stderrors.Is(err, agent.ErrInvalidVideo):
		return errors.InvalidInput(op, err, "Invalid YouTube URL or video not accessible")
	case stderrors.Is(err, agent.ErrRestricted):
		return errors.InvalidInput(
			op,
			err,
			"Could not download video for analysis. The video may be private or restricted.",
		).WithSuggestion("Try a different public YouTube video.")
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.Internal(op, err, "Video analysis timed out")
	default:
		return errors.Internal(op, err, "Failed to analyze video content")
	}
}

func (s *service) buildResponse(analysis *agent.Analysis, info models.AgentInfo) *models.SummarizeResponse {
	duration := "N/A"
	if analysis.DurationSec > 0 {
		duration = fmt.Sprintf("%d seconds", analysis.DurationSec)
	}

	return &models.SummarizeResponse{
		Summary: analysis.Summary,
		VideoInfo: &models.VideoInfo{
			Title:      analysis.Title,
			Duration:   duration,
			Channel:    analysis.Channel,
			ViewCount:  analysis.ViewCount,
			UploadDate: analysis.UploadDate,
		},
		AnalysisDetails: &models.AnalysisDetails{
			FramesAnalyzed:         analysis.FramesAnalyzed,
			AudioProcessed:         analysis.AudioProcessed,
			AnalysisType:           analysis.AnalysisType,
			AgentID:                info.AgentID,
			AgentActionsCount:      info.ActionsTaken,
			QualityScore:           analysis.QualityScore,
			AnalysisStepsCompleted: analysis.StepsCompleted,
			AgentReasoning:         analysis.Reasoning,
		},
	}
}

func (s *service) Status(ctx context.Context) (*models.AgentStatusResponse, error) {
	return &models.AgentStatusResponse{
		AgentInfo:    s.tracker.Snapshot(),
		ModelName:    s.config.ModelName,
		Capabilities: agent.Capabilities(),
		Status:       "active",
	}, nil
}

func (s *service) Reset(ctx context.Context) (string, error) {
	newID := s.tracker.Reset()
	s.logger.WithField("agent_id", newID).Info("Agent state reset")
	return newID, nil
}
