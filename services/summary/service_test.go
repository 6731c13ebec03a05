package summary

import (
	"context"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/yt-summarizer/agent"
	apperrors "github.com/user/yt-summarizer/errors"
)

type stubEngine struct {
	analysis *agent.Analysis
	err      error
	calls    int
	lastURL  string
}

func (s *stubEngine) Analyze(ctx context.Context, url string) (*agent.Analysis, error) {
	s.calls++
	s.lastURL = url
	return s.analysis, s.err
}

func newTestService(engine agent.Engine) (Service, *agent.Tracker) {
	tracker := agent.NewTracker()
	svc := NewService(engine, tracker, Config{ModelName: "gemini-1.5-flash"}, nil)
	return svc, tracker
}

func TestSummarizeSuccess(t *testing.T) {
	engine := &stubEngine{
		analysis: &agent.Analysis{
			Summary:        "An overview.",
			Title:          "Some Video",
			DurationSec:    120,
			Channel:        "Some Channel",
			ViewCount:      4200,
			UploadDate:     "20240115",
			FramesAnalyzed: 8,
			AudioProcessed: true,
			AnalysisType:   "ai_agent_comprehensive_analysis",
			QualityScore:   0.85,
			StepsCompleted: []string{"visual", "audio", "metadata"},
			Reasoning:      "Agent completed analysis using steps: visual, audio, metadata",
		},
	}
	svc, tracker := newTestService(engine)

	resp, err := svc.Summarize(context.Background(), "https://youtu.be/abc123")
	require.NoError(t, err)

	assert.Equal(t, "An overview.", resp.Summary)
	require.NotNil(t, resp.VideoInfo)
	assert.Equal(t, "Some Video", resp.VideoInfo.Title)
	assert.Equal(t, "120 seconds", resp.VideoInfo.Duration)
	require.NotNil(t, resp.AnalysisDetails)
	assert.Equal(t, 8, resp.AnalysisDetails.FramesAnalyzed)
	assert.Equal(t, tracker.ID(), resp.AnalysisDetails.AgentID)
	assert.Equal(t, []string{"visual", "audio", "metadata"}, resp.AnalysisDetails.AnalysisStepsCompleted)

	info := tracker.Snapshot()
	assert.Equal(t, 2, info.ActionsTaken, "start and complete actions")
	assert.Equal(t, []string{"visual", "audio", "metadata"}, info.CachedAnalyses)
	assert.Equal(t, []string{"analysis_plan"}, info.TaskMemoryKeys)
}

func TestSummarizeEmptyURL(t *testing.T) {
	engine := &stubEngine{}
	svc, _ := newTestService(engine)

	_, err := svc.Summarize(context.Background(), "   ")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.CodeOf(err))
	assert.Equal(t, 0, engine.calls, "no engine call for empty input")
}

func TestSummarizeInvalidURL(t *testing.T) {
	engine := &stubEngine{}
	svc, _ := newTestService(engine)

	_, err := svc.Summarize(context.Background(), "https://example.com/video")
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Equal(t, "Invalid YouTube URL or video not accessible", appErr.Message)
	assert.NotEmpty(t, appErr.ExampleURL)
	assert.Equal(t, 0, engine.calls, "no engine call for invalid input")
}

func TestSummarizeTrimsURLBeforeAnalysis(t *testing.T) {
	engine := &stubEngine{analysis: &agent.Analysis{Summary: "ok"}}
	svc, _ := newTestService(engine)

	_, err := svc.Summarize(context.Background(), "  https://youtu.be/abc123  ")
	require.NoError(t, err)
	assert.Equal(t, "https://youtu.be/abc123", engine.lastURL)
}

func TestSummarizeEngineErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		engineErr      error
		wantCode       int
		wantMessage    string
		wantSuggestion string
	}{
		{
			name:        "invalid video",
			engineErr:   errors.Wrap(agent.ErrInvalidVideo, "no formats"),
			wantCode:    http.StatusBadRequest,
			wantMessage: "Invalid YouTube URL or video not accessible",
		},
		{
			name:           "restricted video",
			engineErr:      errors.Wrap(agent.ErrRestricted, "login required"),
			wantCode:       http.StatusBadRequest,
			wantMessage:    "Could not download video for analysis. The video may be private or restricted.",
			wantSuggestion: "Try a different public YouTube video.",
		},
		{
			name:        "opaque engine failure",
			engineErr:   errors.New("model overloaded"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Failed to analyze video content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, tracker := newTestService(&stubEngine{err: tt.engineErr})

			_, err := svc.Summarize(context.Background(), "https://youtu.be/abc123")
			require.Error(t, err)

			appErr, ok := err.(*apperrors.AppError)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, tt.wantMessage, appErr.Message)
			assert.Equal(t, tt.wantSuggestion, appErr.Suggestion)
			assert.Equal(t, "EXECUTION_ERROR", tracker.Snapshot().LastAction)
		})
	}
}

func TestStatus(t *testing.T) {
	svc, tracker := newTestService(&stubEngine{})
	tracker.Record("EXECUTION_START")

	status, err := svc.Status(context.Background())
	require.NoError(t, err)

	assert.Equal(t, tracker.ID(), status.AgentInfo.AgentID)
	assert.Equal(t, 1, status.AgentInfo.ActionsTaken)
	assert.Equal(t, "gemini-1.5-flash", status.ModelName)
	assert.Contains(t, status.Capabilities, "content_synthesis")
	assert.Equal(t, "active", status.Status)
}

func TestReset(t *testing.T) {
	svc, tracker := newTestService(&stubEngine{})
	tracker.Record("EXECUTION_START")

	newID, err := svc.Reset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, newID, tracker.ID())
	assert.Zero(t, tracker.Snapshot().ActionsTaken)
}
