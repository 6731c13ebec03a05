package models

// SummarizeRequest is the body of POST /api/summarize.
type SummarizeRequest struct {
	URL string `json:"url"`
}

// VideoInfo carries the metadata block of a successful summarization.
// Every field is optional on the wire; readers fall back to placeholder
// text rather than failing.
type VideoInfo struct {
	Title      string `json:"title,omitempty"`
	Duration   string `json:"duration,omitempty"`
	Channel    string `json:"channel,omitempty"`
	ViewCount  int64  `json:"view_count,omitempty"`
	UploadDate string `json:"upload_date,omitempty"`
}

// AnalysisDetails describes how the summary was produced. The agent_*
// fields are only present when the engine ran under agent supervision.
type AnalysisDetails struct {
	FramesAnalyzed         int      `json:"frames_analyzed"`
	AudioProcessed         bool     `json:"audio_processed"`
	AnalysisType           string   `json:"analysis_type"`
	AgentID                string   `json:"agent_id,omitempty"`
	AgentActionsCount      int      `json:"agent_actions_count,omitempty"`
	QualityScore           float64  `json:"quality_score,omitempty"`
	AnalysisStepsCompleted []string `json:"analysis_steps_completed,omitempty"`
	AgentReasoning         string   `json:"agent_reasoning,omitempty"`
}

// SummarizeResponse is the success body of POST /api/summarize.
type SummarizeResponse struct {
	Summary         string           `json:"summary"`
	VideoInfo       *VideoInfo       `json:"video_info,omitempty"`
	AnalysisDetails *AnalysisDetails `json:"analysis_details,omitempty"`
}

// FailureResponse is the body returned with any non-2xx status.
type FailureResponse struct {
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
	ExampleURL string `json:"example_url,omitempty"`
}

// AgentInfo is a snapshot of the agent's internal counters.
type AgentInfo struct {
	AgentID        string   `json:"agent_id"`
	ActionsTaken   int      `json:"actions_taken"`
	CachedAnalyses []string `json:"cached_analyses"`
	TaskMemoryKeys []string `json:"task_memory_keys,omitempty"`
	LastAction     string   `json:"last_action,omitempty"`
}

// AgentStatusResponse is the body of GET /api/agent/status.
type AgentStatusResponse struct {
	AgentInfo    AgentInfo `json:"agent_info"`
	ModelName    string    `json:"model_name"`
	Capabilities []string  `json:"capabilities"`
	Status       string    `json:"status,omitempty"`
}

// AgentResetResponse is the body of POST /api/agent/reset.
type AgentResetResponse struct {
	Status     string `json:"status"`
	NewAgentID string `json:"new_agent_id"`
}
