package webui

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/user/yt-summarizer/models"
)

// Fallback strings rendered when a response field is absent.
const (
	fallbackTitle     = "Video Title"
	fallbackNA        = "N/A"
	fallbackNoInfo    = "Video information not available"
	fallbackNoSummary = "Summary not available"
)

// resultTemplate builds the result panel. The summary is inserted as
// markup on purpose: the analysis engine returns formatted content and
// the legacy behavior is to trust it verbatim. Every other field is
// escaped by the template engine.
var resultTemplate = template.Must(template.New("result").Parse(`<div class="video-info">
{{- if .HasInfo}}
<h3>{{.Title}}</h3>
<p><span class="label">Duration:</span> {{.Duration}} <span class="label">Channel:</span> {{.Channel}}</p>
{{- else}}
<p class="no-info">{{.Placeholder}}</p>
{{- end}}
</div>
{{- if .HasDetails}}
<div class="analysis-details">
<p><span class="label">Frames analyzed:</span> {{.Frames}}</p>
<p><span class="label">Audio processed:</span> {{.Audio}}</p>
<p><span class="label">Analysis type:</span> {{.AnalysisType}}</p>
<p><span class="label">Views:</span> {{.ViewCount}}</p>
<p><span class="label">Uploaded:</span> {{.UploadDate}}</p>
{{- if .HasAgent}}
<div class="agent-details">
<p><span class="label">Agent:</span> {{.AgentID}}</p>
<p><span class="label">Agent actions:</span> {{.AgentActions}}</p>
<p><span class="label">Quality score:</span> {{.QualityScore}}</p>
<p><span class="label">Steps completed:</span> {{.Steps}}</p>
<p><span class="label">Reasoning:</span> {{.Reasoning}}</p>
</div>
{{- end}}
</div>
{{- end}}
<div class="summary-text">{{.Summary}}</div>`))

type resultView struct {
	HasInfo     bool
	Title       string
	Duration    string
	Channel     string
	Placeholder string

	HasDetails   bool
	Frames       int
	Audio        string
	AnalysisType string
	ViewCount    string
	UploadDate   string

	HasAgent     bool
	AgentID      string
	AgentActions int
	QualityScore string
	Steps        string
	Reasoning    string

	Summary template.HTML
}

// Renderer maps a summarization payload onto a View. It holds no state;
// every call renders from scratch.
type Renderer struct {
	view View
}

func NewRenderer(view View) *Renderer {
	return &Renderer{view: view}
}

// Render displays a success payload. Missing fields degrade to fallback
// text; a payload with nothing but a summary still renders.
func (r *Renderer) Render(payload *models.SummarizeResponse) {
	r.view.ShowResult(BuildResultMarkup(payload))
}

// ShowError displays a failure message as plain text.
func (r *Renderer) ShowError(message string) {
	r.view.ShowError(message)
}

// BuildResultMarkup converts a payload into the result panel markup.
func BuildResultMarkup(payload *models.SummarizeResponse) template.HTML {
	data := resultView{Placeholder: fallbackNoInfo}

	if payload.VideoInfo != nil {
		data.HasInfo = true
		data.Title = textOr(payload.VideoInfo.Title, fallbackTitle)
		data.Duration = textOr(payload.VideoInfo.Duration, fallbackNA)
		data.Channel = textOr(payload.VideoInfo.Channel, fallbackNA)
	}

	if d := payload.AnalysisDetails; d != nil {
		data.HasDetails = true
		data.Frames = d.FramesAnalyzed
		data.Audio = yesNo(d.AudioProcessed)
		data.AnalysisType = strings.ReplaceAll(d.AnalysisType, "_", " ")
		data.ViewCount = viewCountText(payload.VideoInfo)
		data.UploadDate = uploadDateText(payload.VideoInfo)

		if d.AgentID != "" {
			data.HasAgent = true
			data.AgentID = d.AgentID
			data.AgentActions = d.AgentActionsCount
			data.QualityScore = fmt.Sprintf("%.2f", d.QualityScore)
			data.Steps = joinOr(d.AnalysisStepsCompleted, fallbackNA)
			data.Reasoning = textOr(d.AgentReasoning, fallbackNA)
		}
	}

	summary := payload.Summary
	if summary == "" {
		summary = fallbackNoSummary
	}
	data.Summary = template.HTML(summary)

	var b strings.Builder
	if err := resultTemplate.Execute(&b, data); err != nil {
		// The template only reads plain struct fields; execution cannot
		// fail on well-formed data. Degrade to the summary alone.
		return template.HTML(summary)
	}
	return template.HTML(b.String())
}

func textOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

func viewCountText(info *models.VideoInfo) string {
	if info == nil || info.ViewCount == 0 {
		return fallbackNA
	}
	return fmt.Sprintf("%d", info.ViewCount)
}

func uploadDateText(info *models.VideoInfo) string {
	if info == nil {
		return fallbackNA
	}
	return textOr(info.UploadDate, fallbackNA)
}
