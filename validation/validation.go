package validation

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/user/yt-summarizer/config"
	"github.com/user/yt-summarizer/errors"
)

// youtubeURLPattern accepts the watch, embed, and short-link URL shapes.
// It is a prefix match: anything after a valid id (extra query parameters,
// path segments, trailing text) is accepted.
var youtubeURLPattern = regexp.MustCompile(
	`^(https?://)?(www\.)?(youtube\.com/watch\?v=|youtube\.com/embed/|youtu\.be/)[\w-]+`,
)

// IsValidYouTubeURL reports whether candidate starts with an accepted
// YouTube URL shape. Purely syntactic, no network or DNS validation.
func IsValidYouTubeURL(candidate string) bool {
	return youtubeURLPattern.MatchString(candidate)
}

const ExampleVideoURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

type Validator struct {
	config *config.Config
}

func NewValidator(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// ValidateURL checks a candidate summarization URL. The empty-input check
// runs before the syntactic check so callers get the more specific message.
func (v *Validator) ValidateURL(urlStr string) error {
	const op = "Validator.ValidateURL"

	if strings.TrimSpace(urlStr) == "" {
		return errors.InvalidInput(op, nil, "Please enter a YouTube URL")
	}

	if !IsValidYouTubeURL(strings.TrimSpace(urlStr)) {
		return errors.InvalidInput(op, nil, "Please enter a valid YouTube URL").
			WithSuggestion("Use a youtube.com/watch, youtube.com/embed, or youtu.be link.").
			WithExample(ExampleVideoURL)
	}

	return nil
}

// RequestValidationOpts holds options for request validation
type RequestValidationOpts struct {
	MaxContentLength int64
	AllowedMethods   []string
	RequireJSON      bool
}

// ValidateRequest validates HTTP requests
func (v *Validator) ValidateRequest(r *http.Request, opts RequestValidationOpts) error {
	const op = "Validator.ValidateRequest"

	if len(opts.AllowedMethods) > 0 {
		methodAllowed := false
		for _, method := range opts.AllowedMethods {
			if r.Method == method {
				methodAllowed = true
				break
			}
		}
		if !methodAllowed {
			return &errors.AppError{
				Code:    http.StatusMethodNotAllowed,
				Message: fmt.Sprintf("Method %s not allowed", r.Method),
				Op:      op,
			}
		}
	}

	if opts.RequireJSON {
		if contentType := r.Header.Get("Content-Type"); !strings.Contains(contentType, "application/json") {
			return errors.InvalidInput(op, nil, "Content-Type must be application/json")
		}
	}

	if opts.MaxContentLength > 0 && r.ContentLength > opts.MaxContentLength {
		return errors.InvalidInput(op, nil, "Request body too large")
	}

	return nil
}
