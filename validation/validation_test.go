package validation

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/user/yt-summarizer/config"
)

func TestIsValidYouTubeURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{
			name: "Standard watch URL",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want: true,
		},
		{
			name: "Watch URL without scheme",
			url:  "youtube.com/watch?v=dQw4w9WgXcQ",
			want: true,
		},
		{
			name: "Watch URL without www",
			url:  "https://youtube.com/watch?v=dQw4w9WgXcQ",
			want: true,
		},
		{
			name: "HTTP scheme",
			url:  "http://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want: true,
		},
		{
			name: "Embed URL",
			url:  "https://www.youtube.com/embed/dQw4w9WgXcQ",
			want: true,
		},
		{
			name: "Short URL",
			url:  "https://youtu.be/dQw4w9WgXcQ",
			want: true,
		},
		{
			name: "Id with hyphen and underscore",
			url:  "https://youtu.be/a-b_c123",
			want: true,
		},
		{
			name: "Trailing query parameters accepted",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10s",
			want: true,
		},
		{
			name: "Trailing garbage after valid prefix accepted",
			url:  "https://youtu.be/dQw4w9WgXcQ some trailing text",
			want: true,
		},
		{
			name: "Empty string",
			url:  "",
			want: false,
		},
		{
			name: "Not a URL",
			url:  "not-a-url",
			want: false,
		},
		{
			name: "Different host",
			url:  "https://vimeo.com/123456",
			want: false,
		},
		{
			name: "Lookalike domain",
			url:  "https://youtube.example.com/watch?v=dQw4w9WgXcQ",
			want: false,
		},
		{
			name: "Watch path without video id",
			url:  "https://www.youtube.com/watch?v=",
			want: false,
		},
		{
			name: "Uppercase scheme rejected",
			url:  "HTTPS://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want: false,
		},
		{
			name: "Channel page",
			url:  "https://www.youtube.com/@somechannel",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidYouTubeURL(tt.url); got != tt.want {
				t.Errorf("IsValidYouTubeURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	validator := NewValidator(&config.Config{})

	tests := []struct {
		name        string
		url         string
		wantErr     bool
		wantMessage string
	}{
		{
			name:        "Empty URL",
			url:         "",
			wantErr:     true,
			wantMessage: "Please enter a YouTube URL",
		},
		{
			name:        "Whitespace-only URL",
			url:         "   \t ",
			wantErr:     true,
			wantMessage: "Please enter a YouTube URL",
		},
		{
			name:        "Invalid URL",
			url:         "https://example.com/video",
			wantErr:     true,
			wantMessage: "Please enter a valid YouTube URL",
		},
		{
			name:    "Valid URL",
			url:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			wantErr: false,
		},
		{
			name:    "Valid URL with surrounding whitespace",
			url:     "  https://youtu.be/dQw4w9WgXcQ  ",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateURL() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.wantMessage) {
				t.Errorf("ValidateURL() error = %q, want message %q", err.Error(), tt.wantMessage)
			}
		})
	}
}

func TestValidateRequest(t *testing.T) {
	validator := NewValidator(&config.Config{})

	tests := []struct {
		name          string
		method        string
		contentType   string
		contentLength int64
		opts          RequestValidationOpts
		wantErr       bool
	}{
		{
			name:    "GET request with default options",
			method:  "GET",
			opts:    RequestValidationOpts{},
			wantErr: false,
		},
		{
			name:        "POST with valid content type",
			method:      "POST",
			contentType: "application/json",
			opts:        RequestValidationOpts{RequireJSON: true},
			wantErr:     false,
		},
		{
			name:        "POST with wrong content type",
			method:      "POST",
			contentType: "text/plain",
			opts:        RequestValidationOpts{RequireJSON: true},
			wantErr:     true,
		},
		{
			name:          "Body too large",
			method:        "POST",
			contentType:   "application/json",
			contentLength: 2 << 20,
			opts:          RequestValidationOpts{MaxContentLength: 1 << 20},
			wantErr:       true,
		},
		{
			name:    "Method not allowed",
			method:  "DELETE",
			opts:    RequestValidationOpts{AllowedMethods: []string{"GET", "POST"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			if tt.contentLength != 0 {
				req.ContentLength = tt.contentLength
			}

			err := validator.ValidateRequest(req, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
