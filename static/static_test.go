package static

import (
	"strings"
	"testing"
)

func readAsset(t *testing.T, name string) string {
	t.Helper()
	data, err := Files.ReadFile(name)
	if err != nil {
		t.Fatalf("embedded asset %s: %v", name, err)
	}
	return string(data)
}

func TestAssetsEmbedded(t *testing.T) {
	index := readAsset(t, "index.html")
	for _, ref := range []string{"/app.js", "/style.css"} {
		if !strings.Contains(index, ref) {
			t.Errorf("index.html does not reference %s", ref)
		}
	}
	readAsset(t, "app.js")
	readAsset(t, "style.css")
}

// The in-page script must keep the same panel behavior as the webui
// package: an error hides any stale result, a result hides any stale
// error, and both reveals scroll into view.
func TestAppScriptPanelContract(t *testing.T) {
	script := readAsset(t, "app.js")

	showError := section(t, script, "function showError")
	if !strings.Contains(showError, "resultPanel.classList.add('hidden')") {
		t.Error("showError must hide the result panel")
	}
	if !strings.Contains(showError, "scrollIntoView") {
		t.Error("showError must scroll the error panel into view")
	}

	showResult := section(t, script, "function showResult")
	if !strings.Contains(showResult, "errorPanel.classList.add('hidden')") {
		t.Error("showResult must hide the error panel")
	}
	if !strings.Contains(showResult, "scrollIntoView") {
		t.Error("showResult must scroll the result panel into view")
	}

	if !strings.Contains(script, "err.message || 'An error occurred while generating the summary'") {
		t.Error("fetch failures must surface the thrown message before the generic fallback")
	}
}

// section returns the source from marker up to the next top-level function.
func section(t *testing.T, src, marker string) string {
	t.Helper()
	start := strings.Index(src, marker)
	if start < 0 {
		t.Fatalf("marker %q not found", marker)
	}
	rest := src[start+len(marker):]
	end := strings.Index(rest, "\nfunction ")
	if end < 0 {
		return rest
	}
	return rest[:end]
}
