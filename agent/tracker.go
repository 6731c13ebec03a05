package agent

import (
	"fmt"
	"sync"
	"time"

	"github.com/user/yt-summarizer/models"
)

// capabilities is the fixed tool set advertised by the agent.
var capabilities = []string{
	"visual_analysis",
	"audio_analysis",
	"metadata_analysis",
	"content_synthesis",
	"quality_check",
	"refinement",
}

// Capabilities returns the agent's advertised tool names.
func Capabilities() []string {
	out := make([]string, len(capabilities))
	copy(out, capabilities)
	return out
}

// Tracker keeps the agent's diagnostic counters: identity, action count,
// cached analysis keys, and task memory. State is in-memory only and
// shared across requests, so every accessor takes the mutex.
type Tracker struct {
	mu         sync.Mutex
	id         string
	actions    int
	lastAction string
	cacheOrder []string
	cached     map[string]struct{}
	memoryKeys []string
	memory     map[string]struct{}
	now        func() time.Time
}

func NewTracker() *Tracker {
	t := &Tracker{
		cached: make(map[string]struct{}),
		memory: make(map[string]struct{}),
		now:    time.Now,
	}
	t.id = t.mintID()
	return t
}

func (t *Tracker) mintID() string {
	return fmt.Sprintf("VideoAgent_%d", t.now().Unix())
}

// ID returns the current agent identity.
func (t *Tracker) ID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.id
}

// Record counts one agent action and remembers it as the most recent.
func (t *Tracker) Record(action string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.actions++
	t.lastAction = action
}

// CacheAnalysis records a completed analysis key. Duplicate keys are
// kept once, in first-seen order.
func (t *Tracker) CacheAnalysis(key string) {
	if key == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.cached[key]; ok {
		return
	}
	t.cached[key] = struct{}{}
	t.cacheOrder = append(t.cacheOrder, key)
}

// Remember adds a task-memory key.
func (t *Tracker) Remember(key string) {
	if key == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.memory[key]; ok {
		return
	}
	t.memory[key] = struct{}{}
	t.memoryKeys = append(t.memoryKeys, key)
}

// Snapshot returns a copy of the current counters for the status endpoint.
func (t *Tracker) Snapshot() models.AgentInfo {
	t.mu.Lock()
	defer t.mu.Unlock()

	cached := make([]string, len(t.cacheOrder))
	copy(cached, t.cacheOrder)
	memoryKeys := make([]string, len(t.memoryKeys))
	copy(memoryKeys, t.memoryKeys)

	return models.AgentInfo{
		AgentID:        t.id,
		ActionsTaken:   t.actions,
		CachedAnalyses: cached,
		TaskMemoryKeys: memoryKeys,
		LastAction:     t.lastAction,
	}
}

// Reset clears all state and mints a fresh agent identity, returning it.
func (t *Tracker) Reset() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.id = t.mintID()
	t.actions = 0
	t.lastAction = ""
	t.cacheOrder = nil
	t.cached = make(map[string]struct{})
	t.memoryKeys = nil
	t.memory = make(map[string]struct{})

	return t.id
}
