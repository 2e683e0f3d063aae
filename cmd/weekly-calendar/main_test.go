package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/belphemur/weekly-calendar-card/internal/config"
	"github.com/belphemur/weekly-calendar-card/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dashboard.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("CONFIG_FILE", path)
	return path
}

// lockedBuffer is written by the dashboard while the test reads it
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRun_RendersHTML(t *testing.T) {
	writeConfig(t, `
[service]
output = "html"

[dashboard]
today = "2024-01-10"

[[dashboard.cards]]
type = "weekly-calendar"
entity = "sensor.calendar"

[[dashboard.cards]]
type = "weekly-calendar"
entity = "sensor.missing"

[[states]]
entity_id = "sensor.calendar"
state = "on"
`)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out))

	html := out.String()
	assert.Equal(t, 1, strings.Count(html, `<table class="calendar">`))
	assert.Contains(t, html, `<td class="day weekday3 today"><div>10</div></td>`)
	assert.Contains(t, html, "Entity not available: sensor.missing")
}

func watchConfig(today string) string {
	return `
[service]
output = "html"
watch = true

[dashboard]
today = "` + today + `"

[[dashboard.cards]]
type = "weekly-calendar"
entity = "sensor.calendar"

[[states]]
entity_id = "sensor.calendar"
state = "on"
`
}

func TestRun_WatchReloadsConfiguration(t *testing.T) {
	path := writeConfig(t, watchConfig("2024-01-10"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &lockedBuffer{}
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, out)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "<caption>Dec 31, 2023 - Jan 27, 2024</caption>")
	}, 5*time.Second, 10*time.Millisecond, "first render")

	// The watcher may not be registered yet, so keep rewriting until the
	// reload shows up.
	reloaded := func() bool {
		return strings.Contains(out.String(), "<caption>Jan 7 - Feb 3, 2024</caption>")
	}
	deadline := time.After(5 * time.Second)
	for !reloaded() {
		require.NoError(t, os.WriteFile(path, []byte(watchConfig("2024-01-17")), 0644))
		select {
		case <-deadline:
			t.Fatal("timed out waiting for the reloaded dashboard")
		case <-time.After(100 * time.Millisecond):
		}
	}
	assert.Contains(t, out.String(), `<td class="day weekday3 today"><div>17</div></td>`)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop after cancel")
	}
}

func TestRun_NoUsableCard(t *testing.T) {
	writeConfig(t, `
[[dashboard.cards]]
type = "weekly-calendar"
`)

	var out bytes.Buffer
	err := run(context.Background(), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no card could be set up")
}

func TestRun_MissingConfig(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, run(context.Background(), &bytes.Buffer{}))
}

func TestSeedStates(t *testing.T) {
	ctx := context.Background()
	store := entity.NewStore()
	store.Set(ctx, "sensor.stale", "on", nil)

	seedStates(ctx, store, []config.StateConfig{
		{EntityID: "sensor.a", State: "on"},
		{EntityID: "sensor.b", State: "off", Attributes: map[string]any{"x": int64(1)}},
	})
	snap := store.Snapshot()
	require.Len(t, snap, 2)
	assert.NotContains(t, snap, "sensor.stale")

	before := snap["sensor.b"].Version
	seedStates(ctx, store, []config.StateConfig{
		{EntityID: "sensor.a", State: "changed"},
		{EntityID: "sensor.b", State: "off", Attributes: map[string]any{"x": int64(1)}},
	})
	after := store.Snapshot()
	assert.Equal(t, before, after["sensor.b"].Version, "unchanged state keeps its version")
	assert.Equal(t, "changed", after["sensor.a"].State)
}
