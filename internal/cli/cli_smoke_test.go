package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// runCLI executes one command against an isolated data dir and decodes the
// JSON envelope.
func runCLI(t *testing.T, dir string, args ...string) map[string]any {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--dir", dir}, args...))
	require.NoError(t, cmd.Execute(), "monofocus %v\nstderr: %s", args, errOut.String())

	var env map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &env), "stdout: %s", out.String())
	require.Contains(t, env, "data", "stdout: %s", out.String())
	return env
}

func runCLIExpectError(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--dir", dir}, args...))
	require.Error(t, cmd.Execute(), "expected failure: monofocus %v\nstdout: %s", args, out.String())
}

func dataMap(t *testing.T, env map[string]any) map[string]any {
	t.Helper()
	m, ok := env["data"].(map[string]any)
	require.True(t, ok, "expected object data, got %#v", env["data"])
	return m
}

func TestCLISmoke_CaptureToFocusFlow(t *testing.T) {
	dir := t.TempDir()

	// Capture, triage into a planned task.
	captured := runCLI(t, dir, "inbox", "add", "call", "the", "dentist")
	capID := dataMap(t, captured)["id"].(string)
	require.NotEmpty(t, capID)

	task := runCLI(t, dir, "inbox", "plan", capID, "--day", "today")
	taskID := dataMap(t, task)["id"].(string)
	require.NotEmpty(t, taskID)
	require.Equal(t, "call the dentist", dataMap(t, task)["title"])

	// The capture is now processed and out of the default listing.
	inbox := runCLI(t, dir, "inbox", "list")
	require.Empty(t, inbox["data"])

	// The task shows up in today's listing.
	today := runCLI(t, dir, "tasks", "list", "--day", "today")
	tasks, ok := today["data"].([]any)
	require.True(t, ok)
	require.Len(t, tasks, 1)

	// Focus on it, then complete it.
	runCLI(t, dir, "focus", "start", taskID)
	status := runCLI(t, dir, "focus", "status")
	require.Equal(t, taskID, dataMap(t, status)["task"].(map[string]any)["id"])

	done := runCLI(t, dir, "focus", "done")
	require.Equal(t, "done", dataMap(t, done)["task"].(map[string]any)["status"])

	after := runCLI(t, dir, "focus", "status")
	require.Nil(t, after["data"])

	// Completed tasks leave the todo listing.
	todo := runCLI(t, dir, "tasks", "list")
	require.Empty(t, todo["data"])
	doneList := runCLI(t, dir, "tasks", "list", "--status", "done")
	require.Len(t, doneList["data"], 1)
}

func TestCLISmoke_EventTaskSync(t *testing.T) {
	dir := t.TempDir()

	// Default date is today, which keeps the event in the upcoming listing.
	ev := runCLI(t, dir, "events", "add", "dentist", "--time", "14:30")
	evID := dataMap(t, ev)["id"].(string)
	linked, ok := ev["task"].(map[string]any)
	require.True(t, ok, "expected a linked task in %#v", ev)
	require.Equal(t, "14:30 dentist", linked["title"])

	// Rescheduling the event drags the task along.
	upd := runCLI(t, dir, "events", "update", evID, "--time", "15:00")
	tsk, ok := upd["task"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "15:00 dentist", tsk["title"])

	// Completing the linked task leaves the event untouched.
	runCLI(t, dir, "tasks", "done", linked["id"].(string))
	list := runCLI(t, dir, "events", "list")
	events := list["data"].([]any)
	require.Len(t, events, 1)
	require.Equal(t, "15:00", events[0].(map[string]any)["time"])

	// Deleting the event cascades to the task.
	runCLI(t, dir, "events", "delete", evID)
	all := runCLI(t, dir, "tasks", "list", "--status", "all")
	require.Empty(t, all["data"])
}

func TestCLISmoke_ExportImportReset(t *testing.T) {
	dir := t.TempDir()
	runCLI(t, dir, "tasks", "add", "keep me", "--day", "2026-09-01")

	file := filepath.Join(t.TempDir(), "backup.json")
	runCLI(t, dir, "export", file)
	b, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Contains(t, string(b), "keep me")

	runCLIExpectError(t, dir, "reset") // no --yes
	runCLI(t, dir, "reset", "--yes")
	require.Empty(t, runCLI(t, dir, "tasks", "list", "--status", "all")["data"])

	sum := runCLI(t, dir, "import", file)
	require.EqualValues(t, 1, dataMap(t, sum)["tasks"])

	// Malformed backups are rejected before anything is replaced.
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"tasks": "nope"}`), 0o644))
	runCLIExpectError(t, dir, "import", bad)
	require.Len(t, runCLI(t, dir, "tasks", "list", "--status", "all")["data"], 1)
}

func TestCLISmoke_UnknownIDsFail(t *testing.T) {
	dir := t.TempDir()
	runCLIExpectError(t, dir, "tasks", "done", "task-nope")
	runCLIExpectError(t, dir, "inbox", "plan", "cap-nope")
	runCLIExpectError(t, dir, "focus", "start", "task-nope")
	runCLIExpectError(t, dir, "focus", "stop")
	runCLIExpectError(t, dir, "events", "delete", "evt-nope")
}

func TestCLISmoke_HistoryAndBackup(t *testing.T) {
	dir := t.TempDir()
	runCLI(t, dir, "tasks", "add", "audited")

	hist := runCLI(t, dir, "history")
	entries := hist["data"].([]any)
	require.NotEmpty(t, entries)
	require.Equal(t, "add_task", entries[len(entries)-1].(map[string]any)["action"])

	bak := runCLI(t, dir, "backup")
	path := dataMap(t, bak)["backup"].(string)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), "audited")
}
