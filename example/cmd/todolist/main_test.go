package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/reducers-go/action"
	"github.com/AntonStoeckl/reducers-go/example/features/todolist"
	"github.com/AntonStoeckl/reducers-go/example/shared/shell/config"
)

func testConfig() config.Config {
	return config.Config{LogLevel: "debug", LogFormat: "json", ReducerName: "test"}
}

func decodeOutput(t *testing.T, data []byte) output {
	t.Helper()

	var out output
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &out))

	return out
}

func Test_Run_ScriptedSession(t *testing.T) {
	var stdout, stderr bytes.Buffer

	require.NoError(t, run(testConfig(), nil, &stdout, &stderr))

	out := decodeOutput(t, stdout.Bytes())
	require.Len(t, out.List.Items, 1)
	assert.Equal(t, "buy milk", out.List.Items[0].Title)
	assert.True(t, out.List.Items[0].Done)
	assert.Equal(t, "failed", out.Status["phase"])
	assert.Equal(t, "remote unreachable", out.Status["error"])

	assert.Contains(t, stderr.String(), `"msg":"reducer: action handled"`)
	assert.Contains(t, stderr.String(), `"reducer":"test/list"`)
	assert.Contains(t, stderr.String(), `"msg":"session finished"`)
}

func Test_Run_RecordThenReplay(t *testing.T) {
	journal := filepath.Join(t.TempDir(), "session.jsonl")

	var recorded bytes.Buffer
	require.NoError(t, run(testConfig(), []string{"-record", journal}, &recorded, &bytes.Buffer{}))

	var replayed bytes.Buffer
	require.NoError(t, run(testConfig(), []string{"-replay", journal}, &replayed, &bytes.Buffer{}))

	assert.Equal(t, decodeOutput(t, recorded.Bytes()), decodeOutput(t, replayed.Bytes()))
}

func Test_Run_ReplayLongJournalLine(t *testing.T) {
	title := strings.Repeat("x", 200*1024)
	data, err := action.Marshal(todolist.ItemAdded.Create(title))
	require.NoError(t, err)

	journal := filepath.Join(t.TempDir(), "session.jsonl")
	require.NoError(t, os.WriteFile(journal, append(data, '\n'), 0o600))

	var stdout bytes.Buffer
	require.NoError(t, run(testConfig(), []string{"-replay", journal}, &stdout, &bytes.Buffer{}))

	out := decodeOutput(t, stdout.Bytes())
	require.Len(t, out.List.Items, 1)
	assert.Equal(t, title, out.List.Items[0].Title)
}

func Test_Run_ReplayUnknownAction(t *testing.T) {
	journal := filepath.Join(t.TempDir(), "session.jsonl")
	require.NoError(t, os.WriteFile(journal, []byte("\n{\"type\":\"todolist/rename\",\"payload\":\"x\"}\n"), 0o600))

	err := run(testConfig(), []string{"-replay", journal}, &bytes.Buffer{}, &bytes.Buffer{})

	assert.ErrorIs(t, err, action.ErrUnknownActionType)
	assert.ErrorContains(t, err, "session.jsonl:2")
}

func Test_Run_UnknownFlag(t *testing.T) {
	err := run(testConfig(), []string{"-nope"}, &bytes.Buffer{}, &bytes.Buffer{})

	assert.Error(t, err)
}
