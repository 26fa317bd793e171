package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittclouds/jay/internal/store"
)

func workspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", filepath.Join(dir, "home"))
	return dir
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestChat_AnswersFromKnowledgeBase(t *testing.T) {
	dir := workspace(t)
	path := filepath.Join(dir, "kb.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"questions": [
  {"question": "Quelle est ta couleur préférée ?", "answer": "Le noir."}
]}`), 0o644))

	out, err := execute(t, "Quelle est ta couleur préférée ?\nBonjour\nquit\n", "--kb", path)
	require.NoError(t, err)

	assert.Equal(t,
		"Hikari: Jay: Le noir.\n"+
			"Hikari: Jay: Bonjour! Comment puis-je t'aider aujourd'hui?\n"+
			"Hikari: ",
		out)
}

func TestChat_LearnsAndPersists(t *testing.T) {
	dir := workspace(t)
	path := filepath.Join(dir, "kb.json")

	_, err := execute(t, "", "kb", "init", "--kb", path)
	require.NoError(t, err)

	out, err := execute(t, "Qui a écrit Dune ?\nFrank Herbert\n", "--kb", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Jay: Merci, Hikari! J'ai appris une nouvelle réponse!\n")

	kb, err := store.NewJSONStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, []store.Entry{{Question: "Qui a écrit Dune ?", Answer: "Frank Herbert"}}, kb.Entries())
}

func TestChat_MissingKnowledgeBase(t *testing.T) {
	dir := workspace(t)

	_, err := execute(t, "", "--kb", filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, store.ErrStoreUnavailable)
}

func TestKB_InitRefusesExisting(t *testing.T) {
	dir := workspace(t)
	path := filepath.Join(dir, "kb.json")

	out, err := execute(t, "", "kb", "init", "--kb", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Created json knowledge base")

	_, err = execute(t, "", "kb", "init", "--kb", path)
	assert.Error(t, err)
}

func TestKB_MigrateAndList(t *testing.T) {
	dir := workspace(t)
	src := filepath.Join(dir, "kb.json")
	dest := filepath.Join(dir, "kb.db")
	require.NoError(t, os.WriteFile(src, []byte(`{"questions": [
  {"question": "Quel âge as-tu ?", "answer": "Trois ans."},
  {"question": "Où vis-tu ?", "answer": "Dans un terminal."}
]}`), 0o644))

	out, err := execute(t, "", "kb", "migrate", "--kb", src, "--to", "sqlite", "--dest", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "Copied 2 entries")

	out, err = execute(t, "", "kb", "list", "--kb", dest, "--backend", "sqlite")
	require.NoError(t, err)
	assert.Equal(t,
		"1. Quel âge as-tu ?\n   Trois ans.\n"+
			"2. Où vis-tu ?\n   Dans un terminal.\n"+
			"2 entries\n",
		out)
}

func TestKB_MigrateRejectsUnknownBackend(t *testing.T) {
	dir := workspace(t)
	src := filepath.Join(dir, "kb.json")
	require.NoError(t, os.WriteFile(src, []byte(`{"questions": []}`), 0o644))

	_, err := execute(t, "", "kb", "migrate", "--kb", src, "--to", "csv", "--dest", filepath.Join(dir, "kb.csv"))
	assert.Error(t, err)
}
