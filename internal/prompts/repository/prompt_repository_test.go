package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	promptsdomain "mail-agent-backend/internal/prompts/domain"
)

func TestMissingFileYieldsDefaults(t *testing.T) {
	repo, err := NewPromptRepository(filepath.Join(t.TempDir(), "prompts.json"))
	require.NoError(t, err)

	assert.Equal(t, promptsdomain.PromptConfig{}, repo.GetAll())
}

func TestMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.json")
	require.NoError(t, os.WriteFile(path, []byte("}{"), 0o644))

	_, err := NewPromptRepository(path)
	require.Error(t, err)
}

func TestUpdateMergesAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.json")
	repo, err := NewPromptRepository(path)
	require.NoError(t, err)

	cat := "sort by topic"
	_, err = repo.Update(promptsdomain.PromptUpdate{CategorizationPrompt: &cat})
	require.NoError(t, err)

	reply := "be friendly"
	merged, err := repo.Update(promptsdomain.PromptUpdate{AutoReplyPrompt: &reply})
	require.NoError(t, err)

	// Untouched keys survive partial updates.
	assert.Equal(t, "sort by topic", merged.CategorizationPrompt)
	assert.Equal(t, "", merged.ActionItemPrompt)
	assert.Equal(t, "be friendly", merged.AutoReplyPrompt)

	// And the full document round-trips through a fresh repository.
	reloaded, err := NewPromptRepository(path)
	require.NoError(t, err)
	assert.Equal(t, merged, reloaded.GetAll())
}

func TestGetAllReturnsACopy(t *testing.T) {
	repo, err := NewPromptRepository(filepath.Join(t.TempDir(), "prompts.json"))
	require.NoError(t, err)

	got := repo.GetAll()
	got.CategorizationPrompt = "mutated"

	assert.Equal(t, "", repo.GetAll().CategorizationPrompt)
}
