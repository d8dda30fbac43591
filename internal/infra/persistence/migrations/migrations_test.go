package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		body, err := fs.ReadFile(FS, name)
		require.NoError(t, err)

		text := string(body)
		assert.Contains(t, text, "-- +goose Up", name)
		assert.Contains(t, text, "-- +goose Down", name)
		assert.Equal(t, strings.Count(text, "StatementBegin"), strings.Count(text, "StatementEnd"), name)
	}
}

func TestUniqueIndexesExist(t *testing.T) {
	var all strings.Builder
	files, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	for _, name := range files {
		body, err := fs.ReadFile(FS, name)
		require.NoError(t, err)
		all.Write(body)
	}

	schema := all.String()
	assert.Contains(t, schema, "CREATE UNIQUE INDEX idx_identities_username ON identities (username)")
	assert.Contains(t, schema, "CREATE UNIQUE INDEX idx_identities_email ON identities (email)")
	assert.Contains(t, schema, "CREATE UNIQUE INDEX idx_relations_actor_target_kind ON relations (actor_id, target_id, kind)")
	assert.Contains(t, schema, "PRIMARY KEY (playlist_id, video_id)")
}
