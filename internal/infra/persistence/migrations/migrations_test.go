package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	migrations, err := Collect()
	require.NoError(t, err)
	require.Len(t, migrations, 4)

	for i, m := range migrations {
		assert.Equal(t, int64(i+1), m.Version)
	}
}

func TestSchema(t *testing.T) {
	read := func(name string) string {
		b, err := fs.ReadFile(FS, "sql/"+name)
		require.NoError(t, err)

		return string(b)
	}

	commerces := read("00002_commerces.sql")
	assert.Contains(t, commerces, "geography(Point, 4326) GENERATED ALWAYS")
	assert.Contains(t, commerces, "USING GIST (location)")

	follows := read("00004_follows.sql")
	assert.Contains(t, follows, "CREATE UNIQUE INDEX idx_follows_user_commerce ON follows (user_id, commerce_id)")
	assert.Contains(t, follows, "notifications_enabled boolean NOT NULL DEFAULT true")

	entries, err := fs.ReadDir(FS, dir)
	require.NoError(t, err)
	for _, entry := range entries {
		body := read(entry.Name())
		assert.True(t, strings.HasPrefix(body, "-- +goose Up"), entry.Name())
		assert.Contains(t, body, "-- +goose Down", entry.Name())
	}
}
