package migrations

import (
	"bytes"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_EmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"000001_create_health_check.up.sql",
		"000001_create_health_check.down.sql",
		"000002_create_user.up.sql",
		"000002_create_user.down.sql",
	}, files)
}

func Test_EmbeddedMigrations_Versions(t *testing.T) {
	// given
	src, err := iofs.New(FS, ".")
	require.NoError(t, err)
	defer func() { _ = src.Close() }()

	// when
	first, err := src.First()
	require.NoError(t, err)
	next, err := src.Next(first)
	require.NoError(t, err)

	// then
	assert.Equal(t, uint(1), first)
	assert.Equal(t, uint(2), next)
}

func Test_Logger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.New(slog.NewTextHandler(&buf, nil)), true)

	l.Printf("applied %d", 2)

	assert.True(t, l.Verbose())
	assert.Contains(t, buf.String(), "applied 2")
}
