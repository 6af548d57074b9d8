package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "Add Station Column", "adds station to order_lines")
	require.NoError(t, err)

	assert.Len(t, mf.Version, 14)
	assert.Equal(t, "Add Station Column", mf.Name)
	assert.Equal(t, filepath.Join(dir, mf.Version+"_add_station_column.up.sql"), mf.UpPath)
	assert.Equal(t, filepath.Join(dir, mf.Version+"_add_station_column.down.sql"), mf.DownPath)

	up, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "-- Migration: Add Station Column")
	assert.Contains(t, string(up), "adds station to order_lines")

	down, err := os.ReadFile(mf.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(down), "(Rollback)")
	assert.Contains(t, string(down), "Rollback for adds station to order_lines")
}

func TestCreateMigrationMakesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "migrations")

	mf, err := CreateMigration(dir, "init", "")
	require.NoError(t, err)

	assert.FileExists(t, mf.UpPath)
	assert.FileExists(t, mf.DownPath)
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"create orders", "create_orders"},
		{"Create-Delivery Records", "create_delivery_records"},
		{"already_sane", "already_sane"},
		{"drop!! temp##", "drop_temp"},
		{"  spaced  out  ", "spaced_out"},
		{"MixedCASE123", "mixedcase123"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.in))
		})
	}
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{
		"20260801000001_create_menu_items.up.sql",
		"20260801000001_create_menu_items.down.sql",
		"20260801000002_create_orders.up.sql",
		"20260801000002_create_orders.down.sql",
		"notes.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("-- sql\n"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0755))

	migrations, err := ListMigrations(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"20260801000001_create_menu_items",
		"20260801000002_create_orders",
	}, migrations)
}

func TestListMigrationsMissingDirectory(t *testing.T) {
	migrations, err := ListMigrations(filepath.Join(t.TempDir(), "does-not-exist"))

	require.NoError(t, err)
	assert.Empty(t, migrations)
}
