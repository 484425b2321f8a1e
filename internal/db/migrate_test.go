package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	b, err := migrationsFS.ReadFile("migrations/0001_init.up.sql")
	require.NoError(t, err)

	sql := string(b)
	for _, table := range []string{"groups", "users", "movements", "audit_logs"} {
		assert.True(t, strings.Contains(sql, "CREATE TABLE IF NOT EXISTS "+table), table)
	}
}
