package database

import (
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Migrations apply in lexical order, so every file must carry a fixed-width
// numeric prefix for that order to match the intended numeric order.
var migrationName = regexp.MustCompile(`^\d{4}_[a-z0-9_]+\.up\.sql$`)

func TestEmbeddedMigrationsAreWellFormed(t *testing.T) {
	files, err := migrationFiles.ReadDir("migrations")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	var names []string
	for _, file := range files {
		name := file.Name()
		if !strings.HasSuffix(name, ".up.sql") {
			continue
		}
		assert.True(t, migrationName.MatchString(name), "migration %q must be NNNN_name.up.sql", name)
		names = append(names, name)
	}

	require.NotEmpty(t, names)
	assert.True(t, sort.StringsAreSorted(names), "embedded FS must list migrations in apply order")
	assert.Equal(t, "0001_init.up.sql", names[0])
}

func TestInitMigrationEnforcesUsernameUniqueness(t *testing.T) {
	sqlBytes, err := migrationFiles.ReadFile("migrations/0001_init.up.sql")
	require.NoError(t, err)

	assert.Contains(t, string(sqlBytes), "username TEXT NOT NULL UNIQUE")
}
