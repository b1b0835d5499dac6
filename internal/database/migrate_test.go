package database_test

import (
	"path/filepath"
	"testing"

	"go-onboarding/internal/database"
	"go-onboarding/internal/shared/connection"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	db, err := connection.OpenSQLite(filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))
	// idempotent
	require.NoError(t, database.Migrate(db))

	for _, table := range []string{
		"departments", "users", "templates", "tasks", "employee_tasks",
		"documents", "notifications", "activity_logs", "outbox_events", "sequence_counters",
	} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	for name, table := range database.UniqueIndexes() {
		assert.True(t, db.Migrator().HasIndex(table, name), name)
	}
}

func TestMigrate_UniqueConstraintsSurviveRelatedModels(t *testing.T) {
	db, err := connection.OpenSQLite(filepath.Join(t.TempDir(), "unique.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	insertDept := func(id string) error {
		return db.Exec(`INSERT INTO departments (id, name) VALUES (?, ?)`, id, "Engineering").Error
	}
	require.NoError(t, insertDept(uuid.NewString()))
	assert.Error(t, insertDept(uuid.NewString()), "duplicate department name must be rejected")

	insertUser := func(email, code string) error {
		return db.Exec(
			`INSERT INTO users (id, name, email, password, role, employee_code) VALUES (?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), "Rina", email, "hash", "employee", code,
		).Error
	}
	require.NoError(t, insertUser("rina@example.com", "EMP000001"))
	assert.Error(t, insertUser("rina@example.com", "EMP000002"), "duplicate email must be rejected")
	assert.Error(t, insertUser("other@example.com", "EMP000001"), "duplicate employee code must be rejected")
}
