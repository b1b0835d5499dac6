package database

import (
	"fmt"

	"go-onboarding/internal/activitylog"
	"go-onboarding/internal/assignment"
	"go-onboarding/internal/department"
	"go-onboarding/internal/document"
	"go-onboarding/internal/messaging/kafka"
	"go-onboarding/internal/notification"
	"go-onboarding/internal/shared/counter"
	"go-onboarding/internal/template"
	"go-onboarding/internal/user"

	"gorm.io/gorm"
)

// Models returns every persisted model in dependency order.
func Models() []any {
	return []any{
		&department.Department{},
		&user.User{},
		&template.Template{},
		&template.Task{},
		&assignment.EmployeeTask{},
		&document.Document{},
		&notification.Notification{},
		&activitylog.ActivityLog{},
		&kafka.OutboxEvent{},
		&counter.SequenceCounter{},
	}
}

type uniqueIndex struct {
	model any
	table string
	name  string
}

func uniqueIndexes() []uniqueIndex {
	return []uniqueIndex{
		{&user.User{}, "users", "uq_users_email"},
		{&user.User{}, "users", "uq_users_employee_code"},
		{&department.Department{}, "departments", "uq_departments_name"},
		{&assignment.EmployeeTask{}, "employee_tasks", "uq_employee_task"},
	}
}

// UniqueIndexes maps each unique index conflict detection depends on to its table.
func UniqueIndexes() map[string]string {
	out := make(map[string]string)
	for _, idx := range uniqueIndexes() {
		out[idx.name] = idx.table
	}
	return out
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	for _, m := range Models() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
	}
	return ensureUniqueIndexes(db)
}

// ensureUniqueIndexes membuat ulang unique index yang hilang, misalnya setelah
// SQLite me-rebuild tabel saat AlterColumn.
func ensureUniqueIndexes(db *gorm.DB) error {
	m := db.Migrator()
	for _, idx := range uniqueIndexes() {
		if m.HasIndex(idx.model, idx.name) {
			continue
		}
		if err := m.CreateIndex(idx.model, idx.name); err != nil {
			return fmt.Errorf("create index %s: %w", idx.name, err)
		}
	}
	return nil
}
