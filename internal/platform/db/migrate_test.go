package db

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMigrations(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "002_users.sql", "CREATE TABLE users (id INT);")
	writeFile(t, dir, "001_patients.sql", "CREATE TABLE patients (id INT);")
	writeFile(t, dir, "010_posts.sql", "CREATE TABLE posts (id INT);")
	writeFile(t, dir, "notes.txt", "not a migration")
	writeFile(t, dir, "README.sql", "no numeric prefix either")

	m := NewMigrator(nil, dir)
	migrations, err := m.LoadMigrations()
	if err != nil {
		t.Fatalf("LoadMigrations() error = %v", err)
	}

	if len(migrations) != 3 {
		t.Fatalf("loaded %d migrations, want 3", len(migrations))
	}
	wantOrder := []int{1, 2, 10}
	for i, mig := range migrations {
		if mig.Version != wantOrder[i] {
			t.Errorf("migration[%d].Version = %d, want %d", i, mig.Version, wantOrder[i])
		}
	}
	if migrations[0].Name != "001_patients.sql" {
		t.Errorf("first migration = %q, want 001_patients.sql", migrations[0].Name)
	}
	if migrations[0].SQL != "CREATE TABLE patients (id INT);" {
		t.Errorf("migration SQL = %q", migrations[0].SQL)
	}
}

func TestLoadMigrationsMissingDir(t *testing.T) {
	m := NewMigrator(nil, "/nonexistent/migrations")
	if _, err := m.LoadMigrations(); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
