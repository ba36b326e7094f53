package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lucasferrer/freshkeep-backend/pkg/migrate"
)

func TestScheduledAlertsMigrationContainsConstraints(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_scheduled_alerts_table.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no scheduled alerts migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE IF NOT EXISTS scheduled_alerts",
		"FOREIGN KEY (item_id) REFERENCES items(id) ON DELETE CASCADE",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_scheduled_alerts_key",
		"CREATE INDEX IF NOT EXISTS idx_scheduled_alerts_fire_at",
		"DROP TABLE IF EXISTS scheduled_alerts",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestMigrationDirValidates(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("migrations dir invalid: %v", err)
	}
}
