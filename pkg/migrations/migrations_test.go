package migrations

import (
	"context"
	"testing"

	"github.com/chainsafe/aa-bridge-middleware/pkg/migrations/ledgerdb"
	mghelper "github.com/chainsafe/aa-bridge-middleware/pkg/pgutil"
	"github.com/uptrace/bun/migrate"
)

var ledgerTables = []string{
	"entry_points",
	"wallets",
	"paymasters",
	"paymaster_stakes",
	"bridges",
	"lock_records",
	"mint_records",
	"burn_records",
	"balances",
	"operation_events",
}

func TestLedgerDBMigrations_Apply(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, ledgerdb.Migrations)

	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}
	if group.IsZero() {
		t.Error("Expected migrations to run, but none were applied")
	}

	for _, table := range append(ledgerTables, "bun_migrations") {
		mghelper.AssertTableExists(t, db, table)
	}

	mghelper.AssertIndexExists(t, db, "idx_wallets_owner")
	mghelper.AssertIndexExists(t, db, "idx_lock_records_is_claimed")
	mghelper.AssertIndexExists(t, db, "idx_burn_records_record_id")
	mghelper.AssertIndexExists(t, db, "idx_operation_events_batch_id")
}

func TestMigrations_Idempotency(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, ledgerdb.Migrations)

	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("First Migrate() failed: %v", err)
	}

	// Second run has nothing left to apply
	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Second Migrate() failed: %v", err)
	}
	if !group.IsZero() {
		t.Error("Expected no new migrations on second run")
	}

	mghelper.AssertTableExists(t, db, "wallets")
	mghelper.AssertTableExists(t, db, "balances")
}

func TestMigrations_Rollback(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, ledgerdb.Migrations)

	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}

	mghelper.AssertTableExists(t, db, "bridges")
	mghelper.AssertTableExists(t, db, "lock_records")

	// All migrations ran in one group, so one rollback drops everything
	group, err := migrator.Rollback(ctx)
	if err != nil {
		t.Fatalf("Rollback() failed: %v", err)
	}
	if group.IsZero() {
		t.Error("Expected rollback to process a migration")
	}

	for _, table := range ledgerTables {
		mghelper.AssertTableNotExists(t, db, table)
	}
}
