package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/aa-bridge-middleware/pkg/config"
	"github.com/chainsafe/aa-bridge-middleware/pkg/pgutil"
)

type probeDao struct {
	bun.BaseModel `bun:"table:probe_records"`
	Address       string `bun:",pk,type:varchar(66)"`
	Owner         string `bun:",notnull,type:varchar(66)"`
}

func TestConnectDB_InvalidHost(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "invalid-host-that-does-not-exist",
		Port:     5432,
		User:     "ledger",
		Password: "ledger",
		Database: "ledger_test",
		SSLMode:  "disable",
	}
	db, err := pgutil.ConnectDB(context.Background(), cfg)
	if err == nil {
		_ = db.Close()
		t.Fatal("ConnectDB() should fail with invalid host")
	}
}

func TestIndexName(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()

	name, err := IndexName(db, &probeDao{}, "owner")
	if err != nil {
		t.Fatalf("IndexName() failed: %v", err)
	}
	if name != "idx_probe_records_owner" {
		t.Errorf("expected idx_probe_records_owner, got %s", name)
	}
	if _, err := IndexName(db, nil, "owner"); err == nil {
		t.Error("IndexName() should reject a nil model")
	}
}

func TestSchemaHelpers(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := CreateSchema(ctx, db, &probeDao{}); err != nil {
			t.Fatalf("CreateSchema() call %d failed: %v", i+1, err)
		}
		if err := CreateModelIndexes(ctx, db, &probeDao{}, "owner"); err != nil {
			t.Fatalf("CreateModelIndexes() call %d failed: %v", i+1, err)
		}
	}
	pgutil.AssertTableExists(t, db, "probe_records")
	pgutil.AssertIndexExists(t, db, "idx_probe_records_owner")

	for i := 0; i < 2; i++ {
		if err := DropTables(ctx, db, &probeDao{}); err != nil {
			t.Fatalf("DropTables() call %d failed: %v", i+1, err)
		}
	}
	pgutil.AssertTableNotExists(t, db, "probe_records")
}

func TestRunMigrations_Commands(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	ms := migrate.NewMigrations()
	ms.Add(migrate.Migration{
		Name: "20240101000000",
		Up: func(ctx context.Context, db *bun.DB) error {
			return CreateSchema(ctx, db, &probeDao{})
		},
		Down: func(ctx context.Context, db *bun.DB) error {
			return DropTables(ctx, db, &probeDao{})
		},
	})
	migrator := migrate.NewMigrator(db, ms)

	for _, cmd := range []string{"init", "up", "status"} {
		if err := RunMigrations(ctx, migrator, cmd); err != nil {
			t.Fatalf("%s failed: %v", cmd, err)
		}
	}
	pgutil.AssertTableExists(t, db, "probe_records")

	if err := RunMigrations(ctx, migrator, "down"); err != nil {
		t.Fatalf("down failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "probe_records")

	if err := RunMigrations(ctx, migrator); err == nil {
		t.Error("expected error without a command")
	}
	if err := RunMigrations(ctx, migrator, "sideways"); err == nil {
		t.Error("expected error for unknown command")
	}
}
