package main

import (
	"context"
	"flag"
	"log"

	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/aa-bridge-middleware/pkg/config"
	"github.com/chainsafe/aa-bridge-middleware/pkg/migrations/ledgerdb"
	"github.com/chainsafe/aa-bridge-middleware/pkg/pgutil"
	mghelper "github.com/chainsafe/aa-bridge-middleware/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "config.api-server.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	cfg, err := config.LoadAPIServer(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err)
	}

	ctx := context.Background()
	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err)
	}
	defer func() { _ = db.Close() }()

	log.Printf("Running ledger migrations on %s", cfg.Database.Database)

	migrator := migrate.NewMigrator(db, ledgerdb.Migrations)
	if err := mghelper.RunMigrations(ctx, migrator, flag.Args()...); err != nil {
		mghelper.Exitf("%s", err)
	}
}
