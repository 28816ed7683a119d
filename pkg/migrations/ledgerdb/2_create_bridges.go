package ledgerdb

import (
	"context"
	"log"

	mghelper "github.com/chainsafe/aa-bridge-middleware/pkg/pgutil/migrations"
	"github.com/chainsafe/aa-bridge-middleware/pkg/store"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating bridges table...")
		return mghelper.CreateSchema(ctx, db, &store.BridgeDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping bridges table...")
		return mghelper.DropTables(ctx, db, &store.BridgeDao{})
	})
}
