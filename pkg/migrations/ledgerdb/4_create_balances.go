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
		log.Println("creating balances table...")
		if err := mghelper.CreateSchema(ctx, db, &store.BalanceDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &store.BalanceDao{}, "owner")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping balances table...")
		return mghelper.DropTables(ctx, db, &store.BalanceDao{})
	})
}
