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
		log.Println("creating operation_events table...")
		if err := mghelper.CreateSchema(ctx, db, &store.OperationEventDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &store.OperationEventDao{}, "batch_id", "op_hash", "sender")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping operation_events table...")
		return mghelper.DropTables(ctx, db, &store.OperationEventDao{})
	})
}
