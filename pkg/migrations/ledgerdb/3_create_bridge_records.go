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
		log.Println("creating lock_records, mint_records and burn_records tables...")
		if err := mghelper.CreateSchema(ctx, db,
			&store.LockRecordDao{},
			&store.MintRecordDao{},
			&store.BurnRecordDao{},
		); err != nil {
			return err
		}
		if err := mghelper.CreateModelIndexes(ctx, db, &store.LockRecordDao{}, "bridge", "record_id", "is_claimed", "user_address"); err != nil {
			return err
		}
		if err := mghelper.CreateModelIndexes(ctx, db, &store.BurnRecordDao{}, "bridge", "record_id", "is_claimed", "user_address"); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &store.MintRecordDao{}, "lock_id", "recipient")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping lock_records, mint_records and burn_records tables...")
		return mghelper.DropTables(ctx, db,
			&store.BurnRecordDao{},
			&store.MintRecordDao{},
			&store.LockRecordDao{},
		)
	})
}
