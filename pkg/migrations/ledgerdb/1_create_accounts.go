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
		log.Println("creating entry_points, wallets, paymasters and paymaster_stakes tables...")
		if err := mghelper.CreateSchema(ctx, db,
			&store.EntryPointDao{},
			&store.WalletDao{},
			&store.PaymasterDao{},
			&store.PaymasterStakeDao{},
		); err != nil {
			return err
		}
		if err := mghelper.CreateModelIndexes(ctx, db, &store.WalletDao{}, "owner"); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &store.PaymasterDao{}, "owner", "entry_point")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping entry_points, wallets, paymasters and paymaster_stakes tables...")
		return mghelper.DropTables(ctx, db,
			&store.PaymasterStakeDao{},
			&store.PaymasterDao{},
			&store.WalletDao{},
			&store.EntryPointDao{},
		)
	})
}
