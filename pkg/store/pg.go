package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/chainsafe/aa-bridge-middleware/pkg/bridge"
	"github.com/chainsafe/aa-bridge-middleware/pkg/entrypoint"
	"github.com/chainsafe/aa-bridge-middleware/pkg/ledger"
	"github.com/chainsafe/aa-bridge-middleware/pkg/paymaster"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
	"github.com/chainsafe/aa-bridge-middleware/pkg/wallet"
)

const uniqueViolation = "23505"

// pgStore is a PostgreSQL implementation of Store
type pgStore struct {
	querier
	db *bun.DB
}

// NewStore creates a new PostgreSQL-backed store
func NewStore(db *bun.DB) Store {
	return &pgStore{querier: querier{db: db}, db: db}
}

func (s *pgStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	return s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, &querier{db: tx, lock: true})
	})
}

// querier runs every query against db. Inside a transaction lock is set and
// selected rows are held FOR UPDATE.
type querier struct {
	db   bun.IDB
	lock bool
}

func (q *querier) selectQuery(model any) *bun.SelectQuery {
	sel := q.db.NewSelect().Model(model)
	if q.lock {
		sel = sel.For("UPDATE")
	}
	return sel
}

func (q *querier) getByAddress(ctx context.Context, model any, addr types.Address, what string) error {
	err := q.selectQuery(model).Where("address = ?", addr.String()).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %s %s", ErrNotFound, what, addr)
		}
		return fmt.Errorf("failed to get %s %s: %w", what, addr, err)
	}
	return nil
}

func (q *querier) insert(ctx context.Context, model any, what, key string) error {
	if _, err := q.db.NewInsert().Model(model).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s %s", ErrAlreadyExists, what, key)
		}
		return fmt.Errorf("failed to create %s %s: %w", what, key, err)
	}
	return nil
}

func (q *querier) update(ctx context.Context, model any, what, key string) error {
	res, err := q.db.NewUpdate().Model(model).WherePK().Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update %s %s: %w", what, key, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s %s", ErrNotFound, what, key)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.Field('C') == uniqueViolation
}

func (q *querier) EntryPoint(ctx context.Context, addr types.Address) (*entrypoint.EntryPoint, error) {
	dao := new(EntryPointDao)
	if err := q.getByAddress(ctx, dao, addr, "entry point"); err != nil {
		return nil, err
	}
	return dao.Data, nil
}

func (q *querier) CreateEntryPoint(ctx context.Context, ep *entrypoint.EntryPoint) error {
	dao := &EntryPointDao{Address: ep.Address.String(), Authority: ep.Authority.String(), Data: ep, UpdatedAt: time.Now()}
	return q.insert(ctx, dao, "entry point", dao.Address)
}

func (q *querier) UpdateEntryPoint(ctx context.Context, ep *entrypoint.EntryPoint) error {
	dao := &EntryPointDao{Address: ep.Address.String(), Authority: ep.Authority.String(), Data: ep, UpdatedAt: time.Now()}
	return q.update(ctx, dao, "entry point", dao.Address)
}

func (q *querier) Wallet(ctx context.Context, addr types.Address) (*wallet.Wallet, error) {
	dao := new(WalletDao)
	if err := q.getByAddress(ctx, dao, addr, "wallet"); err != nil {
		return nil, err
	}
	return dao.Data, nil
}

func (q *querier) CreateWallet(ctx context.Context, w *wallet.Wallet) error {
	return q.insert(ctx, toWalletDao(w), "wallet", w.Address.String())
}

func (q *querier) UpdateWallet(ctx context.Context, w *wallet.Wallet) error {
	return q.update(ctx, toWalletDao(w), "wallet", w.Address.String())
}

func (q *querier) Paymaster(ctx context.Context, addr types.Address) (*paymaster.Paymaster, error) {
	dao := new(PaymasterDao)
	if err := q.getByAddress(ctx, dao, addr, "paymaster"); err != nil {
		return nil, err
	}
	return dao.Data, nil
}

func (q *querier) CreatePaymaster(ctx context.Context, pm *paymaster.Paymaster) error {
	return q.insert(ctx, toPaymasterDao(pm), "paymaster", pm.Address.String())
}

func (q *querier) UpdatePaymaster(ctx context.Context, pm *paymaster.Paymaster) error {
	return q.update(ctx, toPaymasterDao(pm), "paymaster", pm.Address.String())
}

func (q *querier) Stake(ctx context.Context, pm types.Address) (*entrypoint.PaymasterStake, error) {
	dao := new(PaymasterStakeDao)
	err := q.selectQuery(dao).Where("paymaster = ?", pm.String()).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: stake of paymaster %s", ErrNotFound, pm)
		}
		return nil, fmt.Errorf("failed to get stake of paymaster %s: %w", pm, err)
	}
	return dao.Data, nil
}

func (q *querier) SaveStake(ctx context.Context, s *entrypoint.PaymasterStake) error {
	dao := &PaymasterStakeDao{
		Address:   s.Address.String(),
		Paymaster: s.Paymaster.String(),
		Data:      s,
		UpdatedAt: time.Now(),
	}
	_, err := q.db.NewInsert().
		Model(dao).
		On("CONFLICT (address) DO UPDATE").
		Set("data = EXCLUDED.data").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save stake %s: %w", dao.Address, err)
	}
	return nil
}

func (q *querier) Bridge(ctx context.Context, addr types.Address) (*bridge.Bridge, error) {
	dao := new(BridgeDao)
	if err := q.getByAddress(ctx, dao, addr, "bridge"); err != nil {
		return nil, err
	}
	return dao.Data, nil
}

func (q *querier) CreateBridge(ctx context.Context, b *bridge.Bridge) error {
	return q.insert(ctx, toBridgeDao(b), "bridge", b.Address.String())
}

func (q *querier) UpdateBridge(ctx context.Context, b *bridge.Bridge) error {
	return q.update(ctx, toBridgeDao(b), "bridge", b.Address.String())
}

func (q *querier) LockRecord(ctx context.Context, addr types.Address) (*bridge.LockRecord, error) {
	dao := new(LockRecordDao)
	if err := q.getByAddress(ctx, dao, addr, "lock record"); err != nil {
		return nil, err
	}
	return dao.Data, nil
}

func (q *querier) CreateLockRecord(ctx context.Context, r *bridge.LockRecord) error {
	return q.insert(ctx, toLockDao(r), "lock record", r.Address.String())
}

func (q *querier) UpdateLockRecord(ctx context.Context, r *bridge.LockRecord) error {
	dao := toLockDao(r)
	_, err := q.db.NewUpdate().
		Model(dao).
		Column("is_claimed", "data").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update lock record %s: %w", dao.Address, err)
	}
	return nil
}

func (q *querier) MintRecord(ctx context.Context, addr types.Address) (*bridge.MintRecord, error) {
	dao := new(MintRecordDao)
	if err := q.getByAddress(ctx, dao, addr, "mint record"); err != nil {
		return nil, err
	}
	return dao.Data, nil
}

func (q *querier) CreateMintRecord(ctx context.Context, r *bridge.MintRecord) error {
	return q.insert(ctx, toMintDao(r), "mint record", r.Address.String())
}

func (q *querier) BurnRecord(ctx context.Context, addr types.Address) (*bridge.BurnRecord, error) {
	dao := new(BurnRecordDao)
	if err := q.getByAddress(ctx, dao, addr, "burn record"); err != nil {
		return nil, err
	}
	return dao.Data, nil
}

func (q *querier) CreateBurnRecord(ctx context.Context, r *bridge.BurnRecord) error {
	return q.insert(ctx, toBurnDao(r), "burn record", r.Address.String())
}

func (q *querier) UpdateBurnRecord(ctx context.Context, r *bridge.BurnRecord) error {
	dao := toBurnDao(r)
	_, err := q.db.NewUpdate().
		Model(dao).
		Column("is_claimed", "data").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update burn record %s: %w", dao.Address, err)
	}
	return nil
}

func (q *querier) ListUnclaimedLocks(ctx context.Context, bridgeAddr types.Address, fromID uint64, limit int) ([]*bridge.LockRecord, error) {
	var daos []LockRecordDao
	err := q.db.NewSelect().
		Model(&daos).
		Where("bridge = ?", bridgeAddr.String()).
		Where("is_claimed = ?", false).
		Where("record_id >= ?", int64(fromID)).
		Order("record_id ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unclaimed locks: %w", err)
	}
	out := make([]*bridge.LockRecord, 0, len(daos))
	for i := range daos {
		out = append(out, daos[i].Data)
	}
	return out, nil
}

func (q *querier) ListUnclaimedBurns(ctx context.Context, bridgeAddr types.Address, fromID uint64, limit int) ([]*bridge.BurnRecord, error) {
	var daos []BurnRecordDao
	err := q.db.NewSelect().
		Model(&daos).
		Where("bridge = ?", bridgeAddr.String()).
		Where("is_claimed = ?", false).
		Where("record_id >= ?", int64(fromID)).
		Order("record_id ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unclaimed burns: %w", err)
	}
	out := make([]*bridge.BurnRecord, 0, len(daos))
	for i := range daos {
		out = append(out, daos[i].Data)
	}
	return out, nil
}

func (q *querier) InsertOperationEvents(ctx context.Context, records []*OperationEventRecord) error {
	if len(records) == 0 {
		return nil
	}
	daos := make([]OperationEventDao, 0, len(records))
	for _, r := range records {
		ev := r.Event
		daos = append(daos, OperationEventDao{
			BatchID:   r.BatchID,
			OpIndex:   r.Index,
			OpHash:    ev.OpHash.Hex(),
			Sender:    ev.Sender.String(),
			Success:   ev.Success,
			Data:      &ev,
			CreatedAt: time.Unix(r.CreatedAt, 0).UTC(),
		})
	}
	if _, err := q.db.NewInsert().Model(&daos).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert operation events: %w", err)
	}
	return nil
}

func (q *querier) OperationEvents(ctx context.Context, batchID string) ([]*OperationEventRecord, error) {
	var daos []OperationEventDao
	err := q.db.NewSelect().
		Model(&daos).
		Where("batch_id = ?", batchID).
		Order("op_index ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list operation events: %w", err)
	}
	out := make([]*OperationEventRecord, 0, len(daos))
	for i := range daos {
		out = append(out, &OperationEventRecord{
			BatchID:   daos[i].BatchID,
			Index:     daos[i].OpIndex,
			Event:     *daos[i].Data,
			CreatedAt: daos[i].CreatedAt.Unix(),
		})
	}
	return out, nil
}

// Balances

func (q *querier) Balance(ctx context.Context, asset types.Asset, owner types.Address) (uint64, error) {
	dao := new(BalanceDao)
	err := q.selectQuery(dao).
		Where("asset_id = ?", asset.ID()).
		Where("owner = ?", owner.String()).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get %s balance of %s: %w", asset, owner, err)
	}
	return parseAmount(dao.Amount)
}

// lockBalance makes sure the row exists and reads it under a row lock.
func (q *querier) lockBalance(ctx context.Context, asset types.Asset, owner types.Address) (uint64, error) {
	_, err := q.db.NewInsert().
		Model(&BalanceDao{AssetID: asset.ID(), Owner: owner.String(), Amount: "0", UpdatedAt: time.Now()}).
		On("CONFLICT (asset_id, owner) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s balance of %s: %w", asset, owner, err)
	}
	dao := new(BalanceDao)
	err = q.db.NewSelect().
		Model(dao).
		Where("asset_id = ?", asset.ID()).
		Where("owner = ?", owner.String()).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to lock %s balance of %s: %w", asset, owner, err)
	}
	return parseAmount(dao.Amount)
}

func (q *querier) setBalance(ctx context.Context, asset types.Asset, owner types.Address, amount uint64) error {
	_, err := q.db.NewUpdate().
		Model((*BalanceDao)(nil)).
		Set("amount = ?", formatUint(amount)).
		Set("updated_at = ?", time.Now()).
		Where("asset_id = ?", asset.ID()).
		Where("owner = ?", owner.String()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set %s balance of %s: %w", asset, owner, err)
	}
	return nil
}

func (q *querier) Transfer(ctx context.Context, asset types.Asset, from, to types.Address, amount uint64) error {
	if amount == 0 {
		return ledger.ErrInvalidAmount
	}
	// lock both rows in address order
	first, second := from, to
	if to.Compare(from) < 0 {
		first, second = to, from
	}
	balances := make(map[types.Address]uint64, 2)
	for _, owner := range []types.Address{first, second} {
		if _, seen := balances[owner]; seen {
			continue
		}
		bal, err := q.lockBalance(ctx, asset, owner)
		if err != nil {
			return err
		}
		balances[owner] = bal
	}
	if balances[from] < amount {
		return fmt.Errorf("%w: %s has %d %s, needs %d", ledger.ErrInsufficientFunds, from.Short(), balances[from], asset, amount)
	}
	if from == to {
		return nil
	}
	credited, err := types.CheckedAdd(balances[to], amount)
	if err != nil {
		return err
	}
	if err := q.setBalance(ctx, asset, from, balances[from]-amount); err != nil {
		return err
	}
	return q.setBalance(ctx, asset, to, credited)
}

func (q *querier) Mint(ctx context.Context, asset types.Asset, to types.Address, amount uint64) error {
	if amount == 0 {
		return ledger.ErrInvalidAmount
	}
	bal, err := q.lockBalance(ctx, asset, to)
	if err != nil {
		return err
	}
	credited, err := types.CheckedAdd(bal, amount)
	if err != nil {
		return err
	}
	return q.setBalance(ctx, asset, to, credited)
}

func (q *querier) Burn(ctx context.Context, asset types.Asset, from types.Address, amount uint64) error {
	if amount == 0 {
		return ledger.ErrInvalidAmount
	}
	bal, err := q.lockBalance(ctx, asset, from)
	if err != nil {
		return err
	}
	if bal < amount {
		return fmt.Errorf("%w: %s has %d %s, needs %d", ledger.ErrInsufficientFunds, from.Short(), bal, asset, amount)
	}
	return q.setBalance(ctx, asset, from, bal-amount)
}

func parseAmount(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid stored amount %q: %w", s, err)
	}
	return v, nil
}
