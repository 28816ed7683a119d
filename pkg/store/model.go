package store

import (
	"strconv"
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/aa-bridge-middleware/pkg/bridge"
	"github.com/chainsafe/aa-bridge-middleware/pkg/entrypoint"
	"github.com/chainsafe/aa-bridge-middleware/pkg/paymaster"
	"github.com/chainsafe/aa-bridge-middleware/pkg/wallet"
)

// EntryPointDao maps to the 'entry_points' table.
type EntryPointDao struct {
	bun.BaseModel `bun:"table:entry_points,alias:ep"`
	Address       string                 `bun:"address,pk,type:varchar(66)"`
	Authority     string                 `bun:"authority,notnull,type:varchar(66)"`
	Data          *entrypoint.EntryPoint `bun:"data,type:jsonb,notnull"`
	UpdatedAt     time.Time              `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// WalletDao maps to the 'wallets' table.
type WalletDao struct {
	bun.BaseModel `bun:"table:wallets,alias:w"`
	Address       string         `bun:"address,pk,type:varchar(66)"`
	Owner         string         `bun:"owner,notnull,type:varchar(66)"`
	Nonce         string         `bun:"nonce,notnull,type:numeric(20,0)"`
	IsFrozen      bool           `bun:"is_frozen,notnull"`
	Data          *wallet.Wallet `bun:"data,type:jsonb,notnull"`
	UpdatedAt     time.Time      `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// PaymasterDao maps to the 'paymasters' table.
type PaymasterDao struct {
	bun.BaseModel `bun:"table:paymasters,alias:pm"`
	Address       string               `bun:"address,pk,type:varchar(66)"`
	Owner         string               `bun:"owner,notnull,type:varchar(66)"`
	EntryPoint    string               `bun:"entry_point,notnull,type:varchar(66)"`
	IsActive      bool                 `bun:"is_active,notnull"`
	Data          *paymaster.Paymaster `bun:"data,type:jsonb,notnull"`
	UpdatedAt     time.Time            `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// PaymasterStakeDao maps to the 'paymaster_stakes' table.
type PaymasterStakeDao struct {
	bun.BaseModel `bun:"table:paymaster_stakes,alias:ps"`
	Address       string                     `bun:"address,pk,type:varchar(66)"`
	Paymaster     string                     `bun:"paymaster,unique,notnull,type:varchar(66)"`
	Data          *entrypoint.PaymasterStake `bun:"data,type:jsonb,notnull"`
	UpdatedAt     time.Time                  `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// BridgeDao maps to the 'bridges' table.
type BridgeDao struct {
	bun.BaseModel `bun:"table:bridges,alias:b"`
	Address       string         `bun:"address,pk,type:varchar(66)"`
	Authority     string         `bun:"authority,notnull,type:varchar(66)"`
	Nonce         string         `bun:"nonce,notnull,type:numeric(20,0)"`
	IsPaused      bool           `bun:"is_paused,notnull"`
	Data          *bridge.Bridge `bun:"data,type:jsonb,notnull"`
	UpdatedAt     time.Time      `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// LockRecordDao maps to the 'lock_records' table.
type LockRecordDao struct {
	bun.BaseModel `bun:"table:lock_records,alias:lr"`
	Address       string             `bun:"address,pk,type:varchar(66)"`
	Bridge        string             `bun:"bridge,notnull,type:varchar(66)"`
	RecordID      int64              `bun:"record_id,notnull"`
	UserAddress   string             `bun:"user_address,notnull,type:varchar(66)"`
	IsClaimed     bool               `bun:"is_claimed,notnull"`
	Data          *bridge.LockRecord `bun:"data,type:jsonb,notnull"`
	CreatedAt     time.Time          `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// MintRecordDao maps to the 'mint_records' table.
type MintRecordDao struct {
	bun.BaseModel `bun:"table:mint_records,alias:mr"`
	Address       string             `bun:"address,pk,type:varchar(66)"`
	LockID        int64              `bun:"lock_id,notnull"`
	SourceChain   int64              `bun:"source_chain,notnull"`
	Recipient     string             `bun:"recipient,notnull,type:varchar(66)"`
	Data          *bridge.MintRecord `bun:"data,type:jsonb,notnull"`
	CreatedAt     time.Time          `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// BurnRecordDao maps to the 'burn_records' table.
type BurnRecordDao struct {
	bun.BaseModel `bun:"table:burn_records,alias:br"`
	Address       string             `bun:"address,pk,type:varchar(66)"`
	Bridge        string             `bun:"bridge,notnull,type:varchar(66)"`
	RecordID      int64              `bun:"record_id,notnull"`
	UserAddress   string             `bun:"user_address,notnull,type:varchar(66)"`
	IsClaimed     bool               `bun:"is_claimed,notnull"`
	Data          *bridge.BurnRecord `bun:"data,type:jsonb,notnull"`
	CreatedAt     time.Time          `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// BalanceDao maps to the 'balances' table.
type BalanceDao struct {
	bun.BaseModel `bun:"table:balances,alias:bal"`
	AssetID       string    `bun:"asset_id,pk,type:varchar(80)"`
	Owner         string    `bun:"owner,pk,type:varchar(66)"`
	Amount        string    `bun:"amount,notnull,type:numeric(20,0)"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// OperationEventDao maps to the 'operation_events' table.
type OperationEventDao struct {
	bun.BaseModel `bun:"table:operation_events,alias:oe"`
	ID            int64                      `bun:"id,pk,autoincrement"`
	BatchID       string                     `bun:"batch_id,notnull,type:varchar(36)"`
	OpIndex       int                        `bun:"op_index,notnull"`
	OpHash        string                     `bun:"op_hash,notnull,type:varchar(66)"`
	Sender        string                     `bun:"sender,notnull,type:varchar(66)"`
	Success       bool                       `bun:"success,notnull"`
	Data          *entrypoint.OperationEvent `bun:"data,type:jsonb,notnull"`
	CreatedAt     time.Time                  `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func toWalletDao(w *wallet.Wallet) *WalletDao {
	return &WalletDao{
		Address:   w.Address.String(),
		Owner:     w.Owner.String(),
		Nonce:     formatUint(w.Nonce),
		IsFrozen:  w.IsFrozen,
		Data:      w,
		UpdatedAt: time.Now(),
	}
}

func toPaymasterDao(pm *paymaster.Paymaster) *PaymasterDao {
	return &PaymasterDao{
		Address:    pm.Address.String(),
		Owner:      pm.Owner.String(),
		EntryPoint: pm.EntryPoint.String(),
		IsActive:   pm.IsActive,
		Data:       pm,
		UpdatedAt:  time.Now(),
	}
}

func toBridgeDao(b *bridge.Bridge) *BridgeDao {
	return &BridgeDao{
		Address:   b.Address.String(),
		Authority: b.Authority.String(),
		Nonce:     formatUint(b.Nonce),
		IsPaused:  b.IsPaused,
		Data:      b,
		UpdatedAt: time.Now(),
	}
}

func toLockDao(r *bridge.LockRecord) *LockRecordDao {
	return &LockRecordDao{
		Address:     r.Address.String(),
		Bridge:      r.Bridge.String(),
		RecordID:    int64(r.ID),
		UserAddress: r.User.String(),
		IsClaimed:   r.IsClaimed,
		Data:        r,
	}
}

func toBurnDao(r *bridge.BurnRecord) *BurnRecordDao {
	return &BurnRecordDao{
		Address:     r.Address.String(),
		Bridge:      r.Bridge.String(),
		RecordID:    int64(r.ID),
		UserAddress: r.User.String(),
		IsClaimed:   r.IsClaimed,
		Data:        r,
	}
}

func toMintDao(r *bridge.MintRecord) *MintRecordDao {
	return &MintRecordDao{
		Address:     r.Address.String(),
		LockID:      int64(r.LockID),
		SourceChain: int64(r.SourceChain),
		Recipient:   r.Recipient.String(),
		Data:        r,
	}
}

// Models lists every table model in creation order.
func Models() []any {
	return []any{
		(*EntryPointDao)(nil),
		(*WalletDao)(nil),
		(*PaymasterDao)(nil),
		(*PaymasterStakeDao)(nil),
		(*BridgeDao)(nil),
		(*LockRecordDao)(nil),
		(*MintRecordDao)(nil),
		(*BurnRecordDao)(nil),
		(*BalanceDao)(nil),
		(*OperationEventDao)(nil),
	}
}
