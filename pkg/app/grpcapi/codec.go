package grpcapi

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"google.golang.org/protobuf/types/known/structpb"

	apperrors "github.com/chainsafe/aa-bridge-middleware/pkg/app/errors"
	"github.com/chainsafe/aa-bridge-middleware/pkg/bridge"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

// Integers travel as decimal strings; plain numbers are accepted up to 2^53.
const maxExactFloat = 1 << 53

func invalid(field string, err error) error {
	return apperrors.BadRequestError(err, "invalid field "+field)
}

func fieldString(s *structpb.Struct, key string) (string, error) {
	v, ok := s.GetFields()[key]
	if !ok {
		return "", invalid(key, fmt.Errorf("missing"))
	}
	str, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", invalid(key, fmt.Errorf("expected string"))
	}
	return str.StringValue, nil
}

func fieldUint(s *structpb.Struct, key string) (uint64, error) {
	v, ok := s.GetFields()[key]
	if !ok {
		return 0, invalid(key, fmt.Errorf("missing"))
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		n, err := strconv.ParseUint(k.StringValue, 10, 64)
		if err != nil {
			return 0, invalid(key, err)
		}
		return n, nil
	case *structpb.Value_NumberValue:
		f := k.NumberValue
		if f < 0 || f > maxExactFloat || f != math.Trunc(f) {
			return 0, invalid(key, fmt.Errorf("not an exact unsigned integer: %v", f))
		}
		return uint64(f), nil
	default:
		return 0, invalid(key, fmt.Errorf("expected integer"))
	}
}

func fieldAddress(s *structpb.Struct, key string) (types.Address, error) {
	raw, err := fieldString(s, key)
	if err != nil {
		return types.Address{}, err
	}
	a, err := types.HexToAddress(raw)
	if err != nil {
		return types.Address{}, invalid(key, err)
	}
	return a, nil
}

func fieldHash(s *structpb.Struct, key string) (common.Hash, error) {
	raw, err := fieldString(s, key)
	if err != nil {
		return common.Hash{}, err
	}
	var h common.Hash
	if err := h.UnmarshalText([]byte(raw)); err != nil {
		return common.Hash{}, invalid(key, err)
	}
	return h, nil
}

// fieldAsset reads an optional "mint"; absent or empty means native.
func fieldAsset(s *structpb.Struct) (types.Asset, error) {
	if v, ok := s.GetFields()["mint"]; !ok || v.GetStringValue() == "" {
		return types.Native(), nil
	}
	mint, err := fieldAddress(s, "mint")
	if err != nil {
		return types.Asset{}, err
	}
	return types.Token(mint), nil
}

func fieldSignatures(s *structpb.Struct, key string) ([]types.Signature, error) {
	v, ok := s.GetFields()[key]
	if !ok {
		return nil, invalid(key, fmt.Errorf("missing"))
	}
	list := v.GetListValue()
	if list == nil {
		return nil, invalid(key, fmt.Errorf("expected list"))
	}
	sigs := make([]types.Signature, len(list.GetValues()))
	for i, item := range list.GetValues() {
		if err := sigs[i].UnmarshalText([]byte(item.GetStringValue())); err != nil {
			return nil, invalid(fmt.Sprintf("%s[%d]", key, i), err)
		}
	}
	return sigs, nil
}

// MintRequestFromStruct decodes a SubmitMint request.
func MintRequestFromStruct(s *structpb.Struct) (types.Address, bridge.MintRequest, error) {
	var req bridge.MintRequest
	bridgeAddr, err := fieldAddress(s, "bridge")
	if err != nil {
		return types.Address{}, req, err
	}
	if req.LockID, err = fieldUint(s, "lock_id"); err != nil {
		return types.Address{}, req, err
	}
	if req.SourceChain, err = fieldUint(s, "source_chain"); err != nil {
		return types.Address{}, req, err
	}
	if req.SourceTxHash, err = fieldHash(s, "source_tx_hash"); err != nil {
		return types.Address{}, req, err
	}
	if req.Recipient, err = fieldAddress(s, "recipient"); err != nil {
		return types.Address{}, req, err
	}
	if req.Asset, err = fieldAsset(s); err != nil {
		return types.Address{}, req, err
	}
	if req.Amount, err = fieldUint(s, "amount"); err != nil {
		return types.Address{}, req, err
	}
	if req.Signatures, err = fieldSignatures(s, "signatures"); err != nil {
		return types.Address{}, req, err
	}
	return bridgeAddr, req, nil
}

// MintRequestToStruct is the inverse of MintRequestFromStruct.
func MintRequestToStruct(bridgeAddr types.Address, req bridge.MintRequest) (*structpb.Struct, error) {
	sigs := make([]any, len(req.Signatures))
	for i, sig := range req.Signatures {
		sigs[i] = sig.String()
	}
	fields := map[string]any{
		"bridge":         bridgeAddr.String(),
		"lock_id":        strconv.FormatUint(req.LockID, 10),
		"source_chain":   strconv.FormatUint(req.SourceChain, 10),
		"source_tx_hash": req.SourceTxHash.Hex(),
		"recipient":      req.Recipient.String(),
		"amount":         strconv.FormatUint(req.Amount, 10),
		"signatures":     sigs,
	}
	if !req.Asset.IsNative() {
		fields["mint"] = req.Asset.Mint.String()
	}
	return structpb.NewStruct(fields)
}

// MintRecordToStruct encodes a mint record for the wire.
func MintRecordToStruct(rec *bridge.MintRecord) (*structpb.Struct, error) {
	fields := map[string]any{
		"address":        rec.Address.String(),
		"lock_id":        strconv.FormatUint(rec.LockID, 10),
		"source_chain":   strconv.FormatUint(rec.SourceChain, 10),
		"source_tx_hash": rec.SourceTxHash.Hex(),
		"recipient":      rec.Recipient.String(),
		"amount":         strconv.FormatUint(rec.Amount, 10),
		"timestamp":      strconv.FormatInt(rec.Timestamp, 10),
		"is_minted":      rec.IsMinted,
	}
	if !rec.Asset.IsNative() {
		fields["mint"] = rec.Asset.Mint.String()
	}
	return structpb.NewStruct(fields)
}

// MintRecordFromStruct decodes a mint record.
func MintRecordFromStruct(s *structpb.Struct) (*bridge.MintRecord, error) {
	rec := &bridge.MintRecord{IsMinted: s.GetFields()["is_minted"].GetBoolValue()}
	var err error
	if rec.Address, err = fieldAddress(s, "address"); err != nil {
		return nil, err
	}
	if rec.LockID, err = fieldUint(s, "lock_id"); err != nil {
		return nil, err
	}
	if rec.SourceChain, err = fieldUint(s, "source_chain"); err != nil {
		return nil, err
	}
	if rec.SourceTxHash, err = fieldHash(s, "source_tx_hash"); err != nil {
		return nil, err
	}
	if rec.Recipient, err = fieldAddress(s, "recipient"); err != nil {
		return nil, err
	}
	if rec.Asset, err = fieldAsset(s); err != nil {
		return nil, err
	}
	if rec.Amount, err = fieldUint(s, "amount"); err != nil {
		return nil, err
	}
	ts, err := fieldUint(s, "timestamp")
	if err != nil {
		return nil, err
	}
	rec.Timestamp = int64(ts)
	return rec, nil
}

// ValidatorSetToStruct encodes a bridge's ordered validator list and threshold.
func ValidatorSetToStruct(bridgeAddr types.Address, validators []types.Address, threshold uint32) (*structpb.Struct, error) {
	list := make([]any, len(validators))
	for i, v := range validators {
		list[i] = v.String()
	}
	return structpb.NewStruct(map[string]any{
		"bridge":     bridgeAddr.String(),
		"validators": list,
		"threshold":  strconv.FormatUint(uint64(threshold), 10),
	})
}

// ValidatorSetFromStruct decodes a GetValidators response.
func ValidatorSetFromStruct(s *structpb.Struct) ([]types.Address, uint32, error) {
	v, ok := s.GetFields()["validators"]
	if !ok || v.GetListValue() == nil {
		return nil, 0, invalid("validators", fmt.Errorf("expected list"))
	}
	items := v.GetListValue().GetValues()
	validators := make([]types.Address, len(items))
	for i, item := range items {
		a, err := types.HexToAddress(item.GetStringValue())
		if err != nil {
			return nil, 0, invalid(fmt.Sprintf("validators[%d]", i), err)
		}
		validators[i] = a
	}
	threshold, err := fieldUint(s, "threshold")
	if err != nil {
		return nil, 0, err
	}
	if threshold > math.MaxUint32 {
		return nil, 0, invalid("threshold", fmt.Errorf("out of range: %d", threshold))
	}
	return validators, uint32(threshold), nil
}
