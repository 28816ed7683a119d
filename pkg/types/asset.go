package types

import (
	"encoding/json"
	"fmt"
)

// AssetKind discriminates the asset variant.
type AssetKind uint8

const (
	// AssetNative is the chain's native balance.
	AssetNative AssetKind = iota
	// AssetToken is a fungible token identified by its mint.
	AssetToken
)

func (k AssetKind) String() string {
	switch k {
	case AssetNative:
		return "native"
	case AssetToken:
		return "token"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// Asset is either the native asset or a token mint. The zero value is Native.
type Asset struct {
	Kind AssetKind
	Mint Address
}

// Native returns the native asset.
func Native() Asset { return Asset{Kind: AssetNative} }

// Token returns the token asset for mint.
func Token(mint Address) Asset { return Asset{Kind: AssetToken, Mint: mint} }

// AssetFromMint maps an optional mint onto the variant.
func AssetFromMint(mint *Address) Asset {
	if mint == nil {
		return Native()
	}
	return Token(*mint)
}

// ParseAsset resolves the wire form of an asset.
func ParseAsset(kind string, mint *Address) (Asset, error) {
	switch kind {
	case "", AssetNative.String():
		if mint != nil {
			return Asset{}, fmt.Errorf("native asset cannot carry a mint")
		}
		return Native(), nil
	case AssetToken.String():
		if mint == nil || mint.IsZero() {
			return Asset{}, fmt.Errorf("token asset requires a mint")
		}
		return Token(*mint), nil
	default:
		return Asset{}, fmt.Errorf("unknown asset kind %q", kind)
	}
}

func (a Asset) IsNative() bool { return a.Kind == AssetNative }

// MintPtr returns nil for the native asset.
func (a Asset) MintPtr() *Address {
	if a.IsNative() {
		return nil
	}
	m := a.Mint
	return &m
}

// MintBytes returns the mint, or 32 zero bytes for the native asset.
func (a Asset) MintBytes() []byte {
	if a.IsNative() {
		return ZeroAddress[:]
	}
	return a.Mint[:]
}

// ID is a stable text key, used for ledger rows and metric labels.
func (a Asset) ID() string {
	if a.IsNative() {
		return AssetNative.String()
	}
	return a.Mint.String()
}

func (a Asset) String() string {
	if a.IsNative() {
		return "native"
	}
	return "token:" + a.Mint.String()
}

type assetJSON struct {
	Kind string   `json:"kind"`
	Mint *Address `json:"mint,omitempty"`
}

func (a Asset) MarshalJSON() ([]byte, error) {
	return json.Marshal(assetJSON{Kind: a.Kind.String(), Mint: a.MintPtr()})
}

func (a *Asset) UnmarshalJSON(data []byte) error {
	var raw assetJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseAsset(raw.Kind, raw.Mint)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
