package userop

import (
	"encoding/binary"
	"fmt"

	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

// MethodKind is the leading discriminator byte of paymaster data.
type MethodKind uint8

const (
	MethodSponsored    MethodKind = 0
	MethodTokenPayment MethodKind = 1
)

const tokenPaymentLength = 1 + types.AddressLength + 8

func (k MethodKind) String() string {
	switch k {
	case MethodSponsored:
		return "sponsored"
	case MethodTokenPayment:
		return "token_payment"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// PaymentMethod is how an operation's gas is paid for.
type PaymentMethod struct {
	Kind           MethodKind    `msgpack:"kind"`
	TokenMint      types.Address `msgpack:"token_mint"`
	MaxTokenAmount uint64        `msgpack:"max_token_amount"`
}

// Sponsored returns the sponsored payment method.
func Sponsored() PaymentMethod {
	return PaymentMethod{Kind: MethodSponsored}
}

// TokenPayment returns a token payment capped at maxTokenAmount.
func TokenPayment(mint types.Address, maxTokenAmount uint64) PaymentMethod {
	return PaymentMethod{Kind: MethodTokenPayment, TokenMint: mint, MaxTokenAmount: maxTokenAmount}
}

// ParsePaymentMethod decodes paymaster data. Tag 0 must be exactly one byte and
// tag 1 exactly 41 bytes; anything else is ErrInvalidPaymasterData.
func ParsePaymentMethod(data []byte) (PaymentMethod, error) {
	if len(data) == 0 {
		return PaymentMethod{}, fmt.Errorf("%w: empty", ErrInvalidPaymasterData)
	}

	switch MethodKind(data[0]) {
	case MethodSponsored:
		if len(data) != 1 {
			return PaymentMethod{}, fmt.Errorf("%w: sponsored method carries %d trailing bytes",
				ErrInvalidPaymasterData, len(data)-1)
		}
		return Sponsored(), nil
	case MethodTokenPayment:
		if len(data) != tokenPaymentLength {
			return PaymentMethod{}, fmt.Errorf("%w: token payment must be %d bytes, got %d",
				ErrInvalidPaymasterData, tokenPaymentLength, len(data))
		}
		var mint types.Address
		copy(mint[:], data[1:1+types.AddressLength])
		amount := binary.LittleEndian.Uint64(data[1+types.AddressLength:])
		return TokenPayment(mint, amount), nil
	default:
		return PaymentMethod{}, fmt.Errorf("%w: unknown method tag %d", ErrInvalidPaymasterData, data[0])
	}
}

// Encode is the inverse of ParsePaymentMethod.
func (m PaymentMethod) Encode() []byte {
	if m.Kind != MethodTokenPayment {
		return []byte{byte(MethodSponsored)}
	}
	buf := make([]byte, tokenPaymentLength)
	buf[0] = byte(MethodTokenPayment)
	copy(buf[1:], m.TokenMint[:])
	binary.LittleEndian.PutUint64(buf[1+types.AddressLength:], m.MaxTokenAmount)
	return buf
}

func (m PaymentMethod) IsSponsored() bool { return m.Kind == MethodSponsored }
