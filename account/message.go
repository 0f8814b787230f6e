package account

import (
	"fmt"
	"math/big"

	"github.com/NethermindEth/starkbind/core/crypto"
	"github.com/NethermindEth/starkbind/core/felt"
)

// SignableMessage is an arbitrary payload an account can sign. Nested
// slices are flattened in order; scalars accept the same representations
// the calldata codec does.
type SignableMessage struct {
	Message any
}

// Ints flattens the message into the ordered felt sequence that is
// hashed and signed.
func (m SignableMessage) Ints() ([]*felt.Felt, error) {
	return appendMessage(nil, m.Message)
}

// Hash folds the flattened message with the Pedersen hash, newest
// element outermost: h(e_n, h(e_n-1, ... h(e_1, 0))).
func (m SignableMessage) Hash() (*felt.Felt, error) {
	ints, err := m.Ints()
	if err != nil {
		return nil, err
	}
	acc := &felt.Zero
	for _, v := range ints {
		acc = crypto.Pedersen(v, acc)
	}
	return acc, nil
}

func (m SignableMessage) String() string {
	return fmt.Sprintf("<message=%v>", m.Message)
}

func appendMessage(out []*felt.Felt, value any) ([]*felt.Felt, error) {
	switch v := value.(type) {
	case SignableMessage:
		return appendMessage(out, v.Message)
	case []any:
		var err error
		for _, elem := range v {
			if out, err = appendMessage(out, elem); err != nil {
				return nil, err
			}
		}
		return out, nil
	case *felt.Felt:
		cp := *v
		return append(out, &cp), nil
	case felt.Felt:
		cp := v
		return append(out, &cp), nil
	case uint64:
		return append(out, felt.FromUint64(v)), nil
	case int:
		if v < 0 {
			return nil, fmt.Errorf("cannot sign negative value %d", v)
		}
		return append(out, felt.FromUint64(uint64(v))), nil
	case *big.Int:
		if v.Sign() < 0 || v.Cmp(felt.Modulus()) >= 0 {
			return nil, fmt.Errorf("message element %s is not a valid felt", v)
		}
		return append(out, new(felt.Felt).SetBigInt(v)), nil
	case string:
		f, err := felt.FromString(v)
		if err != nil {
			return nil, err
		}
		return append(out, f), nil
	default:
		return nil, fmt.Errorf("cannot sign %T", value)
	}
}
