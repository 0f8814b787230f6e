package abi

import (
	"fmt"
	"math/big"

	"github.com/NethermindEth/starkbind/core/felt"
)

var (
	// 2^128, the boundary between the low and high halves.
	wideShift = new(big.Int).Lsh(big.NewInt(1), 128)
	// 2^256, exclusive upper bound of a wide value.
	wideMax = new(big.Int).Lsh(big.NewInt(1), 256)
)

// SplitWide splits v into (low, high) felts such that
// v = low + high*2^128. v must be in [0, 2^256).
func SplitWide(v *big.Int) (low, high *felt.Felt, err error) {
	if v.Sign() < 0 || v.Cmp(wideMax) >= 0 {
		return nil, nil, fmt.Errorf("%w: %s does not fit in 256 bits", ErrOutOfRange, v)
	}
	quo, rem := new(big.Int).QuoRem(v, wideShift, new(big.Int))
	return new(felt.Felt).SetBigInt(rem), new(felt.Felt).SetBigInt(quo), nil
}

// JoinWide combines (low, high) felts back into low + high*2^128. Both
// halves must be below 2^128.
func JoinWide(low, high *felt.Felt) (*big.Int, error) {
	lowInt := low.BigInt(new(big.Int))
	highInt := high.BigInt(new(big.Int))
	if lowInt.Cmp(wideShift) >= 0 {
		return nil, fmt.Errorf("%w: low half %s does not fit in 128 bits", ErrOutOfRange, low)
	}
	if highInt.Cmp(wideShift) >= 0 {
		return nil, fmt.Errorf("%w: high half %s does not fit in 128 bits", ErrOutOfRange, high)
	}
	return highInt.Mul(highInt, wideShift).Add(highInt, lowInt), nil
}
