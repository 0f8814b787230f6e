package crypto

import (
	"github.com/NethermindEth/starkbind/core/felt"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"golang.org/x/crypto/sha3"
)

// StarknetKeccak implements [Starknet keccak]
//
// [Starknet keccak]: https://docs.starknet.io/documentation/develop/Hashing/hash-functions/#starknet_keccak
func StarknetKeccak(b []byte) (*felt.Felt, error) {
	h := sha3.NewLegacyKeccak256()
	if _, err := h.Write(b); err != nil {
		return nil, err
	}
	d := h.Sum(nil)
	// Remove the first 6 bits from the first byte to fit the field
	d[0] &= 3
	return felt.NewFelt(new(fp.Element).SetBytes(d)), nil
}

// Selector derives the entry point selector for the given function name.
func Selector(name string) (*felt.Felt, error) {
	return StarknetKeccak([]byte(name))
}
