package crypto

import "github.com/NethermindEth/starkbind/core/felt"

type Digest interface {
	Update(...*felt.Felt) Digest
	Finish() *felt.Felt
}
