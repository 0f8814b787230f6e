// Package account abstracts the collaborator that owns keys and network
// access. Signing, submission and fee estimation are external concerns;
// this package only defines the surface higher level orchestration
// consumes, plus the message hashing an account contract signs over.
package account

import (
	"context"
	"fmt"

	"github.com/NethermindEth/starkbind/core"
	"github.com/NethermindEth/starkbind/core/felt"
	"github.com/NethermindEth/starkbind/utils"
)

// Receipt is the outcome of a submitted transaction.
type Receipt struct {
	TransactionHash *felt.Felt `json:"transaction_hash"`
	ActualFee       *felt.Felt `json:"actual_fee"`
	Status          string     `json:"status"`
}

// Signer produces an account signature over a payload hash.
type Signer interface {
	Sign(ctx context.Context, payload *felt.Felt) ([]*felt.Felt, error)
}

// Submitter sends a signed transaction to the network.
type Submitter interface {
	Submit(ctx context.Context, tx core.Transaction, signature []*felt.Felt) (*Receipt, error)
}

// FeeEstimator quotes the fee a transaction would consume.
type FeeEstimator interface {
	EstimateFee(ctx context.Context, tx core.Transaction) (*felt.Felt, error)
}

// Execute hashes tx for the given network, signs the hash and submits
// the signed transaction.
func Execute(ctx context.Context, signer Signer, submitter Submitter, tx core.Transaction, n utils.Network) (*Receipt, error) {
	hash, err := tx.Hash(n)
	if err != nil {
		return nil, err
	}
	signature, err := signer.Sign(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("sign transaction %s: %w", hash, err)
	}
	receipt, err := submitter.Submit(ctx, tx, signature)
	if err != nil {
		return nil, fmt.Errorf("submit transaction %s: %w", hash, err)
	}
	return receipt, nil
}
