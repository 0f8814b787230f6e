package core

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/NethermindEth/starkbind/core/crypto"
	"github.com/NethermindEth/starkbind/core/felt"
	"github.com/NethermindEth/starkbind/utils"
)

var ErrUnknownTransaction = errors.New("unknown transaction")

type Transaction interface {
	// Hash computes the transaction hash for the given network.
	Hash(n utils.Network) (*felt.Felt, error)
}

var (
	_ Transaction = (*InvokeTransaction)(nil)
	_ Transaction = (*DeclareTransaction)(nil)
	_ Transaction = (*DeployAccountTransaction)(nil)
)

// InvokeTransaction calls an entry point on a deployed contract through
// the sender account.
type InvokeTransaction struct {
	// Version of the transaction scheme, only v1 hashes are computed.
	Version *felt.Felt
	// SenderAddress is the account contract issuing the call.
	SenderAddress *felt.Felt
	// CallData is the flat felt sequence produced by the calldata codec.
	CallData []*felt.Felt
	// MaxFee the sender is willing to pay.
	MaxFee *felt.Felt
	// Nonce of the sender account.
	Nonce *felt.Felt
}

// DeclareTransaction registers a contract class on the network.
type DeclareTransaction struct {
	Version       *felt.Felt
	SenderAddress *felt.Felt
	// ClassHash identifies the declared class bytecode, distinct from
	// any deployed instance's address.
	ClassHash *felt.Felt
	MaxFee    *felt.Felt
	Nonce     *felt.Felt
}

// DeployAccountTransaction deploys an account contract instance.
type DeployAccountTransaction struct {
	Version             *felt.Felt
	ClassHash           *felt.Felt
	ContractAddressSalt *felt.Felt
	ConstructorCallData []*felt.Felt
	MaxFee              *felt.Felt
	Nonce               *felt.Felt
}

var (
	invokeFelt        = felt.FromBytes([]byte("invoke"))
	declareFelt       = felt.FromBytes([]byte("declare"))
	deployAccountFelt = felt.FromBytes([]byte("deploy_account"))
)

func errInvalidTransactionVersion(t Transaction, version *felt.Felt) error {
	return fmt.Errorf("invalid Transaction (type: %v) version: %v", reflect.TypeOf(t), version.Text(felt.Base10))
}

func (i *InvokeTransaction) Hash(n utils.Network) (*felt.Felt, error) {
	if !i.Version.IsOne() {
		return nil, errInvalidTransactionVersion(i, i.Version)
	}
	return crypto.PedersenArray(
		invokeFelt,
		i.Version,
		i.SenderAddress,
		&felt.Zero,
		crypto.PedersenArray(i.CallData...),
		i.MaxFee,
		n.ChainID(),
		i.Nonce,
	), nil
}

func (d *DeclareTransaction) Hash(n utils.Network) (*felt.Felt, error) {
	if !d.Version.IsOne() {
		return nil, errInvalidTransactionVersion(d, d.Version)
	}
	return crypto.PedersenArray(
		declareFelt,
		d.Version,
		d.SenderAddress,
		&felt.Zero,
		crypto.PedersenArray(d.ClassHash),
		d.MaxFee,
		n.ChainID(),
		d.Nonce,
	), nil
}

func (d *DeployAccountTransaction) Hash(n utils.Network) (*felt.Felt, error) {
	if !d.Version.IsOne() {
		return nil, errInvalidTransactionVersion(d, d.Version)
	}
	callData := []*felt.Felt{d.ClassHash, d.ContractAddressSalt}
	callData = append(callData, d.ConstructorCallData...)
	return crypto.PedersenArray(
		deployAccountFelt,
		d.Version,
		d.ContractAddress(),
		&felt.Zero,
		crypto.PedersenArray(callData...),
		d.MaxFee,
		n.ChainID(),
		d.Nonce,
	), nil
}

// ContractAddress derives the address the account will be deployed to.
// Account deployments have no caller, so the caller address is zero.
func (d *DeployAccountTransaction) ContractAddress() *felt.Felt {
	return ContractAddress(&felt.Zero, d.ClassHash, d.ContractAddressSalt, d.ConstructorCallData)
}
