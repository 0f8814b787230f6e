package core

import (
	"github.com/NethermindEth/starkbind/core/crypto"
	"github.com/NethermindEth/starkbind/core/felt"
)

// DefaultDeployerAddress is the canonical UniversalDeployer contract,
// deployed at the same address on every network.
var DefaultDeployerAddress = felt.MustFromString(
	"0x041A78e741e5aF2fec34B695679bc6891742439F7Afb8484ecd7766661aD02bF")

// UniversalDeployer builds deployContract invocations against the UDC,
// the standard way to deploy instances of an already declared class.
type UniversalDeployer struct {
	Address *felt.Felt
}

func NewUniversalDeployer(address *felt.Felt) *UniversalDeployer {
	if address == nil {
		address = DefaultDeployerAddress
	}
	return &UniversalDeployer{Address: address}
}

// DeployCalldata returns the felt sequence for deployContract(classHash,
// salt, unique, calldata_len, calldata).
func (u *UniversalDeployer) DeployCalldata(classHash, salt *felt.Felt, unique bool, constructorCallData []*felt.Felt) []*felt.Felt {
	uniqueFelt := &felt.Zero
	if unique {
		uniqueFelt = felt.FromUint64(1)
	}
	out := make([]*felt.Felt, 0, 4+len(constructorCallData))
	out = append(out, classHash, salt, uniqueFelt, felt.FromUint64(uint64(len(constructorCallData))))
	return append(out, constructorCallData...)
}

// DeployedAddress computes the address deployContract will deploy to.
// A unique deployment scopes the address to the deployer account by
// hashing the salt with the deployer and using the UDC as the caller;
// otherwise the caller is zero and the address depends on the salt
// alone.
func (u *UniversalDeployer) DeployedAddress(deployer, classHash, salt *felt.Felt, unique bool, constructorCallData []*felt.Felt) *felt.Felt {
	caller := &felt.Zero
	effectiveSalt := salt
	if unique {
		caller = u.Address
		effectiveSalt = crypto.Pedersen(deployer, salt)
	}
	return ContractAddress(caller, classHash, effectiveSalt, constructorCallData)
}
