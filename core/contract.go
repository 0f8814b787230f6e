package core

import (
	"github.com/NethermindEth/starkbind/core/crypto"
	"github.com/NethermindEth/starkbind/core/felt"
)

var contractAddressPrefix = felt.FromBytes([]byte("STARKNET_CONTRACT_ADDRESS"))

// ContractAddress computes the address of a Starknet contract.
func ContractAddress(callerAddress, classHash, salt *felt.Felt, constructorCallData []*felt.Felt) *felt.Felt {
	callDataHash := crypto.PedersenArray(constructorCallData...)

	// https://docs.starknet.io/documentation/architecture_and_concepts/Contracts/contract-address
	return crypto.PedersenArray(
		contractAddressPrefix,
		callerAddress,
		salt,
		classHash,
		callDataHash,
	)
}
