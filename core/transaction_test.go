package core

import (
	"testing"

	"github.com/NethermindEth/starkbind/core/felt"
	"github.com/NethermindEth/starkbind/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvokeTransactionHash(t *testing.T) {
	// https://alpha-mainnet.starknet.io/feeder_gateway/get_transaction?transactionHash=0x2897e3cec3e24e4d341df26b8cf1ab84ea1c01a051021836b36c6639145b497
	callData := make([]*felt.Felt, 0, 17)
	for _, raw := range []string{
		"0x1",
		"0x727a63f78ee3f1bd18f78009067411ab369c31dece1ae22e16f567906409905",
		"0x22de356837ac200bca613c78bd1fcc962a97770c06625f0c8b3edeb6ae4aa59",
		"0x0",
		"0xb",
		"0xb",
		"0xa",
		"0x6db793d93ce48bc75a5ab02e6a82aad67f01ce52b7b903090725dbc4000eaa2",
		"0x6141eac4031dfb422080ed567fe008fb337b9be2561f479a377aa1de1d1b676",
		"0x27eb1a21fa7593dd12e988c9dd32917a0dea7d77db7e89a809464c09cf951c0",
		"0x400a29400a34d8f69425e1f4335e6a6c24ce1111db3954e4befe4f90ca18eb7",
		"0x599e56821170a12cdcf88fb8714057ce364a8728f738853da61d5b3af08a390",
		"0x46ad66f467df625f3b2dd9d3272e61713e8f74b68adac6718f7497d742cfb17",
		"0x4f348b585e6c1919d524a4bfe6f97230ecb61736fe57534ec42b628f7020849",
		"0x19ae40a095ffe79b0c9fc03df2de0d2ab20f59a2692ed98a8c1062dbf691572",
		"0xe120336994adef6c6e47694f87278686511d4622997d4a6f216bd6e9fa9acc",
		"0x56e6637a4958d062db8c8198e315772819f64d915e5c7a8d58a99fa90ff0742",
	} {
		callData = append(callData, felt.MustFromString(raw))
	}

	tx := InvokeTransaction{
		Version:       felt.FromUint64(1),
		SenderAddress: felt.MustFromString("0x1fc039de7d864580b57a575e8e6b7114f4d2a954d7d29f876b2eb3dd09394a0"),
		CallData:      callData,
		MaxFee:        felt.MustFromString("0x17f0de82f4be6"),
		Nonce:         felt.MustFromString("0x42"),
	}

	hash, err := tx.Hash(utils.Mainnet)
	require.NoError(t, err)
	want := felt.MustFromString("0x2897e3cec3e24e4d341df26b8cf1ab84ea1c01a051021836b36c6639145b497")
	assert.True(t, hash.Equal(want), "got %s, want %s", hash, want)
}

func TestInvokeTransactionHashVersionGuard(t *testing.T) {
	tx := InvokeTransaction{
		Version:       felt.FromUint64(3),
		SenderAddress: felt.FromUint64(1),
		MaxFee:        &felt.Zero,
		Nonce:         &felt.Zero,
	}
	_, err := tx.Hash(utils.Mainnet)
	assert.Error(t, err)
}

func TestDeclareTransactionHash(t *testing.T) {
	tx := DeclareTransaction{
		Version:       felt.FromUint64(1),
		SenderAddress: felt.MustFromString("0x39291faa79897de1fd6fb1a531d144daa1590d058358171b83eadb3ceafed8"),
		ClassHash:     felt.MustFromString("0x46f844ea1a3b3668f81d38b5c1bd55e816e0373802aefe732138628f0133486"),
		MaxFee:        felt.MustFromString("0xf6dbd653833"),
		Nonce:         felt.FromUint64(5),
	}

	mainnet, err := tx.Hash(utils.Mainnet)
	require.NoError(t, err)
	testnet, err := tx.Hash(utils.Testnet)
	require.NoError(t, err)

	// deterministic per network, and chain id is part of the preimage
	again, err := tx.Hash(utils.Mainnet)
	require.NoError(t, err)
	assert.True(t, mainnet.Equal(again))
	assert.False(t, mainnet.Equal(testnet))

	tx.Version = felt.FromUint64(2)
	_, err = tx.Hash(utils.Mainnet)
	assert.Error(t, err)
}

func TestDeployAccountTransaction(t *testing.T) {
	tx := DeployAccountTransaction{
		Version:             felt.FromUint64(1),
		ClassHash:           felt.MustFromString("0x46f844ea1a3b3668f81d38b5c1bd55e816e0373802aefe732138628f0133486"),
		ContractAddressSalt: felt.MustFromString("0x74dc2fe193daf1abd8241b63329c1123214842b96ad7fd003d25512598a956b"),
		ConstructorCallData: []*felt.Felt{
			felt.MustFromString("0x6d706cfbac9b8262d601c38251c5fbe0497c3a96cc91a92b08d91b61d9e70c4"),
			felt.MustFromString("0x79dc0da7c54b95f10aa182ad0a46400db63156920adb65eca2654c0945a463"),
			felt.MustFromString("0x2"),
			felt.MustFromString("0x6658165b4984816ab189568637bedec5aa0a18305909c7f5726e4a16e3afef6"),
			felt.MustFromString("0x6b648b36b074a91eee55730f5f5e075ec19c0a8f9ffb0903cefeee93b6ff328"),
		},
		MaxFee: felt.MustFromString("0x2000000000000"),
		Nonce:  &felt.Zero,
	}

	t.Run("ContractAddress", func(t *testing.T) {
		// account deployments derive the address with a zero caller
		want := felt.MustFromString("0x3ec215c6c9028ff671b46a2a9814970ea23ed3c4bcc3838c6d1dcbf395263c3")
		assert.True(t, tx.ContractAddress().Equal(want))
	})

	t.Run("Hash", func(t *testing.T) {
		mainnet, err := tx.Hash(utils.Mainnet)
		require.NoError(t, err)
		testnet, err := tx.Hash(utils.Testnet)
		require.NoError(t, err)
		assert.False(t, mainnet.Equal(testnet))
	})

	t.Run("VersionGuard", func(t *testing.T) {
		tx := tx
		tx.Version = &felt.Zero
		_, err := tx.Hash(utils.Mainnet)
		assert.Error(t, err)
	})
}
