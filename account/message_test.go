package account_test

import (
	"testing"

	"github.com/NethermindEth/starkbind/account"
	"github.com/NethermindEth/starkbind/core/crypto"
	"github.com/NethermindEth/starkbind/core/felt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignableMessageInts(t *testing.T) {
	msg := account.SignableMessage{Message: []any{
		uint64(1),
		"0x2",
		[]any{uint64(3), account.SignableMessage{Message: uint64(4)}},
	}}

	ints, err := msg.Ints()
	require.NoError(t, err)
	require.Len(t, ints, 4)
	for i, want := range []uint64{1, 2, 3, 4} {
		assert.True(t, ints[i].Equal(felt.FromUint64(want)), "element %d", i)
	}
}

func TestSignableMessageScalar(t *testing.T) {
	msg := account.SignableMessage{Message: uint64(42)}
	ints, err := msg.Ints()
	require.NoError(t, err)
	require.Len(t, ints, 1)
	assert.True(t, ints[0].Equal(felt.FromUint64(42)))
}

func TestSignableMessageHash(t *testing.T) {
	msg := account.SignableMessage{Message: []any{uint64(1), uint64(2)}}

	hash, err := msg.Hash()
	require.NoError(t, err)

	// h(2, h(1, 0))
	want := crypto.Pedersen(felt.FromUint64(2), crypto.Pedersen(felt.FromUint64(1), &felt.Zero))
	assert.True(t, hash.Equal(want))
}

func TestSignableMessageHashEmpty(t *testing.T) {
	msg := account.SignableMessage{Message: []any{}}
	hash, err := msg.Hash()
	require.NoError(t, err)
	assert.True(t, hash.IsZero())
}

func TestSignableMessageRejectsUnsupported(t *testing.T) {
	msg := account.SignableMessage{Message: struct{}{}}
	_, err := msg.Ints()
	assert.Error(t, err)
}
