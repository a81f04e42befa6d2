package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/pairswap/pairswap/testutil/keeper"
	"github.com/pairswap/pairswap/x/pair/types"
)

func TestSkim(t *testing.T) {
	k, bank, ctx := keepertest.PairKeeper(t)
	pairID := seedPair(t, k, bank, ctx, 10000, 10000)

	// Tokens sent outside the mint flow sit above the recorded reserves.
	deposit(bank, pairID, 500, 250)

	require.NoError(t, k.Skim(ctx, pairID, bob))

	require.Equal(t, math.NewInt(500), bank.GetBalance(ctx, bob, denom0).Amount)
	require.Equal(t, math.NewInt(250), bank.GetBalance(ctx, bob, denom1).Amount)

	// Reserves are untouched and now equal balances again.
	pair, err := k.GetPair(ctx, pairID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(10000), pair.Reserve0)
	require.Equal(t, math.NewInt(10000), pair.Reserve1)
	require.Equal(t, math.NewInt(10000), bank.GetBalance(ctx, types.PairAddress(pairID), denom0).Amount)
}

func TestSkimNothingToRecover(t *testing.T) {
	k, bank, ctx := keepertest.PairKeeper(t)
	pairID := seedPair(t, k, bank, ctx, 10000, 10000)

	require.NoError(t, k.Skim(ctx, pairID, bob))
	require.True(t, bank.GetBalance(ctx, bob, denom0).Amount.IsZero())
}

func TestSkimToPairAccount(t *testing.T) {
	k, bank, ctx := keepertest.PairKeeper(t)
	pairID := seedPair(t, k, bank, ctx, 10000, 10000)

	err := k.Skim(ctx, pairID, types.PairAddress(pairID))
	require.ErrorIs(t, err, types.ErrInvalidRecipient)
}

func TestSkimUnknownPair(t *testing.T) {
	k, _, ctx := keepertest.PairKeeper(t)

	err := k.Skim(ctx, 7, bob)
	require.ErrorIs(t, err, types.ErrPairNotFound)
}

func TestSync(t *testing.T) {
	k, bank, ctx := keepertest.PairKeeper(t)
	pairID := seedPair(t, k, bank, ctx, 10000, 10000)

	deposit(bank, pairID, 500, 0)

	require.NoError(t, k.Sync(ctx, pairID))

	pair, err := k.GetPair(ctx, pairID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(10500), pair.Reserve0)
	require.Equal(t, math.NewInt(10000), pair.Reserve1)
}

func TestSyncUnknownPair(t *testing.T) {
	k, _, ctx := keepertest.PairKeeper(t)

	err := k.Sync(ctx, 7)
	require.ErrorIs(t, err, types.ErrPairNotFound)
}
