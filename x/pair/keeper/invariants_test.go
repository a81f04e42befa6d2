package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/pairswap/pairswap/testutil/keeper"
	"github.com/pairswap/pairswap/x/pair/keeper"
	"github.com/pairswap/pairswap/x/pair/types"
)

func TestInvariantsHoldAfterOperations(t *testing.T) {
	k, bank, ctx := keepertest.PairKeeper(t)
	pairID := seedPair(t, k, bank, ctx, 10000, 10000)

	deposit(bank, pairID, 1000, 0)
	_, _, err := k.Swap(ctx, pairID, alice, math.ZeroInt(), math.NewInt(906), bob, nil)
	require.NoError(t, err)

	require.NoError(t, k.TransferLP(ctx, pairID, alice, bob, math.NewInt(100)))

	msg, broken := keeper.AllInvariants(*k)(ctx)
	require.False(t, broken, msg)
}

func TestReceiptSupplyInvariantDetectsMismatch(t *testing.T) {
	k, _, ctx := keepertest.PairKeeper(t)

	// Recorded supply with no backing receipt balances.
	genesis := types.GenesisState{
		NextPairId: 2,
		Pairs: []types.Pair{{
			Id:          1,
			Token0:      denom0,
			Token1:      denom1,
			Reserve0:    math.ZeroInt(),
			Reserve1:    math.ZeroInt(),
			TotalSupply: math.ZeroInt(),
		}},
	}
	k.InitGenesis(ctx, genesis)

	pair, err := k.GetPair(ctx, 1)
	require.NoError(t, err)
	pair.TotalSupply = math.NewInt(5000)
	require.NoError(t, k.SetPair(ctx, pair))

	msg, broken := keeper.ReceiptSupplyInvariant(*k)(ctx)
	require.True(t, broken, msg)
}

func TestReserveBackingInvariantDetectsShortfall(t *testing.T) {
	k, bank, ctx := keepertest.PairKeeper(t)
	pairID := seedPair(t, k, bank, ctx, 10000, 10000)

	// Force the reserve above the actual balance.
	pair, err := k.GetPair(ctx, pairID)
	require.NoError(t, err)
	pair.Reserve0 = math.NewInt(20000)
	require.NoError(t, k.SetPair(ctx, pair))

	msg, broken := keeper.ReserveBackingInvariant(*k)(ctx)
	require.True(t, broken, msg)
}
