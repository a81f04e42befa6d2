package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	keepertest "github.com/pairswap/pairswap/testutil/keeper"
	"github.com/pairswap/pairswap/x/pair/keeper"
)

// maxSwapOutput returns the largest token1 output the fee-adjusted constant
// product admits for a token0 input of amountIn.
func maxSwapOutput(amountIn, reserveIn, reserveOut math.Int) math.Int {
	amountInWithFee := amountIn.MulRaw(997)
	numerator := amountInWithFee.Mul(reserveOut)
	denominator := reserveIn.MulRaw(1000).Add(amountInWithFee)
	return numerator.Quo(denominator)
}

func TestSwapNeverDecreasesProduct(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k, bank, ctx := keepertest.PairKeeper(t)

		reserve0 := rapid.Int64Range(10_000, 1_000_000_000).Draw(rt, "reserve0")
		reserve1 := rapid.Int64Range(10_000, 1_000_000_000).Draw(rt, "reserve1")
		pairID := seedPair(t, k, bank, ctx, reserve0, reserve1)

		for i := 0; i < 10; i++ {
			pair, err := k.GetPair(ctx, pairID)
			require.NoError(rt, err)
			before := pair.K()

			amountIn := rapid.Int64Range(1, reserve0/2).Draw(rt, "amount_in")
			amountOut := maxSwapOutput(math.NewInt(amountIn), pair.Reserve0, pair.Reserve1)
			if !amountOut.IsPositive() {
				continue
			}

			deposit(bank, pairID, amountIn, 0)
			_, _, err = k.Swap(ctx, pairID, alice, math.ZeroInt(), amountOut, bob, nil)
			require.NoError(rt, err)

			pair, err = k.GetPair(ctx, pairID)
			require.NoError(rt, err)
			require.True(rt, pair.K().GTE(before),
				"constant product decreased: before %s, after %s", before, pair.K())
		}
	})
}

func TestMintNeverExceedsDepositShare(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k, bank, ctx := keepertest.PairKeeper(t)

		reserve0 := rapid.Int64Range(10_000, 1_000_000).Draw(rt, "reserve0")
		reserve1 := rapid.Int64Range(10_000, 1_000_000).Draw(rt, "reserve1")
		pairID := seedPair(t, k, bank, ctx, reserve0, reserve1)

		pair, err := k.GetPair(ctx, pairID)
		require.NoError(rt, err)
		supplyBefore := pair.TotalSupply

		amount0 := rapid.Int64Range(1, 1_000_000).Draw(rt, "amount0")
		amount1 := rapid.Int64Range(1, 1_000_000).Draw(rt, "amount1")
		deposit(bank, pairID, amount0, amount1)

		liquidity, err := k.Mint(ctx, pairID, alice, alice)
		if err != nil {
			// Dust deposits may round to zero receipts.
			return
		}

		// liquidity/supply never exceeds either deposit's share of its
		// reserve: liquidity*reserve <= amount*supply on both sides.
		require.True(rt, liquidity.Mul(pair.Reserve0).LTE(math.NewInt(amount0).Mul(supplyBefore)))
		require.True(rt, liquidity.Mul(pair.Reserve1).LTE(math.NewInt(amount1).Mul(supplyBefore)))
	})
}

func TestBurnReturnsNoMoreThanShare(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k, bank, ctx := keepertest.PairKeeper(t)

		reserve0 := rapid.Int64Range(10_000, 1_000_000).Draw(rt, "reserve0")
		reserve1 := rapid.Int64Range(10_000, 1_000_000).Draw(rt, "reserve1")
		pairID := seedPair(t, k, bank, ctx, reserve0, reserve1)

		pair, err := k.GetPair(ctx, pairID)
		require.NoError(rt, err)
		liquidity := k.GetLPBalance(ctx, pairID, alice)
		supply := pair.TotalSupply

		amount0, amount1, err := k.Burn(ctx, pairID, alice, alice)
		require.NoError(rt, err)

		// amount/reserve <= liquidity/supply, checked cross-multiplied.
		require.True(rt, amount0.Mul(supply).LTE(liquidity.Mul(pair.Reserve0)))
		require.True(rt, amount1.Mul(supply).LTE(liquidity.Mul(pair.Reserve1)))

		// The store stays internally consistent after every redemption.
		msg, broken := keeper.AllInvariants(*k)(ctx)
		require.False(rt, broken, msg)
	})
}
