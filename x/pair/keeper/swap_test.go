package keeper_test

import (
	"context"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/pairswap/pairswap/testutil/keeper"
	"github.com/pairswap/pairswap/x/pair/types"
)

// mockCallee adapts a function to the SwapCallee interface.
type mockCallee struct {
	fn func(ctx context.Context, sender sdk.AccAddress, amount0Out, amount1Out math.Int, data []byte) error
}

func (c mockCallee) PairCall(ctx context.Context, sender sdk.AccAddress, amount0Out, amount1Out math.Int, data []byte) error {
	return c.fn(ctx, sender, amount0Out, amount1Out, data)
}

func TestSwap(t *testing.T) {
	k, bank, ctx := keepertest.PairKeeper(t)
	pairID := seedPair(t, k, bank, ctx, 10000, 10000)

	// Pay in 1000 of token0. With the 0.3% fee the largest admissible
	// token1 output is 906.
	deposit(bank, pairID, 1000, 0)

	amount0In, amount1In, err := k.Swap(ctx, pairID, alice, math.ZeroInt(), math.NewInt(906), bob, nil)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), amount0In)
	require.True(t, amount1In.IsZero())

	require.Equal(t, math.NewInt(906), bank.GetBalance(ctx, bob, denom1).Amount)

	pair, err := k.GetPair(ctx, pairID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(11000), pair.Reserve0)
	require.Equal(t, math.NewInt(9094), pair.Reserve1)
}

func TestSwapFeeBoundary(t *testing.T) {
	k, bank, ctx := keepertest.PairKeeper(t)
	pairID := seedPair(t, k, bank, ctx, 10000, 10000)

	deposit(bank, pairID, 1000, 0)

	// One unit above the fee-adjusted maximum output fails the K check.
	_, _, err := k.Swap(ctx, pairID, alice, math.ZeroInt(), math.NewInt(907), bob, nil)
	require.ErrorIs(t, err, types.ErrInvariantViolation)

	// Reserves keep their pre-swap snapshot.
	pair, err := k.GetPair(ctx, pairID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(10000), pair.Reserve0)
	require.Equal(t, math.NewInt(10000), pair.Reserve1)
}

func TestSwapNoOutputs(t *testing.T) {
	k, bank, ctx := keepertest.PairKeeper(t)
	pairID := seedPair(t, k, bank, ctx, 10000, 10000)

	_, _, err := k.Swap(ctx, pairID, alice, math.ZeroInt(), math.ZeroInt(), bob, nil)
	require.ErrorIs(t, err, types.ErrInsufficientOutputAmount)
}

func TestSwapOutputExceedsReserve(t *testing.T) {
	k, bank, ctx := keepertest.PairKeeper(t)
	pairID := seedPair(t, k, bank, ctx, 10000, 10000)

	_, _, err := k.Swap(ctx, pairID, alice, math.NewInt(10000), math.ZeroInt(), bob, nil)
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)

	// Failed before any transfer.
	require.True(t, bank.GetBalance(ctx, bob, denom0).Amount.IsZero())

	pair, err := k.GetPair(ctx, pairID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(10000), pair.Reserve0)
	require.Equal(t, math.NewInt(10000), pair.Reserve1)
}

func TestSwapNoInput(t *testing.T) {
	k, bank, ctx := keepertest.PairKeeper(t)
	pairID := seedPair(t, k, bank, ctx, 10000, 10000)

	_, _, err := k.Swap(ctx, pairID, alice, math.ZeroInt(), math.NewInt(100), bob, nil)
	require.ErrorIs(t, err, types.ErrInsufficientInputAmount)
}

func TestSwapToPairAccount(t *testing.T) {
	k, bank, ctx := keepertest.PairKeeper(t)
	pairID := seedPair(t, k, bank, ctx, 10000, 10000)

	deposit(bank, pairID, 1000, 0)

	_, _, err := k.Swap(ctx, pairID, alice, math.ZeroInt(), math.NewInt(906), types.PairAddress(pairID), nil)
	require.ErrorIs(t, err, types.ErrInvalidRecipient)
}

func TestSwapBothDirections(t *testing.T) {
	k, bank, ctx := keepertest.PairKeeper(t)
	pairID := seedPair(t, k, bank, ctx, 100000, 100000)

	// Paying in on both sides at once is allowed; the K check covers the
	// combined flows.
	deposit(bank, pairID, 1000, 1000)

	amount0In, amount1In, err := k.Swap(ctx, pairID, alice, math.NewInt(900), math.NewInt(900), bob, nil)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), amount0In)
	require.Equal(t, math.NewInt(1000), amount1In)
}

func TestFlashSwap(t *testing.T) {
	k, bank, ctx := keepertest.PairKeeper(t)
	pairID := seedPair(t, k, bank, ctx, 10000, 10000)

	// The callee receives the output first and repays in token0 before the
	// invariant check runs.
	repaid := false
	k.RegisterSwapCallee(bob, mockCallee{fn: func(_ context.Context, sender sdk.AccAddress, amount0Out, amount1Out math.Int, data []byte) error {
		require.Equal(t, alice, sender)
		require.Equal(t, math.NewInt(906), amount1Out)
		require.Equal(t, []byte("repay"), data)

		deposit(bank, pairID, 1000, 0)
		repaid = true
		return nil
	}})

	_, _, err := k.Swap(ctx, pairID, alice, math.ZeroInt(), math.NewInt(906), bob, []byte("repay"))
	require.NoError(t, err)
	require.True(t, repaid)

	pair, err := k.GetPair(ctx, pairID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(11000), pair.Reserve0)
	require.Equal(t, math.NewInt(9094), pair.Reserve1)
}

func TestFlashSwapWithoutRepayment(t *testing.T) {
	k, bank, ctx := keepertest.PairKeeper(t)
	pairID := seedPair(t, k, bank, ctx, 10000, 10000)

	k.RegisterSwapCallee(bob, mockCallee{fn: func(context.Context, sdk.AccAddress, math.Int, math.Int, []byte) error {
		return nil
	}})

	_, _, err := k.Swap(ctx, pairID, alice, math.ZeroInt(), math.NewInt(906), bob, []byte("x"))
	require.ErrorIs(t, err, types.ErrInsufficientInputAmount)
}

func TestSwapCalleeNotRegistered(t *testing.T) {
	k, bank, ctx := keepertest.PairKeeper(t)
	pairID := seedPair(t, k, bank, ctx, 10000, 10000)

	_, _, err := k.Swap(ctx, pairID, alice, math.ZeroInt(), math.NewInt(906), bob, []byte("x"))
	require.ErrorIs(t, err, types.ErrNoSwapCallee)
}

func TestSwapReentrancyRejected(t *testing.T) {
	k, bank, ctx := keepertest.PairKeeper(t)
	pairID := seedPair(t, k, bank, ctx, 10000, 10000)

	// The callee tries to re-enter swap on the same pair while the lock is
	// held. The nested call must fail; the outer swap still succeeds once
	// the callee repays.
	var nestedErr error
	k.RegisterSwapCallee(bob, mockCallee{fn: func(cctx context.Context, _ sdk.AccAddress, _, _ math.Int, _ []byte) error {
		_, _, nestedErr = k.Swap(cctx, pairID, bob, math.ZeroInt(), math.NewInt(1), bob, nil)

		deposit(bank, pairID, 1000, 0)
		return nil
	}})

	_, _, err := k.Swap(ctx, pairID, alice, math.ZeroInt(), math.NewInt(906), bob, []byte("x"))
	require.NoError(t, err)
	require.ErrorIs(t, nestedErr, types.ErrReentrancy)
}

func TestReentrantMintRejected(t *testing.T) {
	k, bank, ctx := keepertest.PairKeeper(t)
	pairID := seedPair(t, k, bank, ctx, 10000, 10000)

	var nestedErr error
	k.RegisterSwapCallee(bob, mockCallee{fn: func(cctx context.Context, _ sdk.AccAddress, _, _ math.Int, _ []byte) error {
		_, nestedErr = k.Mint(cctx, pairID, bob, bob)

		deposit(bank, pairID, 1000, 0)
		return nil
	}})

	_, _, err := k.Swap(ctx, pairID, alice, math.ZeroInt(), math.NewInt(906), bob, []byte("x"))
	require.NoError(t, err)
	require.ErrorIs(t, nestedErr, types.ErrReentrancy)
}
