package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pairswap/pairswap/x/pair/types"
)

// feeScale and feeNumerator implement the 0.3% input fee: balances are
// scaled by 1000 and each input is charged 3 per 1000 before the constant
// product comparison.
var (
	feeScale     = math.NewInt(1000)
	feeNumerator = math.NewInt(3)
)

// Swap transfers the requested output amounts to the recipient and then
// verifies that the tokens paid in satisfy the fee-adjusted constant
// product. Outputs move before inputs are checked: within the transaction
// the recipient may supply the inputs through a registered callee (flash
// swap). Inputs are inferred from the pair's post-transfer balances, so
// tokens sent to the pair before calling Swap count as payment.
func (k Keeper) Swap(
	ctx context.Context,
	pairID uint64,
	sender sdk.AccAddress,
	amount0Out, amount1Out math.Int,
	to sdk.AccAddress,
	calleeData []byte,
) (math.Int, math.Int, error) {
	var amount0In, amount1In math.Int

	err := k.withPairLock(ctx, pairID, func() error {
		if amount0Out.IsNegative() || amount1Out.IsNegative() {
			return types.ErrInvalidAmount.Wrap("swap outputs cannot be negative")
		}
		if !amount0Out.IsPositive() && !amount1Out.IsPositive() {
			return types.ErrInsufficientOutputAmount.Wrap("at least one output must be positive")
		}

		pair, err := k.GetPair(ctx, pairID)
		if err != nil {
			return err
		}
		if amount0Out.GTE(pair.Reserve0) || amount1Out.GTE(pair.Reserve1) {
			return types.ErrInsufficientLiquidity.Wrapf(
				"outputs %s/%s exceed reserves %s/%s", amount0Out, amount1Out, pair.Reserve0, pair.Reserve1)
		}

		pairAddr := types.PairAddress(pairID)
		if to.Equals(pairAddr) {
			return types.ErrInvalidRecipient.Wrap("cannot swap to the pair reserve account")
		}

		// Optimistic transfer of the outputs.
		var outCoins sdk.Coins
		if amount0Out.IsPositive() {
			outCoins = outCoins.Add(sdk.NewCoin(pair.Token0, amount0Out))
		}
		if amount1Out.IsPositive() {
			outCoins = outCoins.Add(sdk.NewCoin(pair.Token1, amount1Out))
		}
		if err := k.bankKeeper.SendCoins(ctx, pairAddr, to, outCoins); err != nil {
			return err
		}

		// The callee runs while the pair lock is held; re-entering any
		// mutating pair operation from inside it fails.
		if len(calleeData) > 0 {
			callee, ok := k.SwapCallee(to)
			if !ok {
				return types.ErrNoSwapCallee.Wrapf("no swap callee registered for %s", to)
			}
			if err := callee.PairCall(ctx, sender, amount0Out, amount1Out, calleeData); err != nil {
				return err
			}
		}

		balance0, balance1 := k.pairBalances(ctx, pair)
		amount0In = inferInput(balance0, pair.Reserve0, amount0Out)
		amount1In = inferInput(balance1, pair.Reserve1, amount1Out)
		if !amount0In.IsPositive() && !amount1In.IsPositive() {
			return types.ErrInsufficientInputAmount.Wrap("no input tokens supplied")
		}

		adjusted0, err := feeAdjustedBalance(balance0, amount0In)
		if err != nil {
			return err
		}
		adjusted1, err := feeAdjustedBalance(balance1, amount1In)
		if err != nil {
			return err
		}

		left, err := SafeMul(adjusted0, adjusted1)
		if err != nil {
			return err
		}
		right, err := SafeMul(pair.K(), feeScale.Mul(feeScale))
		if err != nil {
			return err
		}
		if left.LT(right) {
			return types.ErrInvariantViolation.Wrapf(
				"constant product decreased: adjusted %s, required %s", left, right)
		}

		if err := k.updateReserves(ctx, &pair, balance0, balance1); err != nil {
			return err
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeSwap,
				sdk.NewAttribute(types.AttributeKeyPairID, fmt.Sprintf("%d", pairID)),
				sdk.NewAttribute(types.AttributeKeySender, sender.String()),
				sdk.NewAttribute(types.AttributeKeyAmount0In, amount0In.String()),
				sdk.NewAttribute(types.AttributeKeyAmount1In, amount1In.String()),
				sdk.NewAttribute(types.AttributeKeyAmount0Out, amount0Out.String()),
				sdk.NewAttribute(types.AttributeKeyAmount1Out, amount1Out.String()),
				sdk.NewAttribute(types.AttributeKeyTo, to.String()),
			),
		)

		if k.hooks != nil {
			if err := k.hooks.AfterSwap(ctx, pairID, sender.String(), amount0In, amount1In, amount0Out, amount1Out); err != nil {
				return err
			}
		}

		k.Logger(ctx).Info("swap executed",
			"pair_id", pairID,
			"sender", sender.String(),
			"amount0_in", amount0In.String(),
			"amount1_in", amount1In.String(),
			"amount0_out", amount0Out.String(),
			"amount1_out", amount1Out.String(),
			"to", to.String(),
		)
		return nil
	})
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	observeSwap()
	return amount0In, amount1In, nil
}

// inferInput attributes any balance above the expected post-output reserve
// to caller-supplied input.
func inferInput(balance, reserve, amountOut math.Int) math.Int {
	expected := reserve.Sub(amountOut)
	if balance.GT(expected) {
		return balance.Sub(expected)
	}
	return math.ZeroInt()
}

// feeAdjustedBalance returns balance*1000 - amountIn*3.
func feeAdjustedBalance(balance, amountIn math.Int) (math.Int, error) {
	scaled, err := SafeMul(balance, feeScale)
	if err != nil {
		return math.Int{}, err
	}
	fee, err := SafeMul(amountIn, feeNumerator)
	if err != nil {
		return math.Int{}, err
	}
	return SafeSub(scaled, fee)
}
