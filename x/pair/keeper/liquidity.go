package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pairswap/pairswap/x/pair/types"
)

// Mint converts tokens deposited into the pair's reserve account since the
// last reserve snapshot into liquidity receipts credited to `to`.
//
// On the very first mint the receipt amount is the geometric mean of the
// two deposits, minus MinimumLiquidity which is credited to the pair's own
// reserve account and can never be redeemed. That floor keeps the pair from
// ever returning to an empty-supply state. Subsequent mints credit the more
// constraining of the two deposit ratios, so skewing a deposit toward one
// token never mints excess receipts.
func (k Keeper) Mint(ctx context.Context, pairID uint64, sender, to sdk.AccAddress) (math.Int, error) {
	var liquidity math.Int

	err := k.withPairLock(ctx, pairID, func() error {
		pair, err := k.GetPair(ctx, pairID)
		if err != nil {
			return err
		}

		balance0, balance1 := k.pairBalances(ctx, pair)
		amount0, err := SafeSub(balance0, pair.Reserve0)
		if err != nil {
			return types.ErrInvalidPairState.Wrapf("pair %d balance below reserve: %v", pairID, err)
		}
		amount1, err := SafeSub(balance1, pair.Reserve1)
		if err != nil {
			return types.ErrInvalidPairState.Wrapf("pair %d balance below reserve: %v", pairID, err)
		}

		if pair.TotalSupply.IsZero() {
			product, err := SafeMul(amount0, amount1)
			if err != nil {
				return err
			}
			root, err := IntegerSqrt(product)
			if err != nil {
				return err
			}
			liquidity, err = SafeSub(root, math.NewInt(types.MinimumLiquidity))
			if err != nil || !liquidity.IsPositive() {
				return types.ErrInsufficientLiquidityMinted.Wrapf(
					"bootstrap deposit of %s/%s does not clear the minimum liquidity floor", amount0, amount1)
			}

			// Lock the floor to the pair's own reserve account. No message
			// path can burn or transfer receipts held there.
			if err := k.mintLP(ctx, &pair, types.PairAddress(pairID), math.NewInt(types.MinimumLiquidity)); err != nil {
				return err
			}
		} else {
			if pair.Reserve0.IsZero() || pair.Reserve1.IsZero() {
				return types.ErrInsufficientLiquidity.Wrapf("pair %d has supply but an empty reserve", pairID)
			}

			share0, err := SafeMulDiv(amount0, pair.TotalSupply, pair.Reserve0)
			if err != nil {
				return err
			}
			share1, err := SafeMulDiv(amount1, pair.TotalSupply, pair.Reserve1)
			if err != nil {
				return err
			}
			liquidity = math.MinInt(share0, share1)
		}

		if !liquidity.IsPositive() {
			return types.ErrInsufficientLiquidityMinted.Wrapf(
				"deposit of %s/%s mints no liquidity", amount0, amount1)
		}

		if err := k.mintLP(ctx, &pair, to, liquidity); err != nil {
			return err
		}
		if err := k.updateReserves(ctx, &pair, balance0, balance1); err != nil {
			return err
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeMint,
				sdk.NewAttribute(types.AttributeKeyPairID, fmt.Sprintf("%d", pairID)),
				sdk.NewAttribute(types.AttributeKeySender, sender.String()),
				sdk.NewAttribute(types.AttributeKeyAmount0, amount0.String()),
				sdk.NewAttribute(types.AttributeKeyAmount1, amount1.String()),
				sdk.NewAttribute(types.AttributeKeyLiquidity, liquidity.String()),
			),
		)

		if k.hooks != nil {
			if err := k.hooks.AfterMint(ctx, pairID, sender.String(), amount0, amount1, liquidity); err != nil {
				return err
			}
		}

		k.Logger(ctx).Info("liquidity minted",
			"pair_id", pairID,
			"to", to.String(),
			"amount0", amount0.String(),
			"amount1", amount1.String(),
			"liquidity", liquidity.String(),
		)
		return nil
	})
	if err != nil {
		return math.Int{}, err
	}

	observeLiquidityOp("mint")
	return liquidity, nil
}

// Burn redeems the caller's entire receipt balance for a proportional share
// of the pair's current token balances. Third-party redemption is not
// supported: the sender must be the redeeming account.
func (k Keeper) Burn(ctx context.Context, pairID uint64, sender, to sdk.AccAddress) (math.Int, math.Int, error) {
	var amount0, amount1 math.Int

	err := k.withPairLock(ctx, pairID, func() error {
		if !sender.Equals(to) {
			return types.ErrUnauthorized.Wrap("burn recipient must be the sender")
		}

		pair, err := k.GetPair(ctx, pairID)
		if err != nil {
			return err
		}
		if pair.TotalSupply.IsZero() {
			return types.ErrInsufficientLiquidityBurned.Wrapf("pair %d has no outstanding liquidity", pairID)
		}

		liquidity := k.GetLPBalance(ctx, pairID, to)
		balance0, balance1 := k.pairBalances(ctx, pair)

		// Pro-rata over actual balances, not reserves: donations sitting in
		// the pair accrue to redeemers.
		amount0, err = SafeMulDiv(liquidity, balance0, pair.TotalSupply)
		if err != nil {
			return err
		}
		amount1, err = SafeMulDiv(liquidity, balance1, pair.TotalSupply)
		if err != nil {
			return err
		}
		if !amount0.IsPositive() || !amount1.IsPositive() {
			return types.ErrInsufficientLiquidityBurned.Wrapf(
				"burning %s receipts redeems %s/%s", liquidity, amount0, amount1)
		}

		if err := k.burnLP(ctx, &pair, to, liquidity); err != nil {
			return err
		}

		pairAddr := types.PairAddress(pairID)
		coins := sdk.NewCoins(
			sdk.NewCoin(pair.Token0, amount0),
			sdk.NewCoin(pair.Token1, amount1),
		)
		if err := k.bankKeeper.SendCoins(ctx, pairAddr, to, coins); err != nil {
			return err
		}

		balance0, balance1 = k.pairBalances(ctx, pair)
		if err := k.updateReserves(ctx, &pair, balance0, balance1); err != nil {
			return err
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeBurn,
				sdk.NewAttribute(types.AttributeKeyPairID, fmt.Sprintf("%d", pairID)),
				sdk.NewAttribute(types.AttributeKeySender, sender.String()),
				sdk.NewAttribute(types.AttributeKeyAmount0, amount0.String()),
				sdk.NewAttribute(types.AttributeKeyAmount1, amount1.String()),
				sdk.NewAttribute(types.AttributeKeyTo, to.String()),
			),
		)

		if k.hooks != nil {
			if err := k.hooks.AfterBurn(ctx, pairID, sender.String(), amount0, amount1, liquidity); err != nil {
				return err
			}
		}

		k.Logger(ctx).Info("liquidity burned",
			"pair_id", pairID,
			"to", to.String(),
			"amount0", amount0.String(),
			"amount1", amount1.String(),
		)
		return nil
	})
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	observeLiquidityOp("burn")
	return amount0, amount1, nil
}
