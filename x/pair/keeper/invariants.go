package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pairswap/pairswap/x/pair/types"
)

// RegisterInvariants registers all pair module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "reserve-backing", ReserveBackingInvariant(k))
	ir.RegisterRoute(types.ModuleName, "receipt-supply", ReceiptSupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "pair-state", PairStateInvariant(k))
}

// AllInvariants runs all invariants of the pair module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ReserveBackingInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = ReceiptSupplyInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return PairStateInvariant(k)(ctx)
	}
}

// ReserveBackingInvariant checks that every pair's recorded reserves are
// covered by its reserve account's actual balances. Reserves may lag behind
// balances until sync runs, but must never exceed them.
func ReserveBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		pairs, err := k.GetAllPairs(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "reserve-backing", err.Error()), true
		}

		for _, pair := range pairs {
			balance0, balance1 := k.pairBalances(ctx, pair)
			if balance0.LT(pair.Reserve0) {
				count++
				msg += fmt.Sprintf("pair %d: balance of %s (%s) < reserve (%s)\n",
					pair.Id, pair.Token0, balance0, pair.Reserve0)
			}
			if balance1.LT(pair.Reserve1) {
				count++
				msg += fmt.Sprintf("pair %d: balance of %s (%s) < reserve (%s)\n",
					pair.Id, pair.Token1, balance1, pair.Reserve1)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "reserve-backing",
			fmt.Sprintf("found %d pairs with reserve > balance\n%s", count, msg),
		), broken
	}
}

// ReceiptSupplyInvariant checks that each pair's recorded total supply
// equals the sum of all receipt balances under that pair.
func ReceiptSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		pairs, err := k.GetAllPairs(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "receipt-supply", err.Error()), true
		}

		for _, pair := range pairs {
			sum := math.ZeroInt()
			k.IterateLPBalances(ctx, pair.Id, func(_ sdk.AccAddress, balance math.Int) bool {
				sum = sum.Add(balance)
				return false
			})

			if !sum.Equal(pair.TotalSupply) {
				count++
				msg += fmt.Sprintf("pair %d: balances sum to %s, recorded supply %s\n",
					pair.Id, sum, pair.TotalSupply)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "receipt-supply",
			fmt.Sprintf("found %d pairs with supply mismatch\n%s", count, msg),
		), broken
	}
}

// PairStateInvariant checks structural well-formedness of every pair record.
func PairStateInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		pairs, err := k.GetAllPairs(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "pair-state", err.Error()), true
		}

		nextID := k.GetNextPairID(ctx)
		for _, pair := range pairs {
			if err := pair.Validate(); err != nil {
				count++
				msg += fmt.Sprintf("pair %d: %v\n", pair.Id, err)
			}
			if pair.Id >= nextID {
				count++
				msg += fmt.Sprintf("pair %d: id not below next pair id %d\n", pair.Id, nextID)
			}
			if !pair.TotalSupply.IsZero() && pair.TotalSupply.LT(math.NewInt(types.MinimumLiquidity)) {
				count++
				msg += fmt.Sprintf("pair %d: supply %s below the permanent minimum liquidity floor\n",
					pair.Id, pair.TotalSupply)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "pair-state",
			fmt.Sprintf("found %d malformed pairs\n%s", count, msg),
		), broken
	}
}
