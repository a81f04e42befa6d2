package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pairswap/pairswap/x/pair/types"
)

// GetNextPairID returns the identifier the next created pair will receive.
func (k Keeper) GetNextPairID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(types.PairCountKey)
	if bz == nil {
		return 1
	}
	return sdk.BigEndianToUint64(bz)
}

// SetNextPairID stores the identifier for the next created pair.
func (k Keeper) SetNextPairID(ctx context.Context, id uint64) {
	store := k.getStore(ctx)
	store.Set(types.PairCountKey, sdk.Uint64ToBigEndian(id))
}

// GetPair retrieves a pair by its identifier.
func (k Keeper) GetPair(ctx context.Context, pairID uint64) (types.Pair, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.PairKey(pairID))
	if bz == nil {
		return types.Pair{}, types.ErrPairNotFound.Wrapf("pair %d does not exist", pairID)
	}

	var pair types.Pair
	// Use encoding/json for non-protobuf types
	if err := json.Unmarshal(bz, &pair); err != nil {
		return types.Pair{}, types.ErrInvalidPairState.Wrapf("corrupt pair record %d: %v", pairID, err)
	}
	return pair, nil
}

// SetPair persists a pair record.
func (k Keeper) SetPair(ctx context.Context, pair types.Pair) error {
	// Use encoding/json for non-protobuf types
	bz, err := json.Marshal(&pair)
	if err != nil {
		return err
	}

	store := k.getStore(ctx)
	store.Set(types.PairKey(pair.Id), bz)
	return nil
}

// GetPairByDenoms looks a pair up by its (unordered) token denoms.
func (k Keeper) GetPairByDenoms(ctx context.Context, denomA, denomB string) (types.Pair, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.PairByDenomsKey(denomA, denomB))
	if bz == nil {
		return types.Pair{}, types.ErrPairNotFound.Wrapf("no pair for %s/%s", denomA, denomB)
	}
	return k.GetPair(ctx, sdk.BigEndianToUint64(bz))
}

// IteratePairs visits every stored pair in id order until cb returns true.
func (k Keeper) IteratePairs(ctx context.Context, cb func(pair types.Pair) bool) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.PairKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pair types.Pair
		if err := json.Unmarshal(iterator.Value(), &pair); err != nil {
			return types.ErrInvalidPairState.Wrapf("corrupt pair record: %v", err)
		}
		if cb(pair) {
			break
		}
	}
	return nil
}

// GetAllPairs returns every stored pair.
func (k Keeper) GetAllPairs(ctx context.Context) ([]types.Pair, error) {
	var pairs []types.Pair
	err := k.IteratePairs(ctx, func(pair types.Pair) bool {
		pairs = append(pairs, pair)
		return false
	})
	return pairs, err
}

// CreatePair registers a new empty pair for the two denoms and returns it.
// Denoms are stored in sorted order regardless of argument order, and at
// most one pair may exist per denom combination.
func (k Keeper) CreatePair(ctx context.Context, creator sdk.AccAddress, denomA, denomB string) (types.Pair, error) {
	if denomA == denomB {
		return types.Pair{}, types.ErrInvalidTokenPair.Wrapf("identical denoms %s", denomA)
	}

	store := k.getStore(ctx)
	denomKey := types.PairByDenomsKey(denomA, denomB)
	if store.Has(denomKey) {
		return types.Pair{}, types.ErrPairAlreadyExists.Wrapf("pair for %s/%s already exists", denomA, denomB)
	}

	if denomA > denomB {
		denomA, denomB = denomB, denomA
	}

	pairID := k.GetNextPairID(ctx)
	pair := types.NewPair(pairID, denomA, denomB)
	if err := pair.Validate(); err != nil {
		return types.Pair{}, types.ErrInvalidTokenPair.Wrap(err.Error())
	}

	if err := k.SetPair(ctx, pair); err != nil {
		return types.Pair{}, err
	}
	store.Set(denomKey, sdk.Uint64ToBigEndian(pairID))
	k.SetNextPairID(ctx, pairID+1)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePairCreated,
			sdk.NewAttribute(types.AttributeKeyPairID, fmt.Sprintf("%d", pairID)),
			sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
			sdk.NewAttribute(types.AttributeKeyToken0, pair.Token0),
			sdk.NewAttribute(types.AttributeKeyToken1, pair.Token1),
		),
	)

	if k.hooks != nil {
		if err := k.hooks.AfterPairCreated(ctx, pairID, pair.Token0, pair.Token1); err != nil {
			return types.Pair{}, err
		}
	}

	observePairCreated()
	k.Logger(ctx).Info("pair created",
		"pair_id", pairID,
		"token0", pair.Token0,
		"token1", pair.Token1,
		"creator", creator.String(),
	)

	return pair, nil
}

// pairBalances reads the pair reserve account's current holdings of both
// tokens from the bank.
func (k Keeper) pairBalances(ctx context.Context, pair types.Pair) (math.Int, math.Int) {
	addr := types.PairAddress(pair.Id)
	balance0 := k.bankKeeper.GetBalance(ctx, addr, pair.Token0).Amount
	balance1 := k.bankKeeper.GetBalance(ctx, addr, pair.Token1).Amount
	return balance0, balance1
}

// updateReserves snapshots the pair's token balances into its reserve
// fields and emits a sync event. Every state transition that moves tokens
// ends here so reserves never drift silently from balances.
func (k Keeper) updateReserves(ctx context.Context, pair *types.Pair, balance0, balance1 math.Int) error {
	if balance0.IsNegative() || balance1.IsNegative() {
		return types.ErrInvalidPairState.Wrapf("negative balance for pair %d", pair.Id)
	}

	pair.Reserve0 = balance0
	pair.Reserve1 = balance1

	if err := k.SetPair(ctx, *pair); err != nil {
		return err
	}

	observeReserveSync()

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSync,
			sdk.NewAttribute(types.AttributeKeyPairID, fmt.Sprintf("%d", pair.Id)),
			sdk.NewAttribute(types.AttributeKeyReserve0, pair.Reserve0.String()),
			sdk.NewAttribute(types.AttributeKeyReserve1, pair.Reserve1.String()),
		),
	)

	return nil
}

// Skim transfers any excess of the pair's token balances over its recorded
// reserves to the given recipient. The recipient may not be the pair's own
// reserve account, which would make the excess unrecoverable.
func (k Keeper) Skim(ctx context.Context, pairID uint64, to sdk.AccAddress) error {
	return k.withPairLock(ctx, pairID, func() error {
		pair, err := k.GetPair(ctx, pairID)
		if err != nil {
			return err
		}

		pairAddr := types.PairAddress(pairID)
		if to.Equals(pairAddr) {
			return types.ErrInvalidRecipient.Wrap("cannot skim to the pair reserve account")
		}

		balance0, balance1 := k.pairBalances(ctx, pair)
		excess0, err := SafeSub(balance0, pair.Reserve0)
		if err != nil {
			return types.ErrInvalidPairState.Wrapf("pair %d balance below reserve: %v", pairID, err)
		}
		excess1, err := SafeSub(balance1, pair.Reserve1)
		if err != nil {
			return types.ErrInvalidPairState.Wrapf("pair %d balance below reserve: %v", pairID, err)
		}

		var coins sdk.Coins
		if excess0.IsPositive() {
			coins = coins.Add(sdk.NewCoin(pair.Token0, excess0))
		}
		if excess1.IsPositive() {
			coins = coins.Add(sdk.NewCoin(pair.Token1, excess1))
		}
		if !coins.IsZero() {
			if err := k.bankKeeper.SendCoins(ctx, pairAddr, to, coins); err != nil {
				return err
			}
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeSkim,
				sdk.NewAttribute(types.AttributeKeyPairID, fmt.Sprintf("%d", pairID)),
				sdk.NewAttribute(types.AttributeKeyTo, to.String()),
				sdk.NewAttribute(types.AttributeKeyAmount0, excess0.String()),
				sdk.NewAttribute(types.AttributeKeyAmount1, excess1.String()),
			),
		)

		return nil
	})
}

// Sync resets the pair's recorded reserves to its actual token balances.
func (k Keeper) Sync(ctx context.Context, pairID uint64) error {
	return k.withPairLock(ctx, pairID, func() error {
		pair, err := k.GetPair(ctx, pairID)
		if err != nil {
			return err
		}

		balance0, balance1 := k.pairBalances(ctx, pair)
		return k.updateReserves(ctx, &pair, balance0, balance1)
	})
}
