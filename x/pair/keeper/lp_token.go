package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pairswap/pairswap/x/pair/types"
)

// The liquidity receipt ledger lives inside the module store rather than the
// bank: balances, allowances and total supply per pair, keyed by pair id.

// GetLPBalance returns addr's liquidity receipt balance for a pair.
func (k Keeper) GetLPBalance(ctx context.Context, pairID uint64, addr sdk.AccAddress) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(types.LPBalanceKey(pairID, addr))
	if bz == nil {
		return math.ZeroInt()
	}

	var balance math.Int
	if err := balance.Unmarshal(bz); err != nil {
		panic(fmt.Sprintf("corrupt lp balance for pair %d: %v", pairID, err))
	}
	return balance
}

func (k Keeper) setLPBalance(ctx context.Context, pairID uint64, addr sdk.AccAddress, balance math.Int) {
	store := k.getStore(ctx)
	key := types.LPBalanceKey(pairID, addr)

	if balance.IsZero() {
		store.Delete(key)
		return
	}

	bz, err := balance.Marshal()
	if err != nil {
		panic(err)
	}
	store.Set(key, bz)
}

// GetLPAllowance returns the amount spender may move out of owner's
// receipt balance for a pair.
func (k Keeper) GetLPAllowance(ctx context.Context, pairID uint64, owner, spender sdk.AccAddress) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(types.LPAllowanceKey(pairID, owner, spender))
	if bz == nil {
		return math.ZeroInt()
	}

	var allowance math.Int
	if err := allowance.Unmarshal(bz); err != nil {
		panic(fmt.Sprintf("corrupt lp allowance for pair %d: %v", pairID, err))
	}
	return allowance
}

func (k Keeper) setLPAllowance(ctx context.Context, pairID uint64, owner, spender sdk.AccAddress, allowance math.Int) {
	store := k.getStore(ctx)
	key := types.LPAllowanceKey(pairID, owner, spender)

	if allowance.IsZero() {
		store.Delete(key)
		return
	}

	bz, err := allowance.Marshal()
	if err != nil {
		panic(err)
	}
	store.Set(key, bz)
}

// mintLP credits freshly minted receipts to an address and grows the
// pair's total supply. The pair record is mutated but not persisted; the
// caller persists it through updateReserves.
func (k Keeper) mintLP(ctx context.Context, pair *types.Pair, to sdk.AccAddress, amount math.Int) error {
	newSupply, err := SafeAdd(pair.TotalSupply, amount)
	if err != nil {
		return err
	}
	newBalance, err := SafeAdd(k.GetLPBalance(ctx, pair.Id, to), amount)
	if err != nil {
		return err
	}

	pair.TotalSupply = newSupply
	k.setLPBalance(ctx, pair.Id, to, newBalance)

	k.emitLPTransfer(ctx, pair.Id, "", to.String(), amount)
	return nil
}

// burnLP destroys receipts held by an address and shrinks the pair's total
// supply. Like mintLP it leaves persisting the pair to the caller.
func (k Keeper) burnLP(ctx context.Context, pair *types.Pair, from sdk.AccAddress, amount math.Int) error {
	balance := k.GetLPBalance(ctx, pair.Id, from)
	newBalance, err := SafeSub(balance, amount)
	if err != nil {
		return types.ErrInsufficientBalance.Wrapf("burn %s exceeds balance %s", amount, balance)
	}
	newSupply, err := SafeSub(pair.TotalSupply, amount)
	if err != nil {
		return types.ErrInvalidPairState.Wrapf("burn %s exceeds total supply %s", amount, pair.TotalSupply)
	}

	pair.TotalSupply = newSupply
	k.setLPBalance(ctx, pair.Id, from, newBalance)

	k.emitLPTransfer(ctx, pair.Id, from.String(), "", amount)
	return nil
}

// TransferLP moves receipt balance between two addresses.
func (k Keeper) TransferLP(ctx context.Context, pairID uint64, from, to sdk.AccAddress, value math.Int) error {
	if _, err := k.GetPair(ctx, pairID); err != nil {
		return err
	}
	if value.IsNegative() {
		return types.ErrInvalidAmount.Wrapf("negative transfer value %s", value)
	}

	balance := k.GetLPBalance(ctx, pairID, from)
	newFrom, err := SafeSub(balance, value)
	if err != nil {
		return types.ErrInsufficientBalance.Wrapf("transfer %s exceeds balance %s", value, balance)
	}

	// Debit before reading the destination so a self-transfer credits the
	// already-debited balance instead of duplicating it.
	k.setLPBalance(ctx, pairID, from, newFrom)

	newTo, err := SafeAdd(k.GetLPBalance(ctx, pairID, to), value)
	if err != nil {
		return err
	}
	k.setLPBalance(ctx, pairID, to, newTo)

	k.emitLPTransfer(ctx, pairID, from.String(), to.String(), value)
	return nil
}

// ApproveLP sets spender's allowance over owner's receipt balance. Setting
// zero clears any existing allowance.
func (k Keeper) ApproveLP(ctx context.Context, pairID uint64, owner, spender sdk.AccAddress, value math.Int) error {
	if _, err := k.GetPair(ctx, pairID); err != nil {
		return err
	}
	if value.IsNegative() {
		return types.ErrInvalidAmount.Wrapf("negative allowance value %s", value)
	}

	k.setLPAllowance(ctx, pairID, owner, spender, value)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeApproval,
			sdk.NewAttribute(types.AttributeKeyPairID, fmt.Sprintf("%d", pairID)),
			sdk.NewAttribute(types.AttributeKeyOwner, owner.String()),
			sdk.NewAttribute(types.AttributeKeySpender, spender.String()),
			sdk.NewAttribute(types.AttributeKeyValue, value.String()),
		),
	)
	return nil
}

// TransferFromLP moves receipt balance on behalf of the owner, consuming
// spender's allowance.
func (k Keeper) TransferFromLP(ctx context.Context, pairID uint64, spender, from, to sdk.AccAddress, value math.Int) error {
	if value.IsNegative() {
		return types.ErrInvalidAmount.Wrapf("negative transfer value %s", value)
	}

	allowance := k.GetLPAllowance(ctx, pairID, from, spender)
	newAllowance, err := SafeSub(allowance, value)
	if err != nil {
		return types.ErrInsufficientAllowance.Wrapf("transfer %s exceeds allowance %s", value, allowance)
	}

	if err := k.TransferLP(ctx, pairID, from, to, value); err != nil {
		return err
	}

	k.setLPAllowance(ctx, pairID, from, spender, newAllowance)
	return nil
}

// IterateLPBalances visits every receipt balance for a pair.
func (k Keeper) IterateLPBalances(ctx context.Context, pairID uint64, cb func(addr sdk.AccAddress, balance math.Int) bool) {
	store := k.getStore(ctx)
	prefix := types.LPBalanceByPairPrefix(pairID)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		addr := sdk.AccAddress(iterator.Key()[len(prefix):])

		var balance math.Int
		if err := balance.Unmarshal(iterator.Value()); err != nil {
			panic(fmt.Sprintf("corrupt lp balance for pair %d: %v", pairID, err))
		}
		if cb(addr, balance) {
			break
		}
	}
}

// IterateLPAllowances visits every allowance for a pair.
func (k Keeper) IterateLPAllowances(ctx context.Context, pairID uint64, cb func(owner, spender sdk.AccAddress, allowance math.Int) bool) {
	store := k.getStore(ctx)
	prefix := types.LPAllowanceByPairPrefix(pairID)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		owner, spender := types.ParseLPAllowanceKey(iterator.Key()[len(prefix):])

		var allowance math.Int
		if err := allowance.Unmarshal(iterator.Value()); err != nil {
			panic(fmt.Sprintf("corrupt lp allowance for pair %d: %v", pairID, err))
		}
		if cb(owner, spender, allowance) {
			break
		}
	}
}

func (k Keeper) emitLPTransfer(ctx context.Context, pairID uint64, from, to string, value math.Int) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTransfer,
			sdk.NewAttribute(types.AttributeKeyPairID, fmt.Sprintf("%d", pairID)),
			sdk.NewAttribute(types.AttributeKeyFrom, from),
			sdk.NewAttribute(types.AttributeKeyTo, to),
			sdk.NewAttribute(types.AttributeKeyValue, value.String()),
		),
	)
}
