package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pairswap/pairswap/x/pair/types"
)

// Keeper of the pair store
type Keeper struct {
	storeKey   storetypes.StoreKey
	cdc        codec.BinaryCodec
	bankKeeper types.BankKeeper

	// authority is the account permitted to invoke skim and sync. Typically
	// the gov module account.
	authority string

	hooks types.PairHooks

	// callees are registered flash-swap receivers keyed by bech32 address.
	callees map[string]types.SwapCallee
}

// NewKeeper creates a new pair Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	authority string,
) *Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid pair authority address: %s", authority))
	}

	return &Keeper{
		storeKey:   key,
		cdc:        cdc,
		bankKeeper: bankKeeper,
		authority:  authority,
		callees:    make(map[string]types.SwapCallee),
	}
}

// GetAuthority returns the account permitted to invoke skim and sync.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// SetHooks sets the pair hooks. Panics if called more than once.
func (k *Keeper) SetHooks(h types.PairHooks) {
	if k.hooks != nil {
		panic("cannot set pair hooks twice")
	}
	k.hooks = h
}

// RegisterSwapCallee registers a flash-swap receiver for the given address.
// A swap whose recipient matches a registered callee and carries callee data
// invokes PairCall after the optimistic transfer.
func (k *Keeper) RegisterSwapCallee(addr sdk.AccAddress, callee types.SwapCallee) {
	k.callees[addr.String()] = callee
}

// SwapCallee returns the registered flash-swap receiver for addr, if any.
func (k Keeper) SwapCallee(addr sdk.AccAddress) (types.SwapCallee, bool) {
	callee, ok := k.callees[addr.String()]
	return callee, ok
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}

// getStore returns the KVStore for the pair module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}
