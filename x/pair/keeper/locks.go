package keeper

import (
	"context"

	"github.com/pairswap/pairswap/x/pair/types"
)

// withPairLock executes fn while holding the per-pair reentrancy lock.
// The lock lives in the KVStore so it persists across context boundaries:
// a swap callee that re-enters the module through a nested message hits the
// marker and fails with ErrReentrancy.
func (k Keeper) withPairLock(ctx context.Context, pairID uint64, fn func() error) error {
	if err := k.acquirePairLock(ctx, pairID); err != nil {
		return err
	}

	// Release even if fn panics.
	defer k.releasePairLock(ctx, pairID)

	return fn()
}

// acquirePairLock attempts to acquire the reentrancy lock for a pair
func (k Keeper) acquirePairLock(ctx context.Context, pairID uint64) error {
	store := k.getStore(ctx)
	key := types.LockKey(pairID)

	if store.Has(key) {
		observeLockConflict()
		return types.ErrReentrancy.Wrapf("pair %d is already locked", pairID)
	}

	store.Set(key, []byte{0x01})
	return nil
}

// releasePairLock releases the reentrancy lock for a pair
func (k Keeper) releasePairLock(ctx context.Context, pairID uint64) {
	store := k.getStore(ctx)
	store.Delete(types.LockKey(pairID))
}
