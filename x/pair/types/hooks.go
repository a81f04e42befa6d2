package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// SwapCallee is invoked during a swap after the output tokens have been
// optimistically transferred to the recipient and before the input check
// runs. Implementations may move tokens through the bank to supply the
// swap's input (flash swap); the pair's reentrancy lock is held for the
// duration, so calling back into any mutating pair operation fails.
type SwapCallee interface {
	PairCall(ctx context.Context, sender sdk.AccAddress, amount0Out, amount1Out sdkmath.Int, data []byte) error
}

// PairHooks receives notifications after successful pair operations.
type PairHooks interface {
	AfterPairCreated(ctx context.Context, pairID uint64, token0, token1 string) error
	AfterMint(ctx context.Context, pairID uint64, sender string, amount0, amount1, liquidity sdkmath.Int) error
	AfterBurn(ctx context.Context, pairID uint64, sender string, amount0, amount1, liquidity sdkmath.Int) error
	AfterSwap(ctx context.Context, pairID uint64, sender string, amount0In, amount1In, amount0Out, amount1Out sdkmath.Int) error
}

// MultiPairHooks combines several hooks into one.
type MultiPairHooks []PairHooks

// NewMultiPairHooks creates a MultiPairHooks from a list of hooks.
func NewMultiPairHooks(hooks ...PairHooks) MultiPairHooks {
	return hooks
}

// AfterPairCreated calls AfterPairCreated on all registered hooks.
func (h MultiPairHooks) AfterPairCreated(ctx context.Context, pairID uint64, token0, token1 string) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterPairCreated(ctx, pairID, token0, token1); err != nil {
			return err
		}
	}
	return nil
}

// AfterMint calls AfterMint on all registered hooks.
func (h MultiPairHooks) AfterMint(ctx context.Context, pairID uint64, sender string, amount0, amount1, liquidity sdkmath.Int) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterMint(ctx, pairID, sender, amount0, amount1, liquidity); err != nil {
			return err
		}
	}
	return nil
}

// AfterBurn calls AfterBurn on all registered hooks.
func (h MultiPairHooks) AfterBurn(ctx context.Context, pairID uint64, sender string, amount0, amount1, liquidity sdkmath.Int) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterBurn(ctx, pairID, sender, amount0, amount1, liquidity); err != nil {
			return err
		}
	}
	return nil
}

// AfterSwap calls AfterSwap on all registered hooks.
func (h MultiPairHooks) AfterSwap(ctx context.Context, pairID uint64, sender string, amount0In, amount1In, amount0Out, amount1Out sdkmath.Int) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterSwap(ctx, pairID, sender, amount0In, amount1In, amount0Out, amount1Out); err != nil {
			return err
		}
	}
	return nil
}
