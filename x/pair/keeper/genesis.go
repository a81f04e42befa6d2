package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pairswap/pairswap/x/pair/types"
)

// InitGenesis restores the pair module state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) {
	if err := genState.Validate(); err != nil {
		panic(fmt.Sprintf("invalid pair genesis state: %v", err))
	}

	store := k.getStore(ctx)
	k.SetNextPairID(ctx, genState.NextPairId)

	for _, pair := range genState.Pairs {
		if err := k.SetPair(ctx, pair); err != nil {
			panic(err)
		}
		store.Set(types.PairByDenomsKey(pair.Token0, pair.Token1), sdk.Uint64ToBigEndian(pair.Id))
	}

	for _, pos := range genState.Positions {
		addr, err := sdk.AccAddressFromBech32(pos.Address)
		if err != nil {
			panic(fmt.Sprintf("invalid position address %s: %v", pos.Address, err))
		}
		k.setLPBalance(ctx, pos.PairId, addr, pos.Balance)
	}

	for _, allowance := range genState.Allowances {
		owner, err := sdk.AccAddressFromBech32(allowance.Owner)
		if err != nil {
			panic(fmt.Sprintf("invalid allowance owner %s: %v", allowance.Owner, err))
		}
		spender, err := sdk.AccAddressFromBech32(allowance.Spender)
		if err != nil {
			panic(fmt.Sprintf("invalid allowance spender %s: %v", allowance.Spender, err))
		}
		k.setLPAllowance(ctx, allowance.PairId, owner, spender, allowance.Value)
	}
}

// ExportGenesis returns the pair module's current state for genesis export.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	genState := types.GenesisState{
		NextPairId: k.GetNextPairID(ctx),
		Pairs:      []types.Pair{},
		Positions:  []types.LPPosition{},
		Allowances: []types.LPAllowance{},
	}

	err := k.IteratePairs(ctx, func(pair types.Pair) bool {
		genState.Pairs = append(genState.Pairs, pair)

		k.IterateLPBalances(ctx, pair.Id, func(addr sdk.AccAddress, balance math.Int) bool {
			genState.Positions = append(genState.Positions, types.LPPosition{
				PairId:  pair.Id,
				Address: addr.String(),
				Balance: balance,
			})
			return false
		})

		k.IterateLPAllowances(ctx, pair.Id, func(owner, spender sdk.AccAddress, allowance math.Int) bool {
			genState.Allowances = append(genState.Allowances, types.LPAllowance{
				PairId:  pair.Id,
				Owner:   owner.String(),
				Spender: spender.String(),
				Value:   allowance,
			})
			return false
		})

		return false
	})
	if err != nil {
		panic(err)
	}

	return &genState
}
