package cli

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"

	"github.com/cosmos/cosmos-sdk/client"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pairswap/pairswap/x/pair/types"
)

// The pair module has no generated query service, so the CLI reads module
// state through the node's ABCI store endpoints.

func queryPair(clientCtx client.Context, pairID uint64) (*types.QueryPairResponse, error) {
	bz, _, err := clientCtx.QueryStore(types.PairKey(pairID), types.StoreKey)
	if err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, fmt.Errorf("pair %d not found", pairID)
	}

	var pair types.Pair
	if err := json.Unmarshal(bz, &pair); err != nil {
		return nil, fmt.Errorf("corrupt pair record: %w", err)
	}
	return &types.QueryPairResponse{Pair: pair}, nil
}

func queryPairs(clientCtx client.Context) (*types.QueryPairsResponse, error) {
	// Pair ids are assigned sequentially and never reused, so walking
	// 1..next-1 with point lookups covers every stored pair.
	bz, _, err := clientCtx.QueryStore(types.PairCountKey, types.StoreKey)
	if err != nil {
		return nil, err
	}
	nextID := uint64(1)
	if bz != nil {
		nextID = sdk.BigEndianToUint64(bz)
	}

	pairs := make([]types.Pair, 0, nextID-1)
	for id := uint64(1); id < nextID; id++ {
		res, err := queryPair(clientCtx, id)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, res.Pair)
	}

	return &types.QueryPairsResponse{Pairs: pairs}, nil
}

func queryBalance(clientCtx client.Context, pairID uint64, owner string) (*types.QueryBalanceResponse, error) {
	ownerAddr, err := sdk.AccAddressFromBech32(owner)
	if err != nil {
		return nil, fmt.Errorf("invalid owner address: %w", err)
	}

	bz, _, err := clientCtx.QueryStore(types.LPBalanceKey(pairID, ownerAddr), types.StoreKey)
	if err != nil {
		return nil, err
	}

	balance := math.ZeroInt()
	if bz != nil {
		if err := balance.Unmarshal(bz); err != nil {
			return nil, fmt.Errorf("corrupt balance record: %w", err)
		}
	}
	return &types.QueryBalanceResponse{Balance: balance}, nil
}

func queryAllowance(clientCtx client.Context, pairID uint64, owner, spender string) (*types.QueryAllowanceResponse, error) {
	ownerAddr, err := sdk.AccAddressFromBech32(owner)
	if err != nil {
		return nil, fmt.Errorf("invalid owner address: %w", err)
	}
	spenderAddr, err := sdk.AccAddressFromBech32(spender)
	if err != nil {
		return nil, fmt.Errorf("invalid spender address: %w", err)
	}

	bz, _, err := clientCtx.QueryStore(types.LPAllowanceKey(pairID, ownerAddr, spenderAddr), types.StoreKey)
	if err != nil {
		return nil, err
	}

	allowance := math.ZeroInt()
	if bz != nil {
		if err := allowance.Unmarshal(bz); err != nil {
			return nil, fmt.Errorf("corrupt allowance record: %w", err)
		}
	}
	return &types.QueryAllowanceResponse{Allowance: allowance}, nil
}

func queryTotalSupply(clientCtx client.Context, pairID uint64) (*types.QueryTotalSupplyResponse, error) {
	res, err := queryPair(clientCtx, pairID)
	if err != nil {
		return nil, err
	}
	return &types.QueryTotalSupplyResponse{TotalSupply: res.Pair.TotalSupply}, nil
}
