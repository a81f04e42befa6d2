package keeper

import (
	"context"

	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pairswap/pairswap/x/pair/types"
)

var _ types.QueryServer = Keeper{}

// Pair queries a pair by ID
func (k Keeper) Pair(goCtx context.Context, req *types.QueryPairRequest) (*types.QueryPairResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.PairId == 0 {
		return nil, status.Error(codes.InvalidArgument, "pair id cannot be zero")
	}

	pair, err := k.GetPair(goCtx, req.PairId)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "pair %d not found", req.PairId)
	}

	return &types.QueryPairResponse{Pair: pair}, nil
}

// Pairs queries all pairs with pagination
func (k Keeper) Pairs(goCtx context.Context, req *types.QueryPairsRequest) (*types.QueryPairsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	allPairs, err := k.GetAllPairs(goCtx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	pairs := allPairs
	pageRes := &query.PageResponse{Total: uint64(len(allPairs))}

	if req.Pagination != nil {
		offset := req.Pagination.Offset
		limit := req.Pagination.Limit
		if limit == 0 {
			limit = 100
		}
		if offset >= uint64(len(allPairs)) {
			return &types.QueryPairsResponse{Pairs: []types.Pair{}, Pagination: pageRes}, nil
		}

		end := offset + limit
		if end > uint64(len(allPairs)) {
			end = uint64(len(allPairs))
		}
		pairs = allPairs[offset:end]

		if end < uint64(len(allPairs)) {
			pageRes.NextKey = sdk.Uint64ToBigEndian(end)
		}
	}

	return &types.QueryPairsResponse{Pairs: pairs, Pagination: pageRes}, nil
}

// PairByDenoms queries a pair by its token denoms, in either order
func (k Keeper) PairByDenoms(goCtx context.Context, req *types.QueryPairByDenomsRequest) (*types.QueryPairByDenomsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.TokenA == "" || req.TokenB == "" {
		return nil, status.Error(codes.InvalidArgument, "token denoms cannot be empty")
	}

	pair, err := k.GetPairByDenoms(goCtx, req.TokenA, req.TokenB)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "pair not found for %s/%s", req.TokenA, req.TokenB)
	}

	return &types.QueryPairByDenomsResponse{Pair: pair}, nil
}

// Balance queries an account's liquidity receipt balance in a pair
func (k Keeper) Balance(goCtx context.Context, req *types.QueryBalanceRequest) (*types.QueryBalanceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.PairId == 0 {
		return nil, status.Error(codes.InvalidArgument, "pair id cannot be zero")
	}

	owner, err := sdk.AccAddressFromBech32(req.Owner)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid owner address: %s", err)
	}
	if _, err := k.GetPair(goCtx, req.PairId); err != nil {
		return nil, status.Errorf(codes.NotFound, "pair %d not found", req.PairId)
	}

	return &types.QueryBalanceResponse{Balance: k.GetLPBalance(goCtx, req.PairId, owner)}, nil
}

// Allowance queries a spender's allowance over an owner's receipt balance
func (k Keeper) Allowance(goCtx context.Context, req *types.QueryAllowanceRequest) (*types.QueryAllowanceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.PairId == 0 {
		return nil, status.Error(codes.InvalidArgument, "pair id cannot be zero")
	}

	owner, err := sdk.AccAddressFromBech32(req.Owner)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid owner address: %s", err)
	}
	spender, err := sdk.AccAddressFromBech32(req.Spender)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid spender address: %s", err)
	}
	if _, err := k.GetPair(goCtx, req.PairId); err != nil {
		return nil, status.Errorf(codes.NotFound, "pair %d not found", req.PairId)
	}

	return &types.QueryAllowanceResponse{Allowance: k.GetLPAllowance(goCtx, req.PairId, owner, spender)}, nil
}

// TotalSupply queries the outstanding liquidity receipt supply of a pair
func (k Keeper) TotalSupply(goCtx context.Context, req *types.QueryTotalSupplyRequest) (*types.QueryTotalSupplyResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.PairId == 0 {
		return nil, status.Error(codes.InvalidArgument, "pair id cannot be zero")
	}

	pair, err := k.GetPair(goCtx, req.PairId)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "pair %d not found", req.PairId)
	}

	return &types.QueryTotalSupplyResponse{TotalSupply: pair.TotalSupply}, nil
}
