package types

import (
	"context"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/types/query"
)

// QueryServer defines the query server interface
type QueryServer interface {
	Pair(context.Context, *QueryPairRequest) (*QueryPairResponse, error)
	Pairs(context.Context, *QueryPairsRequest) (*QueryPairsResponse, error)
	PairByDenoms(context.Context, *QueryPairByDenomsRequest) (*QueryPairByDenomsResponse, error)
	Balance(context.Context, *QueryBalanceRequest) (*QueryBalanceResponse, error)
	Allowance(context.Context, *QueryAllowanceRequest) (*QueryAllowanceResponse, error)
	TotalSupply(context.Context, *QueryTotalSupplyRequest) (*QueryTotalSupplyResponse, error)
}

// QueryPairRequest is the request for the Pair query
type QueryPairRequest struct {
	PairId uint64 `json:"pair_id"`
}

// QueryPairResponse is the response for the Pair query
type QueryPairResponse struct {
	Pair Pair `json:"pair"`
}

// QueryPairsRequest is the request for the Pairs query
type QueryPairsRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

// QueryPairsResponse is the response for the Pairs query
type QueryPairsResponse struct {
	Pairs      []Pair              `json:"pairs"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

// QueryPairByDenomsRequest is the request for the PairByDenoms query
type QueryPairByDenomsRequest struct {
	TokenA string `json:"token_a"`
	TokenB string `json:"token_b"`
}

// QueryPairByDenomsResponse is the response for the PairByDenoms query
type QueryPairByDenomsResponse struct {
	Pair Pair `json:"pair"`
}

// QueryBalanceRequest is the request for the Balance query
type QueryBalanceRequest struct {
	PairId uint64 `json:"pair_id"`
	Owner  string `json:"owner"`
}

// QueryBalanceResponse is the response for the Balance query
type QueryBalanceResponse struct {
	Balance math.Int `json:"balance"`
}

// QueryAllowanceRequest is the request for the Allowance query
type QueryAllowanceRequest struct {
	PairId  uint64 `json:"pair_id"`
	Owner   string `json:"owner"`
	Spender string `json:"spender"`
}

// QueryAllowanceResponse is the response for the Allowance query
type QueryAllowanceResponse struct {
	Allowance math.Int `json:"allowance"`
}

// QueryTotalSupplyRequest is the request for the TotalSupply query
type QueryTotalSupplyRequest struct {
	PairId uint64 `json:"pair_id"`
}

// QueryTotalSupplyResponse is the response for the TotalSupply query
type QueryTotalSupplyResponse struct {
	TotalSupply math.Int `json:"total_supply"`
}
