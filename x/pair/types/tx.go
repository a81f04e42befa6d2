package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	CreatePair(context.Context, *MsgCreatePair) (*MsgCreatePairResponse, error)
	Mint(context.Context, *MsgMint) (*MsgMintResponse, error)
	Burn(context.Context, *MsgBurn) (*MsgBurnResponse, error)
	Swap(context.Context, *MsgSwap) (*MsgSwapResponse, error)
	Skim(context.Context, *MsgSkim) (*MsgSkimResponse, error)
	Sync(context.Context, *MsgSync) (*MsgSyncResponse, error)
	Transfer(context.Context, *MsgTransfer) (*MsgTransferResponse, error)
	Approve(context.Context, *MsgApprove) (*MsgApproveResponse, error)
	TransferFrom(context.Context, *MsgTransferFrom) (*MsgTransferFromResponse, error)
}

// Response types

// MsgCreatePairResponse defines the response for CreatePair
type MsgCreatePairResponse struct {
	PairId uint64 `json:"pair_id"`
}

// MsgMintResponse defines the response for Mint
type MsgMintResponse struct {
	Liquidity math.Int `json:"liquidity"`
}

// MsgBurnResponse defines the response for Burn
type MsgBurnResponse struct {
	Amount0 math.Int `json:"amount0"`
	Amount1 math.Int `json:"amount1"`
}

// MsgSwapResponse defines the response for Swap
type MsgSwapResponse struct {
	Amount0In math.Int `json:"amount0_in"`
	Amount1In math.Int `json:"amount1_in"`
}

// MsgSkimResponse defines the response for Skim
type MsgSkimResponse struct{}

// MsgSyncResponse defines the response for Sync
type MsgSyncResponse struct{}

// MsgTransferResponse defines the response for Transfer
type MsgTransferResponse struct{}

// MsgApproveResponse defines the response for Approve
type MsgApproveResponse struct{}

// MsgTransferFromResponse defines the response for TransferFrom
type MsgTransferFromResponse struct{}
