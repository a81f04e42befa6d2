package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pairswap/pairswap/x/pair/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the pair MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreatePair registers a new empty pair for two denoms.
func (k msgServer) CreatePair(ctx context.Context, msg *types.MsgCreatePair) (*types.MsgCreatePairResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	pair, err := k.Keeper.CreatePair(ctx, creator, msg.Token0, msg.Token1)
	if err != nil {
		return nil, err
	}

	return &types.MsgCreatePairResponse{PairId: pair.Id}, nil
}

// Mint converts deposits made since the last reserve snapshot into
// liquidity receipts.
func (k msgServer) Mint(ctx context.Context, msg *types.MsgMint) (*types.MsgMintResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	to, err := sdk.AccAddressFromBech32(msg.To)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	liquidity, err := k.Keeper.Mint(ctx, msg.PairId, sender, to)
	if err != nil {
		return nil, err
	}

	return &types.MsgMintResponse{Liquidity: liquidity}, nil
}

// Burn redeems the sender's receipt balance for underlying tokens.
func (k msgServer) Burn(ctx context.Context, msg *types.MsgBurn) (*types.MsgBurnResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	to, err := sdk.AccAddressFromBech32(msg.To)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	amount0, amount1, err := k.Keeper.Burn(ctx, msg.PairId, sender, to)
	if err != nil {
		return nil, err
	}

	return &types.MsgBurnResponse{Amount0: amount0, Amount1: amount1}, nil
}

// Swap executes a constant-product swap, optionally invoking a registered
// flash-swap callee.
func (k msgServer) Swap(ctx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	to, err := sdk.AccAddressFromBech32(msg.To)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	amount0In, amount1In, err := k.Keeper.Swap(ctx, msg.PairId, sender, msg.Amount0Out, msg.Amount1Out, to, msg.CalleeData)
	if err != nil {
		return nil, err
	}

	return &types.MsgSwapResponse{Amount0In: amount0In, Amount1In: amount1In}, nil
}

// Skim transfers excess balance over recorded reserves to a recipient.
// Restricted to the module authority.
func (k msgServer) Skim(ctx context.Context, msg *types.MsgSkim) (*types.MsgSkimResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if msg.Authority != k.GetAuthority() {
		return nil, types.ErrUnauthorized.Wrapf("expected authority %s, got %s", k.GetAuthority(), msg.Authority)
	}

	to, err := sdk.AccAddressFromBech32(msg.To)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	if err := k.Keeper.Skim(ctx, msg.PairId, to); err != nil {
		return nil, err
	}

	return &types.MsgSkimResponse{}, nil
}

// Sync reconciles recorded reserves with actual balances. Restricted to
// the module authority.
func (k msgServer) Sync(ctx context.Context, msg *types.MsgSync) (*types.MsgSyncResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if msg.Authority != k.GetAuthority() {
		return nil, types.ErrUnauthorized.Wrapf("expected authority %s, got %s", k.GetAuthority(), msg.Authority)
	}

	if err := k.Keeper.Sync(ctx, msg.PairId); err != nil {
		return nil, err
	}

	return &types.MsgSyncResponse{}, nil
}

// Transfer moves liquidity receipt balance between accounts.
func (k msgServer) Transfer(ctx context.Context, msg *types.MsgTransfer) (*types.MsgTransferResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	to, err := sdk.AccAddressFromBech32(msg.To)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	if err := k.Keeper.TransferLP(ctx, msg.PairId, sender, to, msg.Value); err != nil {
		return nil, err
	}

	return &types.MsgTransferResponse{}, nil
}

// Approve sets a spender allowance over the owner's receipt balance.
func (k msgServer) Approve(ctx context.Context, msg *types.MsgApprove) (*types.MsgApproveResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	spender, err := sdk.AccAddressFromBech32(msg.Spender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	if err := k.Keeper.ApproveLP(ctx, msg.PairId, owner, spender, msg.Value); err != nil {
		return nil, err
	}

	return &types.MsgApproveResponse{}, nil
}

// TransferFrom moves receipt balance on behalf of its owner, consuming
// the signer's allowance.
func (k msgServer) TransferFrom(ctx context.Context, msg *types.MsgTransferFrom) (*types.MsgTransferFromResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	spender, err := sdk.AccAddressFromBech32(msg.Spender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	from, err := sdk.AccAddressFromBech32(msg.From)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	to, err := sdk.AccAddressFromBech32(msg.To)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	if err := k.Keeper.TransferFromLP(ctx, msg.PairId, spender, from, to, msg.Value); err != nil {
		return nil, err
	}

	return &types.MsgTransferFromResponse{}, nil
}
