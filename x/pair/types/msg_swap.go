package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgSwap{}

// MsgSwap defines a message to swap against a pair. Outputs are paid out
// optimistically; the input is whatever surplus the pair's reserve account
// holds once the invariant check runs. CalleeData, when set, is forwarded
// to the SwapCallee registered for the recipient (flash swap).
type MsgSwap struct {
	Sender     string   `json:"sender"`
	PairId     uint64   `json:"pair_id"`
	Amount0Out math.Int `json:"amount0_out"`
	Amount1Out math.Int `json:"amount1_out"`
	To         string   `json:"to"`
	CalleeData []byte   `json:"callee_data,omitempty"`
}

// NewMsgSwap creates a new MsgSwap instance
func NewMsgSwap(sender string, pairID uint64, amount0Out, amount1Out math.Int, to string, calleeData []byte) *MsgSwap {
	return &MsgSwap{
		Sender:     sender,
		PairId:     pairID,
		Amount0Out: amount0Out,
		Amount1Out: amount1Out,
		To:         to,
		CalleeData: calleeData,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwap) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSwap) Type() string {
	return "swap"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSwap) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwap) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}

	if msg.PairId == 0 {
		return sdkerrors.Wrap(ErrPairNotFound, "pair id cannot be zero")
	}

	if msg.Amount0Out.IsNil() || msg.Amount1Out.IsNil() {
		return sdkerrors.Wrap(ErrInvalidAmount, "output amounts cannot be nil")
	}

	if msg.Amount0Out.IsNegative() || msg.Amount1Out.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "output amounts cannot be negative")
	}

	if msg.Amount0Out.IsZero() && msg.Amount1Out.IsZero() {
		return sdkerrors.Wrap(ErrInsufficientOutputAmount, "both output amounts are zero")
	}

	if _, err := sdk.AccAddressFromBech32(msg.To); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
	}

	return nil
}
