package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgBurn{}

// MsgBurn defines a message to redeem the recipient's entire liquidity
// receipt balance for the underlying tokens. The sender must be the
// recipient; there is no burn-on-behalf.
type MsgBurn struct {
	Sender string `json:"sender"`
	PairId uint64 `json:"pair_id"`
	To     string `json:"to"`
}

// NewMsgBurn creates a new MsgBurn instance
func NewMsgBurn(sender string, pairID uint64, to string) *MsgBurn {
	return &MsgBurn{
		Sender: sender,
		PairId: pairID,
		To:     to,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgBurn) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgBurn) Type() string {
	return "burn"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgBurn) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgBurn) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgBurn) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}

	if msg.PairId == 0 {
		return sdkerrors.Wrap(ErrPairNotFound, "pair id cannot be zero")
	}

	if _, err := sdk.AccAddressFromBech32(msg.To); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
	}

	return nil
}
