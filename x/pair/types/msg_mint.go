package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgMint{}

// MsgMint defines a message to mint liquidity receipts against the tokens
// deposited to the pair's reserve account since the last reserve snapshot.
type MsgMint struct {
	Sender string `json:"sender"`
	PairId uint64 `json:"pair_id"`
	To     string `json:"to"`
}

// NewMsgMint creates a new MsgMint instance
func NewMsgMint(sender string, pairID uint64, to string) *MsgMint {
	return &MsgMint{
		Sender: sender,
		PairId: pairID,
		To:     to,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgMint) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgMint) Type() string {
	return "mint"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgMint) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgMint) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgMint) ValidateBasic() error {
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
