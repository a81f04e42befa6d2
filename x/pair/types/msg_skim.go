package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgSkim{}
	_ sdk.Msg = &MsgSync{}
)

// MsgSkim defines an authority-only message to transfer any balance the
// pair holds beyond its recorded reserves to a recipient.
type MsgSkim struct {
	Authority string `json:"authority"`
	PairId    uint64 `json:"pair_id"`
	To        string `json:"to"`
}

// NewMsgSkim creates a new MsgSkim instance
func NewMsgSkim(authority string, pairID uint64, to string) *MsgSkim {
	return &MsgSkim{
		Authority: authority,
		PairId:    pairID,
		To:        to,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSkim) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSkim) Type() string {
	return "skim"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSkim) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSkim) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSkim) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}

	if msg.PairId == 0 {
		return sdkerrors.Wrap(ErrPairNotFound, "pair id cannot be zero")
	}

	if _, err := sdk.AccAddressFromBech32(msg.To); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
	}

	return nil
}

// MsgSync defines an authority-only message to reconcile a pair's recorded
// reserves to its actual balances without moving tokens.
type MsgSync struct {
	Authority string `json:"authority"`
	PairId    uint64 `json:"pair_id"`
}

// NewMsgSync creates a new MsgSync instance
func NewMsgSync(authority string, pairID uint64) *MsgSync {
	return &MsgSync{
		Authority: authority,
		PairId:    pairID,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSync) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSync) Type() string {
	return "sync"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSync) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSync) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSync) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}

	if msg.PairId == 0 {
		return sdkerrors.Wrap(ErrPairNotFound, "pair id cannot be zero")
	}

	return nil
}
