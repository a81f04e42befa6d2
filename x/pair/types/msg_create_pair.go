package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgCreatePair{}

// MsgCreatePair defines a message to register a new empty pair
type MsgCreatePair struct {
	Creator string `json:"creator"`
	Token0  string `json:"token0"`
	Token1  string `json:"token1"`
}

// NewMsgCreatePair creates a new MsgCreatePair instance
func NewMsgCreatePair(creator, token0, token1 string) *MsgCreatePair {
	return &MsgCreatePair{
		Creator: creator,
		Token0:  token0,
		Token1:  token1,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgCreatePair) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgCreatePair) Type() string {
	return "create_pair"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgCreatePair) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCreatePair) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCreatePair) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}

	if err := sdk.ValidateDenom(msg.Token0); err != nil {
		return sdkerrors.Wrapf(ErrInvalidTokenPair, "invalid token0 denom: %s", err)
	}

	if err := sdk.ValidateDenom(msg.Token1); err != nil {
		return sdkerrors.Wrapf(ErrInvalidTokenPair, "invalid token1 denom: %s", err)
	}

	if msg.Token0 == msg.Token1 {
		return sdkerrors.Wrap(ErrInvalidTokenPair, "token denoms must be different")
	}

	return nil
}
