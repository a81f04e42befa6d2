package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgTransfer{}
	_ sdk.Msg = &MsgApprove{}
	_ sdk.Msg = &MsgTransferFrom{}
)

// MsgTransfer moves liquidity receipt units from the sender to another
// account.
type MsgTransfer struct {
	Sender string   `json:"sender"`
	PairId uint64   `json:"pair_id"`
	To     string   `json:"to"`
	Value  math.Int `json:"value"`
}

// NewMsgTransfer creates a new MsgTransfer instance
func NewMsgTransfer(sender string, pairID uint64, to string, value math.Int) *MsgTransfer {
	return &MsgTransfer{
		Sender: sender,
		PairId: pairID,
		To:     to,
		Value:  value,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgTransfer) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgTransfer) Type() string {
	return "transfer"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgTransfer) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgTransfer) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgTransfer) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}

	if msg.PairId == 0 {
		return sdkerrors.Wrap(ErrPairNotFound, "pair id cannot be zero")
	}

	if _, err := sdk.AccAddressFromBech32(msg.To); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
	}

	if msg.Value.IsNil() || msg.Value.LTE(math.ZeroInt()) {
		return sdkerrors.Wrap(ErrInvalidAmount, "value must be positive")
	}

	return nil
}

// MsgApprove sets the amount a spender may move out of the sender's
// liquidity receipt balance. A repeated approve overwrites the allowance.
type MsgApprove struct {
	Owner   string   `json:"owner"`
	PairId  uint64   `json:"pair_id"`
	Spender string   `json:"spender"`
	Value   math.Int `json:"value"`
}

// NewMsgApprove creates a new MsgApprove instance
func NewMsgApprove(owner string, pairID uint64, spender string, value math.Int) *MsgApprove {
	return &MsgApprove{
		Owner:   owner,
		PairId:  pairID,
		Spender: spender,
		Value:   value,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgApprove) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgApprove) Type() string {
	return "approve"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgApprove) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgApprove) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgApprove) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid owner address: %s", err)
	}

	if msg.PairId == 0 {
		return sdkerrors.Wrap(ErrPairNotFound, "pair id cannot be zero")
	}

	if _, err := sdk.AccAddressFromBech32(msg.Spender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid spender address: %s", err)
	}

	if msg.Value.IsNil() || msg.Value.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "value cannot be negative")
	}

	return nil
}

// MsgTransferFrom moves liquidity receipt units out of another account's
// balance, consuming the caller's allowance.
type MsgTransferFrom struct {
	Spender string   `json:"spender"`
	PairId  uint64   `json:"pair_id"`
	From    string   `json:"from"`
	To      string   `json:"to"`
	Value   math.Int `json:"value"`
}

// NewMsgTransferFrom creates a new MsgTransferFrom instance
func NewMsgTransferFrom(spender string, pairID uint64, from, to string, value math.Int) *MsgTransferFrom {
	return &MsgTransferFrom{
		Spender: spender,
		PairId:  pairID,
		From:    from,
		To:      to,
		Value:   value,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgTransferFrom) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgTransferFrom) Type() string {
	return "transfer_from"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgTransferFrom) GetSigners() []sdk.AccAddress {
	spender, err := sdk.AccAddressFromBech32(msg.Spender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{spender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgTransferFrom) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgTransferFrom) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Spender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid spender address: %s", err)
	}

	if msg.PairId == 0 {
		return sdkerrors.Wrap(ErrPairNotFound, "pair id cannot be zero")
	}

	if _, err := sdk.AccAddressFromBech32(msg.From); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid source address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.To); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
	}

	if msg.Value.IsNil() || msg.Value.LTE(math.ZeroInt()) {
		return sdkerrors.Wrap(ErrInvalidAmount, "value must be positive")
	}

	return nil
}
