package types

import "fmt"

// The module's messages are hand-written rather than generated from proto
// definitions, so the gogoproto Message methods are implemented here to keep
// them usable as sdk.Msg values with the codec and tx machinery.

func (m *MsgCreatePair) Reset()         { *m = MsgCreatePair{} }
func (m *MsgCreatePair) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgCreatePair) ProtoMessage()    {}

func (m *MsgMint) Reset()         { *m = MsgMint{} }
func (m *MsgMint) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgMint) ProtoMessage()    {}

func (m *MsgBurn) Reset()         { *m = MsgBurn{} }
func (m *MsgBurn) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgBurn) ProtoMessage()    {}

func (m *MsgSwap) Reset()         { *m = MsgSwap{} }
func (m *MsgSwap) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgSwap) ProtoMessage()    {}

func (m *MsgSkim) Reset()         { *m = MsgSkim{} }
func (m *MsgSkim) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgSkim) ProtoMessage()    {}

func (m *MsgSync) Reset()         { *m = MsgSync{} }
func (m *MsgSync) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgSync) ProtoMessage()    {}

func (m *MsgTransfer) Reset()         { *m = MsgTransfer{} }
func (m *MsgTransfer) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgTransfer) ProtoMessage()    {}

func (m *MsgApprove) Reset()         { *m = MsgApprove{} }
func (m *MsgApprove) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgApprove) ProtoMessage()    {}

func (m *MsgTransferFrom) Reset()         { *m = MsgTransferFrom{} }
func (m *MsgTransferFrom) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgTransferFrom) ProtoMessage()    {}
