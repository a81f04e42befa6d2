package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreatePair{}, "pair/MsgCreatePair", nil)
	cdc.RegisterConcrete(&MsgMint{}, "pair/MsgMint", nil)
	cdc.RegisterConcrete(&MsgBurn{}, "pair/MsgBurn", nil)
	cdc.RegisterConcrete(&MsgSwap{}, "pair/MsgSwap", nil)
	cdc.RegisterConcrete(&MsgSkim{}, "pair/MsgSkim", nil)
	cdc.RegisterConcrete(&MsgSync{}, "pair/MsgSync", nil)
	cdc.RegisterConcrete(&MsgTransfer{}, "pair/MsgTransfer", nil)
	cdc.RegisterConcrete(&MsgApprove{}, "pair/MsgApprove", nil)
	cdc.RegisterConcrete(&MsgTransferFrom{}, "pair/MsgTransferFrom", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreatePair{},
		&MsgMint{},
		&MsgBurn{},
		&MsgSwap{},
		&MsgSkim{},
		&MsgSync{},
		&MsgTransfer{},
		&MsgApprove{},
		&MsgTransferFrom{},
	)
}

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
