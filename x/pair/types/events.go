package types

// Event types for the pair module
const (
	EventTypePairCreated = "pair_created"
	EventTypeSync        = "pair_sync"
	EventTypeMint        = "pair_mint"
	EventTypeBurn        = "pair_burn"
	EventTypeSwap        = "pair_swap"
	EventTypeSkim        = "pair_skim"
	EventTypeTransfer    = "pair_transfer"
	EventTypeApproval    = "pair_approval"
)

// Event attribute keys
const (
	AttributeKeyPairID     = "pair_id"
	AttributeKeyCreator    = "creator"
	AttributeKeyToken0     = "token0"
	AttributeKeyToken1     = "token1"
	AttributeKeyReserve0   = "reserve0"
	AttributeKeyReserve1   = "reserve1"
	AttributeKeySender     = "sender"
	AttributeKeyAmount0    = "amount0"
	AttributeKeyAmount1    = "amount1"
	AttributeKeyAmount0In  = "amount0_in"
	AttributeKeyAmount1In  = "amount1_in"
	AttributeKeyAmount0Out = "amount0_out"
	AttributeKeyAmount1Out = "amount1_out"
	AttributeKeyLiquidity  = "liquidity"
	AttributeKeyTo         = "to"
	AttributeKeyFrom       = "from"
	AttributeKeyValue      = "value"
	AttributeKeyOwner      = "owner"
	AttributeKeySpender    = "spender"
)
