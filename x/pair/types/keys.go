package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "pair"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// MinimumLiquidity is the liquidity floor locked forever on the first mint
// of a pair. It keeps the pool from ever returning to a zero-supply state.
const MinimumLiquidity = 1000

// Store key prefixes
var (
	PairKeyPrefix      = []byte{0x01} // prefix for pair records
	PairCountKey       = []byte{0x02} // key for the next pair id counter
	PairByDenomsPrefix = []byte{0x03} // prefix for pair lookup by denom pair
	LPBalancePrefix    = []byte{0x04} // prefix for LP receipt balances
	LPAllowancePrefix  = []byte{0x05} // prefix for LP receipt allowances
	LockPrefix         = []byte{0x06} // prefix for reentrancy locks
)

// PairKey returns the store key for a pair record
func PairKey(pairID uint64) []byte {
	return append(PairKeyPrefix, sdk.Uint64ToBigEndian(pairID)...)
}

// PairByDenomsKey returns the index key for pair lookup by its denom pair.
// Denoms are sorted so lookups are order-independent.
func PairByDenomsKey(token0, token1 string) []byte {
	if token0 > token1 {
		token0, token1 = token1, token0
	}
	key := append(PairByDenomsPrefix, []byte(token0)...)
	key = append(key, []byte("/")...)
	return append(key, []byte(token1)...)
}

// LPBalanceKey returns the store key for an account's LP receipt balance
func LPBalanceKey(pairID uint64, owner sdk.AccAddress) []byte {
	key := append(LPBalancePrefix, sdk.Uint64ToBigEndian(pairID)...)
	return append(key, owner.Bytes()...)
}

// LPBalanceByPairPrefix returns the iteration prefix for a pair's LP balances
func LPBalanceByPairPrefix(pairID uint64) []byte {
	return append(LPBalancePrefix, sdk.Uint64ToBigEndian(pairID)...)
}

// LPAllowanceKey returns the store key for an LP receipt allowance
func LPAllowanceKey(pairID uint64, owner, spender sdk.AccAddress) []byte {
	key := append(LPAllowancePrefix, sdk.Uint64ToBigEndian(pairID)...)
	key = append(key, address.MustLengthPrefix(owner.Bytes())...)
	return append(key, spender.Bytes()...)
}

// LPAllowanceByPairPrefix returns the iteration prefix for a pair's LP allowances
func LPAllowanceByPairPrefix(pairID uint64) []byte {
	return append(LPAllowancePrefix, sdk.Uint64ToBigEndian(pairID)...)
}

// ParseLPAllowanceKey extracts owner and spender from the bytes following
// LPAllowanceByPairPrefix in an allowance key.
func ParseLPAllowanceKey(suffix []byte) (owner, spender sdk.AccAddress) {
	ownerLen := int(suffix[0])
	owner = sdk.AccAddress(suffix[1 : 1+ownerLen])
	spender = sdk.AccAddress(suffix[1+ownerLen:])
	return owner, spender
}

// LockKey returns the store key for a pair's reentrancy lock
func LockKey(pairID uint64) []byte {
	return append(LockPrefix, sdk.Uint64ToBigEndian(pairID)...)
}

// PairAddress returns the reserve account address owned by a pair. Each pair
// holds its token balances under its own address so that balance-delta
// accounting never aliases across pairs.
func PairAddress(pairID uint64) sdk.AccAddress {
	return address.Module(ModuleName, sdk.Uint64ToBigEndian(pairID))
}
