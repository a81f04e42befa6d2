package types

import (
	"cosmossdk.io/math"
)

// Pair is the persisted state of a constant-product pool for one token
// pair. Reserve0 and Reserve1 are a cached snapshot of the pair's reserve
// account balances; they may lag the actual balances until the next
// mint/burn/swap/sync updates them, and must never exceed them.
type Pair struct {
	Id          uint64   `json:"id"`
	Token0      string   `json:"token0"`
	Token1      string   `json:"token1"`
	Reserve0    math.Int `json:"reserve0"`
	Reserve1    math.Int `json:"reserve1"`
	TotalSupply math.Int `json:"total_supply"`
}

// NewPair returns an empty pair for the given sorted denom pair.
func NewPair(id uint64, token0, token1 string) Pair {
	return Pair{
		Id:          id,
		Token0:      token0,
		Token1:      token1,
		Reserve0:    math.ZeroInt(),
		Reserve1:    math.ZeroInt(),
		TotalSupply: math.ZeroInt(),
	}
}

// Validate checks structural consistency of a pair record.
func (p Pair) Validate() error {
	if p.Id == 0 {
		return ErrInvalidPairState.Wrap("pair id cannot be zero")
	}
	if p.Token0 == "" || p.Token1 == "" {
		return ErrInvalidTokenPair.Wrap("token denoms cannot be empty")
	}
	if p.Token0 == p.Token1 {
		return ErrInvalidTokenPair.Wrap("token denoms must differ")
	}
	if p.Token0 > p.Token1 {
		return ErrInvalidTokenPair.Wrapf("token denoms out of order: %s > %s", p.Token0, p.Token1)
	}
	if p.Reserve0.IsNil() || p.Reserve1.IsNil() || p.TotalSupply.IsNil() {
		return ErrInvalidPairState.Wrap("nil amount")
	}
	if p.Reserve0.IsNegative() {
		return ErrInvalidPairState.Wrapf("negative reserve0: %s", p.Reserve0)
	}
	if p.Reserve1.IsNegative() {
		return ErrInvalidPairState.Wrapf("negative reserve1: %s", p.Reserve1)
	}
	if p.TotalSupply.IsNegative() {
		return ErrInvalidPairState.Wrapf("negative total supply: %s", p.TotalSupply)
	}
	// Supply and reserves appear and disappear together.
	if p.TotalSupply.IsZero() && (!p.Reserve0.IsZero() || !p.Reserve1.IsZero()) {
		return ErrInvalidPairState.Wrap("pair has reserves but zero supply")
	}
	if !p.TotalSupply.IsZero() && (p.Reserve0.IsZero() || p.Reserve1.IsZero()) {
		return ErrInvalidPairState.Wrap("pair has supply but zero reserves")
	}
	return nil
}

// K returns the current constant product reserve0 * reserve1.
func (p Pair) K() math.Int {
	return p.Reserve0.Mul(p.Reserve1)
}
