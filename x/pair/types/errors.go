package types

import (
	"cosmossdk.io/errors"
)

// Pair module sentinel errors
var (
	ErrPairNotFound                = errors.Register(ModuleName, 1, "pair not found")
	ErrPairAlreadyExists           = errors.Register(ModuleName, 2, "pair already exists")
	ErrInvalidTokenPair            = errors.Register(ModuleName, 3, "invalid token pair")
	ErrInvalidAmount               = errors.Register(ModuleName, 4, "invalid amount")
	ErrInvalidAddress              = errors.Register(ModuleName, 5, "invalid address")
	ErrInvalidPairState            = errors.Register(ModuleName, 6, "invalid pair state")
	ErrUnauthorized                = errors.Register(ModuleName, 7, "unauthorized")
	ErrInsufficientLiquidityMinted = errors.Register(ModuleName, 8, "insufficient liquidity minted")
	ErrInsufficientLiquidityBurned = errors.Register(ModuleName, 9, "insufficient liquidity burned")
	ErrInsufficientOutputAmount    = errors.Register(ModuleName, 10, "insufficient output amount")
	ErrInsufficientLiquidity       = errors.Register(ModuleName, 11, "insufficient liquidity")
	ErrInvalidRecipient            = errors.Register(ModuleName, 12, "invalid recipient")
	ErrInsufficientInputAmount     = errors.Register(ModuleName, 13, "insufficient input amount")
	ErrInvariantViolation          = errors.Register(ModuleName, 14, "constant product invariant violated")
	ErrInsufficientBalance         = errors.Register(ModuleName, 15, "insufficient balance")
	ErrInsufficientAllowance       = errors.Register(ModuleName, 16, "insufficient allowance")
	ErrReentrancy                  = errors.Register(ModuleName, 17, "reentrant call")
	ErrOverflow                    = errors.Register(ModuleName, 18, "arithmetic overflow")
	ErrUnderflow                   = errors.Register(ModuleName, 19, "arithmetic underflow")
	ErrNoSwapCallee                = errors.Register(ModuleName, 20, "no swap callee registered")
)
