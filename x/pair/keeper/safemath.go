package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/pairswap/pairswap/x/pair/types"
)

// maxInt256 bounds every arithmetic result at 2^256, matching the width of
// the balances the module accounts for.
var maxInt256 = new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)

// SafeAdd adds two math.Int values with overflow checking
func SafeAdd(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Add(a.BigInt(), b.BigInt())

	if result.Cmp(maxInt256) >= 0 {
		return math.Int{}, types.ErrOverflow.Wrapf("addition of %s and %s exceeds maximum value", a, b)
	}

	return math.NewIntFromBigInt(result), nil
}

// SafeSub subtracts two math.Int values with underflow checking
func SafeSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, types.ErrUnderflow.Wrapf("cannot subtract %s from %s", b, a)
	}

	result := new(big.Int).Sub(a.BigInt(), b.BigInt())
	return math.NewIntFromBigInt(result), nil
}

// SafeMul multiplies two math.Int values with overflow checking
func SafeMul(a, b math.Int) (math.Int, error) {
	if a.IsZero() || b.IsZero() {
		return math.ZeroInt(), nil
	}

	result := new(big.Int).Mul(a.BigInt(), b.BigInt())

	if result.Cmp(maxInt256) >= 0 {
		return math.Int{}, types.ErrOverflow.Wrapf("multiplication of %s and %s exceeds maximum value", a, b)
	}

	return math.NewIntFromBigInt(result), nil
}

// SafeQuo divides two math.Int values with division by zero checking
func SafeQuo(a, b math.Int) (math.Int, error) {
	if b.IsZero() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("division by zero")
	}

	result := new(big.Int).Quo(a.BigInt(), b.BigInt())
	return math.NewIntFromBigInt(result), nil
}

// SafeMulDiv performs (a * b) / c with overflow protection on the
// intermediate product. Truncates toward zero, matching integer division
// everywhere else in the module.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("division by zero")
	}

	intermediate := new(big.Int).Mul(a.BigInt(), b.BigInt())

	if intermediate.Cmp(maxInt256) >= 0 {
		return math.Int{}, types.ErrOverflow.Wrapf("product of %s and %s exceeds maximum value", a, b)
	}

	result := new(big.Int).Quo(intermediate, c.BigInt())
	return math.NewIntFromBigInt(result), nil
}

// IntegerSqrt returns the floor of the square root of a.
func IntegerSqrt(a math.Int) (math.Int, error) {
	if a.IsNegative() {
		return math.Int{}, types.ErrInvalidAmount.Wrapf("square root of negative value %s", a)
	}

	result := new(big.Int).Sqrt(a.BigInt())
	return math.NewIntFromBigInt(result), nil
}
