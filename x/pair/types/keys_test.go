package types

import (
	"bytes"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

func TestKeyPrefixesAreDistinct(t *testing.T) {
	prefixes := [][]byte{
		PairKeyPrefix,
		PairCountKey,
		PairByDenomsPrefix,
		LPBalancePrefix,
		LPAllowancePrefix,
		LockPrefix,
	}

	seen := make(map[string]struct{}, len(prefixes))
	for _, prefix := range prefixes {
		if len(prefix) == 0 {
			t.Fatal("empty store prefix")
		}
		if _, ok := seen[string(prefix)]; ok {
			t.Fatalf("duplicate store prefix %x", prefix)
		}
		seen[string(prefix)] = struct{}{}
	}
}

func TestPairKey(t *testing.T) {
	if bytes.Equal(PairKey(1), PairKey(2)) {
		t.Error("PairKey must differ per pair id")
	}
	if !bytes.HasPrefix(PairKey(7), PairKeyPrefix) {
		t.Error("PairKey must start with PairKeyPrefix")
	}
	if len(PairKey(1)) != len(PairKeyPrefix)+8 {
		t.Errorf("PairKey length = %d, want prefix plus 8-byte id", len(PairKey(1)))
	}
}

func TestPairByDenomsKeyOrderIndependent(t *testing.T) {
	forward := PairByDenomsKey("uatom", "uusdt")
	reverse := PairByDenomsKey("uusdt", "uatom")

	if !bytes.Equal(forward, reverse) {
		t.Errorf("denom index keys differ by argument order: %x vs %x", forward, reverse)
	}

	other := PairByDenomsKey("uatom", "uosmo")
	if bytes.Equal(forward, other) {
		t.Error("different denom pairs must map to different keys")
	}
}

func TestPairByDenomsKeySeparator(t *testing.T) {
	// Without a separator "ab"+"c" and "a"+"bc" would collide.
	left := PairByDenomsKey("ab", "c")
	right := PairByDenomsKey("a", "bc")

	if bytes.Equal(left, right) {
		t.Errorf("adjacent denom pairs collide: %x", left)
	}
}

func TestLPBalanceKey(t *testing.T) {
	owner := sdk.AccAddress([]byte("owner---------------"))
	other := sdk.AccAddress([]byte("other---------------"))

	if bytes.Equal(LPBalanceKey(1, owner), LPBalanceKey(2, owner)) {
		t.Error("balance keys must differ per pair")
	}
	if bytes.Equal(LPBalanceKey(1, owner), LPBalanceKey(1, other)) {
		t.Error("balance keys must differ per owner")
	}
	if !bytes.HasPrefix(LPBalanceKey(3, owner), LPBalanceByPairPrefix(3)) {
		t.Error("balance key must extend the per-pair iteration prefix")
	}
}

func TestLPAllowanceKeyRoundTrip(t *testing.T) {
	owner := sdk.AccAddress([]byte("owner---------------"))
	spender := sdk.AccAddress([]byte("spender-------------"))

	key := LPAllowanceKey(4, owner, spender)
	prefix := LPAllowanceByPairPrefix(4)

	if !bytes.HasPrefix(key, prefix) {
		t.Fatal("allowance key must extend the per-pair iteration prefix")
	}

	gotOwner, gotSpender := ParseLPAllowanceKey(key[len(prefix):])
	if !gotOwner.Equals(owner) {
		t.Errorf("parsed owner = %s, want %s", gotOwner, owner)
	}
	if !gotSpender.Equals(spender) {
		t.Errorf("parsed spender = %s, want %s", gotSpender, spender)
	}
}

func TestLPAllowanceKeyNoCollision(t *testing.T) {
	a := sdk.AccAddress([]byte("account-a-----------"))
	b := sdk.AccAddress([]byte("account-b-----------"))

	// The owner is length-prefixed, so (a,b) and (b,a) cannot collide.
	if bytes.Equal(LPAllowanceKey(1, a, b), LPAllowanceKey(1, b, a)) {
		t.Error("allowance keys for swapped owner/spender collide")
	}
}

func TestPairAddress(t *testing.T) {
	first := PairAddress(1)
	second := PairAddress(2)

	if first.Equals(second) {
		t.Error("pair reserve addresses must differ per pair")
	}
	if err := sdk.VerifyAddressFormat(first); err != nil {
		t.Errorf("pair address has invalid format: %v", err)
	}
	if !PairAddress(1).Equals(first) {
		t.Error("pair address derivation must be deterministic")
	}
}

func TestLockKey(t *testing.T) {
	if bytes.Equal(LockKey(1), LockKey(2)) {
		t.Error("lock keys must differ per pair")
	}
	if !bytes.HasPrefix(LockKey(1), LockPrefix) {
		t.Error("lock key must start with LockPrefix")
	}
}
