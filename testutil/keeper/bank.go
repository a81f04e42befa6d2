package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MockBankKeeper is an in-memory token ledger for tests. It tracks balances
// per account and supports an optional transfer hook so tests can interpose
// behavior in the middle of a send, mirroring a ledger callback.
type MockBankKeeper struct {
	balances map[string]sdk.Coins

	// SendHook, when set, runs before each transfer is applied. Returning
	// an error aborts the transfer.
	SendHook func(ctx context.Context, from, to sdk.AccAddress, amt sdk.Coins) error
}

// NewMockBankKeeper creates an empty mock bank keeper
func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{balances: make(map[string]sdk.Coins)}
}

// GetBalance returns the balance of addr for the given denom
func (m *MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	coins := m.balances[addr.String()]
	return sdk.NewCoin(denom, coins.AmountOf(denom))
}

// SendCoins moves coins between accounts, failing on insufficient funds
func (m *MockBankKeeper) SendCoins(ctx context.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	if m.SendHook != nil {
		if err := m.SendHook(ctx, from, to, amt); err != nil {
			return err
		}
	}

	fromCoins := m.balances[from.String()]
	newFrom, negative := fromCoins.SafeSub(amt...)
	if negative {
		return fmt.Errorf("insufficient funds: %s has %s, needs %s", from, fromCoins, amt)
	}

	m.balances[from.String()] = newFrom
	m.balances[to.String()] = m.balances[to.String()].Add(amt...)
	return nil
}

// FundAccount credits coins to an account out of thin air (test setup)
func (m *MockBankKeeper) FundAccount(addr sdk.AccAddress, amt sdk.Coins) {
	m.balances[addr.String()] = m.balances[addr.String()].Add(amt...)
}

// AllBalances returns every coin held by an account
func (m *MockBankKeeper) AllBalances(addr sdk.AccAddress) sdk.Coins {
	return m.balances[addr.String()]
}
