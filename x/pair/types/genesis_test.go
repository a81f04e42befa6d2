package types

import (
	"strings"
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

func TestDefaultGenesis(t *testing.T) {
	genesis := DefaultGenesis()

	if genesis == nil {
		t.Fatal("DefaultGenesis() returned nil")
	}

	if genesis.NextPairId != 1 {
		t.Errorf("Expected NextPairId to be 1, got %d", genesis.NextPairId)
	}

	if genesis.Pairs == nil {
		t.Error("Pairs slice is nil")
	}

	if genesis.Positions == nil {
		t.Error("Positions slice is nil")
	}

	if genesis.Allowances == nil {
		t.Error("Allowances slice is nil")
	}

	if err := genesis.Validate(); err != nil {
		t.Errorf("Default genesis failed validation: %v", err)
	}
}

// seededGenesis returns a valid state with one funded pair so cases can
// break exactly one property at a time.
func seededGenesis() GenesisState {
	holder := sdk.AccAddress([]byte("holder--------------")).String()
	locked := PairAddress(1).String()

	return GenesisState{
		Pairs: []Pair{
			{
				Id:          1,
				Token0:      "uatom",
				Token1:      "uusdt",
				Reserve0:    sdkmath.NewInt(10000),
				Reserve1:    sdkmath.NewInt(10000),
				TotalSupply: sdkmath.NewInt(10000),
			},
		},
		NextPairId: 2,
		Positions: []LPPosition{
			{PairId: 1, Address: holder, Balance: sdkmath.NewInt(9000)},
			{PairId: 1, Address: locked, Balance: sdkmath.NewInt(1000)},
		},
		Allowances: []LPAllowance{},
	}
}

func TestGenesisState_Validate(t *testing.T) {
	spender := sdk.AccAddress([]byte("spender-------------")).String()

	tests := []struct {
		name    string
		mutate  func(*GenesisState)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid seeded state",
			mutate:  func(gs *GenesisState) {},
			wantErr: false,
		},
		{
			name: "valid with allowance",
			mutate: func(gs *GenesisState) {
				gs.Allowances = append(gs.Allowances, LPAllowance{
					PairId:  1,
					Owner:   gs.Positions[0].Address,
					Spender: spender,
					Value:   sdkmath.NewInt(500),
				})
			},
			wantErr: false,
		},
		{
			name:    "zero next pair id",
			mutate:  func(gs *GenesisState) { gs.NextPairId = 0 },
			wantErr: true,
			errMsg:  "next pair id must be positive",
		},
		{
			name:    "pair id not below counter",
			mutate:  func(gs *GenesisState) { gs.NextPairId = 1 },
			wantErr: true,
			errMsg:  "not below next pair id",
		},
		{
			name: "invalid pair record",
			mutate: func(gs *GenesisState) {
				gs.Pairs[0].Token1 = gs.Pairs[0].Token0
			},
			wantErr: true,
			errMsg:  "invalid pair",
		},
		{
			name: "duplicate pair id",
			mutate: func(gs *GenesisState) {
				dup := gs.Pairs[0]
				dup.Token0, dup.Token1 = "ufoo", "uxyz"
				gs.Pairs = append(gs.Pairs, dup)
			},
			wantErr: true,
			errMsg:  "duplicate pair id",
		},
		{
			name: "duplicate denom pair",
			mutate: func(gs *GenesisState) {
				dup := gs.Pairs[0]
				dup.Id = 2
				gs.Pairs = append(gs.Pairs, dup)
				gs.NextPairId = 3
				// Keep the supply check satisfied for the clone.
				for _, pos := range []LPPosition{
					{PairId: 2, Address: gs.Positions[0].Address, Balance: sdkmath.NewInt(10000)},
				} {
					gs.Positions = append(gs.Positions, pos)
				}
			},
			wantErr: true,
			errMsg:  "duplicate pair for denoms",
		},
		{
			name: "position references unknown pair",
			mutate: func(gs *GenesisState) {
				gs.Positions = append(gs.Positions, LPPosition{
					PairId:  7,
					Address: gs.Positions[0].Address,
					Balance: sdkmath.NewInt(1),
				})
			},
			wantErr: true,
			errMsg:  "position references unknown pair",
		},
		{
			name: "position with zero balance",
			mutate: func(gs *GenesisState) {
				gs.Positions[0].Balance = sdkmath.ZeroInt()
			},
			wantErr: true,
			errMsg:  "positive balance",
		},
		{
			name: "positions do not cover supply",
			mutate: func(gs *GenesisState) {
				gs.Positions = gs.Positions[:1]
			},
			wantErr: true,
			errMsg:  "supply mismatch",
		},
		{
			name: "allowance references unknown pair",
			mutate: func(gs *GenesisState) {
				gs.Allowances = append(gs.Allowances, LPAllowance{
					PairId:  9,
					Owner:   gs.Positions[0].Address,
					Spender: spender,
					Value:   sdkmath.NewInt(1),
				})
			},
			wantErr: true,
			errMsg:  "allowance references unknown pair",
		},
		{
			name: "allowance with zero value",
			mutate: func(gs *GenesisState) {
				gs.Allowances = append(gs.Allowances, LPAllowance{
					PairId:  1,
					Owner:   gs.Positions[0].Address,
					Spender: spender,
					Value:   sdkmath.ZeroInt(),
				})
			},
			wantErr: true,
			errMsg:  "positive value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := seededGenesis()
			tt.mutate(&gs)

			err := gs.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != nil && tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Validate() error = %v, want error containing %q", err, tt.errMsg)
			}
		})
	}
}
