package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// LPPosition is a genesis record of one account's liquidity receipt
// balance in one pair.
type LPPosition struct {
	PairId  uint64      `json:"pair_id"`
	Address string      `json:"address"`
	Balance sdkmath.Int `json:"balance"`
}

// LPAllowance is a genesis record of one approved spender allowance.
type LPAllowance struct {
	PairId  uint64      `json:"pair_id"`
	Owner   string      `json:"owner"`
	Spender string      `json:"spender"`
	Value   sdkmath.Int `json:"value"`
}

// GenesisState defines the pair module's genesis state.
type GenesisState struct {
	Pairs      []Pair        `json:"pairs"`
	NextPairId uint64        `json:"next_pair_id"`
	Positions  []LPPosition  `json:"positions"`
	Allowances []LPAllowance `json:"allowances"`
}

// DefaultGenesis returns the default genesis state for the pair module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Pairs:      []Pair{},
		NextPairId: 1,
		Positions:  []LPPosition{},
		Allowances: []LPAllowance{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if gs.NextPairId == 0 {
		return fmt.Errorf("next pair id must be positive")
	}

	seenIDs := make(map[uint64]struct{}, len(gs.Pairs))
	seenDenoms := make(map[string]struct{}, len(gs.Pairs))
	for _, pair := range gs.Pairs {
		if err := pair.Validate(); err != nil {
			return fmt.Errorf("invalid pair %d: %w", pair.Id, err)
		}
		if pair.Id >= gs.NextPairId {
			return fmt.Errorf("pair id %d not below next pair id %d", pair.Id, gs.NextPairId)
		}
		if _, ok := seenIDs[pair.Id]; ok {
			return fmt.Errorf("duplicate pair id %d", pair.Id)
		}
		seenIDs[pair.Id] = struct{}{}

		denomKey := string(PairByDenomsKey(pair.Token0, pair.Token1))
		if _, ok := seenDenoms[denomKey]; ok {
			return fmt.Errorf("duplicate pair for denoms %s/%s", pair.Token0, pair.Token1)
		}
		seenDenoms[denomKey] = struct{}{}
	}

	// LP balances must reference known pairs and add up to each pair's
	// recorded supply.
	supplySums := make(map[uint64]sdkmath.Int, len(gs.Pairs))
	for _, pos := range gs.Positions {
		if _, ok := seenIDs[pos.PairId]; !ok {
			return fmt.Errorf("position references unknown pair %d", pos.PairId)
		}
		if pos.Address == "" {
			return fmt.Errorf("position for pair %d missing address", pos.PairId)
		}
		if pos.Balance.IsNil() || !pos.Balance.IsPositive() {
			return fmt.Errorf("position for pair %d must have positive balance", pos.PairId)
		}
		sum, ok := supplySums[pos.PairId]
		if !ok {
			sum = sdkmath.ZeroInt()
		}
		supplySums[pos.PairId] = sum.Add(pos.Balance)
	}
	for _, pair := range gs.Pairs {
		sum, ok := supplySums[pair.Id]
		if !ok {
			sum = sdkmath.ZeroInt()
		}
		if !sum.Equal(pair.TotalSupply) {
			return fmt.Errorf("pair %d supply mismatch: positions sum to %s, recorded %s",
				pair.Id, sum, pair.TotalSupply)
		}
	}

	for _, allowance := range gs.Allowances {
		if _, ok := seenIDs[allowance.PairId]; !ok {
			return fmt.Errorf("allowance references unknown pair %d", allowance.PairId)
		}
		if allowance.Owner == "" || allowance.Spender == "" {
			return fmt.Errorf("allowance for pair %d missing owner or spender", allowance.PairId)
		}
		if allowance.Value.IsNil() || !allowance.Value.IsPositive() {
			return fmt.Errorf("allowance for pair %d must have positive value", allowance.PairId)
		}
	}

	return nil
}
