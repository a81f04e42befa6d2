package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/pairswap/pairswap/x/pair/types"
)

// GetQueryCmd returns the query commands for the pair module
func GetQueryCmd() *cobra.Command {
	pairQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the pair module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	pairQueryCmd.AddCommand(
		CmdQueryPair(),
		CmdQueryPairs(),
		CmdQueryBalance(),
		CmdQueryAllowance(),
		CmdQueryTotalSupply(),
	)

	return pairQueryCmd
}

// CmdQueryPair returns a CLI handler for querying a pair by id
func CmdQueryPair() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pair [pair-id]",
		Short: "Query a pair by its identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			pairID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pair ID: %w", err)
			}

			res, err := queryPair(clientCtx, pairID)
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryPairs returns a CLI handler for listing all pairs
func CmdQueryPairs() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "List all pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, err := queryPairs(clientCtx)
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryBalance returns a CLI handler for querying a receipt balance
func CmdQueryBalance() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance [pair-id] [owner]",
		Short: "Query an account's liquidity receipt balance in a pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			pairID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pair ID: %w", err)
			}

			res, err := queryBalance(clientCtx, pairID, args[1])
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryAllowance returns a CLI handler for querying a receipt allowance
func CmdQueryAllowance() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allowance [pair-id] [owner] [spender]",
		Short: "Query a spender's allowance over an owner's receipt balance",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			pairID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pair ID: %w", err)
			}

			res, err := queryAllowance(clientCtx, pairID, args[1], args[2])
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryTotalSupply returns a CLI handler for querying receipt supply
func CmdQueryTotalSupply() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "total-supply [pair-id]",
		Short: "Query the outstanding liquidity receipt supply of a pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			pairID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pair ID: %w", err)
			}

			res, err := queryTotalSupply(clientCtx, pairID)
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
