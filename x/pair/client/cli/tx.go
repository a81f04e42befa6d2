package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/pairswap/pairswap/x/pair/types"
)

// GetTxCmd returns the transaction commands for the pair module
func GetTxCmd() *cobra.Command {
	pairTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Pair transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	pairTxCmd.AddCommand(
		CmdCreatePair(),
		CmdMint(),
		CmdBurn(),
		CmdSwap(),
		CmdSkim(),
		CmdSync(),
		CmdTransfer(),
		CmdApprove(),
		CmdTransferFrom(),
	)

	return pairTxCmd
}

// CmdCreatePair returns a CLI command handler for registering a new pair
func CmdCreatePair() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pair [token0] [token1]",
		Short: "Create a new token pair",
		Long: `Create a new empty pair for two token denoms. The pair starts with zero
reserves; deposit both tokens to its reserve account and run mint to seed it.

Example:
  $ pairswapd tx pair create-pair uatom uusdt --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgCreatePair(clientCtx.GetFromAddress().String(), args[0], args[1])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdMint returns a CLI command handler for minting liquidity receipts
func CmdMint() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mint [pair-id] [to]",
		Short: "Mint liquidity receipts for tokens deposited to the pair",
		Long: `Convert tokens deposited to the pair's reserve account since the last
reserve snapshot into liquidity receipts credited to the recipient.

Example:
  $ pairswapd tx pair mint 1 cosmos1... --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			pairID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pair ID: %w", err)
			}

			msg := types.NewMsgMint(clientCtx.GetFromAddress().String(), pairID, args[1])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdBurn returns a CLI command handler for redeeming liquidity receipts
func CmdBurn() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "burn [pair-id]",
		Short: "Redeem your full liquidity receipt balance for underlying tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			pairID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pair ID: %w", err)
			}

			sender := clientCtx.GetFromAddress().String()
			msg := types.NewMsgBurn(sender, pairID, sender)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwap returns a CLI command handler for executing a swap
func CmdSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [pair-id] [amount0-out] [amount1-out] [to]",
		Short: "Swap against a pair",
		Long: `Withdraw the requested output amounts from a pair. Input tokens must
already sit in the pair's reserve account, or be supplied by a registered
flash-swap callee passed via --callee-data (hex).

Example:
  $ pairswapd tx pair swap 1 0 997 cosmos1... --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			pairID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pair ID: %w", err)
			}

			amount0Out, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount0-out: %s (must be integer)", args[1])
			}
			amount1Out, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount1-out: %s (must be integer)", args[2])
			}

			calleeDataHex, err := cmd.Flags().GetString(flagCalleeData)
			if err != nil {
				return err
			}
			var calleeData []byte
			if calleeDataHex != "" {
				calleeData, err = hex.DecodeString(calleeDataHex)
				if err != nil {
					return fmt.Errorf("invalid callee data: %w", err)
				}
			}

			msg := types.NewMsgSwap(clientCtx.GetFromAddress().String(), pairID, amount0Out, amount1Out, args[3], calleeData)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagCalleeData, "", "hex-encoded data passed to the recipient's flash-swap callee")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSkim returns a CLI command handler for the authority skim operation
func CmdSkim() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skim [pair-id] [to]",
		Short: "Transfer pair balance in excess of recorded reserves (authority only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			pairID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pair ID: %w", err)
			}

			msg := types.NewMsgSkim(clientCtx.GetFromAddress().String(), pairID, args[1])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSync returns a CLI command handler for the authority sync operation
func CmdSync() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync [pair-id]",
		Short: "Reconcile recorded reserves with actual balances (authority only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			pairID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pair ID: %w", err)
			}

			msg := types.NewMsgSync(clientCtx.GetFromAddress().String(), pairID)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdTransfer returns a CLI command handler for moving receipt balance
func CmdTransfer() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer [pair-id] [to] [value]",
		Short: "Transfer liquidity receipt balance to another account",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			pairID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pair ID: %w", err)
			}

			value, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid value: %s (must be integer)", args[2])
			}

			msg := types.NewMsgTransfer(clientCtx.GetFromAddress().String(), pairID, args[1], value)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdApprove returns a CLI command handler for setting a spender allowance
func CmdApprove() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve [pair-id] [spender] [value]",
		Short: "Approve a spender over your liquidity receipt balance",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			pairID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pair ID: %w", err)
			}

			value, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid value: %s (must be integer)", args[2])
			}

			msg := types.NewMsgApprove(clientCtx.GetFromAddress().String(), pairID, args[1], value)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdTransferFrom returns a CLI command handler for spending an allowance
func CmdTransferFrom() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer-from [pair-id] [from] [to] [value]",
		Short: "Transfer receipt balance on behalf of its owner using an allowance",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			pairID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pair ID: %w", err)
			}

			value, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid value: %s (must be integer)", args[3])
			}

			msg := types.NewMsgTransferFrom(clientCtx.GetFromAddress().String(), pairID, args[1], args[2], value)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
