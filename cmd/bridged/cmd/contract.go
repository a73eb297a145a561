package cmd

import (
	"bytes"
	"encoding/json"

	"github.com/cosmos/cosmos-sdk/client"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"github.com/paw-chain/trading-bridge/app"
	"github.com/paw-chain/trading-bridge/x/tradingbridge/types"
)

const (
	flagFrom  = "from"
	flagFunds = "funds"
)

// invocationOutput is printed after every state changing contract call
type invocationOutput struct {
	Height   int64           `json:"height"`
	Response *types.Response `json:"response"`
	Events   sdk.Events      `json:"events"`
}

func newInvocationOutput(ctx sdk.Context, res *types.Response) invocationOutput {
	return invocationOutput{
		Height:   ctx.BlockHeight(),
		Response: res,
		Events:   ctx.EventManager().Events(),
	}
}

// ContractCmd returns the trading bridge contract commands
func ContractCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "contract",
		Short:                      "Invoke the trading bridge contract",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdInstantiate(cfg),
		CmdExecute(cfg),
		CmdMigrate(cfg),
		CmdQuery(cfg),
	)

	return cmd
}

// CmdInstantiate creates the contract state
func CmdInstantiate(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instantiate [instantiate-msg-json]",
		Short: "Instantiate the contract",
		Example: `bridged contract instantiate '{"contract_name":"bridge","deposit_marker":{"name":"udeposit","precision":6},` +
			`"trading_marker":{"name":"utrading","precision":2},"required_deposit_attributes":[],"required_withdraw_attributes":[]}' --from paw1...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var msg types.InstantiateMsg
			if err := decodeMsg(args[0], &msg); err != nil {
				return err
			}
			sender, funds, err := senderAndFunds(cmd)
			if err != nil {
				return err
			}

			return runInBlock(cmd, cfg, true, func(bridge *app.BridgeApp, ctx sdk.Context) (interface{}, error) {
				res, err := bridge.TradingBridgeKeeper.Instantiate(ctx, sender, funds, msg)
				if err != nil {
					return nil, err
				}
				return newInvocationOutput(ctx, res), nil
			})
		},
	}

	addSenderFlags(cmd)
	return cmd
}

// CmdExecute runs one execute route
func CmdExecute(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "execute [execute-msg-json]",
		Short:   "Execute a contract route",
		Example: `bridged contract execute '{"fund_trading":{"trade_amount":"1234567"}}' --from paw1...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var msg types.ExecuteMsg
			if err := decodeMsg(args[0], &msg); err != nil {
				return err
			}
			sender, funds, err := senderAndFunds(cmd)
			if err != nil {
				return err
			}

			return runInBlock(cmd, cfg, true, func(bridge *app.BridgeApp, ctx sdk.Context) (interface{}, error) {
				res, err := bridge.TradingBridgeKeeper.Execute(ctx, sender, funds, msg)
				if err != nil {
					return nil, err
				}
				return newInvocationOutput(ctx, res), nil
			})
		},
	}

	addSenderFlags(cmd)
	return cmd
}

// CmdMigrate upgrades the stored contract to the version the host runs
func CmdMigrate(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate [migrate-msg-json]",
		Short: "Migrate the contract to --contract_version",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := types.NewContractUpgradeMsg()
			if len(args) == 1 {
				msg = types.MigrateMsg{}
				if err := decodeMsg(args[0], &msg); err != nil {
					return err
				}
			}

			return runInBlock(cmd, cfg, true, func(bridge *app.BridgeApp, ctx sdk.Context) (interface{}, error) {
				res, err := bridge.TradingBridgeKeeper.Migrate(ctx, msg)
				if err != nil {
					return nil, err
				}
				return newInvocationOutput(ctx, res), nil
			})
		},
	}
}

// CmdQuery reads the contract state
func CmdQuery(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "query [query-msg-json]",
		Short: "Query the contract, defaults to the contract state",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := types.NewQueryContractStateMsg()
			if len(args) == 1 {
				msg = types.QueryMsg{}
				if err := decodeMsg(args[0], &msg); err != nil {
					return err
				}
			}

			return runInBlock(cmd, cfg, false, func(bridge *app.BridgeApp, ctx sdk.Context) (interface{}, error) {
				return bridge.TradingBridgeKeeper.Query(ctx, msg)
			})
		},
	}
}

func addSenderFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagFrom, "", "bech32 address of the sender")
	cmd.Flags().String(flagFunds, "", "coins sent along with the invocation")
	_ = cmd.MarkFlagRequired(flagFrom)
}

func senderAndFunds(cmd *cobra.Command) (sdk.AccAddress, sdk.Coins, error) {
	from, err := cmd.Flags().GetString(flagFrom)
	if err != nil {
		return nil, nil, err
	}
	sender, err := sdk.AccAddressFromBech32(from)
	if err != nil {
		return nil, nil, types.ErrInvalidAccount.Wrapf("sender %q: %s", from, err)
	}

	fundsStr, err := cmd.Flags().GetString(flagFunds)
	if err != nil {
		return nil, nil, err
	}
	funds, err := sdk.ParseCoinsNormalized(fundsStr)
	if err != nil {
		return nil, nil, types.ErrInvalidFunds.Wrapf("funds %q: %s", fundsStr, err)
	}
	return sender, funds, nil
}

// decodeMsg strictly decodes a message; unknown routes and fields are
// rejected rather than ignored.
func decodeMsg(raw string, msg interface{}) error {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(msg); err != nil {
		return types.ErrInvalidFormat.Wrapf("failed to decode message: %s", err)
	}
	return nil
}
