package cmd

import (
	"github.com/cosmos/cosmos-sdk/client"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"github.com/paw-chain/trading-bridge/app"
	ledgertypes "github.com/paw-chain/trading-bridge/x/ledger/types"
)

const (
	flagAdmin      = "admin"
	flagParent     = "parent"
	flagRestricted = "restricted"
)

// LedgerCmd returns the commands that seed and inspect the local ledger
func LedgerCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "ledger",
		Short:                      "Manage the local ledger",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdCreateMarker(cfg),
		CmdGrantAdministrator(cfg),
		CmdFund(cfg),
		CmdAddAttribute(cfg),
		CmdBindName(cfg),
		CmdMarker(cfg),
		CmdBalance(cfg),
		CmdSupply(cfg),
	)

	return cmd
}

// CmdCreateMarker registers a marker. Without --admin the contract
// administers it.
func CmdCreateMarker(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-marker [denom]",
		Short: "Create a marker for a denom",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adminStrs, err := cmd.Flags().GetStringSlice(flagAdmin)
			if err != nil {
				return err
			}
			admins := []sdk.AccAddress{app.ContractAddress()}
			if len(adminStrs) > 0 {
				admins = admins[:0]
				for _, s := range adminStrs {
					admin, err := parseLedgerAddress(s)
					if err != nil {
						return err
					}
					admins = append(admins, admin)
				}
			}

			return runInBlock(cmd, cfg, true, func(bridge *app.BridgeApp, ctx sdk.Context) (interface{}, error) {
				return bridge.LedgerKeeper.CreateMarker(ctx, args[0], admins...)
			})
		},
	}

	cmd.Flags().StringSlice(flagAdmin, nil, "marker administrators (default: the contract)")
	return cmd
}

// CmdGrantAdministrator adds an administrator to a marker
func CmdGrantAdministrator(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "grant-admin [denom] [address]",
		Short: "Grant marker administration to an address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := parseLedgerAddress(args[1])
			if err != nil {
				return err
			}

			return runInBlock(cmd, cfg, true, func(bridge *app.BridgeApp, ctx sdk.Context) (interface{}, error) {
				if err := bridge.LedgerKeeper.GrantAdministrator(ctx, args[0], admin); err != nil {
					return nil, err
				}
				marker, _ := bridge.LedgerKeeper.GetMarker(ctx, args[0])
				return marker, nil
			})
		},
	}
}

// CmdFund credits an account with newly supplied coins
func CmdFund(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "fund [address] [coins]",
		Short: "Credit an account, increasing supply",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseLedgerAddress(args[0])
			if err != nil {
				return err
			}
			coins, err := sdk.ParseCoinsNormalized(args[1])
			if err != nil {
				return ledgertypes.ErrInvalidCoin.Wrapf("coins %q: %s", args[1], err)
			}

			return runInBlock(cmd, cfg, true, func(bridge *app.BridgeApp, ctx sdk.Context) (interface{}, error) {
				if err := bridge.LedgerKeeper.FundAccount(ctx, addr, coins); err != nil {
					return nil, err
				}
				return balancesOf(bridge, ctx, addr, coins), nil
			})
		},
	}
}

// CmdAddAttribute tags an account with one or more attributes
func CmdAddAttribute(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "add-attribute [address] [name]...",
		Short: "Add attributes to an account",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseLedgerAddress(args[0])
			if err != nil {
				return err
			}
			names := args[1:]

			return runInBlock(cmd, cfg, true, func(bridge *app.BridgeApp, ctx sdk.Context) (interface{}, error) {
				for _, name := range names {
					if err := bridge.LedgerKeeper.AddAttribute(ctx, addr, name); err != nil {
						return nil, err
					}
				}
				attributes, _, err := bridge.LedgerKeeper.GetAccountAttributeNames(ctx, addr, nil)
				if err != nil {
					return nil, err
				}
				return map[string]interface{}{
					"account":    addr.String(),
					"attributes": attributes,
				}, nil
			})
		},
	}
}

// CmdBindName binds a name to an address
func CmdBindName(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bind-name [name] [address]",
		Short: "Bind a name, optionally under --parent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseLedgerAddress(args[1])
			if err != nil {
				return err
			}
			parent, err := cmd.Flags().GetString(flagParent)
			if err != nil {
				return err
			}
			restricted, err := cmd.Flags().GetBool(flagRestricted)
			if err != nil {
				return err
			}

			return runInBlock(cmd, cfg, true, func(bridge *app.BridgeApp, ctx sdk.Context) (interface{}, error) {
				if err := bridge.LedgerKeeper.BindName(ctx, args[0], parent, addr, restricted); err != nil {
					return nil, err
				}
				fullName := args[0]
				if parent != "" {
					fullName += "." + parent
				}
				record, _ := bridge.LedgerKeeper.ResolveName(ctx, fullName)
				return record, nil
			})
		},
	}

	cmd.Flags().String(flagParent, "", "parent name")
	cmd.Flags().Bool(flagRestricted, false, "only the owner may bind children")
	return cmd
}

// CmdMarker shows a marker
func CmdMarker(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "marker [denom]",
		Short: "Show a marker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInBlock(cmd, cfg, false, func(bridge *app.BridgeApp, ctx sdk.Context) (interface{}, error) {
				marker, found := bridge.LedgerKeeper.GetMarker(ctx, args[0])
				if !found {
					return nil, ledgertypes.ErrMarkerNotFound.Wrapf("denom %s", args[0])
				}
				return marker, nil
			})
		},
	}
}

// CmdBalance shows an account balance
func CmdBalance(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "balance [address] [denom]",
		Short: "Show the balance of an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseLedgerAddress(args[0])
			if err != nil {
				return err
			}

			return runInBlock(cmd, cfg, false, func(bridge *app.BridgeApp, ctx sdk.Context) (interface{}, error) {
				return bridge.LedgerKeeper.GetBalance(ctx, addr, args[1]), nil
			})
		},
	}
}

// CmdSupply shows the total supply of a denom
func CmdSupply(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "supply [denom]",
		Short: "Show the total supply of a denom",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInBlock(cmd, cfg, false, func(bridge *app.BridgeApp, ctx sdk.Context) (interface{}, error) {
				return bridge.LedgerKeeper.GetSupply(ctx, args[0]), nil
			})
		},
	}
}

func balancesOf(bridge *app.BridgeApp, ctx sdk.Context, addr sdk.AccAddress, coins sdk.Coins) sdk.Coins {
	balances := sdk.NewCoins()
	for _, coin := range coins {
		balances = balances.Add(bridge.LedgerKeeper.GetBalance(ctx, addr, coin.Denom))
	}
	return balances
}

func parseLedgerAddress(s string) (sdk.AccAddress, error) {
	addr, err := sdk.AccAddressFromBech32(s)
	if err != nil {
		return nil, ledgertypes.ErrInvalidAddress.Wrapf("address %q: %s", s, err)
	}
	return addr, nil
}
