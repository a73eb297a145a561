package cmd

import (
	"cosmossdk.io/math"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/paw-chain/trading-bridge/app"
	"github.com/paw-chain/trading-bridge/x/tradingbridge/types"
)

type conversionOutput struct {
	Source     types.Denom           `json:"source"`
	Target     types.Denom           `json:"target"`
	Conversion types.DenomConversion `json:"conversion"`
}

// ConvertCmd previews a denom conversion without touching state
func ConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "convert [amount] [source-denom] [source-precision] [target-denom] [target-precision]",
		Short:   "Preview a conversion between two marker precisions",
		Example: "bridged convert 1234567 udeposit 6 utrading 2",
		Args:    cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := math.ParseUint(args[0])
			if err != nil {
				return types.ErrParseInt.Wrapf("amount %q: %s", args[0], err)
			}
			source, err := parseDenom(args[1], args[2])
			if err != nil {
				return err
			}
			target, err := parseDenom(args[3], args[4])
			if err != nil {
				return err
			}

			conversion, err := types.ConvertDenom(amount, source, target)
			if err != nil {
				return err
			}
			return printJSON(cmd, conversionOutput{
				Source:     source,
				Target:     target,
				Conversion: conversion,
			})
		},
	}
}

// ContractAddressCmd prints the account the contract executes as
func ContractAddressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contract-address",
		Short: "Print the contract account address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd, map[string]string{
				"address": app.ContractAddress().String(),
			})
		},
	}
}

// VersionCmd prints the contract type and version the host runs
func VersionCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the contract version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd, map[string]string{
				"contract_type":    types.ContractType,
				"contract_version": cfg.ContractVersion,
			})
		},
	}
}

func parseDenom(name, precision string) (types.Denom, error) {
	p, err := cast.ToUint64E(precision)
	if err != nil {
		return types.Denom{}, types.ErrParseInt.Wrapf("precision %q: %s", precision, err)
	}
	denom := types.NewDenom(name, p)
	if err := denom.ValidateBasic(); err != nil {
		return types.Denom{}, err
	}
	return denom, nil
}
