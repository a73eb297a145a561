package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paw-chain/trading-bridge/app"
	bridgekeeper "github.com/paw-chain/trading-bridge/x/tradingbridge/keeper"
	"github.com/paw-chain/trading-bridge/x/tradingbridge/types"
)

const dbName = "bridge"

// NewRootCmd creates a new root command for bridged. It is called once in
// the main function.
func NewRootCmd() *cobra.Command {
	app.SetConfig()

	v := viper.New()
	cfg := &Config{}

	rootCmd := &cobra.Command{
		Use:   "bridged",
		Short: "Trading bridge contract host",
		Long: `bridged hosts the trading bridge contract on a local ledger. Every
invocation runs in its own block and is committed only when it succeeds.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}
			*cfg = loaded
			return nil
		},
	}

	rootCmd.PersistentFlags().String(flagHome, app.DefaultNodeHome, "directory for config and data")
	rootCmd.PersistentFlags().String(flagLogLevel, defaultLogLevel, "log level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().String(flagLogFormat, logFormatPlain, "log format (plain|json)")
	rootCmd.PersistentFlags().String(flagDBBackend, defaultDBBackend, "database backend")
	rootCmd.PersistentFlags().String(flagContractVersion, types.ContractVersion, "contract version the host runs")

	rootCmd.AddCommand(
		ContractCmd(cfg),
		LedgerCmd(cfg),
		ConvertCmd(),
		ContractAddressCmd(),
		VersionCmd(cfg),
	)

	return rootCmd
}

// PrintError writes err in its structured contract error form
func PrintError(w io.Writer, err error) {
	bz, marshalErr := json.Marshal(types.NewContractError(err))
	if marshalErr != nil {
		fmt.Fprintln(w, err)
		return
	}
	fmt.Fprintln(w, string(bz))
}

func openApp(cmd *cobra.Command, cfg *Config) (*app.BridgeApp, error) {
	logger, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.DataDir(), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	db, err := dbm.NewDB(dbName, dbm.BackendType(cfg.DBBackend), cfg.DataDir())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	bridge, err := app.New(logger, db, bridgekeeper.WithContractVersion(cfg.ContractVersion))
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return bridge, nil
}

// blockFn runs one command against a fresh block context
type blockFn func(bridge *app.BridgeApp, ctx sdk.Context) (interface{}, error)

// runInBlock opens the host, runs fn and prints its output. State is
// committed only when commit is set and fn succeeds.
func runInBlock(cmd *cobra.Command, cfg *Config, commit bool, fn blockFn) error {
	bridge, err := openApp(cmd, cfg)
	if err != nil {
		return err
	}
	defer bridge.Close()

	out, err := fn(bridge, bridge.NewContext())
	if err != nil {
		return err
	}
	if commit {
		bridge.Commit()
	}
	return printJSON(cmd, out)
}

func printJSON(cmd *cobra.Command, out interface{}) error {
	if raw, ok := out.([]byte); ok {
		out = json.RawMessage(raw)
	}
	bz, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}
