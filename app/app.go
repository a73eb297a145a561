package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	ledgerkeeper "github.com/paw-chain/trading-bridge/x/ledger/keeper"
	ledgertypes "github.com/paw-chain/trading-bridge/x/ledger/types"
	bridgekeeper "github.com/paw-chain/trading-bridge/x/tradingbridge/keeper"
	bridgetypes "github.com/paw-chain/trading-bridge/x/tradingbridge/types"
)

// DefaultNodeHome is the default home directory of the bridge host
var DefaultNodeHome string

func init() {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}

	DefaultNodeHome = filepath.Join(userHomeDir, ".bridged")
}

// BridgeApp hosts the ledger simulator and a single trading bridge contract
// on a commit multistore. Each invocation runs against a fresh context and
// is persisted by Commit.
type BridgeApp struct {
	logger log.Logger
	db     dbm.DB
	cms    storetypes.CommitMultiStore

	LedgerKeeper        *ledgerkeeper.Keeper
	TradingBridgeKeeper *bridgekeeper.Keeper
}

// New mounts the module stores on db, loads the latest committed version and
// wires the keepers.
func New(logger log.Logger, db dbm.DB, opts ...bridgekeeper.Option) (*BridgeApp, error) {
	keys := storetypes.NewKVStoreKeys(ledgertypes.StoreKey, bridgetypes.StoreKey)

	cms := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	for _, key := range keys {
		cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}
	if err := cms.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("failed to load latest version: %w", err)
	}

	ledgerKeeper := ledgerkeeper.NewKeeper(runtime.NewKVStoreService(keys[ledgertypes.StoreKey]))
	chainLedger := bridgekeeper.NewChainLedger(ledgerKeeper, ledgerKeeper, ledgerKeeper, ledgerKeeper)
	bridgeKeeper := bridgekeeper.NewKeeper(
		runtime.NewKVStoreService(keys[bridgetypes.StoreKey]),
		chainLedger,
		ContractAddress(),
		opts...,
	)

	return &BridgeApp{
		logger:              logger,
		db:                  db,
		cms:                 cms,
		LedgerKeeper:        ledgerKeeper,
		TradingBridgeKeeper: bridgeKeeper,
	}, nil
}

// ContractAddress is the account the trading bridge contract executes as
func ContractAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(bridgetypes.ModuleName)
}

// NewContext returns a context for the next block on top of the last commit
func (app *BridgeApp) NewContext() sdk.Context {
	header := cmtproto.Header{
		ChainID: ChainID,
		Height:  app.cms.LastCommitID().Version + 1,
		Time:    time.Now().UTC(),
	}
	return sdk.NewContext(app.cms, header, false, app.logger)
}

// Commit persists every write made through contexts from NewContext
func (app *BridgeApp) Commit() storetypes.CommitID {
	commitID := app.cms.Commit()
	app.logger.Debug("committed state", "height", commitID.Version, "hash", fmt.Sprintf("%X", commitID.Hash))
	return commitID
}

// LastCommitID returns the id of the latest committed version
func (app *BridgeApp) LastCommitID() storetypes.CommitID {
	return app.cms.LastCommitID()
}

// Close releases the underlying database
func (app *BridgeApp) Close() error {
	return app.db.Close()
}
