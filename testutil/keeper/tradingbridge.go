package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	ledgerkeeper "github.com/paw-chain/trading-bridge/x/ledger/keeper"
	ledgertypes "github.com/paw-chain/trading-bridge/x/ledger/types"
	"github.com/paw-chain/trading-bridge/x/tradingbridge/keeper"
	"github.com/paw-chain/trading-bridge/x/tradingbridge/types"
)

// TradingBridgeFixture bundles a trading bridge keeper with the ledger
// simulator backing it.
type TradingBridgeFixture struct {
	Ctx      sdk.Context
	Keeper   *keeper.Keeper
	Ledger   *ledgerkeeper.Keeper
	Contract sdk.AccAddress
}

// LedgerKeeper creates a ledger simulator keeper on an in-memory store
func LedgerKeeper(t testing.TB) (*ledgerkeeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(ledgertypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	k := ledgerkeeper.NewKeeper(runtime.NewKVStoreService(storeKey))
	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())
	return k, ctx
}

// TradingBridgeKeeper creates a trading bridge keeper wired to a ledger
// simulator, both on in-memory stores.
func TradingBridgeKeeper(t testing.TB, opts ...keeper.Option) TradingBridgeFixture {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	ledgerStoreKey := storetypes.NewKVStoreKey(ledgertypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(ledgerStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	ledgerKeeper := ledgerkeeper.NewKeeper(runtime.NewKVStoreService(ledgerStoreKey))
	contract := authtypes.NewModuleAddress(types.ModuleName)
	k := keeper.NewKeeper(
		runtime.NewKVStoreService(storeKey),
		keeper.NewChainLedger(ledgerKeeper, ledgerKeeper, ledgerKeeper, ledgerKeeper),
		contract,
		opts...,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())
	return TradingBridgeFixture{
		Ctx:      ctx,
		Keeper:   k,
		Ledger:   ledgerKeeper,
		Contract: contract,
	}
}

// CreateMarkers registers markers for both denoms administered by the
// contract.
func (f TradingBridgeFixture) CreateMarkers(t testing.TB, deposit, trading types.Denom) {
	_, err := f.Ledger.CreateMarker(f.Ctx, deposit.Name, f.Contract)
	require.NoError(t, err)
	_, err = f.Ledger.CreateMarker(f.Ctx, trading.Name, f.Contract)
	require.NoError(t, err)
}

// Fund credits amount of denom to addr
func (f TradingBridgeFixture) Fund(t testing.TB, addr sdk.AccAddress, denom string, amount int64) {
	require.NoError(t, f.Ledger.FundAccount(f.Ctx, addr, sdk.NewCoins(sdk.NewInt64Coin(denom, amount))))
}

// Balance returns the amount of denom held by addr
func (f TradingBridgeFixture) Balance(addr sdk.AccAddress, denom string) math.Int {
	return f.Ledger.GetBalance(f.Ctx, addr, denom).Amount
}

// Supply returns the total supply of denom
func (f TradingBridgeFixture) Supply(denom string) math.Int {
	return f.Ledger.GetSupply(f.Ctx, denom).Amount
}

// GrantAttributes records every attribute on addr
func (f TradingBridgeFixture) GrantAttributes(t testing.TB, addr sdk.AccAddress, attributes ...string) {
	for _, attr := range attributes {
		require.NoError(t, f.Ledger.AddAttribute(f.Ctx, addr, attr))
	}
}

// TestAddr derives a deterministic test account address from seed
func TestAddr(seed string) sdk.AccAddress {
	return authtypes.NewModuleAddress("test-" + seed)
}
