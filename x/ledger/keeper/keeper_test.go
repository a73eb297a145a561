package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	keepertest "github.com/paw-chain/trading-bridge/testutil/keeper"
	"github.com/paw-chain/trading-bridge/x/ledger/keeper"
	"github.com/paw-chain/trading-bridge/x/ledger/types"
)

type KeeperTestSuite struct {
	suite.Suite
	keeper *keeper.Keeper
	ctx    sdk.Context

	admin sdk.AccAddress
	alice sdk.AccAddress
	bob   sdk.AccAddress
}

func (suite *KeeperTestSuite) SetupTest() {
	suite.keeper, suite.ctx = keepertest.LedgerKeeper(suite.T())
	suite.admin = authtypes.NewModuleAddress("admin")
	suite.alice = authtypes.NewModuleAddress("alice")
	suite.bob = authtypes.NewModuleAddress("bob")
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (suite *KeeperTestSuite) TestSendCoins() {
	require := suite.Require()
	require.NoError(suite.keeper.FundAccount(suite.ctx, suite.alice, sdk.NewCoins(sdk.NewInt64Coin("ucoin", 100))))

	require.NoError(suite.keeper.SendCoins(suite.ctx, suite.alice, suite.bob, sdk.NewCoins(sdk.NewInt64Coin("ucoin", 40))))
	require.Equal(math.NewInt(60), suite.keeper.GetBalance(suite.ctx, suite.alice, "ucoin").Amount)
	require.Equal(math.NewInt(40), suite.keeper.GetBalance(suite.ctx, suite.bob, "ucoin").Amount)
	require.Equal(math.NewInt(100), suite.keeper.GetSupply(suite.ctx, "ucoin").Amount)

	err := suite.keeper.SendCoins(suite.ctx, suite.alice, suite.bob, sdk.NewCoins(sdk.NewInt64Coin("ucoin", 61)))
	require.ErrorIs(err, types.ErrInsufficientFunds)
	require.Equal(math.NewInt(60), suite.keeper.GetBalance(suite.ctx, suite.alice, "ucoin").Amount)
}

func (suite *KeeperTestSuite) TestSendCoinsIsAllOrNothing() {
	require := suite.Require()
	require.NoError(suite.keeper.FundAccount(suite.ctx, suite.alice, sdk.NewCoins(
		sdk.NewInt64Coin("uaaa", 10),
		sdk.NewInt64Coin("ubbb", 5),
	)))

	err := suite.keeper.SendCoins(suite.ctx, suite.alice, suite.bob, sdk.NewCoins(
		sdk.NewInt64Coin("uaaa", 10),
		sdk.NewInt64Coin("ubbb", 6),
	))
	require.ErrorIs(err, types.ErrInsufficientFunds)
	require.Equal(math.NewInt(10), suite.keeper.GetBalance(suite.ctx, suite.alice, "uaaa").Amount)
	require.True(suite.keeper.GetBalance(suite.ctx, suite.bob, "uaaa").IsZero())
}

func (suite *KeeperTestSuite) TestMarkers() {
	require := suite.Require()

	marker, err := suite.keeper.CreateMarker(suite.ctx, "utrading", suite.admin)
	require.NoError(err)
	require.Equal(types.MarkerAddress("utrading").String(), marker.Address)
	require.True(marker.HasAdministrator(suite.admin))

	_, err = suite.keeper.CreateMarker(suite.ctx, "utrading", suite.admin)
	require.ErrorIs(err, types.ErrMarkerExists)

	_, err = suite.keeper.CreateMarker(suite.ctx, "!", suite.admin)
	require.ErrorIs(err, types.ErrInvalidCoin)

	addr, err := suite.keeper.GetMarkerAddress(suite.ctx, "utrading")
	require.NoError(err)
	require.Equal(types.MarkerAddress("utrading"), addr)

	_, err = suite.keeper.GetMarkerAddress(suite.ctx, "unknown")
	require.ErrorIs(err, types.ErrMarkerNotFound)

	require.NoError(suite.keeper.GrantAdministrator(suite.ctx, "utrading", suite.alice))
	require.NoError(suite.keeper.GrantAdministrator(suite.ctx, "utrading", suite.alice))
	marker, found := suite.keeper.GetMarker(suite.ctx, "utrading")
	require.True(found)
	require.Len(marker.Administrators, 2)
	require.ErrorIs(suite.keeper.GrantAdministrator(suite.ctx, "unknown", suite.alice), types.ErrMarkerNotFound)
}

func (suite *KeeperTestSuite) TestMintWithdrawBurn() {
	require := suite.Require()
	_, err := suite.keeper.CreateMarker(suite.ctx, "utrading", suite.admin)
	require.NoError(err)
	markerAddr := types.MarkerAddress("utrading")
	coin := sdk.NewInt64Coin("utrading", 50)

	require.ErrorIs(suite.keeper.MintCoin(suite.ctx, suite.alice, coin), types.ErrUnauthorized)
	require.ErrorIs(suite.keeper.MintCoin(suite.ctx, suite.admin, sdk.NewInt64Coin("unknown", 1)), types.ErrMarkerNotFound)
	require.ErrorIs(suite.keeper.MintCoin(suite.ctx, suite.admin, sdk.NewInt64Coin("utrading", 0)), types.ErrInvalidCoin)

	require.NoError(suite.keeper.MintCoin(suite.ctx, suite.admin, coin))
	require.Equal(math.NewInt(50), suite.keeper.GetBalance(suite.ctx, markerAddr, "utrading").Amount)
	require.Equal(math.NewInt(50), suite.keeper.GetSupply(suite.ctx, "utrading").Amount)

	err = suite.keeper.WithdrawCoins(suite.ctx, suite.alice, suite.bob, "utrading", sdk.NewCoins(coin))
	require.ErrorIs(err, types.ErrUnauthorized)
	require.NoError(suite.keeper.WithdrawCoins(suite.ctx, suite.admin, suite.bob, "utrading", sdk.NewCoins(coin)))
	require.True(suite.keeper.GetBalance(suite.ctx, markerAddr, "utrading").IsZero())
	require.Equal(math.NewInt(50), suite.keeper.GetBalance(suite.ctx, suite.bob, "utrading").Amount)

	// burn destroys coins held by the administrator itself
	require.ErrorIs(suite.keeper.BurnCoin(suite.ctx, suite.admin, coin), types.ErrInsufficientFunds)
	require.NoError(suite.keeper.TransferCoin(suite.ctx, suite.admin, suite.bob, suite.admin, coin))
	require.NoError(suite.keeper.BurnCoin(suite.ctx, suite.admin, coin))
	require.True(suite.keeper.GetBalance(suite.ctx, suite.admin, "utrading").IsZero())
	require.True(suite.keeper.GetSupply(suite.ctx, "utrading").IsZero())
}

func (suite *KeeperTestSuite) TestTransferCoinRequiresAdministrator() {
	require := suite.Require()
	_, err := suite.keeper.CreateMarker(suite.ctx, "udeposit", suite.admin)
	require.NoError(err)
	coin := sdk.NewInt64Coin("udeposit", 10)
	require.NoError(suite.keeper.FundAccount(suite.ctx, suite.alice, sdk.NewCoins(coin)))

	require.ErrorIs(suite.keeper.TransferCoin(suite.ctx, suite.bob, suite.alice, suite.bob, coin), types.ErrUnauthorized)
	require.NoError(suite.keeper.TransferCoin(suite.ctx, suite.admin, suite.alice, suite.bob, coin))
	require.Equal(math.NewInt(10), suite.keeper.GetBalance(suite.ctx, suite.bob, "udeposit").Amount)
}

func (suite *KeeperTestSuite) TestAttributesPaginate() {
	require := suite.Require()
	names := []string{"a.pb", "b.pb", "c.pb", "d.pb", "e.pb"}
	for _, name := range names {
		require.NoError(suite.keeper.AddAttribute(suite.ctx, suite.alice, name))
	}
	require.NoError(suite.keeper.AddAttribute(suite.ctx, suite.bob, "z.pb"))
	require.ErrorIs(suite.keeper.AddAttribute(suite.ctx, suite.alice, ""), types.ErrInvalidAttribute)

	require.True(suite.keeper.HasAttribute(suite.ctx, suite.alice, "c.pb"))
	require.False(suite.keeper.HasAttribute(suite.ctx, suite.alice, "z.pb"))

	var collected []string
	pageReq := &query.PageRequest{Limit: 2}
	for {
		page, pageRes, err := suite.keeper.GetAccountAttributeNames(suite.ctx, suite.alice, pageReq)
		require.NoError(err)
		require.LessOrEqual(len(page), 2)
		collected = append(collected, page...)
		if len(pageRes.NextKey) == 0 {
			break
		}
		pageReq = &query.PageRequest{Key: pageRes.NextKey, Limit: 2}
	}
	require.Equal(names, collected)
}

func (suite *KeeperTestSuite) TestBindName() {
	require := suite.Require()

	require.NoError(suite.keeper.BindName(suite.ctx, "pb", "", suite.admin, false))
	require.NoError(suite.keeper.BindName(suite.ctx, "trading", "pb", suite.alice, true))

	record, found := suite.keeper.ResolveName(suite.ctx, "trading.pb")
	require.True(found)
	require.Equal(suite.alice.String(), record.Address)
	require.True(record.Restricted)

	require.ErrorIs(suite.keeper.BindName(suite.ctx, "trading", "pb", suite.bob, false), types.ErrNameTaken)
	require.ErrorIs(suite.keeper.BindName(suite.ctx, "bridge", "missing", suite.bob, false), types.ErrNameNotFound)
	require.ErrorIs(suite.keeper.BindName(suite.ctx, "bridge", "trading.pb", suite.bob, false), types.ErrNameRestricted)
	require.NoError(suite.keeper.BindName(suite.ctx, "bridge", "trading.pb", suite.alice, false))
	require.ErrorIs(suite.keeper.BindName(suite.ctx, "", "pb", suite.alice, false), types.ErrInvalidAttribute)
}

func TestBalanceKeysDoNotCollide(t *testing.T) {
	k, ctx := keepertest.LedgerKeeper(t)
	alice := authtypes.NewModuleAddress("alice")

	require.NoError(t, k.FundAccount(ctx, alice, sdk.NewCoins(
		sdk.NewInt64Coin("uabc", 1),
		sdk.NewInt64Coin("uabcd", 2),
	)))
	require.Equal(t, math.NewInt(1), k.GetBalance(ctx, alice, "uabc").Amount)
	require.Equal(t, math.NewInt(2), k.GetBalance(ctx, alice, "uabcd").Amount)
	require.True(t, k.GetBalance(ctx, authtypes.NewModuleAddress("bob"), "uabc").IsZero())
}
