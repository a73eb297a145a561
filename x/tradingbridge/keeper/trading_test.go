package keeper_test

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ledgertypes "github.com/paw-chain/trading-bridge/x/ledger/types"
	"github.com/paw-chain/trading-bridge/x/tradingbridge/types"
)

func (suite *KeeperTestSuite) setupTrader(depositAmount int64) {
	suite.instantiate()
	suite.f.GrantAttributes(suite.T(), suite.trader, depositAttribute, withdrawAttribute)
	suite.f.Fund(suite.T(), suite.trader, depositDenom, depositAmount)
}

func ledgerMsgTypes(res *types.Response) []string {
	out := make([]string, 0, len(res.Messages))
	for _, msg := range res.Messages {
		out = append(out, msg.Type())
	}
	return out
}

func (suite *KeeperTestSuite) TestFundTrading() {
	require := suite.Require()
	suite.setupTrader(2_000_000)

	res, err := suite.f.Keeper.Execute(suite.f.Ctx, suite.trader, nil, types.NewFundTradingMsg(math.NewUint(1_234_567)))
	require.NoError(err)

	require.Equal([]string{"transfer", "mint", "withdraw"}, ledgerMsgTypes(res))
	require.Equal(sdk.NewInt64Coin(depositDenom, 1_230_000), res.Messages[0].Transfer.Amount)
	require.Equal(sdk.NewInt64Coin(tradingDenom, 123), res.Messages[1].Mint.Amount)

	requireAttribute(suite.T(), res, types.AttributeKeyAction, types.RouteFundTrading)
	requireAttribute(suite.T(), res, types.AttributeKeyContractAddress, suite.f.Contract.String())
	requireAttribute(suite.T(), res, types.AttributeKeyContractType, types.ContractType)
	requireAttribute(suite.T(), res, types.AttributeKeyTradeAmount, "1234567")
	requireAttribute(suite.T(), res, types.AttributeKeyConvertedAmount, "1230000")
	requireAttribute(suite.T(), res, types.AttributeKeyReceivedDenom, tradingDenom)
	requireAttribute(suite.T(), res, types.AttributeKeyReceivedAmount, "123")
	requireAttribute(suite.T(), res, types.AttributeKeyRemainderDenom, depositDenom)
	requireAttribute(suite.T(), res, types.AttributeKeyRemainderAmount, "4567")
	requireAttribute(suite.T(), res, types.AttributeKeyMarkerAddress, ledgertypes.MarkerAddress(tradingDenom).String())

	// the remainder never left the trader
	require.Equal(math.NewInt(2_000_000-1_230_000), suite.f.Balance(suite.trader, depositDenom))
	require.Equal(math.NewInt(123), suite.f.Balance(suite.trader, tradingDenom))
	require.Equal(math.NewInt(1_230_000), suite.f.Balance(suite.f.Contract, depositDenom))
	require.Equal(math.NewInt(123), suite.f.Supply(tradingDenom))
	require.True(suite.f.Balance(ledgertypes.MarkerAddress(tradingDenom), tradingDenom).IsZero())
}

func (suite *KeeperTestSuite) TestFundTradingWithoutRemainder() {
	suite.setupTrader(10_000)

	res, err := suite.f.Keeper.Execute(suite.f.Ctx, suite.trader, nil, types.NewFundTradingMsg(math.NewUint(10_000)))
	suite.Require().NoError(err)
	_, hasRemainder := res.Attribute(types.AttributeKeyRemainderAmount)
	suite.Require().False(hasRemainder)
	suite.Require().True(suite.f.Balance(suite.trader, depositDenom).IsZero())
	suite.Require().Equal(math.NewInt(1), suite.f.Balance(suite.trader, tradingDenom))
}

func (suite *KeeperTestSuite) TestFundTradingFailures() {
	tests := []struct {
		name      string
		setup     func()
		sender    func() sdk.AccAddress
		funds     sdk.Coins
		amount    math.Uint
		expectErr error
	}{
		{
			name:      "zero trade amount",
			amount:    math.ZeroUint(),
			expectErr: types.ErrInvalidFunds,
		},
		{
			name:      "funds attached",
			funds:     sdk.NewCoins(sdk.NewInt64Coin(depositDenom, 10_000)),
			amount:    math.NewUint(10_000),
			expectErr: types.ErrInvalidFunds,
		},
		{
			name:      "missing required attribute",
			sender:    func() sdk.AccAddress { return suite.admin },
			amount:    math.NewUint(10_000),
			expectErr: types.ErrNotAuthorized,
		},
		{
			name:      "insufficient balance",
			amount:    math.NewUint(1_000_001),
			expectErr: types.ErrInvalidFunds,
		},
		{
			name:      "too small to convert",
			amount:    math.NewUint(9_999),
			expectErr: types.ErrConversion,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			suite.setupTrader(1_000_000)
			sender := suite.trader
			if tt.sender != nil {
				sender = tt.sender()
			}

			res, err := suite.f.Keeper.Execute(suite.f.Ctx, sender, tt.funds, types.NewFundTradingMsg(tt.amount))
			suite.Require().ErrorIs(err, tt.expectErr)
			suite.Require().Nil(res)
			suite.Require().Equal(math.NewInt(1_000_000), suite.f.Balance(suite.trader, depositDenom))
			suite.Require().True(suite.f.Supply(tradingDenom).IsZero())
		})
	}
}

func (suite *KeeperTestSuite) TestFundTradingMissingTradingMarker() {
	require := suite.Require()
	suite.f = suite.freshFixtureWithoutMarkers()
	suite.setupTrader(1_000_000)

	_, err := suite.f.Keeper.Execute(suite.f.Ctx, suite.trader, nil, types.NewFundTradingMsg(math.NewUint(10_000)))
	require.ErrorIs(err, types.ErrNotFound)
}

func (suite *KeeperTestSuite) TestFundTradingRevertsOnLedgerFailure() {
	require := suite.Require()
	suite.f = suite.freshFixtureWithoutMarkers()

	// the contract administers the trading marker only, so it cannot pull
	// deposit coins from the trader
	_, err := suite.f.Ledger.CreateMarker(suite.f.Ctx, tradingDenom, suite.f.Contract)
	require.NoError(err)
	_, err = suite.f.Ledger.CreateMarker(suite.f.Ctx, depositDenom, suite.admin)
	require.NoError(err)
	suite.setupTrader(1_000_000)

	_, err = suite.f.Keeper.Execute(suite.f.Ctx, suite.trader, nil, types.NewFundTradingMsg(math.NewUint(10_000)))
	require.ErrorIs(err, types.ErrLedger)
	require.Equal(math.NewInt(1_000_000), suite.f.Balance(suite.trader, depositDenom))
	require.True(suite.f.Supply(tradingDenom).IsZero())
}

func (suite *KeeperTestSuite) TestWithdrawTrading() {
	require := suite.Require()
	suite.setupTrader(2_000_000)

	_, err := suite.f.Keeper.Execute(suite.f.Ctx, suite.trader, nil, types.NewFundTradingMsg(math.NewUint(1_234_567)))
	require.NoError(err)

	res, err := suite.f.Keeper.Execute(suite.f.Ctx, suite.trader, nil, types.NewWithdrawTradingMsg(math.NewUint(100)))
	require.NoError(err)
	require.Equal([]string{"transfer", "burn", "transfer"}, ledgerMsgTypes(res))
	require.Equal(sdk.NewInt64Coin(tradingDenom, 100), res.Messages[0].Transfer.Amount)
	require.Equal(sdk.NewInt64Coin(tradingDenom, 100), res.Messages[1].Burn.Amount)
	require.Equal(sdk.NewInt64Coin(depositDenom, 1_000_000), res.Messages[2].Transfer.Amount)
	requireAttribute(suite.T(), res, types.AttributeKeyAction, types.RouteWithdrawTrading)
	requireAttribute(suite.T(), res, types.AttributeKeyInputDenom, tradingDenom)
	requireAttribute(suite.T(), res, types.AttributeKeyReceivedAmount, "1000000")
	_, hasRemainder := res.Attribute(types.AttributeKeyRemainderAmount)
	require.False(hasRemainder)

	require.Equal(math.NewInt(23), suite.f.Balance(suite.trader, tradingDenom))
	require.Equal(math.NewInt(23), suite.f.Supply(tradingDenom))
	require.Equal(math.NewInt(230_000), suite.f.Balance(suite.f.Contract, depositDenom))
	require.Equal(math.NewInt(2_000_000-230_000), suite.f.Balance(suite.trader, depositDenom))
	require.True(suite.f.Balance(suite.f.Contract, tradingDenom).IsZero())
}

func (suite *KeeperTestSuite) TestWithdrawTradingFailures() {
	require := suite.Require()
	suite.setupTrader(1_000_000)

	_, err := suite.f.Keeper.Execute(suite.f.Ctx, suite.trader, nil, types.NewFundTradingMsg(math.NewUint(1_000_000)))
	require.NoError(err)

	_, err = suite.f.Keeper.Execute(suite.f.Ctx, suite.trader, nil, types.NewWithdrawTradingMsg(math.NewUint(101)))
	require.ErrorIs(err, types.ErrInvalidFunds)

	_, err = suite.f.Keeper.Execute(suite.f.Ctx, suite.trader, nil, types.NewWithdrawTradingMsg(math.ZeroUint()))
	require.ErrorIs(err, types.ErrInvalidFunds)

	_, err = suite.f.Keeper.Execute(suite.f.Ctx, suite.admin, nil, types.NewWithdrawTradingMsg(math.NewUint(1)))
	require.ErrorIs(err, types.ErrNotAuthorized)

	// requirements are per route
	_, err = suite.f.Keeper.Execute(suite.f.Ctx, suite.admin, nil,
		types.NewAdminUpdateWithdrawRequiredAttributesMsg([]string{"other.pb"}))
	require.NoError(err)
	_, err = suite.f.Keeper.Execute(suite.f.Ctx, suite.trader, nil, types.NewWithdrawTradingMsg(math.NewUint(1)))
	require.ErrorIs(err, types.ErrNotAuthorized)

	require.Equal(math.NewInt(100), suite.f.Balance(suite.trader, tradingDenom))
	require.Equal(math.NewInt(1_000_000), suite.f.Balance(suite.f.Contract, depositDenom))
}

func (suite *KeeperTestSuite) TestRoundTripRestoresDeposit() {
	require := suite.Require()
	suite.setupTrader(5_000_000)

	_, err := suite.f.Keeper.Execute(suite.f.Ctx, suite.trader, nil, types.NewFundTradingMsg(math.NewUint(1_234_567)))
	require.NoError(err)
	received := suite.f.Balance(suite.trader, tradingDenom)

	_, err = suite.f.Keeper.Execute(suite.f.Ctx, suite.trader, nil, types.NewWithdrawTradingMsg(math.NewUintFromBigInt(received.BigInt())))
	require.NoError(err)

	require.Equal(math.NewInt(5_000_000), suite.f.Balance(suite.trader, depositDenom))
	require.True(suite.f.Balance(suite.trader, tradingDenom).IsZero())
	require.True(suite.f.Balance(suite.f.Contract, depositDenom).IsZero())
	require.True(suite.f.Supply(tradingDenom).IsZero())
}
