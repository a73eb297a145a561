package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/trading-bridge/x/tradingbridge/types"
)

// fundTrading converts deposit denom held by the sender into trading denom.
// The converted deposit moves into the contract, the equivalent trading
// denom is minted into its marker and withdrawn to the sender. Any remainder
// never leaves the sender.
func (k Keeper) fundTrading(
	ctx sdk.Context,
	state types.ContractStateV1,
	sender sdk.AccAddress,
	msg types.FundTrading,
) (*types.Response, error) {
	deposit, trading := state.DepositMarker, state.TradingMarker

	if err := k.ledger.CheckAccountHasAllAttributes(ctx, sender, state.RequiredDepositAttributes); err != nil {
		return nil, err
	}
	markerAddr, err := k.ledger.GetMarkerAddressForDenom(ctx, trading.Name)
	if err != nil {
		return nil, err
	}
	if err := k.ledger.CheckAccountHasEnoughDenom(ctx, sender, deposit.Name, msg.TradeAmount); err != nil {
		return nil, err
	}

	conversion, err := types.ConvertDenom(msg.TradeAmount, deposit, trading)
	if err != nil {
		return nil, err
	}

	depositCoin := deposit.Coin(conversion.ConvertedSourceAmount())
	tradingCoin := trading.Coin(conversion.TargetAmount)

	res := k.newResponse(types.RouteFundTrading, state).
		AddMessage(types.NewTransferMsg(sender, k.contractAddress, depositCoin)).
		AddMessage(types.NewMintMsg(k.contractAddress, tradingCoin)).
		AddMessage(types.NewWithdrawMsg(k.contractAddress, sender, tradingCoin)).
		AddAttribute(types.AttributeKeyTradeAmount, msg.TradeAmount.String()).
		AddAttribute(types.AttributeKeyInputDenom, deposit.Name).
		AddAttribute(types.AttributeKeyConvertedAmount, depositCoin.Amount.String()).
		AddAttribute(types.AttributeKeyReceivedDenom, trading.Name).
		AddAttribute(types.AttributeKeyReceivedAmount, tradingCoin.Amount.String()).
		AddAttribute(types.AttributeKeyMarkerAddress, markerAddr.String())
	addRemainder(res, deposit, conversion)

	return res, nil
}

// addRemainder reports dust left with the sender, if any
func addRemainder(res *types.Response, source types.Denom, conversion types.DenomConversion) {
	if !conversion.HasRemainder() {
		return
	}
	res.AddAttribute(types.AttributeKeyRemainderDenom, source.Name).
		AddAttribute(types.AttributeKeyRemainderAmount, conversion.Remainder.String())
}
