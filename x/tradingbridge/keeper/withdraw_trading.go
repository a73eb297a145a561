package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/trading-bridge/x/tradingbridge/types"
)

// withdrawTrading converts trading denom held by the sender back into
// deposit denom. The converted trading denom moves into the contract and is
// burned before the equivalent deposit denom is released to the sender.
func (k Keeper) withdrawTrading(
	ctx sdk.Context,
	state types.ContractStateV1,
	sender sdk.AccAddress,
	msg types.WithdrawTrading,
) (*types.Response, error) {
	deposit, trading := state.DepositMarker, state.TradingMarker

	if err := k.ledger.CheckAccountHasAllAttributes(ctx, sender, state.RequiredWithdrawAttributes); err != nil {
		return nil, err
	}
	markerAddr, err := k.ledger.GetMarkerAddressForDenom(ctx, trading.Name)
	if err != nil {
		return nil, err
	}
	if err := k.ledger.CheckAccountHasEnoughDenom(ctx, sender, trading.Name, msg.TradeAmount); err != nil {
		return nil, err
	}

	conversion, err := types.ConvertDenom(msg.TradeAmount, trading, deposit)
	if err != nil {
		return nil, err
	}

	tradingCoin := trading.Coin(conversion.ConvertedSourceAmount())
	depositCoin := deposit.Coin(conversion.TargetAmount)

	res := k.newResponse(types.RouteWithdrawTrading, state).
		AddMessage(types.NewTransferMsg(sender, k.contractAddress, tradingCoin)).
		AddMessage(types.NewBurnMsg(k.contractAddress, tradingCoin)).
		AddMessage(types.NewTransferMsg(k.contractAddress, sender, depositCoin)).
		AddAttribute(types.AttributeKeyTradeAmount, msg.TradeAmount.String()).
		AddAttribute(types.AttributeKeyInputDenom, trading.Name).
		AddAttribute(types.AttributeKeyConvertedAmount, tradingCoin.Amount.String()).
		AddAttribute(types.AttributeKeyReceivedDenom, deposit.Name).
		AddAttribute(types.AttributeKeyReceivedAmount, depositCoin.Amount.String()).
		AddAttribute(types.AttributeKeyMarkerAddress, markerAddr.String())
	addRemainder(res, trading, conversion)

	return res, nil
}
