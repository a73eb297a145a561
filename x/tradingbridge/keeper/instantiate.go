package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/trading-bridge/x/tradingbridge/types"
)

func (k Keeper) instantiate(ctx sdk.Context, sender sdk.AccAddress, msg types.InstantiateMsg) (*types.Response, error) {
	if k.HasContractState(ctx) {
		return nil, types.ErrInstantiation.Wrap("contract has already been instantiated")
	}

	admin := sender
	if msg.Admin != "" {
		addr, err := sdk.AccAddressFromBech32(msg.Admin)
		if err != nil {
			return nil, types.ErrInvalidAccount.Wrapf("admin [%s]: %s", msg.Admin, err)
		}
		admin = addr
	}

	state := types.NewContractStateV1(
		admin,
		msg.ContractName,
		k.contractVersion,
		msg.DepositMarker,
		msg.TradingMarker,
		msg.RequiredDepositAttributes,
		msg.RequiredWithdrawAttributes,
	)
	if err := k.SetContractState(ctx, state); err != nil {
		return nil, err
	}

	res := k.newResponse(types.RouteInstantiate, state).
		AddAttribute(types.AttributeKeyContractVersion, state.ContractVersion).
		AddAttribute(types.AttributeKeyDepositMarkerName, state.DepositMarker.Name).
		AddAttribute(types.AttributeKeyTradingMarkerName, state.TradingMarker.Name)

	if msg.NameToBind != nil {
		bindMsg, err := types.MsgBindName(*msg.NameToBind, k.contractAddress, true)
		if err != nil {
			return nil, err
		}
		res.AddMessage(types.LedgerMsg{BindName: &bindMsg}).
			AddAttribute(types.AttributeKeyContractBoundWithName, *msg.NameToBind)
	}

	k.Logger(ctx).Info("contract instantiated",
		"contract_name", state.ContractName,
		"admin", state.Admin,
		"deposit_marker", state.DepositMarker.Name,
		"trading_marker", state.TradingMarker.Name,
	)
	return res, nil
}
