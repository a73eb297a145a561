package keeper

import (
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/trading-bridge/x/tradingbridge/types"
)

func (k Keeper) adminUpdateAdmin(
	ctx sdk.Context,
	state types.ContractStateV1,
	sender sdk.AccAddress,
	msg types.AdminUpdateAdmin,
) (*types.Response, error) {
	if err := requireAdmin(state, sender, types.RouteAdminUpdateAdmin); err != nil {
		return nil, err
	}
	newAdmin, err := sdk.AccAddressFromBech32(msg.NewAdminAddress)
	if err != nil {
		return nil, types.ErrInvalidAccount.Wrapf("new admin address [%s]: %s", msg.NewAdminAddress, err)
	}

	previousAdmin := state.Admin
	state.Admin = newAdmin.String()
	if err := k.SetContractState(ctx, state); err != nil {
		return nil, err
	}

	return k.newResponse(types.RouteAdminUpdateAdmin, state).
		AddAttribute(types.AttributeKeyPreviousAdmin, previousAdmin).
		AddAttribute(types.AttributeKeyNewAdmin, state.Admin), nil
}

func (k Keeper) adminUpdateDepositRequiredAttributes(
	ctx sdk.Context,
	state types.ContractStateV1,
	sender sdk.AccAddress,
	msg types.AdminUpdateDepositRequiredAttributes,
) (*types.Response, error) {
	route := types.RouteAdminUpdateDepositRequiredAttributes
	if err := requireAdmin(state, sender, route); err != nil {
		return nil, err
	}

	previous := state.RequiredDepositAttributes
	state.RequiredDepositAttributes = append([]string{}, msg.Attributes...)
	if err := k.SetContractState(ctx, state); err != nil {
		return nil, err
	}

	return k.newResponse(route, state).
		AddAttribute(types.AttributeKeyPreviousAttributes, formatAttributes(previous)).
		AddAttribute(types.AttributeKeyNewAttributes, formatAttributes(state.RequiredDepositAttributes)), nil
}

func (k Keeper) adminUpdateWithdrawRequiredAttributes(
	ctx sdk.Context,
	state types.ContractStateV1,
	sender sdk.AccAddress,
	msg types.AdminUpdateWithdrawRequiredAttributes,
) (*types.Response, error) {
	route := types.RouteAdminUpdateWithdrawRequiredAttributes
	if err := requireAdmin(state, sender, route); err != nil {
		return nil, err
	}

	previous := state.RequiredWithdrawAttributes
	state.RequiredWithdrawAttributes = append([]string{}, msg.Attributes...)
	if err := k.SetContractState(ctx, state); err != nil {
		return nil, err
	}

	return k.newResponse(route, state).
		AddAttribute(types.AttributeKeyPreviousAttributes, formatAttributes(previous)).
		AddAttribute(types.AttributeKeyNewAttributes, formatAttributes(state.RequiredWithdrawAttributes)), nil
}

func requireAdmin(state types.ContractStateV1, sender sdk.AccAddress, route string) error {
	if !state.IsAdmin(sender) {
		return types.ErrNotAuthorized.Wrapf("only the admin may execute [%s], sender was [%s]", route, sender)
	}
	return nil
}

// formatAttributes renders an attribute list as "[a,b,c]"
func formatAttributes(attributes []string) string {
	return fmt.Sprintf("[%s]", strings.Join(attributes, ","))
}
