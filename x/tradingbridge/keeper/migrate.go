package keeper

import (
	"github.com/Masterminds/semver/v3"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/trading-bridge/x/tradingbridge/types"
)

func (k Keeper) migrate(ctx sdk.Context) (*types.Response, error) {
	state, err := k.GetContractState(ctx)
	if err != nil {
		return nil, err
	}
	if err := k.validateMigration(state); err != nil {
		return nil, err
	}

	previousVersion := state.ContractVersion
	state.ContractVersion = k.contractVersion
	if err := k.SetContractState(ctx, state); err != nil {
		return nil, err
	}
	data, err := state.Marshal()
	if err != nil {
		return nil, types.ErrStorage.Wrapf("failed to encode contract state: %s", err)
	}

	k.Logger(ctx).Info("contract migrated", "previous_version", previousVersion, "new_version", state.ContractVersion)
	return k.newResponse(types.RouteMigrate, state).
		AddAttribute(types.AttributeKeyPreviousVersion, previousVersion).
		AddAttribute(types.AttributeKeyNewVersion, state.ContractVersion).
		SetData(data), nil
}

// validateMigration only allows a migration onto the same contract type at a
// strictly greater version.
func (k Keeper) validateMigration(state types.ContractStateV1) error {
	if state.ContractType != types.ContractType {
		return types.ErrMigration.Wrapf(
			"target migration contract type [%s] does not match stored contract type [%s]",
			types.ContractType, state.ContractType,
		)
	}

	existing, err := semver.StrictNewVersion(state.ContractVersion)
	if err != nil {
		return types.ErrSemVer.Wrapf("stored contract version [%s]: %s", state.ContractVersion, err)
	}
	target, err := semver.StrictNewVersion(k.contractVersion)
	if err != nil {
		return types.ErrSemVer.Wrapf("target contract version [%s]: %s", k.contractVersion, err)
	}
	if !existing.LessThan(target) {
		return types.ErrMigration.Wrapf(
			"target migration contract version [%s] is too low to use. stored contract version is [%s]",
			target, existing,
		)
	}
	return nil
}
