package keeper_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/trading-bridge/testutil/keeper"
	"github.com/paw-chain/trading-bridge/x/tradingbridge/keeper"
	"github.com/paw-chain/trading-bridge/x/tradingbridge/types"
)

func instantiatedAtVersion(t *testing.T, compiled, stored string) keepertest.TradingBridgeFixture {
	f := keepertest.TradingBridgeKeeper(t, keeper.WithContractVersion(compiled))
	_, err := f.Keeper.Instantiate(f.Ctx, keepertest.TestAddr("admin"), nil, defaultInstantiateMsg())
	require.NoError(t, err)

	state, err := f.Keeper.GetContractState(f.Ctx)
	require.NoError(t, err)
	state.ContractVersion = stored
	require.NoError(t, f.Keeper.SetContractState(f.Ctx, state))
	return f
}

func TestMigrate(t *testing.T) {
	f := instantiatedAtVersion(t, "1.2.0", "1.0.0")
	before, err := f.Keeper.GetContractState(f.Ctx)
	require.NoError(t, err)

	res, err := f.Keeper.Migrate(f.Ctx, types.NewContractUpgradeMsg())
	require.NoError(t, err)
	requireAttribute(t, res, types.AttributeKeyAction, types.RouteMigrate)
	requireAttribute(t, res, types.AttributeKeyPreviousVersion, "1.0.0")
	requireAttribute(t, res, types.AttributeKeyNewVersion, "1.2.0")

	after, err := f.Keeper.GetContractState(f.Ctx)
	require.NoError(t, err)
	require.Equal(t, "1.2.0", after.ContractVersion)

	// only the version changed
	before.ContractVersion = after.ContractVersion
	require.Equal(t, before, after)

	var data types.ContractStateV1
	require.NoError(t, json.Unmarshal(res.Data, &data))
	require.Equal(t, after, data)
}

func TestMigrateRejectsNonIncreasingVersion(t *testing.T) {
	tests := []struct {
		name      string
		compiled  string
		stored    string
		expectErr error
	}{
		{name: "equal version", compiled: "1.0.0", stored: "1.0.0", expectErr: types.ErrMigration},
		{name: "lower version", compiled: "1.0.0", stored: "1.0.1", expectErr: types.ErrMigration},
		{name: "lower major", compiled: "1.9.9", stored: "2.0.0", expectErr: types.ErrMigration},
		{name: "prerelease below release", compiled: "1.0.0-rc.1", stored: "1.0.0", expectErr: types.ErrMigration},
		{name: "stored version unparsable", compiled: "1.0.0", stored: "one", expectErr: types.ErrSemVer},
		{name: "compiled version unparsable", compiled: "v1", stored: "1.0.0", expectErr: types.ErrSemVer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := instantiatedAtVersion(t, tt.compiled, tt.stored)

			_, err := f.Keeper.Migrate(f.Ctx, types.NewContractUpgradeMsg())
			require.ErrorIs(t, err, tt.expectErr)

			state, err := f.Keeper.GetContractState(f.Ctx)
			require.NoError(t, err)
			require.Equal(t, tt.stored, state.ContractVersion)
		})
	}
}

func TestMigrateRejectsForeignContractType(t *testing.T) {
	f := instantiatedAtVersion(t, "2.0.0", "1.0.0")
	state, err := f.Keeper.GetContractState(f.Ctx)
	require.NoError(t, err)
	state.ContractType = "other_contract"
	require.NoError(t, f.Keeper.SetContractState(f.Ctx, state))

	_, err = f.Keeper.Migrate(f.Ctx, types.NewContractUpgradeMsg())
	require.ErrorIs(t, err, types.ErrMigration)
}

func TestMigrateRequiresState(t *testing.T) {
	f := keepertest.TradingBridgeKeeper(t)
	_, err := f.Keeper.Migrate(f.Ctx, types.NewContractUpgradeMsg())
	require.ErrorIs(t, err, types.ErrNotFound)

	_, err = f.Keeper.Migrate(f.Ctx, types.MigrateMsg{})
	require.ErrorIs(t, err, types.ErrInvalidFormat)
}
