package types_test

import (
	"testing"

	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/trading-bridge/x/tradingbridge/types"
)

func TestContractStateV1(t *testing.T) {
	admin := authtypes.NewModuleAddress("admin")
	other := authtypes.NewModuleAddress("other")
	depositAttrs := []string{"deposit.pb"}

	state := types.NewContractStateV1(
		admin,
		"Trading Bridge",
		"1.0.0",
		types.NewDenom("udeposit", 6),
		types.NewDenom("utrading", 2),
		depositAttrs,
		nil,
	)
	require.NoError(t, state.Validate())
	require.Equal(t, types.ContractType, state.ContractType)
	require.True(t, state.IsAdmin(admin))
	require.False(t, state.IsAdmin(other))
	require.NotNil(t, state.RequiredWithdrawAttributes)

	// the state owns its attribute lists
	depositAttrs[0] = "mutated.pb"
	require.Equal(t, []string{"deposit.pb"}, state.RequiredDepositAttributes)

	bz, err := state.Marshal()
	require.NoError(t, err)
	decoded, err := types.UnmarshalContractStateV1(bz)
	require.NoError(t, err)
	require.Equal(t, state, decoded)

	_, err = types.UnmarshalContractStateV1([]byte("not json"))
	require.Error(t, err)

	invalid := state
	invalid.Admin = "not-an-address"
	require.ErrorIs(t, invalid.Validate(), types.ErrInvalidAccount)

	invalid = state
	invalid.ContractVersion = ""
	require.ErrorIs(t, invalid.Validate(), types.ErrValidation)
}
