package types

import (
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ContractStateV1 is the singleton configuration record of a bridge
// instance. Every mutation replaces the whole record.
type ContractStateV1 struct {
	Admin                      string   `json:"admin"`
	ContractName               string   `json:"contract_name"`
	ContractType               string   `json:"contract_type"`
	ContractVersion            string   `json:"contract_version"`
	DepositMarker              Denom    `json:"deposit_marker"`
	TradingMarker              Denom    `json:"trading_marker"`
	RequiredDepositAttributes  []string `json:"required_deposit_attributes"`
	RequiredWithdrawAttributes []string `json:"required_withdraw_attributes"`
}

// NewContractStateV1 creates the initial state stamped with the compiled
// contract type and the given version.
func NewContractStateV1(
	admin sdk.AccAddress,
	contractName string,
	contractVersion string,
	depositMarker Denom,
	tradingMarker Denom,
	requiredDepositAttributes []string,
	requiredWithdrawAttributes []string,
) ContractStateV1 {
	return ContractStateV1{
		Admin:                      admin.String(),
		ContractName:               contractName,
		ContractType:               ContractType,
		ContractVersion:            contractVersion,
		DepositMarker:              depositMarker,
		TradingMarker:              tradingMarker,
		RequiredDepositAttributes:  copyStrings(requiredDepositAttributes),
		RequiredWithdrawAttributes: copyStrings(requiredWithdrawAttributes),
	}
}

// Validate checks the stored record for consistency
func (s ContractStateV1) Validate() error {
	if _, err := sdk.AccAddressFromBech32(s.Admin); err != nil {
		return ErrInvalidAccount.Wrapf("admin [%s]: %s", s.Admin, err)
	}
	if s.ContractName == "" {
		return ErrValidation.Wrap("contract name cannot be empty")
	}
	if s.ContractType == "" {
		return ErrValidation.Wrap("contract type cannot be empty")
	}
	if s.ContractVersion == "" {
		return ErrValidation.Wrap("contract version cannot be empty")
	}
	if err := s.DepositMarker.ValidateBasic(); err != nil {
		return ErrValidation.Wrapf("deposit marker: %s", err)
	}
	if err := s.TradingMarker.ValidateBasic(); err != nil {
		return ErrValidation.Wrapf("trading marker: %s", err)
	}
	if err := ValidateAttributeNames("required deposit attributes", s.RequiredDepositAttributes); err != nil {
		return err
	}
	return ValidateAttributeNames("required withdraw attributes", s.RequiredWithdrawAttributes)
}

// IsAdmin reports whether addr is the registered admin
func (s ContractStateV1) IsAdmin(addr sdk.AccAddress) bool {
	return s.Admin == addr.String()
}

// Marshal encodes the state as JSON
func (s ContractStateV1) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

// UnmarshalContractStateV1 decodes a JSON encoded ContractStateV1
func UnmarshalContractStateV1(bz []byte) (ContractStateV1, error) {
	var state ContractStateV1
	if err := json.Unmarshal(bz, &state); err != nil {
		return ContractStateV1{}, err
	}
	return state, nil
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
