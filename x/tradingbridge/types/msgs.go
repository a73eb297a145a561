package types

import (
	"cosmossdk.io/math"
)

// Execute route names, used for events, logging and metrics
const (
	RouteAdminUpdateAdmin                      = "admin_update_admin"
	RouteAdminUpdateDepositRequiredAttributes  = "admin_update_deposit_required_attributes"
	RouteAdminUpdateWithdrawRequiredAttributes = "admin_update_withdraw_required_attributes"
	RouteFundTrading                           = "fund_trading"
	RouteWithdrawTrading                       = "withdraw_trading"

	RouteInstantiate        = "instantiate"
	RouteMigrate            = "migrate"
	RouteQueryContractState = "query_contract_state"
)

var (
	_ SelfValidating = InstantiateMsg{}
	_ SelfValidating = ExecuteMsg{}
	_ SelfValidating = QueryMsg{}
	_ SelfValidating = MigrateMsg{}
)

// InstantiateMsg bootstraps the contract state
type InstantiateMsg struct {
	ContractName string `json:"contract_name"`
	// Admin defaults to the instantiating sender when empty
	Admin                      string   `json:"admin,omitempty"`
	DepositMarker              Denom    `json:"deposit_marker"`
	TradingMarker              Denom    `json:"trading_marker"`
	RequiredDepositAttributes  []string `json:"required_deposit_attributes"`
	RequiredWithdrawAttributes []string `json:"required_withdraw_attributes"`
	NameToBind                 *string  `json:"name_to_bind,omitempty"`
}

// ValidateBasic implements SelfValidating
func (msg InstantiateMsg) ValidateBasic() error {
	if msg.ContractName == "" {
		return ErrValidation.Wrap("contract name cannot be empty")
	}
	if err := msg.DepositMarker.ValidateBasic(); err != nil {
		return ErrValidation.Wrapf("deposit marker: %s", err)
	}
	if err := msg.TradingMarker.ValidateBasic(); err != nil {
		return ErrValidation.Wrapf("trading marker: %s", err)
	}
	if msg.DepositMarker.Name == msg.TradingMarker.Name {
		return ErrValidation.Wrapf("deposit and trading markers must differ, both are [%s]", msg.DepositMarker.Name)
	}
	if err := ValidateAttributeNames("required deposit attributes", msg.RequiredDepositAttributes); err != nil {
		return err
	}
	if err := ValidateAttributeNames("required withdraw attributes", msg.RequiredWithdrawAttributes); err != nil {
		return err
	}
	if msg.NameToBind != nil {
		if *msg.NameToBind == "" {
			return ErrValidation.Wrap("name to bind cannot be specified as empty string")
		}
		if err := ValidateAttributeName(*msg.NameToBind); err != nil {
			return ErrValidation.Wrapf("name to bind: %s", err)
		}
	}
	return nil
}

// ExecuteMsg is the tagged union of every execute route. Exactly one field
// must be set.
type ExecuteMsg struct {
	AdminUpdateAdmin                      *AdminUpdateAdmin                      `json:"admin_update_admin,omitempty"`
	AdminUpdateDepositRequiredAttributes  *AdminUpdateDepositRequiredAttributes  `json:"admin_update_deposit_required_attributes,omitempty"`
	AdminUpdateWithdrawRequiredAttributes *AdminUpdateWithdrawRequiredAttributes `json:"admin_update_withdraw_required_attributes,omitempty"`
	FundTrading                           *FundTrading                           `json:"fund_trading,omitempty"`
	WithdrawTrading                       *WithdrawTrading                       `json:"withdraw_trading,omitempty"`
}

// AdminUpdateAdmin hands the admin role to a new address
type AdminUpdateAdmin struct {
	NewAdminAddress string `json:"new_admin_address"`
}

// AdminUpdateDepositRequiredAttributes replaces the deposit attribute gate
type AdminUpdateDepositRequiredAttributes struct {
	Attributes []string `json:"attributes"`
}

// AdminUpdateWithdrawRequiredAttributes replaces the withdraw attribute gate
type AdminUpdateWithdrawRequiredAttributes struct {
	Attributes []string `json:"attributes"`
}

// FundTrading converts deposit denom into trading denom
type FundTrading struct {
	TradeAmount math.Uint `json:"trade_amount"`
}

// WithdrawTrading converts trading denom back into deposit denom
type WithdrawTrading struct {
	TradeAmount math.Uint `json:"trade_amount"`
}

// NewFundTradingMsg creates an ExecuteMsg for the fund_trading route
func NewFundTradingMsg(tradeAmount math.Uint) ExecuteMsg {
	return ExecuteMsg{FundTrading: &FundTrading{TradeAmount: tradeAmount}}
}

// NewWithdrawTradingMsg creates an ExecuteMsg for the withdraw_trading route
func NewWithdrawTradingMsg(tradeAmount math.Uint) ExecuteMsg {
	return ExecuteMsg{WithdrawTrading: &WithdrawTrading{TradeAmount: tradeAmount}}
}

// NewAdminUpdateAdminMsg creates an ExecuteMsg for the admin_update_admin route
func NewAdminUpdateAdminMsg(newAdmin string) ExecuteMsg {
	return ExecuteMsg{AdminUpdateAdmin: &AdminUpdateAdmin{NewAdminAddress: newAdmin}}
}

// NewAdminUpdateDepositRequiredAttributesMsg creates an ExecuteMsg for the
// admin_update_deposit_required_attributes route
func NewAdminUpdateDepositRequiredAttributesMsg(attributes []string) ExecuteMsg {
	return ExecuteMsg{AdminUpdateDepositRequiredAttributes: &AdminUpdateDepositRequiredAttributes{Attributes: attributes}}
}

// NewAdminUpdateWithdrawRequiredAttributesMsg creates an ExecuteMsg for the
// admin_update_withdraw_required_attributes route
func NewAdminUpdateWithdrawRequiredAttributesMsg(attributes []string) ExecuteMsg {
	return ExecuteMsg{AdminUpdateWithdrawRequiredAttributes: &AdminUpdateWithdrawRequiredAttributes{Attributes: attributes}}
}

// Route returns the name of the populated variant, or "" when the union does
// not hold exactly one variant.
func (msg ExecuteMsg) Route() string {
	var route string
	set := 0
	if msg.AdminUpdateAdmin != nil {
		route = RouteAdminUpdateAdmin
		set++
	}
	if msg.AdminUpdateDepositRequiredAttributes != nil {
		route = RouteAdminUpdateDepositRequiredAttributes
		set++
	}
	if msg.AdminUpdateWithdrawRequiredAttributes != nil {
		route = RouteAdminUpdateWithdrawRequiredAttributes
		set++
	}
	if msg.FundTrading != nil {
		route = RouteFundTrading
		set++
	}
	if msg.WithdrawTrading != nil {
		route = RouteWithdrawTrading
		set++
	}
	if set != 1 {
		return ""
	}
	return route
}

// ValidateBasic implements SelfValidating
func (msg ExecuteMsg) ValidateBasic() error {
	switch msg.Route() {
	case RouteAdminUpdateAdmin:
		if msg.AdminUpdateAdmin.NewAdminAddress == "" {
			return ErrValidation.Wrap("new_admin_address param must be supplied")
		}
	case RouteAdminUpdateDepositRequiredAttributes:
		return ValidateAttributeNames("attributes", msg.AdminUpdateDepositRequiredAttributes.Attributes)
	case RouteAdminUpdateWithdrawRequiredAttributes:
		return ValidateAttributeNames("attributes", msg.AdminUpdateWithdrawRequiredAttributes.Attributes)
	case RouteFundTrading:
		return validateTradeAmount(msg.FundTrading.TradeAmount)
	case RouteWithdrawTrading:
		return validateTradeAmount(msg.WithdrawTrading.TradeAmount)
	default:
		return ErrInvalidFormat.Wrap("execute message must contain exactly one route")
	}
	return nil
}

func validateTradeAmount(amount math.Uint) error {
	if amount.IsNil() || amount.IsZero() {
		return ErrInvalidFunds.Wrap("trade amount must be greater than zero")
	}
	return nil
}

// QueryMsg is the tagged union of read-only routes
type QueryMsg struct {
	QueryContractState *QueryContractState `json:"query_contract_state,omitempty"`
}

// QueryContractState returns the stored ContractStateV1
type QueryContractState struct{}

// NewQueryContractStateMsg creates a QueryMsg for the contract state
func NewQueryContractStateMsg() QueryMsg {
	return QueryMsg{QueryContractState: &QueryContractState{}}
}

// ValidateBasic implements SelfValidating
func (msg QueryMsg) ValidateBasic() error {
	if msg.QueryContractState == nil {
		return ErrInvalidFormat.Wrap("query message must contain exactly one route")
	}
	return nil
}

// MigrateMsg is the tagged union of migration routes
type MigrateMsg struct {
	ContractUpgrade *ContractUpgrade `json:"contract_upgrade,omitempty"`
}

// ContractUpgrade carries no payload; it triggers the version check
type ContractUpgrade struct{}

// NewContractUpgradeMsg creates a MigrateMsg for a contract upgrade
func NewContractUpgradeMsg() MigrateMsg {
	return MigrateMsg{ContractUpgrade: &ContractUpgrade{}}
}

// ValidateBasic implements SelfValidating
func (msg MigrateMsg) ValidateBasic() error {
	if msg.ContractUpgrade == nil {
		return ErrInvalidFormat.Wrap("migrate message must contain exactly one route")
	}
	return nil
}
