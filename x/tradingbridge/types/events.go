package types

// EventTypeTradingBridge is the single event type emitted per successful
// invocation; the attributes below describe what happened.
const EventTypeTradingBridge = "wasm-trading_bridge"

// Event attribute keys for the trading bridge module
const (
	AttributeKeyAction          = "action"
	AttributeKeyContractAddress = "contract_address"
	AttributeKeyContractType    = "contract_type"
	AttributeKeyContractName    = "contract_name"
	AttributeKeyContractVersion = "contract_version"
	AttributeKeyNewVersion      = "new_version"
	AttributeKeyPreviousVersion = "previous_version"

	// Admin attributes
	AttributeKeyPreviousAdmin      = "previous_admin"
	AttributeKeyNewAdmin           = "new_admin"
	AttributeKeyPreviousAttributes = "previous_attributes"
	AttributeKeyNewAttributes      = "new_attributes"

	// Instantiation attributes
	AttributeKeyDepositMarkerName     = "deposit_marker_name"
	AttributeKeyTradingMarkerName     = "trading_marker_name"
	AttributeKeyContractBoundWithName = "contract_bound_with_name"

	// Trade attributes
	AttributeKeyTradeAmount     = "trade_amount"
	AttributeKeyInputDenom      = "input_denom"
	AttributeKeyConvertedAmount = "converted_amount"
	AttributeKeyReceivedDenom   = "received_denom"
	AttributeKeyReceivedAmount  = "received_amount"
	AttributeKeyRemainderDenom  = "remainder_denom"
	AttributeKeyRemainderAmount = "remainder_amount"
	AttributeKeyMarkerAddress   = "marker_address"
)
