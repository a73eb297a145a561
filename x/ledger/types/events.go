package types

// Ledger event types
const (
	EventTypeTransfer      = "ledger_transfer"
	EventTypeMarkerCreated = "ledger_marker_created"
	EventTypeMint          = "ledger_mint"
	EventTypeBurn          = "ledger_burn"
	EventTypeWithdraw      = "ledger_withdraw"
	EventTypeAttribute     = "ledger_attribute_added"
	EventTypeNameBound     = "ledger_name_bound"
)

// Ledger event attribute keys
const (
	AttributeKeySender        = "sender"
	AttributeKeyRecipient     = "recipient"
	AttributeKeyAmount        = "amount"
	AttributeKeyDenom         = "denom"
	AttributeKeyMarker        = "marker_address"
	AttributeKeyAdministrator = "administrator"
	AttributeKeyAccount       = "account"
	AttributeKeyName          = "name"
	AttributeKeyRestricted    = "restricted"
)
