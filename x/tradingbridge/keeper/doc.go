// Package keeper implements the trading bridge contract.
//
// The bridge converts balances between a deposit denom, supplied by
// depositors, and a trading denom that the contract mints and burns. Both
// denoms are markers with their own fixed-point precision; conversions floor
// to the coarser precision and leave the unconvertible remainder with the
// caller.
//
// # Entry Points
//
// Instantiate writes the singleton ContractStateV1 and optionally binds a
// name to the contract address. Execute routes one of five messages:
// admin_update_admin, admin_update_deposit_required_attributes,
// admin_update_withdraw_required_attributes, fund_trading and
// withdraw_trading. Migrate advances the stored contract version. Query
// returns the stored state as JSON.
//
// # Atomicity
//
// Every entry point runs inside a cache context. Handlers compute the state
// change and an ordered list of ledger messages; the messages are dispatched
// against the same cache context and the cache is written only when every
// message succeeds. A failed invocation leaves no state behind.
//
// # Ledger
//
// Handlers reach the host ledger through types.Ledger. ChainLedger implements
// it over the bank, marker, attribute and name keepers of the host.
package keeper
