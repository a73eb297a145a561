package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/paw-chain/trading-bridge/x/tradingbridge/types"
)

// attributePageLimit is the page size used when scanning account attributes
const attributePageLimit = 25

var _ types.Ledger = ChainLedger{}

// ChainLedger binds the contract to the host ledger keepers
type ChainLedger struct {
	bankKeeper      types.BankKeeper
	markerKeeper    types.MarkerKeeper
	attributeKeeper types.AttributeKeeper
	nameKeeper      types.NameKeeper
}

// NewChainLedger creates a ledger binding over the host keepers
func NewChainLedger(
	bankKeeper types.BankKeeper,
	markerKeeper types.MarkerKeeper,
	attributeKeeper types.AttributeKeeper,
	nameKeeper types.NameKeeper,
) ChainLedger {
	return ChainLedger{
		bankKeeper:      bankKeeper,
		markerKeeper:    markerKeeper,
		attributeKeeper: attributeKeeper,
		nameKeeper:      nameKeeper,
	}
}

// GetMarkerAddressForDenom implements types.LedgerAccessor
func (l ChainLedger) GetMarkerAddressForDenom(ctx context.Context, denom string) (sdk.AccAddress, error) {
	addr, err := l.markerKeeper.GetMarkerAddress(ctx, denom)
	if err != nil {
		return nil, types.ErrNotFound.Wrapf("failed to find marker for denom [%s]: %s", denom, err)
	}
	return addr, nil
}

// CheckAccountHasAllAttributes implements types.LedgerAccessor. Attribute
// pages are read until every required name has been seen or the account has
// no more attributes.
func (l ChainLedger) CheckAccountHasAllAttributes(ctx context.Context, account sdk.AccAddress, required []string) error {
	if len(required) == 0 {
		return nil
	}

	missing := make(map[string]struct{}, len(required))
	for _, name := range required {
		missing[name] = struct{}{}
	}

	pageReq := &query.PageRequest{Limit: attributePageLimit}
	for {
		names, pageRes, err := l.attributeKeeper.GetAccountAttributeNames(ctx, account, pageReq)
		if err != nil {
			return types.WrapLedgerError(err, "failed to read attributes of account [%s]", account)
		}
		for _, name := range names {
			delete(missing, name)
		}
		if len(missing) == 0 {
			return nil
		}
		if pageRes == nil || len(pageRes.NextKey) == 0 {
			break
		}
		pageReq = &query.PageRequest{Key: pageRes.NextKey, Limit: attributePageLimit}
	}

	absent := make([]string, 0, len(missing))
	for _, name := range required {
		if _, ok := missing[name]; ok {
			absent = append(absent, name)
		}
	}
	return types.ErrNotAuthorized.Wrapf(
		"account [%s] does not have all required attributes %v, missing %v", account, required, absent,
	)
}

// CheckAccountHasEnoughDenom implements types.LedgerAccessor
func (l ChainLedger) CheckAccountHasEnoughDenom(ctx context.Context, account sdk.AccAddress, denom string, amount math.Uint) error {
	balance := l.bankKeeper.GetBalance(ctx, account, denom)
	if balance.Amount.LT(types.UintToInt(amount)) {
		return types.ErrInvalidFunds.Wrapf(
			"account [%s] holds [%s%s] but [%s%s] is required", account, balance.Amount, denom, amount, denom,
		)
	}
	return nil
}

// Dispatch implements types.MessageDispatcher. The contract may only act as
// itself: mint, burn and withdraw must name it as administrator, and a
// transfer out of any other account is forced through the marker of the
// transferred denom.
func (l ChainLedger) Dispatch(ctx context.Context, contract sdk.AccAddress, msg types.LedgerMsg) error {
	switch {
	case msg.Transfer != nil:
		from, to, err := parseAddressPair(msg.Transfer.FromAddress, msg.Transfer.ToAddress)
		if err != nil {
			return err
		}
		if from.Equals(contract) {
			err = l.bankKeeper.SendCoins(ctx, from, to, sdk.NewCoins(msg.Transfer.Amount))
		} else {
			err = l.markerKeeper.TransferCoin(ctx, contract, from, to, msg.Transfer.Amount)
		}
		return types.WrapLedgerError(err, "failed to %s", msg)

	case msg.Mint != nil:
		if err := requireContract(contract, msg.Mint.Administrator); err != nil {
			return err
		}
		err := l.markerKeeper.MintCoin(ctx, contract, msg.Mint.Amount)
		return types.WrapLedgerError(err, "failed to %s", msg)

	case msg.Burn != nil:
		if err := requireContract(contract, msg.Burn.Administrator); err != nil {
			return err
		}
		err := l.markerKeeper.BurnCoin(ctx, contract, msg.Burn.Amount)
		return types.WrapLedgerError(err, "failed to %s", msg)

	case msg.Withdraw != nil:
		if err := requireContract(contract, msg.Withdraw.Administrator); err != nil {
			return err
		}
		to, err := sdk.AccAddressFromBech32(msg.Withdraw.ToAddress)
		if err != nil {
			return types.ErrInvalidAccount.Wrapf("withdraw recipient [%s]: %s", msg.Withdraw.ToAddress, err)
		}
		err = l.markerKeeper.WithdrawCoins(ctx, contract, to, msg.Withdraw.Denom, msg.Withdraw.Amount)
		return types.WrapLedgerError(err, "failed to %s", msg)

	case msg.BindName != nil:
		addr, err := sdk.AccAddressFromBech32(msg.BindName.Record.Address)
		if err != nil {
			return types.ErrInvalidAccount.Wrapf("name record address [%s]: %s", msg.BindName.Record.Address, err)
		}
		var parent string
		if msg.BindName.Parent != nil {
			parent = msg.BindName.Parent.Name
		}
		err = l.nameKeeper.BindName(ctx, msg.BindName.Record.Name, parent, addr, msg.BindName.Record.Restricted)
		return types.WrapLedgerError(err, "failed to %s", msg)

	default:
		return types.ErrInvalidFormat.Wrap("ledger message must contain exactly one instruction")
	}
}

func parseAddressPair(from, to string) (sdk.AccAddress, sdk.AccAddress, error) {
	fromAddr, err := sdk.AccAddressFromBech32(from)
	if err != nil {
		return nil, nil, types.ErrInvalidAccount.Wrapf("transfer sender [%s]: %s", from, err)
	}
	toAddr, err := sdk.AccAddressFromBech32(to)
	if err != nil {
		return nil, nil, types.ErrInvalidAccount.Wrapf("transfer recipient [%s]: %s", to, err)
	}
	return fromAddr, toAddr, nil
}

func requireContract(contract sdk.AccAddress, administrator string) error {
	if administrator != contract.String() {
		return types.ErrNotAuthorized.Wrapf(
			"contract [%s] cannot act as administrator [%s]", contract, administrator,
		)
	}
	return nil
}
