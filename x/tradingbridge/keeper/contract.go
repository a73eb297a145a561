package keeper

import (
	"strconv"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/trading-bridge/x/tradingbridge/types"
)

// handlerFn computes the state change and ledger messages of one invocation
// against a cache context.
type handlerFn func(ctx sdk.Context) (*types.Response, error)

// Instantiate creates the contract state. It fails once the contract has
// been instantiated.
func (k Keeper) Instantiate(ctx sdk.Context, sender sdk.AccAddress, funds sdk.Coins, msg types.InstantiateMsg) (*types.Response, error) {
	return k.invoke(ctx, types.RouteInstantiate, msg, func(ctx sdk.Context) (*types.Response, error) {
		if err := types.CheckFundsAreEmpty(funds); err != nil {
			return nil, err
		}
		return k.instantiate(ctx, sender, msg)
	})
}

// Execute routes an execute message to its handler. No route accepts funds;
// trades move value through explicit ledger transfers.
func (k Keeper) Execute(ctx sdk.Context, sender sdk.AccAddress, funds sdk.Coins, msg types.ExecuteMsg) (*types.Response, error) {
	route := msg.Route()
	return k.invoke(ctx, routeLabel(route), msg, func(ctx sdk.Context) (*types.Response, error) {
		if err := types.CheckFundsAreEmpty(funds); err != nil {
			return nil, err
		}
		state, err := k.GetContractState(ctx)
		if err != nil {
			return nil, err
		}

		switch route {
		case types.RouteAdminUpdateAdmin:
			return k.adminUpdateAdmin(ctx, state, sender, *msg.AdminUpdateAdmin)
		case types.RouteAdminUpdateDepositRequiredAttributes:
			return k.adminUpdateDepositRequiredAttributes(ctx, state, sender, *msg.AdminUpdateDepositRequiredAttributes)
		case types.RouteAdminUpdateWithdrawRequiredAttributes:
			return k.adminUpdateWithdrawRequiredAttributes(ctx, state, sender, *msg.AdminUpdateWithdrawRequiredAttributes)
		case types.RouteFundTrading:
			return k.fundTrading(ctx, state, sender, *msg.FundTrading)
		case types.RouteWithdrawTrading:
			return k.withdrawTrading(ctx, state, sender, *msg.WithdrawTrading)
		default:
			return nil, types.ErrInvalidFormat.Wrapf("unknown execute route [%s]", route)
		}
	})
}

// Migrate advances the stored contract version to the version compiled into
// this keeper.
func (k Keeper) Migrate(ctx sdk.Context, msg types.MigrateMsg) (*types.Response, error) {
	return k.invoke(ctx, types.RouteMigrate, msg, func(ctx sdk.Context) (*types.Response, error) {
		return k.migrate(ctx)
	})
}

// Query answers a read-only query with JSON
func (k Keeper) Query(ctx sdk.Context, msg types.QueryMsg) ([]byte, error) {
	start := time.Now()
	defer k.observeLatency(types.RouteQueryContractState, start)

	if err := msg.ValidateBasic(); err != nil {
		return nil, k.reject(ctx, types.RouteQueryContractState, err)
	}
	bz, err := k.queryContractState(ctx)
	if err != nil {
		return nil, k.reject(ctx, types.RouteQueryContractState, err)
	}
	k.metrics.Invocations.WithLabelValues(types.RouteQueryContractState, "success").Inc()
	return bz, nil
}

// invoke validates msg, runs handler in a cache context, dispatches the
// resulting ledger messages in order against the same cache and commits only
// if all of them succeed.
func (k Keeper) invoke(ctx sdk.Context, route string, msg types.SelfValidating, handler handlerFn) (*types.Response, error) {
	start := time.Now()
	defer k.observeLatency(route, start)

	if err := msg.ValidateBasic(); err != nil {
		return nil, k.reject(ctx, route, err)
	}

	cacheCtx, writeFn := ctx.CacheContext()
	res, err := handler(cacheCtx)
	if err != nil {
		return nil, k.reject(ctx, route, err)
	}
	for i, ledgerMsg := range res.Messages {
		if err := k.ledger.Dispatch(cacheCtx, k.contractAddress, ledgerMsg); err != nil {
			return nil, k.reject(ctx, route, types.WrapLedgerError(err, "ledger message %d", i))
		}
		k.metrics.LedgerMessages.WithLabelValues(ledgerMsg.Type()).Inc()
	}
	writeFn()

	ctx.EventManager().EmitEvent(res.Event())
	k.recordSuccess(route, res)
	k.Logger(ctx).Info("contract invocation succeeded", "route", route, "ledger_messages", len(res.Messages))
	return res, nil
}

func (k Keeper) recordSuccess(route string, res *types.Response) {
	k.metrics.Invocations.WithLabelValues(route, "success").Inc()

	switch route {
	case types.RouteAdminUpdateAdmin,
		types.RouteAdminUpdateDepositRequiredAttributes,
		types.RouteAdminUpdateWithdrawRequiredAttributes:
		k.metrics.AdminUpdates.WithLabelValues(route).Inc()
	case types.RouteFundTrading, types.RouteWithdrawTrading:
		denom, _ := res.Attribute(types.AttributeKeyInputDenom)
		converted, _ := res.Attribute(types.AttributeKeyConvertedAmount)
		if volume, err := strconv.ParseFloat(converted, 64); err == nil {
			k.metrics.TradeVolume.WithLabelValues(route, denom).Add(volume)
		}
		if _, ok := res.Attribute(types.AttributeKeyRemainderAmount); ok {
			k.metrics.RemainderDust.WithLabelValues(route).Inc()
		}
	case types.RouteMigrate:
		k.metrics.Migrations.Inc()
	}
}

func (k Keeper) reject(ctx sdk.Context, route string, err error) error {
	k.metrics.Invocations.WithLabelValues(route, "failure").Inc()
	k.Logger(ctx).Debug("contract invocation failed", "route", route, "error", err)
	return err
}

func (k Keeper) observeLatency(route string, start time.Time) {
	k.metrics.InvocationLatency.WithLabelValues(route).Observe(time.Since(start).Seconds())
}

// newResponse starts a response carrying the attributes every route reports
func (k Keeper) newResponse(action string, state types.ContractStateV1) *types.Response {
	return types.NewResponse().
		AddAttribute(types.AttributeKeyAction, action).
		AddAttribute(types.AttributeKeyContractAddress, k.contractAddress.String()).
		AddAttribute(types.AttributeKeyContractType, state.ContractType).
		AddAttribute(types.AttributeKeyContractName, state.ContractName)
}

func routeLabel(route string) string {
	if route == "" {
		return "unknown"
	}
	return route
}
