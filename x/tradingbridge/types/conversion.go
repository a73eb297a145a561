package types

import (
	"math/big"

	"cosmossdk.io/math"
)

// ConvertDenom converts sourceAmount, expressed in the smallest units of
// source, into the smallest units of target.
//
// When the target precision is lower, the amount is floor-divided by
// 10^(source-target) and the unconvertible low digits are returned as the
// remainder, still in source units. When the target precision is higher the
// amount is multiplied and there is never a remainder.
//
// A non-zero amount too small to produce a single target unit is rejected so
// callers never emit a zero-value transfer.
func ConvertDenom(sourceAmount math.Uint, source, target Denom) (DenomConversion, error) {
	if sourceAmount.IsNil() {
		return DenomConversion{}, ErrConversion.Wrap("source amount must be specified")
	}

	diff, sourceIsFiner := precisionDiff(source.Precision, target.Precision)
	factor, err := scalingFactor(diff)
	if err != nil {
		return DenomConversion{}, ErrConversion.Wrapf(
			"source precision [%d] and target precision [%d] have too large a difference to convert: %s",
			source.Precision, target.Precision, err,
		)
	}

	amount := sourceAmount.BigInt()
	targetAmount := new(big.Int)
	remainder := new(big.Int)

	switch {
	case sourceIsFiner:
		targetAmount.QuoRem(amount, factor, remainder)
	default:
		targetAmount.Mul(amount, factor)
		if err := math.UintOverflow(targetAmount); err != nil {
			return DenomConversion{}, ErrConversion.Wrapf(
				"converting [%s%s] to [%s] overflows: %s",
				sourceAmount, source.Name, target.Name, err,
			)
		}
	}

	if targetAmount.Sign() == 0 && amount.Sign() != 0 {
		return DenomConversion{}, ErrConversion.Wrapf(
			"[%s%s] is not enough to convert to at least one [%s]",
			sourceAmount, source.Name, target.Name,
		)
	}

	return DenomConversion{
		SourceAmount: sourceAmount,
		TargetAmount: math.NewUintFromBigInt(targetAmount),
		Remainder:    math.NewUintFromBigInt(remainder),
	}, nil
}

// precisionDiff returns |source-target| and whether the source precision is
// strictly greater than the target precision.
func precisionDiff(source, target uint64) (uint64, bool) {
	if source > target {
		return source - target, true
	}
	return target - source, false
}

// scalingFactor returns 10^diff, refusing factors that do not fit a Uint.
func scalingFactor(diff uint64) (*big.Int, error) {
	// 10^78 is the first power of ten wider than 256 bits
	if diff > 77 {
		return nil, math.ErrIntOverflow
	}
	factor := new(big.Int).Exp(big.NewInt(10), new(big.Int).SetUint64(diff), nil)
	if err := math.UintOverflow(factor); err != nil {
		return nil, err
	}
	return factor, nil
}
