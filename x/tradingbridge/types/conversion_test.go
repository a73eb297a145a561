package types_test

import (
	"math/big"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/paw-chain/trading-bridge/x/tradingbridge/types"
)

func TestConvertDenom(t *testing.T) {
	tests := []struct {
		name            string
		amount          uint64
		source          types.Denom
		target          types.Denom
		expectTarget    uint64
		expectRemainder uint64
	}{
		{
			name:            "source finer, large amount",
			amount:          123456789,
			source:          types.NewDenom("source", 4),
			target:          types.NewDenom("target", 1),
			expectTarget:    123456,
			expectRemainder: 789,
		},
		{
			name:         "source finer, exactly one target unit",
			amount:       1000,
			source:       types.NewDenom("source", 4),
			target:       types.NewDenom("target", 1),
			expectTarget: 1,
		},
		{
			name:            "source finer, small overflow",
			amount:          1101,
			source:          types.NewDenom("source", 4),
			target:          types.NewDenom("target", 1),
			expectTarget:    1,
			expectRemainder: 101,
		},
		{
			name:   "source finer, zero amount",
			source: types.NewDenom("source", 4),
			target: types.NewDenom("target", 1),
		},
		{
			name:         "target finer, large amount",
			amount:       123456789,
			source:       types.NewDenom("source", 1),
			target:       types.NewDenom("target", 4),
			expectTarget: 123456789000,
		},
		{
			name:         "target finer, small amount",
			amount:       2,
			source:       types.NewDenom("source", 1),
			target:       types.NewDenom("target", 4),
			expectTarget: 2000,
		},
		{
			name:   "target finer, zero amount",
			source: types.NewDenom("source", 1),
			target: types.NewDenom("target", 4),
		},
		{
			name:         "equal precision",
			amount:       123456789,
			source:       types.NewDenom("source", 3),
			target:       types.NewDenom("target", 3),
			expectTarget: 123456789,
		},
		{
			name:         "equal precision, small amount",
			amount:       6,
			source:       types.NewDenom("source", 3),
			target:       types.NewDenom("target", 3),
			expectTarget: 6,
		},
		{
			name:            "trading to deposit",
			amount:          987123456,
			source:          types.NewDenom("trading", 6),
			target:          types.NewDenom("deposit", 2),
			expectTarget:    98712,
			expectRemainder: 3456,
		},
		{
			name:            "deposit precision 6 to trading precision 2",
			amount:          1_234_567,
			source:          types.NewDenom("deposit", 6),
			target:          types.NewDenom("trading", 2),
			expectTarget:    123,
			expectRemainder: 4_567,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conversion, err := types.ConvertDenom(math.NewUint(tt.amount), tt.source, tt.target)
			require.NoError(t, err)
			require.Equal(t, math.NewUint(tt.amount), conversion.SourceAmount)
			require.Equal(t, math.NewUint(tt.expectTarget), conversion.TargetAmount)
			require.Equal(t, math.NewUint(tt.expectRemainder), conversion.Remainder)
			require.Equal(t, tt.expectRemainder != 0, conversion.HasRemainder())
		})
	}
}

func TestConvertDenomRejectsDust(t *testing.T) {
	source := types.NewDenom("source", 4)
	target := types.NewDenom("target", 1)

	_, err := types.ConvertDenom(math.NewUint(123), source, target)
	require.ErrorIs(t, err, types.ErrConversion)
	require.Contains(t, err.Error(), "not enough to convert")
}

func TestConvertDenomOverflow(t *testing.T) {
	t.Run("precision difference too wide", func(t *testing.T) {
		_, err := types.ConvertDenom(math.NewUint(1), types.NewDenom("source", 0), types.NewDenom("target", 78))
		require.ErrorIs(t, err, types.ErrConversion)
	})

	t.Run("product wider than 256 bits", func(t *testing.T) {
		maxUint := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
		_, err := types.ConvertDenom(math.NewUintFromBigInt(maxUint), types.NewDenom("source", 0), types.NewDenom("target", 1))
		require.ErrorIs(t, err, types.ErrConversion)
	})

	t.Run("widest representable factor", func(t *testing.T) {
		conversion, err := types.ConvertDenom(math.NewUint(1), types.NewDenom("source", 0), types.NewDenom("target", 77))
		require.NoError(t, err)
		expected := new(big.Int).Exp(big.NewInt(10), big.NewInt(77), nil)
		require.Equal(t, expected.String(), conversion.TargetAmount.String())
	})

	t.Run("nil amount", func(t *testing.T) {
		_, err := types.ConvertDenom(math.Uint{}, types.NewDenom("source", 0), types.NewDenom("target", 1))
		require.ErrorIs(t, err, types.ErrConversion)
	})
}

// Property: target * 10^(sp-tp) + remainder == source whenever the source is
// at least as fine as the target.
func TestConvertDenomRecomposes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		amount := rapid.Uint64().Draw(t, "amount")
		targetPrecision := rapid.Uint64Range(0, 18).Draw(t, "targetPrecision")
		sourcePrecision := targetPrecision + rapid.Uint64Range(0, 18).Draw(t, "precisionDiff")

		source := types.NewDenom("source", sourcePrecision)
		target := types.NewDenom("target", targetPrecision)
		conversion, err := types.ConvertDenom(math.NewUint(amount), source, target)
		if err != nil {
			if !conversion.SourceAmount.IsNil() {
				t.Fatalf("failed conversion returned a result: %v", conversion)
			}
			// only dust may be rejected
			factor := new(big.Int).Exp(big.NewInt(10), new(big.Int).SetUint64(sourcePrecision-targetPrecision), nil)
			if new(big.Int).SetUint64(amount).Cmp(factor) >= 0 {
				t.Fatalf("amount %d rejected with factor %s: %v", amount, factor, err)
			}
			return
		}

		factor := math.NewUintFromBigInt(new(big.Int).Exp(big.NewInt(10), new(big.Int).SetUint64(sourcePrecision-targetPrecision), nil))
		recomposed := conversion.TargetAmount.Mul(factor).Add(conversion.Remainder)
		if !recomposed.Equal(math.NewUint(amount)) {
			t.Fatalf("recomposed %s != source %d", recomposed, amount)
		}
		if !conversion.Remainder.LT(factor) {
			t.Fatalf("remainder %s not below factor %s", conversion.Remainder, factor)
		}
	})
}

// Property: conversion is deterministic and scaling up then down is lossless.
func TestConvertDenomDeterministicRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		amount := rapid.Uint64Range(1, 1<<62).Draw(t, "amount")
		coarse := rapid.Uint64Range(0, 12).Draw(t, "coarse")
		fine := coarse + rapid.Uint64Range(0, 12).Draw(t, "diff")

		source := types.NewDenom("coarse", coarse)
		target := types.NewDenom("fine", fine)

		first, err := types.ConvertDenom(math.NewUint(amount), source, target)
		if err != nil {
			t.Fatalf("scaling up failed: %v", err)
		}
		second, err := types.ConvertDenom(math.NewUint(amount), source, target)
		if err != nil {
			t.Fatalf("scaling up failed: %v", err)
		}
		if !first.TargetAmount.Equal(second.TargetAmount) || !first.Remainder.Equal(second.Remainder) {
			t.Fatalf("conversion is not deterministic: %v vs %v", first, second)
		}
		if !first.Remainder.IsZero() {
			t.Fatalf("scaling up left a remainder: %s", first.Remainder)
		}

		back, err := types.ConvertDenom(first.TargetAmount, target, source)
		if err != nil {
			t.Fatalf("scaling down failed: %v", err)
		}
		if !back.TargetAmount.Equal(math.NewUint(amount)) || !back.Remainder.IsZero() {
			t.Fatalf("round trip of %d yielded %s remainder %s", amount, back.TargetAmount, back.Remainder)
		}
	})
}
