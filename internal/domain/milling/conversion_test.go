package milling_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/molino-api/internal/domain/milling"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestConversionRate(t *testing.T) {
	assert.True(t, milling.ConversionRate(d("0"), d("50")).IsZero(), "sin división por cero")
	assert.True(t, milling.ConversionRate(d("-3"), d("50")).IsZero())
	assert.True(t, milling.ConversionRate(d("100"), d("70")).Equal(d("70")))
	assert.True(t, milling.ConversionRate(d("1000"), d("650")).Equal(d("65")))
	assert.True(t, milling.ConversionRate(d("100"), d("0")).IsZero())
}

func TestWastePercent(t *testing.T) {
	assert.True(t, milling.WastePercent(d("0"), d("10")).IsZero())
	assert.True(t, milling.WastePercent(d("1000"), d("50")).Equal(d("5")))
}

func TestIsEfficient(t *testing.T) {
	th := milling.DefaultEfficiencyThreshold
	assert.True(t, milling.IsEfficient(d("65"), th), "el umbral es inclusivo")
	assert.True(t, milling.IsEfficient(d("70.5"), th))
	assert.False(t, milling.IsEfficient(d("64.99"), th))
	assert.True(t, milling.IsEfficient(d("60"), d("60")), "el umbral es configurable")
}
