package payment_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/molino-api/internal/domain/payment"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name        string
		total, paid int64
		want        payment.Status
	}{
		{"cero y cero queda pendiente", 0, 0, payment.StatusPending},
		{"pagado exacto", 100, 100, payment.StatusPaid},
		{"parcial", 100, 40, payment.StatusPartial},
		{"sobrepago", 100, 150, payment.StatusPaid},
		{"sin pagos", 100, 0, payment.StatusPending},
		{"pago negativo", 100, -5, payment.StatusPending},
		{"pago sobre total cero", 0, 10, payment.StatusPartial},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := payment.Classify(decimal.NewFromInt(tc.total), decimal.NewFromInt(tc.paid))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, payment.StatusPartial.Valid())
	assert.False(t, payment.Status("PAGADO").Valid())
}
