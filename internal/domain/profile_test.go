package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTotalInitialValue(t *testing.T) {
	p := &Profile{
		Accounts: []AccountProfile{
			{Name: "Individual", InitialValue: decimal.NewFromInt(12500)},
			{Name: "Roth", InitialValue: decimal.NewFromInt(12500)},
			{Name: "IRA", InitialValue: decimal.NewFromInt(12500)},
			{Name: "401k", InitialValue: decimal.NewFromInt(12500)},
		},
	}
	assert.True(t, p.TotalInitialValue().Equal(decimal.NewFromInt(50000)))
}

func TestTotalInitialValueEmpty(t *testing.T) {
	p := &Profile{}
	assert.True(t, p.TotalInitialValue().IsZero())
}
