package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCents(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "two decimal places", input: "50.00", want: 5000},
		{name: "no decimal point", input: "50", want: 5000},
		{name: "one decimal place", input: "50.5", want: 5050},
		{name: "cents only", input: "0.99", want: 99},
		{name: "leading dot", input: ".75", want: 75},
		{name: "negative", input: "-12.34", want: -1234},
		{name: "whitespace trimmed", input: " 7.25 ", want: 725},
		{name: "empty", input: "", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "digits then garbage", input: "12x", wantErr: true},
		{name: "three decimal places", input: "1.234", wantErr: true},
		{name: "lone dot", input: ".", wantErr: true},
		{name: "sign inside fraction", input: "1.-5", wantErr: true},
		{name: "sign inside whole part", input: "+5.00", wantErr: true},
		{name: "double negative", input: "--5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCents(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "50.00", FormatCents(5000))
	assert.Equal(t, "0.05", FormatCents(5))
	assert.Equal(t, "-12.34", FormatCents(-1234))
	assert.Equal(t, "0.00", FormatCents(0))
}

func TestDraftValidate(t *testing.T) {
	valid := Draft{
		Type:     TypeExpense,
		Amount:   "12.50",
		Category: CategoryFood,
		Date:     "2024-01-15",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Draft)
	}{
		{name: "bad type", mutate: func(d *Draft) { d.Type = "transfer" }},
		{name: "malformed amount", mutate: func(d *Draft) { d.Amount = "lots" }},
		{name: "zero amount", mutate: func(d *Draft) { d.Amount = "0.00" }},
		{name: "negative amount", mutate: func(d *Draft) { d.Amount = "-5.00" }},
		{name: "unknown category", mutate: func(d *Draft) { d.Category = "crypto" }},
		{name: "bad date", mutate: func(d *Draft) { d.Date = "15/01/2024" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)
			assert.Error(t, d.Validate())
		})
	}
}

func TestTransactionAmountCents(t *testing.T) {
	txn := Transaction{Amount: "19.99"}
	cents, ok := txn.AmountCents()
	assert.True(t, ok)
	assert.Equal(t, int64(1999), cents)

	bad := Transaction{Amount: "corrupted"}
	cents, ok = bad.AmountCents()
	assert.False(t, ok)
	assert.Zero(t, cents)
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.Valid(), "category %s", c)
	}
	assert.False(t, Category("crypto").Valid())
	assert.Equal(t, "Food & Dining", CategoryFood.Label())
	assert.Equal(t, "crypto", Category("crypto").Label())
}
