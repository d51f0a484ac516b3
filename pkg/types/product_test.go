package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidatePrice(t *testing.T) {
	tests := []struct {
		name    string
		price   string
		wantErr error
	}{
		{name: "two decimal places", price: "9.99"},
		{name: "whole number", price: "5"},
		{name: "zero is a legal price", price: "0"},
		{name: "one decimal place", price: "0.1"},
		{name: "trailing zero beyond two places still equals its rounding", price: "1.100"},
		{name: "negative rejected", price: "-0.01", wantErr: ErrInvalidPrice},
		{name: "sub-cent precision rejected", price: "9.999", wantErr: ErrInvalidPrice},
		{name: "tiny fraction rejected", price: "0.001", wantErr: ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePrice(decimal.RequireFromString(tt.price))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
