package personnummer

import (
	"testing"

	"github.com/frankban/quicktest"
)

func TestCheckLuhn(t *testing.T) {
	c := quicktest.New(t)

	tests := []struct {
		name    string
		digits  string
		wantErr bool
	}{
		{
			name:   "valid payload",
			digits: "8112189876",
		},
		{
			name:   "valid payload with plus-era serial",
			digits: "1712189859",
		},
		{
			name:   "valid payload at century boundary",
			digits: "1812189874",
		},
		{
			name:   "valid payload with leading zeros",
			digits: "0001011238",
		},
		{
			name:   "all zeros sum to zero",
			digits: "0000000000",
		},
		{
			name:    "check digit off by one",
			digits:  "8112189875",
			wantErr: true,
		},
		{
			name:    "ascending digits fail the total",
			digits:  "0123456789",
			wantErr: true,
		},
		{
			name:    "letter in the payload",
			digits:  "81121898a6",
			wantErr: true,
		},
		{
			name:    "separator leaked into the payload",
			digits:  "8112-89876",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		c.Run(tt.name, func(c *quicktest.C) {
			err := checkLuhn(tt.digits)
			if tt.wantErr {
				c.Assert(err, quicktest.IsNotNil)
			} else {
				c.Assert(err, quicktest.IsNil)
			}
		})
	}
}
