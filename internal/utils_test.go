package internal

import (
	"encoding/hex"
	"testing"

	"github.com/frankban/quicktest"
)

func TestRandomBytes(t *testing.T) {
	c := quicktest.New(t)

	c.Run("length matches request", func(c *quicktest.C) {
		for _, n := range []int{0, 1, 16, 32} {
			c.Assert(RandomBytes(n), quicktest.HasLen, n)
		}
	})

	c.Run("consecutive calls differ", func(c *quicktest.C) {
		c.Assert(RandomBytes(32), quicktest.Not(quicktest.DeepEquals), RandomBytes(32))
	})
}

func TestRandomHex(t *testing.T) {
	c := quicktest.New(t)

	got := RandomHex(32)
	c.Assert(got, quicktest.HasLen, 64)

	decoded, err := hex.DecodeString(got)
	c.Assert(err, quicktest.IsNil)
	c.Assert(decoded, quicktest.HasLen, 32)
}
