package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFee(t *testing.T) {
	t.Run("default ten percent split", func(t *testing.T) {
		platform, doctor := SplitFee(500, 10)
		assert.Equal(t, 50.0, platform)
		assert.Equal(t, 450.0, doctor)
	})

	t.Run("rounds platform share to paise", func(t *testing.T) {
		platform, doctor := SplitFee(99.99, 10)
		assert.InDelta(t, 10.00, platform, 1e-9)
		assert.InDelta(t, 89.99, doctor, 1e-9)
	})

	t.Run("shares always reconcile to the gross amount", func(t *testing.T) {
		for _, gross := range []float64{1, 99.99, 250.50, 500, 1234.56, 10000} {
			platform, doctor := SplitFee(gross, 10)
			assert.InDelta(t, gross, platform+doctor, 1e-9, "gross %v", gross)
		}
	})

	t.Run("zero percent leaves everything with the professional", func(t *testing.T) {
		platform, doctor := SplitFee(500, 0)
		assert.Equal(t, 0.0, platform)
		assert.Equal(t, 500.0, doctor)
	})
}
