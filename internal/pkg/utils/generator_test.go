package utils

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	id := GenerateID("appt")
	assert.True(t, strings.HasPrefix(id, "appt_"))
	assert.Greater(t, len(id), len("appt_"))

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		next := GenerateID("pay")
		assert.False(t, seen[next], "generated a duplicate ID: %s", next)
		seen[next] = true
	}
}

func TestGenerateSubdomain(t *testing.T) {
	existsNone := func(ctx context.Context, subdomain string) (bool, error) {
		return false, nil
	}

	t.Run("normalizes seed to lowercase alphanumerics", func(t *testing.T) {
		subdomain, err := GenerateSubdomain(context.Background(), "Dr. Priya Sharma!!", existsNone)
		require.NoError(t, err)
		assert.Equal(t, "priyasharma", subdomain)
	})

	t.Run("appends counter on collision", func(t *testing.T) {
		taken := map[string]bool{"priyasharma": true}
		exists := func(ctx context.Context, subdomain string) (bool, error) {
			return taken[subdomain], nil
		}

		subdomain, err := GenerateSubdomain(context.Background(), "Dr. Priya Sharma!!", exists)
		require.NoError(t, err)
		assert.Equal(t, "priyasharma1", subdomain)
	})

	t.Run("keeps counting until a free slot", func(t *testing.T) {
		taken := map[string]bool{"amit": true, "amit1": true, "amit2": true}
		exists := func(ctx context.Context, subdomain string) (bool, error) {
			return taken[subdomain], nil
		}

		subdomain, err := GenerateSubdomain(context.Background(), "Amit", exists)
		require.NoError(t, err)
		assert.Equal(t, "amit3", subdomain)
	})

	t.Run("falls back when seed has no usable characters", func(t *testing.T) {
		subdomain, err := GenerateSubdomain(context.Background(), "!!!", existsNone)
		require.NoError(t, err)
		assert.Equal(t, "expert", subdomain)
	})

	t.Run("gives up past the attempt bound", func(t *testing.T) {
		alwaysTaken := func(ctx context.Context, subdomain string) (bool, error) {
			return true, nil
		}

		_, err := GenerateSubdomain(context.Background(), "Priya", alwaysTaken)
		assert.Error(t, err)
	})
}

func TestGenerateMeetCode(t *testing.T) {
	code := GenerateMeetCode("appt_abc123")
	assert.Len(t, code, 8)

	// Deterministic per appointment so a retried settlement reuses the link.
	assert.Equal(t, code, GenerateMeetCode("appt_abc123"))
	assert.NotEqual(t, code, GenerateMeetCode("appt_abc124"))
}

func TestNormalizeLocalPhoneNumber(t *testing.T) {
	assert.Equal(t, "9876543210", NormalizeLocalPhoneNumber("+91 98765 43210"))
	assert.Equal(t, "9876543210", NormalizeLocalPhoneNumber("9876543210"))
	assert.Equal(t, "987654", NormalizeLocalPhoneNumber("98-76-54"))
	assert.Equal(t, "", NormalizeLocalPhoneNumber("no digits"))
}
