package utils

import (
	"context"
	"crypto/md5"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// maxSubdomainAttempts bounds the collision-resolution loop. The unique index
// on professionals.subdomain remains the final authority at persistence time.
const maxSubdomainAttempts = 1000

// GenerateID produces an opaque identifier of the form prefix_<token>.
// The token mixes the current time with random entropy, so no counter or
// cross-process coordination is needed.
func GenerateID(prefix string) string {
	entropy := make([]byte, 4)
	rand.Read(entropy)
	token := strconv.FormatInt(time.Now().UnixNano(), 36) + hex.EncodeToString(entropy)
	return fmt.Sprintf("%s_%s", prefix, token)
}

// GenerateSubdomain normalizes seed text into a lowercase alphanumeric slug
// and disambiguates with an incrementing numeric suffix until exists reports
// the candidate as free.
func GenerateSubdomain(ctx context.Context, seed string, exists func(ctx context.Context, subdomain string) (bool, error)) (string, error) {
	base := normalizeSubdomain(seed)
	if base == "" {
		base = "expert"
	}

	candidate := base
	for counter := 1; counter <= maxSubdomainAttempts; counter++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = base + strconv.Itoa(counter)
	}
	return "", fmt.Errorf("no free subdomain for %q after %d attempts", base, maxSubdomainAttempts)
}

func normalizeSubdomain(seed string) string {
	seed = stripHonorific(seed)
	var b strings.Builder
	for _, r := range seed {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// stripHonorific drops a leading "Dr"/"Dr." title so the slug is derived
// from the person's name alone.
func stripHonorific(seed string) string {
	trimmed := strings.TrimSpace(seed)
	lower := strings.ToLower(trimmed)
	for _, prefix := range []string{"dr. ", "dr."} {
		if strings.HasPrefix(lower, prefix) {
			return trimmed[len(prefix):]
		}
	}
	if strings.HasPrefix(lower, "dr ") {
		return trimmed[3:]
	}
	return trimmed
}

// GenerateMeetCode derives the 8-character code used in placeholder meeting
// links. Deterministic per appointment so retries produce the same link.
func GenerateMeetCode(appointmentID string) string {
	sum := md5.Sum([]byte(appointmentID))
	return hex.EncodeToString(sum[:])[:8]
}

func GenerateRequestID() string {
	return uuid.NewString()
}
