package repository

import (
	"time"

	"lyft_client/internal/domain/entities"
)

const estimateKeyPrefix = "estimate/"

func estimateKey(id string) []byte {
	return []byte(estimateKeyPrefix + id)
}

// expiryUnix converts the policy deadline of a write at now to epoch seconds, the
// unit DynamoDB TTL expects. Zero means the record never expires.
func expiryUnix(policy entities.TTLPolicy, now time.Time) int64 {
	at := policy.ExpiresAt(now)
	if at.IsZero() {
		return 0
	}
	return at.Unix()
}

func fromUnix(sec int64) time.Time {
	if sec <= 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
