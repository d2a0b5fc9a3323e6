package entities

import "time"

// TTLPolicy is the expiration policy applied to estimate records.
//
// Both windows restart on every successful write; reads never extend a record.
type TTLPolicy struct {
	Absolute time.Duration
	Sliding  time.Duration
}

// ExpiresAt returns the instant a record written at now stops being visible.
// A zero window is ignored; a policy with both windows zero never expires.
func (p TTLPolicy) ExpiresAt(now time.Time) time.Time {
	window := p.Absolute
	if p.Sliding > 0 && (window <= 0 || p.Sliding < window) {
		window = p.Sliding
	}
	if window <= 0 {
		return time.Time{}
	}
	return now.Add(window)
}

// Expired reports whether a record with the given expiry is no longer visible at now.
func Expired(expiresAt, now time.Time) bool {
	return !expiresAt.IsZero() && !now.Before(expiresAt)
}
