package entities

import "strings"

// Stage is the internal ride lifecycle classification.
// It is always derived from a provider status and never stored.
type Stage string

const (
	StagePending   Stage = "pending"
	StageAccepted  Stage = "accepted"
	StageCompleted Stage = "completed"
	StageCancelled Stage = "cancelled"
	StageUnknown   Stage = "unknown"
)

// ProviderRideStatus is the ride status vocabulary of the upstream provider.
type ProviderRideStatus string

const (
	ProviderStatusPending    ProviderRideStatus = "pending"
	ProviderStatusAccepted   ProviderRideStatus = "accepted"
	ProviderStatusArrived    ProviderRideStatus = "arrived"
	ProviderStatusPickedUp   ProviderRideStatus = "pickedUp"
	ProviderStatusDroppedOff ProviderRideStatus = "droppedOff"
	ProviderStatusCanceled   ProviderRideStatus = "canceled"
)

// StageFromStatus maps any provider status, including unknown or empty ones, to a Stage.
func StageFromStatus(status ProviderRideStatus) Stage {
	switch normalizeStatus(status) {
	case "pending":
		return StagePending
	case "arrived", "pickedup", "accepted":
		return StageAccepted
	case "canceled", "cancelled":
		return StageCancelled
	case "droppedoff":
		return StageCompleted
	default:
		return StageUnknown
	}
}

// IsPickedUp reports whether the rider is on board.
func (s ProviderRideStatus) IsPickedUp() bool {
	return normalizeStatus(s) == "pickedup"
}

func normalizeStatus(status ProviderRideStatus) string {
	s := strings.ToLower(strings.TrimSpace(string(status)))
	return strings.ReplaceAll(s, "_", "")
}
