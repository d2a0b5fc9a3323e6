package entities

// Money is an amount in minor currency units (cents for USD).
//
// The provider prices in minor units and so does storage; conversion to major units
// happens only when a response is rendered, through Major.
type Money struct {
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description,omitempty"`
}

// Major returns the amount in major currency units.
func (m Money) Major() float64 {
	return float64(m.Amount) / 100
}
