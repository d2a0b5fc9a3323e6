package lyft

// Wire payloads of the Lyft public REST API (v1).

type costEstimatesResponse struct {
	CostEstimates []costEstimate `json:"cost_estimates"`
}

type costEstimate struct {
	RideType                 string  `json:"ride_type"`
	DisplayName              string  `json:"display_name"`
	Currency                 string  `json:"currency"`
	EstimatedCostCentsMin    int64   `json:"estimated_cost_cents_min"`
	EstimatedCostCentsMax    int64   `json:"estimated_cost_cents_max"`
	EstimatedDistanceMiles   float64 `json:"estimated_distance_miles"`
	EstimatedDurationSeconds int     `json:"estimated_duration_seconds"`
	PrimetimePercentage      string  `json:"primetime_percentage,omitempty"`
	IsValidEstimate          *bool   `json:"is_valid_estimate,omitempty"`
}

type place struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

type createRideRequest struct {
	RideType    string     `json:"ride_type"`
	Origin      place      `json:"origin"`
	Destination place      `json:"destination"`
	Passenger   *passenger `json:"passenger,omitempty"`
}

type passenger struct {
	PartySize int `json:"party_size"`
}

type createRideResponse struct {
	RideID string `json:"ride_id"`
	Status string `json:"status"`
}

type price struct {
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description,omitempty"`
}

type cancellationPrice struct {
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Token         string `json:"token"`
	TokenDuration int    `json:"token_duration,omitempty"`
}

type driver struct {
	FirstName   string `json:"first_name"`
	PhoneNumber string `json:"phone_number"`
	ImageURL    string `json:"image_url"`
}

type vehicle struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	Color        string `json:"color"`
	LicensePlate string `json:"license_plate"`
	ImageURL     string `json:"image_url"`
}

type vehicleLocation struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Bearing float64 `json:"bearing,omitempty"`
}

type rideOrigin struct {
	place
	ETASeconds *int `json:"eta_seconds,omitempty"`
}

type ridePickup struct {
	place
	Time string `json:"time,omitempty"`
}

type rideDetailResponse struct {
	RideID            string             `json:"ride_id"`
	Status            string             `json:"status"`
	RideType          string             `json:"ride_type"`
	Origin            *rideOrigin        `json:"origin,omitempty"`
	Pickup            *ridePickup        `json:"pickup,omitempty"`
	Price             *price             `json:"price,omitempty"`
	CancellationPrice *cancellationPrice `json:"cancellation_price,omitempty"`
	Driver            *driver            `json:"driver,omitempty"`
	Vehicle           *vehicle           `json:"vehicle,omitempty"`
	Location          *vehicleLocation   `json:"location,omitempty"`
}

type cancelRideRequest struct {
	CancelConfirmationToken string `json:"cancel_confirmation_token,omitempty"`
}

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}
