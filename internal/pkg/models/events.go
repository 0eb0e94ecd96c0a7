package models

// RiderSummary is the rider detail included in a ride offer
type RiderSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RideOffer is sent to exactly one driver at a time during dispatch
type RideOffer struct {
	RideID  string       `json:"ride_id"`
	Rider   RiderSummary `json:"rider"`
	Pickup  Location     `json:"pickup"`
	Dropoff Location     `json:"dropoff"`
	Fare    float64      `json:"fare"`
}

// RideResponse is a driver's answer to an outstanding offer
type RideResponse struct {
	RideID   string `json:"ride_id"`
	DriverID string `json:"driver_id"`
	Accepted bool   `json:"accepted"`
}

// RideAccepted notifies the rider that a driver took the ride
type RideAccepted struct {
	RideID string       `json:"ride_id"`
	Driver RiderSummary `json:"driver"`
}

// OTPGenerated delivers the verification code to the rider
type OTPGenerated struct {
	Code string `json:"code"`
}

// StartLocationSharing instructs the accepting driver to begin
// streaming positions for the ride
type StartLocationSharing struct {
	RideID string       `json:"ride_id"`
	Rider  RiderSummary `json:"rider"`
}

// RideNotFound tells the rider that dispatch exhausted all candidates
type RideNotFound struct {
	Message string `json:"message"`
}

// RideLocationUpdate is a forwarded position, tagged with the
// ride's destination so clients can render progress
type RideLocationUpdate struct {
	RideID      string   `json:"ride_id"`
	Location    Location `json:"location"`
	Destination Location `json:"destination"`
}

// RelayTerminated tells both parties to release their ride listeners
type RelayTerminated struct {
	RideID string `json:"ride_id"`
}

// RideEvent is published to NSQ on ride lifecycle transitions
type RideEvent struct {
	RideID   string     `json:"ride_id"`
	RiderID  string     `json:"rider_id"`
	DriverID string     `json:"driver_id"`
	Status   RideStatus `json:"status"`
	Fare     float64    `json:"fare"`
}

// MemberNotification is delivered to stand members on roster changes
type MemberNotification struct {
	StandID   string `json:"stand_id"`
	StandName string `json:"stand_name"`
	DriverID  string `json:"driver_id"`
	Message   string `json:"message"`
}
