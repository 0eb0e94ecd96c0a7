package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Dispatch events
	EventRideRequest  = "ride_request"   // coordinator -> driver (offer)
	EventRideResponse = "ride_response"  // driver -> coordinator
	EventRideAccepted = "ride_accepted"  // coordinator -> rider
	EventOTPGenerated = "otp_generated"  // coordinator -> rider
	EventRideNotFound = "ride_not_found" // coordinator -> rider

	// Relay events
	EventStartLocationSharing = "start_location_sharing" // coordinator -> driver
	EventLocationUpdate       = "location_update"        // either party -> relay
	EventRideLocationUpdate   = "ride_location_update"   // relay -> the other party
	EventRelayTerminated      = "relay_terminated"       // relay -> both parties

	// Stand events
	EventMemberNotification = "member_notification"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorValidationFailed = "validation_failed"
	ErrorUnauthorized     = "unauthorized"
	ErrorInternalError    = "internal_error"
	ErrorInvalidLocation  = "invalid_location"
	ErrorRideNotFound     = "ride_not_found"
)

// Participant roles carried in JWT claims
const (
	RoleRider  = "rider"
	RoleDriver = "driver"
)
