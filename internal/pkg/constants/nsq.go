package constants

// NSQ topics
const (
	// Inbound ride requests from upstream producers
	TopicRideRequested = "ride.requested"

	// Ride lifecycle events
	TopicRideAccepted  = "ride.accepted"
	TopicRideStarted   = "ride.started"
	TopicRideCompleted = "ride.completed"
	TopicRideCancelled = "ride.cancelled"
)
