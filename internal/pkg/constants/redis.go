package constants

// Redis key formats
const (
	// Stand geo index: GEOADD/GEORADIUS set of all stand locations
	KeyStandGeo = "stands:geo"

	// Ride OTP storage with TTL-based expiry
	KeyRideOTP = "ride:otp:%s" // Format: ride:otp:{ride_id}

	// Offline notification buffer, flushed on next connect
	KeyOfflineNotifications = "notify:offline:%s" // Format: notify:offline:{user_id}
)
