package physics

// KmhToMs converts km/h to m/s.
func KmhToMs(speedKmh float64) float64 {
	return speedKmh * 1000.0 / 3600.0
}

// MsToKmh converts m/s back to km/h.
func MsToKmh(speedMs float64) float64 {
	return speedMs * 3.6
}
