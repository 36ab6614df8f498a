package service

// MetricsRecorder receives business metrics from use cases.
type MetricsRecorder interface {
	OrderPlaced(amount float64)
	UserSignedUp(role string)
	UserLoggedIn()
	CacheLookup(cache string, hit bool)
	RateLimited()
}
