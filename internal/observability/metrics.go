package observability

type Metrics interface {
	ObserveReport(report string, durMs float64)
	ObserveHTTP(method, route string, status int, durMs float64)
	IncCacheHit(report string)
	IncCacheMiss(report string)
	IncInvalidation(key string)
}
