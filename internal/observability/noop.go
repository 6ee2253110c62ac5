package observability

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) ObserveReport(string, float64)           {}
func (Noop) ObserveHTTP(string, string, int, float64) {}
func (Noop) IncCacheHit(string)                      {}
func (Noop) IncCacheMiss(string)                     {}
func (Noop) IncInvalidation(string)                  {}
