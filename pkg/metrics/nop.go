package metrics

// Nop is a no-op recorder for CLI runs and tests, where nothing scrapes
// the registry.
type Nop struct{}

func (Nop) RecordFetch(string, string)       {}
func (Nop) RecordError(string)               {}
func (Nop) RecordLastPrice(string, float64)  {}
func (Nop) RecordLatency(string, float64)    {}
func (Nop) RecordScore(string, int)          {}
func (Nop) RecordCache(bool)                 {}
