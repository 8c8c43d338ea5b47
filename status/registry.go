package status

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Registry is the central telemetry facade
// Components cache metric pointers at construction; the tick loop writes directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Fields renders every metric as a zap field, grouped by type and sorted by key
func (r *Registry) Fields() []zap.Field {
	fields := make([]zap.Field, 0, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		fields = append(fields, zap.Int64(key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		fields = append(fields, zap.Float64(key, v.Get()))
	})
	r.Bools.Range(func(key string, v *atomic.Bool) {
		fields = append(fields, zap.Bool(key, v.Load()))
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		fields = append(fields, zap.String(key, v.Load()))
	})
	return fields
}

// Int returns the current value of an integer metric, zero if never registered
func (r *Registry) Int(key string) int64 {
	if !r.Ints.Has(key) {
		return 0
	}
	return r.Ints.Get(key).Load()
}
