package telemetry

import (
	"context"
	"time"
)

// Collector records control-loop ticks.
type Collector interface {
	Record(ctx context.Context, snapshot *TickSnapshot) error
	Close() error
}

// Repository defines the interface for tick data storage
type Repository interface {
	Record(snapshot *TickSnapshot) error
	Close() error
}

// TickSnapshot captures one completed control-loop tick.
type TickSnapshot struct {
	Timestamp    time.Time
	MonitorIndex int
	Sample       float64
	Average      float64
	Level        int
	Goal         float64
	Applied      float64
}
