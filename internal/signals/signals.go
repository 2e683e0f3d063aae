package signals

import (
	"context"

	"github.com/maniartech/signals"
)

// EntityStateChangedData describes a change in the host's entity states
type EntityStateChangedData struct {
	EntityID string
	// Available is false when the entity was removed
	Available bool
	Version   uint64
}

// DashboardReconfiguredData is emitted after the dashboard mounted its cards
type DashboardReconfiguredData struct {
	Cards  int
	Failed int
}

// Signal definitions using generics
var EntityStateChanged = signals.New[EntityStateChangedData]()
var DashboardReconfigured = signals.New[DashboardReconfiguredData]()

// EmitEntityStateChanged emits a signal when an entity state is set or removed
func EmitEntityStateChanged(ctx context.Context, data EntityStateChangedData) {
	EntityStateChanged.Emit(ctx, data)
}

// EmitDashboardReconfigured emits a signal when the dashboard finished configuring its cards
func EmitDashboardReconfigured(ctx context.Context, cards, failed int) {
	DashboardReconfigured.Emit(ctx, DashboardReconfiguredData{
		Cards:  cards,
		Failed: failed,
	})
}

// OnEntityStateChanged registers a handler for entity state changes
func OnEntityStateChanged(handler func(ctx context.Context, data EntityStateChangedData), key ...string) {
	if len(key) > 0 {
		EntityStateChanged.AddListener(handler, key[0])
	} else {
		EntityStateChanged.AddListener(handler)
	}
}

// OffEntityStateChanged removes the handler registered under key
func OffEntityStateChanged(key string) {
	EntityStateChanged.RemoveListener(key)
}

// OnDashboardReconfigured registers a handler for dashboard reconfiguration events
func OnDashboardReconfigured(handler func(ctx context.Context, data DashboardReconfiguredData), key ...string) {
	if len(key) > 0 {
		DashboardReconfigured.AddListener(handler, key[0])
	} else {
		DashboardReconfigured.AddListener(handler)
	}
}

// OffDashboardReconfigured removes the handler registered under key
func OffDashboardReconfigured(key string) {
	DashboardReconfigured.RemoveListener(key)
}
