// Package queries contains read-only operations following the CQRS pattern.
// List queries read the database directly with raw SQL; deep reads that need
// a fully restored aggregate (summary, load report) go through the order
// repository without change tracking.
package queries

import (
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
)

// noTracking satisfies the repositories' aggregate tracker for read paths.
// Queries never persist, so tracked aggregates are simply discarded.
type noTracking struct{}

func (noTracking) TrackAggregate(kernel.UUID, any) {}
