// Package services contains stateless domain services that coordinate logic
// across aggregates: matching open order demand against a coil, resolving the
// binding skid-capacity ceiling, and partitioning matched demand into
// work-order line items.
//
// All services are pure: they read the inputs they are handed and return
// results without touching storage. The application layer owns lookups and
// persistence, which keeps allocation runs deterministic and trivially
// testable.
package services
