// Package pool
// Author: momentics <momentics@gmail.com>
//
// Storage providers for handle-owned rings. Implements api.StorageAllocator
// over the Go heap, recycled fixed-size regions, and (on Linux) anonymous
// hugepage mappings with transparent heap fallback.
// Ring storage obtained here is owned by the handle that acquired it and is
// returned through Free on Close; caller-supplied storage never passes
// through this package.
package pool
