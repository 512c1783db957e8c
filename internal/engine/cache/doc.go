// Package cache provides an in-memory store with TTL expiration for token data.
//
// This package implements short-lived response caching so repeated lookups
// within one invocation avoid redundant pricing-API calls. Key features:
//   - Map-backed storage, no external dependencies
//   - Configurable TTL (default 5 minutes) via config file, environment variable, or CLI flag
//   - Lazy eviction: expired entries are removed when next read
//   - Hit/miss counters for observability
//
// Entries are created on successful fetch and overwritten on refetch of the
// same key. There is no capacity bound; growth is limited in practice by the
// fixed token catalog.
package cache
