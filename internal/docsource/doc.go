// Package docsource defines the durable document store behind the content
// cache. Documents are keyed by docs-relative paths and carry a version token
// (file modtime) that higher layers use for conditional revalidation. The
// package exposes a cheap metadata probe (Stat) separate from the full body
// read (Read) so callers can validate cached copies without touching bodies,
// plus an error classification helper that maps any source failure onto the
// not-found / transient / canceled policy the cache layer switches on.
package docsource
