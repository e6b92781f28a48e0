// Package contentcache implements the single-slot, read-through cache that
// sits between guide handlers and the document source. Each key owns one
// entry: a snapshot (body, source version, expiry) behind an atomic pointer
// for lock-free reads, plus a cancellable refresh lock that serializes
// concurrent refreshes down to one in-flight source read. Source failures
// other than cancellation never reach callers: the cache degrades to the
// per-guide fallback text and recovers on the next expiry-triggered refresh.
package contentcache
