// Package resolvecache stores resolution results under TTL so repeated
// lookups for the same title skip the provider entirely.
//
// Two backends implement the Store contract: an in-memory map for
// one-shot runs and tests, and a SQLite database for persistence
// across invocations. Expired entries are deleted lazily on read.
// Cache failures degrade to misses; they never fail a parse.
package resolvecache
