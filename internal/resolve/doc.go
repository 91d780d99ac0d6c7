// Package resolve reconciles a locally parsed title against an
// external metadata provider.
//
// A lookup walks an ordered ladder of search strategies (exact,
// year-relaxed, cleaned title, title variations), fuzzy-scores every
// candidate the provider returns, and accepts the first strategy whose
// best candidate clears the threshold. Results, including definitive
// misses, are cached under TTL. Exhausting the ladder is a normal
// outcome, not an error.
package resolve
