// Package scripts classifies text by Unicode writing system. It backs the
// CJK-aware title assembly: tokens are partitioned into Latin, Han, and Kana
// buckets, and whole filenames get a primary-language guess plus a bilingual
// flag. The package is pure and carries no configuration.
package scripts
