// Package textutil provides text processing utilities for title
// normalization and similarity scoring.
//
// Titles arriving from release filenames and from metadata providers
// differ in case, punctuation, and spacing. Normalize collapses both
// sides onto a comparable form; Similarity then scores the match on a
// 0-100 scale using Levenshtein edit distance.
package textutil
