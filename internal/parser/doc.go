// Package parser turns release filenames into structured metadata.
//
// The pipeline runs in fixed stages: tokenize the filename, extract
// technical attributes (year, quality, source, audio, codec, release
// group) against the configured vocabulary, classify the scripts in
// play, assemble a display title from the leftover tokens, and score
// confidence in the result. Every stage is a pure function over the
// token list; Parser wires them together.
package parser
