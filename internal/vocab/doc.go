// Package vocab holds the technical vocabulary the parser classifies tokens
// against: quality, source, audio, codec, and release-group markers, plus the
// noise and title-preservation lists. Vocabularies are injected data — loaded
// from configuration and compiled into lookup sets — never compiled-in
// constants, so lists can change without a rebuild.
package vocab
