// Package language maps ISO 639 language codes and full language words to a
// normalized form. The title assembler uses it to drop language-marker tokens
// ("CHS", "eng", "Japanese") from titles, and the resolution merge uses it to
// normalize provider-reported original languages.
package language
