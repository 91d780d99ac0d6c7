package parser

import (
	"log/slog"
	"strings"

	"cinesift/internal/language"
	"cinesift/internal/logging"
	"cinesift/internal/overrides"
	"cinesift/internal/scripts"
	"cinesift/internal/services"
	"cinesift/internal/vocab"
)

// ParsedMetadata is the final product of a parse, optionally enriched
// by external resolution. Values are never mutated in place; the
// resolution layer builds a new value when it merges provider data.
type ParsedMetadata struct {
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title,omitempty"`
	Year          int     `json:"year,omitempty"`
	Quality       string  `json:"quality,omitempty"`
	Source        string  `json:"source,omitempty"`
	Language      string  `json:"language,omitempty"`
	Audio         string  `json:"audio,omitempty"`
	Codec         string  `json:"codec,omitempty"`
	ReleaseGroup  string  `json:"release_group,omitempty"`
	Edition       string  `json:"edition,omitempty"`
	Confidence    float64 `json:"confidence"`
	TMDBID        int64   `json:"tmdb_id,omitempty"`
	// ParsingMethod records which pipeline path produced the result,
	// for reporting only.
	ParsingMethod string `json:"parsing_method"`
	// TokenCount carries the token total into the resolution-layer
	// confidence model.
	TokenCount int `json:"-"`
}

// Parser runs the local parsing pipeline. It is safe for concurrent
// use; all state is read-only after construction.
type Parser struct {
	vocab     *vocab.Vocabulary
	tokenizer *Tokenizer
	strategy  Strategy
	catalog   *overrides.Catalog
	logger    *slog.Logger
}

// New builds a parser over a compiled vocabulary. catalog may be nil
// when no override file is configured.
func New(v *vocab.Vocabulary, strategy Strategy, catalog *overrides.Catalog, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Parser{
		vocab:     v,
		tokenizer: NewTokenizer(v.ProtectedMarkers()),
		strategy:  strategy,
		catalog:   catalog,
		logger:    logging.NewComponentLogger(logger, "parser"),
	}
}

// Strategy returns the title strategy the parser was built with.
func (p *Parser) Strategy() Strategy { return p.strategy }

// Parse extracts metadata from a single filename. It fails only for
// input that yields no usable title; every other filename produces a
// best-effort result with a confidence score.
func (p *Parser) Parse(filename string) (ParsedMetadata, error) {
	if strings.TrimSpace(filename) == "" {
		return ParsedMetadata{}, services.Wrap(services.ErrInput, "parser", "parse", "empty filename", nil)
	}

	tokens := p.tokenizer.Tokenize(filename)
	if len(tokens) == 0 {
		return ParsedMetadata{}, services.Wrap(services.ErrInput, "parser", "parse", "no usable tokens in "+filename, nil)
	}

	extraction := ExtractTechnical(tokens, p.vocab)
	assembly := AssembleTitle(tokens, extraction, p.vocab, p.strategy)
	if assembly.Display == "" {
		return ParsedMetadata{}, services.Wrap(services.ErrInput, "parser", "parse", "no extractable title in "+filename, nil)
	}

	meta := ParsedMetadata{
		Title:         assembly.Display,
		OriginalTitle: assembly.Original,
		Year:          extraction.Components.Year,
		Quality:       extraction.Components.Quality,
		Source:        extraction.Components.Source,
		Audio:         extraction.Components.Audio,
		Codec:         extraction.Components.Codec,
		ReleaseGroup:  extraction.Components.ReleaseGroup,
		Language:      p.detectLanguage(filename, tokens, extraction),
		Edition:       DetectEdition(filename),
		ParsingMethod: "local",
		TokenCount:    len(tokens),
	}
	p.applyOverride(&meta, assembly)
	meta.Confidence = Score(LocalProfile, len(tokens), componentsOf(meta), meta.Title)

	p.logger.Debug("parsed filename",
		logging.String("filename", filename),
		logging.String("title", meta.Title),
		logging.Int("year", meta.Year),
		logging.Float64("confidence", meta.Confidence))
	return meta, nil
}

// SearchTitle returns the Latin-script side of the parse when one
// exists, for use as the provider query; CJK-only parses query with
// the native title.
func (p *Parser) SearchTitle(meta ParsedMetadata) string {
	if latin := LatinPortion(meta.Title); latin != "" {
		return latin
	}
	return meta.Title
}

// detectLanguage prefers an explicit language marker token; otherwise
// the filename's dominant script decides.
func (p *Parser) detectLanguage(filename string, tokens []Token, ext Extraction) string {
	for i, tok := range tokens {
		if ext.Claimed(i) {
			continue
		}
		if language.IsLanguageToken(tok.Value) {
			return language.ToISO2(tok.Value)
		}
	}
	return scripts.Classify(filename).PrimaryLanguage()
}

// applyOverride consults the user catalog for curated corrections,
// keyed by the assembled title and by its Latin portion.
func (p *Parser) applyOverride(meta *ParsedMetadata, assembly Assembly) {
	if p.catalog == nil {
		return
	}
	for _, key := range []string{assembly.Display, LatinPortion(assembly.Display), assembly.Original} {
		if key == "" {
			continue
		}
		entry, ok, err := p.catalog.Lookup(key)
		if err != nil {
			p.logger.Warn("override lookup failed", logging.Error(err))
			return
		}
		if !ok {
			continue
		}
		if meta.Year == 0 && entry.Year != 0 {
			meta.Year = entry.Year
		}
		if entry.TMDBID != 0 {
			meta.TMDBID = entry.TMDBID
		}
		if entry.DisplayTitle != "" {
			meta.Title = entry.DisplayTitle
		}
		return
	}
}

// LatinPortion extracts the Latin-script words of a mixed-script
// title, dropping bracket punctuation.
func LatinPortion(title string) string {
	var words []string
	for _, word := range strings.Fields(title) {
		word = strings.Trim(word, "[]")
		if word == "" {
			continue
		}
		profile := scripts.Classify(word)
		if profile.Has(scripts.Latin) && !profile.HasNonLatin() {
			words = append(words, word)
		}
	}
	return strings.Join(words, " ")
}

func componentsOf(meta ParsedMetadata) Components {
	return Components{
		Year:         meta.Year,
		Quality:      meta.Quality,
		Source:       meta.Source,
		Audio:        meta.Audio,
		Codec:        meta.Codec,
		ReleaseGroup: meta.ReleaseGroup,
	}
}
