package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInput marks filenames that yield nothing parseable: empty input or
	// a token stream that filters down to zero usable tokens.
	ErrInput = errors.New("input error")

	// ErrProvider marks failures from the external metadata provider:
	// network, timeout, authentication, or rate limiting. Callers treat it
	// as "try the next strategy", never as fatal.
	ErrProvider = errors.New("provider error")

	// ErrCache marks serialization or store-access failures in the
	// resolution cache. Callers degrade to a cache miss.
	ErrCache = errors.New("cache error")

	// ErrConfiguration marks malformed vocabulary or strategy data. This is
	// the only class that should abort startup.
	ErrConfiguration = errors.New("configuration error")

	// ErrTransient marks retryable failures that fit no other class.
	ErrTransient = errors.New("transient failure")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsFatal reports whether the error should abort startup rather than degrade.
// Only configuration errors qualify: a bad vocabulary means no classification
// decision downstream can be trusted.
func IsFatal(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// DegradesToMiss reports whether the error should be treated as a cache miss.
func DegradesToMiss(err error) bool {
	return errors.Is(err, ErrCache)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
