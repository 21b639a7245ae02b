package sync

import (
	"context"
	"fmt"
	"log"
)

// fallbackStep is one alternative request shape in an ordered chain.
// The remote contract for these calls is not stable across environments,
// so every shape failure just means "try the next one".
type fallbackStep struct {
	name string
	run  func(context.Context) error
}

// runFirstAccepted tries the steps in order and stops at the first one the
// remote accepts. Returns the accepted step's name; exhaustion returns the
// last error. Adding a fourth shape later is one more list entry.
func runFirstAccepted(ctx context.Context, what string, steps []fallbackStep) (string, error) {
	var lastErr error
	for _, s := range steps {
		if err := s.run(ctx); err != nil {
			log.Printf("WARN: %s: shape %q rejected: %v", what, s.name, err)
			lastErr = err
			continue
		}
		return s.name, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("%s: no shapes to try", what)
	}
	return "", fmt.Errorf("%s: all shapes rejected: %w", what, lastErr)
}
