package translate

import (
	"context"
	"fmt"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

// Stub is used when no API key is configured.
type Stub struct{}

// NewStub creates a translation provider that is always unavailable.
func NewStub() *Stub { return &Stub{} }

// Translate always fails with domain.ErrUnavailable.
func (s *Stub) Translate(ctx context.Context, text, target string) (string, error) {
	return "", fmt.Errorf("translation not configured: %w", domain.ErrUnavailable)
}
