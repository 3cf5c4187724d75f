// Package notify provides plain desktop banner support for toastkit.
//
// Banners are the degraded delivery path. They carry a title, a flat
// message and an optional icon, with none of the notification document
// structure, and they report nothing back about what the user did.
package notify

import (
	"strings"

	"github.com/lennarthald/toastkit/internal/config"
)

// Sender defines the interface for sending plain desktop banners.
type Sender interface {
	// Banner sends a standard banner.
	Banner(title, message, iconPath string) error
	// Alert sends a banner with the platform's attention sound.
	Alert(title, message, iconPath string) error
}

// Option configures a Sender.
type Option func(*sender)

// WithBackend sets a custom banner backend (for testing).
func WithBackend(backend Backend) Option {
	return func(s *sender) {
		s.backend = backend
	}
}

// sender sends plain banners using the system notification service.
type sender struct {
	enabled bool
	backend Backend
}

// Banner sends a standard banner.
func (s *sender) Banner(title, message, iconPath string) error {
	if !s.enabled {
		return nil
	}

	return s.backend.Notify(title, message, iconPath)
}

// Alert sends a banner with the platform's attention sound.
func (s *sender) Alert(title, message, iconPath string) error {
	if !s.enabled {
		return nil
	}

	return s.backend.Alert(title, message, iconPath)
}

// New creates a new Sender based on the configuration.
func New(cfg config.FallbackConfig, opts ...Option) Sender {
	s := &sender{
		enabled: cfg.Enabled,
		backend: newDesktopBackend(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Message joins body lines into a single banner message. Empty lines are
// dropped; they only exist to pad template slots.
func Message(lines []string) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, "\n")
}
