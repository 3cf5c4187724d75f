// Package notifier submits composed notification documents to the
// platform notification service and reports back what happens to them.
package notifier

import (
	"context"
	"errors"
	"time"

	"github.com/lennarthald/toastkit/internal/logx"
	"github.com/lennarthald/toastkit/internal/session"
	"github.com/lennarthald/toastkit/internal/toast"
	"github.com/lennarthald/toastkit/internal/types"
)

// ErrUnavailable is returned when no platform notifier exists on this
// system.
var ErrUnavailable = errors.New("platform notifier is not available")

// ShowOptions carries the per-notification submission knobs.
type ShowOptions struct {
	// Expiry removes the notification after the duration, surfacing to the
	// session as a timed-out dismissal. Zero leaves the platform default.
	Expiry time.Duration
}

// Notifier is the platform seam. Setting answers the permission question
// before anything is composed or shown; Show submits a document and hands
// back the session that will carry its outcome.
type Notifier interface {
	// Setting returns the platform notification setting for the app.
	Setting(ctx context.Context, appID string) (types.PermissionSetting, error)
	// Show submits the document under the app's identity.
	Show(ctx context.Context, appID string, doc *toast.Document, opts ShowOptions) (*session.Session, error)
}

// Capabilities describes what the platform notification stack supports.
type Capabilities struct {
	// Toasts is false on systems with no notification service at all.
	Toasts bool
	// ModernTemplates selects the flexible document family over the fixed
	// legacy templates.
	ModernTemplates bool
}

// Family returns the document family the capabilities call for.
func (c Capabilities) Family() toast.Family {
	if c.ModernTemplates {
		return toast.FamilyGeneric
	}
	return toast.FamilyLegacy
}

// New returns the notifier for the current platform.
func New(log logx.Logger) Notifier {
	return newPlatformNotifier(log)
}

// Detect probes the notification capabilities of this system.
func Detect() Capabilities {
	return detect()
}

// unavailableNotifier rejects every call. It backs platforms with no
// notification service.
type unavailableNotifier struct{}

func (unavailableNotifier) Setting(context.Context, string) (types.PermissionSetting, error) {
	return types.SettingUnknown, ErrUnavailable
}

func (unavailableNotifier) Show(context.Context, string, *toast.Document, ShowOptions) (*session.Session, error) {
	return nil, ErrUnavailable
}
