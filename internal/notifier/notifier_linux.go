package notifier

import (
	"github.com/godbus/dbus/v5"

	"github.com/lennarthald/toastkit/internal/logx"
)

func newPlatformNotifier(log logx.Logger) Notifier {
	return NewDBusNotifier(log)
}

// detect checks for a reachable session bus. The desktop notification
// service takes flexible content, so a reachable bus enables both.
func detect() Capabilities {
	if _, err := dbus.SessionBus(); err != nil {
		return Capabilities{}
	}
	return Capabilities{Toasts: true, ModernTemplates: true}
}
