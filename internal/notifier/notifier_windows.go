package notifier

import (
	"golang.org/x/sys/windows"

	"github.com/lennarthald/toastkit/internal/logx"
	"github.com/lennarthald/toastkit/internal/powershell"
)

func newPlatformNotifier(log logx.Logger) Notifier {
	return NewScriptNotifier(powershell.NewCommandRunner(), log)
}

// detect reads the true OS version, which is not subject to manifest
// compatibility shims. Toast notifications arrived with version 6.2 and
// the flexible document family with version 10.
func detect() Capabilities {
	v := windows.RtlGetVersion()
	return Capabilities{
		Toasts:          v.MajorVersion > 6 || (v.MajorVersion == 6 && v.MinorVersion >= 2),
		ModernTemplates: v.MajorVersion >= 10,
	}
}
