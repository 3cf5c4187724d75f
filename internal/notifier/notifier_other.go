//go:build !windows && !linux

package notifier

import "github.com/lennarthald/toastkit/internal/logx"

func newPlatformNotifier(_ logx.Logger) Notifier {
	return unavailableNotifier{}
}

func detect() Capabilities {
	return Capabilities{}
}
