package types

// PermissionSetting reports whether the notification platform allows this
// application identity to raise notifications. It mirrors the platform's
// notifier setting enumeration.
type PermissionSetting int

const (
	// SettingEnabled means notifications may be shown.
	SettingEnabled PermissionSetting = iota
	// SettingDisabledForApplication means the user turned notifications off
	// for this specific application.
	SettingDisabledForApplication
	// SettingDisabledForUser means notifications are off for the whole
	// user session.
	SettingDisabledForUser
	// SettingDisabledByGroupPolicy means machine policy blocks
	// notifications.
	SettingDisabledByGroupPolicy
	// SettingDisabledByManifest means the application manifest declares
	// notifications unsupported.
	SettingDisabledByManifest
	// SettingUnknown is reported when the platform returns a value this
	// code does not recognize.
	SettingUnknown
)

// String returns the platform name for the setting.
func (s PermissionSetting) String() string {
	switch s {
	case SettingEnabled:
		return "Enabled"
	case SettingDisabledForApplication:
		return "DisabledForApplication"
	case SettingDisabledForUser:
		return "DisabledForUser"
	case SettingDisabledByGroupPolicy:
		return "DisabledByGroupPolicy"
	case SettingDisabledByManifest:
		return "DisabledByManifest"
	default:
		return "Unknown"
	}
}

// ParsePermissionSetting parses a platform setting name.
// Unrecognized names map to SettingUnknown, never to an error: the gate
// decides how to report them.
func ParsePermissionSetting(s string) PermissionSetting {
	switch s {
	case "Enabled":
		return SettingEnabled
	case "DisabledForApplication":
		return SettingDisabledForApplication
	case "DisabledForUser":
		return SettingDisabledForUser
	case "DisabledByGroupPolicy":
		return SettingDisabledByGroupPolicy
	case "DisabledByManifest":
		return SettingDisabledByManifest
	default:
		return SettingUnknown
	}
}

// GateResult maps a setting to the Result that reports a blocked
// submission. The boolean is true when the setting blocks the
// notification; it is false only for SettingEnabled. Unrecognized setting
// values block with ResultInvalid rather than guessing a disabled variant.
func (s PermissionSetting) GateResult() (Result, bool) {
	switch s {
	case SettingEnabled:
		return ResultInvalid, false
	case SettingDisabledForApplication:
		return ResultDisabledForApplication, true
	case SettingDisabledForUser:
		return ResultDisabledForUser, true
	case SettingDisabledByGroupPolicy:
		return ResultDisabledByGroupPolicy, true
	case SettingDisabledByManifest:
		return ResultDisabledByManifest, true
	default:
		return ResultInvalid, true
	}
}
