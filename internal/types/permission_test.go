package types

import "testing"

func TestGateResult(t *testing.T) {
	tests := []struct {
		name    string
		setting PermissionSetting
		want    Result
		blocked bool
	}{
		{"enabled passes", SettingEnabled, ResultInvalid, false},
		{"disabled for application", SettingDisabledForApplication, ResultDisabledForApplication, true},
		{"disabled for user", SettingDisabledForUser, ResultDisabledForUser, true},
		{"disabled by group policy", SettingDisabledByGroupPolicy, ResultDisabledByGroupPolicy, true},
		{"disabled by manifest", SettingDisabledByManifest, ResultDisabledByManifest, true},
		{"unknown blocks as invalid", SettingUnknown, ResultInvalid, true},
		{"out of range blocks as invalid", PermissionSetting(42), ResultInvalid, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, blocked := tt.setting.GateResult()
			if blocked != tt.blocked {
				t.Fatalf("GateResult() blocked = %v, want %v", blocked, tt.blocked)
			}
			if blocked && got != tt.want {
				t.Errorf("GateResult() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParsePermissionSetting(t *testing.T) {
	tests := []struct {
		input string
		want  PermissionSetting
	}{
		{"Enabled", SettingEnabled},
		{"DisabledForApplication", SettingDisabledForApplication},
		{"DisabledForUser", SettingDisabledForUser},
		{"DisabledByGroupPolicy", SettingDisabledByGroupPolicy},
		{"DisabledByManifest", SettingDisabledByManifest},
		{"SomethingNew", SettingUnknown},
		{"", SettingUnknown},
	}

	for _, tt := range tests {
		if got := ParsePermissionSetting(tt.input); got != tt.want {
			t.Errorf("ParsePermissionSetting(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
