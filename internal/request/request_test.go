package request

import (
	"strings"
	"testing"
	"time"

	"github.com/lennarthald/toastkit/internal/shortcut"
)

func TestFromJSONMapsEveryField(t *testing.T) {
	data := []byte(`{
		"ToastTitle": "Build finished",
		"ToastBody": "ignored when the list is present",
		"ToastBodyList": ["all targets green", "took 42s"],
		"ToastLogoFilePath": "C:\\logos\\build.png",
		"ToastAudio": "Reminder",
		"ShortcutFileName": "MyApp.lnk",
		"ShortcutTargetFilePath": "C:\\apps\\myapp.exe",
		"ShortcutArguments": "--from-toast",
		"ShortcutComment": "My application",
		"ShortcutWorkingFolder": "C:\\apps",
		"ShortcutWindowState": "Maximized",
		"ShortcutIconFilePath": "C:\\apps\\myapp.ico",
		"AppId": "MyCompany.MyApp",
		"ActivatorId": "{23A5B06E-20BB-4E7E-A0AC-6982ED6A6041}",
		"WaitingDuration": "10s",
		"MaximumDuration": 90
	}`)

	req, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON() unexpected error: %v", err)
	}

	if req.ToastTitle != "Build finished" {
		t.Errorf("ToastTitle = %q", req.ToastTitle)
	}
	if len(req.ToastBodyList) != 2 || req.ToastBodyList[0] != "all targets green" {
		t.Errorf("ToastBodyList = %v", req.ToastBodyList)
	}
	if req.ToastAudio != "Reminder" {
		t.Errorf("ToastAudio = %q", req.ToastAudio)
	}
	if req.ShortcutFileName != "MyApp.lnk" {
		t.Errorf("ShortcutFileName = %q", req.ShortcutFileName)
	}
	if req.AppID != "MyCompany.MyApp" {
		t.Errorf("AppID = %q", req.AppID)
	}
	if req.ActivatorID != "{23A5B06E-20BB-4E7E-A0AC-6982ED6A6041}" {
		t.Errorf("ActivatorID = %q", req.ActivatorID)
	}
	if req.WaitingDuration.Std() != 10*time.Second {
		t.Errorf("WaitingDuration = %s, want 10s", req.WaitingDuration)
	}
	if req.MaximumDuration.Std() != 90*time.Second {
		t.Errorf("MaximumDuration = %s, want 90s", req.MaximumDuration)
	}
}

func TestFromJSONRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"truncated", `{"ToastTitle": "x"`},
		{"not json", `ToastTitle=x`},
		{"wrong type", `{"ToastBodyList": "not a list"}`},
		{"bad audio", `{"ToastTitle": "x", "ToastAudio": "Klaxon"}`},
		{"bad window state", `{"ShortcutFileName": "a.lnk", "ShortcutTargetFilePath": "C:\\a.exe", "ShortcutWindowState": "sideways"}`},
		{"bad duration", `{"ToastTitle": "x", "WaitingDuration": "soon"}`},
		{"negative duration", `{"ToastTitle": "x", "MaximumDuration": "-5s"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromJSON([]byte(tt.data)); err == nil {
				t.Errorf("FromJSON(%s) expected error", tt.data)
			}
		})
	}
}

func TestValidateShortcutAnchors(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{
			name: "no shortcut fields",
			req:  Request{ToastTitle: "x"},
		},
		{
			name: "complete anchors",
			req: Request{
				ShortcutFileName:       "a.lnk",
				ShortcutTargetFilePath: `C:\a.exe`,
			},
		},
		{
			name:    "arguments without anchors",
			req:     Request{ShortcutArguments: "--flag"},
			wantErr: true,
		},
		{
			name:    "file name without target",
			req:     Request{ShortcutFileName: "a.lnk"},
			wantErr: true,
		},
		{
			name:    "icon without file name",
			req:     Request{ShortcutIconFilePath: `C:\a.ico`, ShortcutTargetFilePath: `C:\a.exe`},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestBodyLines(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want []string
	}{
		{
			name: "list wins over single body",
			req:  Request{ToastBody: "single", ToastBodyList: []string{"a", "b"}},
			want: []string{"a", "b"},
		},
		{
			name: "single body",
			req:  Request{ToastBody: "single"},
			want: []string{"single"},
		},
		{
			name: "no body",
			req:  Request{ToastTitle: "t"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.req.BodyLines()
			if len(got) != len(tt.want) {
				t.Fatalf("BodyLines() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("BodyLines()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestIsToastValid(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want bool
	}{
		{"title only", Request{ToastTitle: "t"}, true},
		{"body only", Request{ToastBody: "b"}, true},
		{"body list only", Request{ToastBodyList: []string{"", "b"}}, true},
		{"raw document only", Request{ToastXML: "<toast/>"}, true},
		{"logo only", Request{ToastLogoFilePath: `C:\logo.png`}, false},
		{"audio only", Request{ToastAudio: "IM"}, false},
		{"empty body lines", Request{ToastBodyList: []string{"", ""}}, false},
		{"empty", Request{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.IsToastValid(); got != tt.want {
				t.Errorf("IsToastValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDeclaresShortcut(t *testing.T) {
	if (&Request{ToastTitle: "t"}).DeclaresShortcut() {
		t.Error("request without shortcut fields declares a shortcut")
	}

	fields := []Request{
		{ShortcutFileName: "a.lnk"},
		{ShortcutTargetFilePath: `C:\a.exe`},
		{ShortcutArguments: "-x"},
		{ShortcutComment: "c"},
		{ShortcutWorkingFolder: `C:\`},
		{ShortcutWindowState: "Normal"},
		{ShortcutIconFilePath: `C:\a.ico`},
	}
	for i, req := range fields {
		if !req.DeclaresShortcut() {
			t.Errorf("field %d should declare a shortcut", i)
		}
	}
}

func TestEffectiveAppID(t *testing.T) {
	req := Request{AppID: "Explicit.App"}
	if got := req.EffectiveAppID("Fallback.App"); got != "Explicit.App" {
		t.Errorf("EffectiveAppID() = %q, want the explicit id", got)
	}

	req = Request{}
	if got := req.EffectiveAppID("Fallback.App"); got != "Fallback.App" {
		t.Errorf("EffectiveAppID() = %q, want the fallback", got)
	}
}

func TestShortcutRecord(t *testing.T) {
	req := Request{
		ShortcutFileName:       "MyApp.lnk",
		ShortcutTargetFilePath: `C:\apps\myapp.exe`,
		ShortcutArguments:      "--from-toast",
		ShortcutComment:        "My application",
		ShortcutWorkingFolder:  `C:\apps`,
		ShortcutWindowState:    "Minimized",
		ShortcutIconFilePath:   `C:\apps\myapp.ico`,
		ActivatorID:            "{23A5B06E-20BB-4E7E-A0AC-6982ED6A6041}",
	}

	rec, err := req.ShortcutRecord("MyCompany.MyApp")
	if err != nil {
		t.Fatalf("ShortcutRecord() unexpected error: %v", err)
	}

	want := shortcut.Record{
		FileName:      "MyApp.lnk",
		TargetPath:    `C:\apps\myapp.exe`,
		Arguments:     "--from-toast",
		Comment:       "My application",
		WorkingFolder: `C:\apps`,
		WindowState:   shortcut.WindowMinimized,
		IconPath:      `C:\apps\myapp.ico`,
		AppID:         "MyCompany.MyApp",
		ActivatorID:   "{23A5B06E-20BB-4E7E-A0AC-6982ED6A6041}",
	}
	if !rec.Equivalent(want) {
		t.Errorf("ShortcutRecord() = %+v, want %+v", rec, want)
	}
}

func TestComposeInput(t *testing.T) {
	req := Request{
		ToastTitle:        "T",
		ToastBodyList:     []string{"B1", "B2"},
		ToastLogoFilePath: `C:\logo.png`,
		ToastAudio:        "LoopingAlarm2",
	}

	in := req.ComposeInput()
	if in.Title != "T" || in.LogoPath != `C:\logo.png` {
		t.Errorf("ComposeInput() = %+v", in)
	}
	if len(in.BodyLines) != 2 {
		t.Errorf("ComposeInput().BodyLines = %v", in.BodyLines)
	}
	if in.Audio.String() != "LoopingAlarm2" {
		t.Errorf("ComposeInput().Audio = %s", in.Audio)
	}
}

func TestSampleIsValid(t *testing.T) {
	req := Sample()
	if err := req.Validate(); err != nil {
		t.Fatalf("Sample() does not validate: %v", err)
	}
	if !req.IsToastValid() {
		t.Error("Sample() is not worth showing")
	}
	if req.AppID != "" {
		t.Error("Sample() should leave the app id to the configuration")
	}
}

func TestDurationUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    time.Duration
		wantErr bool
	}{
		{"duration string", `"90s"`, 90 * time.Second, false},
		{"composite duration", `"1m30s"`, 90 * time.Second, false},
		{"bare seconds", `90`, 90 * time.Second, false},
		{"fractional seconds", `1.5`, 1500 * time.Millisecond, false},
		{"zero", `0`, 0, false},
		{"null", `null`, 0, false},
		{"empty string", `""`, 0, false},
		{"words", `"soon"`, 0, true},
		{"object", `{}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("UnmarshalJSON(%s) expected error", tt.data)
				}
				return
			}
			if err != nil {
				t.Fatalf("UnmarshalJSON(%s) unexpected error: %v", tt.data, err)
			}
			if d.Std() != tt.want {
				t.Errorf("UnmarshalJSON(%s) = %s, want %s", tt.data, d, tt.want)
			}
		})
	}
}

func TestDurationMarshalRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() unexpected error: %v", err)
	}
	if !strings.Contains(string(data), "1m30s") {
		t.Errorf("MarshalJSON() = %s, want the string form", data)
	}

	var back Duration
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON() unexpected error: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}
