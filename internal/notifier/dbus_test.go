package notifier

import (
	"testing"

	"github.com/lennarthald/toastkit/internal/toast"
	"github.com/lennarthald/toastkit/internal/types"
)

func TestCloseReason(t *testing.T) {
	tests := []struct {
		code uint32
		want types.DismissReason
	}{
		{1, types.ReasonTimedOut},
		{2, types.ReasonUserCanceled},
		{3, types.ReasonApplicationHidden},
		{4, types.ReasonUnknown},
		{0, types.ReasonUnknown},
		{99, types.ReasonUnknown},
	}

	for _, tt := range tests {
		if got := closeReason(tt.code); got != tt.want {
			t.Errorf("closeReason(%d) = %s, want %s", tt.code, got, tt.want)
		}
	}
}

func TestDocumentContent(t *testing.T) {
	tests := []struct {
		name        string
		doc         *toast.Document
		wantSummary string
		wantBody    string
	}{
		{
			name:        "title and bodies",
			doc:         toast.Compose(toast.Input{Title: "T", BodyLines: []string{"B1", "B2"}}, toast.FamilyGeneric),
			wantSummary: "T",
			wantBody:    "B1\nB2",
		},
		{
			name:        "legacy padding is skipped",
			doc:         toast.Compose(toast.Input{Title: "only a title"}, toast.FamilyLegacy),
			wantSummary: "only a title",
			wantBody:    "",
		},
		{
			name:        "body only",
			doc:         toast.Compose(toast.Input{BodyLines: []string{"B"}}, toast.FamilyGeneric),
			wantSummary: "B",
			wantBody:    "",
		},
		{
			name:        "empty input",
			doc:         toast.Compose(toast.Input{}, toast.FamilyGeneric),
			wantSummary: "",
			wantBody:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, body := documentContent(tt.doc)
			if summary != tt.wantSummary {
				t.Errorf("summary = %q, want %q", summary, tt.wantSummary)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestDocumentIcon(t *testing.T) {
	withLogo := toast.Compose(toast.Input{Title: "T", LogoPath: "/tmp/logo.png"}, toast.FamilyGeneric)
	if got := documentIcon(withLogo); got != "/tmp/logo.png" {
		t.Errorf("documentIcon() = %q, want %q", got, "/tmp/logo.png")
	}

	withoutLogo := toast.Compose(toast.Input{Title: "T"}, toast.FamilyGeneric)
	if got := documentIcon(withoutLogo); got != "" {
		t.Errorf("documentIcon() = %q, want empty", got)
	}
}

func TestCapabilitiesFamily(t *testing.T) {
	modern := Capabilities{Toasts: true, ModernTemplates: true}
	if got := modern.Family(); got != toast.FamilyGeneric {
		t.Errorf("Family() = %s, want %s", got, toast.FamilyGeneric)
	}

	legacy := Capabilities{Toasts: true}
	if got := legacy.Family(); got != toast.FamilyLegacy {
		t.Errorf("Family() = %s, want %s", got, toast.FamilyLegacy)
	}
}
