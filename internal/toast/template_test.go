package toast

import (
	"strings"
	"testing"
)

func TestSelectLayout(t *testing.T) {
	tests := []struct {
		name      string
		hasLogo   bool
		hasTitle  bool
		bodyCount int
		want      Layout
	}{
		{
			name:      "no title no logo no body",
			hasLogo:   false,
			hasTitle:  false,
			bodyCount: 0,
			want:      LayoutText01,
		},
		{
			name:      "no title single body",
			hasLogo:   false,
			hasTitle:  false,
			bodyCount: 1,
			want:      LayoutText01,
		},
		{
			name:      "no title two bodies still single line",
			hasLogo:   false,
			hasTitle:  false,
			bodyCount: 2,
			want:      LayoutText01,
		},
		{
			name:      "logo without title",
			hasLogo:   true,
			hasTitle:  false,
			bodyCount: 0,
			want:      LayoutImageText01,
		},
		{
			name:      "logo without title two bodies",
			hasLogo:   true,
			hasTitle:  false,
			bodyCount: 2,
			want:      LayoutImageText01,
		},
		{
			name:      "title alone",
			hasLogo:   false,
			hasTitle:  true,
			bodyCount: 0,
			want:      LayoutText02,
		},
		{
			name:      "title with one body",
			hasLogo:   false,
			hasTitle:  true,
			bodyCount: 1,
			want:      LayoutText02,
		},
		{
			name:      "title with two bodies",
			hasLogo:   false,
			hasTitle:  true,
			bodyCount: 2,
			want:      LayoutText04,
		},
		{
			name:      "logo and title",
			hasLogo:   true,
			hasTitle:  true,
			bodyCount: 0,
			want:      LayoutImageText02,
		},
		{
			name:      "logo and title with one body",
			hasLogo:   true,
			hasTitle:  true,
			bodyCount: 1,
			want:      LayoutImageText02,
		},
		{
			name:      "logo and title with two bodies",
			hasLogo:   true,
			hasTitle:  true,
			bodyCount: 2,
			want:      LayoutImageText04,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectLayout(tt.hasLogo, tt.hasTitle, tt.bodyCount)
			if got != tt.want {
				t.Errorf("SelectLayout(%v, %v, %d) = %s, want %s",
					tt.hasLogo, tt.hasTitle, tt.bodyCount, got, tt.want)
			}
		})
	}
}

func TestSelectLayoutNeverPicksExcludedVariants(t *testing.T) {
	for _, hasLogo := range []bool{false, true} {
		for _, hasTitle := range []bool{false, true} {
			for bodyCount := 0; bodyCount <= 2; bodyCount++ {
				got := SelectLayout(hasLogo, hasTitle, bodyCount)
				if strings.Contains(got.String(), "03") {
					t.Errorf("SelectLayout(%v, %v, %d) = %s, excluded variant",
						hasLogo, hasTitle, bodyCount, got)
				}
			}
		}
	}
}

func TestLayoutString(t *testing.T) {
	tests := []struct {
		layout Layout
		want   string
	}{
		{LayoutText01, "ToastText01"},
		{LayoutText02, "ToastText02"},
		{LayoutText04, "ToastText04"},
		{LayoutImageText01, "ToastImageAndText01"},
		{LayoutImageText02, "ToastImageAndText02"},
		{LayoutImageText04, "ToastImageAndText04"},
		{Layout(99), "ToastText01"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.layout.String(); got != tt.want {
				t.Errorf("Layout.String() = %q, want %q", got, tt.want)
			}
		})
	}
}
