package toast

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:  "valid document",
			input: `<toast><visual><binding template="ToastText01"><text id="1">hello</text></binding></visual></toast>`,
		},
		{
			name:  "whitespace between elements",
			input: "<toast>\n  <visual>\n    <binding template=\"ToastGeneric\">\n      <text>hi</text>\n    </binding>\n  </visual>\n</toast>",
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: ErrEmptyDocument,
		},
		{
			name:    "blank string",
			input:   "   \n\t",
			wantErr: ErrEmptyDocument,
		},
		{
			name:    "unclosed element",
			input:   "<toast><visual></toast>",
			wantErr: ErrMalformedDocument,
		},
		{
			name:    "plain text",
			input:   "not a document",
			wantErr: ErrMalformedDocument,
		},
		{
			name:    "two roots",
			input:   "<toast></toast><toast></toast>",
			wantErr: ErrMalformedDocument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if doc.Root == nil {
				t.Fatal("Parse() returned document without root")
			}
			if doc.Root.Name != "toast" {
				t.Errorf("root name = %q, want %q", doc.Root.Name, "toast")
			}
		})
	}
}

func TestParseKeepsStructure(t *testing.T) {
	doc, err := Parse(`<toast launch="app"><visual><binding template="ToastText02"><text id="1">Title</text><text id="2">Body</text></binding></visual></toast>`)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}

	if v, ok := doc.Root.AttrValue("launch"); !ok || v != "app" {
		t.Errorf("launch attribute = %q, %v, want %q, true", v, ok, "app")
	}

	binding := doc.Find("binding")
	if binding == nil {
		t.Fatal("Find(binding) = nil")
	}
	if v, _ := binding.AttrValue("template"); v != "ToastText02" {
		t.Errorf("template attribute = %q, want %q", v, "ToastText02")
	}

	got := doc.Texts()
	want := []string{"Title", "Body"}
	if len(got) != len(want) {
		t.Fatalf("Texts() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Texts()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestXMLRoundTrip(t *testing.T) {
	root := NewElement("toast").SetAttr("duration", "long")
	binding := NewElement("binding").SetAttr("template", "ToastGeneric")
	text := NewElement("text")
	text.Text = `tags like <b> & "quotes"`
	binding.Append(text)
	root.Append(NewElement("visual").Append(binding))
	doc := &Document{Root: root}

	serialized, err := doc.XML()
	if err != nil {
		t.Fatalf("XML() unexpected error: %v", err)
	}

	parsed, err := Parse(serialized)
	if err != nil {
		t.Fatalf("Parse(XML()) unexpected error: %v", err)
	}

	if v, _ := parsed.Root.AttrValue("duration"); v != "long" {
		t.Errorf("duration attribute = %q, want %q", v, "long")
	}
	texts := parsed.Texts()
	if len(texts) != 1 || texts[0] != `tags like <b> & "quotes"` {
		t.Errorf("Texts() = %v, want the original content", texts)
	}
}

func TestXMLDeterministicOrder(t *testing.T) {
	build := func() *Document {
		root := NewElement("toast")
		root.SetAttr("duration", "long")
		root.SetAttr("launch", "app")
		root.Append(NewElement("visual"), NewElement("audio"))
		return &Document{Root: root}
	}

	first, err := build().XML()
	if err != nil {
		t.Fatalf("XML() unexpected error: %v", err)
	}
	second, err := build().XML()
	if err != nil {
		t.Fatalf("XML() unexpected error: %v", err)
	}

	if first != second {
		t.Errorf("XML() not deterministic:\n%s\n%s", first, second)
	}
	if !strings.Contains(first, `duration="long" launch="app"`) {
		t.Errorf("XML() lost attribute order: %s", first)
	}
	if strings.Index(first, "<visual") > strings.Index(first, "<audio") {
		t.Errorf("XML() lost child order: %s", first)
	}
}

func TestSetAttrReplacesInPlace(t *testing.T) {
	e := NewElement("toast")
	e.SetAttr("a", "1")
	e.SetAttr("b", "2")
	e.SetAttr("a", "3")

	if len(e.Attrs) != 2 {
		t.Fatalf("len(Attrs) = %d, want 2", len(e.Attrs))
	}
	if e.Attrs[0].Name != "a" || e.Attrs[0].Value != "3" {
		t.Errorf("Attrs[0] = %+v, want a=3", e.Attrs[0])
	}
}

func TestNilDocument(t *testing.T) {
	var doc *Document
	if el := doc.Find("toast"); el != nil {
		t.Errorf("nil Find() = %+v, want nil", el)
	}
	if texts := doc.Texts(); len(texts) != 0 {
		t.Errorf("nil Texts() = %v, want empty", texts)
	}
	if _, err := doc.XML(); !errors.Is(err, ErrEmptyDocument) {
		t.Errorf("nil XML() error = %v, want %v", err, ErrEmptyDocument)
	}
}
