package toast

import "strconv"

// Family selects the serialization family of a composed document.
type Family int

const (
	// FamilyGeneric uses the flexible binding understood by modern
	// notification stacks: only the slots that carry content are emitted.
	FamilyGeneric Family = iota
	// FamilyLegacy uses the fixed skeletal templates of older stacks: the
	// full placeholder set of the layout is emitted and slots are addressed
	// by position, so empty slots still appear.
	FamilyLegacy
)

// String returns a short family name for logging.
func (f Family) String() string {
	if f == FamilyLegacy {
		return "legacy"
	}
	return "generic"
}

// Input carries the request fields that drive composition.
type Input struct {
	Title     string
	BodyLines []string
	LogoPath  string
	Audio     Audio
}

// Compose builds a notification document from the input. It is pure and
// total: the same input always yields the same document, and even an empty
// input produces a structurally complete one. Whether the result is worth
// showing is the caller's call.
func Compose(in Input, fam Family) *Document {
	bodyCount := len(in.BodyLines)
	if bodyCount > 2 {
		bodyCount = 2
	}
	layout := SelectLayout(in.LogoPath != "", in.Title != "", bodyCount)
	plan := layout.plan()

	binding := NewElement("binding")
	if fam == FamilyLegacy {
		binding.SetAttr("template", layout.String())
	} else {
		binding.SetAttr("template", "ToastGeneric")
	}

	if plan.image {
		img := NewElement("image")
		if fam == FamilyLegacy {
			img.SetAttr("id", "1")
		} else {
			img.SetAttr("placement", "appLogoOverride")
		}
		img.SetAttr("src", in.LogoPath)
		binding.Append(img)
	}

	for i, content := range planTexts(plan, in, fam == FamilyLegacy) {
		text := NewElement("text")
		if fam == FamilyLegacy {
			text.SetAttr("id", strconv.Itoa(i+1))
		}
		text.Text = content
		binding.Append(text)
	}

	root := NewElement("toast")
	root.Append(NewElement("visual").Append(binding))
	appendAudio(root, in.Audio)

	return &Document{Root: root}
}

// planTexts fills the layout's text slots in order: the title first when
// the layout carries a title slot, then body lines truncated to the slot
// count. With padded set, empty slots are kept so positional templates see
// their complete placeholder set.
func planTexts(plan slotPlan, in Input, padded bool) []string {
	texts := make([]string, 0, 3)
	if plan.title {
		texts = append(texts, in.Title)
	}
	for i, line := range in.BodyLines {
		if i >= plan.bodySlots {
			break
		}
		texts = append(texts, line)
	}
	if padded {
		total := plan.bodySlots
		if plan.title {
			total++
		}
		for len(texts) < total {
			texts = append(texts, "")
		}
	}
	return texts
}

// appendAudio attaches the audio element matching the kind's sound class.
// Every composed document carries one; raw documents are never touched.
func appendAudio(root *Element, a Audio) {
	audio := NewElement("audio")
	switch a.Class() {
	case SoundSilent:
		audio.SetAttr("silent", "true")
	case SoundLong:
		audio.SetAttr("src", a.Source())
		audio.SetAttr("loop", "true")
		root.SetAttr("duration", "long")
	default:
		audio.SetAttr("src", a.Source())
		audio.SetAttr("loop", "false")
	}
	root.Append(audio)
}
