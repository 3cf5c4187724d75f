package toast

// Layout identifies one of the six slot arrangements a composed
// notification can use. Each layout fixes whether a logo slot and a title
// slot exist and how many body lines fit.
type Layout int

const (
	LayoutText01 Layout = iota
	LayoutText02
	LayoutText04
	LayoutImageText01
	LayoutImageText02
	LayoutImageText04
)

// slotPlan describes the slots a layout provides and the legacy template
// name that carries the same arrangement.
type slotPlan struct {
	legacy    string
	image     bool
	title     bool
	bodySlots int
}

var slotPlans = map[Layout]slotPlan{
	LayoutText01:      {legacy: "ToastText01", image: false, title: false, bodySlots: 1},
	LayoutText02:      {legacy: "ToastText02", image: false, title: true, bodySlots: 1},
	LayoutText04:      {legacy: "ToastText04", image: false, title: true, bodySlots: 2},
	LayoutImageText01: {legacy: "ToastImageAndText01", image: true, title: false, bodySlots: 1},
	LayoutImageText02: {legacy: "ToastImageAndText02", image: true, title: true, bodySlots: 1},
	LayoutImageText04: {legacy: "ToastImageAndText04", image: true, title: true, bodySlots: 2},
}

// SelectLayout picks the layout for a request shape. The mapping is total
// and deterministic: without a title the single-line layouts are used and
// any body lines past the first are dropped later during fill, with a title
// one or two body slots are chosen by how many lines were supplied. The
// "03" template variants are unreachable by construction.
func SelectLayout(hasLogo, hasTitle bool, bodyCount int) Layout {
	switch {
	case !hasTitle && !hasLogo:
		return LayoutText01
	case !hasTitle:
		return LayoutImageText01
	case bodyCount >= 2 && hasLogo:
		return LayoutImageText04
	case bodyCount >= 2:
		return LayoutText04
	case hasLogo:
		return LayoutImageText02
	default:
		return LayoutText02
	}
}

// String returns the legacy template name for the layout, which doubles as
// its display name.
func (l Layout) String() string {
	if plan, ok := slotPlans[l]; ok {
		return plan.legacy
	}
	return "ToastText01"
}

func (l Layout) plan() slotPlan {
	if plan, ok := slotPlans[l]; ok {
		return plan
	}
	return slotPlans[LayoutText01]
}
