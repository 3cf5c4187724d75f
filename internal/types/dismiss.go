package types

// DismissReason explains why the platform dismissed a notification without
// the user activating it.
type DismissReason int

const (
	// ReasonUnknown is any dismissal code this code does not recognize.
	// It never settles a session; see Result.
	ReasonUnknown DismissReason = iota
	// ReasonUserCanceled means the user explicitly closed the notification.
	ReasonUserCanceled
	// ReasonApplicationHidden means the application hid the notification
	// before the user interacted with it.
	ReasonApplicationHidden
	// ReasonTimedOut means the notification expired on its own.
	ReasonTimedOut
)

// String returns the platform name for the reason.
func (r DismissReason) String() string {
	switch r {
	case ReasonUserCanceled:
		return "UserCanceled"
	case ReasonApplicationHidden:
		return "ApplicationHidden"
	case ReasonTimedOut:
		return "TimedOut"
	default:
		return "Unknown"
	}
}

// ParseDismissReason resolves a platform reason name. Names it does not
// recognize come back as ReasonUnknown; callers decide whether that is
// worth logging.
func ParseDismissReason(s string) DismissReason {
	switch s {
	case "UserCanceled":
		return ReasonUserCanceled
	case "ApplicationHidden":
		return ReasonApplicationHidden
	case "TimedOut":
		return ReasonTimedOut
	default:
		return ReasonUnknown
	}
}

// Result maps the dismissal reason to its terminal Result. The boolean is
// false for ReasonUnknown: an unrecognized dismissal must not settle the
// session with a guessed outcome.
func (r DismissReason) Result() (Result, bool) {
	switch r {
	case ReasonUserCanceled:
		return ResultUserCanceled, true
	case ReasonApplicationHidden:
		return ResultApplicationHidden, true
	case ReasonTimedOut:
		return ResultTimedOut, true
	default:
		return ResultInvalid, false
	}
}
