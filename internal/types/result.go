// Package types provides shared types used across the application.
package types

import (
	"encoding/json"
	"fmt"
)

// Result is the terminal outcome of a single notification attempt.
// Every call that reaches the orchestrator settles on exactly one Result;
// legitimate completions and recovered failures share the same closed set.
type Result int

const (
	// ResultInvalid indicates the request was malformed or incomplete.
	ResultInvalid Result = iota
	// ResultUnavailable indicates the platform cannot show toast notifications.
	ResultUnavailable
	// ResultFailed indicates the notification system reported an error
	// while displaying the toast.
	ResultFailed
	// ResultActivated indicates the user clicked the notification.
	ResultActivated
	// ResultApplicationHidden indicates the notification was hidden
	// programmatically before the user interacted with it.
	ResultApplicationHidden
	// ResultUserCanceled indicates the user explicitly dismissed the
	// notification.
	ResultUserCanceled
	// ResultTimedOut indicates the notification expired without
	// interaction.
	ResultTimedOut
	// ResultDisabledForApplication indicates notifications are turned off
	// for this application identity.
	ResultDisabledForApplication
	// ResultDisabledForUser indicates notifications are turned off for the
	// current user session.
	ResultDisabledForUser
	// ResultDisabledByGroupPolicy indicates notifications are blocked by
	// machine policy.
	ResultDisabledByGroupPolicy
	// ResultDisabledByManifest indicates the application manifest declares
	// notifications unsupported.
	ResultDisabledByManifest
)

// String returns the canonical outcome name as printed by the CLI.
func (r Result) String() string {
	switch r {
	case ResultInvalid:
		return "Invalid"
	case ResultUnavailable:
		return "Unavailable"
	case ResultFailed:
		return "Failed"
	case ResultActivated:
		return "Activated"
	case ResultApplicationHidden:
		return "ApplicationHidden"
	case ResultUserCanceled:
		return "UserCanceled"
	case ResultTimedOut:
		return "TimedOut"
	case ResultDisabledForApplication:
		return "DisabledForApplication"
	case ResultDisabledForUser:
		return "DisabledForUser"
	case ResultDisabledByGroupPolicy:
		return "DisabledByGroupPolicy"
	case ResultDisabledByManifest:
		return "DisabledByManifest"
	default:
		return "Unknown"
	}
}

// MarshalJSON implements json.Marshaler.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// ParseResult parses a canonical outcome name into a Result.
func ParseResult(s string) (Result, error) {
	for r := ResultInvalid; r <= ResultDisabledByManifest; r++ {
		if r.String() == s {
			return r, nil
		}
	}
	return ResultInvalid, fmt.Errorf("unknown result %q", s)
}
