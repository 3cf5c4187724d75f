// Package request defines the notification request document and its
// validation rules.
package request

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/lennarthald/toastkit/internal/shortcut"
	"github.com/lennarthald/toastkit/internal/toast"
)

// Request is one self-contained ask: what to show, which audio cue to
// attach, what shortcut state to guarantee first and under which identity
// to appear. Field names follow the wire format, which predates this
// implementation.
type Request struct {
	ToastTitle        string   `json:"ToastTitle,omitempty"`
	ToastBody         string   `json:"ToastBody,omitempty"`
	ToastBodyList     []string `json:"ToastBodyList,omitempty"`
	ToastLogoFilePath string   `json:"ToastLogoFilePath,omitempty"`
	ToastAudio        string   `json:"ToastAudio,omitempty" validate:"toastaudio"`
	ToastXML          string   `json:"ToastXml,omitempty"`

	ShortcutFileName       string `json:"ShortcutFileName,omitempty"`
	ShortcutTargetFilePath string `json:"ShortcutTargetFilePath,omitempty"`
	ShortcutArguments      string `json:"ShortcutArguments,omitempty"`
	ShortcutComment        string `json:"ShortcutComment,omitempty"`
	ShortcutWorkingFolder  string `json:"ShortcutWorkingFolder,omitempty"`
	ShortcutWindowState    string `json:"ShortcutWindowState,omitempty" validate:"windowstate"`
	ShortcutIconFilePath   string `json:"ShortcutIconFilePath,omitempty"`

	AppID       string `json:"AppId,omitempty"`
	ActivatorID string `json:"ActivatorId,omitempty"`

	WaitingDuration Duration `json:"WaitingDuration,omitempty" validate:"min=0"`
	MaximumDuration Duration `json:"MaximumDuration,omitempty" validate:"min=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// The enum fields stay strings on the wire; validation delegates to the
	// domain parsers so the two can never disagree.
	_ = v.RegisterValidation("toastaudio", func(fl validator.FieldLevel) bool {
		_, err := toast.ParseAudio(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("windowstate", func(fl validator.FieldLevel) bool {
		_, err := shortcut.ParseWindowState(fl.Field().String())
		return err == nil
	})

	v.RegisterStructValidation(shortcutFields, Request{})
	return v
}

// shortcutFields requires the shortcut anchor fields as soon as any
// shortcut property appears: a shortcut cannot be placed without a file
// name, and is pointless without a target.
func shortcutFields(sl validator.StructLevel) {
	req := sl.Current().Interface().(Request)
	if !req.DeclaresShortcut() {
		return
	}
	if req.ShortcutFileName == "" {
		sl.ReportError(req.ShortcutFileName, "ShortcutFileName", "ShortcutFileName", "required_with_shortcut", "")
	}
	if req.ShortcutTargetFilePath == "" {
		sl.ReportError(req.ShortcutTargetFilePath, "ShortcutTargetFilePath", "ShortcutTargetFilePath", "required_with_shortcut", "")
	}
}

// FromJSON decodes and validates a request document.
func FromJSON(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to decode request: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

// Validate checks the request against its wire rules.
func (r *Request) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}

// BodyLines returns the body content. The list form wins over the single
// body when both are present.
func (r *Request) BodyLines() []string {
	if len(r.ToastBodyList) > 0 {
		return r.ToastBodyList
	}
	if r.ToastBody != "" {
		return []string{r.ToastBody}
	}
	return nil
}

// Audio resolves the audio cue named by the request.
func (r *Request) Audio() (toast.Audio, error) {
	return toast.ParseAudio(r.ToastAudio)
}

// IsToastValid reports whether the request carries anything worth showing:
// a raw document, a title or at least one non-empty body line. A logo or
// an audio cue alone is not content.
func (r *Request) IsToastValid() bool {
	if r.ToastXML != "" || r.ToastTitle != "" {
		return true
	}
	for _, line := range r.BodyLines() {
		if line != "" {
			return true
		}
	}
	return false
}

// DeclaresShortcut reports whether any shortcut property is present.
func (r *Request) DeclaresShortcut() bool {
	return r.ShortcutFileName != "" ||
		r.ShortcutTargetFilePath != "" ||
		r.ShortcutArguments != "" ||
		r.ShortcutComment != "" ||
		r.ShortcutWorkingFolder != "" ||
		r.ShortcutWindowState != "" ||
		r.ShortcutIconFilePath != ""
}

// EffectiveAppID returns the request's app id, or the fallback when the
// request leaves it empty.
func (r *Request) EffectiveAppID(fallback string) string {
	if r.AppID != "" {
		return r.AppID
	}
	return fallback
}

// ShortcutRecord converts the shortcut properties into the desired record
// under the given application identity.
func (r *Request) ShortcutRecord(appID string) (shortcut.Record, error) {
	state, err := shortcut.ParseWindowState(r.ShortcutWindowState)
	if err != nil {
		return shortcut.Record{}, err
	}
	return shortcut.Record{
		FileName:      r.ShortcutFileName,
		TargetPath:    r.ShortcutTargetFilePath,
		Arguments:     r.ShortcutArguments,
		Comment:       r.ShortcutComment,
		WorkingFolder: r.ShortcutWorkingFolder,
		WindowState:   state,
		IconPath:      r.ShortcutIconFilePath,
		AppID:         appID,
		ActivatorID:   r.ActivatorID,
	}, nil
}

// ComposeInput converts the request fields into composer input. The audio
// kind must have been validated beforehand.
func (r *Request) ComposeInput() toast.Input {
	audio, _ := r.Audio()
	return toast.Input{
		Title:     r.ToastTitle,
		BodyLines: r.BodyLines(),
		LogoPath:  r.ToastLogoFilePath,
		Audio:     audio,
	}
}

// Sample returns a request that shows a plain two-line notification. It
// leaves the app id empty so the configured identity applies.
func Sample() *Request {
	return &Request{
		ToastTitle: "Toastkit",
		ToastBodyList: []string{
			"Hello from toastkit.",
			"This notification was composed from the sample request.",
		},
		ToastAudio:      "Default",
		MaximumDuration: Duration(45 * time.Second),
	}
}
