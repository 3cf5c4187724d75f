package shortcut

import (
	"context"
	"errors"
	"fmt"

	"github.com/lennarthald/toastkit/internal/logx"
)

// Outcome reports what a reconcile pass did.
type Outcome int

const (
	// OutcomeEquivalent means the existing shortcut already matched the
	// desired record and nothing was written.
	OutcomeEquivalent Outcome = iota
	// OutcomeInstalled means the shortcut was created or rewritten.
	OutcomeInstalled
)

// String returns a short outcome name for logging.
func (o Outcome) String() string {
	if o == OutcomeInstalled {
		return "installed"
	}
	return "equivalent"
}

// Reconciler drives a shortcut at a known path toward a desired record.
type Reconciler struct {
	store Store
	log   logx.Logger
}

// NewReconciler creates a reconciler over the given store.
func NewReconciler(store Store, log logx.Logger) *Reconciler {
	return &Reconciler{store: store, log: log}
}

// Reconcile makes the shortcut at path match desired. A missing shortcut
// is installed; one that differs in any property is rewritten whole; an
// equivalent one is left untouched, so a second pass with the same record
// performs zero writes.
func (r *Reconciler) Reconcile(ctx context.Context, path string, desired Record) (Outcome, error) {
	existing, err := r.store.Read(ctx, path)
	if err != nil && !errors.Is(err, ErrShortcutNotFound) {
		return OutcomeEquivalent, fmt.Errorf("failed to inspect shortcut: %w", err)
	}

	if err == nil && existing.Equivalent(desired) {
		r.log.Debug("shortcut already up to date", logx.String("path", path))
		return OutcomeEquivalent, nil
	}

	if err := r.store.Write(ctx, path, desired); err != nil {
		return OutcomeEquivalent, fmt.Errorf("failed to install shortcut: %w", err)
	}

	r.log.Info("shortcut installed",
		logx.String("path", path),
		logx.String("app_id", desired.AppID))
	return OutcomeInstalled, nil
}
