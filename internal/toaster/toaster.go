// Package toaster coordinates notification delivery from request to
// terminal outcome.
package toaster

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/lennarthald/toastkit/internal/config"
	"github.com/lennarthald/toastkit/internal/logx"
	"github.com/lennarthald/toastkit/internal/notifier"
	"github.com/lennarthald/toastkit/internal/notify"
	"github.com/lennarthald/toastkit/internal/request"
	"github.com/lennarthald/toastkit/internal/shortcut"
	"github.com/lennarthald/toastkit/internal/toast"
	"github.com/lennarthald/toastkit/internal/types"
)

var (
	// ErrNilRequest indicates Show was called without a request.
	ErrNilRequest = errors.New("nil request")
	// ErrNoAppID indicates neither the request nor the configuration
	// carries an application identity.
	ErrNoAppID = errors.New("no application id configured")
)

// Manager drives the delivery pipeline for a single notification:
// shortcut reconciliation, the permission gate, document composition,
// and the wait for a user outcome.
type Manager struct {
	cfg         *config.Config
	caps        notifier.Capabilities
	notifier    notifier.Notifier
	store       shortcut.Store
	reconciler  *shortcut.Reconciler
	fallback    notify.Sender
	shortcutDir string
	sleep       func(ctx context.Context, d time.Duration) error
	log         logx.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithNotifier overrides the platform notifier.
func WithNotifier(n notifier.Notifier) Option {
	return func(m *Manager) {
		m.notifier = n
	}
}

// WithStore overrides the shortcut store.
func WithStore(s shortcut.Store) Option {
	return func(m *Manager) {
		m.store = s
	}
}

// WithCapabilities overrides the detected platform capabilities.
func WithCapabilities(caps notifier.Capabilities) Option {
	return func(m *Manager) {
		m.caps = caps
	}
}

// WithFallback overrides the banner sender.
func WithFallback(f notify.Sender) Option {
	return func(m *Manager) {
		m.fallback = f
	}
}

// WithShortcutDir overrides where shortcuts are installed.
func WithShortcutDir(dir string) Option {
	return func(m *Manager) {
		m.shortcutDir = dir
	}
}

// WithSleep overrides the settle pause (for testing).
func WithSleep(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(m *Manager) {
		m.sleep = fn
	}
}

// New creates a Manager wired against the current platform.
func New(cfg *config.Config, log logx.Logger, opts ...Option) *Manager {
	m := &Manager{
		cfg:         cfg,
		caps:        notifier.Detect(),
		notifier:    notifier.New(log),
		store:       shortcut.NewStore(),
		fallback:    notify.New(cfg.Fallback),
		shortcutDir: config.GetPaths().ShortcutDir,
		sleep:       sleepContext,
		log:         log,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.reconciler = shortcut.NewReconciler(m.store, log)

	return m
}

// Capabilities reports what the platform under this Manager can do.
func (m *Manager) Capabilities() notifier.Capabilities {
	return m.caps
}

// ShortcutDir reports where this Manager installs shortcuts.
func (m *Manager) ShortcutDir() string {
	return m.shortcutDir
}

// Show runs the request through the full pipeline and blocks until the
// notification settles, the platform rejects it, or ctx ends.
//
// Malformed requests and platform refusals are reported through the
// Result; the error return is reserved for broken preconditions, shortcut
// store I/O and context cancellation.
func (m *Manager) Show(ctx context.Context, req *request.Request) (types.Result, error) {
	if req == nil {
		return types.ResultInvalid, ErrNilRequest
	}

	appID := req.EffectiveAppID(m.cfg.AppID)
	if appID == "" {
		return types.ResultInvalid, ErrNoAppID
	}

	if !m.caps.Toasts {
		m.log.Warn("platform cannot show notifications", logx.String("app_id", appID))
		m.sendFallback(req)
		return types.ResultUnavailable, nil
	}

	if err := req.Validate(); err != nil {
		m.log.Warn("rejecting invalid request", logx.Err(err))
		return types.ResultInvalid, nil
	}

	if req.DeclaresShortcut() {
		if err := m.installShortcut(ctx, req, appID); err != nil {
			return types.ResultInvalid, err
		}
	}

	setting, err := m.notifier.Setting(ctx, appID)
	if err != nil {
		m.log.Error("failed to query notification permission", logx.Err(err))
		return types.ResultFailed, nil
	}
	if res, blocked := setting.GateResult(); blocked {
		m.log.Warn("notifications are blocked for this identity",
			logx.String("app_id", appID),
			logx.String("setting", setting.String()))
		return res, nil
	}

	if !req.IsToastValid() {
		m.log.Warn("request carries no notification content")
		return types.ResultInvalid, nil
	}

	doc, ok := m.buildDocument(req)
	if !ok {
		return types.ResultInvalid, nil
	}

	m.log.Info("showing notification",
		logx.String("app_id", appID),
		logx.String("family", m.caps.Family().String()))

	sess, err := m.notifier.Show(ctx, appID, doc, notifier.ShowOptions{
		Expiry: req.MaximumDuration.Std(),
	})
	if err != nil {
		m.log.Error("failed to show notification", logx.Err(err))
		return types.ResultFailed, nil
	}

	result, err := sess.Await(ctx)
	if err != nil {
		return result, err
	}

	m.log.Info("notification settled", logx.String("result", result.String()))
	return result, nil
}

// installShortcut reconciles the requested shortcut and, after a fresh
// install, pauses so the shell can index the new identity before the
// notification is raised under it.
func (m *Manager) installShortcut(ctx context.Context, req *request.Request, appID string) error {
	rec, err := req.ShortcutRecord(appID)
	if err != nil {
		return err
	}

	path := filepath.Join(m.shortcutDir, rec.FileName)
	outcome, err := m.reconciler.Reconcile(ctx, path, rec)
	if err != nil {
		return err
	}

	if outcome == shortcut.OutcomeInstalled {
		settle := m.cfg.SettleDelay.Std()
		if wait := req.WaitingDuration.Std(); wait > settle {
			settle = wait
		}
		m.log.Debug("waiting for the shell to index the shortcut",
			logx.Duration("settle", settle))
		return m.sleep(ctx, settle)
	}

	return nil
}

// buildDocument turns the request into the document to show: raw XML is
// parsed and used as-is, everything else is composed for the platform's
// template family.
func (m *Manager) buildDocument(req *request.Request) (*toast.Document, bool) {
	if req.ToastXML != "" {
		doc, err := toast.Parse(req.ToastXML)
		if err != nil {
			m.log.Warn("rejecting malformed notification XML", logx.Err(err))
			return nil, false
		}
		return doc, true
	}

	return toast.Compose(req.ComposeInput(), m.caps.Family()), true
}

// sendFallback raises a plain banner carrying whatever content the
// request has. Delivery is best effort and never changes the outcome.
func (m *Manager) sendFallback(req *request.Request) {
	title := req.ToastTitle
	message := notify.Message(req.BodyLines())
	if title == "" && message == "" {
		return
	}

	if err := m.fallback.Banner(title, message, req.ToastLogoFilePath); err != nil {
		m.log.Debug("fallback banner failed", logx.Err(err))
	}
}

// sleepContext pauses for d unless the context ends first.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
