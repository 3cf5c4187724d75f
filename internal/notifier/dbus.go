package notifier

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/esiqveland/notify"
	"github.com/godbus/dbus/v5"

	"github.com/lennarthald/toastkit/internal/logx"
	"github.com/lennarthald/toastkit/internal/session"
	"github.com/lennarthald/toastkit/internal/toast"
	"github.com/lennarthald/toastkit/internal/types"
)

// Desktop notification close reason codes.
const (
	closedExpired = 1
	closedByUser  = 2
	closedByCall  = 3
)

// closeReason maps a close reason code to a dismissal reason.
func closeReason(code uint32) types.DismissReason {
	switch code {
	case closedExpired:
		return types.ReasonTimedOut
	case closedByUser:
		return types.ReasonUserCanceled
	case closedByCall:
		return types.ReasonApplicationHidden
	default:
		return types.ReasonUnknown
	}
}

// DBusNotifier submits notifications over the session bus notification
// service. There is no per-application permission registry on this stack,
// so a reachable service means notifications are enabled.
type DBusNotifier struct {
	log logx.Logger
}

// NewDBusNotifier creates a session bus backed notifier.
func NewDBusNotifier(log logx.Logger) *DBusNotifier {
	return &DBusNotifier{log: log}
}

func (n *DBusNotifier) Setting(_ context.Context, _ string) (types.PermissionSetting, error) {
	if _, err := dbus.SessionBus(); err != nil {
		return types.SettingUnknown, fmt.Errorf("failed to reach session bus: %w", err)
	}
	return types.SettingEnabled, nil
}

func (n *DBusNotifier) Show(_ context.Context, appID string, doc *toast.Document, opts ShowOptions) (*session.Session, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}

	watch := &dbusWatch{log: n.log}
	svc, err := notify.New(conn,
		notify.WithOnAction(watch.onAction),
		notify.WithOnClosed(watch.onClosed),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to attach to notification service: %w", err)
	}

	sess := session.New(func() { _ = svc.Close() })
	watch.bind(sess)

	summary, body := documentContent(doc)
	note := notify.Notification{
		AppName:       appID,
		AppIcon:       documentIcon(doc),
		Summary:       summary,
		Body:          body,
		Actions:       []notify.Action{{Key: "default", Label: "Open"}},
		ExpireTimeout: notify.ExpireTimeoutSetByNotificationServer,
	}
	if opts.Expiry > 0 {
		note.ExpireTimeout = opts.Expiry
	}

	id, err := svc.SendNotification(note)
	if err != nil {
		_ = svc.Close()
		return nil, fmt.Errorf("failed to send notification: %w", err)
	}
	watch.arm(id)

	n.log.Debug("notification submitted",
		logx.Int("id", int(id)),
		logx.String("app_id", appID))
	return sess, nil
}

// dbusWatch routes the service signals for one notification into its
// session. The id arrives only after submission, so matching is guarded.
type dbusWatch struct {
	mu   sync.Mutex
	sess *session.Session
	id   uint32
	log  logx.Logger
}

func (w *dbusWatch) bind(sess *session.Session) {
	w.mu.Lock()
	w.sess = sess
	w.mu.Unlock()
}

func (w *dbusWatch) arm(id uint32) {
	w.mu.Lock()
	w.id = id
	w.mu.Unlock()
}

func (w *dbusWatch) target(id uint32) *session.Session {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.sess == nil || w.id == 0 || w.id != id {
		return nil
	}
	return w.sess
}

func (w *dbusWatch) onAction(sig *notify.ActionInvokedSignal) {
	if sess := w.target(sig.ID); sess != nil {
		sess.Activated()
	}
}

func (w *dbusWatch) onClosed(sig *notify.NotificationClosedSignal) {
	sess := w.target(sig.ID)
	if sess == nil {
		return
	}
	reason := closeReason(uint32(sig.Reason))
	if reason == types.ReasonUnknown {
		w.log.Warn("unrecognized close reason", logx.Int("reason", int(sig.Reason)))
	}
	sess.Dismissed(reason)
}

// documentContent flattens a composed document for a stack that takes a
// summary and a body instead of a template. Empty placeholder slots from
// the legacy family are skipped.
func documentContent(doc *toast.Document) (summary, body string) {
	var lines []string
	for _, text := range doc.Texts() {
		if text != "" {
			lines = append(lines, text)
		}
	}
	if len(lines) == 0 {
		return "", ""
	}
	return lines[0], strings.Join(lines[1:], "\n")
}

// documentIcon returns the document's image source, if any.
func documentIcon(doc *toast.Document) string {
	if img := doc.Find("image"); img != nil {
		if src, ok := img.AttrValue("src"); ok {
			return src
		}
	}
	return ""
}
