package notifier

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lennarthald/toastkit/internal/logx"
	"github.com/lennarthald/toastkit/internal/powershell"
	"github.com/lennarthald/toastkit/internal/session"
	"github.com/lennarthald/toastkit/internal/toast"
	"github.com/lennarthald/toastkit/internal/types"
)

// ScriptNotifier drives the Windows notification stack through short
// PowerShell helpers: one to answer the permission question, one per
// shown notification to feed its events back over stdout.
type ScriptNotifier struct {
	runner powershell.CommandRunner
	log    logx.Logger
}

// NewScriptNotifier creates a notifier backed by the given runner.
func NewScriptNotifier(runner powershell.CommandRunner, log logx.Logger) *ScriptNotifier {
	return &ScriptNotifier{runner: runner, log: log}
}

func (n *ScriptNotifier) Setting(ctx context.Context, appID string) (types.PermissionSetting, error) {
	out, err := powershell.Run(ctx, n.runner, BuildSettingScript(appID))
	if err != nil {
		return types.SettingUnknown, fmt.Errorf("failed to query notification setting: %w", err)
	}

	setting := types.ParsePermissionSetting(out)
	if setting == types.SettingUnknown {
		n.log.Warn("unrecognized notification setting", logx.String("setting", out))
	}
	return setting, nil
}

func (n *ScriptNotifier) Show(ctx context.Context, appID string, doc *toast.Document, opts ShowOptions) (*session.Session, error) {
	xml, err := doc.XML()
	if err != nil {
		return nil, err
	}

	cmd := n.runner.Script(ctx, BuildShowScript(appID, xml, opts.Expiry))
	pipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open notifier pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start notifier helper: %w", err)
	}

	sess := session.New(func() {
		if p := cmd.Process(); p != nil {
			_ = p.Signal(os.Kill)
		}
	})
	go n.watch(sess, pipe, cmd)

	n.log.Debug("notification submitted", logx.String("app_id", appID))
	return sess, nil
}

// watch reads event lines from the helper until it exits. A helper that
// exits without reporting any event is a delivery failure; one that
// reports an unrecognized dismissal leaves the session pending.
func (n *ScriptNotifier) watch(sess *session.Session, pipe io.ReadCloser, cmd powershell.Command) {
	sawEvent := false

	scanner := bufio.NewScanner(pipe)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == eventActivated:
			sawEvent = true
			sess.Activated()
		case strings.HasPrefix(line, eventDismissedPrefix):
			sawEvent = true
			name := strings.TrimPrefix(line, eventDismissedPrefix)
			reason := types.ParseDismissReason(name)
			if reason == types.ReasonUnknown {
				n.log.Warn("unrecognized dismissal reason", logx.String("reason", name))
			}
			sess.Dismissed(reason)
		case strings.HasPrefix(line, eventFailedPrefix):
			sawEvent = true
			code := strings.TrimPrefix(line, eventFailedPrefix)
			sess.Failed(fmt.Errorf("notification delivery failed: %s", code))
		}
	}

	err := cmd.Wait()
	if sawEvent || sess.Settled() {
		return
	}
	if err == nil {
		err = errors.New("no event reported")
	}
	sess.Failed(fmt.Errorf("notifier helper exited: %w", err))
}
