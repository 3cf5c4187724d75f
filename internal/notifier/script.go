package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/lennarthald/toastkit/internal/powershell"
)

// Event line protocol between the show script and the watcher. The script
// prints exactly one of these before exiting.
const (
	eventActivated       = "activated"
	eventDismissedPrefix = "dismissed:"
	eventFailedPrefix    = "failed:"
)

const loadRuntimeTypes = `[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] | Out-Null
[Windows.Data.Xml.Dom.XmlDocument, Windows.Data.Xml.Dom, ContentType = WindowsRuntime] | Out-Null
`

// BuildSettingScript returns the script that prints the notification
// setting name for the app.
func BuildSettingScript(appID string) string {
	var b strings.Builder
	b.WriteString(loadRuntimeTypes)
	fmt.Fprintf(&b, "$notifier = [Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier(%s)\n",
		powershell.Quote(appID))
	b.WriteString("Write-Output $notifier.Setting.ToString()\n")
	return b.String()
}

// BuildShowScript returns the script that shows the document under the
// app's identity, waits for the first notification event and prints it in
// the line protocol. The document must be serialized to a single line.
func BuildShowScript(appID, xml string, expiry time.Duration) string {
	var b strings.Builder
	b.WriteString(loadRuntimeTypes)
	b.WriteString("$raw = @'\n")
	b.WriteString(xml)
	b.WriteString("\n'@\n")
	b.WriteString("$xml = New-Object Windows.Data.Xml.Dom.XmlDocument\n")
	b.WriteString("$xml.LoadXml($raw)\n")
	b.WriteString("$toast = New-Object Windows.UI.Notifications.ToastNotification $xml\n")
	if expiry > 0 {
		fmt.Fprintf(&b, "$toast.ExpirationTime = [DateTimeOffset]::Now.AddMilliseconds(%d)\n",
			expiry.Milliseconds())
	}
	b.WriteString("Register-ObjectEvent -InputObject $toast -EventName Activated -SourceIdentifier toastkit_activated | Out-Null\n")
	b.WriteString("Register-ObjectEvent -InputObject $toast -EventName Dismissed -SourceIdentifier toastkit_dismissed | Out-Null\n")
	b.WriteString("Register-ObjectEvent -InputObject $toast -EventName Failed -SourceIdentifier toastkit_failed | Out-Null\n")
	fmt.Fprintf(&b, "[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier(%s).Show($toast)\n",
		powershell.Quote(appID))
	b.WriteString("$event = Wait-Event\n")
	b.WriteString(`switch ($event.SourceIdentifier) {
  'toastkit_activated' { Write-Output '` + eventActivated + `' }
  'toastkit_dismissed' { Write-Output ('` + eventDismissedPrefix + `' + $event.SourceEventArgs.Reason.ToString()) }
  'toastkit_failed'    { Write-Output ('` + eventFailedPrefix + `' + $event.SourceEventArgs.ErrorCode.HResult) }
}
`)
	return b.String()
}
