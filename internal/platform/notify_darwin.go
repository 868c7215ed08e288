//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
)

// Notify shows a Notification Center banner through osascript.
func Notify(title, body string, opts Options) error {
	script := fmt.Sprintf("display notification %q with title %q", body, title)
	if opts.Urgency == UrgencyCritical {
		script += ` sound name "Funk"`
	}
	return exec.Command("osascript", "-e", script).Run()
}
