package publish

import "github.com/relabs-tech/motion_node/internal/telemetry"

// Publisher pushes the current telemetry snapshot to subscribed
// listeners. Init failures are non-fatal to the acquisition loop: a
// publisher that never came up silently drops its notifications.
type Publisher interface {
	Init() error
	Notify(telemetry.Snapshot) error
	Close()
}
