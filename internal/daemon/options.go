package daemon

import (
	"net"
	"os"
	"time"
)

// DaemonOptions configuration options for the daemon
type DaemonOptions struct {
	// Listener allows injecting a pre-bound listener.
	// If nil, the daemon listens on the configured port.
	Listener net.Listener

	// Signals replaces OS signal delivery (SIGINT/SIGTERM stop, SIGHUP rotates).
	Signals <-chan os.Signal

	// Clock replaces time.Now for the writer and the receipt timestamp.
	Clock func() time.Time
}
