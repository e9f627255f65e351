// Package notify holds the staff-alert hook the helpdesk watcher fires
// when a new message shows up. It is an owned handle with an explicit
// lifetime, not a package-level global: the watcher constructs it on first
// use and closes it on shutdown.
package notify

import (
	"io"
	"log"
	"os"
	"sync"
)

type Alerter interface {
	Alert(message string)
	io.Closer
}

// BellAlerter writes the terminal bell plus a log line. Lazy: nothing is
// acquired until the first Alert.
type BellAlerter struct {
	once sync.Once
	out  *os.File
}

func NewBellAlerter() *BellAlerter { return &BellAlerter{} }

func (a *BellAlerter) Alert(message string) {
	a.once.Do(func() { a.out = os.Stderr })
	_, _ = a.out.WriteString("\a")
	log.Printf("🔔 %s", message)
}

func (a *BellAlerter) Close() error { return nil }
