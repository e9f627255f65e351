package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/zensolve/jobportal-admin/internal/config"
	"github.com/zensolve/jobportal-admin/internal/models"
	"github.com/zensolve/jobportal-admin/internal/notify"
	"github.com/zensolve/jobportal-admin/internal/repository"
)

// pollTimeout bounds a single poll cycle so a hung read can never wedge
// the watcher.
const pollTimeout = 30 * time.Second

// ContactShortcuts are the affordances revealed when staff accept an
// interstitial: call the requester, or open a templated reply.
type ContactShortcuts struct {
	CallLink       string `json:"callLink"`
	AcceptMailLink string `json:"acceptMailLink"`
	RejectMailLink string `json:"rejectMailLink"`
}

// HelpdeskService watches the inbound help-request collection on a fixed
// interval and surfaces the newest message as an interstitial when the
// count grows past what was last seen. Detection is count-based, not
// id-based: concurrent deletes or out-of-order arrivals can cause missed
// or duplicate interstitials. Known limitation.
type HelpdeskService struct {
	repo     repository.MessageRepository
	org      config.Organization
	interval time.Duration

	mu        sync.Mutex
	alerter   notify.Alerter
	seenCount int
	snoozed   bool
	pending   *models.HelpMessage

	cancel context.CancelFunc
	done   chan struct{}
}

func NewHelpdeskService(repo repository.MessageRepository, org config.Organization, interval time.Duration) *HelpdeskService {
	return &HelpdeskService{repo: repo, org: org, interval: interval}
}

// StartWatcher begins the background polling. The first poll runs
// immediately; after that a ticker drives the cycle until Stop.
func (s *HelpdeskService) StartWatcher(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	log.Printf("📨 Helpdesk watcher started (every %v)", s.interval)
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.runPoll(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.runPoll(ctx)
			}
		}
	}()
}

// Stop cancels the watcher, waits for the in-flight cycle and releases
// the alert handle.
func (s *HelpdeskService) Stop() {
	if s.cancel != nil {
		s.cancel()
		<-s.done
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.alerter != nil {
		_ = s.alerter.Close()
		s.alerter = nil
	}
}

func (s *HelpdeskService) runPoll(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, pollTimeout)
	defer cancel()
	if err := s.Poll(ctx); err != nil {
		log.Printf("❌ Helpdesk poll failed: %v", err)
	}
}

// Poll fetches the message collection once and updates the interstitial
// state. Exported so a cycle can also be driven directly.
func (s *HelpdeskService) Poll(ctx context.Context) error {
	messages, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(messages) > s.seenCount && !s.snoozed {
		newest := messages[len(messages)-1]
		s.pending = &newest
		s.alertLocked("New help request from " + newest.Name)
	}
	s.seenCount = len(messages)
	return nil
}

// alertLocked lazily constructs the alert handle on first use. Callers
// hold s.mu.
func (s *HelpdeskService) alertLocked(message string) {
	if s.alerter == nil {
		s.alerter = notify.NewBellAlerter()
	}
	s.alerter.Alert(message)
}

func (s *HelpdeskService) Messages(ctx context.Context) ([]models.HelpMessage, error) {
	return s.repo.List(ctx)
}

// Interstitial returns the message awaiting staff attention, if any.
func (s *HelpdeskService) Interstitial() (*models.HelpMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return nil, false
	}
	msg := *s.pending
	return &msg, true
}

// Snooze dismisses the current interstitial and suppresses any further
// ones for the rest of the session.
func (s *HelpdeskService) Snooze() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
	s.snoozed = true
}

// Accept clears the interstitial and hands back the contact shortcuts for
// the message it was showing.
func (s *HelpdeskService) Accept() (*ContactShortcuts, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return nil, false
	}
	msg := *s.pending
	s.pending = nil
	return s.shortcuts(msg), true
}

// Resolve deletes the message for good. Permanent, not reversible.
func (s *HelpdeskService) Resolve(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil && s.pending.ID.Hex() == id {
		s.pending = nil
	}
	// The next poll sees one fewer message; seenCount follows it there.
	if s.seenCount > 0 {
		s.seenCount--
	}
	return nil
}

func (s *HelpdeskService) shortcuts(msg models.HelpMessage) *ContactShortcuts {
	accept := "Re: your message to " + s.org.Name
	acceptBody := "Dear " + msg.Name + ",\n\nThank you for reaching out. We have received your message and a member of our team will assist you shortly.\n\n" + orgFooter(s.org)
	reject := "Re: your message to " + s.org.Name
	rejectBody := "Dear " + msg.Name + ",\n\nThank you for contacting us. Unfortunately we are unable to help with this request at this time.\n\n" + orgFooter(s.org)
	return &ContactShortcuts{
		CallLink:       "tel:" + msg.Phone,
		AcceptMailLink: composeMailLink(msg.Email, accept, acceptBody),
		RejectMailLink: composeMailLink(msg.Email, reject, rejectBody),
	}
}
