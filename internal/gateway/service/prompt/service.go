package prompt

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"sonarassist/internal/gateway/service/host"
)

// Notifier pushes frames to the connected editor.
type Notifier interface {
	Broadcast(host.Frame)
}

type pendingPrompt struct {
	id          string
	selectionCh chan string
	done        chan struct{}
	closeOnce   sync.Once
}

func (p *pendingPrompt) closeDone() {
	p.closeOnce.Do(func() {
		close(p.done)
	})
}

// Service brokers user-facing prompts: it pushes a prompt frame to the editor
// and suspends the caller until the user selects an option, dismisses the
// prompt, or the wait times out. An empty selection always means "dismissed";
// dismissal is never an error.
type Service struct {
	notifier Notifier
	timeout  time.Duration

	mu      sync.Mutex
	pending map[string]*pendingPrompt
}

// New builds a broker. A timeout of zero waits until the prompt is answered,
// dismissed, or the context ends.
func New(notifier Notifier, timeout time.Duration) *Service {
	return &Service{
		notifier: notifier,
		timeout:  timeout,
		pending:  make(map[string]*pendingPrompt),
	}
}

// Show presents a message with action buttons and returns the chosen option,
// or "" when the prompt was dismissed.
func (s *Service) Show(ctx context.Context, message string, options ...string) (string, error) {
	if s == nil {
		return "", fmt.Errorf("prompt service is nil")
	}
	p := s.register()
	s.notifier.Broadcast(host.Frame{
		Type:     host.FrameShowPrompt,
		PromptID: p.id,
		Message:  message,
		Options:  options,
	})
	return s.await(ctx, p)
}

// Pick presents a quick-pick list and returns the chosen item, or nil when
// the pick was dismissed.
func (s *Service) Pick(ctx context.Context, message string, items []host.PickItem) (*host.PickItem, error) {
	if s == nil {
		return nil, fmt.Errorf("prompt service is nil")
	}
	p := s.register()
	s.notifier.Broadcast(host.Frame{
		Type:     host.FrameShowPick,
		PromptID: p.id,
		Message:  message,
		Items:    items,
	})
	selection, err := s.await(ctx, p)
	if err != nil || selection == "" {
		return nil, err
	}
	for i := range items {
		if items[i].ID == selection {
			item := items[i]
			return &item, nil
		}
	}
	return nil, nil
}

// Submit resolves a pending prompt with the user's selection. It reports
// whether the prompt was still pending.
func (s *Service) Submit(promptID, selection string) bool {
	promptID = strings.TrimSpace(promptID)
	if s == nil || promptID == "" {
		return false
	}
	s.mu.Lock()
	p, ok := s.pending[promptID]
	if ok {
		delete(s.pending, promptID)
	}
	s.mu.Unlock()
	if !ok {
		return false
	}
	p.selectionCh <- strings.TrimSpace(selection)
	return true
}

// Dismiss resolves a pending prompt with no selection.
func (s *Service) Dismiss(promptID string) bool {
	promptID = strings.TrimSpace(promptID)
	if s == nil || promptID == "" {
		return false
	}
	s.mu.Lock()
	p, ok := s.pending[promptID]
	if ok {
		delete(s.pending, promptID)
	}
	s.mu.Unlock()
	if !ok {
		return false
	}
	p.closeDone()
	return true
}

func (s *Service) register() *pendingPrompt {
	p := &pendingPrompt{
		id:          fmt.Sprintf("prompt-%d", time.Now().UnixNano()),
		selectionCh: make(chan string, 1),
		done:        make(chan struct{}),
	}
	s.mu.Lock()
	s.pending[p.id] = p
	s.mu.Unlock()
	return p
}

func (s *Service) await(ctx context.Context, p *pendingPrompt) (string, error) {
	var timeoutCh <-chan time.Time
	if s.timeout > 0 {
		timer := time.NewTimer(s.timeout)
		defer timer.Stop()
		timeoutCh = timer.C
	}

	select {
	case selection := <-p.selectionCh:
		return selection, nil
	case <-p.done:
		return "", nil
	case <-timeoutCh:
		s.clear(p.id)
		return "", nil
	case <-ctx.Done():
		s.clear(p.id)
		return "", ctx.Err()
	}
}

func (s *Service) clear(promptID string) {
	s.mu.Lock()
	delete(s.pending, promptID)
	s.mu.Unlock()
}
