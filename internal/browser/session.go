package browser

import (
	"errors"
	"fmt"
	"log"
	"time"
)

// Session owns one driver and tracks at most one child tab opened from the main tab.
type Session struct {
	driver Driver
	child  Page
	closed bool
}

func NewSession(d Driver) *Session {
	return &Session{driver: d}
}

// WithSession opens a driver, runs fn on it and closes it on every exit path.
func WithSession(o Opener, fn func(*Session) error) (err error) {
	d, err := o.Open()
	if err != nil {
		return fmt.Errorf("open browser session: %w", err)
	}
	s := NewSession(d)
	defer func() {
		if cerr := s.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()
	return fn(s)
}

func (s *Session) Main() Page {
	return s.driver.Main()
}

func (s *Session) SetImplicitWait(d time.Duration) {
	s.driver.SetImplicitWait(d)
}

// HasChild reports whether a child tab is currently open.
func (s *Session) HasChild() bool {
	return s.child != nil
}

// WithChild clicks el, runs fn against the tab it opened, then closes that tab
// and focuses the main tab again regardless of fn's result.
func (s *Session) WithChild(el Element, fn func(Page) error) (err error) {
	if s.closed {
		return ErrClosed
	}
	if s.child != nil {
		return ErrChildOpen
	}

	tab, err := s.driver.OpenTab(el)
	if err != nil {
		return err
	}
	s.child = tab

	defer func() {
		if rerr := s.releaseChild(); rerr != nil {
			err = errors.Join(err, rerr)
		}
	}()
	return fn(tab)
}

func (s *Session) releaseChild() error {
	if s.child == nil {
		return nil
	}
	tab := s.child
	s.child = nil

	var errs []error
	if err := tab.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close tab: %w", err))
	}
	if err := s.driver.Focus(s.driver.Main()); err != nil {
		errs = append(errs, fmt.Errorf("focus main tab: %w", err))
	}
	return errors.Join(errs...)
}

// Close releases any open child tab and the driver. Safe to call twice.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if err := s.releaseChild(); err != nil {
		log.Printf("⚠️ Failed to release child tab: %v", err)
		errs = append(errs, err)
	}
	if err := s.driver.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close driver: %w", err))
	}
	return errors.Join(errs...)
}
