// Package session owns the client-side state machine: the current
// view, the in-memory credentials, the last normalized announcement
// list, and the orthogonal document-probe sub-state. It is the only
// surface the presentation layer talks to.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/vimarshsub/schoolstatus-cli/internal/client/backend"
	"github.com/vimarshsub/schoolstatus-cli/internal/client/models"
	"github.com/vimarshsub/schoolstatus-cli/internal/logging"
)

// ViewState is the login-side state of the session.
//
// Initial -> Unauthenticated -> Authenticating -> Authenticated, with
// a back-edge Authenticating -> Unauthenticated on failure. The
// landing state is never re-entered and Authenticated has no exit.
type ViewState string

const (
	ViewInitial         ViewState = "initial"
	ViewUnauthenticated ViewState = "unauthenticated"
	ViewAuthenticating  ViewState = "authenticating"
	ViewAuthenticated   ViewState = "authenticated"
)

// ProbeState tracks the document probe independently of ViewState.
type ProbeState string

const (
	ProbeIdle    ProbeState = "idle"
	ProbeTesting ProbeState = "testing"
	ProbeProbed  ProbeState = "probed"
	ProbeFailed  ProbeState = "failed"
)

var (
	// ErrLoginInFlight rejects a login submitted while one is pending.
	ErrLoginInFlight = errors.New("login already in progress")

	// ErrProbeInFlight rejects a probe submitted while one is pending.
	ErrProbeInFlight = errors.New("document probe already in progress")

	// ErrMissingCredentials rejects empty username or password.
	ErrMissingCredentials = errors.New("username and password are required")

	// ErrLoginNotAllowed rejects a login outside the Unauthenticated view.
	ErrLoginNotAllowed = errors.New("login not available in this view")
)

// Controller is safe for concurrent use. Network calls run outside the
// lock; each settled call is applied in a single write, and a result
// that lost the race to a newer request of the same kind is dropped.
type Controller struct {
	mu sync.Mutex

	fetcher backend.AnnouncementFetcher
	prober  backend.DocumentProber
	log     logging.Logger

	view          ViewState
	creds         *models.Credentials
	announcements []models.Announcement
	loginErr      string
	loginSeq      uint64

	probe       ProbeState
	probeResult *models.ProbeResult
	probeErr    string
	probeSeq    uint64
}

func NewController(fetcher backend.AnnouncementFetcher, prober backend.DocumentProber, log logging.Logger) *Controller {
	return &Controller{
		fetcher: fetcher,
		prober:  prober,
		log:     log,
		view:    ViewInitial,
		probe:   ProbeIdle,
	}
}

// Proceed leaves the landing state. One-directional; calling it in any
// other state is a no-op.
func (c *Controller) Proceed() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.view == ViewInitial {
		c.view = ViewUnauthenticated
	}
}

// Login performs the login+fetch call and applies the outcome.
//
// Rejections (no transition): empty username or password, a login
// already in flight, or a view that has no login edge. On success the
// stored list is replaced wholesale and any prior error is cleared; on
// failure credentials are dropped, the list is cleared, and the error
// message is kept verbatim for display.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	c.mu.Lock()
	switch {
	case c.view == ViewAuthenticating:
		c.mu.Unlock()
		return ErrLoginInFlight
	case c.view != ViewUnauthenticated:
		c.mu.Unlock()
		return ErrLoginNotAllowed
	case username == "" || password == "":
		c.mu.Unlock()
		return ErrMissingCredentials
	}
	c.view = ViewAuthenticating
	c.creds = &models.Credentials{Username: username, Password: password}
	c.loginSeq++
	seq := c.loginSeq
	c.mu.Unlock()

	list, err := c.fetcher.FetchAnnouncements(ctx, username, password)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.loginSeq {
		c.log.Warn(ctx, "discarding stale login result", "seq", seq, "latest", c.loginSeq)
		return err
	}

	if err != nil {
		c.log.Error(ctx, "login failed", "err", err)
		c.view = ViewUnauthenticated
		c.creds = nil
		c.announcements = nil
		c.loginErr = err.Error()
		return err
	}

	c.log.Info(ctx, "login succeeded", "username", username, "announcements", len(list))
	c.view = ViewAuthenticated
	c.announcements = list
	c.loginErr = ""
	return nil
}

// ProbeDocuments delegates to the DocumentProber using the stored
// credentials and announcement list. It never touches the view state:
// a probe failure keeps the announcements intact and is visible only
// through the probe sub-state.
func (c *Controller) ProbeDocuments(ctx context.Context) error {
	c.mu.Lock()
	if c.probe == ProbeTesting {
		c.mu.Unlock()
		return ErrProbeInFlight
	}
	if c.creds == nil {
		c.mu.Unlock()
		return ErrMissingCredentials
	}
	creds := *c.creds
	announcements := c.announcements
	c.probe = ProbeTesting
	c.probeSeq++
	seq := c.probeSeq
	c.mu.Unlock()

	result, err := c.prober.ProbeDocuments(ctx, creds.Username, creds.Password, announcements)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.probeSeq {
		c.log.Warn(ctx, "discarding stale probe result", "seq", seq, "latest", c.probeSeq)
		return err
	}

	if err != nil {
		c.log.Error(ctx, "document probe failed", "err", err)
		c.probe = ProbeFailed
		c.probeResult = nil
		c.probeErr = err.Error()
		return err
	}

	c.log.Info(ctx, "document probe succeeded", "documents", len(result.Documents))
	c.probe = ProbeProbed
	c.probeResult = result
	c.probeErr = ""
	return nil
}

// View returns the current login-side state.
func (c *Controller) View() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Announcements returns a copy of the stored list.
func (c *Controller) Announcements() []models.Announcement {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Announcement, len(c.announcements))
	copy(out, c.announcements)
	return out
}

// LoginError returns the last login failure message, "" when none.
func (c *Controller) LoginError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loginErr
}

// Username returns the logged-in username, "" when not logged in.
func (c *Controller) Username() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.creds == nil {
		return ""
	}
	return c.creds.Username
}

// Probe returns the probe sub-state.
func (c *Controller) Probe() ProbeState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.probe
}

// ProbeResult returns the last successful probe outcome, nil when the
// probe has not succeeded yet.
func (c *Controller) ProbeResult() *models.ProbeResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.probeResult
}

// ProbeError returns the last probe failure message, "" when none.
func (c *Controller) ProbeError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.probeErr
}
