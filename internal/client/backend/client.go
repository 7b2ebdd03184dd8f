// Package backend talks to the proxy that fronts SchoolStatus. It
// exposes the two supported remote calls as separate contracts so the
// session layer can be tested against fakes.
//
// Error conditions are surfaced as sentinel errors (ErrDecode,
// ErrNoCandidate) matched with errors.Is, or as *RemoteError carrying
// the server-reported message.
package backend

import (
	"context"

	"github.com/vimarshsub/schoolstatus-cli/internal/client/models"
)

// AnnouncementFetcher performs the combined login+fetch call.
type AnnouncementFetcher interface {
	FetchAnnouncements(ctx context.Context, username, password string) ([]models.Announcement, error)
}

// DocumentProber performs the secondary document-probe call for one
// announcement chosen from the given list.
type DocumentProber interface {
	ProbeDocuments(ctx context.Context, username, password string, announcements []models.Announcement) (*models.ProbeResult, error)
}
