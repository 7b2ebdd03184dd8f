package cli

import (
	"fmt"
	"io"

	"github.com/vimarshsub/schoolstatus-cli/internal/client/models"
)

// renderAnnouncements prints the list the way the original interface
// did: "No Title"/"No Message"/"N/A" substitutions happen here, at the
// presentation boundary. Bodies are printed as opaque text.
func renderAnnouncements(w io.Writer, announcements []models.Announcement) {
	if len(announcements) == 0 {
		fmt.Fprintln(w, "No announcements found or returned.")
		return
	}

	fmt.Fprintf(w, "Announcements (%d):\n", len(announcements))
	for _, a := range announcements {
		title := "No Title"
		if a.Title != nil && *a.Title != "" {
			title = *a.Title
		}
		message := a.Message
		if message == "" {
			message = "No Message"
		}
		author := "N/A"
		if a.Author.ID != nil {
			author = *a.Author.ID
		}
		sent := "N/A"
		if a.CreatedAt != nil {
			sent = *a.CreatedAt
		}

		fmt.Fprintln(w, "----------------------------------------")
		fmt.Fprintln(w, title)
		fmt.Fprintln(w, message)
		fmt.Fprintf(w, "Sent by: User ID %s on %s\n", author, sent)
		fmt.Fprintf(w, "Documents: %d\n", a.DocumentsCount)
	}
}

func renderProbeResult(w io.Writer, result *models.ProbeResult) {
	if result == nil {
		return
	}

	fmt.Fprintln(w, result.Message)
	if len(result.Documents) == 0 {
		fmt.Fprintln(w, "No documents returned.")
		return
	}
	for _, d := range result.Documents {
		fmt.Fprintf(w, "  %s (%s) %s\n", d.FileFilename, d.ContentType, d.FileURL)
	}
}
