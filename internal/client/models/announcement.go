// Package models defines the canonical announcement and document types
// shared by the normalizer, the backend clients, and the session layer.
package models

// Author identifies who sent an announcement. ID is nil when the
// backend did not report a user id.
type Author struct {
	ID *string `json:"id"`
}

// Document is one attachment stored for an announcement.
type Document struct {
	ID           string `json:"id"`
	FileFilename string `json:"fileFilename"`
	ContentType  string `json:"contentType"`
	FileURL      string `json:"fileUrl"`
}

// Announcement is the canonical post-normalization record.
//
// DocumentsCount and len(Documents) are independent: the backend
// reports the count and the attachment list from different sources and
// does not guarantee they agree. Message is opaque text; whatever
// markup it carries is a presentation concern.
type Announcement struct {
	ID             string     `json:"id"`
	DBID           *string    `json:"dbId"`
	Title          *string    `json:"title"`
	Message        string     `json:"message"`
	Author         Author     `json:"author"`
	CreatedAt      *string    `json:"createdAt"`
	DocumentsCount int        `json:"documentsCount"`
	Documents      []Document `json:"documents"`
}

// HasDocuments reports whether the announcement is a candidate for the
// document probe.
func (a Announcement) HasDocuments() bool {
	return a.DocumentsCount > 0
}

// ProbeResult is the outcome of a successful document probe.
type ProbeResult struct {
	Documents []Document
	Message   string
}

// Credentials live in memory for the duration of the session only.
type Credentials struct {
	Username string
	Password string
}
