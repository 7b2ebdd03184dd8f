// Package normalize converts the backend's announcement payloads into
// the canonical model.
//
// The backend proxy has gone through several revisions and the
// login+fetch endpoint still answers in any of four shapes: a flat
// "announcements" array, a connection-style "edges"/"node" wrapper, a
// bare {"message": ...} object signalling an empty feed, or something
// unrecognized. Shapes are tried in that order and the first match
// wins; an unrecognized object degrades to an empty list rather than
// failing the session.
package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vimarshsub/schoolstatus-cli/internal/client/models"
)

// ErrInvalidPayload marks a response whose top level is not a JSON
// object (null, a primitive, an array, or not JSON at all).
var ErrInvalidPayload = errors.New("invalid payload")

// Shape names the payload variant the normalizer matched. Callers use
// it to log the unknown-shape condition; it is never an error by itself.
type Shape string

const (
	ShapeAnnouncements Shape = "announcements"
	ShapeEdges         Shape = "edges"
	ShapeEmptyMessage  Shape = "message"
	ShapeUnknown       Shape = "unknown"
)

// idNamespace seeds deterministic ids for nodes the backend returned
// without one. Stable across runs for identical payloads.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://connect.schoolstatus.com/announcement"))

// flexString tolerates backend ids arriving as JSON strings or numbers.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexString(n.String())
		return nil
	}
	return fmt.Errorf("value %q is neither string nor number", data)
}

type node struct {
	ID             *flexString       `json:"id"`
	DBID           *flexString       `json:"dbId"`
	Title          *string           `json:"title"`
	Message        *string           `json:"message"`
	CreatedAt      *string           `json:"createdAt"`
	DocumentsCount int               `json:"documentsCount"`
	Documents      []models.Document `json:"documents"`
	User           *struct {
		ID *flexString `json:"id"`
	} `json:"user"`
}

type edge struct {
	Node *node `json:"node"`
}

// envelope keeps the candidate collections raw so each shape's
// presence is its own explicit branch.
type envelope struct {
	Announcements json.RawMessage `json:"announcements"`
	Edges         json.RawMessage `json:"edges"`
	Message       json.RawMessage `json:"message"`
}

// Announcements normalizes a raw login+fetch response body.
//
// It returns the canonical list plus the matched Shape. Malformed or
// missing optional fields never fail; only a non-object top level
// yields ErrInvalidPayload.
func Announcements(raw []byte) ([]models.Announcement, Shape, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ShapeUnknown, fmt.Errorf("%w: top level is not an object", ErrInvalidPayload)
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, ShapeUnknown, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if nodes, ok := decodeArray[node](env.Announcements); ok {
		return mapNodes(nodes), ShapeAnnouncements, nil
	}

	if edges, ok := decodeArray[edge](env.Edges); ok {
		nodes := make([]node, 0, len(edges))
		for _, e := range edges {
			if e.Node != nil {
				nodes = append(nodes, *e.Node)
			}
		}
		return mapNodes(nodes), ShapeEdges, nil
	}

	if isString(env.Message) {
		return []models.Announcement{}, ShapeEmptyMessage, nil
	}

	return []models.Announcement{}, ShapeUnknown, nil
}

// decodeArray reports whether raw holds a JSON array of T. Anything
// else, including a present-but-malformed value, is treated as absent
// so the next shape gets a chance.
func decodeArray[T any](raw json.RawMessage) ([]T, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}
	var out []T
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, false
	}
	return out, true
}

func isString(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '"'
}

func mapNodes(nodes []node) []models.Announcement {
	out := make([]models.Announcement, 0, len(nodes))
	for i, n := range nodes {
		out = append(out, mapNode(i, n))
	}
	return out
}

func mapNode(pos int, n node) models.Announcement {
	a := models.Announcement{
		Title:          n.Title,
		CreatedAt:      n.CreatedAt,
		DocumentsCount: n.DocumentsCount,
		Documents:      n.Documents,
	}

	if a.DocumentsCount < 0 {
		a.DocumentsCount = 0
	}
	if a.Documents == nil {
		a.Documents = []models.Document{}
	}
	if n.Message != nil {
		a.Message = *n.Message
	}
	if n.DBID != nil {
		s := string(*n.DBID)
		a.DBID = &s
	}
	if n.User != nil && n.User.ID != nil {
		s := string(*n.User.ID)
		a.Author.ID = &s
	}

	if n.ID != nil && *n.ID != "" {
		a.ID = string(*n.ID)
	} else {
		a.ID = synthesizeID(pos, n)
	}

	return a
}

// synthesizeID derives a stable UUIDv5 for a node with no id. Position
// keeps two otherwise identical nodes distinct within one list.
func synthesizeID(pos int, n node) string {
	seed := fmt.Sprintf("%d|%s|%s", pos, derefFlex(n.DBID), deref(n.CreatedAt))
	return uuid.NewSHA1(idNamespace, []byte(seed)).String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFlex(s *flexString) string {
	if s == nil {
		return ""
	}
	return string(*s)
}
