package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vimarshsub/schoolstatus-cli/internal/client/models"
	"github.com/vimarshsub/schoolstatus-cli/internal/client/normalize"
	"github.com/vimarshsub/schoolstatus-cli/internal/logging"
)

const (
	announcementsPath = "/api/fetch-and-save-announcements"
	documentsPath     = "/api/test-fetch-documents"

	// shown when the probe response carries documents but no message
	probeFallbackMessage = "Documents fetched."
)

// HTTPClient implements AnnouncementFetcher and DocumentProber against
// the JSON/HTTP proxy.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
	log     logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type probeRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	AnnouncementID string `json:"announcementId"`
}

// post sends body as JSON and returns the status code plus the raw
// response bytes. Transport-level failures are the only errors.
func (c *HTTPClient) post(ctx context.Context, path string, body any) (int, []byte, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return 0, nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return 0, nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("reading response: %w", err)
	}
	return resp.StatusCode, data, nil
}

// remoteMessage extracts the server-reported "error" field, if any.
// A non-JSON body simply reports no message.
func remoteMessage(body []byte) (string, bool) {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Error == "" {
		return "", false
	}
	return payload.Error, true
}

func success(status int) bool {
	return status >= 200 && status <= 299
}

// FetchAnnouncements logs in and fetches the announcement feed in one
// call. The raw payload goes through the normalizer; an unrecognized
// shape is logged and returned as an empty list.
func (c *HTTPClient) FetchAnnouncements(ctx context.Context, username, password string) ([]models.Announcement, error) {
	status, body, err := c.post(ctx, announcementsPath, loginRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("announcements request: %w", err)
	}

	if !success(status) {
		if msg, ok := remoteMessage(body); ok {
			return nil, &RemoteError{StatusCode: status, Message: msg}
		}
		return nil, httpStatusError(status)
	}

	list, shape, err := normalize.Announcements(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if shape == normalize.ShapeUnknown {
		c.log.Warn(ctx, "unexpected announcements payload shape, treating as empty", "status", status)
	}

	c.log.Info(ctx, "announcements fetched", "count", len(list), "shape", string(shape))
	return list, nil
}

// ProbeDocuments asks the proxy for the attachments of the first
// stored announcement that reports any documents. Without such a
// candidate it fails with ErrNoCandidate before any network call.
func (c *HTTPClient) ProbeDocuments(ctx context.Context, username, password string, announcements []models.Announcement) (*models.ProbeResult, error) {
	var candidate *models.Announcement
	for i := range announcements {
		if announcements[i].HasDocuments() {
			candidate = &announcements[i]
			break
		}
	}
	if candidate == nil {
		return nil, ErrNoCandidate
	}

	var announcementID string
	if candidate.DBID != nil {
		announcementID = *candidate.DBID
	}
	c.log.Info(ctx, "probing documents", "announcementId", announcementID, "documentsCount", candidate.DocumentsCount)

	status, body, err := c.post(ctx, documentsPath, probeRequest{
		Username:       username,
		Password:       password,
		AnnouncementID: announcementID,
	})
	if err != nil {
		return nil, fmt.Errorf("documents request: %w", err)
	}

	// the proxy reports some failures with a 200 and an "error" field
	if msg, ok := remoteMessage(body); ok {
		return nil, &RemoteError{StatusCode: status, Message: msg}
	}
	if !success(status) {
		return nil, httpStatusError(status)
	}

	var payload struct {
		Documents []models.Document `json:"documents"`
		Message   *string           `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	result := &models.ProbeResult{
		Documents: payload.Documents,
		Message:   probeFallbackMessage,
	}
	if result.Documents == nil {
		result.Documents = []models.Document{}
	}
	if payload.Message != nil {
		result.Message = *payload.Message
	}
	return result, nil
}
