package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout bounds every backend round-trip. A hung backend fails the
// single triggering call; there is no retry or backoff anywhere in this
// package.
const DefaultTimeout = 10 * time.Second

// Client performs HTTP calls against the backend API and normalizes every
// response into an [Envelope]. The bearer token is always an explicit
// parameter — the client holds no identity state, which keeps it testable
// in isolation.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given base URL (including any path
// prefix the backend mounts its API under). An empty base URL is allowed:
// every call then fails cleanly with the synthetic unknown-error envelope
// instead of crashing the process. A non-positive timeout selects
// [DefaultTimeout].
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL reports the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) doJSON(ctx context.Context, method, path, token string, body any) Envelope {
	if c.baseURL == "" {
		return failureEnvelope(0, UnknownErrorMessage)
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return failureEnvelope(0, UnknownErrorMessage)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return failureEnvelope(0, UnknownErrorMessage)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.send(req)
}

func (c *Client) doMultipart(ctx context.Context, path, token, field, filename string, file io.Reader) Envelope {
	if c.baseURL == "" {
		return failureEnvelope(0, UnknownErrorMessage)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return failureEnvelope(0, UnknownErrorMessage)
	}
	if _, err := io.Copy(part, file); err != nil {
		return failureEnvelope(0, UnknownErrorMessage)
	}
	if err := writer.Close(); err != nil {
		return failureEnvelope(0, UnknownErrorMessage)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return failureEnvelope(0, UnknownErrorMessage)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.send(req)
}

// send executes the request and parses the response body. A non-2xx status
// with a parseable envelope passes through unchanged so callers can inspect
// Status for overrides; anything unparseable becomes the synthetic failure.
func (c *Client) send(req *http.Request) Envelope {
	res, err := c.http.Do(req)
	if err != nil {
		return failureEnvelope(0, UnknownErrorMessage)
	}
	defer res.Body.Close()

	var env Envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return failureEnvelope(res.StatusCode, UnknownErrorMessage)
	}
	if env.Status == 0 {
		env.Status = res.StatusCode
	}
	return env
}

/*
====================================
EVENTS
====================================
*/

// StakeholderSeed is the initial stakeholder embedded in event creation.
type StakeholderSeed struct {
	Name     string `json:"name"`
	Position string `json:"position"`
}

// CreateEventRequest is the wire body of [Client.CreateEvent].
type CreateEventRequest struct {
	EventName     string          `json:"eventName"`
	Description   string          `json:"description"`
	ActivityAt    string          `json:"activityAt"`
	PrefixCode    string          `json:"prefixCode"`
	SuffixCode    int             `json:"suffixCode"`
	Organizer     string          `json:"organizer"`
	EventTheme    string          `json:"eventTheme"`
	EventTemplate string          `json:"eventTemplate"`
	Stakeholders  StakeholderSeed `json:"stakeholders"`
}

// UpdateEventRequest is the wire body of [Client.UpdateEvent]. Empty fields
// are omitted so the backend applies a partial update.
type UpdateEventRequest struct {
	EventName     string `json:"eventName,omitempty"`
	Description   string `json:"description,omitempty"`
	ActivityAt    string `json:"activityAt,omitempty"`
	PrefixCode    string `json:"prefixCode,omitempty"`
	SuffixCode    int    `json:"suffixCode,omitempty"`
	Organizer     string `json:"organizer,omitempty"`
	EventTheme    string `json:"eventTheme,omitempty"`
	EventTemplate string `json:"eventTemplate,omitempty"`
}

// UpdateStakeholderRequest is the wire body of [Client.UpdateStakeholder].
type UpdateStakeholderRequest struct {
	EventStakeholderName     string `json:"eventStakeholderName"`
	EventStakeholderPosition string `json:"eventStakeholderPosition"`
}

// ListEvents fetches every event visible to the token's identity.
func (c *Client) ListEvents(ctx context.Context, token string) Envelope {
	return c.doJSON(ctx, http.MethodGet, "/events", token, nil)
}

// GetEvent fetches a single event by uid.
func (c *Client) GetEvent(ctx context.Context, token, eventUID string) Envelope {
	return c.doJSON(ctx, http.MethodGet, "/events/"+url.PathEscape(eventUID), token, nil)
}

// CreateEvent creates an event with its initial stakeholder.
func (c *Client) CreateEvent(ctx context.Context, token string, body CreateEventRequest) Envelope {
	return c.doJSON(ctx, http.MethodPost, "/events/create", token, body)
}

// UpdateEvent applies a partial update to an event.
func (c *Client) UpdateEvent(ctx context.Context, token, eventUID string, body UpdateEventRequest) Envelope {
	return c.doJSON(ctx, http.MethodPatch, "/events/update/"+url.PathEscape(eventUID), token, body)
}

// DeleteEvent removes an event.
func (c *Client) DeleteEvent(ctx context.Context, token, eventUID string) Envelope {
	return c.doJSON(ctx, http.MethodDelete, "/events/delete/"+url.PathEscape(eventUID), token, nil)
}

// UpdateStakeholder renames or repositions one event stakeholder.
func (c *Client) UpdateStakeholder(ctx context.Context, token, eventUID, stakeholderUID string, body UpdateStakeholderRequest) Envelope {
	path := "/events/" + url.PathEscape(eventUID) + "/stakeholder/" + url.PathEscape(stakeholderUID) + "/update"
	return c.doJSON(ctx, http.MethodPatch, path, token, body)
}

// UploadLogo uploads the first or second certificate logo. The multipart
// field name is "<option>_logo", per the backend contract.
func (c *Client) UploadLogo(ctx context.Context, token, eventUID, option, filename string, file io.Reader) Envelope {
	path := "/events/" + url.PathEscape(eventUID) + "/upload-logo/" + url.PathEscape(option)
	return c.doMultipart(ctx, path, token, option+"_logo", filename, file)
}

// UploadStakeholderImage uploads a stakeholder portrait (multipart field
// "image").
func (c *Client) UploadStakeholderImage(ctx context.Context, token, eventUID, filename string, file io.Reader) Envelope {
	path := "/events/" + url.PathEscape(eventUID) + "/upload-stakeholder"
	return c.doMultipart(ctx, path, token, "image", filename, file)
}

/*
====================================
PARTICIPANTS
====================================
*/

// ParticipantSeed is one participant row in [Client.AddParticipants].
type ParticipantSeed struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Position string `json:"position"`
}

// UpdateParticipantRequest is the wire body of [Client.UpdateParticipant].
type UpdateParticipantRequest struct {
	ParticipantName     string `json:"participantName"`
	ParticipantEmail    string `json:"participantEmail"`
	ParticipantPosition string `json:"participantPosition"`
}

// ListParticipants fetches every participant of one event.
func (c *Client) ListParticipants(ctx context.Context, token, eventUID string) Envelope {
	return c.doJSON(ctx, http.MethodGet, "/events/"+url.PathEscape(eventUID)+"/participants", token, nil)
}

// AddParticipants appends participants to an event.
func (c *Client) AddParticipants(ctx context.Context, token, eventUID string, body []ParticipantSeed) Envelope {
	return c.doJSON(ctx, http.MethodPost, "/events/"+url.PathEscape(eventUID)+"/participants/add", token, body)
}

// AddParticipantsExcel imports participants from a spreadsheet (multipart
// field "excel").
func (c *Client) AddParticipantsExcel(ctx context.Context, token, eventUID, filename string, file io.Reader) Envelope {
	path := "/events/" + url.PathEscape(eventUID) + "/participants/add-excel"
	return c.doMultipart(ctx, path, token, "excel", filename, file)
}

// UpdateParticipant rewrites one participant's fields.
func (c *Client) UpdateParticipant(ctx context.Context, token, eventUID, participantUID string, body UpdateParticipantRequest) Envelope {
	path := "/events/" + url.PathEscape(eventUID) + "/participants/" + url.PathEscape(participantUID) + "/update"
	return c.doJSON(ctx, http.MethodPatch, path, token, body)
}

// DeleteParticipant removes one participant.
func (c *Client) DeleteParticipant(ctx context.Context, token, eventUID, participantUID string) Envelope {
	path := "/events/" + url.PathEscape(eventUID) + "/participants/" + url.PathEscape(participantUID) + "/delete"
	return c.doJSON(ctx, http.MethodDelete, path, token, nil)
}

// DeleteAllParticipants removes every participant of an event.
func (c *Client) DeleteAllParticipants(ctx context.Context, token, eventUID string) Envelope {
	return c.doJSON(ctx, http.MethodDelete, "/events/"+url.PathEscape(eventUID)+"/participants/delete", token, nil)
}

// CertificateParticipant fetches the public certificate view of one
// participant. No token: the endpoint is unauthenticated by design, it
// backs public certificate display and verification.
func (c *Client) CertificateParticipant(ctx context.Context, eventUID, participantUID string) Envelope {
	path := "/events/" + url.PathEscape(eventUID) + "/participants/" + url.PathEscape(participantUID)
	return c.doJSON(ctx, http.MethodGet, path, "", nil)
}

/*
====================================
USERS
====================================
*/

// AddUserRequest is the wire body of [Client.AddUser].
type AddUserRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	Roles          string `json:"roles"`
	PackagePremium string `json:"packagePremium"`
}

// UpdownPackageRequest is the wire body of [Client.UpdownUserPackage].
type UpdownPackageRequest struct {
	PremiumPackage string `json:"premiumPackage"`
}

// AddUser registers an account on behalf of an administrator.
func (c *Client) AddUser(ctx context.Context, token string, body AddUserRequest) Envelope {
	return c.doJSON(ctx, http.MethodPost, "/users/add", token, body)
}

// ListUsers fetches every account. Admin only.
func (c *Client) ListUsers(ctx context.Context, token string) Envelope {
	return c.doJSON(ctx, http.MethodGet, "/users", token, nil)
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, token, userUID string) Envelope {
	return c.doJSON(ctx, http.MethodDelete, "/users/"+url.PathEscape(userUID)+"/delete", token, nil)
}

// UpdownUserPackage moves an account between premium tiers.
func (c *Client) UpdownUserPackage(ctx context.Context, token, userUID string, body UpdownPackageRequest) Envelope {
	return c.doJSON(ctx, http.MethodPatch, "/users/"+url.PathEscape(userUID)+"/updown-package", token, body)
}
