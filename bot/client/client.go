package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"stayhub/models"
)

// API is the Booking Service surface the conversation engine depends on.
type API interface {
	RegisterUser(ctx context.Context, u models.User) (*models.User, error)
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, userID int64) error

	ListRooms(ctx context.Context) ([]models.Room, error)
	CreateRoom(ctx context.Context, draft models.RoomDraft) (*models.Room, error)
	UploadRoomPhotos(ctx context.Context, paths []string) ([]string, error)

	CreateBooking(ctx context.Context, userID int64, roomNumber string, userData *models.User) (*models.Room, error)
	ListUserBookings(ctx context.Context, userID int64) ([]models.Room, error)
	ListBookingsByStatus(ctx context.Context, status string) ([]models.Room, error)

	SubmitFeedback(ctx context.Context, fb models.Feedback) error
	ListFeedback(ctx context.Context) ([]models.Feedback, error)
	UpdateFeedback(ctx context.Context, id, body string) error
	DeleteFeedback(ctx context.Context, id string) error
}

// Client is the HTTP implementation of API.
type Client struct {
	baseURL  string
	adminKey string
	http     *http.Client
}

// New creates a Client against the given base URL.
func New(baseURL, adminKey string) *Client {
	return &Client{
		baseURL:  baseURL,
		adminKey: adminKey,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// mapStatus converts non-2xx responses into typed errors.
func mapStatus(status int, body []byte) error {
	switch status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusConflict:
		return ErrConflict
	default:
		return fmt.Errorf("unexpected status %d: %s", status, bytes.TrimSpace(body))
	}
}

// doJSON performs a request with an optional JSON body and decodes the
// response into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.adminKey != "" {
		req.Header.Set("X-API-Key", c.adminKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapStatus(resp.StatusCode, data)
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// RegisterUser calls POST /api/register.
func (c *Client) RegisterUser(ctx context.Context, u models.User) (*models.User, error) {
	payload := map[string]any{
		"name":         u.Name,
		"age":          u.Age,
		"phone":        u.Phone,
		"email":        u.Email,
		"address":      u.Address,
		"stayDuration": u.StayDuration,
		"userId":       u.UserID,
	}
	var resp struct {
		Message string       `json:"message"`
		User    *models.User `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/register", payload, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// GetUser calls GET /api/admin/users/:userId.
func (c *Client) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	var u models.User
	path := "/api/admin/users/" + strconv.FormatInt(userID, 10)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsers calls GET /api/admin/users.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser calls DELETE /api/admin/users/:userId.
func (c *Client) DeleteUser(ctx context.Context, userID int64) error {
	path := "/api/admin/users/" + strconv.FormatInt(userID, 10)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// ListRooms calls GET /api/rooms.
func (c *Client) ListRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := c.doJSON(ctx, http.MethodGet, "/api/rooms", nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// CreateRoom calls POST /api/admin/room with a multipart payload carrying
// the room fields and the references of already-uploaded photos.
func (c *Client) CreateRoom(ctx context.Context, draft models.RoomDraft) (*models.Room, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"roomNumber": draft.RoomNumber,
		"type":       draft.Type,
		"price":      strconv.Itoa(draft.Price),
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("failed to write field %s: %w", name, err)
		}
	}
	for name, value := range map[string]any{
		"location":  draft.Location,
		"amenities": draft.Amenities,
		"imageUrls": draft.ImageURLs,
	} {
		b, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode field %s: %w", name, err)
		}
		if err := w.WriteField(name, string(b)); err != nil {
			return nil, fmt.Errorf("failed to write field %s: %w", name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	var room models.Room
	if err := c.doMultipart(ctx, "/api/admin/room", &buf, w.FormDataContentType(), &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// UploadRoomPhotos calls POST /api/admin/room/photos with the files at the
// given local paths and returns the persisted references.
func (c *Client) UploadRoomPhotos(ctx context.Context, paths []string) ([]string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return nil, fmt.Errorf("failed to open photo %s: %w", p, err)
		}
		part, err := w.CreateFormFile("images", filepath.Base(p))
		if err == nil {
			_, err = io.Copy(part, f)
		}
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to attach photo %s: %w", p, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	var resp struct {
		ImageURLs []string `json:"imageUrls"`
	}
	if err := c.doMultipart(ctx, "/api/admin/room/photos", &buf, w.FormDataContentType(), &resp); err != nil {
		return nil, err
	}
	return resp.ImageURLs, nil
}

// doMultipart posts a prepared multipart body.
func (c *Client) doMultipart(ctx context.Context, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	if c.adminKey != "" {
		req.Header.Set("X-API-Key", c.adminKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapStatus(resp.StatusCode, data)
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// CreateBooking calls POST /api/bookings.
func (c *Client) CreateBooking(ctx context.Context, userID int64, roomNumber string, userData *models.User) (*models.Room, error) {
	payload := map[string]any{
		"userId":     userID,
		"roomNumber": roomNumber,
		"userData":   userData,
	}
	var resp struct {
		Message string       `json:"message"`
		Status  string       `json:"status"`
		Room    *models.Room `json:"room"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/bookings", payload, &resp); err != nil {
		return nil, err
	}
	return resp.Room, nil
}

// ListUserBookings calls GET /api/bookings/user/:userId.
func (c *Client) ListUserBookings(ctx context.Context, userID int64) ([]models.Room, error) {
	var rooms []models.Room
	path := "/api/bookings/user/" + strconv.FormatInt(userID, 10)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// ListBookingsByStatus calls GET /api/admin/bookings/:status.
func (c *Client) ListBookingsByStatus(ctx context.Context, status string) ([]models.Room, error) {
	var rooms []models.Room
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/bookings/"+status, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// SubmitFeedback calls POST /api/feedback.
func (c *Client) SubmitFeedback(ctx context.Context, fb models.Feedback) error {
	payload := map[string]any{
		"userId":   fb.UserID,
		"name":     fb.Name,
		"rating":   fb.Rating,
		"feedback": fb.Feedback,
	}
	return c.doJSON(ctx, http.MethodPost, "/api/feedback", payload, nil)
}

// ListFeedback calls GET /api/feedback.
func (c *Client) ListFeedback(ctx context.Context) ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	if err := c.doJSON(ctx, http.MethodGet, "/api/feedback", nil, &feedbacks); err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// UpdateFeedback calls PUT /api/feedback/:id.
func (c *Client) UpdateFeedback(ctx context.Context, id, body string) error {
	return c.doJSON(ctx, http.MethodPut, "/api/feedback/"+id, map[string]string{"feedback": body}, nil)
}

// DeleteFeedback calls DELETE /api/feedback/:id.
func (c *Client) DeleteFeedback(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/feedback/"+id, nil, nil)
}
