package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"clinicflow/models"
)

// HTTPCalendarClient talks to the calendar backend over HTTP with a
// bounded per-call timeout.
type HTTPCalendarClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPCalendarClient builds a client for the given base URL, e.g.
// "http://localhost:8080/api/calendar".
func NewHTTPCalendarClient(baseURL string, timeout time.Duration) *HTTPCalendarClient {
	return &HTTPCalendarClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *HTTPCalendarClient) Availability(ctx context.Context, appointmentType string) (*models.Availability, error) {
	q := url.Values{}
	q.Set("appointment_type", appointmentType)
	var out models.Availability
	if err := c.get(ctx, "/availability?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPCalendarClient) Book(ctx context.Context, appt models.Appointment) (*models.BookingConfirmation, error) {
	var out models.BookingConfirmation
	if err := c.post(ctx, "/book", appt, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPCalendarClient) Cancel(ctx context.Context, bookingID, email string) (*models.CancelConfirmation, error) {
	q := url.Values{}
	if bookingID != "" {
		q.Set("booking_id", bookingID)
	}
	if email != "" {
		q.Set("email", email)
	}
	var out models.CancelConfirmation
	if err := c.post(ctx, "/cancel?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPCalendarClient) Reschedule(ctx context.Context, bookingID, newDate, newStartTime string) (*models.RescheduleConfirmation, error) {
	q := url.Values{}
	q.Set("booking_id", bookingID)
	q.Set("new_date", newDate)
	q.Set("new_start_time", newStartTime)
	var out models.RescheduleConfirmation
	if err := c.post(ctx, "/reschedule?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPCalendarClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return c.do(req, out)
}

func (c *HTTPCalendarClient) post(ctx context.Context, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *HTTPCalendarClient) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	return nil
}
