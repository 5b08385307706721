package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"clinicflow/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCalendarRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCalendarHandler("does-not-exist.json")
	r := gin.New()
	r.GET("/availability", h.AvailabilityHandler)
	r.POST("/book", h.BookHandler)
	r.POST("/cancel", h.CancelHandler)
	r.POST("/reschedule", h.RescheduleHandler)
	return r
}

func TestAvailabilityDefaultsToNextSevenDays(t *testing.T) {
	r := newCalendarRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/availability?appointment_type=consultation", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.Availability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Dates, 7)
	assert.Equal(t, time.Now().Format("2006-01-02"), resp.Dates[0].Date)
	assert.NotEmpty(t, resp.Dates[0].AvailableSlots)
	for _, s := range resp.Dates[0].AvailableSlots {
		assert.True(t, s.Available)
	}
}

func TestAvailabilityWithExplicitDate(t *testing.T) {
	r := newCalendarRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/availability?date=2024-01-17", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.Availability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Dates, 1)
	assert.Equal(t, "2024-01-17", resp.Dates[0].Date)
}

func TestAvailabilityRejectsBadDate(t *testing.T) {
	r := newCalendarRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/availability?date=17-01-2024", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookReturnsConfirmation(t *testing.T) {
	r := newCalendarRouter()
	body := `{"appointment_type":"consultation","date":"2024-01-17","start_time":"09:00","patient":{"name":"Jane Doe","phone":"555-1234","email":"jane@x.com"},"reason":"back pain"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/book", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)
	var conf models.BookingConfirmation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conf))
	assert.True(t, strings.HasPrefix(conf.BookingID, "APPT-"))
	assert.Equal(t, "confirmed", conf.Status)
}

func TestBookRequiresDateAndStart(t *testing.T) {
	r := newCalendarRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/book", strings.NewReader(`{"appointment_type":"consultation"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelRequiresIdentifier(t *testing.T) {
	r := newCalendarRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/cancel", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/cancel?booking_id=APPT-1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var conf models.CancelConfirmation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conf))
	assert.Equal(t, "APPT-1", conf.BookingID)
	assert.Equal(t, "cancelled", conf.Status)
}

func TestRescheduleRequiresAllParams(t *testing.T) {
	r := newCalendarRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/reschedule?booking_id=APPT-1", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/reschedule?booking_id=APPT-1&new_date=2024-02-01&new_start_time=10:30", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var conf models.RescheduleConfirmation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conf))
	assert.Equal(t, "rescheduled", conf.Status)
	assert.Equal(t, "2024-02-01", conf.NewDate)
}
