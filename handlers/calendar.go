package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"clinicflow/models"
	"clinicflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalendarHandler serves the mock calendar backend: availability from a
// doctor schedule file plus book/cancel/reschedule confirmations. It
// keeps no booking state.
type CalendarHandler struct {
	schedule map[string][]models.AvailableSlot
}

// NewCalendarHandler loads the doctor schedule from the given JSON file.
// A missing or broken file leaves only the built-in default slots.
func NewCalendarHandler(schedulePath string) *CalendarHandler {
	h := &CalendarHandler{schedule: defaultSchedule()}

	raw, err := os.ReadFile(schedulePath)
	if err != nil {
		utils.GetLogger().Warn("calendar: schedule file not loaded, using defaults",
			zap.String("path", schedulePath), zap.Error(err))
		return h
	}
	var loaded map[string][]models.AvailableSlot
	if err := json.Unmarshal(raw, &loaded); err != nil {
		utils.GetLogger().Warn("calendar: invalid schedule file, using defaults",
			zap.String("path", schedulePath), zap.Error(err))
		return h
	}
	for k, v := range loaded {
		h.schedule[k] = v
	}
	return h
}

func defaultSchedule() map[string][]models.AvailableSlot {
	return map[string][]models.AvailableSlot{
		"default": {
			{StartTime: "09:00", EndTime: "09:30", Available: true},
			{StartTime: "10:30", EndTime: "11:00", Available: true},
			{StartTime: "14:00", EndTime: "14:30", Available: true},
			{StartTime: "15:30", EndTime: "16:00", Available: true},
		},
	}
}

// AvailabilityHandler returns open slots for a date, or for the next 7
// days when no date is given.
func (h *CalendarHandler) AvailabilityHandler(c *gin.Context) {
	var days []time.Time
	if date := c.Query("date"); date != "" {
		d, err := time.Parse("2006-01-02", date)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid date", "use YYYY-MM-DD")
			return
		}
		days = []time.Time{d}
	} else {
		today := time.Now()
		for i := 0; i < 7; i++ {
			days = append(days, today.AddDate(0, 0, i))
		}
	}

	resp := models.Availability{}
	for _, day := range days {
		dayStr := day.Format("2006-01-02")
		slots, ok := h.schedule[dayStr]
		if !ok {
			slots = h.schedule["default"]
		}
		var available []models.AvailableSlot
		for _, s := range slots {
			if s.Available {
				available = append(available, s)
			}
		}
		resp.Dates = append(resp.Dates, models.DayAvailability{
			Date:           dayStr,
			AvailableSlots: available,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// BookHandler confirms a booking without persisting it.
func (h *CalendarHandler) BookHandler(c *gin.Context) {
	var appt models.Appointment
	if err := c.ShouldBindJSON(&appt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if appt.Date == "" || appt.StartTime == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "date and start_time required")
		return
	}
	c.JSON(http.StatusOK, models.BookingConfirmation{
		BookingID:        fmt.Sprintf("APPT-%d", time.Now().Unix()),
		ConfirmationCode: "CONF123",
		Status:           "confirmed",
	})
}

// CancelHandler confirms a cancellation by booking ID or email.
func (h *CalendarHandler) CancelHandler(c *gin.Context) {
	bookingID := c.Query("booking_id")
	email := c.Query("email")
	if bookingID == "" && email == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "booking_id or email required to cancel")
		return
	}
	c.JSON(http.StatusOK, models.CancelConfirmation{
		BookingID: bookingID,
		Status:    "cancelled",
	})
}

// RescheduleHandler confirms a reschedule to the requested slot.
func (h *CalendarHandler) RescheduleHandler(c *gin.Context) {
	bookingID := c.Query("booking_id")
	newDate := c.Query("new_date")
	newStart := c.Query("new_start_time")
	if bookingID == "" || newDate == "" || newStart == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "booking_id, new_date and new_start_time required")
		return
	}
	c.JSON(http.StatusOK, models.RescheduleConfirmation{
		BookingID:        bookingID,
		NewDate:          newDate,
		NewStartTime:     newStart,
		ConfirmationCode: "RESCH123",
		Status:           "rescheduled",
	})
}
