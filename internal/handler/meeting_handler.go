package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"
	_ "time/tzdata" // timezone ルールはコンテナに zoneinfo が無くても動かす

	"github.com/kipkirui63/all-in-one/internal/model"
	"github.com/kipkirui63/all-in-one/internal/service"
)

const meetingNotFound = "Meeting not found"

// MeetingHandler handles meeting booking and management.
type MeetingHandler struct {
	meetingService service.MeetingService
}

// NewMeetingHandler creates a MeetingHandler with the given service.
func NewMeetingHandler(meetingService service.MeetingService) *MeetingHandler {
	return &MeetingHandler{meetingService: meetingService}
}

type bookRequest struct {
	Name          string  `json:"name" validate:"required,max=200"`
	Email         string  `json:"email" validate:"required,email,max=254"`
	Phone         *string `json:"phone" validate:"omitempty,max=50"`
	Company       *string `json:"company" validate:"omitempty,max=200"`
	MeetingType   string  `json:"meetingType" validate:"required,oneof='AI Consultation' 'Product Demo' 'Strategy Session' 'Technical Support'"`
	PreferredDate string  `json:"preferredDate" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Duration      *int    `json:"duration" validate:"omitempty,min=15,max=480"`
	Timezone      string  `json:"timezone" validate:"required,timezone"`
	Description   *string `json:"description" validate:"omitempty,max=2000"`
}

// updateRequest is a partial update; absent fields are left unchanged.
// An optional field sent as null or "" is cleared.
type updateRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email           *string `json:"email" validate:"omitempty,email,max=254"`
	Phone           *string `json:"phone" validate:"omitempty,max=50"`
	Company         *string `json:"company" validate:"omitempty,max=200"`
	MeetingType     *string `json:"meetingType" validate:"omitempty,oneof='AI Consultation' 'Product Demo' 'Strategy Session' 'Technical Support'"`
	PreferredDate   *string `json:"preferredDate" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Duration        *int    `json:"duration" validate:"omitempty,min=15,max=480"`
	Timezone        *string `json:"timezone" validate:"omitempty,timezone"`
	Description     *string `json:"description" validate:"omitempty,max=2000"`
	Status          *string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
	GoogleMeetLink  *string `json:"googleMeetLink" validate:"omitempty,url,max=500"`
	CalendarEventID *string `json:"calendarEventId" validate:"omitempty,max=200"`
}

// clearNulls turns an explicit null on an optional field into "", which
// the store treats as a clear.
func (req *updateRequest) clearNulls(nulls map[string]bool) {
	for key, field := range map[string]**string{
		"phone":           &req.Phone,
		"company":         &req.Company,
		"description":     &req.Description,
		"googleMeetLink":  &req.GoogleMeetLink,
		"calendarEventId": &req.CalendarEventID,
	} {
		if nulls[key] {
			empty := ""
			*field = &empty
		}
	}
}

type meetingResponse struct {
	Message string         `json:"message"`
	Meeting *model.Meeting `json:"meeting"`
}

// parseDate parses a value that already passed the datetime rule.
func parseDate(s string) time.Time {
	t, _ := time.Parse(rfc3339, s)
	return t.UTC()
}

// meetingID parses {id}; ok is false for anything but a positive integer.
func meetingID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Book handles POST /api/meetings/book.
func (h *MeetingHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		writeValidation(w, r, err)
		return
	}

	m := &model.Meeting{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Company:       req.Company,
		MeetingType:   req.MeetingType,
		PreferredDate: parseDate(req.PreferredDate),
		Timezone:      req.Timezone,
		Description:   req.Description,
	}
	if req.Duration != nil {
		m.Duration = *req.Duration
	}

	if err := h.meetingService.Book(r.Context(), m); err != nil {
		writeInternal(w, r, "Failed to book meeting", err)
		return
	}
	writeJSON(w, http.StatusCreated, meetingResponse{Message: "Meeting booked successfully", Meeting: m})
}

// List handles GET /api/meetings.
func (h *MeetingHandler) List(w http.ResponseWriter, r *http.Request) {
	meetings, err := h.meetingService.List(r.Context())
	if err != nil {
		writeInternal(w, r, "Failed to fetch meetings", err)
		return
	}
	// Return [] not null for empty lists
	if meetings == nil {
		meetings = []*model.Meeting{}
	}
	writeJSON(w, http.StatusOK, meetings)
}

// Get handles GET /api/meetings/{id}.
func (h *MeetingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := meetingID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, meetingNotFound)
		return
	}
	m, err := h.meetingService.Get(r.Context(), id)
	if errors.Is(err, service.ErrMeetingNotFound) {
		writeMessage(w, http.StatusNotFound, meetingNotFound)
		return
	}
	if err != nil {
		writeInternal(w, r, "Failed to fetch meeting", err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// Update handles PUT /api/meetings/{id}.
func (h *MeetingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := meetingID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, meetingNotFound)
		return
	}
	body, err := readBody(w, r)
	if err != nil {
		writeValidation(w, r, err)
		return
	}
	var req updateRequest
	if err := unmarshalAndValidate(body, &req); err != nil {
		writeValidation(w, r, err)
		return
	}
	req.clearNulls(explicitNulls(body))

	upd := model.MeetingUpdate{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Company:         req.Company,
		MeetingType:     req.MeetingType,
		Duration:        req.Duration,
		Timezone:        req.Timezone,
		Description:     req.Description,
		Status:          req.Status,
		GoogleMeetLink:  req.GoogleMeetLink,
		CalendarEventID: req.CalendarEventID,
	}
	if req.PreferredDate != nil {
		d := parseDate(*req.PreferredDate)
		upd.PreferredDate = &d
	}

	m, err := h.meetingService.Update(r.Context(), id, upd)
	if errors.Is(err, service.ErrMeetingNotFound) {
		writeMessage(w, http.StatusNotFound, meetingNotFound)
		return
	}
	if err != nil {
		writeInternal(w, r, "Failed to update meeting", err)
		return
	}
	writeJSON(w, http.StatusOK, meetingResponse{Message: "Meeting updated successfully", Meeting: m})
}

// Delete handles DELETE /api/meetings/{id}.
func (h *MeetingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := meetingID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, meetingNotFound)
		return
	}
	err := h.meetingService.Cancel(r.Context(), id)
	if errors.Is(err, service.ErrMeetingNotFound) {
		writeMessage(w, http.StatusNotFound, meetingNotFound)
		return
	}
	if err != nil {
		writeInternal(w, r, "Failed to cancel meeting", err)
		return
	}
	writeMessage(w, http.StatusOK, "Meeting cancelled successfully")
}
