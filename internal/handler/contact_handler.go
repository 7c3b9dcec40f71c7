package handler

import (
	"net/http"

	"github.com/kipkirui63/all-in-one/internal/model"
	"github.com/kipkirui63/all-in-one/internal/service"
)

// ContactHandler handles contact form submission.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contact/submit.
type submitRequest struct {
	Name    string  `json:"name" validate:"required,max=200"`
	Email   string  `json:"email" validate:"required,email,max=254"`
	Phone   *string `json:"phone" validate:"omitempty,max=50"`
	Message string  `json:"message" validate:"required,max=5000"`
}

type contactView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type submitResponse struct {
	Message        string      `json:"message"`
	ContactMessage contactView `json:"contactMessage"`
}

// Submit handles POST /api/contact/submit.
// name, email and message are required; message max 5000 chars.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		writeValidation(w, r, err)
		return
	}

	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := h.contactService.Submit(r.Context(), msg); err != nil {
		writeInternal(w, r, "An error occurred while processing your message.", err)
		return
	}

	writeJSON(w, http.StatusCreated, submitResponse{
		Message:        "Thank you for your message! We'll get back to you soon.",
		ContactMessage: contactView{ID: msg.ID, Name: msg.Name, Email: msg.Email},
	})
}
