package handler

import (
	"net/http"

	"github.com/cheickthiam/portfolio/internal/api"
	"github.com/cheickthiam/portfolio/internal/model"
	"github.com/cheickthiam/portfolio/internal/service"
)

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// Submit stores a contact message. Notifications are sent in the
// background and never delay the response.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var submission model.ContactSubmission
	err := api.Decode(r, &submission)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	contact, err := h.contactService.Submit(r.Context(), submission)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusCreated, map[string]any{
		"message": "Message sent successfully",
		"contact": map[string]any{
			"_id":       contact.ID,
			"name":      contact.Name,
			"createdAt": contact.CreatedAt,
		},
	})
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contactService.List(r.Context())
	if err != nil {
		api.Error(w, r, err)
		return
	}
	api.JSON(w, http.StatusOK, contacts)
}

func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	contact, err := h.contactService.ByID(r.Context(), r.PathValue("id"))
	if err != nil {
		api.Error(w, r, err)
		return
	}
	api.JSON(w, http.StatusOK, contact)
}

func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	h.setRead(w, r, true)
}

func (h *ContactHandler) MarkUnread(w http.ResponseWriter, r *http.Request) {
	h.setRead(w, r, false)
}

func (h *ContactHandler) setRead(w http.ResponseWriter, r *http.Request, read bool) {
	contact, err := h.contactService.SetRead(r.Context(), r.PathValue("id"), read)
	if err != nil {
		api.Error(w, r, err)
		return
	}
	api.JSON(w, http.StatusOK, contact)
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.contactService.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		api.Error(w, r, err)
		return
	}
	deleted(w, "Message")
}
