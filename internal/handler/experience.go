package handler

import (
	"net/http"

	"github.com/cheickthiam/portfolio/internal/api"
	"github.com/cheickthiam/portfolio/internal/model"
	"github.com/cheickthiam/portfolio/internal/service"
)

type ExperienceHandler struct {
	experienceService *service.ExperienceService
}

func NewExperienceHandler(experienceService *service.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{
		experienceService: experienceService,
	}
}

// List returns visible experiences.
func (h *ExperienceHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

// ListAll includes hidden experiences.
func (h *ExperienceHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

func (h *ExperienceHandler) list(w http.ResponseWriter, r *http.Request, includeHidden bool) {
	experiences, err := h.experienceService.List(r.Context(), includeHidden)
	if err != nil {
		api.Error(w, r, err)
		return
	}
	api.JSON(w, http.StatusOK, experiences)
}

func (h *ExperienceHandler) Get(w http.ResponseWriter, r *http.Request) {
	experience, err := h.experienceService.ByID(r.Context(), r.PathValue("id"))
	if err != nil {
		api.Error(w, r, err)
		return
	}
	api.JSON(w, http.StatusOK, experience)
}

func (h *ExperienceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var patch model.ExperiencePatch
	err := api.Decode(r, &patch)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	experience, err := h.experienceService.Create(r.Context(), patch)
	if err != nil {
		api.Error(w, r, err)
		return
	}
	api.JSON(w, http.StatusCreated, experience)
}

func (h *ExperienceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.ExperiencePatch
	err := api.Decode(r, &patch)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	experience, err := h.experienceService.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		api.Error(w, r, err)
		return
	}
	api.JSON(w, http.StatusOK, experience)
}

func (h *ExperienceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.experienceService.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		api.Error(w, r, err)
		return
	}
	deleted(w, "Experience")
}
