package handler

import (
	"net/http"

	"github.com/cheickthiam/portfolio/internal/api"
	"github.com/cheickthiam/portfolio/internal/model"
	"github.com/cheickthiam/portfolio/internal/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileService.Get(r.Context())
	if err != nil {
		api.Error(w, r, err)
		return
	}
	api.JSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.ProfilePatch
	err := api.Decode(r, &patch)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	profile, err := h.profileService.Update(r.Context(), patch)
	if err != nil {
		api.Error(w, r, err)
		return
	}
	api.JSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	f, err := parseForm(w, r)
	if err != nil {
		api.Error(w, r, err)
		return
	}
	profile, err := h.profileService.UploadImage(r.Context(), f.file("image"))
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, map[string]any{
		"message":  "Profile image updated successfully",
		"imageUrl": profile.ProfileImageURL,
		"profile":  profile,
	})
}

func (h *ProfileHandler) UploadCV(w http.ResponseWriter, r *http.Request) {
	f, err := parseForm(w, r)
	if err != nil {
		api.Error(w, r, err)
		return
	}
	profile, err := h.profileService.UploadCV(r.Context(), f.file("cv"))
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, map[string]any{
		"message": "CV updated successfully",
		"cvUrl":   profile.CVURL,
	})
}
