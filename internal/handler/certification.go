package handler

import (
	"net/http"
	"strconv"

	"github.com/cheickthiam/portfolio/internal/api"
	"github.com/cheickthiam/portfolio/internal/model"
	"github.com/cheickthiam/portfolio/internal/service"
)

type CertificationHandler struct {
	certificationService *service.CertificationService
}

func NewCertificationHandler(certificationService *service.CertificationService) *CertificationHandler {
	return &CertificationHandler{
		certificationService: certificationService,
	}
}

func (h *CertificationHandler) List(w http.ResponseWriter, r *http.Request) {
	certifications, err := h.certificationService.List(r.Context())
	if err != nil {
		api.Error(w, r, err)
		return
	}
	api.JSON(w, http.StatusOK, certifications)
}

func (h *CertificationHandler) Get(w http.ResponseWriter, r *http.Request) {
	certification, err := h.certificationService.ByID(r.Context(), r.PathValue("id"))
	if err != nil {
		api.Error(w, r, err)
		return
	}
	api.JSON(w, http.StatusOK, certification)
}

// Download answers with a fresh signed URL for the document, or redirects
// to it when ?redirect=true.
func (h *CertificationHandler) Download(w http.ResponseWriter, r *http.Request) {
	url, expiry, err := h.certificationService.DownloadURL(r.Context(), r.PathValue("id"))
	if err != nil {
		api.Error(w, r, err)
		return
	}

	redirect, _ := strconv.ParseBool(r.URL.Query().Get("redirect"))
	if redirect {
		http.Redirect(w, r, url, http.StatusFound)
		return
	}

	api.JSON(w, http.StatusOK, map[string]any{
		"url":         url,
		"downloadUrl": url,
		"expiresIn":   int(expiry.Seconds()),
	})
}

func (h *CertificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	patch, upload, err := certificationInput(w, r)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	certification, err := h.certificationService.Create(r.Context(), patch, upload)
	if err != nil {
		api.Error(w, r, err)
		return
	}
	api.JSON(w, http.StatusCreated, certification)
}

func (h *CertificationHandler) Update(w http.ResponseWriter, r *http.Request) {
	patch, upload, err := certificationInput(w, r)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	certification, err := h.certificationService.Update(r.Context(), r.PathValue("id"), patch, upload)
	if err != nil {
		api.Error(w, r, err)
		return
	}
	api.JSON(w, http.StatusOK, certification)
}

func (h *CertificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.certificationService.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		api.Error(w, r, err)
		return
	}
	deleted(w, "Certification")
}

func certificationInput(w http.ResponseWriter, r *http.Request) (model.CertificationPatch, service.CertificationUpload, error) {
	var patch model.CertificationPatch
	var upload service.CertificationUpload

	f, err := parseForm(w, r)
	if err != nil {
		return patch, upload, err
	}
	if f.multipart == nil {
		err = f.decodeInto(&patch)
		return patch, upload, err
	}

	patch.Title = f.value("title")
	patch.Issuer = f.value("issuer")
	patch.Date = f.value("date")
	patch.Description = f.value("description")
	patch.Tags = f.list("tags")
	upload.File = f.file("file")
	upload.Cover = f.file("cover_image")
	return patch, upload, nil
}
