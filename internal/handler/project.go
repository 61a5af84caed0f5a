package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/cheickthiam/portfolio/internal/api"
	"github.com/cheickthiam/portfolio/internal/model"
	"github.com/cheickthiam/portfolio/internal/service"
)

type ProjectHandler struct {
	projectService *service.ProjectService
}

func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		api.Error(w, r, err)
		return
	}
	api.JSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectService.ByID(r.Context(), r.PathValue("id"))
	if err != nil {
		api.Error(w, r, err)
		return
	}
	api.JSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	patch, image, err := projectInput(w, r)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	project, err := h.projectService.Create(r.Context(), patch, image)
	if err != nil {
		api.Error(w, r, err)
		return
	}
	api.JSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	patch, image, err := projectInput(w, r)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	project, err := h.projectService.Update(r.Context(), r.PathValue("id"), patch, image)
	if err != nil {
		api.Error(w, r, err)
		return
	}
	api.JSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.projectService.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		api.Error(w, r, err)
		return
	}
	deleted(w, "Project")
}

// projectInput reads a project from a multipart form (with an optional
// "image" file) or a JSON body.
func projectInput(w http.ResponseWriter, r *http.Request) (model.ProjectPatch, *multipart.FileHeader, error) {
	var patch model.ProjectPatch

	f, err := parseForm(w, r)
	if err != nil {
		return patch, nil, err
	}
	if f.multipart == nil {
		err = f.decodeInto(&patch)
		return patch, nil, err
	}

	patch.Title = f.value("title")
	patch.Description = f.value("description")
	patch.Tech = f.list("tech")
	patch.CoverURL = f.value("cover_url")
	patch.ProjectURL = f.value("project_url")
	return patch, f.file("image"), nil
}
