package handler

import (
	"net/http"

	"github.com/cheickthiam/portfolio/internal/api"
	"github.com/cheickthiam/portfolio/internal/ctxkeys"
	"github.com/cheickthiam/portfolio/internal/model"
	"github.com/cheickthiam/portfolio/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// adminView is the admin summary returned by login, create-admin and
// profile updates.
type adminView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func viewAdmin(a *model.Admin) adminView {
	return adminView{ID: a.ID, Email: a.Email, Name: a.Name}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	err := api.Decode(r, &req)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	admin, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   token,
		"admin":   viewAdmin(admin),
	})
}

func (h *AuthHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	err := api.Decode(r, &req)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	admin, err := h.authService.CreateAdmin(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusCreated, map[string]any{
		"message": "Admin created successfully",
		"admin":   viewAdmin(admin),
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	admin, err := h.authService.Admin(r.Context(), ctxkeys.AdminID(r.Context()))
	if err != nil {
		api.Error(w, r, err)
		return
	}
	api.JSON(w, http.StatusOK, admin)
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var patch model.AdminPatch
	err := api.Decode(r, &patch)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	admin, err := h.authService.UpdateAdmin(r.Context(), ctxkeys.AdminID(r.Context()), patch)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, map[string]any{
		"message": "Profile updated successfully",
		"admin":   viewAdmin(admin),
	})
}

func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	err := api.Decode(r, &req)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	err = h.authService.ChangePassword(r.Context(), ctxkeys.AdminID(r.Context()), req.CurrentPassword, req.NewPassword)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.Message(w, http.StatusOK, "Password updated successfully")
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	s, ok := ctxkeys.SessionOf(r.Context())
	if ok {
		h.authService.Logout(s.ID, s.ExpiresAt)
	}
	api.Message(w, http.StatusOK, "Logged out successfully")
}
