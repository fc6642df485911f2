package handler

import (
	"encoding/json"
	"net/http"

	"github.com/christngono/backend-vocit/internal/models"
	"github.com/christngono/backend-vocit/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

type userResponse struct {
	ID     string `json:"id"`
	Pseudo string `json:"pseudo"`
	Role   string `json:"role"`
	Region string `json:"region,omitempty"`
}

func toUserResponse(u *models.UserDoc) userResponse {
	return userResponse{
		ID:     u.ID.Hex(),
		Pseudo: u.Pseudo,
		Role:   u.Role,
		Region: u.Region,
	}
}

type registerRequest struct {
	Pseudo          string `json:"pseudo"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
	Region          string `json:"region"`
}

// @Summary Inscription
// @Description Crée un utilisateur et le connecte directement
// @Tags auth
// @Accept json
// @Produce json
// @Param body body registerRequest true "données d'inscription"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Corps de requête invalide.", http.StatusBadRequest)
		return
	}

	token, u, err := h.svc.Register(r.Context(), service.RegisterData{
		Pseudo:          req.Pseudo,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            req.Role,
		Region:          req.Region,
	})
	if err != nil {
		serviceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Utilisateur enregistré avec succès.",
		"token":   token,
		"user":    toUserResponse(u),
	})
}

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// @Summary Connexion par numéro de téléphone
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "identifiants"
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Corps de requête invalide.", http.StatusBadRequest)
		return
	}

	token, u, err := h.svc.Login(r.Context(), req.Phone, req.Password)
	if err != nil {
		serviceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  toUserResponse(u),
	})
}

// @Summary Lister les utilisateurs (ADMIN)
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.UserDoc
// @Router /api/admin/users [get]
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	if users == nil {
		users = []models.UserDoc{}
	}
	writeJSON(w, http.StatusOK, users)
}
