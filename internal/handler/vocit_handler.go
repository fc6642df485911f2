package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/christngono/backend-vocit/internal/models"
	"github.com/christngono/backend-vocit/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VocitHandler struct {
	svc       *service.VocitService
	uploadDir string
}

func NewVocitHandler(s *service.VocitService, uploadDir string) *VocitHandler {
	return &VocitHandler{svc: s, uploadDir: uploadDir}
}

// vocitID lit et parse le paramètre d'URL. Un id mal formé est traité comme
// un vocit inexistant.
func vocitID(r *http.Request, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, param))
	return id, err == nil
}

// @Summary Lister tous les vocits
// @Tags vocits
// @Produce json
// @Success 200 {array} models.VocitDoc
// @Router /api/vocits [get]
func (h *VocitHandler) List(w http.ResponseWriter, r *http.Request) {
	vocits, err := h.svc.List(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	if vocits == nil {
		vocits = []models.VocitDoc{}
	}
	writeJSON(w, http.StatusOK, vocits)
}

// @Summary Obtenir un vocit avec ses statistiques
// @Tags vocits
// @Produce json
// @Param id path string true "id du vocit"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /api/vocits/{id} [get]
func (h *VocitHandler) GetWithStats(w http.ResponseWriter, r *http.Request) {
	id, ok := vocitID(r, "id")
	if !ok {
		jsonError(w, service.ErrVocitIntrouvable.Error(), http.StatusNotFound)
		return
	}

	v, err := h.svc.Get(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"vocit": v,
		"stats": service.ComputeStats(v),
	})
}

// @Summary Statistiques globales de tous les vocits
// @Tags vocits
// @Produce json
// @Success 200 {array} models.GlobalStatsItem
// @Router /api/vocits/stats-globales [get]
func (h *VocitHandler) GlobalStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GlobalStats(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

type voteRequest struct {
	Choice string `json:"choice"`
}

// @Summary Voter ou changer son vote
// @Tags vocits
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param vocitId path string true "id du vocit"
// @Param body body voteRequest true "choix (pour, contre, abstention)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/vocits/{vocitId}/vote [post]
func (h *VocitHandler) Vote(w http.ResponseWriter, r *http.Request) {
	u := UserFromContext(r.Context())
	if u == nil {
		jsonError(w, "Non autorisé.", http.StatusUnauthorized)
		return
	}

	id, ok := vocitID(r, "vocitId")
	if !ok {
		jsonError(w, service.ErrVocitIntrouvable.Error(), http.StatusNotFound)
		return
	}

	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Corps de requête invalide.", http.StatusBadRequest)
		return
	}

	// l'identité vient du token, jamais du corps de la requête
	v, changed, err := h.svc.Vote(r.Context(), id, u.ID, req.Choice)
	if err != nil {
		serviceError(w, err)
		return
	}

	if !changed {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Vote inchangé."})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Vote enregistré.",
		"vocit":   v,
	})
}

// @Summary Créer un vocit (ADMIN)
// @Tags vocits
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Param titre formData string true "titre"
// @Param descriptif formData string false "descriptif"
// @Param mediaType formData string false "image, video ou none"
// @Param categorie formData string false "catégorie (défaut : autre)"
// @Param tags formData string false "tags séparés par des virgules"
// @Param media formData file false "fichier média"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /api/vocits [post]
func (h *VocitHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "Formulaire multipart invalide.", http.StatusBadRequest)
		return
	}

	mediaPath, err := h.saveUpload(r)
	if err != nil {
		serviceError(w, err)
		return
	}

	v, err := h.svc.Create(r.Context(), service.CreateVocitData{
		Titre:      r.FormValue("titre"),
		Descriptif: r.FormValue("descriptif"),
		MediaType:  r.FormValue("mediaType"),
		Media:      mediaPath,
		Categorie:  r.FormValue("categorie"),
		Tags:       parseTags(r.FormValue("tags")),
	})
	if err != nil {
		serviceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Publication créée.",
		"vocit":   v,
	})
}

// saveUpload écrit le fichier "media" (optionnel) sous un nom unique et
// renvoie son chemin relatif, ou "" si aucun fichier n'a été envoyé.
func (h *VocitHandler) saveUpload(r *http.Request) (string, error) {
	file, header, err := r.FormFile("media")
	if err == http.ErrMissingFile {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + filepath.Ext(header.Filename)
	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return filepath.ToSlash(filepath.Join("uploads", name)), nil
}

func parseTags(csv string) []string {
	if csv == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(csv, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// @Summary Modifier un vocit (ADMIN)
// @Tags vocits
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "id du vocit"
// @Param body body models.VocitUpdateRequest true "champs à modifier"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /api/vocits/{id} [put]
func (h *VocitHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := vocitID(r, "id")
	if !ok {
		jsonError(w, service.ErrVocitIntrouvable.Error(), http.StatusNotFound)
		return
	}

	var req models.VocitUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Corps de requête invalide.", http.StatusBadRequest)
		return
	}

	v, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		serviceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Vocit mis à jour.",
		"vocit":   v,
	})
}

// @Summary Supprimer un vocit (ADMIN)
// @Tags vocits
// @Security BearerAuth
// @Produce json
// @Param id path string true "id du vocit"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/vocits/{id} [delete]
func (h *VocitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := vocitID(r, "id")
	if !ok {
		jsonError(w, service.ErrVocitIntrouvable.Error(), http.StatusNotFound)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Vocit supprimé."})
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Statistiques d'un vocit en temps réel (WebSocket)
// @Tags vocits
// @Param id path string true "id du vocit"
// @Success 200 {object} map[string]any
// @Router /api/vocits/{id}/ws/stats [get]
func (h *VocitHandler) StatsWS(w http.ResponseWriter, r *http.Request) {
	id, ok := vocitID(r, "id")
	if !ok {
		jsonError(w, service.ErrVocitIntrouvable.Error(), http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		jsonError(w, "Impossible d'ouvrir le WebSocket.", http.StatusBadRequest)
		return
	}
	defer conn.Close()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	// un snapshot immédiat, puis un à chaque tick ; on sort dès que le
	// client ferme (l'écriture échoue) ou que le vocit disparaît
	for {
		v, err := h.svc.Get(r.Context(), id)
		if err != nil {
			_ = conn.WriteJSON(map[string]any{"type": "error", "error": err.Error()})
			return
		}

		if err := conn.WriteJSON(map[string]any{
			"type":  "stats",
			"id":    v.ID.Hex(),
			"stats": service.ComputeStats(v),
		}); err != nil {
			return
		}

		select {
		case <-ticker.C:
		case <-r.Context().Done():
			return
		}
	}
}
