package service

import (
	"context"
	"errors"
	"time"

	"github.com/christngono/backend-vocit/internal/cache"
	"github.com/christngono/backend-vocit/internal/models"
	"github.com/christngono/backend-vocit/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrVocitIntrouvable  = errors.New("Vocit introuvable.")
	ErrChoixInvalide     = errors.New("Choix invalide.")
	ErrConflitVote       = errors.New("Le vote n'a pas pu être enregistré, veuillez réessayer.")
	ErrTitreRequis       = errors.New("Le titre est requis.")
	ErrMediaTypeInvalide = errors.New("Type de média invalide (image, video ou none).")
	ErrCategorieInvalide = errors.New("Catégorie invalide.")
)

// Nombre de relectures du document quand l'écriture CAS perd la course.
const maxVoteRetries = 3

const statsGlobalesKey = "vocits:stats-globales"
const statsGlobalesTTL = 30 // secondes

type VocitService struct {
	vocits *repository.VocitRepository
}

func NewVocitService(vocits *repository.VocitRepository) *VocitService {
	return &VocitService{vocits: vocits}
}

// ================== VOTE & COMPTEURS ==================

// Vote enregistre ou modifie le vote d'un utilisateur sur un vocit.
// Renvoie le vocit à jour et changed=false si le choix était déjà
// celui enregistré (aucune écriture dans ce cas).
//
// La liste des votes et les trois compteurs sont réécrits ensemble dans
// une écriture conditionnée par le champ version : si un vote concurrent
// est passé entre la lecture et l'écriture, on recharge le document et on
// rejoue le vote. Les compteurs sont recalculés intégralement à partir de
// la liste, jamais par delta : ils ne peuvent pas dériver du grand livre.
func (s *VocitService) Vote(ctx context.Context, vocitID, userID primitive.ObjectID, choice string) (*models.VocitDoc, bool, error) {
	if !models.IsChoixValide(choice) {
		return nil, false, ErrChoixInvalide
	}

	for attempt := 0; attempt < maxVoteRetries; attempt++ {
		v, err := s.vocits.GetByID(ctx, vocitID)
		if err != nil {
			return nil, false, err
		}
		if v == nil {
			return nil, false, ErrVocitIntrouvable
		}

		if !applyVote(v, userID, choice) {
			// vote inchangé : pas de recalcul, pas d'écriture
			return v, false, nil
		}
		recountVotes(v)

		ok, err := s.vocits.CASUpdateVotes(ctx, v.ID, v.Version, v.Votes, v.VotePour, v.VoteContre, v.VoteAbstention)
		if err != nil {
			return nil, false, err
		}
		if ok {
			v.Version++
			cache.Del(ctx, statsGlobalesKey)
			return v, true, nil
		}
		// la version a bougé : un vote concurrent est passé avant nous
	}
	return nil, false, ErrConflitVote
}

// applyVote applique le choix de l'utilisateur sur la liste des votes.
// Au plus une entrée par utilisateur : un changement d'avis réécrit
// l'entrée existante à la même position. Renvoie false si rien n'a changé.
func applyVote(v *models.VocitDoc, userID primitive.ObjectID, choice string) bool {
	for i := range v.Votes {
		if v.Votes[i].User == userID {
			if v.Votes[i].Choice == choice {
				return false
			}
			v.Votes[i].Choice = choice
			return true
		}
	}
	v.Votes = append(v.Votes, models.Vote{User: userID, Choice: choice})
	return true
}

// recountVotes recalcule les trois compteurs en rescannant toute la liste.
func recountVotes(v *models.VocitDoc) {
	v.VotePour = 0
	v.VoteContre = 0
	v.VoteAbstention = 0

	for _, vote := range v.Votes {
		switch vote.Choice {
		case models.ChoixPour:
			v.VotePour++
		case models.ChoixContre:
			v.VoteContre++
		case models.ChoixAbstention:
			v.VoteAbstention++
		}
	}
}

// ================== CRUD ==================

type CreateVocitData struct {
	Titre      string
	Descriptif string
	MediaType  string
	Media      string
	Categorie  string
	Tags       []string
}

func (s *VocitService) Create(ctx context.Context, data CreateVocitData) (*models.VocitDoc, error) {
	if data.Titre == "" {
		return nil, ErrTitreRequis
	}

	mediaType := data.MediaType
	if mediaType == "" {
		mediaType = "none"
	}
	if !models.IsMediaTypeValide(mediaType) {
		return nil, ErrMediaTypeInvalide
	}

	categorie := data.Categorie
	if categorie == "" {
		categorie = "autre"
	}
	if !models.IsCategorieValide(categorie) {
		return nil, ErrCategorieInvalide
	}

	tags := data.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC().Format(time.RFC3339)

	v := &models.VocitDoc{
		Media:      data.Media,
		MediaType:  mediaType,
		Titre:      data.Titre,
		Descriptif: data.Descriptif,
		Categorie:  categorie,
		Tags:       tags,
		Votes:      []models.Vote{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.vocits.Insert(ctx, v); err != nil {
		return nil, err
	}
	cache.Del(ctx, statsGlobalesKey)
	return v, nil
}

func (s *VocitService) List(ctx context.Context) ([]models.VocitDoc, error) {
	return s.vocits.ListAll(ctx)
}

func (s *VocitService) Get(ctx context.Context, id primitive.ObjectID) (*models.VocitDoc, error) {
	v, err := s.vocits.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrVocitIntrouvable
	}
	return v, nil
}

// Update applique un $set partiel des champs éditables. Les votes et les
// compteurs n'appartiennent qu'au chemin de vote et ne passent jamais par ici.
func (s *VocitService) Update(ctx context.Context, id primitive.ObjectID, req *models.VocitUpdateRequest) (*models.VocitDoc, error) {
	update := bson.M{}

	if req.Titre != nil {
		if *req.Titre == "" {
			return nil, ErrTitreRequis
		}
		update["titre"] = *req.Titre
	}
	if req.Descriptif != nil {
		update["descriptif"] = *req.Descriptif
	}
	if req.Categorie != nil {
		if !models.IsCategorieValide(*req.Categorie) {
			return nil, ErrCategorieInvalide
		}
		update["categorie"] = *req.Categorie
	}
	if req.Tags != nil {
		update["tags"] = *req.Tags
	}
	if req.MediaType != nil {
		if !models.IsMediaTypeValide(*req.MediaType) {
			return nil, ErrMediaTypeInvalide
		}
		update["mediaType"] = *req.MediaType
	}
	if req.Media != nil {
		update["media"] = *req.Media
	}

	if len(update) > 0 {
		ok, err := s.vocits.UpdateFields(ctx, id, update)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrVocitIntrouvable
		}
		cache.Del(ctx, statsGlobalesKey)
	}

	return s.Get(ctx, id)
}

func (s *VocitService) Delete(ctx context.Context, id primitive.ObjectID) error {
	ok, err := s.vocits.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrVocitIntrouvable
	}
	cache.Del(ctx, statsGlobalesKey)
	return nil
}

// ================== STATS GLOBALES ==================

// GlobalStats renvoie les comptes bruts par vocit, recomptés depuis la liste
// des votes (pas depuis les compteurs). Le résultat est mis en cache Redis
// avec un TTL court ; le cache est invalidé à chaque écriture.
func (s *VocitService) GlobalStats(ctx context.Context) ([]models.GlobalStatsItem, error) {
	var cached []models.GlobalStatsItem
	if ok, err := cache.GetJSON(ctx, statsGlobalesKey, &cached); err == nil && ok {
		return cached, nil
	}

	vocits, err := s.vocits.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.GlobalStatsItem, 0, len(vocits))
	for _, v := range vocits {
		var counts models.VoteCounts
		for _, vote := range v.Votes {
			switch vote.Choice {
			case models.ChoixPour:
				counts.Pour++
			case models.ChoixContre:
				counts.Contre++
			case models.ChoixAbstention:
				counts.Abstention++
			}
		}
		out = append(out, models.GlobalStatsItem{
			ID:        v.ID,
			Titre:     v.Titre,
			Categorie: v.Categorie,
			Votes:     counts,
		})
	}

	_ = cache.SetJSON(ctx, statsGlobalesKey, out, statsGlobalesTTL)
	return out, nil
}
