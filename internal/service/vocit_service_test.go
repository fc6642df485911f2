package service

import (
	"testing"

	"github.com/christngono/backend-vocit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newVocit() *models.VocitDoc {
	return &models.VocitDoc{
		ID:    primitive.NewObjectID(),
		Titre: "Projet de loi sur l'environnement",
		Votes: []models.Vote{},
	}
}

// compteursCoherents vérifie l'invariant : chaque compteur égale le nombre
// de votes du choix correspondant, et la somme égale la taille de la liste.
func compteursCoherents(t *testing.T, v *models.VocitDoc) {
	t.Helper()

	var pour, contre, abstention int
	for _, vote := range v.Votes {
		switch vote.Choice {
		case models.ChoixPour:
			pour++
		case models.ChoixContre:
			contre++
		case models.ChoixAbstention:
			abstention++
		}
	}

	assert.Equal(t, pour, v.VotePour)
	assert.Equal(t, contre, v.VoteContre)
	assert.Equal(t, abstention, v.VoteAbstention)
	assert.Equal(t, len(v.Votes), v.VotePour+v.VoteContre+v.VoteAbstention)
}

func TestApplyVote_NouveauVote(t *testing.T) {
	v := newVocit()
	userID := primitive.NewObjectID()

	changed := applyVote(v, userID, models.ChoixPour)
	recountVotes(v)

	require.True(t, changed)
	require.Len(t, v.Votes, 1)
	assert.Equal(t, userID, v.Votes[0].User)
	assert.Equal(t, models.ChoixPour, v.Votes[0].Choice)
	compteursCoherents(t, v)
}

func TestApplyVote_VoteInchange(t *testing.T) {
	v := newVocit()
	userID := primitive.NewObjectID()

	applyVote(v, userID, models.ChoixContre)
	recountVotes(v)
	avant := *v

	// même choix une deuxième fois : aucun changement
	changed := applyVote(v, userID, models.ChoixContre)

	require.False(t, changed)
	assert.Equal(t, avant.Votes, v.Votes)
	assert.Equal(t, avant.VoteContre, v.VoteContre)
	compteursCoherents(t, v)
}

func TestApplyVote_ChangementDeChoix(t *testing.T) {
	v := newVocit()
	autre := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	applyVote(v, autre, models.ChoixAbstention)
	applyVote(v, userID, models.ChoixPour)
	recountVotes(v)

	// l'utilisateur change d'avis : même entrée, même position
	changed := applyVote(v, userID, models.ChoixContre)
	recountVotes(v)

	require.True(t, changed)
	require.Len(t, v.Votes, 2)
	assert.Equal(t, userID, v.Votes[1].User)
	assert.Equal(t, models.ChoixContre, v.Votes[1].Choice)
	assert.Equal(t, 0, v.VotePour)
	assert.Equal(t, 1, v.VoteContre)
	assert.Equal(t, 1, v.VoteAbstention)
	compteursCoherents(t, v)
}

func TestApplyVote_UneSeuleEntreeParUtilisateur(t *testing.T) {
	v := newVocit()
	userID := primitive.NewObjectID()

	// une rafale de changements d'avis
	suite := []string{
		models.ChoixPour,
		models.ChoixContre,
		models.ChoixContre,
		models.ChoixAbstention,
		models.ChoixPour,
	}
	for _, choix := range suite {
		if applyVote(v, userID, choix) {
			recountVotes(v)
		}
	}

	require.Len(t, v.Votes, 1)
	assert.Equal(t, models.ChoixPour, v.Votes[0].Choice)
	assert.Equal(t, 1, v.VotePour)
	compteursCoherents(t, v)
}

func TestScenario_PourPuisContre(t *testing.T) {
	v := newVocit()
	userID := primitive.NewObjectID()

	applyVote(v, userID, models.ChoixPour)
	recountVotes(v)
	applyVote(v, userID, models.ChoixContre)
	recountVotes(v)

	require.Len(t, v.Votes, 1)
	assert.Equal(t, 0, v.VotePour)
	assert.Equal(t, 1, v.VoteContre)
	assert.Equal(t, 0, v.VoteAbstention)
}

func TestRecountVotes_PlusieursUtilisateurs(t *testing.T) {
	v := newVocit()

	for i := 0; i < 5; i++ {
		applyVote(v, primitive.NewObjectID(), models.ChoixPour)
	}
	for i := 0; i < 3; i++ {
		applyVote(v, primitive.NewObjectID(), models.ChoixContre)
	}
	applyVote(v, primitive.NewObjectID(), models.ChoixAbstention)
	recountVotes(v)

	assert.Equal(t, 5, v.VotePour)
	assert.Equal(t, 3, v.VoteContre)
	assert.Equal(t, 1, v.VoteAbstention)
	compteursCoherents(t, v)
}

func TestComputeStats(t *testing.T) {
	v := newVocit()

	// 3 pour, 1 contre
	for i := 0; i < 3; i++ {
		applyVote(v, primitive.NewObjectID(), models.ChoixPour)
	}
	applyVote(v, primitive.NewObjectID(), models.ChoixContre)
	recountVotes(v)

	stats := ComputeStats(v)
	assert.Equal(t, models.VocitStats{Pour: 75, Contre: 25, Abstention: 0, Total: 4}, stats)
}

func TestComputeStats_SansVote(t *testing.T) {
	stats := ComputeStats(newVocit())
	assert.Equal(t, models.VocitStats{}, stats)
}

func TestComputeStats_Arrondi(t *testing.T) {
	v := newVocit()

	// 1 pour, 2 contre : 33% / 67%
	applyVote(v, primitive.NewObjectID(), models.ChoixPour)
	applyVote(v, primitive.NewObjectID(), models.ChoixContre)
	applyVote(v, primitive.NewObjectID(), models.ChoixContre)
	recountVotes(v)

	stats := ComputeStats(v)
	assert.Equal(t, 33, stats.Pour)
	assert.Equal(t, 67, stats.Contre)
	assert.Equal(t, 0, stats.Abstention)
	assert.Equal(t, 3, stats.Total)
}
