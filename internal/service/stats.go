package service

import (
	"math"

	"github.com/christngono/backend-vocit/internal/models"
)

// ComputeStats projette un vocit en pourcentages par choix. Fonction pure,
// sans effet de bord : peut être appelée à volonté, y compris en concurrence.
// Arrondi standard à l'entier le plus proche ; 0 partout quand il n'y a
// aucun vote.
func ComputeStats(v *models.VocitDoc) models.VocitStats {
	total := len(v.Votes)
	if total == 0 {
		return models.VocitStats{}
	}

	pct := func(count int) int {
		return int(math.Round(float64(count) * 100 / float64(total)))
	}

	return models.VocitStats{
		Pour:       pct(v.VotePour),
		Contre:     pct(v.VoteContre),
		Abstention: pct(v.VoteAbstention),
		Total:      total,
	}
}
