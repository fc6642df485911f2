package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Choix de vote possibles.
const (
	ChoixPour       = "pour"
	ChoixContre     = "contre"
	ChoixAbstention = "abstention"
)

func IsChoixValide(choice string) bool {
	return choice == ChoixPour || choice == ChoixContre || choice == ChoixAbstention
}

// Catégories éditoriales d'un vocit.
var Categories = []string{
	"politique",
	"social",
	"économie",
	"santé",
	"éducation",
	"culture",
	"autre",
}

func IsCategorieValide(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

func IsMediaTypeValide(t string) bool {
	return t == "image" || t == "video" || t == "none"
}

// Vote embarqué dans un vocit. Au plus une entrée par utilisateur,
// seul le dernier choix est conservé (pas d'horodatage par vote).
type Vote struct {
	User   primitive.ObjectID `json:"user" bson:"user"`
	Choice string             `json:"choice" bson:"choice"`
}

// VocitDoc est le document Mongo d'une publication. Les trois compteurs
// sont une projection de la liste votes ; seul le chemin de vote les écrit,
// dans la même écriture atomique que la liste. Le champ version sert au
// verrouillage optimiste de cette écriture.
type VocitDoc struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Media          string             `json:"media,omitempty" bson:"media,omitempty"`
	MediaType      string             `json:"mediaType" bson:"mediaType"`
	Titre          string             `json:"titre" bson:"titre"`
	Descriptif     string             `json:"descriptif,omitempty" bson:"descriptif,omitempty"`
	Categorie      string             `json:"categorie" bson:"categorie"`
	Tags           []string           `json:"tags" bson:"tags"`
	Votes          []Vote             `json:"votes" bson:"votes"`
	VotePour       int                `json:"votePour" bson:"votePour"`
	VoteContre     int                `json:"voteContre" bson:"voteContre"`
	VoteAbstention int                `json:"voteAbstention" bson:"voteAbstention"`
	Version        int64              `json:"-" bson:"version"`
	CreatedAt      string             `json:"createdAt" bson:"createdAt"`
	UpdatedAt      string             `json:"updatedAt" bson:"updatedAt"`
}

// VocitStats est la projection en pourcentages d'un vocit.
type VocitStats struct {
	Pour       int `json:"pour"`
	Contre     int `json:"contre"`
	Abstention int `json:"abstention"`
	Total      int `json:"total"`
}

// VoteCounts regroupe les comptes bruts par choix (stats globales).
type VoteCounts struct {
	Pour       int `json:"pour"`
	Contre     int `json:"contre"`
	Abstention int `json:"abstention"`
}

// GlobalStatsItem est la ligne par vocit de GET /api/vocits/stats-globales.
type GlobalStatsItem struct {
	ID        primitive.ObjectID `json:"id"`
	Titre     string             `json:"titre"`
	Categorie string             `json:"categorie"`
	Votes     VoteCounts         `json:"votes"`
}

// VocitUpdateRequest : champs modifiables via PUT /api/vocits/{id}.
// Les votes et les compteurs ne sont jamais modifiables par ce chemin.
type VocitUpdateRequest struct {
	Titre      *string   `json:"titre"`
	Descriptif *string   `json:"descriptif"`
	Categorie  *string   `json:"categorie"`
	Tags       *[]string `json:"tags"`
	MediaType  *string   `json:"mediaType"`
	Media      *string   `json:"media"`
}
