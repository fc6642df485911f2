package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Les dix régions du Cameroun, seules valeurs acceptées à l'inscription.
var RegionsCameroun = []string{
	"Adamaoua",
	"Centre",
	"Est",
	"Extrême-Nord",
	"Littoral",
	"Nord",
	"Nord-Ouest",
	"Ouest",
	"Sud",
	"Sud-Ouest",
}

func IsRegionValide(region string) bool {
	for _, r := range RegionsCameroun {
		if r == region {
			return true
		}
	}
	return false
}

type UserDoc struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Pseudo       string             `json:"pseudo" bson:"pseudo"`
	Phone        string             `json:"phone" bson:"phone"`
	PasswordHash string             `json:"-" bson:"password"`
	Region       string             `json:"region" bson:"region"`
	Role         string             `json:"role" bson:"role"`
	CreatedAt    string             `json:"createdAt" bson:"createdAt"`
}
