package repository

import (
	"context"
	"time"

	"github.com/christngono/backend-vocit/internal/db"
	"github.com/christngono/backend-vocit/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type VocitRepository struct {
	col *mongo.Collection
}

func NewVocitRepository() *VocitRepository {
	return &VocitRepository{col: db.DB().Collection("vocits")}
}

func (r *VocitRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.VocitDoc, error) {
	var v models.VocitDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&v)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &v, err
}

// ListAll renvoie tous les vocits, plus récents d'abord.
func (r *VocitRepository) ListAll(ctx context.Context) ([]models.VocitDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.VocitDoc
	for cur.Next(ctx) {
		var v models.VocitDoc
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, cur.Err()
}

func (r *VocitRepository) Insert(ctx context.Context, v *models.VocitDoc) error {
	res, err := r.col.InsertOne(ctx, v)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		v.ID = oid
	}
	return nil
}

// UpdateFields applique un $set partiel sur le vocit.
// Renvoie false si aucun document ne correspond.
func (r *VocitRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, update bson.M) (bool, error) {
	update["updatedAt"] = time.Now().UTC().Format(time.RFC3339)

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *VocitRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// CASUpdateVotes écrit la liste des votes et les trois compteurs dans une
// seule écriture atomique, conditionnée par le champ version (compare-and-swap).
// Renvoie false si la version a bougé entre-temps : l'appelant recharge et réessaie.
func (r *VocitRepository) CASUpdateVotes(ctx context.Context, id primitive.ObjectID, version int64, votes []models.Vote, pour, contre, abstention int) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "version": version},
		bson.M{
			"$set": bson.M{
				"votes":          votes,
				"votePour":       pour,
				"voteContre":     contre,
				"voteAbstention": abstention,
				"updatedAt":      time.Now().UTC().Format(time.RFC3339),
			},
			"$inc": bson.M{"version": 1},
		},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}
