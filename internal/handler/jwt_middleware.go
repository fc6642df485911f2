package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/christngono/backend-vocit/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ctxKey string

const ctxUser ctxKey = "user"

// UserFinder résout un utilisateur par son id (implémenté par UserRepository).
type UserFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.UserDoc, error)
}

// JWTAuth valide le token Bearer, résout l'utilisateur correspondant et le
// met dans le contexte de la requête (sans le hash du mot de passe côté JSON).
func JWTAuth(secret string, users UserFinder) func(http.Handler) http.Handler {
	secretBytes := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				jsonError(w, "Non autorisé.", http.StatusUnauthorized)
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secretBytes, nil
			})
			if err != nil || !token.Valid {
				jsonError(w, "Token invalide.", http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				jsonError(w, "Token invalide.", http.StatusUnauthorized)
				return
			}

			sub, _ := claims["sub"].(string)
			userID, err := primitive.ObjectIDFromHex(sub)
			if err != nil {
				jsonError(w, "Token invalide.", http.StatusUnauthorized)
				return
			}

			u, err := users.FindByID(r.Context(), userID)
			if err != nil || u == nil {
				jsonError(w, "Token invalide.", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ctxUser, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly ne laisse passer que role == "admin". Toujours monté après JWTAuth.
func AdminOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u := UserFromContext(r.Context())
			if u == nil || u.Role != "admin" {
				jsonError(w, "Accès refusé. Admin requis.", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserFromContext récupère l'utilisateur authentifié posé par JWTAuth.
func UserFromContext(ctx context.Context) *models.UserDoc {
	u, _ := ctx.Value(ctxUser).(*models.UserDoc)
	return u
}
