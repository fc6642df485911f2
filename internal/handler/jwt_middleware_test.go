package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/christngono/backend-vocit/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "secret-de-test"

type fakeUsers map[primitive.ObjectID]*models.UserDoc

func (f fakeUsers) FindByID(_ context.Context, id primitive.ObjectID) (*models.UserDoc, error) {
	return f[id], nil
}

func makeToken(t *testing.T, secret string, userID primitive.ObjectID, role string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID.Hex(),
		"role": role,
		"exp":  exp.Unix(),
	})
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestJWTAuth(t *testing.T) {
	userID := primitive.NewObjectID()
	users := fakeUsers{
		userID: {ID: userID, Pseudo: "john_doe", Role: "user"},
	}

	var gotUser *models.UserDoc
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	mw := JWTAuth(testSecret, users)(next)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "sans en-tête",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "en-tête mal formé",
			authHeader: "Basic abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token illisible",
			authHeader: "Bearer pas-un-jwt",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "mauvaise signature",
			authHeader: "Bearer " + makeToken(t, "autre-secret", userID, "user", time.Now().Add(time.Hour)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token expiré",
			authHeader: "Bearer " + makeToken(t, testSecret, userID, "user", time.Now().Add(-time.Hour)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "utilisateur inconnu",
			authHeader: "Bearer " + makeToken(t, testSecret, primitive.NewObjectID(), "user", time.Now().Add(time.Hour)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token valide",
			authHeader: "Bearer " + makeToken(t, testSecret, userID, "user", time.Now().Add(time.Hour)),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUser = nil

			req := httptest.NewRequest("POST", "/api/vocits/abc/vote", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			mw.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				require.NotNil(t, gotUser)
				assert.Equal(t, userID, gotUser.ID)
				assert.Equal(t, "john_doe", gotUser.Pseudo)
			} else {
				assert.Nil(t, gotUser)
			}
		})
	}
}

func TestAdminOnly(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mw := AdminOnly()(next)

	withUser := func(u *models.UserDoc) *http.Request {
		req := httptest.NewRequest("POST", "/api/vocits", nil)
		if u != nil {
			req = req.WithContext(context.WithValue(req.Context(), ctxUser, u))
		}
		return req
	}

	t.Run("sans utilisateur", func(t *testing.T) {
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, withUser(nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("utilisateur simple", func(t *testing.T) {
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, withUser(&models.UserDoc{Role: "user"}))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin", func(t *testing.T) {
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, withUser(&models.UserDoc{Role: "admin"}))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
