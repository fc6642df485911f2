package service

import (
	"context"
	"errors"
	"time"
	"unicode"

	"github.com/christngono/backend-vocit/internal/models"
	"github.com/christngono/backend-vocit/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Messages renvoyés tels quels au client (400/401).
var (
	ErrChampsRequis          = errors.New("Champs requis manquants.")
	ErrMotsDePasseDifferents = errors.New("Les mots de passe ne correspondent pas.")
	ErrMotDePasseFaible      = errors.New("Le mot de passe doit contenir au moins 8 caractères, une majuscule, une minuscule, un chiffre et un symbole.")
	ErrTelephoneInvalide     = errors.New("Le numéro de téléphone doit commencer par 6 et contenir 9 chiffres.")
	ErrTelephoneUtilise      = errors.New("Ce numéro est déjà utilisé.")
	ErrPseudoUtilise         = errors.New("Ce pseudo est déjà utilisé.")
	ErrRegionInvalide        = errors.New("Région invalide.")
	ErrRoleInvalide          = errors.New("Rôle invalide (user ou admin).")
	ErrIdentifiantsInvalides = errors.New("Identifiants invalides.")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("phone_cm", func(fl validator.FieldLevel) bool {
		return IsPhoneValide(fl.Field().String())
	})
	_ = v.RegisterValidation("mdp_fort", func(fl validator.FieldLevel) bool {
		return IsMotDePasseFort(fl.Field().String())
	})
	_ = v.RegisterValidation("region_cm", func(fl validator.FieldLevel) bool {
		return models.IsRegionValide(fl.Field().String())
	})
	return v
}

// IsPhoneValide : un 6 en tête, 9 chiffres au total.
func IsPhoneValide(phone string) bool {
	if len(phone) != 9 || phone[0] != '6' {
		return false
	}
	for _, c := range phone {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// IsMotDePasseFort : au moins 8 caractères, une majuscule, une minuscule,
// un chiffre et un symbole (tout caractère hors lettres/chiffres compte).
func IsMotDePasseFort(pwd string) bool {
	if len(pwd) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, c := range pwd {
		switch {
		case unicode.IsLower(c):
			lower = true
		case unicode.IsUpper(c):
			upper = true
		case unicode.IsDigit(c):
			digit = true
		default:
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

type AuthService struct {
	users     *repository.UserRepository
	jwtSecret []byte
}

func NewAuthService(users *repository.UserRepository, secret string) *AuthService {
	return &AuthService{users: users, jwtSecret: []byte(secret)}
}

type RegisterData struct {
	Pseudo          string `validate:"required"`
	Phone           string `validate:"required,phone_cm"`
	Password        string `validate:"required,mdp_fort"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	Role            string `validate:"omitempty,oneof=user admin"`
	Region          string `validate:"required,region_cm"`
}

// ValidateRegisterData traduit la première erreur de validation en message
// client. L'ordre de déclaration des champs fixe la priorité des messages.
func ValidateRegisterData(data RegisterData) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return ErrChampsRequis
	}

	fe := verrs[0]
	switch fe.StructField() {
	case "Phone":
		if fe.Tag() == "required" {
			return ErrChampsRequis
		}
		return ErrTelephoneInvalide
	case "Password":
		if fe.Tag() == "required" {
			return ErrChampsRequis
		}
		return ErrMotDePasseFaible
	case "ConfirmPassword":
		if fe.Tag() == "required" {
			return ErrChampsRequis
		}
		return ErrMotsDePasseDifferents
	case "Role":
		return ErrRoleInvalide
	case "Region":
		if fe.Tag() == "required" {
			return ErrChampsRequis
		}
		return ErrRegionInvalide
	default:
		return ErrChampsRequis
	}
}

// ================== REGISTER & LOGIN ==================

// Register valide les données, vérifie l'unicité du téléphone et du pseudo,
// hache le mot de passe et crée l'utilisateur. Renvoie l'utilisateur et un
// token de session (connexion automatique après inscription).
func (s *AuthService) Register(ctx context.Context, data RegisterData) (string, *models.UserDoc, error) {
	if err := ValidateRegisterData(data); err != nil {
		return "", nil, err
	}

	existing, err := s.users.FindByPhone(ctx, data.Phone)
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		return "", nil, ErrTelephoneUtilise
	}

	existing, err = s.users.FindByPseudo(ctx, data.Pseudo)
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		return "", nil, ErrPseudoUtilise
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	role := data.Role
	if role == "" {
		role = "user"
	}

	u := &models.UserDoc{
		Pseudo:       data.Pseudo,
		Phone:        data.Phone,
		PasswordHash: string(hash),
		Region:       data.Region,
		Role:         role,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.users.Insert(ctx, u); err != nil {
		return "", nil, err
	}

	token, err := s.issueToken(u)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *AuthService) Login(ctx context.Context, phone, password string) (string, *models.UserDoc, error) {
	u, err := s.users.FindByPhone(ctx, phone)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, ErrIdentifiantsInvalides
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrIdentifiantsInvalides
	}

	token, err := s.issueToken(u)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// issueToken signe un JWT HS256 valable 24h avec {sub: id, role}.
func (s *AuthService) issueToken(u *models.UserDoc) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  u.ID.Hex(),
		"role": u.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ListUsers(ctx context.Context) ([]models.UserDoc, error) {
	return s.users.ListAll(ctx)
}
