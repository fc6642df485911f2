package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRegisterData() RegisterData {
	return RegisterData{
		Pseudo:          "john_doe",
		Phone:           "612345678",
		Password:        "Abcdef@1",
		ConfirmPassword: "Abcdef@1",
		Region:          "Littoral",
	}
}

func TestValidateRegisterData(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterData)
		wantErr error
	}{
		{"données valides", func(d *RegisterData) {}, nil},
		{"role admin accepté", func(d *RegisterData) { d.Role = "admin" }, nil},
		{"pseudo manquant", func(d *RegisterData) { d.Pseudo = "" }, ErrChampsRequis},
		{"téléphone manquant", func(d *RegisterData) { d.Phone = "" }, ErrChampsRequis},
		{"téléphone sans 6 en tête", func(d *RegisterData) { d.Phone = "512345678" }, ErrTelephoneInvalide},
		{"téléphone trop court", func(d *RegisterData) { d.Phone = "612345" }, ErrTelephoneInvalide},
		{"téléphone trop long", func(d *RegisterData) { d.Phone = "6123456789" }, ErrTelephoneInvalide},
		{"téléphone avec lettre", func(d *RegisterData) { d.Phone = "61234567a" }, ErrTelephoneInvalide},
		{"mot de passe trop court", func(d *RegisterData) {
			d.Password = "Ab@1"
			d.ConfirmPassword = "Ab@1"
		}, ErrMotDePasseFaible},
		{"mot de passe sans majuscule", func(d *RegisterData) {
			d.Password = "abcdef@1"
			d.ConfirmPassword = "abcdef@1"
		}, ErrMotDePasseFaible},
		{"mot de passe sans chiffre", func(d *RegisterData) {
			d.Password = "Abcdefg@"
			d.ConfirmPassword = "Abcdefg@"
		}, ErrMotDePasseFaible},
		{"mot de passe sans symbole", func(d *RegisterData) {
			d.Password = "Abcdefg1"
			d.ConfirmPassword = "Abcdefg1"
		}, ErrMotDePasseFaible},
		{"confirmation différente", func(d *RegisterData) { d.ConfirmPassword = "Abcdef@2" }, ErrMotsDePasseDifferents},
		{"rôle invalide", func(d *RegisterData) { d.Role = "superadmin" }, ErrRoleInvalide},
		{"région manquante", func(d *RegisterData) { d.Region = "" }, ErrChampsRequis},
		{"région inconnue", func(d *RegisterData) { d.Region = "Douala" }, ErrRegionInvalide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validRegisterData()
			tt.mutate(&data)

			err := ValidateRegisterData(data)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestIsMotDePasseFort(t *testing.T) {
	assert.True(t, IsMotDePasseFort("Abcdef@1"))
	assert.True(t, IsMotDePasseFort("MotDePasse@2024"))
	// l'underscore compte comme symbole, comme tout caractère hors lettres/chiffres
	assert.True(t, IsMotDePasseFort("Abcdef_1"))
	assert.False(t, IsMotDePasseFort("abcdef@1"))
	assert.False(t, IsMotDePasseFort("ABCDEF@1"))
	assert.False(t, IsMotDePasseFort("Abcdefgh"))
	assert.False(t, IsMotDePasseFort(""))
}

func TestIsPhoneValide(t *testing.T) {
	assert.True(t, IsPhoneValide("612345678"))
	assert.True(t, IsPhoneValide("699999999"))
	assert.False(t, IsPhoneValide("712345678"))
	assert.False(t, IsPhoneValide("61234567"))
	assert.False(t, IsPhoneValide("6123456789"))
	assert.False(t, IsPhoneValide("6123 5678"))
	assert.False(t, IsPhoneValide(""))
}
