package service

import "errors"

// Erreurs de validation : toutes surfacées au client en 400.
var validationErrors = []error{
	ErrChampsRequis,
	ErrMotsDePasseDifferents,
	ErrMotDePasseFaible,
	ErrTelephoneInvalide,
	ErrTelephoneUtilise,
	ErrPseudoUtilise,
	ErrRegionInvalide,
	ErrRoleInvalide,
	ErrChoixInvalide,
	ErrTitreRequis,
	ErrMediaTypeInvalide,
	ErrCategorieInvalide,
}

func IsValidationError(err error) bool {
	for _, e := range validationErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
