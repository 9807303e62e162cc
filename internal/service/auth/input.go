package auth

import "github.com/heartmarshall/quecocino-backend/internal/domain"

const (
	maxIDTokenLen = 8192
	maxCodeLen    = 4096
)

// SignInInput holds the Google credential presented by the client.
// Exactly one of IDToken and Code must be set.
type SignInInput struct {
	IDToken string
	Code    string
}

// Validate validates the sign-in input.
func (i SignInInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.IDToken == "" && i.Code == "":
		errs = append(errs, domain.FieldError{Field: "idToken", Message: "required"})
	case i.IDToken != "" && i.Code != "":
		errs = append(errs, domain.FieldError{Field: "code", Message: "must not be combined with idToken"})
	}

	if len(i.IDToken) > maxIDTokenLen {
		errs = append(errs, domain.FieldError{Field: "idToken", Message: "too long"})
	}
	if len(i.Code) > maxCodeLen {
		errs = append(errs, domain.FieldError{Field: "code", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
