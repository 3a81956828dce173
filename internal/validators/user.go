package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-directory/models"
)

// Field names accepted by [UserValidator.Validate].
const (
	FieldNome      = "nome"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldSenhaHash = "senha_hash"
	FieldRemoteID  = "remote_id"
)

// UserValidator validates [models.NewUser], [models.UserPatch],
// [models.RemoteUser] and [models.ProvisionUserRequest].
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewUser:
		return v.validateNewUser(value, fields...)
	case *models.NewUser:
		return v.validateNewUser(*value, fields...)

	case models.UserPatch:
		return v.validateUserPatch(value, fields...)
	case *models.UserPatch:
		return v.validateUserPatch(*value, fields...)

	case models.RemoteUser:
		return v.validateRemoteUser(value, fields...)
	case *models.RemoteUser:
		return v.validateRemoteUser(*value, fields...)

	case models.ProvisionUserRequest:
		return v.validateProvisionRequest(value, fields...)
	case *models.ProvisionUserRequest:
		return v.validateProvisionRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateNewUser(u models.NewUser, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldRole}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldNome:
			err = checkName(u.Nome)
		case FieldEmail:
			err = checkEmail(u.Email)
		case FieldPassword:
			err = checkPassword(u.Password)
		case FieldRole:
			err = checkRole(u.Role)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateUserPatch checks only the fields the patch sets. An empty patch
// is valid.
func (v *UserValidator) validateUserPatch(p models.UserPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldRole}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldNome:
			if p.Nome != nil {
				err = checkName(*p.Nome)
			}
		case FieldEmail:
			if p.Email != nil {
				err = checkEmail(*p.Email)
			}
		case FieldPassword:
			if p.Password != nil {
				err = checkPassword(*p.Password)
			}
		case FieldRole:
			if p.Role != nil {
				err = checkRole(*p.Role)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *UserValidator) validateRemoteUser(u models.RemoteUser, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRemoteID, FieldEmail, FieldSenhaHash, FieldRole}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldRemoteID:
			if strings.TrimSpace(u.ID) == "" {
				err = ErrEmptyRemoteID
			}
		case FieldNome:
			err = checkName(u.Nome)
		case FieldEmail:
			err = checkEmail(u.Email)
		case FieldSenhaHash:
			if u.SenhaHash == "" {
				err = ErrEmptyPasswordHash
			}
		case FieldRole:
			err = checkRole(u.Role)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *UserValidator) validateProvisionRequest(r models.ProvisionUserRequest, fields ...string) error {
	return v.validateNewUser(models.NewUser{
		Nome:      r.Nome,
		Email:     r.Email,
		Password:  r.Password,
		Role:      r.Role,
		FazendaID: r.FazendaID,
	}, withDefault(fields, FieldNome, FieldEmail, FieldPassword, FieldRole)...)
}

func withDefault(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}

func checkName(nome string) error {
	if strings.TrimSpace(nome) == "" {
		return ErrEmptyName
	}
	return nil
}

func checkEmail(email string) error {
	if models.NormalizeEmail(email) == "" {
		return ErrEmptyEmail
	}
	return nil
}

func checkPassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	return nil
}

func checkRole(role models.Role) error {
	if !role.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	return nil
}
