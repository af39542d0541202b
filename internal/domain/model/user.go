package model

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// User es un usuario de la aplicación. Password contiene el texto plano solo
// durante el registro; una vez persistido es siempre el hash.
type User struct {
	id       uuid.UUID
	username string
	password string
	role     string
}

// NewUser valida username, password y rol (en ese orden). Un rol vacío toma
// DefaultUserRole.
func NewUser(id uuid.UUID, username, password, role string) (User, error) {
	u, err := validateUsername(username)
	if err != nil {
		return User{}, err
	}
	if strings.TrimSpace(password) == "" {
		return User{}, invalid("password", MsgUserPasswordRequired)
	}
	if n := utf8.RuneCountInString(password); n < MinPasswordLength || n > MaxPasswordLength {
		return User{}, invalid("password", MsgUserPasswordLength)
	}
	r, err := validateRole(role)
	if err != nil {
		return User{}, err
	}
	return User{id: id, username: u, password: password, role: r}, nil
}

// RestoreUser arma un usuario cuya contraseña ya es un hash (lectura desde el
// store o paso final del registro). El largo del hash no está atado a las
// reglas del texto plano: solo se exige que no esté vacío.
func RestoreUser(id uuid.UUID, username, passwordHash, role string) (User, error) {
	u, err := validateUsername(username)
	if err != nil {
		return User{}, err
	}
	if strings.TrimSpace(passwordHash) == "" {
		return User{}, invalid("password", MsgUserPasswordRequired)
	}
	r, err := validateRole(role)
	if err != nil {
		return User{}, err
	}
	return User{id: id, username: u, password: passwordHash, role: r}, nil
}

func validateUsername(username string) (string, error) {
	u := strings.TrimSpace(username)
	if u == "" {
		return "", invalid("username", MsgUserUsernameRequired)
	}
	if n := utf8.RuneCountInString(u); n < MinUsernameLength || n > MaxUsernameLength {
		return "", invalid("username", MsgUserUsernameLength)
	}
	return u, nil
}

func validateRole(role string) (string, error) {
	r := strings.TrimSpace(role)
	if r == "" {
		return DefaultUserRole, nil
	}
	if !ValidRole(r) {
		return "", invalid("role", MsgUserRoleInvalidFormat)
	}
	return r, nil
}

func (u User) ID() uuid.UUID    { return u.id }
func (u User) Username() string { return u.username }
func (u User) Password() string { return u.password }
func (u User) Role() string     { return u.role }

// WithID devuelve una copia con el ID indicado.
func (u User) WithID(id uuid.UUID) User {
	u.id = id
	return u
}
