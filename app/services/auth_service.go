package services

import (
	"PanaderiaApp/app/models"

	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates against the fixed local credential list. This is
// explicitly not a security boundary: the users are hard-coded and exist
// only to route staff to the sales or production screens.
type AuthService struct {
	users   []models.User
	current *models.User
}

// fixedCredentials maps the two built-in accounts to their roles.
var fixedCredentials = []struct {
	username string
	password string
	role     models.Role
}{
	{"ventas", "1234", models.RoleSales},
	{"produccion", "1234", models.RoleProduction},
}

// NewAuthService creates the auth service with the built-in users.
func NewAuthService() *AuthService {
	s := &AuthService{}
	for _, c := range fixedCredentials {
		hash, err := bcrypt.GenerateFromPassword([]byte(c.password), bcrypt.DefaultCost)
		if err != nil {
			continue
		}
		s.users = append(s.users, models.User{
			Username:     c.username,
			PasswordHash: string(hash),
			Role:         c.role,
		})
	}
	return s
}

// Login matches username and password against the fixed list and sets the
// current identity. Returns ErrInvalidCredentials on any mismatch.
func (s *AuthService) Login(username, password string) (models.User, error) {
	for i := range s.users {
		if s.users[i].Username != username {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(s.users[i].PasswordHash), []byte(password)); err != nil {
			return models.User{}, models.ErrInvalidCredentials
		}
		s.current = &s.users[i]
		return s.users[i], nil
	}
	return models.User{}, models.ErrInvalidCredentials
}

// Logout clears the current identity.
func (s *AuthService) Logout() {
	s.current = nil
}

// CurrentUser returns the logged-in user, or false when nobody is.
func (s *AuthService) CurrentUser() (models.User, bool) {
	if s.current == nil {
		return models.User{}, false
	}
	return *s.current, true
}
