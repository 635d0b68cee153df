package auth

import (
	"errors"
	"time"

	"netbackup/internal/models"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

// Service owns token signing and the login rule. The secret and the
// bootstrap pair come from configuration, never from package state.
type Service struct {
	secret        []byte
	ttl           time.Duration
	bootstrapUser string
	bootstrapPass string
}

type Options struct {
	SecretKey     string
	TokenTTL      time.Duration
	BootstrapUser string
	BootstrapPass string
}

func New(opts Options) *Service {
	return &Service{
		secret:        []byte(opts.SecretKey),
		ttl:           opts.TokenTTL,
		bootstrapUser: opts.BootstrapUser,
		bootstrapPass: opts.BootstrapPass,
	}
}

// Authenticate checks a login pair. Only the configured bootstrap pair
// is accepted; stored Admin credentials are NOT consulted here even
// though VerifyPassword would accept them. The data broker shipped with
// this exact behavior and the front end depends on it, so it is kept
// as-is rather than silently wired to the admins table.
func (s *Service) Authenticate(username, password string) (*models.Admin, bool) {
	if username == s.bootstrapUser && password == s.bootstrapPass {
		return &models.Admin{
			Username: username,
			Role:     models.RoleAdmin,
		}, true
	}
	return nil, false
}

// Authorize gates an identity against the role hierarchy.
func Authorize(identity *models.Admin, min models.AdminRole) error {
	if identity == nil {
		return ErrUnauthenticated
	}
	if identity.Role.Rank() < min.Rank() {
		return ErrForbidden
	}
	return nil
}
