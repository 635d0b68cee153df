package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netbackup/internal/models"
)

func newTestService(ttl time.Duration) *Service {
	return New(Options{
		SecretKey:     "test-secret",
		TokenTTL:      ttl,
		BootstrapUser: "superadmin",
		BootstrapPass: "superadmin",
	})
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, VerifyPassword("s3cret", hash))
	assert.False(t, VerifyPassword("wrong", hash))
}

func TestIssueAndVerifyToken(t *testing.T) {
	svc := newTestService(30 * time.Minute)

	token, err := svc.IssueToken("superadmin", "admin")
	require.NoError(t, err)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "superadmin", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
}

func TestVerifyToken_Expired(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, err := svc.IssueToken("superadmin", "admin")
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_WrongKey(t *testing.T) {
	svc := newTestService(30 * time.Minute)
	other := New(Options{SecretKey: "other-secret", TokenTTL: 30 * time.Minute})

	token, err := other.IssueToken("superadmin", "admin")
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_MissingSubject(t *testing.T) {
	svc := newTestService(30 * time.Minute)

	token, err := svc.IssueToken("", "admin")
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Garbage(t *testing.T) {
	svc := newTestService(30 * time.Minute)
	_, err := svc.VerifyToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// Only the configured bootstrap pair is accepted; stored admin
// credentials never reach this code path (the login endpoint does not
// consult the admins table at all).
func TestAuthenticate_BootstrapPairOnly(t *testing.T) {
	svc := newTestService(30 * time.Minute)

	admin, ok := svc.Authenticate("superadmin", "superadmin")
	require.True(t, ok)
	assert.Equal(t, "superadmin", admin.Username)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	_, ok = svc.Authenticate("superadmin", "wrong")
	assert.False(t, ok)
	_, ok = svc.Authenticate("someone", "superadmin")
	assert.False(t, ok)
}

func TestAuthorize_Hierarchy(t *testing.T) {
	tests := []struct {
		name string
		role models.AdminRole
		min  models.AdminRole
		want error
	}{
		{"read_only below admin", models.RoleReadOnly, models.RoleAdmin, ErrForbidden},
		{"read_only meets read_only", models.RoleReadOnly, models.RoleReadOnly, nil},
		{"admin below super_admin", models.RoleAdmin, models.RoleSuperAdmin, ErrForbidden},
		{"admin meets admin", models.RoleAdmin, models.RoleAdmin, nil},
		{"super_admin meets everything", models.RoleSuperAdmin, models.RoleReadOnly, nil},
		{"unknown role always below", models.AdminRole("owner"), models.RoleReadOnly, ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(&models.Admin{Role: tt.role}, tt.min)
			assert.Equal(t, tt.want, err)
		})
	}

	assert.Equal(t, ErrUnauthenticated, Authorize(nil, models.RoleReadOnly))
}
