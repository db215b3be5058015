package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/pkg/jwt"
)

type memUsers struct {
	byEmail map[string]*entity.User
	nextID  int64
}

func newMemUsers() *memUsers { return &memUsers{byEmail: map[string]*entity.User{}} }

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	m.nextID++
	u.ID = m.nextID
	m.byEmail[u.Email] = u
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id int64) (*entity.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return m.byEmail[email], nil
}

func (m *memUsers) ListByRole(context.Context, string, int, int) ([]*entity.User, error) {
	return nil, nil
}

func newAuth(users *memUsers) *auth.AuthUseCase {
	return auth.NewAuthUseCase(users, auth.JWTConfig{Secret: "secreto", TTL: time.Hour, Issuer: "gestion"}).
		WithBcryptCost(bcrypt.MinCost)
}

func TestRegisterYLogin(t *testing.T) {
	users := newMemUsers()
	uc := newAuth(users)
	ctx := context.Background()

	u, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: " Ana@Ferreteria.co ", Password: "clave-segura", Role: entity.RoleBodeguero})
	require.NoError(t, err)
	assert.Equal(t, "ana@ferreteria.co", u.Email)
	assert.Equal(t, "ana@ferreteria.co", u.Nombre)
	assert.Equal(t, entity.RoleBodeguero, u.Role)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "ana@ferreteria.co", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	resp, err := uc.Login(ctx, dto.LoginRequest{Email: "ANA@ferreteria.co", Password: "clave-segura"})
	require.NoError(t, err)
	id, err := jwt.Parse("secreto", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id.UserID)
	assert.Equal(t, entity.RoleBodeguero, id.Role)
}

func TestLogin_Fallos(t *testing.T) {
	users := newMemUsers()
	uc := newAuth(users)
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "luis@ferreteria.co", Password: "clave-segura"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@ferreteria.co", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "luis@ferreteria.co", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	users.byEmail["luis@ferreteria.co"].Status = entity.UserInactivo
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "luis@ferreteria.co", Password: "clave-segura"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	users.byEmail["prov@ferreteria.co"] = &entity.User{ID: 9, Email: "prov@ferreteria.co", Role: entity.RoleProveedor, Status: entity.UserActivo}
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "prov@ferreteria.co", Password: ""})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "proveedor sin clave")
}
