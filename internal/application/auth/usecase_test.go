package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/molino-api/internal/application/auth"
	"github.com/jhoicas/molino-api/internal/application/dto"
	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/internal/infrastructure/memory"
	"github.com/jhoicas/molino-api/pkg/jwt"
)

const secret = "secreto-de-prueba"

func newAuth() *auth.AuthUseCase {
	repo := memory.NewUserRepository(memory.NewStore())
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: secret, ExpMinutes: 5, Issuer: "molino-api"})
}

func TestRegisterYLogin(t *testing.T) {
	ctx := context.Background()
	uc := newAuth()

	u, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "Bodega@Molino.co", Password: "clave-segura", Role: "bodeguero"})
	require.NoError(t, err)
	assert.Equal(t, "bodega@molino.co", u.Email)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "bodega@molino.co", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	resp, err := uc.Login(ctx, dto.LoginRequest{Email: "bodega@molino.co", Password: "clave-segura"})
	require.NoError(t, err)
	userID, role, err := jwt.Parse(secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)
	assert.Equal(t, "bodeguero", role)
}

func TestLogin_Errores(t *testing.T) {
	ctx := context.Background()
	uc := newAuth()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "a@b.co", Password: "clave-segura"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "a@b.co", Password: "mala"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@b.co", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
