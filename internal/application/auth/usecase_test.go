package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Suprimentos-api/internal/application/dto"
	"github.com/jhoicas/Suprimentos-api/internal/domain"
	"github.com/jhoicas/Suprimentos-api/pkg/jwt"
)

func newAuth(t *testing.T) *AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthUseCase("mauricio", string(hash), JWTConfig{Secret: "s", ExpMinutes: 5, Issuer: "t"})
}

func TestLogin_OK(t *testing.T) {
	res, err := newAuth(t).Login(dto.LoginRequest{Operator: "Mauricio", Password: "senha123"})
	require.NoError(t, err)
	assert.Equal(t, "MAURICIO", res.Operator)

	op, err := jwt.Parse("s", res.Token)
	require.NoError(t, err)
	assert.Equal(t, "MAURICIO", op)
}

func TestLogin_Rechazos(t *testing.T) {
	uc := newAuth(t)
	_, err := uc.Login(dto.LoginRequest{Operator: "mauricio", Password: "errada"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = uc.Login(dto.LoginRequest{Operator: "outro", Password: "senha123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	disabled := NewAuthUseCase("mauricio", "", JWTConfig{Secret: "s"})
	_, err = disabled.Login(dto.LoginRequest{Operator: "mauricio", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestHashPassword(t *testing.T) {
	h, err := HashPassword("abc")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(h), []byte("abc")))
}
