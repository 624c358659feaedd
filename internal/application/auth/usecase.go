package auth

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Suprimentos-api/internal/application/dto"
	"github.com/jhoicas/Suprimentos-api/internal/domain"
	"github.com/jhoicas/Suprimentos-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login del único operador configurado.
type AuthUseCase struct {
	operator     string
	passwordHash []byte
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso. passwordHash es un hash bcrypt (AUTH_PASSWORD_HASH).
func NewAuthUseCase(operator, passwordHash string, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{
		operator:     strings.ToUpper(strings.TrimSpace(operator)),
		passwordHash: []byte(passwordHash),
		jwtCfg:       jwtCfg,
	}
}

// Login verifica operador/contraseña y emite el JWT. Sin hash configurado el login queda deshabilitado.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if len(uc.passwordHash) == 0 {
		return nil, fmt.Errorf("%w: login desabilitado (AUTH_PASSWORD_HASH vazio)", domain.ErrUnauthorized)
	}
	if !strings.EqualFold(strings.TrimSpace(in.Operator), uc.operator) {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(uc.passwordHash, []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, exp, err := jwt.Generate(uc.jwtCfg.Secret, uc.operator, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Operator: uc.operator, ExpiresAt: exp}, nil
}

// HashPassword genera el hash bcrypt para AUTH_PASSWORD_HASH (usado por cmd/seed).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
