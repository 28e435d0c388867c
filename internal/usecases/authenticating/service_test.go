package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/searchads-manager-api/internal/config"
	"github.com/vfg2006/searchads-manager-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

func authTestConfig(t *testing.T) *config.Config {
	hash, err := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcrypt.MinCost)
	assert.NoError(t, err)

	cfg := &config.Config{}
	cfg.Auth.Secret = "segredo-de-teste"
	cfg.Auth.OperatorEmail = "operador@empresa.com"
	cfg.Auth.OperatorPasswordHash = string(hash)
	return cfg
}

func TestService_Login(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		mutate   func(cfg *config.Config)
		validate func(t *testing.T, cfg *config.Config, token string, err error)
	}{
		{
			name:     "Credenciais corretas emitem token válido",
			email:    "operador@empresa.com",
			password: "senha-forte",
			validate: func(t *testing.T, cfg *config.Config, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)

				claims, err := NewService(cfg).ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, "operador@empresa.com", claims.UserEmail)
			},
		},
		{
			name:     "Senha errada é rejeitada",
			email:    "operador@empresa.com",
			password: "senha-errada",
			validate: func(t *testing.T, cfg *config.Config, token string, err error) {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				assert.Empty(t, token)
			},
		},
		{
			name:     "E-mail desconhecido é rejeitado",
			email:    "intruso@empresa.com",
			password: "senha-forte",
			validate: func(t *testing.T, cfg *config.Config, token string, err error) {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
			},
		},
		{
			name:     "Sem secret configurada o login falha",
			email:    "operador@empresa.com",
			password: "senha-forte",
			mutate: func(cfg *config.Config) {
				cfg.Auth.Secret = ""
			},
			validate: func(t *testing.T, cfg *config.Config, token string, err error) {
				assert.ErrorIs(t, err, ErrMissingSecret)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := authTestConfig(t)
			if tt.mutate != nil {
				tt.mutate(cfg)
			}

			token, err := NewService(cfg).Login(tt.email, tt.password)
			tt.validate(t, cfg, token, err)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	cfg := authTestConfig(t)
	service := NewService(cfg)

	signToken := func(secret string, expiresAt time.Time) string {
		claims := &domain.Claims{
			UserEmail: "operador@empresa.com",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(expiresAt),
			},
		}

		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		assert.NoError(t, err)
		return signed
	}

	t.Run("Token expirado devolve erro dedicado", func(t *testing.T) {
		token := signToken(cfg.Auth.Secret, time.Now().Add(-time.Hour))

		_, err := service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Token assinado com outra secret é inválido", func(t *testing.T) {
		token := signToken("outra-secret", time.Now().Add(time.Hour))

		_, err := service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Lixo não é token", func(t *testing.T) {
		_, err := service.ValidateToken("nao-e-um-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
