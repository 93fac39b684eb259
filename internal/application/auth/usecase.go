package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/mistica-api/internal/domain"
	"github.com/jhoicas/mistica-api/internal/domain/entity"
	"github.com/jhoicas/mistica-api/internal/domain/repository"
	"github.com/jhoicas/mistica-api/pkg/jwt"
	"github.com/jhoicas/mistica-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Config credencial aceptada y latencia simulada del login.
type Config struct {
	AdminEmail        string
	AdminPasswordHash string // bcrypt; vacío = no se verifica password
	JWT               JWTConfig
	Delay             time.Duration
}

// Session estado de autenticación persistido.
type Session struct {
	User            *entity.User `json:"user"`
	Token           string       `json:"token"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

// AuthUseCase login simulado con una única credencial y sesión persistida.
type AuthUseCase struct {
	mu      sync.RWMutex
	session Session
	store   repository.BlobStore
	cfg     Config
	log     *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth. store puede ser nil.
func NewAuthUseCase(store repository.BlobStore, cfg Config, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{store: store, cfg: cfg, log: log}
}

// Login espera la latencia simulada y acepta solo el email configurado.
// Cualquier otra credencial devuelve ErrInvalidCredentials y deja la sesión vacía.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (Session, error) {
	if err := sleep(ctx, uc.cfg.Delay); err != nil {
		return Session{}, err
	}
	if !strings.EqualFold(strings.TrimSpace(email), uc.cfg.AdminEmail) || !uc.passwordOK(password) {
		uc.replace(ctx, Session{})
		return Session{}, domain.ErrInvalidCredentials
	}
	user := &entity.User{
		ID:    "1",
		Name:  "Admin Mística",
		Email: uc.cfg.AdminEmail,
		Role:  entity.RoleAdministrador,
	}
	token, err := jwt.Generate(uc.cfg.JWT.Secret, user.ID, user.Email, user.Role, uc.cfg.JWT.Issuer, uc.cfg.JWT.ExpMinutes)
	if err != nil {
		return Session{}, fmt.Errorf("auth: generar token: %w", err)
	}
	s := Session{User: user, Token: token, IsAuthenticated: true}
	uc.replace(ctx, s)
	uc.log.Info().Str("user_id", user.ID).Msg("auth: sesión iniciada")
	return s, nil
}

func (uc *AuthUseCase) passwordOK(password string) bool {
	if uc.cfg.AdminPasswordHash == "" {
		return true
	}
	return bcrypt.CompareHashAndPassword([]byte(uc.cfg.AdminPasswordHash), []byte(password)) == nil
}

// Logout limpia la sesión y borra el blob.
func (uc *AuthUseCase) Logout(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.session = Session{}
	if uc.store == nil {
		return
	}
	if err := uc.store.Delete(ctx, repository.AuthStorageKey); err != nil {
		uc.log.Warn().Err(err).Msg("auth: no se pudo borrar la sesión")
	}
}

// Session sesión actual.
func (uc *AuthUseCase) Session() Session {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.session
}

// RestoreSession carga la sesión persistida. Solo queda autenticada si hay token y usuario.
func (uc *AuthUseCase) RestoreSession(ctx context.Context) (Session, error) {
	if uc.store == nil {
		return Session{}, nil
	}
	data, err := uc.store.Load(ctx, repository.AuthStorageKey)
	if err != nil {
		return Session{}, fmt.Errorf("auth: cargar sesión: %w", err)
	}
	var s Session
	if data != nil {
		if err := json.Unmarshal(data, &s); err != nil {
			return Session{}, fmt.Errorf("auth: decodificar sesión: %w", err)
		}
	}
	if s.Token != "" && s.User != nil {
		s.IsAuthenticated = true
	} else {
		s = Session{}
	}
	uc.mu.Lock()
	uc.session = s
	uc.mu.Unlock()
	return s, nil
}

// ValidateToken verifica firma y expiración del token.
func (uc *AuthUseCase) ValidateToken(token string) (*jwt.Claims, error) {
	claims, err := jwt.Parse(uc.cfg.JWT.Secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return claims, nil
}

func (uc *AuthUseCase) replace(ctx context.Context, s Session) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.session = s
	if uc.store == nil {
		return
	}
	data, err := json.Marshal(s)
	if err != nil {
		uc.log.Warn().Err(err).Msg("auth: no se pudo serializar la sesión")
		return
	}
	if err := uc.store.Save(ctx, repository.AuthStorageKey, data); err != nil {
		uc.log.Warn().Err(err).Msg("auth: no se pudo persistir la sesión")
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
