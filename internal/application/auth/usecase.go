package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/nivasahq/nivasa-portal/internal/application/dto"
	"github.com/nivasahq/nivasa-portal/internal/application/policy"
	"github.com/nivasahq/nivasa-portal/internal/application/session"
	"github.com/nivasahq/nivasa-portal/internal/domain"
	"github.com/nivasahq/nivasa-portal/internal/domain/entity"
	"github.com/nivasahq/nivasa-portal/internal/infrastructure/upstream"
	"github.com/nivasahq/nivasa-portal/pkg/validate"
)

// API es el contrato de autenticación contra el API remoto. Lo implementa
// *upstream.Client; la interfaz permite mocks en tests.
type API interface {
	Login(ctx context.Context, email, password string) (*upstream.LoginResult, error)
	Register(ctx context.Context, in upstream.RegisterPayload) (*upstream.LoginResult, error)
}

// DemoConfig cuenta demo/offline del gateway. Si Enabled, un login con
// este email se resuelve localmente (bcrypt contra PasswordHash) y siembra
// el override static_user: la sesión queda autenticada con el token
// sintético sin tocar el API remoto.
type DemoConfig struct {
	Enabled      bool
	Email        string
	PasswordHash string // hash bcrypt, nunca el password plano
	Name         string
	Role         string
}

// UseCase casos de uso de autenticación del gateway: login (remoto o
// demo), registro y cierre de sesión.
type UseCase struct {
	api  API
	demo DemoConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(api API, demo DemoConfig) *UseCase {
	return &UseCase{api: api, demo: demo}
}

// Login autentica y puebla el Session Store de la sesión actual. El
// usuario y el token se adoptan en bloque; la ruta de aterrizaje es la que
// indique el API remoto o, en su defecto, la de la policy para el rol.
func (uc *UseCase) Login(ctx context.Context, store *session.Store, in dto.LoginRequest) (*dto.SessionResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	if uc.demo.Enabled && strings.EqualFold(in.Email, uc.demo.Email) {
		return uc.loginDemo(ctx, store, in.Password)
	}

	res, err := uc.api.Login(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	if res.User == nil || res.Token == "" {
		return nil, domain.ErrUpstream
	}
	if err := store.Login(ctx, res.User, res.Token); err != nil {
		return nil, err
	}
	redirect := res.RedirectTo
	if redirect == "" {
		redirect = policy.DefaultRouteForRole(res.User.Role)
	}
	return &dto.SessionResponse{User: res.User, RedirectTo: redirect}, nil
}

// loginDemo resuelve la cuenta demo localmente y adopta la sesión
// estática (token sintético, sin validación de red en recargas).
func (uc *UseCase) loginDemo(ctx context.Context, store *session.Store, password string) (*dto.SessionResponse, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(uc.demo.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	user := &entity.User{
		ID:    "demo",
		Name:  uc.demo.Name,
		Email: uc.demo.Email,
		Role:  entity.ParseRole(uc.demo.Role),
	}
	if err := store.AdoptStaticUser(ctx, user); err != nil {
		return nil, err
	}
	return &dto.SessionResponse{User: user, RedirectTo: policy.DefaultRouteForRole(user.Role)}, nil
}

// Register normaliza el teléfono, crea la cuenta en el API remoto y deja
// la sesión autenticada con el par devuelto.
func (uc *UseCase) Register(ctx context.Context, store *session.Store, in dto.RegisterRequest) (*dto.SessionResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	phone, ok := validate.MobileIN(in.Phone)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	res, err := uc.api.Register(ctx, upstream.RegisterPayload{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    phone,
		Password: in.Password,
		Role:     in.Role,
	})
	if err != nil {
		return nil, err
	}
	if res.User == nil || res.Token == "" {
		return nil, domain.ErrUpstream
	}
	if err := store.Login(ctx, res.User, res.Token); err != nil {
		return nil, err
	}
	redirect := res.RedirectTo
	if redirect == "" {
		redirect = policy.DefaultRouteForRole(res.User.Role)
	}
	return &dto.SessionResponse{User: res.User, RedirectTo: redirect}, nil
}

// Logout limpia la sesión actual, incluido el override demo.
func (uc *UseCase) Logout(ctx context.Context, store *session.Store) error {
	return store.Logout(ctx)
}
