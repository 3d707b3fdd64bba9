package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/storehub/dashboard-system/internal/core/domain"
	"github.com/storehub/dashboard-system/internal/core/ports"
)

// AuthService implements the login/signup/logout/update-password state
// machine over an injected registry. The current session is held in memory
// and mirrored to the session store on every transition, so a restart
// rehydrates the last session even though the registry reseeds.
type AuthService struct {
	registry  ports.UserRegistry
	sessions  ports.SessionStore
	creds     CredentialCodec
	jwtSecret string
	tokenTTL  time.Duration
	latency   time.Duration
	logger    zerolog.Logger

	mu      sync.RWMutex
	current domain.Session
}

// AuthOptions tunes the optional behaviour of NewAuthService.
type AuthOptions struct {
	// TokenTTL is the JWT lifetime. Defaults to 24h.
	TokenTTL time.Duration
	// SimulatedLatency is slept before login, signup and password updates
	// complete, modelling the pending network call of the original client.
	// Zero disables it.
	SimulatedLatency time.Duration
	// Credentials defaults to PlainCredential, matching the seed fixtures.
	Credentials CredentialCodec
}

func NewAuthService(registry ports.UserRegistry, sessions ports.SessionStore, jwtSecret string, opts AuthOptions, logger zerolog.Logger) *AuthService {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	if opts.Credentials == nil {
		opts.Credentials = PlainCredential{}
	}
	s := &AuthService{
		registry:  registry,
		sessions:  sessions,
		creds:     opts.Credentials,
		jwtSecret: jwtSecret,
		tokenTTL:  opts.TokenTTL,
		latency:   opts.SimulatedLatency,
		logger:    logger,
	}
	s.rehydrate()
	return s
}

// rehydrate restores the last persisted session. Any failure degrades to
// the anonymous session; a broken snapshot must never fail the boot.
func (s *AuthService) rehydrate() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sess, err := s.sessions.Load(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("session snapshot unreadable, starting anonymous")
		s.current = domain.Anonymous()
		return
	}
	s.current = sess
	if sess.Authenticated && sess.User != nil {
		s.logger.Info().Str("user_id", sess.User.ID).Str("role", string(sess.User.Role)).Msg("session restored")
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	s.simulateLatency()

	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.registry.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.creds.Verify(user.Password, password) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.bind(ctx, *user)
}

func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	s.simulateLatency()

	if input.Email == "" || input.Password == "" || input.Name == "" {
		return nil, domain.ErrInvalidCredentials
	}

	sealed, err := s.creds.Seal(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:       s.newID(),
		Name:     input.Name,
		Email:    input.Email,
		Address:  input.Address,
		Role:     domain.RoleUser, // role is never user-selectable
		Password: sealed,
	}

	created, err := s.registry.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user signed up")
	return s.bind(ctx, *created)
}

func (s *AuthService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.current = domain.Anonymous()
	s.mu.Unlock()

	if err := s.sessions.Clear(ctx); err != nil {
		return err
	}
	s.logger.Info().Msg("session cleared")
	return nil
}

func (s *AuthService) UpdatePassword(ctx context.Context, currentPassword, newPassword string) error {
	s.simulateLatency()

	s.mu.RLock()
	sess := s.current
	s.mu.RUnlock()

	if !sess.Authenticated || sess.User == nil {
		return domain.ErrNotAuthenticated
	}

	stored, err := s.registry.FindByID(ctx, sess.User.ID)
	if err != nil {
		return err
	}
	if !s.creds.Verify(stored.Password, currentPassword) {
		return domain.ErrInvalidCredentials
	}

	sealed, err := s.creds.Seal(newPassword)
	if err != nil {
		return err
	}
	if err := s.registry.UpdatePassword(ctx, stored.ID, sealed); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", stored.ID).Msg("password updated")
	return nil
}

func (s *AuthService) Session(ctx context.Context) domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// bind transitions to Authenticated, persists the snapshot and issues a JWT.
func (s *AuthService) bind(ctx context.Context, user domain.User) (*ports.AuthResult, error) {
	sess := domain.AuthenticatedAs(user)

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("session bound")
	return &ports.AuthResult{Token: token, Session: sess}, nil
}

func (s *AuthService) generateToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"role":     string(user.Role),
		"store_id": user.StoreID,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// newID allocates a unique, time-ordered identity for a signup.
func (s *AuthService) newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// simulateLatency models the pending API call of the original client. It is
// a plain sleep: once invoked the operation always resolves.
func (s *AuthService) simulateLatency() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
}
