package service

import (
	"context"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"github.com/google/uuid"

	"github.com/nikkjke/finance-tracker/internal/auth"
	"github.com/nikkjke/finance-tracker/internal/logging"
	"github.com/nikkjke/finance-tracker/internal/models"
	"github.com/nikkjke/finance-tracker/internal/storage"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// AuthOptions configures AuthService.
type AuthOptions struct {
	Options
	// ProvisionOnLogin creates a new user principal when an unknown email
	// logs in. When false such logins fail.
	ProvisionOnLogin bool
	// AllowRoleSwitch enables SwitchRole.
	AllowRoleSwitch bool
}

// AuthService manages the authenticated session slot against a fixed
// directory of known users.
type AuthService struct {
	store storage.Store
	users []models.User
	creds auth.Credentials
	opts  AuthOptions
	net   *Network
	now   func() time.Time
}

// NewAuthService returns a service authenticating users against creds.
func NewAuthService(store storage.Store, users []models.User, creds auth.Credentials, opts AuthOptions) *AuthService {
	return &AuthService{
		store: store,
		users: users,
		creds: creds,
		opts:  opts,
		net:   opts.network(),
		now:   time.Now,
	}
}

func (s *AuthService) known(email string) (models.User, bool) {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return models.User{}, false
}

// Login authenticates email and password and persists the session.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	const op = OpLogin
	if err := s.net.Call(ctx, op, "Failed to sign in."); err != nil {
		return models.User{}, err
	}

	email = strings.TrimSpace(email)
	if err := validateCredentials(op, email, password); err != nil {
		return models.User{}, err
	}

	u, ok := s.known(email)
	switch {
	case ok:
		if !s.creds.Verify(u.Email, password) {
			return models.User{}, newError(KindAuthentication, op, "Invalid email or password.")
		}
	case s.opts.ProvisionOnLogin:
		u = s.newUser(localPart(email), email)
		logging.Infof("auth: provisioned %s on login", u.ID)
	default:
		return models.User{}, newError(KindAuthentication, op, "Invalid email or password.")
	}

	if err := s.persist(ctx, op, u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Register creates a new user principal and persists it as the session.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (models.User, error) {
	const op = OpRegister
	if err := s.net.Call(ctx, op, "Failed to create account."); err != nil {
		return models.User{}, err
	}

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return models.User{}, validationError(op, "Name is required.")
	}
	if err := validateCredentials(op, email, password); err != nil {
		return models.User{}, err
	}
	if _, ok := s.known(email); ok {
		return models.User{}, newError(KindConflict, op, "This email is already registered.")
	}

	u := s.newUser(name, email)
	if err := s.persist(ctx, op, u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Logout clears the session slot.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.opts.persisted("auth.logout", storage.Remove(ctx, s.store, storage.KeyCurrentUser))
}

// SwitchRole returns u with its role replaced and persists it as the
// session.
func (s *AuthService) SwitchRole(ctx context.Context, u models.User, role models.Role) (models.User, error) {
	const op = "auth.switchRole"
	if !s.opts.AllowRoleSwitch {
		return models.User{}, newError(KindForbidden, op, "Role switching is disabled.")
	}
	if !role.Valid() {
		return models.User{}, newError(KindValidation, op, "Unknown role %s.", quoted(role))
	}
	u.Role = role
	if err := s.persist(ctx, op, u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// RestoreSession returns the persisted principal. A slot that cannot be
// decoded or lacks an id, email or known role is cleared.
func (s *AuthService) RestoreSession(ctx context.Context) (models.User, bool) {
	u, ok, err := storage.LoadValue[models.User](ctx, s.store, storage.KeyCurrentUser)
	if !ok {
		if err != nil {
			logging.Warnf("auth: read session: %v", err)
		}
		return models.User{}, false
	}
	if err != nil || u.ID == "" || u.Email == "" || !u.Role.Valid() {
		logging.Warnf("auth: discarding invalid session")
		_ = storage.Remove(ctx, s.store, storage.KeyCurrentUser)
		return models.User{}, false
	}
	return u, true
}

func (s *AuthService) persist(ctx context.Context, op string, u models.User) error {
	return s.opts.persisted(op, storage.SaveValue(ctx, s.store, storage.KeyCurrentUser, u))
}

func (s *AuthService) newUser(name, email string) models.User {
	return models.User{
		ID:        "u-" + uuid.NewString(),
		Name:      name,
		Email:     email,
		Role:      models.RoleUser,
		CreatedAt: s.now().UTC(),
	}
}

func validateCredentials(op, email, password string) error {
	if email == "" {
		return validationError(op, "Email is required.")
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		return validationError(op, "Please enter a valid email.")
	}
	if password == "" {
		return validationError(op, "Password is required.")
	}
	if len(password) < MinPasswordLength {
		return validationError(op, "Password must be at least 6 characters.")
	}
	return nil
}

func localPart(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
