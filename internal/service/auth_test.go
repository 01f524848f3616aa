package service

import (
	"time"

	"github.com/nikkjke/finance-tracker/internal/models"
	"github.com/nikkjke/finance-tracker/internal/storage"
)

func (s *ServiceTestSuite) TestLoginKnownUser() {
	u, err := s.auth.Login(s.ctx, "mariana@example.com", "user123")
	s.Require().NoError(err)
	s.Equal("u-1", u.ID)

	restored, ok := s.auth.RestoreSession(s.ctx)
	s.Require().True(ok)
	s.Equal(u, restored)
}

func (s *ServiceTestSuite) TestLoginWrongPassword() {
	_, err := s.auth.Login(s.ctx, "admin@fintrack.com", "user123")
	s.ErrorIs(err, ErrAuthentication)

	_, ok := s.auth.RestoreSession(s.ctx)
	s.False(ok)
}

func (s *ServiceTestSuite) TestLoginValidation() {
	tests := []struct {
		name, email, password, msg string
	}{
		{"missing email", " ", "secret1", "Email is required."},
		{"malformed email", "not-an-email", "secret1", "Please enter a valid email."},
		{"missing password", "ion@example.com", "", "Password is required."},
		{"short password", "ion@example.com", "abc", "Password must be at least 6 characters."},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.auth.Login(s.ctx, tt.email, tt.password)
			s.ErrorIs(err, ErrValidation)
			s.EqualError(err, tt.msg)
		})
	}
}

func (s *ServiceTestSuite) TestLoginProvisionsUnknownEmail() {
	fixed := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	s.auth.now = func() time.Time { return fixed }

	u, err := s.auth.Login(s.ctx, "newcomer@example.com", "whatever")
	s.Require().NoError(err)
	s.Regexp(`^u-`, u.ID)
	s.Equal("newcomer", u.Name)
	s.Equal(models.RoleUser, u.Role)
	s.Equal(fixed, u.CreatedAt)
}

func (s *ServiceTestSuite) TestLoginWithoutProvisioning() {
	s.build(Options{Network: Instant()}, false, true, nil)

	_, err := s.auth.Login(s.ctx, "newcomer@example.com", "whatever")
	s.ErrorIs(err, ErrAuthentication)

	_, err = s.auth.Login(s.ctx, "ion@example.com", "user123")
	s.NoError(err)
}

func (s *ServiceTestSuite) TestRegister() {
	u, err := s.auth.Register(s.ctx, " Dana ", "dana@example.com", "hunter22")
	s.Require().NoError(err)
	s.Equal("Dana", u.Name)
	s.Equal(models.RoleUser, u.Role)

	restored, ok := s.auth.RestoreSession(s.ctx)
	s.Require().True(ok)
	s.Equal(u.ID, restored.ID)

	_, err = s.auth.Register(s.ctx, "Mariana", "mariana@example.com", "hunter22")
	s.ErrorIs(err, ErrConflict)
	s.EqualError(err, "This email is already registered.")

	_, err = s.auth.Register(s.ctx, "", "x@example.com", "hunter22")
	s.ErrorIs(err, ErrValidation)
}

func (s *ServiceTestSuite) TestLogout() {
	_, err := s.auth.Login(s.ctx, "ion@example.com", "user123")
	s.Require().NoError(err)

	s.Require().NoError(s.auth.Logout(s.ctx))
	_, ok := s.auth.RestoreSession(s.ctx)
	s.False(ok)

	s.NoError(s.auth.Logout(s.ctx), "logging out twice is fine")
}

func (s *ServiceTestSuite) TestSwitchRole() {
	u, err := s.auth.Login(s.ctx, "ion@example.com", "user123")
	s.Require().NoError(err)

	admin, err := s.auth.SwitchRole(s.ctx, u, models.RoleAdmin)
	s.Require().NoError(err)
	s.Equal(models.RoleAdmin, admin.Role)

	restored, ok := s.auth.RestoreSession(s.ctx)
	s.Require().True(ok)
	s.Equal(models.RoleAdmin, restored.Role)

	_, err = s.auth.SwitchRole(s.ctx, u, "owner")
	s.ErrorIs(err, ErrValidation)
}

func (s *ServiceTestSuite) TestSwitchRoleDisabled() {
	s.build(Options{Network: Instant()}, true, false, nil)

	u := s.data.Users[2]
	s.Require().Equal("ion@example.com", u.Email)
	_, err := s.auth.SwitchRole(s.ctx, u, models.RoleAdmin)
	s.ErrorIs(err, ErrForbidden)
}

func (s *ServiceTestSuite) TestRestoreSessionDiscardsCorruptSlot() {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{broken"},
		{"missing id", `{"email":"a@b.c","role":"user"}`},
		{"missing email", `{"id":"u-1","role":"user"}`},
		{"unknown role", `{"id":"u-1","email":"a@b.c","role":"root"}`},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Require().NoError(s.store.Put(s.ctx, storage.KeyCurrentUser, []byte(tt.raw)))

			_, ok := s.auth.RestoreSession(s.ctx)
			s.False(ok)
			s.NotContains(s.store.Keys(), storage.KeyCurrentUser)
		})
	}
}

func (s *ServiceTestSuite) TestRestoreSessionEmpty() {
	_, ok := s.auth.RestoreSession(s.ctx)
	s.False(ok)
}
