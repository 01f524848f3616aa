package service

import (
	"github.com/nikkjke/finance-tracker/internal/storage"
)

func (s *ServiceTestSuite) TestTheme() {
	s.Equal(ThemeLight, s.theme.Get(s.ctx))

	t, err := s.theme.Toggle(s.ctx)
	s.Require().NoError(err)
	s.Equal(ThemeDark, t)
	s.Equal(ThemeDark, s.theme.Get(s.ctx))

	t, err = s.theme.Toggle(s.ctx)
	s.Require().NoError(err)
	s.Equal(ThemeLight, t)

	_, err = s.theme.Set(s.ctx, "sepia")
	s.ErrorIs(err, ErrValidation)

	s.Require().NoError(s.store.Put(s.ctx, storage.KeyTheme, []byte(`"neon"`)))
	s.Equal(ThemeLight, s.theme.Get(s.ctx))
}
