package profiles

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/joseph-ayodele/homepage/constants"
	"github.com/joseph-ayodele/homepage/internal/entity"
)

// Service owns the single in-process profile. Edits are not persisted.
type Service struct {
	mu      sync.RWMutex
	profile entity.Profile
	logger  *slog.Logger
}

// NewService creates a new profile service seeded with initial.
func NewService(initial entity.Profile, logger *slog.Logger) *Service {
	return &Service{
		profile: initial.Clone(),
		logger:  logger,
	}
}

// DefaultProfile returns the built-in profile with every field populated.
func DefaultProfile() entity.Profile {
	return entity.Profile{
		Name:     constants.DefaultProfileName,
		Title:    constants.DefaultProfileTitle,
		About:    constants.DefaultProfileAbout,
		Skills:   append([]string(nil), constants.DefaultSkills...),
		Email:    constants.DefaultProfileEmail,
		LinkedIn: constants.DefaultProfileLinkedIn,
		Twitter:  constants.DefaultProfileTwitter,
		GitHub:   constants.DefaultProfileGitHub,
		Portfolio: []entity.Project{
			{Title: "Project One", Description: "A personal homepage written in Go"},
			{Title: "Project Two", Description: "A React single-page frontend"},
		},
	}
}

// EditRequest carries the editable fields. Nil or blank values keep the current value.
type EditRequest struct {
	Name  *string
	Title *string
	About *string
}

// Current returns a copy of the profile.
func (s *Service) Current() entity.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.Clone()
}

// Edit overwrites name, title and about and returns the updated profile.
func (s *Service) Edit(req EditRequest) entity.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	apply(&s.profile.Name, req.Name)
	apply(&s.profile.Title, req.Title)
	apply(&s.profile.About, req.About)

	s.logger.Info("profile updated", "name", s.profile.Name, "title", s.profile.Title)
	return s.profile.Clone()
}

func apply(dst *string, v *string) {
	if v == nil {
		return
	}
	if t := strings.TrimSpace(*v); t != "" {
		*dst = t
	}
}
