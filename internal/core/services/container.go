package services

import (
	portsrepo "github.com/mindcare-app/mindcare_backend/internal/core/ports/repositories"
	portssvc "github.com/mindcare-app/mindcare_backend/internal/core/ports/services"
	"github.com/mindcare-app/mindcare_backend/internal/platform/cache"
	"github.com/mindcare-app/mindcare_backend/internal/platform/config"
	"github.com/mindcare-app/mindcare_backend/internal/platform/storage"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// mediaStore and c may be nil when the corresponding infrastructure is not configured.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, mediaStore storage.MediaStore, c *cache.Cache) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)
	container.CheckIn = NewCheckInService(repos.CheckInRepo)
	container.Journal = NewJournalService(repos.JournalRepo)
	container.Psychartist = NewPsychartistService(repos.PsychartistRepo, mediaStore, c, cfg.DirectoryTTL)

	return container
}
