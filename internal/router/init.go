package router

import (
	"github.com/wanderstay/wanderstay/internal/application"
	"github.com/wanderstay/wanderstay/internal/container"
	"github.com/wanderstay/wanderstay/internal/domain/repository"
	mediainfra "github.com/wanderstay/wanderstay/internal/infrastructure/media"
	pginfra "github.com/wanderstay/wanderstay/internal/infrastructure/postgres"
	handlers "github.com/wanderstay/wanderstay/internal/interface/http"
	"github.com/wanderstay/wanderstay/internal/router/modules"
)

// InitModules builds the services from the container singletons and registers
// every feature module. Called once during startup.
func InitModules(r *Registry) error {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	placeRepo := pginfra.NewPlaceRepository(pool)
	bookingRepo := pginfra.NewBookingRepository(pool)

	var store repository.MediaStore
	if cfg.GCSBucket != "" && container.GetGCS() != nil {
		store = mediainfra.NewGCSStore(container.GetGCS(), cfg.GCSBucket)
	} else {
		disk, err := mediainfra.NewDiskStore(cfg.UploadsDir)
		if err != nil {
			return err
		}
		store = disk
	}

	authSvc := application.NewAuthService(userRepo, container.GetJWT(), logger)
	placeSvc := application.NewPlaceService(placeRepo, container.GetRedis(), logger, container.GetES(), cfg.ESPlacesIndex, cfg.PlacesCacheTTL)
	bookingSvc := application.NewBookingService(bookingRepo, placeRepo, userRepo, container.GetRabbitPub(), logger)
	mediaSvc := application.NewMediaService(store, logger, cfg.MaxUploadFiles)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure)))
	r.Add(modules.NewPlaceModule(handlers.NewPlaceHandler(placeSvc, logger)))
	r.Add(modules.NewBookingModule(handlers.NewBookingHandler(bookingSvc, logger)))
	r.Add(modules.NewMediaModule(handlers.NewMediaHandler(mediaSvc, logger)))
	r.Add(modules.NewWebModule(r.Engine, cfg))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
	return nil
}
