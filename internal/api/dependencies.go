package api

import (
	"os"

	"github.com/mariuschr/vinlookup-open/internal/common"
	"github.com/mariuschr/vinlookup-open/internal/db"
	"github.com/mariuschr/vinlookup-open/internal/db/repositories"
	"github.com/mariuschr/vinlookup-open/internal/logging"
	"github.com/mariuschr/vinlookup-open/internal/metrics"
	"github.com/mariuschr/vinlookup-open/internal/providers"
	"github.com/mariuschr/vinlookup-open/internal/services"
)

type Repositories struct {
	Vehicles   *repositories.VehicleRepository
	Reference  *repositories.ReferenceRepository
	Valuations *repositories.ValuationRepository
	Registry   *repositories.RegistryRepository
	VAT        *repositories.VATRepository
}

type Providers struct {
	Registry  *providers.RegistryProvider
	Media     *providers.MediaProvider
	SalesText *providers.SalesTextProvider
}

type Services struct {
	Cache        common.CacheInterface
	Reference    *services.ReferenceService
	VehicleView  *services.VehicleViewService
	RegistrySync *services.RegistrySyncService
	SalesText    *services.SalesTextService
	DocSigner    *common.DocumentSignerService
}

type Dependencies struct {
	Repo      *Repositories
	Providers *Providers
	Services  *Services
	Metrics   *metrics.MetricsRegistry
}

func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		Vehicles:   repositories.NewVehicleRepository(db.DB),
		Reference:  repositories.NewReferenceRepository(db.DB),
		Valuations: repositories.NewValuationRepository(db.DB),
		Registry:   repositories.NewRegistryRepository(db.PgDB),
		VAT:        repositories.NewVATRepository(db.DB),
	}

	provs := &Providers{
		Registry:  providers.NewRegistryProvider(),
		Media:     providers.NewMediaProvider(),
		SalesText: providers.NewSalesTextProvider(),
	}

	var cacheSvc common.CacheInterface
	if os.Getenv("CACHE_BACKEND") == "redis" {
		cacheSvc = common.NewRedisCacheService(common.NewRedisClient())
	} else {
		cacheSvc = common.NewCacheService(600, 900)
	}

	signingKey := os.Getenv("LINK_SIGNING_KEY")
	if signingKey == "" {
		logging.Warn("LINK_SIGNING_KEY not set, signed document links use an empty key")
	}

	refSvc := services.NewReferenceService(repos.Reference, cacheSvc, metricsReg)

	svcs := &Services{
		Cache:        cacheSvc,
		Reference:    refSvc,
		VehicleView:  services.NewVehicleViewService(repos.Vehicles, refSvc, repos.Valuations),
		RegistrySync: services.NewRegistrySyncService(provs.Registry, repos.Registry, metricsReg),
		SalesText:    services.NewSalesTextService(provs.SalesText),
		DocSigner:    common.NewDocumentSignerService([]byte(signingKey)),
	}

	return &Dependencies{
		Repo:      repos,
		Providers: provs,
		Services:  svcs,
		Metrics:   metricsReg,
	}, nil
}
