package handler

import (
	"net/http"

	"github.com/vfg2006/searchads-manager-api/infrastructure/integrator/assistant"
	"github.com/vfg2006/searchads-manager-api/internal/api/handler/router"
	"github.com/vfg2006/searchads-manager-api/internal/config"
	"github.com/vfg2006/searchads-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/searchads-manager-api/internal/usecases/credentialing"
	"github.com/vfg2006/searchads-manager-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Reports(service reporting.Reporter, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/fetch",
			Method:  http.MethodPost,
			Handler: FetchReport(service),
		},
		{
			Path:    "/v1/reports/:alias",
			Method:  http.MethodGet,
			Handler: GetReportSnapshot(service),
		},
		{
			Path:    "/v1/reports/:alias/zombies",
			Method:  http.MethodGet,
			Handler: GetZombies(service, cfg),
		},
		{
			Path:    "/v1/reports/:alias/export",
			Method:  http.MethodGet,
			Handler: ExportReport(service, cfg),
		},
	}
}

func Credentials(vault credentialing.Vault) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/credentials",
			Method:  http.MethodGet,
			Handler: ListCredentials(vault),
		},
		{
			Path:    "/v1/credentials",
			Method:  http.MethodPost,
			Handler: AddCredential(vault),
		},
		{
			Path:    "/v1/credentials/:alias",
			Method:  http.MethodDelete,
			Handler: RemoveCredential(vault),
		},
	}
}

func Assistant(service *assistant.AssistantIntegrator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/assistant/generate",
			Method:  http.MethodPost,
			Handler: Generate(service),
		},
	}
}
