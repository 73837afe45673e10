package handler

import (
	"net/http"

	"github.com/vfg2006/ad-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/ad-optimizer-api/internal/api/handler/router"
	"github.com/vfg2006/ad-optimizer-api/internal/usecases/analyzing"
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

func Analysis(
	entityRepo repository.EntityRepository,
	suggestionRepo repository.SuggestionRepository,
	analyzer analyzing.EntityAnalyzer,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/entities",
			Method:  http.MethodGet,
			Handler: ListEntities(entityRepo),
		},
		{
			Path:    "/v1/entities/:id/suggestions",
			Method:  http.MethodGet,
			Handler: GetEntitySuggestions(entityRepo, analyzer),
		},
		{
			Path:    "/v1/entities/:id/suggestions/published",
			Method:  http.MethodGet,
			Handler: GetPublishedSuggestions(suggestionRepo),
		},
		{
			Path:    "/v1/entities/:id/deep-analysis",
			Method:  http.MethodGet,
			Handler: GetEntityDeepAnalysis(analyzer),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
