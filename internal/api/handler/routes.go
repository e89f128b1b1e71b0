package handler

import (
	"net/http"

	"github.com/vfg2006/supplier-performance-api/internal/api/handler/router"
	"github.com/vfg2006/supplier-performance-api/internal/usecases/authenticating"
	"github.com/vfg2006/supplier-performance-api/internal/usecases/incentivizing"
	"github.com/vfg2006/supplier-performance-api/internal/usecases/revenue"
	"github.com/vfg2006/supplier-performance-api/internal/usecases/targeting"
	"github.com/vfg2006/supplier-performance-api/pkg/middleware"
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
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Calendar() []router.Route {
	return []router.Route{
		{
			Path:        "/v1/calendar/working-days",
			Method:      http.MethodGet,
			Handler:     GetWorkingDays(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Targets(service targeting.TargetService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/targets/validate",
			Method:      http.MethodPost,
			Handler:     ValidateTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/targets",
			Method:      http.MethodGet,
			Handler:     ListTargets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/targets",
			Method:      http.MethodPost,
			Handler:     CreateTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SupplierManagers()},
		},
		{
			Path:        "/v1/targets/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SupplierManagers()},
		},
		{
			Path:        "/v1/suppliers/:id/targets",
			Method:      http.MethodGet,
			Handler:     ListSupplierTargets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/suppliers/:id/targets/:year/:month",
			Method:      http.MethodGet,
			Handler:     GetTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/suppliers/:id/targets/:year/:month",
			Method:      http.MethodPut,
			Handler:     UpdateTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SupplierManagers()},
		},
	}
}

func Revenue(service revenue.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/suppliers/:id/revenue",
			Method:      http.MethodGet,
			Handler:     GetSupplierRevenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Incentives(service incentivizing.IncentiveService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/incentives",
			Method:      http.MethodGet,
			Handler:     ListIncentives(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/incentives",
			Method:      http.MethodPost,
			Handler:     CreateIncentive(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SupplierManagers()},
		},
		{
			Path:        "/v1/incentives/report",
			Method:      http.MethodGet,
			Handler:     GetIncentiveReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SupplierManagers()},
		},
		{
			Path:        "/v1/incentives/report.xlsx",
			Method:      http.MethodGet,
			Handler:     ExportIncentiveReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SupplierManagers()},
		},
		{
			Path:        "/v1/incentives/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteIncentive(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SupplierManagers()},
		},
		{
			Path:        "/v1/suppliers/:id/incentives/:year/:month",
			Method:      http.MethodGet,
			Handler:     GetIncentive(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/suppliers/:id/incentives/:year/:month",
			Method:      http.MethodPut,
			Handler:     UpdateIncentive(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SupplierManagers()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
