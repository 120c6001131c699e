package handler

import (
	"net/http"

	"github.com/precifica/cost-manager-api/internal/api/handler/router"
	"github.com/precifica/cost-manager-api/internal/usecases/authenticating"
	"github.com/precifica/cost-manager-api/internal/usecases/catalog"
	"github.com/precifica/cost-manager-api/internal/usecases/costing"
	"github.com/precifica/cost-manager-api/internal/usecases/importing"
	"github.com/precifica/cost-manager-api/internal/usecases/insighting"
	"github.com/precifica/cost-manager-api/internal/usecases/pricing"
	"github.com/precifica/cost-manager-api/pkg/middleware"
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
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Products(service catalog.Cataloger, pricer pricing.Pricer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products",
			Method:      http.MethodGet,
			Handler:     ListProducts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products",
			Method:      http.MethodPost,
			Handler:     CreateProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodGet,
			Handler:     GetProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodPut,
			Handler:     UpdateProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/products/:id/metrics",
			Method:      http.MethodGet,
			Handler:     GetProductMetrics(pricer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/:id/recipe",
			Method:      http.MethodGet,
			Handler:     GetRecipe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/:id/recipe",
			Method:      http.MethodPut,
			Handler:     SaveRecipe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/pricing/simulate",
			Method:      http.MethodPost,
			Handler:     SimulatePricing(pricer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Ingredients(service catalog.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ingredients",
			Method:      http.MethodGet,
			Handler:     ListIngredients(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ingredients",
			Method:      http.MethodPost,
			Handler:     CreateIngredient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/ingredients/:id",
			Method:      http.MethodPut,
			Handler:     UpdateIngredient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/ingredients/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteIngredient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func Costs(service costing.Coster) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/costs/fixed",
			Method:      http.MethodGet,
			Handler:     ListFixedCosts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/costs/fixed",
			Method:      http.MethodPost,
			Handler:     CreateFixedCost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/costs/fixed/:id",
			Method:      http.MethodPut,
			Handler:     UpdateFixedCost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/costs/fixed/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteFixedCost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/costs/variable",
			Method:      http.MethodGet,
			Handler:     ListVariableCosts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/costs/variable",
			Method:      http.MethodPost,
			Handler:     CreateVariableCost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/costs/variable/:id",
			Method:      http.MethodPut,
			Handler:     UpdateVariableCost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/costs/variable/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteVariableCost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func Channels(service costing.Coster) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/channels",
			Method:      http.MethodGet,
			Handler:     ListChannels(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/channels",
			Method:      http.MethodPost,
			Handler:     CreateChannel(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/channels/:id",
			Method:      http.MethodPut,
			Handler:     UpdateChannel(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/channels/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteChannel(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func Settings(service costing.Coster) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/settings",
			Method:      http.MethodGet,
			Handler:     GetSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/settings",
			Method:      http.MethodPut,
			Handler:     SaveSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products/:id/insights",
			Method:      http.MethodGet,
			Handler:     GetProductInsights(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/action-center",
			Method:      http.MethodGet,
			Handler:     GetActionCenter(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func SalesImport(service importing.Importer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales/import/preview",
			Method:      http.MethodPost,
			Handler:     PreviewSalesImport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/sales/import/commit",
			Method:      http.MethodPost,
			Handler:     CommitSalesImport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/sales/import/:batch_id",
			Method:      http.MethodDelete,
			Handler:     UndoSalesImport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
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
