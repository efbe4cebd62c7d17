package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// NewOpenAPIValidator builds an echo middleware validating every request
// against the API contract. Paths outside the contract pass through
// untouched, so the middleware never blocks health probes.
func NewOpenAPIValidator(specPath string) (echo.MiddlewareFunc, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(specPath)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, err
	}

	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			request := ctx.Request()

			route, pathParams, err := router.FindRoute(request)
			if err != nil {
				if errors.Is(err, routers.ErrPathNotFound) {
					return next(ctx)
				}
				return writeBadRequest(ctx, err.Error())
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    request,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: allowAll,
				},
			}
			if err := openapi3filter.ValidateRequest(request.Context(), input); err != nil {
				var requestErr *openapi3filter.RequestError
				if errors.As(err, &requestErr) {
					return writeBadRequest(ctx, requestErr.Error())
				}
				return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
					Code:    http.StatusInternalServerError,
					Message: "request validation failed",
				})
			}

			return next(ctx)
		}
	}, nil
}

func allowAll(context.Context, *openapi3filter.AuthenticationInput) error {
	return nil
}
