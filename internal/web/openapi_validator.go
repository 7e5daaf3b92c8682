package web

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/gin-gonic/gin"
)

// OpenapiValidator validates inbound requests against the service contract.
// When the document cannot be loaded validation is disabled rather than
// taking the service down.
func OpenapiValidator(location string) gin.HandlerFunc {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromFile(location)
	if err != nil {
		return func(c *gin.Context) {}
	}

	if err := doc.Validate(loader.Context); err != nil {
		return func(c *gin.Context) {}
	}

	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return func(c *gin.Context) {}
	}

	return func(c *gin.Context) {
		route, pathParams, err := router.FindRoute(c.Request)
		if err != nil {
			// Paths outside the contract (status, pprof) pass through
			return
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    c.Request,
			PathParams: pathParams,
			Route:      route,
		}

		if err := openapi3filter.ValidateRequest(c.Request.Context(), input); err != nil {
			HandleError(c, http.StatusBadRequest, "Request validation failed", err)
			c.Abort()
		}
	}
}
