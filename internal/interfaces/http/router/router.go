// Package router collects route registration from the HTTP handlers and
// mounts everything under a single versioned API group.
package router

import "github.com/gin-gonic/gin"

// Registrar is implemented by handlers that mount routes on the API group
type Registrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router accumulates registrars and mounts them under /api/<version>
type Router struct {
	engine     *gin.Engine
	version    string
	registrars []Registrar
}

// RouterOption customizes a Router
type RouterOption func(*Router)

// WithAPIVersion overrides the default "v1" path segment
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.version = version
	}
}

// NewRouter wraps a gin engine for versioned route registration
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{engine: engine, version: "v1"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register queues one or more registrars for Setup. Returns the Router so
// registrations chain.
func (r *Router) Register(registrars ...Registrar) *Router {
	r.registrars = append(r.registrars, registrars...)
	return r
}

// Setup mounts every queued registrar on the versioned API group
func (r *Router) Setup() {
	api := r.engine.Group("/api/" + r.version)
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}
}
