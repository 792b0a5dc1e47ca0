package languages

import "net/http"

// Component bundles a registry with its handler and routing helpers so hosts
// can share one discovered code set between encoding and the HTTP endpoint.
type Component struct {
	opts     Options
	registry *Registry
}

// New constructs a new component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	opts := NewOptions(fns...)
	return &Component{opts: opts, registry: NewRegistryWithOptions(opts)}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Registry returns the component's shared registry.
func (c *Component) Registry() *Registry {
	if c == nil {
		return NewRegistry()
	}
	return c.registry
}

// Handler returns a net/http handler for language queries.
func (c *Component) Handler() http.Handler {
	if c == nil {
		return Handler()
	}
	return handlerForRegistry(c.registry)
}

// RegisterRoutes registers the component handler under basePath on mux.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	if c == nil {
		return RegisterRoutes(mux, basePath)
	}
	if mux == nil {
		return RegisterRoutesWithOptions(mux, basePath, c.opts)
	}
	pattern := mountPath(basePath, c.opts.RoutePath)
	mux.Handle(pattern, c.Handler())
	return pattern, nil
}
