package llm

import (
	"sort"

	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/llm"
)

// Config holds the settings of every vendor. Vendors without an API key are not registered.
type Config struct {
	OpenAI ProviderConfig
	Claude ProviderConfig
	Gemini ProviderConfig
}

// Registry resolves configured providers by name
type Registry struct {
	providers map[string]llm.Provider
	models    map[string]string
}

// NewRegistry builds the providers that have credentials
func NewRegistry(cfg Config, logger coreport.Logger) *Registry {
	r := &Registry{providers: make(map[string]llm.Provider), models: make(map[string]string)}
	if cfg.OpenAI.Enabled() {
		r.Register(NewOpenAI(cfg.OpenAI, logger), cfg.OpenAI.Model)
	}
	if cfg.Claude.Enabled() {
		r.Register(NewClaude(cfg.Claude, logger), cfg.Claude.Model)
	}
	if cfg.Gemini.Enabled() {
		r.Register(NewGemini(cfg.Gemini, logger), cfg.Gemini.Model)
	}
	logger.Info("LLM providers registered", map[string]any{"providers": r.Names()})
	return r
}

// Register adds or replaces a provider
func (r *Registry) Register(p llm.Provider, defaultModel string) {
	r.providers[p.Name()] = p
	r.models[p.Name()] = defaultModel
}

// Get returns the named provider or ErrUnknownProvider
func (r *Registry) Get(name string) (llm.Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, errs.ErrUnknownProvider
	}
	return p, nil
}

// Names lists configured providers in alphabetical order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) DefaultModel(name string) string {
	return r.models[name]
}
