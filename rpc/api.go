package rpc

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/DOIDFoundation/rpcdoc/example"
	"github.com/DOIDFoundation/rpcdoc/markdown"
	"github.com/DOIDFoundation/rpcdoc/types"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	// Namespace the docs API is registered under.
	Namespace = "rpcdoc"
	// DocsPath is where the rendered modules are served, as `<group>.md`.
	DocsPath = "/docs/"
)

var (
	ErrUnknownMethod = errors.New("unknown method")
	ErrUnknownGroup  = errors.New("unknown module")
)

// FieldDescription is the JSON form of a parameter or return field.
type FieldDescription struct {
	Type     string                       `json:"type,omitempty"`
	Desc     string                       `json:"desc,omitempty"`
	Optional bool                         `json:"optional,omitempty"`
	Default  interface{}                  `json:"default,omitempty"`
	Format   string                       `json:"format,omitempty"`
	Example  interface{}                  `json:"example,omitempty"`
	Details  map[string]*FieldDescription `json:"details,omitempty"`
}

// MethodDescription is the JSON form of a method.
type MethodDescription struct {
	Name       string              `json:"name"`
	Desc       string              `json:"desc"`
	Section    string              `json:"section,omitempty"`
	Subdoc     string              `json:"subdoc,omitempty"`
	Deprecated bool                `json:"deprecated,omitempty"`
	Params     []*FieldDescription `json:"params"`
	Returns    *FieldDescription   `json:"returns"`
}

// Example holds the envelopes of a method, a side without example is nil.
type Example struct {
	Request  *example.Request  `json:"request"`
	Response *example.Response `json:"response"`
}

type entry struct {
	group  string
	method *types.Method
}

// DocsAPI answers questions about a schema. Everything is rendered when the
// API is created, the schema must not change afterwards.
type DocsAPI struct {
	registry *types.Registry
	methods  map[string]entry
	groups   map[string][]string
	rendered map[string]string
}

func NewDocsAPI(schema types.Schema, renderer *markdown.Renderer, registry *types.Registry) *DocsAPI {
	if registry == nil {
		registry = types.DefaultRegistry()
	}
	api := &DocsAPI{
		registry: registry,
		methods:  make(map[string]entry),
		groups:   make(map[string][]string),
		rendered: make(map[string]string),
	}
	parts := markdown.Partition(schema)
	for _, name := range parts.Names() {
		group := parts[name]
		if group == nil {
			continue
		}
		documented := []string{}
		for key, m := range group.Methods {
			if m == nil {
				continue
			}
			visible := markdown.VisibleName(name, key)
			api.methods[visible] = entry{group: name, method: m}
			if m.Documented() {
				documented = append(documented, visible)
			}
		}
		slices.Sort(documented)
		api.groups[name] = documented
		api.rendered[name] = renderer.RenderGroup(name, group)
	}
	return api
}

// Modules returns the sorted names of all modules, subdocs included.
func (api *DocsAPI) Modules() []string {
	names := maps.Keys(api.groups)
	slices.Sort(names)
	return names
}

// Methods returns the sorted names of the documented methods of group.
func (api *DocsAPI) Methods(group string) ([]string, error) {
	methods, ok := api.groups[group]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGroup, group)
	}
	return methods, nil
}

// Describe returns the description of method name.
func (api *DocsAPI) Describe(name string) (*MethodDescription, error) {
	e, ok := api.methods[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, name)
	}
	m := e.method
	desc := &MethodDescription{
		Name:       name,
		Desc:       m.Desc,
		Section:    m.Section,
		Subdoc:     m.Subdoc,
		Deprecated: m.Deprecated,
		Params:     make([]*FieldDescription, 0, len(m.Params)),
		Returns:    api.describeField(m.Returns),
	}
	for _, p := range m.Params {
		desc.Params = append(desc.Params, api.describeField(p))
	}
	return desc, nil
}

// Example returns the example envelopes of method name.
func (api *DocsAPI) Example(name string) (*Example, error) {
	e, ok := api.methods[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, name)
	}
	ex := &Example{}
	if req, ok := example.NewRequest(name, e.method.Params); ok {
		ex.Request = req
	}
	if res, ok := example.NewResponse(e.method.Returns); ok {
		ex.Response = res
	}
	return ex, nil
}

// Markdown returns the rendered reference of group.
func (api *DocsAPI) Markdown(group string) (string, error) {
	md, ok := api.rendered[group]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownGroup, group)
	}
	return md, nil
}

func (api *DocsAPI) describeField(f *types.Field) *FieldDescription {
	if f == nil {
		return nil
	}
	d := &FieldDescription{
		Desc:     f.Desc,
		Optional: f.Optional,
		Default:  f.Default,
		Format:   f.Format,
		Example:  f.Example,
	}
	if !f.TextOnly() {
		d.Type = api.registry.DisplayName(f.Type)
	}
	if len(f.Details) > 0 {
		d.Details = make(map[string]*FieldDescription, len(f.Details))
		for key, sub := range f.Details {
			d.Details[key] = api.describeField(sub)
		}
	}
	return d
}

// NewDocsHandler serves the rendered modules of api under DocsPath.
func NewDocsHandler(api *DocsAPI) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		file := strings.TrimPrefix(r.URL.Path, DocsPath)
		group, ok := strings.CutSuffix(file, ".md")
		if !ok {
			http.NotFound(w, r)
			return
		}
		md, err := api.Markdown(group)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		_, _ = w.Write([]byte(md))
	})
}
