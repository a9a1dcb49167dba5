/*
Package markdown renders a method schema into one reference file per module.

Every file has the same shape:

	# The `eth` Module

	## JSON-RPC methods

	- [eth_accounts](#eth_accounts)

	## JSON-RPC API Reference

	### eth_accounts
	...

Methods are sorted by TOC section and then by name, methods marked nodoc or
deprecated are left out. Rendering is deterministic, the same schema always
gives byte-identical files.
*/
package markdown

import (
	"fmt"
	"strings"

	"github.com/DOIDFoundation/rpcdoc/diag"
	"github.com/DOIDFoundation/rpcdoc/example"
	"github.com/DOIDFoundation/rpcdoc/types"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	methodSeparator = "\n\n***\n\n"
	none            = "none"
)

// Renderer turns groups of methods into Markdown.
type Renderer struct {
	registry *types.Registry
	diag     *diag.Reporter
	endpoint string
}

func NewRenderer(registry *types.Registry, d *diag.Reporter, endpoint string) *Renderer {
	if registry == nil {
		registry = types.DefaultRegistry()
	}
	if d == nil {
		d = diag.NewReporter(nil)
	}
	return &Renderer{registry: registry, diag: d, endpoint: endpoint}
}

// Diag returns the reporter findings are recorded to.
func (r *Renderer) Diag() *diag.Reporter {
	return r.diag
}

// VisibleName returns the name a method is called by. Subgroups share the
// prefix of their parent group.
func VisibleName(group, method string) string {
	if i := strings.Index(group, "_"); i >= 0 {
		group = group[:i]
	}
	return group + "_" + method
}

// Anchor returns the link target of a method heading.
func Anchor(name string) string {
	return strings.ToLower(name)
}

// SortedMethods returns the method keys of g ordered by section, then name.
func SortedMethods(g *types.Group) []string {
	keys := maps.Keys(g.Methods)
	slices.SortFunc(keys, func(a, b string) bool {
		sa, sb := section(g.Methods[a]), section(g.Methods[b])
		if sa != sb {
			return sa < sb
		}
		return a < b
	})
	return keys
}

func section(m *types.Method) string {
	if m == nil {
		return ""
	}
	return m.Section
}

// RenderGroup renders the reference file of module name.
func (r *Renderer) RenderGroup(name string, g *types.Group) string {
	preamble := fmt.Sprintf("# The `%s` Module", name)
	if g.Preamble != "" {
		preamble = preamble + "\n\n" + g.Preamble
	}

	var (
		content     []string
		tocMain     []string
		tocSections = map[string][]string{}
	)
	for _, key := range SortedMethods(g) {
		m := g.Methods[key]
		if m == nil {
			continue
		}
		visible := VisibleName(name, key)
		if !m.Documented() {
			r.diag.Infof(visible, "Skipping %s: %s", visible, m.SkipReason())
			continue
		}

		entry := fmt.Sprintf("- [%s](#%s)", visible, Anchor(visible))
		if m.Section != "" {
			tocSections[m.Section] = append(tocSections[m.Section], entry)
		} else {
			tocMain = append(tocMain, entry)
		}
		content = append(content, r.RenderMethod(visible, m))
	}

	var sb strings.Builder
	sb.WriteString("## JSON-RPC methods")
	if len(tocMain) > 0 {
		sb.WriteString("\n\n" + strings.Join(tocMain, "\n"))
	}
	sections := maps.Keys(tocSections)
	slices.Sort(sections)
	for _, s := range sections {
		fmt.Fprintf(&sb, "\n\n#### %s\n\n%s", s, strings.Join(tocSections[s], "\n"))
	}
	sb.WriteString("\n\n## JSON-RPC API Reference")
	if len(content) > 0 {
		sb.WriteString("\n\n" + strings.Join(content, methodSeparator))
	}
	sb.WriteString("\n\n")

	return preamble + "\n\n" + sb.String()
}

// RenderMethod renders the section of a single method called name.
func (r *Renderer) RenderMethod(name string, m *types.Method) string {
	r.lint(name, m)

	desc := m.Desc
	if desc == "" {
		desc = none
	}
	params := r.parameters(m.Params)
	if params == "" {
		params = none
	}
	returns := none
	if m.Returns != nil {
		returns = "- " + r.formatField(m.Returns)
	}
	ex := example.Block(name, m, r.endpoint, r.diag)

	return fmt.Sprintf("### %s\n\n%s\n\n#### Parameters\n\n%s\n\n#### Returns\n\n%s%s", name, desc, params, returns, ex)
}

func (r *Renderer) parameters(params []*types.Field) string {
	if len(params) == 0 {
		return ""
	}
	lines := make([]string, 0, len(params))
	for _, p := range params {
		if p == nil {
			continue
		}
		lines = append(lines, r.formatField(p))
	}
	md := "0. " + strings.Join(lines, "\n0. ")

	values, ok := example.ResolveParams(params)
	if ok && len(values) > 0 && !types.IsDummy(values[0]) {
		md = fmt.Sprintf("%s\n\n```js\nparams: %s\n```", md, example.Stringify(values))
	}
	return md
}

func (r *Renderer) formatField(f *types.Field) string {
	return r.formatFieldIndent(f, "", "")
}

func (r *Renderer) formatFieldIndent(f *types.Field, prefix, indent string) string {
	if f.TextOnly() {
		return indent + prefix + f.Desc
	}
	line := indent + prefix + r.describe(f)
	if f.Type != types.Object || len(f.Details) == 0 {
		return line
	}
	keys := maps.Keys(f.Details)
	slices.Sort(keys)
	sub := make([]string, 0, len(keys))
	for _, key := range keys {
		d := f.Details[key]
		if d == nil {
			continue
		}
		sub = append(sub, r.formatFieldIndent(d, fmt.Sprintf("`%s`: ", key), strings.Repeat("    ", depth(indent)+1)+"- "))
	}
	return line + "\n" + strings.Join(sub, "\n")
}

// depth returns the nesting level encoded in an item indent.
func depth(indent string) int {
	return strings.Count(indent, "    ")
}

func (r *Renderer) describe(f *types.Field) string {
	optional := ""
	if f.Optional {
		optional = "(optional) "
	}
	defaults := ""
	if f.Default != nil {
		defaults = fmt.Sprintf("(default: `%v`) ", f.Default)
	}
	name := fmt.Sprintf("`%s`", r.registry.DisplayName(f.Type))
	tail := strings.TrimSpace(optional + defaults + f.Desc)
	if tail == "" {
		return name
	}
	return name + " - " + tail
}

func (r *Renderer) lint(name string, m *types.Method) {
	var errs []error
	for i, p := range m.Params {
		errs = append(errs, example.Lint(fmt.Sprintf("params[%d]", i), p)...)
	}
	errs = append(errs, example.Lint("returns", m.Returns)...)
	for _, err := range errs {
		r.diag.Warnf(name, "%s: %v", name, err)
	}
}
