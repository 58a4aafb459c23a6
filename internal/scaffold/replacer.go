package scaffold

import (
	"strings"

	"github.com/widgetkit/widgetgen/internal/widget"
)

// Sentinel is the placeholder widget name used in boilerplate paths and file
// contents.
const Sentinel = "WidgetName"

// Replacement substitutes every occurrence of Token with Value.
type Replacement struct {
	Token string
	Value string
}

// Replacer is an ordered list of replacements applied in a single pass over
// the input. Where two tokens match at the same position the earlier entry
// wins, so compound tokens must be listed before the bare tokens they
// contain. Substituted text is never rescanned.
type Replacer []Replacement

// Apply returns s with all tokens substituted.
func (r Replacer) Apply(s string) string {
	if len(r) == 0 {
		return s
	}
	pairs := make([]string, 0, 2*len(r))
	for _, rep := range r {
		pairs = append(pairs, rep.Token, rep.Value)
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// NameReplacer renames the widget: the dotted and slashed module ids first,
// then the bare sentinel.
func NameReplacer(spec widget.Spec) Replacer {
	return Replacer{
		{Sentinel + ".widget." + Sentinel, spec.PackageName + ".widget." + spec.WidgetName},
		{Sentinel + "/widget/" + Sentinel, spec.PackageName + "/widget/" + spec.WidgetName},
		{Sentinel, spec.WidgetName},
	}
}

// HeaderReplacer fills the metadata tokens of a source file header.
func HeaderReplacer(spec widget.Spec) Replacer {
	return Replacer{
		{"{{version}}", spec.Version},
		{"{{date}}", spec.Date},
		{"{{copyright}}", spec.Copyright},
		{"{{license}}", spec.License},
		{"{{author}}", spec.Author},
	}
}

// ScriptReplacer is used for the app store widget script.
func ScriptReplacer(spec widget.Spec) Replacer {
	return append(NameReplacer(spec), HeaderReplacer(spec)...)
}

// DescriptorReplacer is used for src/package.xml, which only carries the
// widget name and version.
func DescriptorReplacer(spec widget.Spec) Replacer {
	return Replacer{
		{Sentinel, spec.WidgetName},
		{"{{version}}", spec.Version},
	}
}
