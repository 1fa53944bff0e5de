package convert

import (
	"strings"

	"github.com/samber/lo"
)

// NamesPlaceholder is replaced by the converted identifiers in a message template.
const NamesPlaceholder = "{names}"

// DefaultMessageTemplate produces e.g. "convert Foo, Bar to kotlin".
const DefaultMessageTemplate = "convert " + NamesPlaceholder + " to kotlin"

// Message renders template for a batch. Identifiers keep batch order and are
// joined with ", ".
func Message(template string, batch []RenamePair) string {
	if template == "" {
		template = DefaultMessageTemplate
	}
	names := lo.Map(batch, func(p RenamePair, _ int) string { return p.Name })
	return strings.ReplaceAll(template, NamesPlaceholder, strings.Join(names, ", "))
}
