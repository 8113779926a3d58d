package prose

import (
	"strings"

	"github.com/Kongudocument-57316/document-creator-sub003/pkg/deed"
)

// pluralizeRoles rewrites each role's singular noun to its plural form
// wherever the document carries more than one party in that role. It runs
// after direct substitution so substituted party names are no longer
// template text. The rewrite is idempotent: already-plural occurrences are
// shielded before the singular form is replaced, so running the pass twice
// yields the same text as once.
func pluralizeRoles(text string, nouns map[deed.Role]RoleNoun, doc deed.Document) string {
	if text == "" || len(nouns) == 0 {
		return text
	}
	// Fixed role order keeps the byte-identical-output guarantee independent
	// of map iteration.
	order := []deed.Role{deed.RoleBuyer, deed.RoleSeller, deed.RoleDonor, deed.RoleRecipient, deed.RoleWitness, deed.RoleTypist}
	for _, role := range order {
		noun, ok := nouns[role]
		if !ok || partyCount(doc, role) < 2 {
			continue
		}
		text = pluralize(text, noun.Singular, noun.Plural)
	}
	return text
}

func partyCount(doc deed.Document, role deed.Role) int {
	if role == deed.RoleWitness {
		return len(doc.Witnesses)
	}
	return len(doc.PartiesByRole(role))
}

const pluralSentinel = "\x00"

func pluralize(text, singular, plural string) string {
	if singular == "" || plural == "" || singular == plural {
		return text
	}
	// Shield existing plural forms so the singular (their prefix) is not
	// re-pluralized inside them.
	text = strings.ReplaceAll(text, plural, pluralSentinel)
	text = strings.ReplaceAll(text, singular, plural)
	return strings.ReplaceAll(text, pluralSentinel, plural)
}
