package opponent

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Name pools for procedural opponents. Selection is seeded, so a fixed
// player state always meets the same roster.
var (
	givenNames = []string{
		"grim", "vex", "thorn", "ash", "rook", "sable", "flint", "onyx",
		"briar", "cinder", "hollow", "kestrel", "marrow", "nyx", "quill",
		"raven", "slate", "talon", "umber", "wren",
	}

	epithets = []string{
		"warden", "the unblinking", "of the last hour", "stillmind",
		"the relentless", "oathkeeper", "the patient", "duskblade",
		"ironwill", "the wakeful", "hourbound", "the steadfast",
		"nightwatch", "the unmoved", "clockheart",
	}
)

var titleCaser = cases.Title(language.English)

// displayName joins and title-cases a name pair for presentation.
func displayName(given, epithet string) string {
	return titleCaser.String(given + " " + epithet)
}

// slugify turns a display name into a stable identifier fragment.
func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
