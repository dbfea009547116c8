package kinship

import (
	"fmt"
	"strings"

	"github.com/mtlprog/whanau/internal/model"
)

// Fixed labels.
const (
	LabelSamePerson = "the same person"
	LabelCoParent   = "co-parent"
	LabelUnknown    = "related (complex/step) or unknown"

	whangaiSuffix = " (whangai)"
)

// term is a gendered relationship word.
type term int

const (
	termParent term = iota
	termGrandparent
	termChild
	termGrandchild
	termSibling
	termAuntUncle
	termNieceNephew
	termSiblingInLaw
	termParentInLaw
	termChildInLaw
)

type genderedTerm struct {
	neutral string
	female  string
	male    string
}

// terms is the full (term, gender) lookup. OTHER and UNKNOWN use neutral.
var terms = map[term]genderedTerm{
	termParent:       {neutral: "parent", female: "mother", male: "father"},
	termGrandparent:  {neutral: "grandparent", female: "grandmother", male: "grandfather"},
	termChild:        {neutral: "child", female: "daughter", male: "son"},
	termGrandchild:   {neutral: "grandchild", female: "granddaughter", male: "grandson"},
	termSibling:      {neutral: "sibling", female: "sister", male: "brother"},
	termAuntUncle:    {neutral: "aunt/uncle", female: "aunt", male: "uncle"},
	termNieceNephew:  {neutral: "niece/nephew", female: "niece", male: "nephew"},
	termSiblingInLaw: {neutral: "sibling-in-law", female: "sister-in-law", male: "brother-in-law"},
	termParentInLaw:  {neutral: "parent-in-law", female: "mother-in-law", male: "father-in-law"},
	termChildInLaw:   {neutral: "child-in-law", female: "daughter-in-law", male: "son-in-law"},
}

func gendered(t term, g model.Gender) string {
	entry := terms[t]
	switch g {
	case model.GenderFemale:
		return entry.female
	case model.GenderMale:
		return entry.male
	default:
		return entry.neutral
	}
}

func withWhangai(label string, whangai bool) string {
	if whangai {
		return label + whangaiSuffix
	}
	return label
}

func greats(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("great-", n)
}

// ancestorLabel names an ancestor d generations up: parent, grandparent,
// great-grandparent and so on.
func ancestorLabel(d int, g model.Gender) string {
	if d <= 1 {
		return gendered(termParent, g)
	}
	return greats(d-2) + gendered(termGrandparent, g)
}

// descendantLabel names a descendant d generations down.
func descendantLabel(d int, g model.Gender) string {
	if d <= 1 {
		return gendered(termChild, g)
	}
	return greats(d-2) + gendered(termGrandchild, g)
}

// auntUncleLabel names the sibling of an ancestor k generations up
// (k=1 aunt, k=2 great-aunt, k=3 great-great-aunt).
func auntUncleLabel(k int, g model.Gender) string {
	return greats(k-1) + gendered(termAuntUncle, g)
}

// nieceNephewLabel names a descendant k generations below a sibling
// (k=1 niece, k=2 grandniece, k=3 great-grandniece).
func nieceNephewLabel(k int, g model.Gender) string {
	if k <= 1 {
		return gendered(termNieceNephew, g)
	}
	return greats(k-2) + "grand" + gendered(termNieceNephew, g)
}

var ordinalWords = []string{
	"zeroth", "first", "second", "third", "fourth", "fifth", "sixth",
	"seventh", "eighth", "ninth", "tenth", "eleventh", "twelfth",
}

// ordinal spells 1..12 as words and falls back to 13th, 21st, 22nd ...
func ordinal(n int) string {
	if n >= 0 && n < len(ordinalWords) {
		return ordinalWords[n]
	}
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// cousinLabel builds "first cousin", "second cousin once removed",
// "first cousin third removed".
func cousinLabel(degree, removed int) string {
	label := ordinal(degree) + " cousin"
	switch {
	case removed == 1:
		label += " once removed"
	case removed > 1:
		label += " " + ordinal(removed) + " removed"
	}
	return label
}
