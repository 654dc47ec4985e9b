package creation

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/udisondev/charcreate/internal/data"
)

// FallbackName replaces any name that fails the name policy.
const FallbackName = "Generic Player"

// ValidateProfession reports whether id is selectable on the given expansion.
// Ids 0-3 are always valid, 4-5 need AOS, 6-7 need SE.
func ValidateProfession(id int32, expansion data.Expansion) bool {
	switch {
	case id < 0:
		return false
	case id < 4:
		return true
	case id < 6 && expansion.AtLeast(data.ExpansionAOS):
		return true
	case id < 8 && expansion.AtLeast(data.ExpansionSE):
		return true
	default:
		return false
	}
}

// NamePolicy describes acceptable character names.
type NamePolicy struct {
	MinLength int
	MaxLength int

	// Separators may appear between letters, never first or last and never twice in a row.
	Separators string

	// Banned words are rejected when they appear as a whole word.
	Banned []string
	// BannedPrefixes are rejected at the start of a name.
	BannedPrefixes []string
}

var defaultBanned = []string{
	// offensive
	"ass", "asshole", "bitch", "cock", "cunt", "dick", "fag", "fuck", "hitler",
	"piss", "prick", "pussy", "shit", "twat",
	// titles and staff impersonation
	"adept", "apprentice", "archer", "beggar", "blackthorn", "blackthorne", "british",
	"carpenter", "chef", "expert", "fisherman", "gamemaster", "grandmaster",
	"journeyman", "lb", "mage", "master", "medium", "merchant", "neophyte", "novice",
	"rogue", "scholar", "smith", "tailor",
	"frozen", "invulnerable", "squelched", "osi", "origin",
}

var defaultBannedPrefixes = []string{"admin", "counselor", "gm", "lady", "lord", "seer"}

// DefaultNamePolicy returns the standard player name policy.
func DefaultNamePolicy() NamePolicy {
	return NamePolicy{
		MinLength:      2,
		MaxLength:      16,
		Separators:     " -.'",
		Banned:         append([]string(nil), defaultBanned...),
		BannedPrefixes: append([]string(nil), defaultBannedPrefixes...),
	}
}

// ValidateName validates raw against the default policy.
func ValidateName(raw string) string {
	return DefaultNamePolicy().Validate(raw)
}

// Validate trims raw and returns it if it satisfies the policy,
// or FallbackName otherwise. The result is never a partially cleaned name.
func (p NamePolicy) Validate(raw string) string {
	name := strings.TrimSpace(raw)
	if !p.Allows(name) {
		return FallbackName
	}
	return name
}

// Allows reports whether an already trimmed name satisfies the policy.
func (p NamePolicy) Allows(name string) bool {
	if len(name) < p.MinLength || len(name) > p.MaxLength {
		return false
	}

	letters := 0
	run := 0
	for i := 0; i < len(name); i++ {
		c := name[i]
		if isASCIILetter(c) {
			letters++
			run = 0
			continue
		}
		if strings.IndexByte(p.Separators, c) < 0 || i == 0 || i == len(name)-1 {
			return false
		}
		run++
		if run > 1 {
			return false
		}
	}
	if letters == 0 {
		return false
	}

	folded := cases.Fold().String(name)
	for _, w := range p.Banned {
		if containsWord(folded, cases.Fold().String(w)) {
			return false
		}
	}
	for _, pre := range p.BannedPrefixes {
		if strings.HasPrefix(folded, cases.Fold().String(pre)) {
			return false
		}
	}
	return true
}

// containsWord reports whether word occurs in s bounded by non-letters.
func containsWord(s, word string) bool {
	if word == "" {
		return false
	}
	for from := 0; from <= len(s)-len(word); {
		idx := strings.Index(s[from:], word)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(word)
		if (start == 0 || !isASCIILetter(s[start-1])) && (end == len(s) || !isASCIILetter(s[end])) {
			return true
		}
		from = start + 1
	}
	return false
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Skill distribution limits for custom characters.
const (
	MaxStartingSkillValue = 50
)

// ValidSkillTotals are the accepted sums of a custom skill distribution.
var ValidSkillTotals = [...]int32{100, 120}

// ValidateSkillDistribution reports whether a custom distribution is acceptable:
// every value in [0, 50], no skill contributing more than one positive value,
// and a total of exactly 100 or 120. The result does not depend on pair order.
func ValidateSkillDistribution(pairs []data.SkillValue) bool {
	var total int32
	contributed := make(map[data.SkillName]struct{}, len(pairs))
	for _, sv := range pairs {
		if sv.Value < 0 || sv.Value > MaxStartingSkillValue {
			return false
		}
		total += sv.Value

		if sv.Value == 0 {
			continue
		}
		if _, dup := contributed[sv.Skill]; dup {
			return false
		}
		contributed[sv.Skill] = struct{}{}
	}
	for _, t := range ValidSkillTotals {
		if total == t {
			return true
		}
	}
	return false
}
