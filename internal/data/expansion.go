package data

import (
	"fmt"
	"strings"
)

// Expansion is the content tier the shard runs with.
// Tiers are ordered: enabling a tier enables everything before it.
type Expansion int32

const (
	ExpansionT2A Expansion = iota
	ExpansionUOR
	ExpansionUOTD
	ExpansionLBR
	ExpansionAOS
	ExpansionSE
	ExpansionML
	ExpansionSA
)

var expansionNames = map[Expansion]string{
	ExpansionT2A:  "T2A",
	ExpansionUOR:  "UOR",
	ExpansionUOTD: "UOTD",
	ExpansionLBR:  "LBR",
	ExpansionAOS:  "AOS",
	ExpansionSE:   "SE",
	ExpansionML:   "ML",
	ExpansionSA:   "SA",
}

// String returns the short expansion name.
func (e Expansion) String() string {
	if n, ok := expansionNames[e]; ok {
		return n
	}
	return fmt.Sprintf("Expansion(%d)", int32(e))
}

// AtLeast reports whether e enables the content of tier t.
func (e Expansion) AtLeast(t Expansion) bool {
	return e >= t
}

// ParseExpansion parses a short expansion name, case-insensitive.
func ParseExpansion(s string) (Expansion, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for e, n := range expansionNames {
		if n == s {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown expansion %q", s)
}

// UnmarshalText lets Expansion be used directly in YAML and env config.
func (e *Expansion) UnmarshalText(text []byte) error {
	v, err := ParseExpansion(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (e Expansion) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}
