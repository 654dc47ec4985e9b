package data

import (
	"fmt"
	"strconv"
	"strings"
)

// SkillName identifies a skill. Values match the client skill table order.
type SkillName int32

const (
	SkillAlchemy SkillName = iota
	SkillAnatomy
	SkillAnimalLore
	SkillItemID
	SkillArmsLore
	SkillParry
	SkillBegging
	SkillBlacksmith
	SkillFletching
	SkillPeacemaking
	SkillCamping
	SkillCarpentry
	SkillCartography
	SkillCooking
	SkillDetectHidden
	SkillDiscordance
	SkillEvalInt
	SkillHealing
	SkillFishing
	SkillForensics
	SkillHerding
	SkillHiding
	SkillProvocation
	SkillInscribe
	SkillLockpicking
	SkillMagery
	SkillMagicResist
	SkillTactics
	SkillSnooping
	SkillMusicianship
	SkillPoisoning
	SkillArchery
	SkillSpiritSpeak
	SkillStealing
	SkillTailoring
	SkillAnimalTaming
	SkillTasteID
	SkillTinkering
	SkillTracking
	SkillVeterinary
	SkillSwords
	SkillMacing
	SkillFencing
	SkillWrestling
	SkillLumberjacking
	SkillMining
	SkillMeditation
	SkillStealth
	SkillRemoveTrap
	SkillNecromancy
	SkillFocus
	SkillChivalry
	SkillBushido
	SkillNinjitsu
	SkillSpellweaving
	SkillMysticism
	SkillImbuing
	SkillThrowing

	// SkillCount is the size of every entity skill table.
	SkillCount = int(SkillThrowing) + 1
)

var skillNames = [SkillCount]string{
	"Alchemy", "Anatomy", "Animal Lore", "Item Identification", "Arms Lore",
	"Parrying", "Begging", "Blacksmithy", "Bowcraft/Fletching", "Peacemaking",
	"Camping", "Carpentry", "Cartography", "Cooking", "Detecting Hidden",
	"Discordance", "Evaluating Intelligence", "Healing", "Fishing", "Forensic Evaluation",
	"Herding", "Hiding", "Provocation", "Inscription", "Lockpicking",
	"Magery", "Resisting Spells", "Tactics", "Snooping", "Musicianship",
	"Poisoning", "Archery", "Spirit Speak", "Stealing", "Tailoring",
	"Animal Taming", "Taste Identification", "Tinkering", "Tracking", "Veterinary",
	"Swordsmanship", "Mace Fighting", "Fencing", "Wrestling", "Lumberjacking",
	"Mining", "Meditation", "Stealth", "Remove Trap", "Necromancy",
	"Focus", "Chivalry", "Bushido", "Ninjitsu", "Spellweaving",
	"Mysticism", "Imbuing", "Throwing",
}

// Valid reports whether s is a known skill id.
func (s SkillName) Valid() bool {
	return s >= 0 && int(s) < SkillCount
}

// String returns the display name of the skill.
func (s SkillName) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return skillNames[s]
}

// SkillValue is one (skill, value) pair as submitted by the client or
// listed by a profession. Value is in whole points (0-100).
type SkillValue struct {
	Skill SkillName `yaml:"skill"`
	Value int32     `yaml:"value"`
}

// SkillByName returns the skill whose display name matches name, case-insensitive.
func SkillByName(name string) (SkillName, bool) {
	for i, n := range skillNames {
		if strings.EqualFold(n, name) {
			return SkillName(i), true
		}
	}
	return 0, false
}

// UnmarshalText accepts a numeric skill id or a display name.
// Out-of-range ids are kept as is; creation skips them.
func (s *SkillName) UnmarshalText(text []byte) error {
	str := strings.TrimSpace(string(text))
	if id, err := strconv.Atoi(str); err == nil {
		*s = SkillName(id)
		return nil
	}
	v, ok := SkillByName(str)
	if !ok {
		return fmt.Errorf("unknown skill %q", str)
	}
	*s = v
	return nil
}
