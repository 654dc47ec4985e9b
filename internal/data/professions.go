package data

// ProfessionCustom is the profession id for a free-form stat/skill allocation.
const ProfessionCustom int32 = 0

// Profession is a starting template: a fixed stat triple and a fixed skill list.
type Profession struct {
	ID     int32
	Name   string
	Str    int32
	Dex    int32
	Int    int32
	Skills []SkillValue
}

// professions indexed by id. Index 0 (custom) has no template.
var professions = [...]*Profession{
	1: {
		ID: 1, Name: "Warrior", Str: 45, Dex: 35, Int: 10,
		Skills: []SkillValue{
			{SkillSwords, 30}, {SkillParry, 30}, {SkillTactics, 30}, {SkillAnatomy, 30},
		},
	},
	2: {
		ID: 2, Name: "Magician", Str: 25, Dex: 20, Int: 45,
		Skills: []SkillValue{
			{SkillMagery, 30}, {SkillEvalInt, 30}, {SkillMeditation, 30}, {SkillWrestling, 30},
		},
	},
	3: {
		ID: 3, Name: "Blacksmith", Str: 60, Dex: 15, Int: 15,
		Skills: []SkillValue{
			{SkillMining, 30}, {SkillArmsLore, 30}, {SkillBlacksmith, 30}, {SkillTinkering, 30},
		},
	},
	4: {
		ID: 4, Name: "Necromancer", Str: 25, Dex: 20, Int: 45,
		Skills: []SkillValue{
			{SkillNecromancy, 30}, {SkillSpiritSpeak, 30}, {SkillMeditation, 30}, {SkillWrestling, 30},
		},
	},
	5: {
		ID: 5, Name: "Paladin", Str: 45, Dex: 20, Int: 25,
		Skills: []SkillValue{
			{SkillMacing, 30}, {SkillChivalry, 30}, {SkillFocus, 30}, {SkillTactics, 30},
		},
	},
	6: {
		ID: 6, Name: "Samurai", Str: 40, Dex: 30, Int: 20,
		Skills: []SkillValue{
			{SkillSwords, 30}, {SkillBushido, 30}, {SkillAnatomy, 30}, {SkillHealing, 30},
		},
	},
	7: {
		ID: 7, Name: "Ninja", Str: 40, Dex: 30, Int: 20,
		Skills: []SkillValue{
			{SkillNinjitsu, 30}, {SkillHiding, 30}, {SkillFencing, 30}, {SkillStealth, 30},
		},
	},
}

// GetProfession returns the template for id.
// Returns nil for the custom profession and for unknown ids.
func GetProfession(id int32) *Profession {
	if id <= 0 || int(id) >= len(professions) {
		return nil
	}
	return professions[id]
}

// IsBasicProfession reports whether id is one of the four classic choices
// (custom, warrior, magician, blacksmith), which start with plain clothing.
func IsBasicProfession(id int32) bool {
	return id >= 0 && id <= 3
}
