package creation

import (
	"github.com/udisondev/charcreate/internal/data"
	"github.com/udisondev/charcreate/internal/model"
)

// FixedPointScale converts whole skill points to stored fixed-point values.
const FixedPointScale = 10

// AssignStats resolves the attribute triple for a profession.
// Template professions use their fixed triple; custom ones go through the balancer.
func AssignStats(profession int32, str, dex, intel, budget int32) (stats Stats, fellBack bool) {
	if p := data.GetProfession(profession); p != nil {
		return Stats{Str: p.Str, Dex: p.Dex, Int: p.Int}, false
	}
	return FinalizeStats(str, dex, intel, budget)
}

// FinalizeSkills returns the skill list a new character starts with.
// Template professions ignore requested entirely. A custom distribution that
// fails validation yields no skills and discarded=true.
func FinalizeSkills(profession int32, requested []data.SkillValue) (skills []data.SkillValue, discarded bool) {
	if p := data.GetProfession(profession); p != nil {
		return append([]data.SkillValue(nil), p.Skills...), false
	}
	if !ValidateSkillDistribution(requested) {
		return nil, true
	}
	return append([]data.SkillValue(nil), requested...), false
}

// grantsSkill reports whether a finalized pair is applied to the entity.
// Remove Trap and Spellweaving are never granted at creation; Stealth only
// to ninjas.
func grantsSkill(sv data.SkillValue, profession int32) bool {
	if sv.Value <= 0 || !sv.Skill.Valid() {
		return false
	}
	switch sv.Skill {
	case data.SkillRemoveTrap, data.SkillSpellweaving:
		return false
	case data.SkillStealth:
		return profession == 7
	}
	return true
}

// AssignSkills applies a finalized skill list to e and hands out the starter
// kit of every applied skill, in list order. Returns the applied pairs.
func AssignSkills(e *model.Entity, profession int32, skills []data.SkillValue, p *Provisioner) []data.SkillValue {
	applied := make([]data.SkillValue, 0, len(skills))
	for _, sv := range skills {
		if !grantsSkill(sv, profession) {
			continue
		}
		if !e.SetSkillBase(sv.Skill, sv.Value*FixedPointScale) {
			continue
		}
		applied = append(applied, sv)
		if p != nil {
			p.GiveSkillItems(e, sv.Skill)
		}
	}
	return applied
}
