package creation

// Stat budgets: the exact sum of str+dex+int for a new character.
const (
	LegacyStatBudget = 80
	StatBudget       = 90

	// StatBaseline is the minimum value of each attribute.
	StatBaseline = 10
	// StatCeiling is the maximum starting value of each attribute.
	StatCeiling = 60
)

// Stats is a finalized attribute triple.
type Stats struct {
	Str int32
	Dex int32
	Int int32
}

// Sum returns Str+Dex+Int.
func (s Stats) Sum() int32 { return s.Str + s.Dex + s.Int }

// MinimumStats is the fallback triple used when balancing fails.
var MinimumStats = Stats{Str: StatBaseline, Dex: StatBaseline, Int: StatBaseline}

// BudgetFor returns the stat budget for a session.
func BudgetFor(s *Session) int32 {
	if s != nil && s.NewCharacterCreation {
		return StatBudget
	}
	return LegacyStatBudget
}

// Balance scales a requested triple so that it sums to budget.
//
// Each attribute contributes its surplus over the baseline (never negative).
// Surpluses are scaled to budget-30, truncated, and the rounding residual is
// removed by three sequential correct-and-clamp steps: str, then dex, then int.
// Each step sees the total left by the previous one.
func Balance(str, dex, intel, budget int32) Stats {
	target := budget - 3*StatBaseline

	vStr := max(str-StatBaseline, 0)
	vDex := max(dex-StatBaseline, 0)
	vInt := max(intel-StatBaseline, 0)

	total := vStr + vDex + vInt
	if total == 0 || total == target {
		return Stats{Str: vStr + StatBaseline, Dex: vDex + StatBaseline, Int: vInt + StatBaseline}
	}

	scalar := float64(target) / float64(total)
	vStr = int32(float64(vStr) * scalar)
	vDex = int32(float64(vDex) * scalar)
	vInt = int32(float64(vInt) * scalar)

	vStr = correctStat(vStr, vStr+vDex+vInt-target, target)
	vDex = correctStat(vDex, vStr+vDex+vInt-target, target)
	vInt = correctStat(vInt, vStr+vDex+vInt-target, target)

	return Stats{Str: vStr + StatBaseline, Dex: vDex + StatBaseline, Int: vInt + StatBaseline}
}

// correctStat removes residual from stat and clamps the result to [0, limit].
func correctStat(stat, residual, limit int32) int32 {
	stat -= residual
	if stat < 0 {
		return 0
	}
	if stat > limit {
		return limit
	}
	return stat
}

// Valid reports whether every attribute is in [10, 60] and the sum is exactly budget.
func (s Stats) Valid(budget int32) bool {
	for _, v := range [...]int32{s.Str, s.Dex, s.Int} {
		if v < StatBaseline || v > StatCeiling {
			return false
		}
	}
	return s.Sum() == budget
}

// FinalizeStats balances a requested triple and enforces the result bounds.
// An out-of-bounds result is replaced by MinimumStats; fellBack reports that.
func FinalizeStats(str, dex, intel, budget int32) (stats Stats, fellBack bool) {
	stats = Balance(str, dex, intel, budget)
	if !stats.Valid(budget) {
		return MinimumStats, true
	}
	return stats, false
}
