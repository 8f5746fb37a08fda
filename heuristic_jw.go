package dpll

// JeroslowWang implements strategy S3: two-sided Jeroslow-Wang. Each
// literal l accumulates J(l) = Σ 2^-|C| over clauses C containing l; each
// unassigned variable scores max(J(v), J(¬v)); the maximum scorer wins,
// tie-broken by smallest variable id, and the first phase tried is
// whichever polarity scored higher.
type JeroslowWang struct{}

func (JeroslowWang) Choose(store *ClauseStore, a *Assignment) (int, bool, bool) {
	posScore := make(map[int]float64)
	negScore := make(map[int]float64)
	for _, c := range store.Clauses() {
		weight := jwWeight(c.Len())
		for _, lit := range c.Lits {
			if lit.Positive() {
				posScore[lit.Var()] += weight
			} else {
				negScore[lit.Var()] += weight
			}
		}
	}

	bestVar := 0
	bestScore := -1.0
	bestPhase := true
	for v := range mergeKeysFloat(posScore, negScore) {
		if _, assigned := a.Value(v); assigned {
			continue
		}
		p, n := posScore[v], negScore[v]
		score := p
		phase := true
		if n > p {
			score = n
			phase = false
		}
		if score > bestScore || (score == bestScore && (bestVar == 0 || v < bestVar)) {
			bestScore = score
			bestVar = v
			bestPhase = phase
		}
	}
	if bestVar == 0 {
		return 0, false, false
	}
	return bestVar, bestPhase, true
}

func jwWeight(clauseLen int) float64 {
	return 1.0 / float64(uint64(1)<<uint(clauseLen))
}

func mergeKeysFloat(a, b map[int]float64) map[int]struct{} {
	keys := make(map[int]struct{}, len(a)+len(b))
	for k := range a {
		keys[k] = struct{}{}
	}
	for k := range b {
		keys[k] = struct{}{}
	}
	return keys
}
