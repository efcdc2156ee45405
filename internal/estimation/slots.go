package estimation

// slotsProbability is the chance that slots draws without replacement from a pool
// of total weight contain every target. Distinct orderings of targets and other
// mods are summed; an other draw always succeeds and removes OtherModWeightShare
// of the remaining pool.
func slotsProbability(total float64, targets []float64, slots int) float64 {
	if len(targets) > slots {
		return 0
	}
	if len(targets) == 0 {
		return 1
	}

	used := make([]bool, len(targets))
	var walk func(depth, others int, remaining float64) float64
	walk = func(depth, others int, remaining float64) float64 {
		if depth == slots {
			return 1
		}

		sum := 0.0
		for i, w := range targets {
			if used[i] || w <= 0 || remaining <= 0 {
				continue
			}
			used[i] = true
			sum += w / remaining * walk(depth+1, others, remaining-w)
			used[i] = false
		}
		// Other mods are interchangeable so each depth tries them once
		if others > 0 {
			sum += walk(depth+1, others-1, remaining*(1-OtherModWeightShare))
		}
		return sum
	}

	return walk(0, slots-len(targets), total)
}
