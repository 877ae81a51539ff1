package recommend

import "sort"

// sortByScore orders candidates by score, highest first. Equal scores keep
// their current relative order.
func sortByScore(cs []candidate) {
	sort.SliceStable(cs, func(i, j int) bool {
		return cs[i].score > cs[j].score
	})
}

// diversify looks at the first min(limit, len(cs)) candidates of an already
// sorted slice. If some country holds more than limit/2 of those slots, every
// candidate from any other country gets +1 and " Diversity bonus." appended
// to its reason. Only the first over-represented country found (scanning cs in
// order) triggers the bonus, and it fires at most once. It reports whether the
// bonus was applied.
func diversify(cs []candidate, limit int) bool {
	top := min(limit, len(cs))
	counts := make(map[string]int, top)
	for _, c := range cs[:top] {
		counts[c.country]++
	}

	for _, c := range cs {
		if counts[c.country] <= limit/2 {
			continue
		}
		dominant := c.country
		for i := range cs {
			if cs[i].country != dominant {
				cs[i].score++
				cs[i].reason += " Diversity bonus."
			}
		}
		return true
	}
	return false
}
