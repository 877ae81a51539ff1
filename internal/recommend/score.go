package recommend

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkordes/travel-recommender/backend/internal/domain"
)

// interestPriorities counts how often each tag appears in the request.
// A tag listed three times has priority 3.
func interestPriorities(interests []string) map[string]int {
	p := make(map[string]int, len(interests))
	for _, tag := range interests {
		p[tag]++
	}
	return p
}

// score rates one feasible destination. dest is the catalog record and o the
// offer computed by project. It reports false when the candidate shares no
// interest with the request or ends with a score of zero or less.
//
// Points:
//
//	duration fits dest.MinDuration       +2, otherwise -(shortfall in days)
//	preferred country (case-insensitive)  +2
//	price above request max budget        -2
//	price within [min, max] budget        +3
//	price below request min budget        +1
//	each requested tag dest offers        +2 × that tag's priority
func score(req domain.RecommendationRequest, priorities map[string]int, dest domain.Destination, o offer) (candidate, bool) {
	var (
		total  int
		reason reasonBuilder
	)

	if req.Duration >= dest.MinDuration {
		total += 2
		reason.add("Fits your duration.")
	} else {
		penalty := dest.MinDuration - req.Duration
		total -= penalty
		if penalty > 0 {
			reason.add("Not enough time.")
		}
	}

	if req.Country != "" && strings.EqualFold(req.Country, dest.Country) {
		total += 2
		reason.add("In your preferred country.")
	}

	userMin, userMax := 0, math.MaxInt
	if req.MinBudget != nil {
		userMin = *req.MinBudget
	}
	if req.MaxBudget != nil {
		userMax = *req.MaxBudget
	}
	switch {
	case o.price > userMax:
		total -= 2
		reason.add("Over budget.")
	case o.price >= userMin:
		total += 3
		reason.add("Fits your budget range.")
	default:
		total++
		reason.add("Under budget.")
	}

	// Every occurrence in the request counts, so a tag repeated n times adds
	// 2n per occurrence and n to the match counter per occurrence.
	matches, shared := 0, false
	for _, tag := range req.Interests {
		if !dest.Interests.Has(tag) {
			continue
		}
		shared = true
		total += 2 * priorities[tag]
		matches += priorities[tag]
	}
	if matches > 0 {
		reason.add(fmt.Sprintf("Matches %d of your interests.", matches))
	}

	if !shared || total <= 0 {
		return candidate{}, false
	}
	return candidate{
		snapshot: dest.Project(o.price, o.days),
		score:    total,
		reason:   reason.String(),
		country:  dest.Country,
	}, true
}
