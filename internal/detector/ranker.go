package detector

import (
	"sort"

	"github.com/llumos/brand-detector/internal/domain"
)

// Rank sorts competitors by descending mention count, breaking ties by
// ascending first-position ratio (earlier mention wins), and truncates to
// maxResults. Stable so equal candidates keep their extraction order.
func Rank(competitors []domain.Candidate, maxResults int) []domain.Candidate {
	ranked := make([]domain.Candidate, len(competitors))
	copy(ranked, competitors)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].MentionCount != ranked[j].MentionCount {
			return ranked[i].MentionCount > ranked[j].MentionCount
		}
		return ranked[i].FirstPositionRatio < ranked[j].FirstPositionRatio
	})

	if maxResults > 0 && len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}
	return ranked
}
