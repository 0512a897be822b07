//nolint:testpackage // Testing internal detector requires same package access
package detector

import (
	"testing"

	"github.com/llumos/brand-detector/internal/domain"
)

func TestRank_MentionCountDescending(t *testing.T) {
	in := []domain.Candidate{
		{NormalizedName: "one", MentionCount: 1},
		{NormalizedName: "three", MentionCount: 3},
		{NormalizedName: "two", MentionCount: 2},
	}

	out := Rank(in, 0)

	want := []string{"three", "two", "one"}
	for i, name := range want {
		if out[i].NormalizedName != name {
			t.Errorf("rank %d: got %q, want %q", i, out[i].NormalizedName, name)
		}
	}
}

func TestRank_TiesBrokenByEarlierPosition(t *testing.T) {
	in := []domain.Candidate{
		{NormalizedName: "late", MentionCount: 2, FirstPositionRatio: 0.9},
		{NormalizedName: "early", MentionCount: 2, FirstPositionRatio: 0.1},
	}

	out := Rank(in, 0)

	if out[0].NormalizedName != "early" {
		t.Errorf("tie break failed: got %q first", out[0].NormalizedName)
	}
}

func TestRank_NotFoundSentinelRanksLast(t *testing.T) {
	in := []domain.Candidate{
		{NormalizedName: "absent", MentionCount: 1, FirstPositionRatio: domain.PositionNotFound},
		{NormalizedName: "present", MentionCount: 1, FirstPositionRatio: 0.5},
	}

	out := Rank(in, 0)

	if out[0].NormalizedName != "present" {
		t.Errorf("sentinel must rank after a located mention, got %q first", out[0].NormalizedName)
	}
}

func TestRank_Truncates(t *testing.T) {
	in := []domain.Candidate{
		{NormalizedName: "a", MentionCount: 3},
		{NormalizedName: "b", MentionCount: 2},
		{NormalizedName: "c", MentionCount: 1},
	}

	out := Rank(in, 2)
	if len(out) != 2 {
		t.Fatalf("length: got %d, want 2", len(out))
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	in := []domain.Candidate{
		{NormalizedName: "b", MentionCount: 1},
		{NormalizedName: "a", MentionCount: 2},
	}

	_ = Rank(in, 1)

	if in[0].NormalizedName != "b" || len(in) != 2 {
		t.Error("input slice was mutated")
	}
}

func TestRank_StableForEqualCandidates(t *testing.T) {
	in := []domain.Candidate{
		{NormalizedName: "first", MentionCount: 1, FirstPositionRatio: 0.5},
		{NormalizedName: "second", MentionCount: 1, FirstPositionRatio: 0.5},
	}

	out := Rank(in, 0)

	if out[0].NormalizedName != "first" || out[1].NormalizedName != "second" {
		t.Error("equal candidates must keep their original order")
	}
}
