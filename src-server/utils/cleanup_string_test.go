package utils_test

import (
	"testing"

	"gridcal/src-server/utils"
)

func TestCleanupSummary(t *testing.T) {
	cases := map[string]string{
		"  team   standup. ": "Team standup",
		"lunch":              "Lunch",
		"BIG MEETING":        "BIG MEETING",
		"":                   "",
		"   ":                "",
	}
	for input, want := range cases {
		if got := utils.CleanupSummary(input); got != want {
			t.Errorf("CleanupSummary(%q): want %q, got %q", input, want, got)
		}
	}
}
