package rendering

import (
	"sort"
	"strconv"
	"strings"

	"github.com/prakash/ats-cv-generator/internal/types"
)

// defaultDegreePriority applies to degrees matching no known pattern.
const defaultDegreePriority = 20

// degreePattern maps degree name substrings to a display priority.
// Patterns are checked in order; the first match wins.
type degreePattern struct {
	substrings []string
	priority   int
}

var degreePatterns = []degreePattern{
	{[]string{"phd", "doctorate"}, 100},
	{[]string{"mtech", "m.tech"}, 95},
	{[]string{"mca", "master of computer"}, 90},
	{[]string{"mba", "master of business"}, 88},
	{[]string{"msc", "m.sc", "master of science"}, 85},
	{[]string{"master"}, 80},
	{[]string{"btech", "b.tech"}, 75},
	{[]string{"bca", "bachelor of computer"}, 70},
	{[]string{"bba", "bachelor of business"}, 68},
	{[]string{"bsc", "b.sc", "bachelor of science"}, 65},
	{[]string{"bachelor"}, 60},
	{[]string{"diploma"}, 50},
	{[]string{"xii", "12th", "12", "senior secondary", "intermediate"}, 40},
	{[]string{"x", "10th", "10", "secondary", "matriculation"}, 30},
}

// DegreePriority returns the display priority of a degree name.
// Higher priorities render first.
func DegreePriority(degree string) int {
	lower := strings.ToLower(degree)
	for _, pattern := range degreePatterns {
		for _, substr := range pattern.substrings {
			if strings.Contains(lower, substr) {
				return pattern.priority
			}
		}
	}
	return defaultDegreePriority
}

// sortEducation orders entries by degree priority, highest first.
// Entries with equal priority keep their profile order.
func sortEducation(entries []types.Education) []types.Education {
	sorted := make([]types.Education, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return DegreePriority(sorted[i].Degree) > DegreePriority(sorted[j].Degree)
	})
	return sorted
}

// isPercentageGrade reports whether a raw grade string should render as a
// percentage rather than a CGPA. Percent signs always win; otherwise any
// numeric value above the CGPA ceiling of 10 is treated as a percentage.
func isPercentageGrade(raw string) bool {
	if strings.Contains(raw, "%") {
		return true
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(raw, "%", "")), 64)
	if err != nil {
		return false
	}
	return value > 10
}
