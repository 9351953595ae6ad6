package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prakash/ats-cv-generator/internal/types"
)

func TestDegreePriority_Doctorate(t *testing.T) {
	assert.Equal(t, 100, DegreePriority("PhD in Computer Science"))
	assert.Equal(t, 100, DegreePriority("Doctorate"))
}

func TestDegreePriority_Masters(t *testing.T) {
	assert.Equal(t, 95, DegreePriority("M.Tech"))
	assert.Equal(t, 90, DegreePriority("MCA"))
	assert.Equal(t, 88, DegreePriority("MBA"))
	assert.Equal(t, 85, DegreePriority("Master of Science"))
	assert.Equal(t, 80, DegreePriority("Master of Arts"))
}

func TestDegreePriority_Bachelors(t *testing.T) {
	assert.Equal(t, 75, DegreePriority("B.Tech in Computer Science"))
	assert.Equal(t, 70, DegreePriority("BCA"))
	assert.Equal(t, 65, DegreePriority("B.Sc Physics"))
	assert.Equal(t, 60, DegreePriority("Bachelor of Arts"))
}

func TestDegreePriority_School(t *testing.T) {
	assert.Equal(t, 40, DegreePriority("Class XII"))
	assert.Equal(t, 40, DegreePriority("Senior Secondary"))
	assert.Equal(t, 30, DegreePriority("Matriculation"))
}

func TestDegreePriority_UnknownDefault(t *testing.T) {
	assert.Equal(t, 20, DegreePriority("Certificate Course"))
}

func TestSortEducation_HighestPriorityFirst(t *testing.T) {
	entries := []types.Education{
		{Degree: "Class XII", CollegeName: "City School"},
		{Degree: "B.Tech", CollegeName: "State University"},
		{Degree: "M.Tech", CollegeName: "Tech Institute"},
	}

	sorted := sortEducation(entries)

	assert.Equal(t, "M.Tech", sorted[0].Degree)
	assert.Equal(t, "B.Tech", sorted[1].Degree)
	assert.Equal(t, "Class XII", sorted[2].Degree)
}

func TestSortEducation_EqualPriorityKeepsProfileOrder(t *testing.T) {
	entries := []types.Education{
		{Degree: "B.Tech CSE", CollegeName: "First"},
		{Degree: "B.Tech ECE", CollegeName: "Second"},
	}

	sorted := sortEducation(entries)

	assert.Equal(t, "First", sorted[0].CollegeName)
	assert.Equal(t, "Second", sorted[1].CollegeName)
}

func TestSortEducation_DoesNotMutateInput(t *testing.T) {
	entries := []types.Education{
		{Degree: "Class XII"},
		{Degree: "M.Tech"},
	}

	sortEducation(entries)

	assert.Equal(t, "Class XII", entries[0].Degree)
}

func TestIsPercentageGrade_PercentSign(t *testing.T) {
	assert.True(t, isPercentageGrade("85%"))
}

func TestIsPercentageGrade_NumericAboveCGPACeiling(t *testing.T) {
	assert.True(t, isPercentageGrade("85"))
	assert.True(t, isPercentageGrade("10.5"))
}

func TestIsPercentageGrade_CGPA(t *testing.T) {
	assert.False(t, isPercentageGrade("8.7"))
	assert.False(t, isPercentageGrade("10"))
}

func TestIsPercentageGrade_NonNumeric(t *testing.T) {
	assert.False(t, isPercentageGrade("First Class"))
}
