// Package catalog holds the static career catalog and demand-score table.
// The data is loaded once at process start and never mutated.
package catalog

import (
	"strings"

	"career-guidance/internal/models"
)

const defaultDemandScore = 5

var careerData = []models.Career{
	{
		ID:                      "data-scientist",
		Title:                   "Data Scientist",
		Description:             "Analyze complex data sets to extract insights and drive business decisions",
		Category:                "Technology",
		DifficultyLevel:         "Advanced",
		EstimatedDurationMonths: 18,
		RequiredSkills:          []string{"Python", "Statistics", "Machine Learning", "SQL"},
		SalaryRangeMin:          80000,
		SalaryRangeMax:          150000,
		JobOutlook:              "Excellent",
	},
	{
		ID:                      "software-engineer",
		Title:                   "Software Engineer",
		Description:             "Design, develop, and maintain software applications and systems",
		Category:                "Technology",
		DifficultyLevel:         "Intermediate",
		EstimatedDurationMonths: 12,
		RequiredSkills:          []string{"Programming", "Problem Solving", "System Design", "Collaboration"},
		SalaryRangeMin:          70000,
		SalaryRangeMax:          130000,
		JobOutlook:              "Excellent",
	},
	{
		ID:                      "digital-marketing",
		Title:                   "Digital Marketing Specialist",
		Description:             "Develop and implement online marketing strategies to grow businesses",
		Category:                "Marketing",
		DifficultyLevel:         "Beginner",
		EstimatedDurationMonths: 6,
		RequiredSkills:          []string{"Marketing", "Analytics", "Creativity", "Communication"},
		SalaryRangeMin:          45000,
		SalaryRangeMax:          80000,
		JobOutlook:              "Good",
	},
	{
		ID:                      "financial-analyst",
		Title:                   "Financial Analyst",
		Description:             "Evaluate financial data and advise on investment decisions",
		Category:                "Finance",
		DifficultyLevel:         "Intermediate",
		EstimatedDurationMonths: 9,
		RequiredSkills:          []string{"Financial Analysis", "Excel", "Research", "Attention to Detail"},
		SalaryRangeMin:          55000,
		SalaryRangeMax:          95000,
		JobOutlook:              "Good",
	},
	{
		ID:                      "healthcare-admin",
		Title:                   "Healthcare Administrator",
		Description:             "Manage healthcare facilities and coordinate patient care services",
		Category:                "Healthcare",
		DifficultyLevel:         "Intermediate",
		EstimatedDurationMonths: 12,
		RequiredSkills:          []string{"Healthcare Knowledge", "Leadership", "Organization", "Communication"},
		SalaryRangeMin:          50000,
		SalaryRangeMax:          90000,
		JobOutlook:              "Excellent",
	},
	{
		ID:                      "ui-ux-designer",
		Title:                   "UI/UX Designer",
		Description:             "Create user-friendly digital experiences and interfaces",
		Category:                "Technology",
		DifficultyLevel:         "Intermediate",
		EstimatedDurationMonths: 10,
		RequiredSkills:          []string{"Design", "User Research", "Prototyping", "Creativity"},
		SalaryRangeMin:          60000,
		SalaryRangeMax:          110000,
		JobOutlook:              "Good",
	},
}

// demandScores holds 1-10 market-demand ratings from market research.
var demandScores = map[string]int{
	"data-scientist":    9,
	"software-engineer": 10,
	"digital-marketing": 7,
	"financial-analyst": 8,
	"healthcare-admin":  9,
	"ui-ux-designer":    8,
}

// Catalog provides read-only access to the career table.
type Catalog struct {
	careers []models.Career
	byID    map[string]*models.Career
	demand  map[string]int
}

// New builds the catalog from the static seed data.
func New() *Catalog {
	c := &Catalog{
		careers: careerData,
		byID:    make(map[string]*models.Career, len(careerData)),
		demand:  demandScores,
	}
	for i := range c.careers {
		c.byID[c.careers[i].ID] = &c.careers[i]
	}
	return c
}

// All returns every career in catalog order.
func (c *Catalog) All() []models.Career {
	return c.careers
}

// ByID returns the career with the given ID, or false when absent.
func (c *Catalog) ByID(id string) (models.Career, bool) {
	career, ok := c.byID[id]
	if !ok {
		return models.Career{}, false
	}
	return *career, true
}

// DemandScore returns the 1-10 demand rating for a career, defaulting to 5
// when the career has no entry.
func (c *Catalog) DemandScore(id string) int {
	if score, ok := c.demand[id]; ok {
		return score
	}
	return defaultDemandScore
}

// ByCategory returns careers whose category matches, case-insensitive.
func (c *Catalog) ByCategory(category string) []models.Career {
	var out []models.Career
	for _, career := range c.careers {
		if strings.EqualFold(career.Category, category) {
			out = append(out, career)
		}
	}
	return out
}

// ByDifficulty returns careers whose difficulty level matches, case-insensitive.
func (c *Catalog) ByDifficulty(level string) []models.Career {
	var out []models.Career
	for _, career := range c.careers {
		if strings.EqualFold(career.DifficultyLevel, level) {
			out = append(out, career)
		}
	}
	return out
}

// Search returns careers whose title, description, or category contains the
// query, case-insensitive.
func (c *Catalog) Search(query string) []models.Career {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.careers
	}
	var out []models.Career
	for _, career := range c.careers {
		if strings.Contains(strings.ToLower(career.Title), q) ||
			strings.Contains(strings.ToLower(career.Description), q) ||
			strings.Contains(strings.ToLower(career.Category), q) {
			out = append(out, career)
		}
	}
	return out
}

// Size returns the number of catalog entries.
func (c *Catalog) Size() int {
	return len(c.careers)
}
