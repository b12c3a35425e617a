package models

// Resource types attachable to a roadmap step.
const (
	ResourceTypeCourse        = "course"
	ResourceTypeBook          = "book"
	ResourceTypeProject       = "project"
	ResourceTypeCertification = "certification"
	ResourceTypeMentorship    = "mentorship"
)

// RoadmapResource is one learning resource attached to a roadmap step.
type RoadmapResource struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Type           string  `json:"type"`
	URL            string  `json:"url,omitempty"`
	Description    string  `json:"description"`
	EstimatedHours int     `json:"estimatedHours"`
	IsFree         bool    `json:"isFree"`
	Cost           float64 `json:"cost,omitempty"`
}

// RoadmapStep is one of the five fixed curriculum phases.
type RoadmapStep struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	DurationWeeks int               `json:"durationWeeks"`
	Resources     []RoadmapResource `json:"resources"`
	IsCompleted   bool              `json:"isCompleted"`
	Order         int               `json:"order"`
}

// CareerRoadmap is a generated learning plan for one career.
type CareerRoadmap struct {
	ID                      string        `json:"id"`
	CareerID                string        `json:"careerId"`
	Title                   string        `json:"title"`
	Description             string        `json:"description"`
	Steps                   []RoadmapStep `json:"steps"`
	EstimatedDurationMonths int           `json:"estimatedDurationMonths"`
	CurrentStep             int           `json:"currentStep"`
	IsCompleted             bool          `json:"isCompleted"`
	CreatedAt               string        `json:"createdAt"`
	UpdatedAt               string        `json:"updatedAt"`
}

// RoadmapProgress summarizes completion state across a roadmap's steps.
type RoadmapProgress struct {
	CompletedSteps          int `json:"completedSteps"`
	TotalSteps              int `json:"totalSteps"`
	ProgressPercentage      int `json:"progressPercentage"`
	EstimatedWeeksRemaining int `json:"estimatedWeeksRemaining"`
}
