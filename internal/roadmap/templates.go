package roadmap

import "career-guidance/internal/models"

// Step template slugs, in curriculum order.
const (
	StepFoundation              = "foundation"
	StepCoreKnowledge           = "core-knowledge"
	StepPracticalExperience     = "practical-experience"
	StepSpecialization          = "specialization"
	StepProfessionalDevelopment = "professional-development"
)

// buildSteps returns the five fixed curriculum phases. Resource contents are
// generic placeholders shared by every career; per-career curation would key
// off RequiredSkills, which the templates do not consume yet.
func buildSteps() []models.RoadmapStep {
	return []models.RoadmapStep{
		{
			ID:            StepFoundation,
			Title:         "Build Foundation Skills",
			Description:   "Develop the core skills needed for this career path",
			DurationWeeks: 8,
			Order:         1,
			IsCompleted:   false,
			Resources:     foundationResources(),
		},
		{
			ID:            StepCoreKnowledge,
			Title:         "Learn Core Knowledge",
			Description:   "Master the fundamental concepts and theories",
			DurationWeeks: 12,
			Order:         2,
			IsCompleted:   false,
			Resources:     coreKnowledgeResources(),
		},
		{
			ID:            StepPracticalExperience,
			Title:         "Gain Practical Experience",
			Description:   "Apply your knowledge through hands-on projects",
			DurationWeeks: 16,
			Order:         3,
			IsCompleted:   false,
			Resources:     practicalExperienceResources(),
		},
		{
			ID:            StepSpecialization,
			Title:         "Choose Specialization",
			Description:   "Focus on a specific area within your field",
			DurationWeeks: 10,
			Order:         4,
			IsCompleted:   false,
			Resources:     specializationResources(),
		},
		{
			ID:            StepProfessionalDevelopment,
			Title:         "Professional Development",
			Description:   "Build your professional network and portfolio",
			DurationWeeks: 8,
			Order:         5,
			IsCompleted:   false,
			Resources:     professionalDevelopmentResources(),
		},
	}
}

func foundationResources() []models.RoadmapResource {
	return []models.RoadmapResource{
		{
			ID:             "free-course-1",
			Title:          "Introduction to Career Fundamentals",
			Type:           models.ResourceTypeCourse,
			URL:            "https://example.com/free-course",
			Description:    "Free online course covering basic concepts",
			EstimatedHours: 20,
			IsFree:         true,
		},
		{
			ID:             "paid-course-1",
			Title:          "Comprehensive Foundation Course",
			Type:           models.ResourceTypeCourse,
			URL:            "https://example.com/paid-course",
			Description:    "In-depth course with certification",
			EstimatedHours: 40,
			IsFree:         false,
			Cost:           99,
		},
	}
}

func coreKnowledgeResources() []models.RoadmapResource {
	return []models.RoadmapResource{
		{
			ID:             "book-1",
			Title:          "Essential Career Guide",
			Type:           models.ResourceTypeBook,
			Description:    "Comprehensive book covering all aspects",
			EstimatedHours: 30,
			IsFree:         false,
			Cost:           25,
		},
		{
			ID:             "project-1",
			Title:          "Portfolio Project",
			Type:           models.ResourceTypeProject,
			Description:    "Build a real-world project to showcase skills",
			EstimatedHours: 50,
			IsFree:         true,
		},
	}
}

func practicalExperienceResources() []models.RoadmapResource {
	return []models.RoadmapResource{
		{
			ID:             "mentorship-1",
			Title:          "Career Mentorship Program",
			Type:           models.ResourceTypeMentorship,
			Description:    "One-on-one guidance from industry professionals",
			EstimatedHours: 10,
			IsFree:         false,
			Cost:           200,
		},
		{
			ID:             "certification-1",
			Title:          "Professional Certification",
			Type:           models.ResourceTypeCertification,
			Description:    "Industry-recognized certification",
			EstimatedHours: 40,
			IsFree:         false,
			Cost:           150,
		},
	}
}

func specializationResources() []models.RoadmapResource {
	return []models.RoadmapResource{
		{
			ID:             "specialized-course",
			Title:          "Advanced Specialization Course",
			Type:           models.ResourceTypeCourse,
			Description:    "Deep dive into specific area",
			EstimatedHours: 60,
			IsFree:         false,
			Cost:           199,
		},
	}
}

func professionalDevelopmentResources() []models.RoadmapResource {
	return []models.RoadmapResource{
		{
			ID:             "networking-event",
			Title:          "Industry Networking Events",
			Type:           models.ResourceTypeMentorship,
			Description:    "Attend conferences and meet professionals",
			EstimatedHours: 20,
			IsFree:         false,
			Cost:           100,
		},
	}
}
