package database

import (
	"github.com/rs/zerolog/log"

	"github.com/3d-debian/portfolio-backend/models"
)

// seed populates the sample portfolio content: six projects, one pre-approved
// placeholder review and the default social links. It exists purely so the
// site is not empty before a real database is attached.
func seed(d Database) {
	for _, insert := range sampleProjects() {
		if _, err := d.ProjectRepo().Add(insert); err != nil {
			log.Error().Err(err).Str("title", insert.Title).Msg("Failed to seed project")
		}
	}

	review, err := d.ReviewRepo().Add(placeholderReview())
	if err != nil {
		log.Error().Err(err).Msg("Failed to seed review")
	} else if _, err := d.ReviewRepo().Approve(review.ID); err != nil {
		log.Error().Err(err).Msg("Failed to approve seeded review")
	}

	if _, err := d.SocialLinkRepo().Update(defaultSocialLinks()); err != nil {
		log.Error().Err(err).Msg("Failed to seed social links")
	}
}

func sampleProjects() []models.InsertProject {
	return []models.InsertProject{
		{
			Title:       "Parking Management System",
			Description: "Developed a real-time smart parking system for digital vehicle slot management and tracking. Created responsive frontend in React.js and connected it with Express.js and MongoDB for efficient backend data flow.",
			Category:    models.CategoryWeb,
			ImageURL:    "https://images.unsplash.com/photo-1573348722427-f1d6819fdf98",
			Tags:        []string{"React", "Express", "MongoDB"},
			LiveURL:     strPtr("https://example.com"),
			CodeURL:     strPtr("https://github.com"),
		},
		{
			Title:       "Hand Gesture Recognition",
			Description: "An experimental BTech project exploring computer vision and gesture inputs for automation and accessibility use-cases.",
			Category:    models.CategoryApp,
			ImageURL:    "https://images.unsplash.com/photo-1590845947376-2638caa89309",
			Tags:        []string{"Computer Vision", "ML", "Python"},
		},
		{
			Title:       "College Website Backend",
			Description: "As a web development intern, I helped develop and maintain the backend of the college website, improving data flow, authentication, and integration with frontend modules.",
			Category:    models.CategoryWeb,
			ImageURL:    "https://images.unsplash.com/photo-1577985051167-0d49eec21977",
			Tags:        []string{"Node.js", "Express", "Firebase", "MongoDB"},
		},
		{
			Title:       "Portfolio Design",
			Description: "Created modern and clean portfolio design with interactive elements and responsive layout.",
			Category:    models.CategoryPoster,
			ImageURL:    "https://images.unsplash.com/photo-1561070791-2526d30994b5",
			Tags:        []string{"Design", "Figma", "UI/UX"},
			LiveURL:     strPtr("https://dribbble.com"),
		},
		{
			Title:       "E-commerce Platform",
			Description: "Modern e-commerce solution with integrated payment gateways and inventory management.",
			Category:    models.CategoryWeb,
			ImageURL:    "https://images.unsplash.com/photo-1561070791-36c11767b26a",
			Tags:        []string{"React", "Node.js", "Express"},
			LiveURL:     strPtr("https://example.com/dashboard"),
			CodeURL:     strPtr("https://github.com/dashboard"),
		},
		{
			Title:       "React Native Mobile App",
			Description: "Mobile application with user authentication, data persistence, and responsive UI.",
			Category:    models.CategoryApp,
			ImageURL:    "https://images.unsplash.com/photo-1555774698-0b77e0d5fac6",
			Tags:        []string{"React Native", "Firebase", "Redux"},
			LiveURL:     strPtr("https://appstore.com/app"),
			CodeURL:     strPtr("https://github.com/app"),
		},
	}
}

func placeholderReview() models.InsertReview {
	return models.InsertReview{
		Name:        "Portfolio Note",
		Email:       "info@example.com",
		Company:     strPtr("Chandigarh Engineering College"),
		Rating:      5,
		Comment:     "New to freelancing! This section will soon feature real client testimonials as I begin working on more projects. My academic work and internship received positive feedback for clean code and effective problem-solving.",
		ProjectType: strPtr(models.CategoryWeb),
	}
}

func defaultSocialLinks() models.InsertSocialLink {
	return models.InsertSocialLink{
		Github:    "https://github.com/3d-debian",
		Linkedin:  "https://linkedin.com/in/3d-debian",
		Instagram: "https://instagram.com/3d-debian",
		Facebook:  "",
	}
}

func strPtr(s string) *string {
	return &s
}
