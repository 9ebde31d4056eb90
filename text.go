package main

import "github.com/biancatraining/promenade/internal/resume"

var defaultResume = resume.Resume{
	Profile: resume.Profile{
		Name:    "Bianca Mattiello",
		Title:   "Positive Dog Trainer",
		Tagline: "Building unbreakable bonds through trust, play, and positive reinforcement.",
	},
	Qualifications: []resume.Qualification{
		{
			Year:        "2023",
			Title:       "Certified Professional Dog Trainer (CPDT-KA)",
			Description: "Demonstrated mastery of positive training methodologies and canine behavioral science.",
			Color:       resume.Pink,
		},
		{
			Year:        "2021",
			Title:       "Fear Free Certified Animal Trainer",
			Description: "Specialized in preventing and alleviating fear, anxiety, and stress in pets.",
			Color:       resume.Yellow,
		},
		{
			Year:        "2019",
			Title:       "Canine Good Citizen Evaluator",
			Description: "AKC-certified to evaluate and train dogs in good citizenship behaviors.",
			Color:       resume.Turquoise,
		},
	},
	Philosophies: []resume.Philosophy{
		{
			Title:       "Consent-Based",
			Description: "We listen to the dog. Allowing choice builds confidence and prevents reactivity.",
			Icon:        "heart",
			Color:       resume.Pink,
		},
		{
			Title:       "Force-Free",
			Description: "No pain, no fear, no force. Every training session is a positive, rewarding experience.",
			Icon:        "check-circle",
			Color:       resume.Turquoise,
		},
		{
			Title:       "Joyful Learning",
			Description: "Training should feel like a game. We optimize for fun and enthusiastic cooperation.",
			Icon:        "check-circle",
			Color:       resume.Yellow,
		},
	},
	Contact: resume.Contact{
		Email:     "hello@biancatraining.com",
		Location:  "São Paulo, SP",
		Instagram: "@biancadogtraining",
		Facebook:  "/biancadogtraining",
	},
	Copy: resume.Copy{
		CallToAction:        "Start the Walk",
		JourneyHeading:      "The Journey So Far",
		JourneyIntro:        "Milestones along the path to continuous learning.",
		PhilosophyHeading:   "Training Philosophy",
		PhilosophyIntro:     "The core values driving positive reinforcement.",
		ContactHeading:      "End of the Trail.",
		ContactIntro:        "Ready to bond, play, and learn? Let’s begin your dog's positive reinforcement journey.",
		ContactCallToAction: "Get in Touch",
	},
}
