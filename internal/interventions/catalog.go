package interventions

import "mindguard/internal/models"

// catalog is the static rule table, grouped by category.
var catalog = []models.Intervention{
	{
		Title:       "Progressive Muscle Relaxation",
		Category:    models.CategoryPhysical,
		Icon:        "💪",
		Duration:    "10-15 minutes",
		Difficulty:  "Beginner",
		BestTime:    "Evening",
		Description: "Systematically tense and release muscle groups to reduce physical tension and stress.",
		Benefits: []string{
			"Reduces muscle tension",
			"Improves sleep quality",
			"Lowers blood pressure",
			"Increases body awareness",
		},
		Steps: []string{
			"Find a comfortable position lying down or sitting",
			"Start with your toes - tense for 5 seconds, then release",
			"Move up through your legs, abdomen, arms, and face",
			"Hold each tension for 5 seconds, then relax for 10 seconds",
			"Notice the contrast between tension and relaxation",
			"End with 3 deep breaths",
		},
		Conditions: map[string]string{"stress_level": "high", "energy_level": "any"},
	},
	{
		Title:       "10-Minute Nature Walk",
		Category:    models.CategoryPhysical,
		Icon:        "🌳",
		Duration:    "10 minutes",
		Difficulty:  "Beginner",
		BestTime:    "Anytime",
		Description: "A short walk in nature to reset your mind and reduce stress hormones.",
		Benefits: []string{
			"Reduces cortisol levels",
			"Improves mood",
			"Increases vitamin D",
			"Provides fresh perspective",
		},
		Steps: []string{
			"Step outside to the nearest green space",
			"Walk at a comfortable pace",
			"Focus on your surroundings - trees, birds, sounds",
			"Take deep breaths of fresh air",
			"Notice how your body feels",
			"Return feeling refreshed",
		},
		Conditions: map[string]string{"stress_level": "moderate", "exercise_minutes": "low"},
	},
	{
		Title:       "Desk Yoga Sequence",
		Category:    models.CategoryPhysical,
		Icon:        "🧘‍♀️",
		Duration:    "5-8 minutes",
		Difficulty:  "Beginner",
		BestTime:    "Work breaks",
		Description: "Simple yoga stretches you can do at your desk to relieve tension.",
		Benefits: []string{
			"Relieves neck and shoulder tension",
			"Improves posture",
			"Increases circulation",
			"Reduces eye strain",
		},
		Steps: []string{
			"Neck rolls - slow circles in both directions",
			"Shoulder shrugs - lift and release",
			"Seated spinal twist - both sides",
			"Forward fold - reach for your toes",
			"Wrist circles and stretches",
			"Deep breathing to finish",
		},
		Conditions: map[string]string{"work_hours": "high", "stress_level": "moderate"},
	},
	{
		Title:       "4-7-8 Breathing Technique",
		Category:    models.CategoryMental,
		Icon:        "🌬️",
		Duration:    "3-5 minutes",
		Difficulty:  "Beginner",
		BestTime:    "When stressed",
		Description: "A powerful breathing pattern that activates the parasympathetic nervous system.",
		Benefits: []string{
			"Reduces anxiety quickly",
			"Lowers heart rate",
			"Improves focus",
			"Activates relaxation response",
		},
		Steps: []string{
			"Sit comfortably with your back straight",
			"Exhale completely through your mouth",
			"Close your mouth and inhale through nose for 4 counts",
			"Hold your breath for 7 counts",
			"Exhale through mouth for 8 counts",
			"Repeat 3-4 cycles",
		},
		GuidedScript: "Breathe in for 4... hold for 7... out for 8. Feel your body relaxing with each breath.",
		Conditions:   map[string]string{"stress_level": "high", "anxiety": "present"},
	},
	{
		Title:       "Mindful Observation Exercise",
		Category:    models.CategoryMental,
		Icon:        "👁️",
		Duration:    "5-10 minutes",
		Difficulty:  "Beginner",
		BestTime:    "Anytime",
		Description: "Practice mindfulness by observing your environment without judgment.",
		Benefits: []string{
			"Grounds you in the present",
			"Reduces racing thoughts",
			"Improves focus",
			"Develops mindfulness skills",
		},
		Steps: []string{
			"Choose an object or view to observe",
			"Look at it as if seeing it for the first time",
			"Notice colors, textures, shapes, shadows",
			"When your mind wanders, gently return focus",
			"Spend 30 seconds on each detail you notice",
			"End by appreciating what you observed",
		},
		Conditions: map[string]string{"stress_level": "moderate", "focus": "low"},
	},
	{
		Title:       "Gratitude Journaling",
		Category:    models.CategoryMental,
		Icon:        "📝",
		Duration:    "5-10 minutes",
		Difficulty:  "Beginner",
		BestTime:    "Evening",
		Description: "Write down things you're grateful for to shift focus to positive aspects of life.",
		Benefits: []string{
			"Improves mood",
			"Increases life satisfaction",
			"Reduces negative thinking",
			"Enhances sleep quality",
		},
		Steps: []string{
			"Get a notebook or use your phone",
			"Write down 3-5 things you're grateful for today",
			"Be specific - instead of \"family\" write \"my sister's encouraging text\"",
			"Include why you're grateful for each item",
			"Notice how you feel as you write",
			"Review previous entries occasionally",
		},
		Conditions: map[string]string{"mood_score": "low", "stress_level": "moderate"},
	},
	{
		Title:       "Reach Out to a Friend",
		Category:    models.CategorySocial,
		Icon:        "📞",
		Duration:    "10-30 minutes",
		Difficulty:  "Beginner",
		BestTime:    "Anytime",
		Description: "Connect with someone you trust for emotional support and perspective.",
		Benefits: []string{
			"Reduces feelings of isolation",
			"Provides emotional support",
			"Gains new perspectives",
			"Strengthens relationships",
		},
		Steps: []string{
			"Think of someone who makes you feel better",
			"Call, text, or video chat with them",
			"Share what's on your mind if comfortable",
			"Ask about their day too",
			"Express gratitude for their time",
			"Plan to connect again soon",
		},
		Conditions: map[string]string{"social_interaction": "low", "stress_level": "high"},
	},
	{
		Title:       "Practice Active Listening",
		Category:    models.CategorySocial,
		Icon:        "👂",
		Duration:    "15-20 minutes",
		Difficulty:  "Intermediate",
		BestTime:    "During conversations",
		Description: "Focus completely on understanding someone else, which can reduce your own stress.",
		Benefits: []string{
			"Strengthens relationships",
			"Reduces self-focus",
			"Improves empathy",
			"Creates positive connections",
		},
		Steps: []string{
			"Choose a conversation partner",
			"Put away distractions (phone, etc.)",
			"Make eye contact and listen without planning your response",
			"Ask clarifying questions",
			"Reflect back what you heard",
			"Thank them for sharing",
		},
		Conditions: map[string]string{"social_interaction": "moderate", "mood_score": "low"},
	},
	{
		Title:       "Digital Detox Hour",
		Category:    models.CategoryLifestyle,
		Icon:        "📱",
		Duration:    "60 minutes",
		Difficulty:  "Intermediate",
		BestTime:    "Evening",
		Description: "Take a complete break from digital devices to reduce overstimulation.",
		Benefits: []string{
			"Reduces mental overstimulation",
			"Improves sleep preparation",
			"Increases present-moment awareness",
			"Reduces comparison and FOMO",
		},
		Steps: []string{
			"Turn off all digital devices",
			"Inform others you'll be unavailable",
			"Engage in analog activities (reading, drawing, etc.)",
			"Notice urges to check devices without acting",
			"Focus on physical sensations and environment",
			"Reflect on how you feel afterward",
		},
		Conditions: map[string]string{"stress_level": "high", "work_hours": "high"},
	},
	{
		Title:       "Create a Calming Environment",
		Category:    models.CategoryLifestyle,
		Icon:        "🕯️",
		Duration:    "15-20 minutes",
		Difficulty:  "Beginner",
		BestTime:    "Evening",
		Description: "Modify your space to promote relaxation and reduce stress triggers.",
		Benefits: []string{
			"Creates psychological safety",
			"Reduces environmental stress",
			"Improves mood",
			"Promotes better sleep",
		},
		Steps: []string{
			"Dim harsh lighting or light candles",
			"Play soft, calming music",
			"Remove clutter from immediate view",
			"Add something pleasant-smelling (tea, essential oils)",
			"Arrange comfortable seating",
			"Enjoy the peaceful atmosphere",
		},
		Conditions: map[string]string{"stress_level": "moderate", "energy_level": "low"},
	},
	{
		Title:       "Sleep Hygiene Routine",
		Category:    models.CategoryLifestyle,
		Icon:        "😴",
		Duration:    "30-45 minutes",
		Difficulty:  "Intermediate",
		BestTime:    "Before bed",
		Description: "Establish a consistent pre-sleep routine to improve sleep quality.",
		Benefits: []string{
			"Improves sleep quality",
			"Reduces next-day stress",
			"Regulates circadian rhythm",
			"Creates relaxing ritual",
		},
		Steps: []string{
			"Set a consistent bedtime",
			"Turn off screens 1 hour before bed",
			"Take a warm bath or shower",
			"Do gentle stretching or reading",
			"Practice gratitude or meditation",
			"Keep bedroom cool and dark",
		},
		Conditions: map[string]string{"sleep_hours": "low", "stress_level": "any"},
	},
}

// immediate is ordered by how quickly each technique can be applied.
var immediate = []models.ImmediateIntervention{
	{
		Title:       "Emergency Calm Breathing",
		Duration:    "2 minutes",
		Description: "Quick breathing technique for immediate stress relief.",
		Steps: []string{
			"Stop what you're doing and sit down",
			"Place one hand on chest, one on belly",
			"Breathe slowly through your nose for 4 counts",
			"Feel your belly rise more than your chest",
			"Exhale slowly through mouth for 6 counts",
			"Repeat 5-10 times until you feel calmer",
		},
		AudioGuide: "Breathe in... 2... 3... 4... Hold... Breathe out... 2... 3... 4... 5... 6...",
	},
	{
		Title:       "5-4-3-2-1 Grounding",
		Duration:    "3 minutes",
		Description: "Sensory grounding technique to manage acute anxiety.",
		Steps: []string{
			"Name 5 things you can see around you",
			"Name 4 things you can physically touch",
			"Name 3 things you can hear right now",
			"Name 2 things you can smell",
			"Name 1 thing you can taste",
			"Take three deep breaths",
		},
	},
	{
		Title:       "Cold Water Reset",
		Duration:    "1 minute",
		Description: "Use cold water to activate the dive response and calm the nervous system.",
		Steps: []string{
			"Go to the nearest sink",
			"Run cold water over your wrists for 30 seconds",
			"Splash cold water on your face",
			"Hold a cold, wet towel to your neck",
			"Take slow, deep breaths",
			"Notice the calming effect",
		},
	},
	{
		Title:       "Box Breathing",
		Duration:    "3 minutes",
		Description: "Structured breathing pattern used by Navy SEALs for stress management.",
		Steps: []string{
			"Sit with your back straight",
			"Exhale all air from your lungs",
			"Inhale through nose for 4 counts",
			"Hold breath for 4 counts",
			"Exhale through mouth for 4 counts",
			"Hold empty lungs for 4 counts",
			"Repeat 4-8 cycles",
		},
	},
}
