package education

import "mindguard/internal/models"

// library is the static reading list, one entry per topic in models.Topics order.
var library = []models.Topic{
	{
		ID:    models.TopicBasics,
		Title: "Mental Health Basics",
		Articles: []models.Article{
			{
				Title: "Understanding Stress and Its Impact",
				Content: `Stress is your body's natural response to challenges and demands. While some stress can be helpful and motivating, chronic stress can have serious impacts on both your physical and mental health.

**What happens when you're stressed:**
- Your brain releases stress hormones like cortisol and adrenaline
- Your heart rate and blood pressure increase
- Your breathing becomes faster and shallower
- Your muscles tense up
- Your digestive system slows down

**Types of stress:**
- **Acute stress**: Short-term stress from immediate pressures
- **Chronic stress**: Long-term stress from ongoing situations
- **Eustress**: Positive stress that motivates and energizes
- **Distress**: Negative stress that overwhelms and harms`,
				KeyPoints: []string{
					"Not all stress is bad - some stress can be motivating",
					"Chronic stress can lead to serious health problems",
					"Your body has a natural stress response system",
					"Learning to manage stress is a skill that can be developed",
					"Everyone experiences stress differently",
				},
				Resources: []models.Link{
					{Title: "American Psychological Association - Stress", URL: "https://www.apa.org/topics/stress"},
					{Title: "Mayo Clinic - Stress Management", URL: "https://www.mayoclinic.org/healthy-lifestyle/stress-management"},
				},
			},
			{
				Title: "The Science of Mood and Emotions",
				Content: `Your mood is influenced by a complex interplay of biological, psychological, and social factors. Understanding these can help you take better care of your mental health.

**Biological factors:**
- Neurotransmitters (serotonin, dopamine, norepinephrine)
- Hormonal changes (cortisol, thyroid hormones, reproductive hormones)
- Sleep patterns and circadian rhythms
- Nutrition and blood sugar levels
- Physical health and chronic conditions

**Psychological factors:**
- Thought patterns and cognitive habits
- Coping strategies and resilience
- Past experiences and trauma
- Self-esteem and self-concept
- Personality traits

**Social factors:**
- Relationships and social support
- Work and financial stress
- Cultural and societal pressures
- Life transitions and changes
- Environmental factors`,
				KeyPoints: []string{
					"Mood is influenced by brain chemistry, but you can influence that chemistry",
					"Lifestyle factors like sleep, exercise, and nutrition significantly impact mood",
					"Social connections are crucial for mental health",
					"Thoughts and emotions are connected but not the same thing",
					"Professional help is available and effective for mood disorders",
				},
			},
			{
				Title: "Mental Health vs. Mental Illness",
				Content: `Mental health exists on a continuum, and everyone has mental health just like everyone has physical health.

**Mental Health includes:**
- Emotional well-being (feeling good about yourself and life)
- Psychological well-being (feeling purpose and meaning)
- Social well-being (having positive relationships)

**Mental Health Challenges are common:**
- 1 in 5 adults experience mental health issues each year
- Mental health challenges can be temporary or ongoing
- They can range from mild to severe
- Most mental health conditions are treatable

**Signs of good mental health:**
- Ability to cope with life's stresses
- Productive work and meaningful activities
- Positive relationships with others
- Realistic sense of self
- Ability to adapt to change`,
				KeyPoints: []string{
					"Mental health is not just the absence of mental illness",
					"Everyone can work on improving their mental health",
					"Mental health challenges are medical conditions, not personal failures",
					"Recovery and management are possible for all mental health conditions",
					"Seeking help is a sign of strength, not weakness",
				},
			},
			{
				Title: "The Mind-Body Connection",
				Content: `Your mental and physical health are intimately connected. What affects one will often affect the other.

**How mental health affects physical health:**
- Chronic stress can weaken your immune system
- Depression can increase risk of heart disease
- Anxiety can cause digestive issues
- Sleep problems can affect both mental and physical health

**How physical health affects mental health:**
- Exercise releases mood-boosting endorphins
- Nutrition affects brain function and mood
- Chronic illness can contribute to depression and anxiety
- Sleep is crucial for emotional regulation

**Lifestyle factors that benefit both:**
- Regular physical activity
- Adequate sleep (7-9 hours for most adults)
- Balanced nutrition
- Social connections
- Stress management practices
- Limiting alcohol and avoiding drugs`,
				KeyPoints: []string{
					"Taking care of your body helps your mind",
					"Taking care of your mind helps your body",
					"Small changes in lifestyle can have big impacts",
					"Holistic approaches to health are most effective",
					"Professional help may be needed for both mental and physical health",
				},
			},
		},
	},
	{
		ID:    models.TopicStress,
		Title: "Stress Management",
		Articles: []models.Article{
			{
				Title: "Breathing Techniques for Stress Relief",
				Content: `Breathing is one of the most powerful tools for managing stress because it's always available and works quickly to activate your body's relaxation response.

**Why breathing works:**
- Deep breathing activates the parasympathetic nervous system
- It increases oxygen to the brain
- It helps regulate heart rate and blood pressure
- It gives your mind something to focus on besides stressors`,
				Techniques: []models.Technique{
					{Name: "Diaphragmatic Breathing", Description: "Place one hand on chest, one on belly. Breathe so the belly hand moves more than the chest hand."},
					{Name: "4-7-8 Breathing", Description: "Inhale for 4, hold for 7, exhale for 8. Repeat 3-4 times."},
					{Name: "Box Breathing", Description: "Inhale for 4, hold for 4, exhale for 4, hold for 4. Repeat."},
					{Name: "Alternate Nostril Breathing", Description: "Use thumb to close right nostril, inhale through left. Switch and exhale through right."},
				},
				Benefits: []string{
					"Immediate stress relief",
					"Improved focus and concentration",
					"Better sleep quality",
					"Reduced anxiety and panic",
					"Lower blood pressure",
				},
			},
			{
				Title: "Progressive Muscle Relaxation (PMR)",
				Content: `PMR is a technique where you systematically tense and then relax different muscle groups in your body. This helps you become aware of physical tension and learn to release it.

**How PMR works:**
- Helps distinguish between tension and relaxation
- Reduces overall muscle tension
- Calms the nervous system
- Improves body awareness
- Can be done anywhere

**Basic PMR sequence:**
1. Start with your toes and feet
2. Move to your legs and thighs
3. Tense your abdomen and chest
4. Work through your hands and arms
5. Tense your shoulders and neck
6. Finish with your face and scalp

**For each muscle group:**
- Tense for 5-7 seconds
- Release suddenly
- Relax for 10-15 seconds
- Notice the difference between tension and relaxation`,
				Benefits: []string{
					"Reduces muscle tension and pain",
					"Improves sleep quality",
					"Helps with anxiety and stress",
					"Increases body awareness",
					"Can be adapted for specific problem areas",
				},
			},
			{
				Title: "Cognitive Stress Management",
				Content: `How you think about stressful situations greatly affects how much stress you feel. Cognitive techniques help you change your thought patterns to reduce stress.

**Common stress-inducing thought patterns:**
- Catastrophizing (imagining the worst)
- All-or-nothing thinking
- Mind reading (assuming you know what others think)
- Fortune telling (predicting negative outcomes)
- Personalization (blaming yourself for everything)

**Helpful cognitive strategies:**
- Challenge negative thoughts with evidence
- Practice realistic thinking
- Focus on what you can control
- Use positive self-talk
- Practice acceptance of things you cannot change`,
				Techniques: []models.Technique{
					{Name: "Thought Record", Description: "Write down the situation, your automatic thought, evidence for/against, and a more balanced thought."},
					{Name: "The 3 Cs", Description: "Ask: Can I Control this? If not, Can I Change my response? Can I Cope with this?"},
					{Name: "Reframing", Description: "Look at the situation from different perspectives. What would you tell a friend?"},
				},
			},
			{
				Title: "Time Management and Organization",
				Content: `Poor time management is a major source of stress. Learning to organize your time effectively can significantly reduce stress levels.

**Common time management stressors:**
- Procrastination
- Overcommitment
- Poor prioritization
- Lack of boundaries
- Perfectionism

**Effective time management strategies:**
- Use a calendar or planner
- Break large tasks into smaller steps
- Set realistic deadlines
- Learn to say no
- Build in buffer time
- Take regular breaks`,
				Techniques: []models.Technique{
					{Name: "Eisenhower Matrix", Description: "Categorize tasks as Urgent/Important, Important/Not Urgent, Urgent/Not Important, Neither."},
					{Name: "Pomodoro Technique", Description: "Work for 25 minutes, then take a 5-minute break. Repeat."},
					{Name: "Time Blocking", Description: "Schedule specific blocks of time for different activities."},
				},
			},
		},
	},
	{
		ID:    models.TopicMindfulness,
		Title: "Mindfulness & Meditation",
		Articles: []models.Article{
			{
				Title: "Introduction to Mindfulness",
				Content: `Mindfulness is the practice of paying attention to the present moment without judgment. It's about being fully aware of what's happening right now, rather than being caught up in thoughts about the past or future.

**Core elements of mindfulness:**
- **Attention**: Focusing on the present moment
- **Awareness**: Noticing thoughts, feelings, and sensations
- **Acceptance**: Observing without trying to change or judge
- **Non-attachment**: Not getting caught up in thoughts or emotions

**Benefits of mindfulness practice:**
- Reduced stress and anxiety
- Improved emotional regulation
- Better focus and concentration
- Increased self-awareness
- Enhanced relationships
- Better sleep quality
- Reduced symptoms of depression`,
				Practices: []string{
					"Mindful breathing",
					"Body scan meditation",
					"Mindful walking",
					"Mindful eating",
					"Loving-kindness meditation",
				},
			},
			{
				Title: "Basic Meditation Techniques",
				Content: `Meditation is a formal practice of mindfulness. There are many different types, but they all involve training your attention and awareness.

**Getting started with meditation:**
- Start with just 5-10 minutes
- Find a quiet, comfortable place
- Sit in a comfortable position
- Close your eyes or soften your gaze
- Don't worry about "doing it right"
- Be patient with yourself

**Common meditation challenges:**
- Racing thoughts (this is normal!)
- Physical discomfort
- Falling asleep
- Feeling like you're "not good at it"
- Lack of time`,
				Techniques: []models.Technique{
					{Name: "Breath Focus Meditation", Description: "Focus attention on your breathing, noticing when your mind wanders and gently returning to the breath."},
					{Name: "Body Scan", Description: "Systematically focus on different parts of your body, noticing sensations without trying to change them."},
					{Name: "Loving-Kindness", Description: `Practice sending good wishes to yourself and others: "May you be happy, may you be healthy, may you be at peace."`},
					{Name: "Walking Meditation", Description: "Practice mindfulness while walking slowly, focusing on the sensations of each step."},
				},
			},
		},
	},
	{
		ID:    models.TopicCoping,
		Title: "Coping Strategies",
		Articles: []models.Article{
			{
				Title: "Problem-Focused vs. Emotion-Focused Coping",
				Content: `There are two main types of coping strategies, and the best approach often involves using both depending on the situation.

**Problem-Focused Coping:**
Use when you can change or influence the situation.
- Identify the problem clearly
- Brainstorm possible solutions
- Evaluate pros and cons of each option
- Choose and implement the best solution
- Evaluate the results and adjust if needed

**Emotion-Focused Coping:**
Use when you cannot change the situation but need to manage your emotional response.
- Accept what you cannot control
- Use relaxation techniques
- Seek emotional support
- Practice self-compassion
- Find meaning or positive aspects`,
				Examples: map[string][]string{
					"Problem-Focused": {
						"Creating a study schedule for an exam",
						"Having a conversation to resolve a conflict",
						"Learning new skills for job challenges",
						"Setting boundaries with difficult people",
					},
					"Emotion-Focused": {
						"Practicing breathing exercises during anxiety",
						"Talking to friends about feelings",
						"Using mindfulness during grief",
						"Journaling about difficult emotions",
					},
				},
			},
			{
				Title: "Building Resilience",
				Content: `Resilience is your ability to bounce back from difficult experiences and adapt to challenges. It's not something you're born with - it can be developed.

**Key components of resilience:**
- **Emotional regulation**: Managing intense emotions
- **Cognitive flexibility**: Adapting your thinking to new situations
- **Social support**: Having people you can rely on
- **Self-efficacy**: Believing in your ability to handle challenges
- **Purpose and meaning**: Having something that motivates you

**Ways to build resilience:**
- Practice self-care regularly
- Develop strong relationships
- Learn from past experiences
- Maintain perspective during difficulties
- Take action even when you feel overwhelmed
- Accept that change is part of life`,
				Practices: []string{
					"Practice gratitude",
					"Connect with others",
					"Take care of your physical health",
					"Learn something new",
					"Help others",
					"Practice mindfulness",
				},
			},
			{
				Title: "Distress Tolerance Skills",
				Content: `Sometimes you need immediate coping strategies for intense emotional distress. These skills can help you get through difficult moments.

**TIPP:**
- **Temperature**: Use cold water on your face or hold ice cubes
- **Intense Exercise**: Do jumping jacks or run in place for a few minutes
- **Paced Breathing**: Breathe out longer than you breathe in
- **Progressive Muscle Relaxation**: Tense and release muscle groups

**Distress Tolerance Skills:**
- **Distraction**: Engage in activities that take your mind off the problem temporarily
- **Self-Soothing**: Use your five senses to comfort yourself
- **Improving the Moment**: Use imagery, prayer, or encouragement to get through
- **Pros and Cons**: Think through the consequences of different actions`,
				Practices: []string{
					"Reach out to a trusted friend or family member",
					"Go to a safe place",
					"Use grounding techniques (5-4-3-2-1)",
				},
			},
		},
	},
	{
		ID:    models.TopicSleep,
		Title: "Sleep and Mental Health",
		Articles: []models.Article{
			{
				Title: "Sleep and Mental Health",
				Content: `Sleep and mental health have a bidirectional relationship - poor sleep can worsen mental health, and mental health problems can disrupt sleep.

**How sleep affects mental health:**
- Sleep helps process emotions and consolidate memories
- Lack of sleep increases stress hormones
- Poor sleep affects mood regulation
- Sleep deprivation can worsen anxiety and depression

**How mental health affects sleep:**
- Anxiety can make it hard to fall asleep
- Depression can cause early morning waking
- Racing thoughts can keep you awake
- Medications can affect sleep patterns`,
				Practices: []string{
					"Keep a consistent sleep schedule",
					"Create a relaxing bedtime routine",
					"Make your bedroom dark, quiet, and cool",
					"Avoid screens for 1 hour before bed",
					"Limit caffeine after 2 PM",
					"Get natural light during the day",
					"Use your bed only for sleep and intimacy",
					"If you can't sleep, get up and do a quiet activity",
				},
			},
		},
	},
	{
		ID:    models.TopicNutrition,
		Title: "Nutrition and Mood",
		Articles: []models.Article{
			{
				Title: "Nutrition and Mood",
				Content: `What you eat directly affects your brain function and mood. A balanced diet can support mental health, while poor nutrition can worsen mental health symptoms.

**Nutrients important for mental health:**
- **Omega-3 fatty acids**: Found in fish, walnuts, and flaxseeds
- **Complex carbohydrates**: Found in whole grains, vegetables
- **Protein**: Helps produce neurotransmitters
- **B vitamins**: Important for brain function
- **Vitamin D**: Low levels linked to depression
- **Magnesium**: Helps with anxiety and sleep`,
				Examples: map[string][]string{
					"Mood-supporting foods": {
						"Fatty fish (salmon, sardines)",
						"Leafy green vegetables",
						"Berries and colorful fruits",
						"Nuts and seeds",
						"Whole grains",
						"Legumes and beans",
						"Dark chocolate (in moderation)",
						"Fermented foods (yogurt, kefir)",
					},
					"Foods to limit": {
						"Highly processed foods",
						"Excessive sugar",
						"Too much caffeine",
						"Alcohol",
						"Trans fats",
						"Foods high in sodium",
					},
				},
			},
		},
	},
}
