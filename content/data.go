package content

// Themes, Styles and Formats are listed in display order.
var Themes = []ThemeInfo{
	{ThemeCareer, "Career", "#3b82f6", "💼"},
	{ThemeMoney, "Money", "#22c55e", "💰"},
	{ThemeHealth, "Health", "#ef4444", "❤️"},
	{ThemeRelationship, "Relationship", "#ec4899", "💕"},
	{ThemeStudy, "Study", "#8b5cf6", "📚"},
	{ThemeTravel, "Travel", "#f59e0b", "✈️"},
}

var Styles = []StyleInfo{
	{StyleMinimalist, "Minimalist", "Clean and simple design"},
	{StyleAesthetic, "Aesthetic", "Beautiful and artistic"},
	{StyleBold, "Bold", "Strong and impactful"},
	{StylePastel, "Pastel", "Soft and gentle colors"},
	{StyleDark, "Dark", "Dark mode friendly"},
}

var Formats = []FormatInfo{
	{FormatPrintable, "Printable", "🖨️"},
	{FormatDigital, "Digital", "💻"},
	{FormatNotion, "Notion", "📝"},
}

func downloads(id string, types ...string) []Download {
	out := make([]Download, len(types))
	for i, t := range types {
		out[i] = Download{Type: t, URL: "/downloads/templates/" + id + "." + t}
	}
	return out
}

var Templates = []Template{
	{
		ID:           "career-printable-minimalist",
		Title:        "Career Goals Vision Board - Minimalist",
		Theme:        ThemeCareer,
		Style:        StyleMinimalist,
		Format:       FormatPrintable,
		PreviewImage: "/images/templates/career-printable-minimalist.png",
		Downloads:    downloads("career-printable-minimalist", "svg", "png", "pdf"),
		Tags:         []string{"goals", "career", "professional"},
		Featured:     true,
	},
	{
		ID:           "career-digital-bold",
		Title:        "Career Vision Board - Digital Bold",
		Theme:        ThemeCareer,
		Style:        StyleBold,
		Format:       FormatDigital,
		PreviewImage: "/images/templates/career-digital-bold.png",
		Downloads:    downloads("career-digital-bold", "png"),
		Tags:         []string{"digital", "career", "bold"},
		Featured:     true,
	},
	{
		ID:           "money-printable-pastel",
		Title:        "Financial Goals Board - Pastel",
		Theme:        ThemeMoney,
		Style:        StylePastel,
		Format:       FormatPrintable,
		PreviewImage: "/images/templates/money-printable-pastel.png",
		Downloads:    downloads("money-printable-pastel", "svg", "pdf"),
		Tags:         []string{"finance", "money", "goals"},
		Featured:     true,
	},
	{
		ID:           "money-digital-minimalist",
		Title:        "Money Vision - Digital Minimal",
		Theme:        ThemeMoney,
		Style:        StyleMinimalist,
		Format:       FormatDigital,
		PreviewImage: "/images/templates/money-digital-minimalist.png",
		Downloads:    downloads("money-digital-minimalist", "png"),
		Tags:         []string{"digital", "finance", "minimal"},
		Featured:     false,
	},
	{
		ID:           "health-printable-aesthetic",
		Title:        "Health & Wellness Board - Aesthetic",
		Theme:        ThemeHealth,
		Style:        StyleAesthetic,
		Format:       FormatPrintable,
		PreviewImage: "/images/templates/health-printable-aesthetic.png",
		Downloads:    downloads("health-printable-aesthetic", "svg", "pdf"),
		Tags:         []string{"health", "wellness", "fitness"},
		Featured:     true,
	},
	{
		ID:           "health-digital-pastel",
		Title:        "Health Goals - Digital Pastel",
		Theme:        ThemeHealth,
		Style:        StylePastel,
		Format:       FormatDigital,
		PreviewImage: "/images/templates/health-digital-pastel.png",
		Downloads:    downloads("health-digital-pastel", "png"),
		Tags:         []string{"digital", "health", "wellness"},
		Featured:     false,
	},
	{
		ID:           "relationship-printable-minimalist",
		Title:        "Love & Relationships Board - Minimal",
		Theme:        ThemeRelationship,
		Style:        StyleMinimalist,
		Format:       FormatPrintable,
		PreviewImage: "/images/templates/relationship-printable-minimalist.png",
		Downloads:    downloads("relationship-printable-minimalist", "svg", "pdf"),
		Tags:         []string{"love", "relationships", "minimal"},
		Featured:     true,
	},
	{
		ID:           "relationship-digital-aesthetic",
		Title:        "Relationship Vision - Digital Aesthetic",
		Theme:        ThemeRelationship,
		Style:        StyleAesthetic,
		Format:       FormatDigital,
		PreviewImage: "/images/templates/relationship-digital-aesthetic.png",
		Downloads:    downloads("relationship-digital-aesthetic", "png"),
		Tags:         []string{"digital", "love", "relationships"},
		Featured:     false,
	},
	{
		ID:           "study-printable-bold",
		Title:        "Study Goals Board - Bold",
		Theme:        ThemeStudy,
		Style:        StyleBold,
		Format:       FormatPrintable,
		PreviewImage: "/images/templates/study-printable-bold.png",
		Downloads:    downloads("study-printable-bold", "svg", "pdf"),
		Tags:         []string{"study", "education", "goals"},
		Featured:     true,
	},
	{
		ID:           "study-digital-minimalist",
		Title:        "Academic Vision - Digital Minimal",
		Theme:        ThemeStudy,
		Style:        StyleMinimalist,
		Format:       FormatDigital,
		PreviewImage: "/images/templates/study-digital-minimalist.png",
		Downloads:    downloads("study-digital-minimalist", "png"),
		Tags:         []string{"digital", "study", "academic"},
		Featured:     false,
	},
	{
		ID:           "travel-printable-pastel",
		Title:        "Travel Dreams Board - Pastel",
		Theme:        ThemeTravel,
		Style:        StylePastel,
		Format:       FormatPrintable,
		PreviewImage: "/images/templates/travel-printable-pastel.png",
		Downloads:    downloads("travel-printable-pastel", "svg", "pdf"),
		Tags:         []string{"travel", "adventure", "dreams"},
		Featured:     true,
	},
	{
		ID:           "travel-digital-aesthetic",
		Title:        "Travel Vision - Digital Aesthetic",
		Theme:        ThemeTravel,
		Style:        StyleAesthetic,
		Format:       FormatDigital,
		PreviewImage: "/images/templates/travel-digital-aesthetic.png",
		Downloads:    downloads("travel-digital-aesthetic", "png"),
		Tags:         []string{"digital", "travel", "aesthetic"},
		Featured:     false,
	},
}

var Ideas = []Idea{
	{
		ID:           "idea-career-1",
		Title:        "Executive Career Vision Board",
		Theme:        ThemeCareer,
		Style:        StyleMinimalist,
		PreviewImage: "/images/ideas/career-1.jpg",
		Tags:         []string{"career", "professional", "executive"},
		Description:  "A clean and professional vision board focused on career advancement and leadership goals.",
		Featured:     true,
	},
	{
		ID:           "idea-career-2",
		Title:        "Creative Career Dream Board",
		Theme:        ThemeCareer,
		Style:        StyleAesthetic,
		PreviewImage: "/images/ideas/career-2.jpg",
		Tags:         []string{"career", "creative", "artistic"},
		Description:  "An artistic vision board for creative professionals and entrepreneurs.",
		Featured:     true,
	},
	{
		ID:           "idea-career-3",
		Title:        "Bold Career Goals Collage",
		Theme:        ThemeCareer,
		Style:        StyleBold,
		PreviewImage: "/images/ideas/career-3.jpg",
		Tags:         []string{"career", "bold", "motivation"},
		Description:  "A powerful and bold vision board to manifest your biggest career dreams.",
		Featured:     false,
	},
	{
		ID:           "idea-money-1",
		Title:        "Financial Freedom Vision Board",
		Theme:        ThemeMoney,
		Style:        StyleMinimalist,
		PreviewImage: "/images/ideas/money-1.jpg",
		Tags:         []string{"finance", "freedom", "goals"},
		Description:  "Focus on financial independence and wealth building with this clean design.",
		Featured:     true,
	},
	{
		ID:           "idea-money-2",
		Title:        "Abundance Mindset Collage",
		Theme:        ThemeMoney,
		Style:        StylePastel,
		PreviewImage: "/images/ideas/money-2.jpg",
		Tags:         []string{"abundance", "money", "mindset"},
		Description:  "Soft and inspiring vision board for cultivating an abundance mindset.",
		Featured:     true,
	},
	{
		ID:           "idea-money-3",
		Title:        "Wealth Building Vision Board",
		Theme:        ThemeMoney,
		Style:        StyleBold,
		PreviewImage: "/images/ideas/money-3.jpg",
		Tags:         []string{"wealth", "investing", "bold"},
		Description:  "Bold and motivating vision board focused on wealth creation strategies.",
		Featured:     false,
	},
	{
		ID:           "idea-health-1",
		Title:        "Fitness Goals Vision Board",
		Theme:        ThemeHealth,
		Style:        StyleBold,
		PreviewImage: "/images/ideas/health-1.jpg",
		Tags:         []string{"fitness", "workout", "goals"},
		Description:  "Energizing vision board to keep your fitness goals on track.",
		Featured:     true,
	},
	{
		ID:           "idea-health-2",
		Title:        "Wellness & Self-Care Board",
		Theme:        ThemeHealth,
		Style:        StylePastel,
		PreviewImage: "/images/ideas/health-2.jpg",
		Tags:         []string{"wellness", "self-care", "mental-health"},
		Description:  "Gentle vision board focusing on holistic wellness and self-care practices.",
		Featured:     true,
	},
	{
		ID:           "idea-health-3",
		Title:        "Healthy Lifestyle Aesthetic Board",
		Theme:        ThemeHealth,
		Style:        StyleAesthetic,
		PreviewImage: "/images/ideas/health-3.jpg",
		Tags:         []string{"healthy", "lifestyle", "aesthetic"},
		Description:  "Beautiful and inspiring board for maintaining a balanced healthy lifestyle.",
		Featured:     false,
	},
	{
		ID:           "idea-relationship-1",
		Title:        "Love & Relationships Vision Board",
		Theme:        ThemeRelationship,
		Style:        StyleAesthetic,
		PreviewImage: "/images/ideas/relationship-1.jpg",
		Tags:         []string{"love", "relationships", "romance"},
		Description:  "Romantic and beautiful vision board for manifesting your ideal relationship.",
		Featured:     true,
	},
	{
		ID:           "idea-relationship-2",
		Title:        "Self-Love & Self-Worth Board",
		Theme:        ThemeRelationship,
		Style:        StylePastel,
		PreviewImage: "/images/ideas/relationship-2.jpg",
		Tags:         []string{"self-love", "worth", "healing"},
		Description:  "Gentle board focused on cultivating self-love and personal worth.",
		Featured:     true,
	},
	{
		ID:           "idea-relationship-3",
		Title:        "Family Goals Vision Board",
		Theme:        ThemeRelationship,
		Style:        StyleMinimalist,
		PreviewImage: "/images/ideas/relationship-3.jpg",
		Tags:         []string{"family", "home", "together"},
		Description:  "Clean and heartwarming board for family and home life goals.",
		Featured:     false,
	},
	{
		ID:           "idea-study-1",
		Title:        "Academic Excellence Vision Board",
		Theme:        ThemeStudy,
		Style:        StyleMinimalist,
		PreviewImage: "/images/ideas/study-1.jpg",
		Tags:         []string{"study", "academic", "excellence"},
		Description:  "Focused vision board for academic achievement and learning goals.",
		Featured:     true,
	},
	{
		ID:           "idea-study-2",
		Title:        "Learning Journey Board",
		Theme:        ThemeStudy,
		Style:        StyleAesthetic,
		PreviewImage: "/images/ideas/study-2.jpg",
		Tags:         []string{"learning", "growth", "knowledge"},
		Description:  "Beautiful board celebrating the journey of lifelong learning.",
		Featured:     true,
	},
	{
		ID:           "idea-study-3",
		Title:        "Study Goals Bold Board",
		Theme:        ThemeStudy,
		Style:        StyleBold,
		PreviewImage: "/images/ideas/study-3.jpg",
		Tags:         []string{"study", "motivation", "goals"},
		Description:  "Motivating and bold board to keep your study goals in focus.",
		Featured:     false,
	},
	{
		ID:           "idea-travel-1",
		Title:        "Dream Destinations Vision Board",
		Theme:        ThemeTravel,
		Style:        StyleAesthetic,
		PreviewImage: "/images/ideas/travel-1.jpg",
		Tags:         []string{"travel", "destinations", "dreams"},
		Description:  "Stunning vision board featuring your dream travel destinations.",
		Featured:     true,
	},
	{
		ID:           "idea-travel-2",
		Title:        "Adventure Awaits Board",
		Theme:        ThemeTravel,
		Style:        StyleBold,
		PreviewImage: "/images/ideas/travel-2.jpg",
		Tags:         []string{"adventure", "explore", "travel"},
		Description:  "Bold and exciting board for adventure seekers and explorers.",
		Featured:     true,
	},
	{
		ID:           "idea-travel-3",
		Title:        "Travel Inspiration Pastel Board",
		Theme:        ThemeTravel,
		Style:        StylePastel,
		PreviewImage: "/images/ideas/travel-3.jpg",
		Tags:         []string{"travel", "inspiration", "wanderlust"},
		Description:  "Soft and dreamy board for travel inspiration and wanderlust.",
		Featured:     false,
	},
}

// Checklist is the 30-minute board-making routine shown on the home page.
var Checklist = []ChecklistItem{
	{"1", "Choose your theme and format", "2 min"},
	{"2", "Select or create a template", "3 min"},
	{"3", "Gather your images and quotes", "10 min"},
	{"4", "Arrange and paste your vision elements", "10 min"},
	{"5", "Add final touches and affirmations", "5 min"},
}

var FAQs = []FAQ{
	{
		"What should I put on my New Year vision board?",
		"Include images, words, and symbols that represent your goals and dreams for the year ahead. Focus on 6-8 key areas like career, health, relationships, finances, personal growth, and experiences. Use both photos and text affirmations to create a powerful visual representation of your intentions.",
	},
	{
		"When should I make my New Year vision board?",
		"The ideal time is between late December and early January. This allows you to reflect on the past year while setting clear intentions for the new one. However, you can create a vision board anytime you feel the need for clarity and motivation - there's no wrong time to visualize your goals.",
	},
	{
		"Can I make my vision board in January?",
		"Absolutely! January is actually a perfect time to create a vision board. Many people find that after the holiday rush, they have more mental space to focus on their goals. The energy of new beginnings in January can amplify the power of your intentions.",
	},
	{
		"What's the difference between printable and digital vision boards?",
		"Printable vision boards are designed to be printed and displayed physically in your space - perfect for visual reminders throughout your day. Digital vision boards are created for use on devices (phones, tablets, computers) and can include interactive elements, be easily shared, and serve as phone or desktop wallpapers.",
	},
	{
		"How many goals should I put on my vision board?",
		"Aim for 6-10 meaningful goals across different life areas. Too many goals can feel overwhelming and dilute your focus. Choose goals that truly excite and inspire you - quality over quantity. Remember, you can always create additional boards for specific themes or timeframes.",
	},
	{
		"Do vision boards actually work?",
		"Vision boards work through the psychology of visualization and focus. By regularly seeing your goals, you prime your brain to notice opportunities and take aligned actions. They serve as constant reminders of what you're working toward, helping maintain motivation and clarity. Combine your vision board with consistent action for best results.",
	},
}

// Resources make up the free pack unlocked by the email signup.
var Resources = []Resource{
	{"resource-1", "Complete Vision Board Checklist", "Step-by-step checklist to create your perfect vision board in 30 minutes", "checklist", "/downloads/vision-board-checklist.html"},
	{"resource-2", "AI Prompt Collection", "100+ AI prompts to generate vision board images and content", "prompts", "/downloads/ai-prompt-collection.html"},
	{"resource-3", "What to Put Guide", "Comprehensive guide on what content to include for each theme", "guide", "/downloads/what-to-put-guide.html"},
	{"resource-4", "Keyword Collections", "Curated keywords and phrases for each vision board theme", "keywords", "/downloads/keyword-collections.html"},
}

var KeywordCollections = []KeywordCollection{
	{
		Theme:    ThemeCareer,
		Keywords: []string{"Promotion", "Leadership", "Entrepreneurship", "Passive Income", "Remote Work", "Networking", "Skills", "Certification", "Dream Job", "Side Hustle"},
		AIPrompts: []string{
			"Professional standing in modern office with city skyline view",
			"Inspirational workspace with laptop and vision board",
			"Leadership team collaboration in bright office",
		},
	},
	{
		Theme:    ThemeMoney,
		Keywords: []string{"Financial Freedom", "Savings", "Investments", "Passive Income", "Debt Free", "Emergency Fund", "Real Estate", "Stocks", "Budget", "Wealth"},
		AIPrompts: []string{
			"Piggy bank with growing plant symbolizing financial growth",
			"Modern minimalist home office with success imagery",
			"Abstract representation of financial growth and abundance",
		},
	},
	{
		Theme:    ThemeHealth,
		Keywords: []string{"Fitness", "Mental Health", "Self-Care", "Nutrition", "Sleep", "Yoga", "Meditation", "Energy", "Strength", "Balance"},
		AIPrompts: []string{
			"Peaceful yoga scene at sunrise",
			"Healthy meal prep aesthetic arrangement",
			"Person meditating in nature with mountains",
		},
	},
	{
		Theme:    ThemeRelationship,
		Keywords: []string{"Love", "Partnership", "Communication", "Trust", "Family", "Friendship", "Self-Love", "Boundaries", "Quality Time", "Connection"},
		AIPrompts: []string{
			"Couple watching sunset together on beach",
			"Cozy home scene with warmth and connection",
			"Friends laughing and enjoying outdoor activity",
		},
	},
	{
		Theme:    ThemeStudy,
		Keywords: []string{"Learning", "Graduation", "Skills", "Knowledge", "Languages", "Reading", "Focus", "Discipline", "Growth Mindset", "Achievement"},
		AIPrompts: []string{
			"Cozy study nook with books and warm lighting",
			"Graduation cap with inspirational background",
			"Library aesthetic with natural light and plants",
		},
	},
	{
		Theme:    ThemeTravel,
		Keywords: []string{"Adventure", "Beach", "Mountains", "Europe", "Asia", "Road Trip", "Flight", "Exotic", "Culture", "Exploration"},
		AIPrompts: []string{
			"Hot air balloon over scenic landscape",
			"Tropical beach paradise at golden hour",
			"Mountain vista with hiking trail and clear sky",
		},
	},
}

// Gallery categories. CategoryAll is the unfiltered view.
const (
	CategoryAll     = "All"
	CategoryGeneral = "General"
)

var Categories = []string{CategoryAll, "Career", "Money", "Health", "Relationships", "Study", "Travel", CategoryGeneral}
