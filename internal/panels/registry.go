package panels

// SkillCategories is the fixed category set the portfolio site renders.
var SkillCategories = []string{"programming", "frontend", "backend", "tech_tools"}

// SocialPlatforms is enum-ish: "other" keeps it extensible.
var SocialPlatforms = []string{
	"github", "linkedin", "facebook", "whatsapp", "gmail",
	"bdjobs", "twitter", "instagram", "youtube", "other",
}

// All returns the descriptors for every generic content panel, in nav order.
// Messages and Settings deviate from the shared shape and live in their own
// packages.
func All() []Descriptor {
	return []Descriptor{
		{
			Slug:     "projects",
			Title:    "Projects",
			Singular: "Project",
			Columns:  []string{"title", "shortDescription", "tags", "liveLink"},
			Fields: []Field{
				{Name: "title", Label: "Title", Widget: WidgetText, Required: true},
				{Name: "shortDescription", Label: "Short Description", Widget: WidgetText},
				{Name: "description", Label: "Full Description", Widget: WidgetTextarea},
				{Name: "image", Label: "Primary Image URL", Widget: WidgetURL, Upload: true, Hint: "https://... or upload below"},
				{Name: "images", Label: "Extra Images (comma-separated URLs)", Widget: WidgetText},
				{Name: "liveLink", Label: "Live Link", Widget: WidgetURL},
				{Name: "githubLink", Label: "GitHub Link", Widget: WidgetURL},
				{Name: "tags", Label: "Tags (comma-separated)", Widget: WidgetText, Hint: "React, Node.js, MSSQL"},
			},
		},
		{
			Slug:     "skills",
			Title:    "Skills",
			Singular: "Skill",
			Columns:  []string{"name", "category", "logo"},
			Fields: []Field{
				{Name: "name", Label: "Name", Widget: WidgetText, Required: true},
				{Name: "logo", Label: "Logo URL", Widget: WidgetURL},
				{Name: "category", Label: "Category", Widget: WidgetSelect, Options: SkillCategories, Default: "frontend"},
			},
		},
		{
			Slug:     "experiences",
			Title:    "Experiences",
			Singular: "Experience",
			Columns:  []string{"title", "organization", "startDate", "endDate"},
			Fields: []Field{
				{Name: "title", Label: "Title", Widget: WidgetText, Required: true},
				{Name: "organization", Label: "Organization", Widget: WidgetText},
				// Dates are free text on the portfolio site ("Jan 2022", "Present").
				{Name: "startDate", Label: "Start Date", Widget: WidgetText},
				{Name: "endDate", Label: "End Date", Widget: WidgetText, Default: "Present"},
				{Name: "description", Label: "Description", Widget: WidgetTextarea},
			},
		},
		{
			Slug:     "posts",
			Title:    "Blog Posts",
			Singular: "Post",
			Columns:  []string{"title", "summary", "createdAt"},
			Fields: []Field{
				{Name: "title", Label: "Title", Widget: WidgetText, Required: true},
				{Name: "summary", Label: "Summary", Widget: WidgetText},
				{Name: "content", Label: "Content", Widget: WidgetTextarea},
				{Name: "coverImage", Label: "Cover Image URL", Widget: WidgetURL, Upload: true},
			},
		},
		{
			Slug:     "social",
			Title:    "Social Links",
			Singular: "Social Link",
			Columns:  []string{"platform", "url"},
			Fields: []Field{
				{Name: "platform", Label: "Platform", Widget: WidgetSelect, Options: SocialPlatforms, Default: "github"},
				{Name: "url", Label: "URL", Widget: WidgetURL, Required: true},
			},
		},
	}
}
