package shared

const (
	UserID = "user_id"

	DateLayout = "2006-01-02"

	HabitCategoryHealth       = "health"
	HabitCategoryProductivity = "productivity"
	HabitCategoryLearning     = "learning"
	HabitCategorySocial       = "social"
	HabitCategoryMindfulness  = "mindfulness"
	HabitCategoryOther        = "other"

	SkillCategoryProgramming = "programming"
	SkillCategoryDesign      = "design"
	SkillCategoryLanguage    = "language"
	SkillCategoryMusic       = "music"
	SkillCategorySports      = "sports"
	SkillCategoryArt         = "art"
	SkillCategoryBusiness    = "business"
	SkillCategoryOther       = "other"

	HabitDifficultyEasy   = "easy"
	HabitDifficultyMedium = "medium"
	HabitDifficultyHard   = "hard"

	SkillDifficultyBeginner     = "beginner"
	SkillDifficultyIntermediate = "intermediate"
	SkillDifficultyAdvanced     = "advanced"
)
