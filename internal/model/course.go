package model

// swagger:model Course
type Course struct {
	UUIDBase
	Title            string  `gorm:"size:255;not null" json:"title"`
	Description      string  `gorm:"type:text;not null" json:"description"`
	ShortDescription string  `gorm:"size:255" json:"shortDescription"`
	Duration         string  `gorm:"size:50;not null" json:"duration"`
	SkillLevel       string  `gorm:"size:50;not null" json:"skillLevel"`
	Price            float64 `gorm:"not null" json:"price"`
	Image            string  `gorm:"size:255" json:"image"`
	Instructor       string  `gorm:"size:100;not null" json:"instructor"`
	Category         string  `gorm:"size:100" json:"category"`
	Featured         bool    `gorm:"default:false" json:"featured"`
}

func (Course) TableName() string {
	return "courses"
}

// Module is one unit of a course; OrderIndex defines the display and
// completion sequence within its course.
// swagger:model Module
type Module struct {
	UUIDBase
	CourseID    string `gorm:"type:varchar(36);not null;uniqueIndex:uniq_course_order" json:"courseId"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"size:255" json:"description"`
	Duration    string `gorm:"size:50" json:"duration"`
	OrderIndex  int    `gorm:"not null;uniqueIndex:uniq_course_order" json:"orderIndex"`
}

func (Module) TableName() string {
	return "modules"
}

// CourseDetail is the catalog detail payload: the course plus its ordered
// modules and the most recent reviews.
// swagger:model CourseDetail
type CourseDetail struct {
	Course
	Modules []Module         `json:"modules"`
	Reviews []ReviewWithUser `json:"reviews"`
}
