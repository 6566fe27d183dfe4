package model

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment tracks one user's progress through one course. Progress runs
// 0-100; the completed transition is one-way and CompletedAt is set exactly
// once, on the first transition.
// swagger:model Enrollment
type Enrollment struct {
	ID          string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID      string     `gorm:"type:varchar(36);not null;uniqueIndex:uniq_user_course" json:"userId"`
	CourseID    string     `gorm:"type:varchar(36);not null;uniqueIndex:uniq_user_course" json:"courseId"`
	Progress    int        `gorm:"default:0" json:"progress"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	EnrolledAt  time.Time  `gorm:"autoCreateTime" json:"enrolledAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

func (e *Enrollment) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = GenerateUUID()
	}
	return
}

// EnrolledCourse is an enrollment joined with its course for listings.
// swagger:model EnrolledCourse
type EnrolledCourse struct {
	Enrollment
	Title            string `json:"title"`
	Description      string `json:"description"`
	ShortDescription string `json:"shortDescription"`
	Image            string `json:"image"`
	Duration         string `json:"duration"`
	SkillLevel       string `json:"skillLevel"`
	Instructor       string `json:"instructor"`
}

// UserStats aggregates a user's learning counters.
// swagger:model UserStats
type UserStats struct {
	TotalEnrolled int64 `json:"totalEnrolled"`
	Completed     int64 `json:"completed"`
	InProgress    int64 `json:"inProgress"`
	Certificates  int64 `json:"certificates"`
}
