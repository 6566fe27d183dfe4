package model

import (
	"time"

	"gorm.io/gorm"
)

// swagger:model Review
type Review struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string    `gorm:"type:varchar(36);not null;uniqueIndex:uniq_user_course_review" json:"userId"`
	CourseID  string    `gorm:"type:varchar(36);not null;uniqueIndex:uniq_user_course_review" json:"courseId"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Review) TableName() string {
	return "reviews"
}

func (r *Review) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = GenerateUUID()
	}
	return
}

// ReviewWithUser carries the reviewer's display name alongside the review.
// swagger:model ReviewWithUser
type ReviewWithUser struct {
	Review
	UserName string `json:"userName"`
}

// ReviewWithCourse additionally names the reviewed course, for the
// site-wide recent-review feed.
// swagger:model ReviewWithCourse
type ReviewWithCourse struct {
	Review
	UserName    string `json:"userName"`
	CourseTitle string `json:"courseTitle"`
}
