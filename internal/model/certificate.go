package model

import (
	"time"

	"gorm.io/gorm"
)

// Certificate is immutable once issued; exactly one exists per
// (user, course) and the number is the shareable proof of completion.
// swagger:model Certificate
type Certificate struct {
	ID                string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID            string    `gorm:"type:varchar(36);not null;uniqueIndex:uniq_user_course_cert" json:"userId"`
	CourseID          string    `gorm:"type:varchar(36);not null;uniqueIndex:uniq_user_course_cert" json:"courseId"`
	CertificateNumber string    `gorm:"size:50;unique;not null" json:"certificateNumber"`
	IssuedAt          time.Time `gorm:"autoCreateTime" json:"issuedAt"`
}

func (Certificate) TableName() string {
	return "certificates"
}

func (c *Certificate) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = GenerateUUID()
	}
	return
}

// CertificateDetail is a certificate joined with course and holder names,
// the shape returned by issue, lookup and verification.
// swagger:model CertificateDetail
type CertificateDetail struct {
	Certificate
	CourseTitle string `json:"courseTitle"`
	Instructor  string `json:"instructor"`
	Duration    string `json:"duration"`
	UserName    string `json:"userName"`
}
