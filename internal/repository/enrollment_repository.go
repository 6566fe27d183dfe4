package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) Create(enrollment *model.Enrollment) error {
	return r.DB.Create(enrollment).Error
}

func (r *EnrollmentRepository) FindByUserAndCourse(userID, courseID string) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
	return &enrollment, err
}

func (r *EnrollmentRepository) Update(enrollment *model.Enrollment) error {
	return r.DB.Save(enrollment).Error
}

// ListByUser returns the user's enrollments joined with course columns,
// newest enrollment first.
func (r *EnrollmentRepository) ListByUser(userID string) ([]model.EnrolledCourse, error) {
	var enrollments []model.EnrolledCourse
	err := r.DB.Table("enrollments e").
		Select("e.*, c.title, c.description, c.short_description, c.image, c.duration, c.skill_level, c.instructor").
		Joins("JOIN courses c ON e.course_id = c.id").
		Where("e.user_id = ?", userID).
		Order("e.enrolled_at DESC").
		Scan(&enrollments).Error
	return enrollments, err
}

func (r *EnrollmentRepository) ListCompletedByUser(userID string) ([]model.EnrolledCourse, error) {
	var enrollments []model.EnrolledCourse
	err := r.DB.Table("enrollments e").
		Select("e.*, c.title, c.description, c.short_description, c.image, c.duration, c.skill_level, c.instructor").
		Joins("JOIN courses c ON e.course_id = c.id").
		Where("e.user_id = ? AND e.completed = ?", userID, true).
		Order("e.completed_at DESC").
		Scan(&enrollments).Error
	return enrollments, err
}

func (r *EnrollmentRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *EnrollmentRepository) CountByUserAndCompleted(userID string, completed bool) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).
		Where("user_id = ? AND completed = ?", userID, completed).
		Count(&count).Error
	return count, err
}
