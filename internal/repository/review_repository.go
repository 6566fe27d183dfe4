package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(review *model.Review) error {
	return r.DB.Create(review).Error
}

func (r *ReviewRepository) FindByID(id string) (*model.Review, error) {
	var review model.Review
	err := r.DB.First(&review, "id = ?", id).Error
	return &review, err
}

func (r *ReviewRepository) FindByUserAndCourse(userID, courseID string) (*model.Review, error) {
	var review model.Review
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&review).Error
	return &review, err
}

func (r *ReviewRepository) Delete(id string) error {
	return r.DB.Delete(&model.Review{}, "id = ?", id).Error
}

func (r *ReviewRepository) FindDetail(id string) (*model.ReviewWithUser, error) {
	var detail model.ReviewWithUser
	err := r.DB.Table("reviews r").
		Select("r.*, u.name AS user_name").
		Joins("JOIN users u ON r.user_id = u.id").
		Where("r.id = ?", id).
		Take(&detail).Error
	return &detail, err
}

// ListRecent feeds the site-wide review strip on the homepage.
func (r *ReviewRepository) ListRecent(limit int) ([]model.ReviewWithCourse, error) {
	var reviews []model.ReviewWithCourse
	err := r.DB.Table("reviews r").
		Select("r.*, u.name AS user_name, c.title AS course_title").
		Joins("JOIN users u ON r.user_id = u.id").
		Joins("JOIN courses c ON r.course_id = c.id").
		Order("r.created_at DESC").
		Limit(limit).
		Scan(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) ListByCourse(courseID string, limit int) ([]model.ReviewWithUser, error) {
	var reviews []model.ReviewWithUser
	query := r.DB.Table("reviews r").
		Select("r.*, u.name AS user_name").
		Joins("JOIN users u ON r.user_id = u.id").
		Where("r.course_id = ?", courseID).
		Order("r.created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Scan(&reviews).Error
	return reviews, err
}
