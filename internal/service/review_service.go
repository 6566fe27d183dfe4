package service

import (
	"errors"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"gorm.io/gorm"
)

// ReviewService gates reviews on enrollment and enforces one review per
// user per course.
type ReviewService struct {
	ReviewRepo     *repository.ReviewRepository
	EnrollmentRepo *repository.EnrollmentRepository
}

func NewReviewService(reviewRepo *repository.ReviewRepository, enrollmentRepo *repository.EnrollmentRepository) *ReviewService {
	return &ReviewService{
		ReviewRepo:     reviewRepo,
		EnrollmentRepo: enrollmentRepo,
	}
}

func (s *ReviewService) Create(userID, courseID string, rating int, comment string) (*model.ReviewWithUser, error) {
	if rating < 1 || rating > 5 {
		return nil, util.ErrInvalidRating
	}

	if _, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotEnrolled
		}
		return nil, err
	}

	if _, err := s.ReviewRepo.FindByUserAndCourse(userID, courseID); err == nil {
		return nil, util.ErrAlreadyReviewed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	review := &model.Review{
		UserID:   userID,
		CourseID: courseID,
		Rating:   rating,
		Comment:  comment,
	}
	if err := s.ReviewRepo.Create(review); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrAlreadyReviewed
		}
		return nil, err
	}

	return s.ReviewRepo.FindDetail(review.ID)
}

func (s *ReviewService) Delete(userID, reviewID string) error {
	review, err := s.ReviewRepo.FindByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrReviewNotFound
		}
		return err
	}

	if review.UserID != userID {
		return util.ErrNotReviewAuthor
	}

	return s.ReviewRepo.Delete(reviewID)
}

func (s *ReviewService) ListRecent(limit int) ([]model.ReviewWithCourse, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.ReviewRepo.ListRecent(limit)
}

func (s *ReviewService) ListByCourse(courseID string) ([]model.ReviewWithUser, error) {
	return s.ReviewRepo.ListByCourse(courseID, 0)
}
