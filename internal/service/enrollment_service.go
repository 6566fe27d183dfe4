package service

import (
	"errors"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

// EnrollmentService creates enrollments and tracks progress toward
// completion. The completed transition is one-way: once CompletedAt is set
// it is never overwritten, even if progress later moves backward.
type EnrollmentService struct {
	EnrollmentRepo  *repository.EnrollmentRepository
	CourseRepo      *repository.CourseRepository
	CertificateRepo *repository.CertificateRepository

	now func() time.Time
}

func NewEnrollmentService(
	enrollmentRepo *repository.EnrollmentRepository,
	courseRepo *repository.CourseRepository,
	certificateRepo *repository.CertificateRepository,
) *EnrollmentService {
	return &EnrollmentService{
		EnrollmentRepo:  enrollmentRepo,
		CourseRepo:      courseRepo,
		CertificateRepo: certificateRepo,
		now:             time.Now,
	}
}

func (s *EnrollmentService) Enroll(userID, courseID string) (*model.Enrollment, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	if _, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID); err == nil {
		return nil, util.ErrAlreadyEnrolled
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := &model.Enrollment{
		UserID:   userID,
		CourseID: courseID,
	}
	if err := s.EnrollmentRepo.Create(enrollment); err != nil {
		// Two concurrent enrolls race past the existence check; the
		// unique (user_id, course_id) index settles it.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrAlreadyEnrolled
		}
		return nil, err
	}
	return enrollment, nil
}

// UpdateProgress stores the progress value as given and derives the
// completed flag from it. CompletedAt keeps its first value.
func (s *EnrollmentService) UpdateProgress(userID, courseID string, progress int) (*model.Enrollment, error) {
	enrollment, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrEnrollmentNotFound
		}
		return nil, err
	}

	enrollment.Progress = progress
	enrollment.Completed = progress >= 100
	if enrollment.Completed && enrollment.CompletedAt == nil {
		completedAt := s.now()
		enrollment.CompletedAt = &completedAt
	}

	if err := s.EnrollmentRepo.Update(enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *EnrollmentService) ListEnrollments(userID string) ([]model.EnrolledCourse, error) {
	return s.EnrollmentRepo.ListByUser(userID)
}

func (s *EnrollmentService) ListCompleted(userID string) ([]model.EnrolledCourse, error) {
	return s.EnrollmentRepo.ListCompletedByUser(userID)
}

func (s *EnrollmentService) Stats(userID string) (*model.UserStats, error) {
	total, err := s.EnrollmentRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	completed, err := s.EnrollmentRepo.CountByUserAndCompleted(userID, true)
	if err != nil {
		return nil, err
	}
	inProgress, err := s.EnrollmentRepo.CountByUserAndCompleted(userID, false)
	if err != nil {
		return nil, err
	}
	certificates, err := s.CertificateRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	return &model.UserStats{
		TotalEnrolled: total,
		Completed:     completed,
		InProgress:    inProgress,
		Certificates:  certificates,
	}, nil
}
