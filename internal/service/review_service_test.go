package service

import (
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReviewService(t *testing.T) (*ReviewService, *EnrollmentService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	reviewSvc := NewReviewService(
		repository.NewReviewRepository(db),
		repository.NewEnrollmentRepository(db),
	)
	enrollSvc := NewEnrollmentService(
		repository.NewEnrollmentRepository(db),
		repository.NewCourseRepository(db),
		repository.NewCertificateRepository(db),
	)
	return reviewSvc, enrollSvc, db
}

func TestCreateReviewValidatesRating(t *testing.T) {
	reviewSvc, _, db := newReviewService(t)

	user := createTestUser(t, db, "alice@example.com", "Alice", "secret123")
	course := createTestCourse(t, db, "Go Basics", "Development", "Beginner", false)

	_, err := reviewSvc.Create(user.ID, course.ID, 0, "meh")
	assert.ErrorIs(t, err, util.ErrInvalidRating)

	_, err = reviewSvc.Create(user.ID, course.ID, 6, "wow")
	assert.ErrorIs(t, err, util.ErrInvalidRating)
}

func TestCreateReviewRequiresEnrollment(t *testing.T) {
	reviewSvc, _, db := newReviewService(t)

	user := createTestUser(t, db, "alice@example.com", "Alice", "secret123")
	course := createTestCourse(t, db, "Go Basics", "Development", "Beginner", false)

	_, err := reviewSvc.Create(user.ID, course.ID, 5, "great")
	assert.ErrorIs(t, err, util.ErrNotEnrolled)
}

func TestCreateReviewOncePerCourse(t *testing.T) {
	reviewSvc, enrollSvc, db := newReviewService(t)

	user := createTestUser(t, db, "alice@example.com", "Alice", "secret123")
	course := createTestCourse(t, db, "Go Basics", "Development", "Beginner", false)

	_, err := enrollSvc.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	review, err := reviewSvc.Create(user.ID, course.ID, 5, "great course")
	require.NoError(t, err)
	assert.Equal(t, "Alice", review.UserName)
	assert.Equal(t, 5, review.Rating)

	_, err = reviewSvc.Create(user.ID, course.ID, 4, "second thoughts")
	assert.ErrorIs(t, err, util.ErrAlreadyReviewed)
}

func TestDeleteReviewAuthorOnly(t *testing.T) {
	reviewSvc, enrollSvc, db := newReviewService(t)

	author := createTestUser(t, db, "alice@example.com", "Alice", "secret123")
	stranger := createTestUser(t, db, "bob@example.com", "Bob", "secret123")
	course := createTestCourse(t, db, "Go Basics", "Development", "Beginner", false)

	_, err := enrollSvc.Enroll(author.ID, course.ID)
	require.NoError(t, err)
	review, err := reviewSvc.Create(author.ID, course.ID, 4, "solid")
	require.NoError(t, err)

	err = reviewSvc.Delete(stranger.ID, review.ID)
	assert.ErrorIs(t, err, util.ErrNotReviewAuthor)

	err = reviewSvc.Delete(author.ID, review.ID)
	require.NoError(t, err)

	listed, err := reviewSvc.ListByCourse(course.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)

	err = reviewSvc.Delete(author.ID, review.ID)
	assert.ErrorIs(t, err, util.ErrReviewNotFound)
}

func TestListRecentJoinsCourseTitle(t *testing.T) {
	reviewSvc, enrollSvc, db := newReviewService(t)

	user := createTestUser(t, db, "alice@example.com", "Alice", "secret123")
	course := createTestCourse(t, db, "Go Basics", "Development", "Beginner", false)

	_, err := enrollSvc.Enroll(user.ID, course.ID)
	require.NoError(t, err)
	_, err = reviewSvc.Create(user.ID, course.ID, 5, "great")
	require.NoError(t, err)

	recent, err := reviewSvc.ListRecent(10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "Go Basics", recent[0].CourseTitle)
	assert.Equal(t, "Alice", recent[0].UserName)
}
