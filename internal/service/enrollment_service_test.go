package service

import (
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollCreatesEnrollment(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(
		repository.NewEnrollmentRepository(db),
		repository.NewCourseRepository(db),
		repository.NewCertificateRepository(db),
	)

	user := createTestUser(t, db, "alice@example.com", "Alice", "secret123")
	course := createTestCourse(t, db, "Go Basics", "Development", "Beginner", false)

	enrollment, err := svc.Enroll(user.ID, course.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, enrollment.ID)
	assert.Equal(t, 0, enrollment.Progress)
	assert.False(t, enrollment.Completed)
	assert.Nil(t, enrollment.CompletedAt)
}

func TestEnrollTwiceConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(
		repository.NewEnrollmentRepository(db),
		repository.NewCourseRepository(db),
		repository.NewCertificateRepository(db),
	)

	user := createTestUser(t, db, "alice@example.com", "Alice", "secret123")
	course := createTestCourse(t, db, "Go Basics", "Development", "Beginner", false)

	_, err := svc.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	_, err = svc.Enroll(user.ID, course.ID)
	assert.ErrorIs(t, err, util.ErrAlreadyEnrolled)
}

func TestEnrollUnknownCourse(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(
		repository.NewEnrollmentRepository(db),
		repository.NewCourseRepository(db),
		repository.NewCertificateRepository(db),
	)

	user := createTestUser(t, db, "alice@example.com", "Alice", "secret123")

	_, err := svc.Enroll(user.ID, "no-such-course")
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestUpdateProgressWithoutEnrollment(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(
		repository.NewEnrollmentRepository(db),
		repository.NewCourseRepository(db),
		repository.NewCertificateRepository(db),
	)

	user := createTestUser(t, db, "alice@example.com", "Alice", "secret123")
	course := createTestCourse(t, db, "Go Basics", "Development", "Beginner", false)

	_, err := svc.UpdateProgress(user.ID, course.ID, 50)
	assert.ErrorIs(t, err, util.ErrEnrollmentNotFound)
}

func TestProgressCompletionTransition(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(
		repository.NewEnrollmentRepository(db),
		repository.NewCourseRepository(db),
		repository.NewCertificateRepository(db),
	)

	fixedNow := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixedNow }

	user := createTestUser(t, db, "alice@example.com", "Alice", "secret123")
	course := createTestCourse(t, db, "Go Basics", "Development", "Beginner", false)

	_, err := svc.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	enrollment, err := svc.UpdateProgress(user.ID, course.ID, 40)
	require.NoError(t, err)
	assert.Equal(t, 40, enrollment.Progress)
	assert.False(t, enrollment.Completed)
	assert.Nil(t, enrollment.CompletedAt)

	enrollment, err = svc.UpdateProgress(user.ID, course.ID, 100)
	require.NoError(t, err)
	assert.True(t, enrollment.Completed)
	require.NotNil(t, enrollment.CompletedAt)
	assert.True(t, enrollment.CompletedAt.Equal(fixedNow))
}

func TestCompletedAtSurvivesRegression(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(
		repository.NewEnrollmentRepository(db),
		repository.NewCourseRepository(db),
		repository.NewCertificateRepository(db),
	)

	first := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return first }

	user := createTestUser(t, db, "alice@example.com", "Alice", "secret123")
	course := createTestCourse(t, db, "Go Basics", "Development", "Beginner", false)

	_, err := svc.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	_, err = svc.UpdateProgress(user.ID, course.ID, 100)
	require.NoError(t, err)

	// Moving backward clears the flag but keeps the first completion time.
	svc.now = func() time.Time { return first.Add(24 * time.Hour) }
	enrollment, err := svc.UpdateProgress(user.ID, course.ID, 50)
	require.NoError(t, err)
	assert.False(t, enrollment.Completed)
	require.NotNil(t, enrollment.CompletedAt)
	assert.True(t, enrollment.CompletedAt.Equal(first))

	// Completing again does not move it either.
	enrollment, err = svc.UpdateProgress(user.ID, course.ID, 100)
	require.NoError(t, err)
	assert.True(t, enrollment.Completed)
	assert.True(t, enrollment.CompletedAt.Equal(first))
}

func TestStatsCounters(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(
		repository.NewEnrollmentRepository(db),
		repository.NewCourseRepository(db),
		repository.NewCertificateRepository(db),
	)

	user := createTestUser(t, db, "alice@example.com", "Alice", "secret123")
	done := createTestCourse(t, db, "Go Basics", "Development", "Beginner", false)
	open := createTestCourse(t, db, "Go Advanced", "Development", "Advanced", false)

	_, err := svc.Enroll(user.ID, done.ID)
	require.NoError(t, err)
	_, err = svc.Enroll(user.ID, open.ID)
	require.NoError(t, err)
	_, err = svc.UpdateProgress(user.ID, done.ID, 100)
	require.NoError(t, err)

	certSvc := NewCertificateService(
		repository.NewCertificateRepository(db),
		repository.NewEnrollmentRepository(db),
		NewTimestampNumberSource(),
	)
	_, _, err = certSvc.Generate(user.ID, done.ID)
	require.NoError(t, err)

	stats, err := svc.Stats(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalEnrolled)
	assert.EqualValues(t, 1, stats.Completed)
	assert.EqualValues(t, 1, stats.InProgress)
	assert.EqualValues(t, 1, stats.Certificates)
}

func TestListEnrollmentsJoinsCourse(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(
		repository.NewEnrollmentRepository(db),
		repository.NewCourseRepository(db),
		repository.NewCertificateRepository(db),
	)

	user := createTestUser(t, db, "alice@example.com", "Alice", "secret123")
	course := createTestCourse(t, db, "Go Basics", "Development", "Beginner", false)

	_, err := svc.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	enrollments, err := svc.ListEnrollments(user.ID)
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, "Go Basics", enrollments[0].Title)
	assert.Equal(t, "Jane Doe", enrollments[0].Instructor)
}
