package service

import (
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequenceNumberSource returns canned numbers in order, then repeats the
// last one.
type sequenceNumberSource struct {
	numbers []string
	i       int
}

func (s *sequenceNumberSource) Next() string {
	n := s.numbers[s.i]
	if s.i < len(s.numbers)-1 {
		s.i++
	}
	return n
}

func newCertServices(t *testing.T) (*CertificateService, *EnrollmentService, *certFixture) {
	t.Helper()

	db := newTestDB(t)
	certRepo := repository.NewCertificateRepository(db)
	enrollRepo := repository.NewEnrollmentRepository(db)
	courseRepo := repository.NewCourseRepository(db)

	certSvc := NewCertificateService(certRepo, enrollRepo, NewTimestampNumberSource())
	enrollSvc := NewEnrollmentService(enrollRepo, courseRepo, certRepo)

	user := createTestUser(t, db, "alice@example.com", "Alice", "secret123")
	course := createTestCourse(t, db, "Go Basics", "Development", "Beginner", false)

	return certSvc, enrollSvc, &certFixture{
		certRepo: certRepo,
		userID:   user.ID,
		courseID: course.ID,
	}
}

type certFixture struct {
	certRepo *repository.CertificateRepository
	userID   string
	courseID string
}

func TestGenerateRequiresCompletedEnrollment(t *testing.T) {
	certSvc, enrollSvc, f := newCertServices(t)

	_, _, err := certSvc.Generate(f.userID, f.courseID)
	assert.ErrorIs(t, err, util.ErrCourseNotCompleted)

	_, err = enrollSvc.Enroll(f.userID, f.courseID)
	require.NoError(t, err)
	_, err = enrollSvc.UpdateProgress(f.userID, f.courseID, 60)
	require.NoError(t, err)

	_, _, err = certSvc.Generate(f.userID, f.courseID)
	assert.ErrorIs(t, err, util.ErrCourseNotCompleted)
}

func TestGenerateIsIdempotent(t *testing.T) {
	certSvc, enrollSvc, f := newCertServices(t)

	_, err := enrollSvc.Enroll(f.userID, f.courseID)
	require.NoError(t, err)
	_, err = enrollSvc.UpdateProgress(f.userID, f.courseID, 100)
	require.NoError(t, err)

	first, created, err := certSvc.Generate(f.userID, f.courseID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Go Basics", first.CourseTitle)
	assert.Equal(t, "Alice", first.UserName)

	second, created, err := certSvc.Generate(f.userID, f.courseID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.CertificateNumber, second.CertificateNumber)
	assert.Equal(t, first.ID, second.ID)
}

func TestCertificateNumberFormat(t *testing.T) {
	certSvc, enrollSvc, f := newCertServices(t)

	_, err := enrollSvc.Enroll(f.userID, f.courseID)
	require.NoError(t, err)
	_, err = enrollSvc.UpdateProgress(f.userID, f.courseID, 100)
	require.NoError(t, err)

	detail, _, err := certSvc.Generate(f.userID, f.courseID)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^CERT-[0-9A-Z]+-[0-9A-Z]{4}$`), detail.CertificateNumber)
}

func TestGenerateRetriesOnDuplicateNumber(t *testing.T) {
	certSvc, enrollSvc, f := newCertServices(t)

	// A second learner completes another course and takes the number the
	// stub will offer first.
	db := f.certRepo.DB
	other := createTestUser(t, db, "bob@example.com", "Bob", "secret123")
	otherCourse := createTestCourse(t, db, "Go Advanced", "Development", "Advanced", false)
	_, err := enrollSvc.Enroll(other.ID, otherCourse.ID)
	require.NoError(t, err)
	_, err = enrollSvc.UpdateProgress(other.ID, otherCourse.ID, 100)
	require.NoError(t, err)

	taken := &sequenceNumberSource{numbers: []string{"CERT-TAKEN-AAAA"}}
	certSvc.Numbers = taken
	_, _, err = certSvc.Generate(other.ID, otherCourse.ID)
	require.NoError(t, err)

	_, err = enrollSvc.Enroll(f.userID, f.courseID)
	require.NoError(t, err)
	_, err = enrollSvc.UpdateProgress(f.userID, f.courseID, 100)
	require.NoError(t, err)

	certSvc.Numbers = &sequenceNumberSource{numbers: []string{"CERT-TAKEN-AAAA", "CERT-FRESH-BBBB"}}
	detail, created, err := certSvc.Generate(f.userID, f.courseID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "CERT-FRESH-BBBB", detail.CertificateNumber)
}

func TestVerifyCertificate(t *testing.T) {
	certSvc, enrollSvc, f := newCertServices(t)

	valid, detail, err := certSvc.Verify("CERT-UNKNOWN-XXXX")
	require.NoError(t, err)
	assert.False(t, valid)
	assert.Nil(t, detail)

	_, err = enrollSvc.Enroll(f.userID, f.courseID)
	require.NoError(t, err)
	_, err = enrollSvc.UpdateProgress(f.userID, f.courseID, 100)
	require.NoError(t, err)
	issued, _, err := certSvc.Generate(f.userID, f.courseID)
	require.NoError(t, err)

	valid, detail, err = certSvc.Verify(issued.CertificateNumber)
	require.NoError(t, err)
	assert.True(t, valid)
	require.NotNil(t, detail)
	assert.Equal(t, issued.CertificateNumber, detail.CertificateNumber)
	assert.Equal(t, "Alice", detail.UserName)
}

func TestGetByIDOrNumber(t *testing.T) {
	certSvc, enrollSvc, f := newCertServices(t)

	_, err := enrollSvc.Enroll(f.userID, f.courseID)
	require.NoError(t, err)
	_, err = enrollSvc.UpdateProgress(f.userID, f.courseID, 100)
	require.NoError(t, err)
	issued, _, err := certSvc.Generate(f.userID, f.courseID)
	require.NoError(t, err)

	byID, err := certSvc.Get(issued.ID)
	require.NoError(t, err)
	assert.Equal(t, issued.CertificateNumber, byID.CertificateNumber)

	byNumber, err := certSvc.Get(issued.CertificateNumber)
	require.NoError(t, err)
	assert.Equal(t, issued.ID, byNumber.ID)

	_, err = certSvc.Get("nope")
	assert.ErrorIs(t, err, util.ErrCertificateNotFound)
}
