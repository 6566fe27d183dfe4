package service

import (
	"errors"
	"fmt"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/monitoring"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// NumberSource mints candidate certificate numbers. Injected so tests can
// pin the output; the storage-level unique constraint is the authoritative
// collision guard.
type NumberSource interface {
	Next() string
}

type timestampNumberSource struct {
	rnd *rand.Rand
}

// Next produces CERT-<base36 millis>-<4 base36 chars>, upper-cased.
func (s *timestampNumberSource) Next() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))

	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = alphabet[s.rnd.Intn(len(alphabet))]
	}

	return fmt.Sprintf("CERT-%s-%s", ts, strings.ToUpper(string(suffix)))
}

func NewTimestampNumberSource() NumberSource {
	return &timestampNumberSource{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CertificateService issues completion certificates, exactly one per
// (user, course), and serves public lookup and verification.
type CertificateService struct {
	CertificateRepo *repository.CertificateRepository
	EnrollmentRepo  *repository.EnrollmentRepository
	Numbers         NumberSource
}

func NewCertificateService(
	certificateRepo *repository.CertificateRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	numbers NumberSource,
) *CertificateService {
	return &CertificateService{
		CertificateRepo: certificateRepo,
		EnrollmentRepo:  enrollmentRepo,
		Numbers:         numbers,
	}
}

// Generate is idempotent: repeated calls for the same (user, course) return
// the certificate issued first. A completed enrollment must exist.
func (s *CertificateService) Generate(userID, courseID string) (*model.CertificateDetail, bool, error) {
	enrollment, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, util.ErrCourseNotCompleted
		}
		return nil, false, err
	}
	if !enrollment.Completed {
		return nil, false, util.ErrCourseNotCompleted
	}

	if existing, err := s.CertificateRepo.FindByUserAndCourse(userID, courseID); err == nil {
		detail, err := s.CertificateRepo.FindDetail(existing.ID)
		if err != nil {
			return nil, false, err
		}
		return detail, false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	cert := &model.Certificate{
		UserID:   userID,
		CourseID: courseID,
	}

	// A duplicate number is retried with a fresh one; a duplicate
	// (user, course) means a concurrent call won the race, so return its
	// certificate instead.
	for attempt := 0; attempt < 3; attempt++ {
		cert.CertificateNumber = s.Numbers.Next()
		err = s.CertificateRepo.Create(cert)
		if err == nil {
			monitoring.CertificatesIssued.Inc()
			detail, derr := s.CertificateRepo.FindDetail(cert.ID)
			if derr != nil {
				return nil, false, derr
			}
			return detail, true, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, false, err
		}
		if existing, ferr := s.CertificateRepo.FindByUserAndCourse(userID, courseID); ferr == nil {
			detail, derr := s.CertificateRepo.FindDetail(existing.ID)
			if derr != nil {
				return nil, false, derr
			}
			return detail, false, nil
		}
	}
	return nil, false, err
}

// Get resolves a certificate by internal id or public number.
func (s *CertificateService) Get(idOrNumber string) (*model.CertificateDetail, error) {
	detail, err := s.CertificateRepo.FindDetail(idOrNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCertificateNotFound
		}
		return nil, err
	}
	return detail, nil
}

// Verify reports whether a certificate number was issued, with the record
// when it was.
func (s *CertificateService) Verify(number string) (bool, *model.CertificateDetail, error) {
	detail, err := s.CertificateRepo.FindDetailByNumber(number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil, nil
		}
		return false, nil, err
	}
	return true, detail, nil
}

func (s *CertificateService) ListForUser(userID string) ([]model.CertificateDetail, error) {
	return s.CertificateRepo.ListDetailsByUser(userID)
}
