package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type CertificateRepository struct {
	DB *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{DB: db}
}

func (r *CertificateRepository) Create(cert *model.Certificate) error {
	return r.DB.Create(cert).Error
}

func (r *CertificateRepository) FindByUserAndCourse(userID, courseID string) (*model.Certificate, error) {
	var cert model.Certificate
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&cert).Error
	return &cert, err
}

func (r *CertificateRepository) detailQuery() *gorm.DB {
	return r.DB.Table("certificates cert").
		Select("cert.*, c.title AS course_title, c.instructor, c.duration, u.name AS user_name").
		Joins("JOIN courses c ON cert.course_id = c.id").
		Joins("JOIN users u ON cert.user_id = u.id")
}

// FindDetail resolves by internal id or by public certificate number.
func (r *CertificateRepository) FindDetail(idOrNumber string) (*model.CertificateDetail, error) {
	var detail model.CertificateDetail
	err := r.detailQuery().
		Where("cert.id = ? OR cert.certificate_number = ?", idOrNumber, idOrNumber).
		Take(&detail).Error
	return &detail, err
}

func (r *CertificateRepository) FindDetailByNumber(number string) (*model.CertificateDetail, error) {
	var detail model.CertificateDetail
	err := r.detailQuery().
		Where("cert.certificate_number = ?", number).
		Take(&detail).Error
	return &detail, err
}

func (r *CertificateRepository) ListDetailsByUser(userID string) ([]model.CertificateDetail, error) {
	var details []model.CertificateDetail
	err := r.detailQuery().
		Where("cert.user_id = ?", userID).
		Order("cert.issued_at DESC").
		Scan(&details).Error
	return details, err
}

func (r *CertificateRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Certificate{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
