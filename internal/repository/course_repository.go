package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

// CourseFilter narrows the catalog listing; all provided fields must match.
type CourseFilter struct {
	Category     string
	SkillLevel   string
	FeaturedOnly bool
}

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id string) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, "id = ?", id).Error
	return &course, err
}

func (r *CourseRepository) List(filter CourseFilter) ([]model.Course, error) {
	query := r.DB.Model(&model.Course{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.SkillLevel != "" {
		query = query.Where("skill_level = ?", filter.SkillLevel)
	}
	if filter.FeaturedOnly {
		query = query.Where("featured = ?", true)
	}

	var courses []model.Course
	err := query.Order("created_at DESC").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) ListModules(courseID string) ([]model.Module, error) {
	var modules []model.Module
	err := r.DB.Where("course_id = ?", courseID).Order("order_index").Find(&modules).Error
	return modules, err
}

// Categories returns the distinct non-empty categories across the catalog.
func (r *CourseRepository) Categories() ([]string, error) {
	var categories []string
	err := r.DB.Model(&model.Course{}).
		Distinct("category").
		Where("category IS NOT NULL AND category != ''").
		Pluck("category", &categories).Error
	return categories, err
}
