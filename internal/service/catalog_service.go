package service

import (
	"context"
	"encoding/json"
	"errors"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	courseDetailKeyPrefix = "catalog:course:"
	categoriesKey         = "catalog:categories"
	catalogCacheTTL       = 10 * time.Minute

	// Course detail carries at most this many recent reviews.
	detailReviewLimit = 5
)

// CatalogService serves the read-mostly course catalog, with a Redis
// read-through cache in front of the detail and category queries. A nil
// Redis client disables caching.
type CatalogService struct {
	CourseRepo *repository.CourseRepository
	ReviewRepo *repository.ReviewRepository
	Redis      *redis.Client
}

func NewCatalogService(courseRepo *repository.CourseRepository, reviewRepo *repository.ReviewRepository, rdb *redis.Client) *CatalogService {
	return &CatalogService{
		CourseRepo: courseRepo,
		ReviewRepo: reviewRepo,
		Redis:      rdb,
	}
}

func (s *CatalogService) ListCourses(filter repository.CourseFilter) ([]model.Course, error) {
	return s.CourseRepo.List(filter)
}

func (s *CatalogService) GetCourse(ctx context.Context, id string) (*model.CourseDetail, error) {
	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, courseDetailKeyPrefix+id).Result(); err == nil {
			var detail model.CourseDetail
			if json.Unmarshal([]byte(val), &detail) == nil {
				return &detail, nil
			}
		}
	}

	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	modules, err := s.CourseRepo.ListModules(id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.ReviewRepo.ListByCourse(id, detailReviewLimit)
	if err != nil {
		return nil, err
	}

	detail := &model.CourseDetail{
		Course:  *course,
		Modules: modules,
		Reviews: reviews,
	}

	if s.Redis != nil {
		if data, err := json.Marshal(detail); err == nil {
			s.Redis.Set(ctx, courseDetailKeyPrefix+id, data, catalogCacheTTL)
		}
	}

	return detail, nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, categoriesKey).Result(); err == nil {
			var categories []string
			if json.Unmarshal([]byte(val), &categories) == nil {
				return categories, nil
			}
		}
	}

	categories, err := s.CourseRepo.Categories()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(categories); err == nil {
			s.Redis.Set(ctx, categoriesKey, data, catalogCacheTTL)
		}
	}

	return categories, nil
}

// InvalidateCourse drops a cached detail, e.g. after a new review lands.
func (s *CatalogService) InvalidateCourse(ctx context.Context, id string) {
	if s.Redis != nil {
		s.Redis.Del(ctx, courseDetailKeyPrefix+id)
	}
}
