package service

import (
	"context"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCatalogService(t *testing.T) (*CatalogService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	svc := NewCatalogService(
		repository.NewCourseRepository(db),
		repository.NewReviewRepository(db),
		nil,
	)
	return svc, db
}

func TestListCoursesFilters(t *testing.T) {
	svc, db := newCatalogService(t)

	createTestCourse(t, db, "Go Basics", "Development", "Beginner", true)
	createTestCourse(t, db, "Go Advanced", "Development", "Advanced", false)
	createTestCourse(t, db, "Figma 101", "Design", "Beginner", true)

	all, err := svc.ListCourses(repository.CourseFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	dev, err := svc.ListCourses(repository.CourseFilter{Category: "Development"})
	require.NoError(t, err)
	assert.Len(t, dev, 2)

	featuredBeginners, err := svc.ListCourses(repository.CourseFilter{
		SkillLevel:   "Beginner",
		FeaturedOnly: true,
	})
	require.NoError(t, err)
	assert.Len(t, featuredBeginners, 2)

	none, err := svc.ListCourses(repository.CourseFilter{Category: "Design", SkillLevel: "Advanced"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetCourseDetail(t *testing.T) {
	svc, db := newCatalogService(t)

	course := createTestCourse(t, db, "Go Basics", "Development", "Beginner", false)
	createTestModules(t, db, course.ID, 5)

	// Seven reviewers; the detail keeps only the five most recent.
	enrollRepo := repository.NewEnrollmentRepository(db)
	reviewSvc := NewReviewService(repository.NewReviewRepository(db), enrollRepo)
	enrollSvc := NewEnrollmentService(enrollRepo, repository.NewCourseRepository(db), repository.NewCertificateRepository(db))
	for i := 0; i < 7; i++ {
		u := createTestUser(t, db, string(rune('a'+i))+"@example.com", "User", "secret123")
		_, err := enrollSvc.Enroll(u.ID, course.ID)
		require.NoError(t, err)
		_, err = reviewSvc.Create(u.ID, course.ID, 5, "nice")
		require.NoError(t, err)
	}

	detail, err := svc.GetCourse(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go Basics", detail.Title)
	require.Len(t, detail.Modules, 5)
	for i, m := range detail.Modules {
		assert.Equal(t, i+1, m.OrderIndex)
	}
	assert.Len(t, detail.Reviews, 5)
}

func TestGetCourseNotFound(t *testing.T) {
	svc, _ := newCatalogService(t)

	_, err := svc.GetCourse(context.Background(), "missing")
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestCategoriesDistinct(t *testing.T) {
	svc, db := newCatalogService(t)

	createTestCourse(t, db, "Go Basics", "Development", "Beginner", false)
	createTestCourse(t, db, "Go Advanced", "Development", "Advanced", false)
	createTestCourse(t, db, "Figma 101", "Design", "Beginner", false)
	createTestCourse(t, db, "Uncategorized", "", "Beginner", false)

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Development", "Design"}, categories)
}
