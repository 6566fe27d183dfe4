package service

import (
	"fmt"
	"learnhub_backend/internal/model"
	"learnhub_backend/pkg/database"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database per test. cache=shared keeps
// the database alive across the pool's connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email, name, password string) *model.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.User{
		Email:    email,
		Password: string(hashed),
		Name:     name,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestCourse(t *testing.T, db *gorm.DB, title, category, level string, featured bool) *model.Course {
	t.Helper()

	course := &model.Course{
		Title:       title,
		Description: "description of " + title,
		Duration:    "8 weeks",
		SkillLevel:  level,
		Price:       99,
		Instructor:  "Jane Doe",
		Category:    category,
		Featured:    featured,
	}
	require.NoError(t, db.Create(course).Error)
	return course
}

func createTestModules(t *testing.T, db *gorm.DB, courseID string, count int) {
	t.Helper()

	for i := 1; i <= count; i++ {
		m := &model.Module{
			CourseID:   courseID,
			Title:      fmt.Sprintf("Module %d", i),
			Duration:   "2 hours",
			OrderIndex: i,
		}
		require.NoError(t, db.Create(m).Error)
	}
}
