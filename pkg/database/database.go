package database

import (
	"fmt"
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	SeedCatalog(db)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Module{},
		&model.Enrollment{},
		&model.Certificate{},
		&model.Review{},
	)
}

// SeedCatalog inserts a starter catalog when the courses table is empty so a
// fresh install has something to browse.
func SeedCatalog(db *gorm.DB) {
	var count int64
	db.Model(&model.Course{}).Count(&count)
	if count > 0 {
		return
	}

	courses := []model.Course{
		{
			Title:            "Modern Web Development",
			Description:      "Master the art of building beautiful, responsive websites using the latest technologies. This comprehensive course covers HTML5, CSS3, JavaScript ES6+, and modern frameworks.",
			ShortDescription: "Build modern, responsive websites with cutting-edge technologies",
			Duration:         "12 weeks",
			SkillLevel:       "Beginner",
			Price:            99.00,
			Instructor:       "Sarah Mitchell",
			Category:         "Development",
			Featured:         true,
		},
		{
			Title:            "UX/UI Design Fundamentals",
			Description:      "Learn the principles of user experience and interface design. From wireframing to prototyping, master the complete design process.",
			ShortDescription: "Create intuitive and beautiful digital experiences",
			Duration:         "8 weeks",
			SkillLevel:       "Beginner",
			Price:            79.00,
			Instructor:       "Alex Chen",
			Category:         "Design",
			Featured:         true,
		},
		{
			Title:            "Data Science Essentials",
			Description:      "Dive into the world of data science with Python. Learn statistical analysis, machine learning fundamentals, and data visualization techniques.",
			ShortDescription: "Unlock insights from data with Python and machine learning",
			Duration:         "16 weeks",
			SkillLevel:       "Intermediate",
			Price:            149.00,
			Instructor:       "Dr. Michael Foster",
			Category:         "Data Science",
			Featured:         true,
		},
		{
			Title:            "Digital Marketing Mastery",
			Description:      "Become a digital marketing expert. Learn SEO, social media marketing, content strategy, email marketing, and analytics.",
			ShortDescription: "Master digital channels to grow any business",
			Duration:         "10 weeks",
			SkillLevel:       "Beginner",
			Price:            89.00,
			Instructor:       "Emma Thompson",
			Category:         "Marketing",
			Featured:         false,
		},
		{
			Title:            "Advanced React Development",
			Description:      "Take your React skills to the next level. Learn advanced patterns, state management, testing strategies, and performance optimization.",
			ShortDescription: "Build scalable applications with advanced React patterns",
			Duration:         "10 weeks",
			SkillLevel:       "Advanced",
			Price:            129.00,
			Instructor:       "David Park",
			Category:         "Development",
			Featured:         true,
		},
		{
			Title:            "Product Management",
			Description:      "Learn how to lead product development from ideation to launch. Understand user research, roadmap planning, agile methodologies, and stakeholder management.",
			ShortDescription: "Lead products from concept to successful launch",
			Duration:         "12 weeks",
			SkillLevel:       "Intermediate",
			Price:            119.00,
			Instructor:       "Rachel Green",
			Category:         "Business",
			Featured:         false,
		},
	}

	moduleTemplates := []model.Module{
		{Title: "Introduction & Setup", Description: "Get started with the basics", Duration: "2 hours"},
		{Title: "Core Concepts", Description: "Learn fundamental principles", Duration: "4 hours"},
		{Title: "Hands-on Practice", Description: "Apply what you have learned", Duration: "6 hours"},
		{Title: "Advanced Topics", Description: "Dive deeper into complex subjects", Duration: "5 hours"},
		{Title: "Final Project", Description: "Build a real-world project", Duration: "8 hours"},
	}

	for i := range courses {
		if err := db.Create(&courses[i]).Error; err != nil {
			continue
		}
		for j, tpl := range moduleTemplates {
			m := tpl
			m.CourseID = courses[i].ID
			m.OrderIndex = j + 1
			db.Create(&m)
		}
	}

	log.Println("Course catalog seeded")
}
