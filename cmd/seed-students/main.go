package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/campustrack/campustrack-backend/internal/config"
	"github.com/campustrack/campustrack-backend/internal/database"
	"github.com/campustrack/campustrack-backend/internal/logger"
	"github.com/campustrack/campustrack-backend/internal/model"
	"github.com/campustrack/campustrack-backend/internal/repository"
	"github.com/campustrack/campustrack-backend/internal/service"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	collegeRepo := repository.NewCollegeRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)

	collegeService := service.NewCollegeService(collegeRepo)
	studentService := service.NewStudentService(studentRepo)

	fmt.Println("=== Seeding 50 Students ===")

	collegeName := "College of Engineering"
	collegeCode := "COE"

	// Find or create the seed college.
	var college model.College
	err = pool.QueryRow(ctx,
		"SELECT id, name, code FROM colleges WHERE code = $1", collegeCode,
	).Scan(&college.ID, &college.Name, &college.Code)
	if err != nil {
		if err == pgx.ErrNoRows {
			fmt.Printf("College %s not found. Creating it...\n", collegeCode)
			newCollege := &model.College{Name: collegeName, Code: collegeCode}
			if err := collegeService.Create(ctx, newCollege); err != nil {
				log.Fatal().Err(err).Msg("Failed to create college")
			}
			college = *newCollege
			fmt.Printf("Created college with ID: %s\n", college.ID)
		} else {
			log.Fatal().Err(err).Msg("Failed to check existing college")
		}
	} else {
		fmt.Printf("Found existing college with ID: %s\n", college.ID)
	}

	names := []string{
		"Aaron Mitchell", "Bella Thompson", "Caleb Rodriguez", "Diana Foster", "Ethan Brooks",
		"Fiona Campbell", "Gavin Parker", "Hazel Morgan", "Isaac Bennett", "Jade Coleman",
		"Kyle Henderson", "Luna Richardson", "Mason Griffin", "Nora Sullivan", "Owen Hayes",
		"Paige Warren", "Quinn Douglas", "Ruby Fleming", "Sean Barrett", "Tessa Lawson",
		"Umar Farouk", "Violet Chandler", "Wesley Norton", "Ximena Reyes", "Yusuf Hassan",
		"Zoe Patterson", "Adrian Walsh", "Brooke Sanders", "Colin Murray", "Daphne Holt",
		"Elliot Frost", "Faith Donovan", "Graham Pierce", "Holly Weaver", "Ian Sheppard",
		"Julia Merritt", "Kieran Blake", "Lydia Hammond", "Miles Everett", "Naomi Fletcher",
		"Oliver Stanton", "Penelope Rhodes", "Ryan Calloway", "Sophia Winslow", "Theo Garrison",
		"Uma Prescott", "Victor Langley", "Willow Harding", "Xavier Monroe", "Yara Castellan",
	}

	courses := []string{"Computer Science", "Civil Engineering", "Electrical Engineering", "Mechanical Engineering"}
	sections := []string{"A", "B"}

	successCount := 0
	for i := 0; i < 50; i++ {
		section := sections[i%len(sections)]
		student := &model.Student{
			StudentCode: fmt.Sprintf("STU-%04d", i+1),
			FullName:    names[i],
			CollegeID:   college.ID,
			Course:      courses[i%len(courses)],
			Year:        (i % 4) + 1,
			Section:     &section,
		}

		err := studentService.Create(ctx, student)
		if err != nil {
			fmt.Printf("Error creating student %s (%s): %v\n", student.FullName, student.StudentCode, err)
		} else {
			successCount++
			if (i+1)%10 == 0 {
				fmt.Printf("Created %d students...\n", i+1)
			}
		}
	}

	fmt.Printf("\nSeed completed! Successfully added %d/50 students.\n", successCount)
}
