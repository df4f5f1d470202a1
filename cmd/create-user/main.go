package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/campustrack/campustrack-backend/internal/config"
	"github.com/campustrack/campustrack-backend/internal/database"
	"github.com/campustrack/campustrack-backend/internal/logger"
	"github.com/campustrack/campustrack-backend/internal/model"
	"github.com/campustrack/campustrack-backend/internal/repository"
	"github.com/campustrack/campustrack-backend/internal/service"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	profileRepo := repository.NewProfileRepository(pool)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Profile ===")

	// Full name
	fmt.Print("Enter Full Name: ")
	fullName, _ := reader.ReadString('\n')
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		fmt.Println("Error: Full name is required")
		return
	}

	// Email
	fmt.Print("Enter Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		fmt.Println("Error: Email is required")
		return
	}

	// Password
	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	password := string(bytePassword)
	fmt.Println() // Newline after password input
	if len(password) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}

	// Role
	fmt.Printf("Enter Role (default %q): ", service.DefaultRole)
	role, _ := reader.ReadString('\n')
	role = strings.TrimSpace(role)
	if role == "" {
		role = service.DefaultRole
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	profile := &model.Profile{
		Email:        email,
		FullName:     fullName,
		Role:         role,
		PasswordHash: string(hashedPassword),
	}

	if err := profileRepo.Create(ctx, profile); err != nil {
		log.Fatal().Err(err).Msg("Failed to create profile")
	}

	fmt.Printf("\nSuccess! Profile '%s' (%s) created with ID: %s\n", profile.FullName, profile.Email, profile.ID)
}
