// seeduser creates (or refreshes) an administrative employee
// with a password so the gated routes can be used on a fresh database.
// Usage: go run ./cmd/seeduser -cpf 12345678901 -name "Admin Demo User" -password 'Admin123!'
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/GustavoGFG/omnisystem-backend-sql/internal/config"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/infra"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/model"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/security"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/validation"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cpf := flag.String("cpf", "12345678901", "employee CPF")
	name := flag.String("name", "Admin Demo User", "employee full name")
	password := flag.String("password", "Admin123!", "password to set")
	role := flag.String("role", model.RoleManager, "Coordinator or Manager")
	flag.Parse()

	normalized := validation.NormalizeCPF(*cpf)
	switch {
	case !validation.IsCPF(normalized):
		log.Fatal().Str("cpf", *cpf).Msg("invalid cpf")
	case !validation.IsFullName(*name):
		log.Fatal().Str("name", *name).Msg("invalid full name")
	case !validation.IsStrongPassword(*password):
		log.Fatal().Msg("password does not meet the complexity rules")
	case *role == model.RoleCashier:
		log.Fatal().Msg("cashiers cannot hold a password")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	db, err := infra.NewDatabase(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect error")
	}
	if err := infra.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	hash, err := security.HashPassword(*password, cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("bcrypt error")
	}

	ctx := context.Background()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		emp := model.Employee{
			FullName: *name,
			CPF:      normalized,
			HireDate: time.Now().UTC().Truncate(24 * time.Hour),
			Role:     *role,
		}
		err := tx.Where("cpf = ?", normalized).First(&emp).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = tx.Create(&emp).Error
		}
		if err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"password_hash"}),
		}).Create(&model.EmployeePassword{EmployeeID: emp.ID, PasswordHash: hash}).Error
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().Str("cpf", normalized).Str("role", *role).Msg("employee created/updated with password")
}
