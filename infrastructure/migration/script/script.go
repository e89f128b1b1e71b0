package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/lib/pq"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/supplier-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/supplier-performance-api/internal/config"
	"github.com/vfg2006/supplier-performance-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const (
	idLength   = 12
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS suppliers (
		id          VARCHAR(32) PRIMARY KEY,
		name        TEXT        NOT NULL,
		code        TEXT        NOT NULL UNIQUE,
		categories  TEXT[]      NOT NULL DEFAULT '{}',
		active      BOOLEAN     NOT NULL DEFAULT TRUE,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            SERIAL PRIMARY KEY,
		name          TEXT        NOT NULL,
		lastname      TEXT        NOT NULL DEFAULT '',
		email         TEXT        NOT NULL UNIQUE,
		password_hash TEXT        NOT NULL,
		active        BOOLEAN     NOT NULL DEFAULT TRUE,
		role_id       INT         NOT NULL,
		deleted       BOOLEAN     NOT NULL DEFAULT FALSE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS supplier_targets (
		id                 VARCHAR(32) PRIMARY KEY,
		supplier_id        VARCHAR(32) NOT NULL REFERENCES suppliers(id),
		year               INT         NOT NULL,
		month              INT         NOT NULL CHECK (month BETWEEN 1 AND 12),
		total_packs_target INT         NOT NULL CHECK (total_packs_target >= 0),
		weekly_targets     JSONB       NOT NULL,
		category_targets   JSONB,
		notes              TEXT        NOT NULL DEFAULT '',
		created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (supplier_id, year, month)
	)`,
	`CREATE TABLE IF NOT EXISTS supplier_incentives (
		id                    VARCHAR(32)   PRIMARY KEY,
		supplier_id           VARCHAR(32)   NOT NULL REFERENCES suppliers(id),
		year                  INT           NOT NULL,
		month                 INT           NOT NULL CHECK (month BETWEEN 1 AND 12),
		incentive_percentage  NUMERIC(5,2)  NOT NULL CHECK (incentive_percentage BETWEEN 0 AND 100),
		actual_incentive_paid NUMERIC(14,2) CHECK (actual_incentive_paid >= 0),
		notes                 TEXT          NOT NULL DEFAULT '',
		created_at            TIMESTAMPTZ   NOT NULL DEFAULT NOW(),
		updated_at            TIMESTAMPTZ   NOT NULL DEFAULT NOW(),
		UNIQUE (supplier_id, year, month)
	)`,
	`CREATE TABLE IF NOT EXISTS supplier_orders (
		id           VARCHAR(32)   PRIMARY KEY,
		external_id  TEXT          NOT NULL UNIQUE,
		supplier_id  VARCHAR(32)   NOT NULL,
		final_amount NUMERIC(14,2) NOT NULL,
		status       TEXT          NOT NULL,
		created_at   TIMESTAMPTZ   NOT NULL,
		synced_at    TIMESTAMPTZ   NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_supplier_orders_supplier_created ON supplier_orders (supplier_id, created_at)`,
}

type Supplier struct {
	Name       string
	Code       string
	Categories []domain.Category
}

var suppliers = []Supplier{
	{Name: "Bebidas Sul", Code: "BSUL", Categories: []domain.Category{domain.CategoryCSD, domain.CategoryWater}},
	{Name: "Energia Norte", Code: "ENOR", Categories: []domain.Category{domain.CategoryED}},
	{Name: "Águas do Vale", Code: "AVAL", Categories: []domain.Category{domain.CategoryWater, domain.CategoryJuice}},
}

func generateID() string {
	id, err := gonanoid.Generate(characters, idLength)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar identificador")
	}
	return id
}

func createSchema(ctx context.Context, tx *sql.Tx) error {
	for i, statement := range schema {
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			return err
		}
		logrus.Debugf("Instrução %d/%d aplicada", i+1, len(schema))
	}
	logrus.Infof("Esquema aplicado com %d instruções", len(schema))
	return nil
}

func insertSuppliers(ctx context.Context, tx *sql.Tx) error {
	inserted := 0
	for _, s := range suppliers {
		categories := make([]string, 0, len(s.Categories))
		for _, category := range s.Categories {
			categories = append(categories, string(category))
		}

		result, err := tx.ExecContext(ctx,
			`INSERT INTO suppliers (id, name, code, categories) VALUES ($1, $2, $3, $4) ON CONFLICT (code) DO NOTHING`,
			generateID(), s.Name, s.Code, pq.Array(categories),
		)
		if err != nil {
			return err
		}

		if affected, _ := result.RowsAffected(); affected > 0 {
			inserted++
		}
	}

	logrus.Infof("Fornecedores inseridos: %d de %d", inserted, len(suppliers))
	return nil
}

// insertAdmin cria o administrador inicial quando MIGRATION_ADMIN_EMAIL e MIGRATION_ADMIN_PASSWORD estão definidos
func insertAdmin(ctx context.Context, tx *sql.Tx) error {
	email, password := os.Getenv("MIGRATION_ADMIN_EMAIL"), os.Getenv("MIGRATION_ADMIN_PASSWORD")
	if email == "" || password == "" {
		logrus.Info("Administrador inicial não configurado, etapa ignorada")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO users (name, email, password_hash, role_id) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING`,
		"Administrador", email, string(hash), domain.RoleAdmin,
	)
	if err != nil {
		return err
	}

	logrus.Infof("Administrador inicial garantido: %s", email)
	return nil
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")
	startTime := time.Now()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx := context.Background()
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createSchema(ctx, tx); err != nil {
			return err
		}
		if err := insertSuppliers(ctx, tx); err != nil {
			return err
		}
		return insertAdmin(ctx, tx)
	})
	if err != nil {
		logrus.WithError(err).Fatal("Migração falhou, transação revertida")
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
}
