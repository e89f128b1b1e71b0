// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"errors"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/supplier-performance-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// scanner é satisfeito por *sql.Row e *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func notFoundOr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}
