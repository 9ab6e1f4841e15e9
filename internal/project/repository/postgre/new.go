package postgre

import (
	"database/sql"

	"ujenzi-notify/internal/project/repository"
	pkgLog "ujenzi-notify/pkg/log"
)

type implRepository struct {
	l  pkgLog.Logger
	db *sql.DB
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, db *sql.DB) *implRepository {
	return &implRepository{
		l:  l,
		db: db,
	}
}
