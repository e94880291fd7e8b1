package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/sehat-jiwa/assessment-service/internal/repositories"
)

type Repository struct {
	db       *gorm.DB
	attempt  repositories.AttemptRepository
	result   repositories.ResultRepository
	session  repositories.SessionRepository
	progress repositories.ProgressRepository
}

func NewRepository(db *gorm.DB) repositories.Repository {
	return &Repository{
		db:       db,
		attempt:  NewAttemptPostgreSQL(db),
		result:   NewResultPostgreSQL(db),
		session:  NewSessionPostgreSQL(db),
		progress: NewProgressPostgreSQL(db),
	}
}

func (r *Repository) Attempt() repositories.AttemptRepository   { return r.attempt }
func (r *Repository) Result() repositories.ResultRepository     { return r.result }
func (r *Repository) Session() repositories.SessionRepository   { return r.session }
func (r *Repository) Progress() repositories.ProgressRepository { return r.progress }

func (r *Repository) WithTx(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
