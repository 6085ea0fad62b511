package usecase

import (
	"context"

	"gorm.io/gorm"
)

// Transactor runs a function inside a database transaction. Writes that
// must land together (a status transition plus its notification) go
// through InTx so they commit or roll back as one.
type Transactor interface {
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type gormTransactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) Transactor {
	return &gormTransactor{db: db}
}

func (t *gormTransactor) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return t.db.WithContext(ctx).Transaction(fn)
}
