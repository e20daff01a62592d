package inquiry

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, i *Inquiry) error
	List(ctx context.Context) ([]Inquiry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, i *Inquiry) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *repository) List(ctx context.Context) ([]Inquiry, error) {
	items := make([]Inquiry, 0)
	err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&items).Error
	return items, err
}
