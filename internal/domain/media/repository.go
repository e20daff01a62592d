package media

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, m *Media) error
	GetByID(ctx context.Context, id int64) (*Media, error)
	List(ctx context.Context) ([]Media, error)
	UpdateMeta(ctx context.Context, m *Media) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Media) error {
	if m.Tags == nil {
		m.Tags = []string{}
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Media, error) {
	var m Media
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMediaNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) List(ctx context.Context) ([]Media, error) {
	items := make([]Media, 0)
	err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&items).Error
	return items, err
}

// UpdateMeta writes alt and tags only.
func (r *repository) UpdateMeta(ctx context.Context, m *Media) error {
	if m.Tags == nil {
		m.Tags = []string{}
	}
	tx := r.db.WithContext(ctx).Model(m).Select("alt", "tags").Updates(m)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrMediaNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Media{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrMediaNotFound
	}
	return nil
}
