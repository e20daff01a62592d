package testimonial

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, t *Testimonial) error
	List(ctx context.Context) ([]Testimonial, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*Testimonial, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Testimonial) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) List(ctx context.Context) ([]Testimonial, error) {
	items := make([]Testimonial, 0)
	err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&items).Error
	return items, err
}

// Update applies fields in one transaction and returns the stored row.
func (r *repository) Update(ctx context.Context, id int64, fields map[string]any) (*Testimonial, error) {
	var t Testimonial
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&t).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTestimonialNotFound
			}
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		if err := tx.Model(&t).Updates(fields).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).First(&t).Error
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Testimonial{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrTestimonialNotFound
	}
	return nil
}
