package repository

import (
	"github.com/vaishnavisherala/RestaurantSystem/entity"
	"gorm.io/gorm"
)

type ItemRepository struct {
	DB *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{DB: db}
}

func (r *ItemRepository) List() ([]entity.Item, error) {
	var items []entity.Item
	err := r.DB.Order("id").Find(&items).Error
	return items, err
}

func (r *ItemRepository) Get(id uint) (*entity.Item, error) {
	var it entity.Item
	if err := r.DB.First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}
