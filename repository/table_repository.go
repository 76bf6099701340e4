package repository

import (
	"github.com/vaishnavisherala/RestaurantSystem/entity"
	"gorm.io/gorm"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) List() ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Order("number").Find(&tables).Error
	return tables, err
}

func (r *TableRepository) Get(id uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// Reserve claims a table with a guarded update. Zero rows affected means
// the table was not available, i.e. another session got there first.
func (r *TableRepository) Reserve(tx *gorm.DB, tableID uint) (int64, error) {
	res := tx.Model(&entity.Table{}).
		Where("id = ? AND status = ?", tableID, entity.TableAvailable).
		Update("status", entity.TableOccupied)
	return res.RowsAffected, res.Error
}

func (r *TableRepository) Release(tx *gorm.DB, tableID uint) error {
	return tx.Model(&entity.Table{}).
		Where("id = ?", tableID).
		Update("status", entity.TableAvailable).Error
}
