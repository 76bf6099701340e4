package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/vaishnavisherala/RestaurantSystem/pkg/resp"
	"github.com/vaishnavisherala/RestaurantSystem/repository"
	"github.com/vaishnavisherala/RestaurantSystem/services"
)

type TableController struct {
	repo *repository.TableRepository
}

func NewTableController(repo *repository.TableRepository) *TableController {
	return &TableController{repo: repo}
}

// GET /api/tables/
func (tc *TableController) List(c *gin.Context) {
	tables, err := tc.repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, services.SerializeTables(tables))
}
