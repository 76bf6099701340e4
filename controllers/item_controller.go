package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/vaishnavisherala/RestaurantSystem/pkg/resp"
	"github.com/vaishnavisherala/RestaurantSystem/repository"
	"github.com/vaishnavisherala/RestaurantSystem/services"
)

type ItemController struct {
	repo *repository.ItemRepository
}

func NewItemController(repo *repository.ItemRepository) *ItemController {
	return &ItemController{repo: repo}
}

// GET /api/items/
func (ic *ItemController) List(c *gin.Context) {
	items, err := ic.repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, services.SerializeItems(items))
}
