package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/vaishnavisherala/RestaurantSystem/pkg/resp"
	"github.com/vaishnavisherala/RestaurantSystem/repository"
	"github.com/vaishnavisherala/RestaurantSystem/services"
	"github.com/vaishnavisherala/RestaurantSystem/utils"
)

type UserController struct {
	repo *repository.UserRepository
}

func NewUserController(repo *repository.UserRepository) *UserController {
	return &UserController{repo: repo}
}

// GET /api/users/ — superusers get the full directory, everyone else gets
// themselves back as a single object.
func (uc *UserController) List(c *gin.Context) {
	if utils.IsSuperuser(c) {
		users, err := uc.repo.List()
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.OK(c, services.SerializeUsers(users))
		return
	}

	user, err := uc.repo.FindByID(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, services.SerializeUser(user))
}
