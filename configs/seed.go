package configs

import (
	"fmt"
	"log"

	"github.com/vaishnavisherala/RestaurantSystem/entity"
	"golang.org/x/crypto/bcrypt"
)

// first-boot super admin
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", cfg.AdminUsername).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminUsername)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Username:    cfg.AdminUsername,
		Email:       cfg.AdminEmail,
		Password:    string(hash),
		IsStaff:     true,
		IsSuperuser: true,
	}
	return db.Create(&admin).Error
}

// Seed starting tables + menu so a fresh install is usable right away
func SeedLookups() error {
	db := DB()

	seats := []int{2, 2, 4, 4, 4, 6, 6, 8}
	for i, s := range seats {
		number := fmt.Sprintf("%d", i+1)
		var t entity.Table
		db.Where(entity.Table{Number: number}).
			Attrs(entity.Table{Seats: s, Status: entity.TableAvailable}).
			FirstOrCreate(&t)
	}

	menu := []entity.Item{
		{Name: "Burger", Description: "House smash burger", Price: 250, Available: true},
		{Name: "Fries", Description: "Crispy fries", Price: 100, Available: true},
		{Name: "Margherita Pizza", Description: "Wood fired", Price: 450, Available: true},
		{Name: "Caesar Salad", Description: "Romaine, parmesan", Price: 220, Available: true},
		{Name: "Lemonade", Description: "Fresh squeezed", Price: 80, Available: true},
	}
	for _, m := range menu {
		var it entity.Item
		db.Where(entity.Item{Name: m.Name}).
			Attrs(entity.Item{Description: m.Description, Price: m.Price, Available: m.Available}).
			FirstOrCreate(&it)
	}

	log.Println("lookup tables seeded")
	return nil
}
