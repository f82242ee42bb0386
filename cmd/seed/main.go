package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"agencydesk/internal/database"
	"agencydesk/internal/domain/actor"
	"agencydesk/internal/domain/category"
	"agencydesk/internal/domain/installment"
	"agencydesk/internal/domain/lead"
	"agencydesk/internal/domain/notification"
	"agencydesk/internal/domain/project"
	"agencydesk/internal/domain/request"
	"agencydesk/internal/domain/wallet"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "agencydesk.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&actor.Actor{},
		&category.Category{},
		&lead.Lead{},
		&project.Project{},
		&installment.Installment{},
		&request.Request{},
		&wallet.Wallet{},
		&wallet.Transaction{},
		&notification.Notification{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM wallet_transactions")
	db.Exec("DELETE FROM wallets")
	db.Exec("DELETE FROM requests")
	db.Exec("DELETE FROM installments")
	db.Exec("DELETE FROM projects")
	db.Exec("DELETE FROM leads")
	db.Exec("DELETE FROM categories")
	db.Exec("DELETE FROM actors")

	// ================== ACTORS ==================
	log.Println("Creating actors...")

	hash := func(pw string) string {
		h, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		return string(h)
	}

	admin := actor.Actor{
		Email:        "admin@agencydesk.io",
		PasswordHash: hash("admin123"),
		Name:         "Admin",
		Role:         actor.RoleAdmin,
		IsActive:     true,
	}
	db.Create(&admin)

	sales := make([]actor.Actor, 0, 2)
	for i := 1; i <= 2; i++ {
		s := actor.Actor{
			Email:        fmt.Sprintf("sales%d@agencydesk.io", i),
			PasswordHash: hash("sales123"),
			Name:         fmt.Sprintf("Sales Rep %d", i),
			Role:         actor.RoleSales,
			IsActive:     true,
		}
		db.Create(&s)
		sales = append(sales, s)
	}

	pm := actor.Actor{
		Email:        "pm@agencydesk.io",
		PasswordHash: hash("pm123"),
		Name:         "Project Manager",
		Role:         actor.RolePM,
		IsActive:     true,
	}
	db.Create(&pm)

	employee := actor.Actor{
		Email:        "employee@agencydesk.io",
		PasswordHash: hash("employee123"),
		Name:         "Employee",
		Role:         actor.RoleEmployee,
		IsActive:     true,
	}
	db.Create(&employee)

	client := actor.Actor{
		Email:        "client@agencydesk.io",
		PasswordHash: hash("client123"),
		Name:         "Client",
		Role:         actor.RoleClient,
		IsActive:     true,
	}
	db.Create(&client)

	// ================== CATEGORIES ==================
	log.Println("Creating categories...")
	categories := []category.Category{
		{Name: "Restaurants", Color: "#e74c3c", Icon: "utensils"},
		{Name: "Retail", Color: "#3498db", Icon: "shopping-bag"},
		{Name: "Beauty", Color: "#9b59b6", Icon: "scissors"},
		{Name: "Fitness", Color: "#2ecc71", Icon: "dumbbell"},
		{Name: "Education", Color: "#f39c12", Icon: "book"},
	}
	for i := range categories {
		db.Create(&categories[i])
	}

	// ================== LEADS ==================
	log.Println("Creating leads...")
	phones := []string{
		"7011234501", "7011234502", "7011234503",
		"7011234504", "7011234505", "7011234506",
	}
	for i, phone := range phones {
		owner := sales[i%len(sales)]
		l := lead.Lead{
			Phone:      phone,
			Name:       fmt.Sprintf("Prospect %d", i+1),
			Business:   fmt.Sprintf("Business %d", i+1),
			CategoryID: categories[i%len(categories)].ID,
			OwnerID:    owner.ID,
		}
		db.Create(&l)
	}

	log.Println("Seed completed")
	log.Println("Test accounts:")
	log.Println("Admin:    admin@agencydesk.io / admin123")
	log.Println("Sales:    sales1@agencydesk.io, sales2@agencydesk.io / sales123")
	log.Println("PM:       pm@agencydesk.io / pm123")
	log.Println("Employee: employee@agencydesk.io / employee123")
	log.Println("Client:   client@agencydesk.io / client123")
}
