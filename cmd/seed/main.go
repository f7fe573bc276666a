package main

import (
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"barberbook/internal/database"
	"barberbook/internal/domain"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "barberbook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.Shop{},
		&domain.Service{},
		&domain.Barber{},
		&domain.WorkingHours{},
		&domain.BlockedTime{},
		&domain.Customer{},
		&domain.Appointment{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// A barber can hold at most one live appointment per start time.
	// Partial so cancelled/no-show rows do not keep the slot occupied.
	if err := db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_no_double_booking
		 ON appointments (barber_id, start_time)
		 WHERE status NOT IN ('cancelled', 'no_show')`,
	).Error; err != nil {
		log.Fatal("index creation failed:", err)
	}

	// Cleanup old data (children first to avoid FK errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM appointments")
	db.Exec("DELETE FROM customers")
	db.Exec("DELETE FROM blocked_times")
	db.Exec("DELETE FROM working_hours")
	db.Exec("DELETE FROM barbers")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM shops")

	// ================== SHOP ==================
	log.Println("Creating shop...")
	shop := domain.Shop{
		Name:       "Barbearia do Zé",
		InstanceID: "demo-instance",
		APIToken:   "demo-token",
	}
	db.Create(&shop)

	// ================== SERVICES ==================
	log.Println("Creating services...")
	services := []domain.Service{
		{ShopID: shop.ID, Name: "Corte", Price: 35, DurationMinutes: 30, Active: true},
		{ShopID: shop.ID, Name: "Barba", Price: 25, DurationMinutes: 30, Active: true},
		{ShopID: shop.ID, Name: "Corte + Barba", Price: 55, DurationMinutes: 60, Active: true},
	}
	for i := range services {
		db.Create(&services[i])
	}

	// ================== BARBERS ==================
	log.Println("Creating barbers...")
	barbers := []domain.Barber{
		{ShopID: shop.ID, Name: "Zé", Active: true},
		{ShopID: shop.ID, Name: "Marcos", Active: true},
	}
	for i := range barbers {
		db.Create(&barbers[i])
	}

	// Tuesday through Saturday, 09:00-19:00
	log.Println("Creating working hours...")
	for _, b := range barbers {
		for weekday := 2; weekday <= 6; weekday++ {
			db.Create(&domain.WorkingHours{
				ShopID:    shop.ID,
				BarberID:  b.ID,
				DayOfWeek: weekday,
				StartTime: "09:00",
				EndTime:   "19:00",
				Active:    true,
			})
		}
	}

	// Zé's lunch break tomorrow
	tomorrow := time.Now().AddDate(0, 0, 1)
	lunchStart := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 12, 0, 0, 0, time.Local)
	db.Create(&domain.BlockedTime{
		ShopID:    shop.ID,
		BarberID:  barbers[0].ID,
		StartTime: lunchStart,
		EndTime:   lunchStart.Add(time.Hour),
		Reason:    "Almoço",
	})

	// ================== CUSTOMERS ==================
	log.Println("Creating customers...")
	regularName := "Carlos Silva"
	customer := domain.Customer{
		ShopID: shop.ID,
		Phone:  "5511999990000",
		Name:   regularName,
	}
	db.Create(&customer)

	// ================== APPOINTMENTS ==================
	log.Println("Creating appointments...")
	apptStart := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 10, 0, 0, 0, time.Local)
	db.Create(&domain.Appointment{
		Code:          uuid.NewString(),
		ShopID:        shop.ID,
		BarberID:      barbers[0].ID,
		ServiceID:     services[0].ID,
		CustomerPhone: customer.Phone,
		CustomerName:  &regularName,
		StartTime:     apptStart,
		EndTime:       apptStart.Add(30 * time.Minute),
		Status:        domain.AppointmentConfirmed,
		OriginalPrice: services[0].Price,
		FinalPrice:    services[0].Price,
	})

	log.Println("Seed completed!")
	log.Printf("Shop: %s (instance %s)", shop.Name, shop.InstanceID)
	log.Printf("Services: %d, Barbers: %d", len(services), len(barbers))
}
