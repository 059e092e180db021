package config

import (
	"log"
	"time"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/models"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/pkg/password"

	"gorm.io/gorm"
)

// DefaultAdminEmail is the seeded administrator login
const DefaultAdminEmail = "admin@ljmdi.org"

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	cfg *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg *Config) *Seeder {
	return &Seeder{db: db, cfg: cfg}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("Running database seeders...")

	if err := s.seedAdminAccount(); err != nil {
		log.Printf("Warning: admin seeder skipped: %v", err)
	}

	// The in-memory backend starts empty on every boot; give it a few
	// rows so the dashboard has something to show.
	if s.cfg.Database.Driver == "memory" {
		if err := s.seedDemoData(); err != nil {
			log.Printf("Warning: demo data seeder skipped: %v", err)
		}
	}

	log.Println("Database seeding completed")
	return nil
}

// seedAdminAccount seeds the default administrator account.
// For development and first-run setups; in production create the
// administrator through a secure process and rotate the password.
func (s *Seeder) seedAdminAccount() error {
	var count int64
	s.db.Model(&models.Account{}).Where("role = ?", string(domain.RoleAdmin)).Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	hashedPassword, err := password.Hash(getEnv("ADMIN_PASSWORD", "admin123456"))
	if err != nil {
		return err
	}

	admin := &models.Account{
		Email:    getEnv("ADMIN_EMAIL", DefaultAdminEmail),
		Password: hashedPassword,
		Role:     string(domain.RoleAdmin),
		IsActive: true,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("Admin account created: %s", admin.Email)
	return nil
}

// seedDemoData populates the in-memory backend with a small sample set
func (s *Seeder) seedDemoData() error {
	var count int64
	s.db.Model(&models.Member{}).Count(&count)
	if count > 0 {
		return nil
	}

	now := time.Now()
	members := []models.Member{
		{LastName: "Kanyinda", FirstName: "Eve", Email: "eve.kanyinda@ljmdi.org", Phone: "+243810000001", JoinDate: now.AddDate(-1, 0, 0), Status: domain.MemberStatusActive, Profession: "Teacher"},
		{LastName: "Mbuyi", FirstName: "Patrice", Email: "patrice.mbuyi@ljmdi.org", Phone: "+243810000002", JoinDate: now.AddDate(0, -6, 0), Status: domain.MemberStatusActive, Profession: "Nurse"},
		{LastName: "Ilunga", FirstName: "Chantal", Email: "chantal.ilunga@ljmdi.org", JoinDate: now.AddDate(0, -2, 0), Status: domain.MemberStatusRegular},
	}
	if err := s.db.Create(&members).Error; err != nil {
		return err
	}

	activity := models.Activity{
		Title:     "Monthly general assembly",
		Type:      "Assembly",
		StartTime: now.AddDate(0, 0, 14),
		EndTime:   now.AddDate(0, 0, 14).Add(2 * time.Hour),
		Location:  "Community hall",
	}
	if err := s.db.Create(&activity).Error; err != nil {
		return err
	}

	contributions := []models.Contribution{
		{MemberID: members[0].ID, Type: "Weekly", Amount: 10, Currency: "USD", PaymentDate: now.AddDate(0, 0, -7), PaymentStatus: domain.PaymentStatusPaid},
		{MemberID: members[1].ID, Type: "Weekly", Amount: 10, Currency: "USD", PaymentDate: now.AddDate(0, 0, -7), PaymentStatus: domain.PaymentStatusPending},
	}
	if err := s.db.Create(&contributions).Error; err != nil {
		return err
	}

	log.Println("Demo data seeded for the in-memory backend")
	return nil
}
