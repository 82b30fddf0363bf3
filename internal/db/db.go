package db

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/barberia-cr/barberia-api/internal/config"
	"github.com/barberia-cr/barberia-api/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.AdminUser{},
		&models.Barber{},
		&models.Service{},
		&models.Product{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	// Sem o índice único o servidor não sobe: a checagem prévia de
	// disponibilidade é só cortesia, quem impede double-booking é ele.
	// Dados importados com duplicatas ativas fazem o CREATE falhar, e é
	// melhor parar aqui do que servir tráfego sem a garantia.
	if err := ensureSlotIndex(db); err != nil {
		log.Fatal("failed to create slot uniqueness index", zap.Error(err))
	}

	seedAdmin(db, cfg, log)

	return db
}

// ensureSlotIndex cria o índice parcial que proíbe dois agendamentos
// ativos no mesmo (barber_id, date, time). Parcial para que cancelados
// liberem o horário.
func ensureSlotIndex(db *gorm.DB) error {
	return db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_appointments_slot
        ON appointments (barber_id, date, time)
        WHERE status IN ('pending', 'confirmed')
    `).Error
}

// seedAdmin cria o usuário admin a partir do ambiente quando a tabela
// está vazia. Sem ADMIN_PASSWORD nada é criado.
func seedAdmin(db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	if cfg.AdminPassword == "" {
		return
	}

	var count int64
	db.Model(&models.AdminUser{}).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to hash admin password", zap.Error(err))
		return
	}

	admin := models.AdminUser{
		Name:         "Admin",
		Email:        cfg.AdminEmail,
		PasswordHash: string(hashed),
		Role:         "admin",
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Error("failed to seed admin user", zap.Error(err))
		return
	}

	log.Info("admin user seeded", zap.String("email", admin.Email))
}
