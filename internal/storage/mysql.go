package storage

import (
	"context"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Slot is the GORM model for the site_slots table: one row per slot.
type Slot struct {
	Key       string `gorm:"primaryKey;size:64;column:slot_key"`
	Value     string `gorm:"type:longtext"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
}

func (Slot) TableName() string {
	return "site_slots"
}

// MySQL persists slots in a MySQL table through GORM.
type MySQL struct {
	db *gorm.DB
}

func NewMySQL(host string, port int, user, password, database string, maxIdle, maxOpen int) (*MySQL, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, password, host, port, database)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if maxIdle > 0 {
		sqlDB.SetMaxIdleConns(maxIdle)
	}
	if maxOpen > 0 {
		sqlDB.SetMaxOpenConns(maxOpen)
	}

	if err := db.AutoMigrate(&Slot{}); err != nil {
		return nil, fmt.Errorf("migrate site_slots: %w", err)
	}
	return &MySQL{db: db}, nil
}

func (m *MySQL) Get(ctx context.Context, key string) (string, bool, error) {
	if m == nil || m.db == nil {
		return "", false, fmt.Errorf("mysql store is nil")
	}
	var s Slot
	err := m.db.WithContext(ctx).Where("slot_key = ?", key).First(&s).Error
	if err == gorm.ErrRecordNotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return s.Value, true, nil
}

func (m *MySQL) Set(ctx context.Context, key, value string) error {
	if m == nil || m.db == nil {
		return fmt.Errorf("mysql store is nil")
	}
	return m.db.WithContext(ctx).Save(&Slot{Key: key, Value: value}).Error
}

func (m *MySQL) Delete(ctx context.Context, key string) error {
	if m == nil || m.db == nil {
		return fmt.Errorf("mysql store is nil")
	}
	return m.db.WithContext(ctx).Where("slot_key = ?", key).Delete(&Slot{}).Error
}

func (m *MySQL) Clear(ctx context.Context) error {
	if m == nil || m.db == nil {
		return fmt.Errorf("mysql store is nil")
	}
	return m.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Slot{}).Error
}
