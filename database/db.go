package database

import (
	"bytes"
	"io"
	"io/fs"
	"log"
	"os"
	"path"

	"github.com/hakwonlab/acadpanel/config"
	"github.com/hakwonlab/acadpanel/database/model"
	"github.com/hakwonlab/acadpanel/util/crypto"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

const (
	defaultOrgName  = "My Academy"
	defaultUsername = "admin"
	defaultPassword = "admin"
)

func initModels() error {
	models := []any{
		&model.Organization{},
		&model.User{},
		&model.PagePermission{},
		&model.Student{},
		&model.Class{},
		&model.Enrollment{},
		&model.Attendance{},
		&model.Consultation{},
		&model.Exam{},
		&model.ExamResult{},
		&model.Homework{},
		&model.Lesson{},
		&model.Invoice{},
		&model.Expense{},
		&model.Room{},
		&model.Seat{},
		&model.Schedule{},
		&model.Widget{},
		&model.Setting{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

// initOrg seeds the first organization with an owner account on a fresh
// database so the panel is reachable after install.
func initOrg() error {
	empty, err := isTableEmpty("organizations")
	if err != nil {
		log.Printf("Error checking if organizations table is empty: %v", err)
		return err
	}
	if !empty {
		return nil
	}
	return db.Transaction(func(tx *gorm.DB) error {
		org := &model.Organization{Name: defaultOrgName, Type: "academy"}
		if err := tx.Create(org).Error; err != nil {
			return err
		}
		hash, err := crypto.HashPasswordAsBcrypt(defaultPassword)
		if err != nil {
			return err
		}
		user := &model.User{
			OrgId:    org.Id,
			Username: defaultUsername,
			Password: hash,
			Name:     defaultUsername,
			Role:     model.RoleOwner,
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		org.OwnerId = user.Id
		return tx.Save(org).Error
	})
}

func isTableEmpty(tableName string) (bool, error) {
	var count int64
	err := db.Table(tableName).Count(&count).Error
	return count == 0, err
}

func InitDB(dbPath string) error {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return err
	}

	var gormLogger logger.Interface

	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	_, err = sqlDB.Exec("PRAGMA cache_size = -64000;")
	if err != nil {
		return err
	}
	_, err = sqlDB.Exec("PRAGMA temp_store = MEMORY;")
	if err != nil {
		return err
	}
	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return err
	}

	if err := initModels(); err != nil {
		return err
	}
	if err := initOrg(); err != nil {
		return err
	}

	return nil
}

func CloseDB() error {
	if db != nil {
		if err := Checkpoint(); err != nil {
			log.Printf("error executing checkpoint: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}

// NewCheckinCode mints the opaque code embedded in a student's check-in QR.
func NewCheckinCode() string {
	return uuid.NewString()
}

func IsSQLiteDB(file io.ReaderAt) (bool, error) {
	signature := []byte("SQLite format 3\x00")
	buf := make([]byte, len(signature))
	_, err := file.ReadAt(buf, 0)
	if err != nil {
		return false, err
	}
	return bytes.Equal(buf, signature), nil
}

func Checkpoint() error {
	// Update WAL
	err := db.Exec("PRAGMA wal_checkpoint;").Error
	if err != nil {
		return err
	}
	return nil
}
