package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/naphat/floodkit/internal/model"
)

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr string
	Env  string
}

// DBConfig holds the SQLite database location.
type DBConfig struct {
	Path string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string
}

// StorageConfig names the key-value entries the persistence layer reads
// and writes. The defaults match the localStorage keys of the original
// browser tool so an exported snapshot can be imported as-is.
type StorageConfig struct {
	ItemsKey       string
	LegacyItemsKey string
	CategoriesKey  string
	ProgressKey    string
}

// UploadConfig bounds photo uploads.
type UploadConfig struct {
	MaxPhotoBytes int64
}

// Config holds all configuration, loaded once at startup.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Log     LogConfig
	Storage StorageConfig
	Upload  UploadConfig
}

// Load reads configuration from the environment, consulting a .env file
// if one exists.
func Load() *Config {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Addr: getEnv("FLOODKIT_ADDR", ":8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		DB: DBConfig{
			Path: getEnv("FLOODKIT_DB", "floodkit.sqlite3"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			ItemsKey:       getEnv("FLOODKIT_ITEMS_KEY", "flood-inventory-items-v2"),
			LegacyItemsKey: getEnv("FLOODKIT_LEGACY_ITEMS_KEY", "flood-inventory-items"),
			CategoriesKey:  getEnv("FLOODKIT_CATEGORIES_KEY", "flood-inventory-categories-v2"),
			ProgressKey:    getEnv("FLOODKIT_PROGRESS_KEY", "flood-playbook-progress"),
		},
		Upload: UploadConfig{
			MaxPhotoBytes: int64(getEnvAsInt("FLOODKIT_MAX_PHOTO_MB", 5)) << 20,
		},
	}
}

// DefaultCategories returns the seed category registry applied on first
// run. Seed categories are protected from deletion so the default
// taxonomy cannot be orphaned.
func DefaultCategories() []model.Category {
	return []model.Category{
		{
			ID:   "electrical",
			Name: "เครื่องใช้ไฟฟ้า",
			SubCategories: []string{
				"ทีวี", "ตู้เย็น", "เครื่องซักผ้า", "พัดลม", "แอร์", "คอมพิวเตอร์", "หม้อหุงข้าว",
			},
		},
		{
			ID:   "furniture",
			Name: "เฟอร์นิเจอร์",
			SubCategories: []string{
				"เตียง", "ตู้เสื้อผ้า", "โต๊ะ", "เก้าอี้", "โซฟา", "ชั้นวางของ", "ที่นอน",
			},
		},
		{
			ID:   "livelihood",
			Name: "เครื่องมือทำมาหากิน",
			SubCategories: []string{
				"เครื่องตัดหญ้า", "สว่าน", "อุปกรณ์ขายของ", "รถเข็น", "เครื่องมือช่าง", "ยานพาหนะ",
			},
		},
		{
			ID:   "structure",
			Name: "วัสดุก่อสร้าง/บ้าน",
			SubCategories: []string{
				"ประตู", "หน้าต่าง", "พื้น", "ผนัง", "รั้ว", "ระบบไฟฟ้า", "สุขภัณฑ์",
			},
		},
	}
}

// getEnv returns the environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the environment variable parsed as an int, or a default.
func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
