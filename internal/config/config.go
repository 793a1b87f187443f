package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type DBConfig struct {
	Host, User, Password, DBName, SSLMode string
	Port                                  int
}

type Config struct {
	WebHost       string
	WebPort       int
	StaticDir     string
	StoreDriver   string // file | memory | postgres
	DataFile      string
	AdminUsername string
	AdminPassword string
	DB            DBConfig
}

func Load() (Config, error) {

	viper.SetDefault("web.host", "0.0.0.0")
	viper.SetDefault("web.port", 3000)
	viper.SetDefault("static_dir", "./web")
	viper.SetDefault("store.driver", "file")
	viper.SetDefault("data_file", "./data/requests.json")
	viper.SetDefault("admin.username", "admin")
	viper.SetDefault("admin.password", "admin123")
	viper.SetDefault("db.sslmode", "disable")

	_ = viper.ReadInConfig() // ignore missing config file

	c := Config{
		WebHost:       viper.GetString("web.host"),
		WebPort:       viper.GetInt("web.port"),
		StaticDir:     viper.GetString("static_dir"),
		StoreDriver:   viper.GetString("store.driver"),
		DataFile:      viper.GetString("data_file"),
		AdminUsername: viper.GetString("admin.username"),
		AdminPassword: viper.GetString("admin.password"),
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			DBName:   viper.GetString("db.name"),
			SSLMode:  viper.GetString("db.sslmode"),
		},
	}

	// ---- OVERRIDE WITH ENV VARS (STRICT) ----
	if v := os.Getenv("LABPORTAL_WEB_PORT"); v != "" {
		fmt.Sscanf(v, "%d", &c.WebPort)
	}
	if v := os.Getenv("LABPORTAL_STORE_DRIVER"); v != "" {
		c.StoreDriver = v
	}
	if v := os.Getenv("LABPORTAL_DATA_FILE"); v != "" {
		c.DataFile = v
	}
	if v := os.Getenv("LABPORTAL_ADMIN_USERNAME"); v != "" {
		c.AdminUsername = v
	}
	if v := os.Getenv("LABPORTAL_ADMIN_PASSWORD"); v != "" {
		c.AdminPassword = v
	}
	if v := os.Getenv("LABPORTAL_DB_HOST"); v != "" {
		c.DB.Host = v
	}
	if v := os.Getenv("LABPORTAL_DB_PORT"); v != "" {
		fmt.Sscanf(v, "%d", &c.DB.Port)
	}
	if v := os.Getenv("LABPORTAL_DB_USER"); v != "" {
		c.DB.User = v
	}
	if v := os.Getenv("LABPORTAL_DB_PASSWORD"); v != "" {
		c.DB.Password = v
	}
	if v := os.Getenv("LABPORTAL_DB_NAME"); v != "" {
		c.DB.DBName = v
	}

	// ---- CREATE DATA DIR ----
	if c.StoreDriver == "file" {
		if err := os.MkdirAll(filepath.Dir(c.DataFile), 0o755); err != nil {
			return Config{}, fmt.Errorf("mkdir data dir: %w", err)
		}
	}

	return c, nil
}
