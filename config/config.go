package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Admin    AdminConfig    `yaml:"admin"`
	JWT      JWTConfig      `yaml:"jwt"`
	Seed     SeedConfig     `yaml:"seed"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // debug, release
	// AllowOrigins 跨域白名单，为空时允许所有来源
	AllowOrigins []string `yaml:"allow_origins"`
}

type DatabaseConfig struct {
	Type string `yaml:"type"` // sqlite, mysql, postgres
	DSN  string `yaml:"dsn"`
}

// AdminConfig 唯一的后台管理员，密码保存 bcrypt 哈希
type AdminConfig struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"`
}

type JWTConfig struct {
	Secret      string `yaml:"secret"`
	ExpireHours int    `yaml:"expire_hours"`
}

type SeedConfig struct {
	// OnStart 为 true 时服务启动前重建学习内容
	OnStart bool `yaml:"on_start"`
}

var (
	cfg        *Config
	once       sync.Once
	configPath string
)

// SetPath 指定配置文件路径，需在第一次 GetConfig 之前调用
func SetPath(path string) {
	configPath = path
}

func GetConfig() *Config {
	once.Do(func() {
		// .env 不存在时忽略
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			klog.Warningf("加载 .env 失败: %v", err)
		}
		path := configPath
		if path == "" {
			path = os.Getenv("CONFIG_PATH")
		}
		if path == "" {
			path = "config.yaml"
		}
		c, err := Load(path)
		if err != nil {
			klog.Warningf("读取配置文件 %s 失败，使用默认配置: %v", path, err)
		}
		cfg = c
	})
	return cfg
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8080",
			Mode: "debug",
		},
		Database: DatabaseConfig{
			Type: "sqlite",
			DSN:  "./data/algonotes.db",
		},
		Admin: AdminConfig{
			Username: "admin",
		},
		JWT: JWTConfig{
			ExpireHours: 24,
		},
	}
}

// Load 从 path 读取 yaml 配置并叠加环境变量。
// 文件不存在时返回默认配置且不报错；解析失败时仍返回叠加了环境变量的默认配置和错误。
func Load(path string) (*Config, error) {
	config := Default()

	var loadErr error
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, config); err != nil {
			config = Default()
			loadErr = fmt.Errorf("parse %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		loadErr = fmt.Errorf("read %s: %w", path, err)
	}

	applyEnv(config)
	return config, loadErr
}

// 环境变量优先级高于配置文件
func applyEnv(config *Config) {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		config.Server.Port = port
	}
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		config.Server.Mode = mode
	}
	if origins := os.Getenv("CORS_ALLOW_ORIGINS"); origins != "" {
		config.Server.AllowOrigins = strings.Split(origins, ",")
	}

	// 数据库环境变量
	if dbType := os.Getenv("DB_TYPE"); dbType != "" {
		config.Database.Type = dbType
	}
	if dbDSN := os.Getenv("DB_DSN"); dbDSN != "" {
		config.Database.DSN = dbDSN
	}

	if username := os.Getenv("ADMIN_USERNAME"); username != "" {
		config.Admin.Username = username
	}
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		config.Admin.PasswordHash = hash
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.JWT.Secret = secret
	}
	if hours := os.Getenv("JWT_EXPIRE_HOURS"); hours != "" {
		if n, err := strconv.Atoi(hours); err == nil && n > 0 {
			config.JWT.ExpireHours = n
		}
	}

	if onStart := os.Getenv("SEED_ON_START"); onStart != "" {
		if v, err := strconv.ParseBool(onStart); err == nil {
			config.Seed.OnStart = v
		}
	}
}
