package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Uniquement variables d'environnement

// Config structure unifiée
type Config struct {
	Environment string
	Server      ServerConfig
	Upstream    UpstreamConfig
	Store       StoreConfig
	Sources     SourcesConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	MongoDB     MongoConfig
	Logging     LoggingConfig
	CORS        CORSConfig
	RateLimit   RateLimitConfig
}

// ServerConfig configuration serveur HTTP
type ServerConfig struct {
	Host         string        `env:"SERVER_HOST"`
	Port         int           `env:"SERVER_PORT"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT"`
}

// UpstreamConfig backend REST de la console
type UpstreamConfig struct {
	BaseURL  string        `env:"UPSTREAM_BASE_URL"`
	APIToken string        `env:"UPSTREAM_API_TOKEN"`
	Timeout  time.Duration `env:"UPSTREAM_TIMEOUT"`
	// Chemins surchargés par entité (UPSTREAM_PATH_<ENTITE>)
	Paths map[string]string
}

// StoreConfig stockage des données locales
type StoreConfig struct {
	Driver   string `env:"STORE_DRIVER"`
	SeedPath string `env:"LOCAL_STORAGE_SEED_PATH"`
}

// SourcesConfig origine des données par entité: "upstream" ou "local" (SOURCE_<ENTITE>)
type SourcesConfig map[string]string

// DatabaseConfig configuration PostgreSQL
type DatabaseConfig struct {
	Host           string        `env:"DB_HOST"`
	Port           int           `env:"DB_PORT"`
	Database       string        `env:"DB_NAME"`
	Username       string        `env:"DB_USERNAME"`
	Password       string        `env:"DB_PASSWORD"`
	MaxConnections int           `env:"DB_MAX_CONNECTIONS"`
	ConnectionTTL  time.Duration `env:"DB_CONNECTION_TTL"`
	QueryTimeout   time.Duration `env:"DB_QUERY_TIMEOUT"`
	SSLMode        string        `env:"DB_SSL_MODE"`
}

// RedisConfig configuration Redis
type RedisConfig struct {
	Host        string        `env:"REDIS_HOST"`
	Port        int           `env:"REDIS_PORT"`
	Password    string        `env:"REDIS_PASSWORD"`
	Database    int           `env:"REDIS_DATABASE"`
	MaxRetries  int           `env:"REDIS_MAX_RETRIES"`
	PoolSize    int           `env:"REDIS_POOL_SIZE"`
	PoolTimeout time.Duration `env:"REDIS_POOL_TIMEOUT"`
}

// MongoConfig configuration MongoDB
type MongoConfig struct {
	URI            string        `env:"MONGODB_URI"`
	Database       string        `env:"MONGODB_DATABASE"`
	ConnectTimeout time.Duration `env:"MONGODB_CONNECT_TIMEOUT"`
	MaxPoolSize    int           `env:"MONGODB_MAX_POOL_SIZE"`
}

// LoggingConfig configuration logging
type LoggingConfig struct {
	Level string `env:"LOG_LEVEL"`
}

// CORSConfig configuration CORS
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"`
	MaxAge           int      `env:"CORS_MAX_AGE"`
}

// RateLimitConfig limite de requêtes par client
type RateLimitConfig struct {
	Enabled           bool `env:"RATE_LIMIT_ENABLED"`
	RequestsPerSecond int  `env:"RATE_LIMIT_RPS"`
	Burst             int  `env:"RATE_LIMIT_BURST"`
}

// Pilotes de stockage local supportés
const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverMongoDB  = "mongodb"
)

// Origines de données
const (
	SourceUpstream = "upstream"
	SourceLocal    = "local"
)

// Entités configurables et origine par défaut
var defaultSources = map[string]string{
	"projets":         SourceUpstream,
	"sous_projets":    SourceLocal,
	"incidents":       SourceUpstream,
	"suivis":          SourceLocal,
	"factures":        SourceUpstream,
	"marches":         SourceLocal,
	"maitres_ouvrage": SourceUpstream,
	"users":           SourceUpstream,
	"reunions":        SourceUpstream,
}

// NewConfig charge la configuration depuis les variables d'environnement uniquement
func NewConfig() (*Config, error) {
	// Charger le fichier .env (optionnel)
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		fmt.Printf("[CONFIG] Warning: Fichier .env illisible: %v\n", err)
	}

	config := &Config{}

	// Déterminer environnement
	config.Environment = getEnv("APP_ENV", "development")

	// Charger configuration serveur
	config.Server = ServerConfig{
		Host:         getEnv("SERVER_HOST", "localhost"),
		Port:         getEnvInt("SERVER_PORT", 4000),
		ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 30) * time.Second,
		WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 30) * time.Second,
	}

	// Charger configuration backend REST
	config.Upstream = UpstreamConfig{
		BaseURL:  strings.TrimRight(getEnv("UPSTREAM_BASE_URL", "http://localhost:8000/api"), "/"),
		APIToken: getEnv("UPSTREAM_API_TOKEN", ""),
		Timeout:  getEnvDuration("UPSTREAM_TIMEOUT", 30) * time.Second,
		Paths:    map[string]string{},
	}

	// Charger configuration stockage local
	config.Store = StoreConfig{
		Driver:   strings.ToLower(getEnv("STORE_DRIVER", DriverMemory)),
		SeedPath: getEnv("LOCAL_STORAGE_SEED_PATH", ""),
	}

	// Origine des données et chemins par entité
	config.Sources = SourcesConfig{}
	for entity, source := range defaultSources {
		suffix := strings.ToUpper(entity)
		config.Sources[entity] = strings.ToLower(getEnv("SOURCE_"+suffix, source))
		if path := getEnv("UPSTREAM_PATH_"+suffix, ""); path != "" {
			config.Upstream.Paths[entity] = path
		}
	}

	// Charger configuration database
	config.Database = DatabaseConfig{
		Host:           getEnv("DB_HOST", "localhost"),
		Port:           getEnvInt("DB_PORT", 5432),
		Database:       getEnv("DB_NAME", "gestion_projets"),
		Username:       getEnv("DB_USERNAME", "postgres"),
		Password:       getEnv("DB_PASSWORD", ""),
		MaxConnections: getEnvInt("DB_MAX_CONNECTIONS", 25),
		ConnectionTTL:  getEnvDuration("DB_CONNECTION_TTL", 300) * time.Second,
		QueryTimeout:   getEnvDuration("DB_QUERY_TIMEOUT", 30) * time.Second,
		SSLMode:        getEnv("DB_SSL_MODE", "disable"),
	}

	// Charger configuration Redis
	config.Redis = RedisConfig{
		Host:        getEnv("REDIS_HOST", "localhost"),
		Port:        getEnvInt("REDIS_PORT", 6379),
		Password:    getEnv("REDIS_PASSWORD", ""),
		Database:    getEnvInt("REDIS_DATABASE", 0),
		MaxRetries:  getEnvInt("REDIS_MAX_RETRIES", 3),
		PoolSize:    getEnvInt("REDIS_POOL_SIZE", 10),
		PoolTimeout: getEnvDuration("REDIS_POOL_TIMEOUT", 30) * time.Second,
	}

	// Charger configuration MongoDB
	config.MongoDB = MongoConfig{
		URI:            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		Database:       getEnv("MONGODB_DATABASE", "gestion_projets"),
		ConnectTimeout: getEnvDuration("MONGODB_CONNECT_TIMEOUT", 10) * time.Second,
		MaxPoolSize:    getEnvInt("MONGODB_MAX_POOL_SIZE", 100),
	}

	// Charger configuration logging
	config.Logging = LoggingConfig{
		Level: getEnv("LOG_LEVEL", "info"),
	}

	// Charger configuration CORS
	config.CORS = CORSConfig{
		AllowedOrigins:   getEnvStringSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		AllowedMethods:   getEnvStringSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		AllowedHeaders:   getEnvStringSlice("CORS_ALLOWED_HEADERS", []string{"Content-Type", "Authorization"}),
		AllowCredentials: getEnvBool("CORS_ALLOW_CREDENTIALS", true),
		MaxAge:           getEnvInt("CORS_MAX_AGE", 3600),
	}

	// Charger configuration limitation de débit
	config.RateLimit = RateLimitConfig{
		Enabled:           getEnvBool("RATE_LIMIT_ENABLED", true),
		RequestsPerSecond: getEnvInt("RATE_LIMIT_RPS", 20),
		Burst:             getEnvInt("RATE_LIMIT_BURST", 40),
	}

	// Validation configuration critique
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("validation configuration échouée: %w", err)
	}

	return config, nil
}

// Getters pour compatibilité avec l'ancien code
func (c *Config) GetServer() ServerConfig       { return c.Server }
func (c *Config) GetUpstream() UpstreamConfig   { return c.Upstream }
func (c *Config) GetDatabase() DatabaseConfig   { return c.Database }
func (c *Config) GetRedis() RedisConfig         { return c.Redis }
func (c *Config) GetMongoDB() MongoConfig       { return c.MongoDB }
func (c *Config) GetLogging() LoggingConfig     { return c.Logging }
func (c *Config) GetCORS() CORSConfig           { return c.CORS }
func (c *Config) GetRateLimit() RateLimitConfig { return c.RateLimit }

// SourceOf renvoie l'origine configurée pour une entité
func (c *Config) SourceOf(entity string) string {
	if source, ok := c.Sources[entity]; ok {
		return source
	}
	return SourceLocal
}

// IsDevelopment indique si l'application est en mode développement
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// DSN PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.Username, d.Password, d.Host, d.Port, d.Database, d.SSLMode)
}

// Helpers pour parsing variables d'environnement
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultSeconds int) time.Duration {
	return time.Duration(getEnvInt(key, defaultSeconds))
}

func getEnvStringSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}

// validateConfig valide la configuration selon l'environnement
func validateConfig(config *Config) error {
	env := config.Environment

	// Validation environnements supportés
	if env != "development" && env != "docker" {
		return fmt.Errorf("environnement non supporté: %s (utilisez 'development' ou 'docker')", env)
	}

	switch config.Store.Driver {
	case DriverMemory, DriverRedis, DriverPostgres, DriverMongoDB:
	default:
		return fmt.Errorf("STORE_DRIVER non supporté: %s (memory, redis, postgres ou mongodb)", config.Store.Driver)
	}

	for entity, source := range config.Sources {
		if source != SourceUpstream && source != SourceLocal {
			return fmt.Errorf("SOURCE_%s invalide: %s (upstream ou local)", strings.ToUpper(entity), source)
		}
	}

	missingVars := []string{}

	// Variables critiques en mode docker (production/staging)
	if env == "docker" {
		if os.Getenv("UPSTREAM_BASE_URL") == "" {
			missingVars = append(missingVars, "UPSTREAM_BASE_URL")
		}
		if config.Store.Driver == DriverPostgres && config.Database.Password == "" {
			missingVars = append(missingVars, "DB_PASSWORD")
		}

		// Warning pour variables recommandées en docker
		if config.Store.Driver == DriverRedis && config.Redis.Password == "" {
			fmt.Printf("[CONFIG] ⚠️ REDIS_PASSWORD non défini pour environnement docker\n")
		}
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("variables critiques manquantes pour environnement docker: %v", missingVars)
	}

	return nil
}
