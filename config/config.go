package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Log      Log
	Trivia   Trivia
}

type Server struct {
	Port         string
	Mode         string // gin mode: debug, release, test
	AllowOrigins []string
}

type Database struct {
	Driver     string // "postgres" or "sqlite"
	URL        string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

type Log struct {
	Level  string
	Format string // "console" or "json"
}

type Trivia struct {
	BankPath string // empty means the bundled bank
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func NewConfig() (*Config, error) {
	return Load(os.Args[1:])
}

// Load reads .env (or the file given by --config), then the environment, then flags.
func Load(args []string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	flags := pflag.NewFlagSet("birthday-wall", pflag.ContinueOnError)
	flags.String("config", "", "path to an env-style config file (default ./.env)")
	flags.String("port", "", "HTTP listen port")
	flags.String("db-driver", "", "database driver: postgres or sqlite")
	flags.String("trivia-bank", "", "path to a JSON question bank")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	_ = v.BindPFlag("SERVER_PORT", flags.Lookup("port"))
	_ = v.BindPFlag("DATABASE_DRIVER", flags.Lookup("db-driver"))
	_ = v.BindPFlag("TRIVIA_BANK_PATH", flags.Lookup("trivia-bank"))

	if path, _ := flags.GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".env")
		v.AddConfigPath(".")
	}
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file, using environment only")
	}

	cfg := Config{
		Server: Server{
			Port:         v.GetString("SERVER_PORT"),
			Mode:         v.GetString("GIN_MODE"),
			AllowOrigins: splitList(v.GetString("CORS_ALLOW_ORIGINS")),
		},
		Database: Database{
			Driver:     strings.ToLower(v.GetString("DATABASE_DRIVER")),
			URL:        v.GetString("DATABASE_URL"),
			Host:       v.GetString("DATABASE_HOST"),
			Port:       v.GetString("DATABASE_PORT"),
			User:       v.GetString("DATABASE_USER"),
			Password:   v.GetString("DATABASE_PASSWORD"),
			Name:       v.GetString("DATABASE_NAME"),
			SSLMode:    v.GetString("DATABASE_SSLMODE"),
			SQLitePath: v.GetString("SQLITE_PATH"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Trivia: Trivia{
			BankPath: v.GetString("TRIVIA_BANK_PATH"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log.Info().
		Str("port", cfg.Server.Port).
		Str("gin_mode", cfg.Server.Mode).
		Str("db_driver", cfg.Database.Driver).
		Str("log_level", cfg.Log.Level).
		Str("trivia_bank", cfg.Trivia.BankPath).
		Msg("Config loaded")
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("DATABASE_DRIVER", DriverPostgres)
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_NAME", "birthday")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("SQLITE_PATH", "birthday.db")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.Database.Driver)
	}
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT must not be empty")
	}
	return nil
}

// DSN returns DATABASE_URL when set, otherwise a key/value DSN built from the parts.
func (d Database) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	if d.Driver == DriverSQLite {
		return d.SQLitePath
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// Redacted is the DSN with the password masked, for logs.
func (d Database) Redacted() string {
	if d.URL != "" {
		if u, err := url.Parse(d.URL); err == nil {
			return u.Redacted()
		}
		return "<unparseable DATABASE_URL>"
	}
	if d.Driver == DriverSQLite {
		return d.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s", d.Host, d.Port, d.User, d.Name)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
