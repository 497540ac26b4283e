package tracker

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	Database DatabaseConfig
	Log      LogConfig
}

// DatabaseConfig holds the connection parameters of the single store connection.
// For the sqlite driver Name is the database file path.
type DatabaseConfig struct {
	Driver      string
	Host        string
	Port        int
	User        string
	Password    string
	Name        string
	AutoMigrate bool
}

type LogConfig struct {
	Level string
}

func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", DriverMySQL)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.user", "username")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.name", "employee_tracker")
	v.SetDefault("log.level", "warn")
}

// LoadConfig reads employee-tracker.yml from the working directory if present,
// then applies TRACKER_* environment overrides (a .env file is honoured too).
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yml")
	v.SetConfigName("employee-tracker")
	v.AddConfigPath(".")
	v.SetEnvPrefix("tracker")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setConfigDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}
	conf := new(Config)
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// The mysql schema belongs to the server; only sqlite files are migrated
	// unless asked otherwise.
	_ = v.BindEnv("database.automigrate")
	if v.IsSet("database.automigrate") {
		conf.Database.AutoMigrate = v.GetBool("database.automigrate")
	} else {
		conf.Database.AutoMigrate = conf.Database.Driver == DriverSQLite
	}
	if err := conf.Database.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c DatabaseConfig) validate() error {
	switch c.Driver {
	case DriverMySQL, DriverSQLite:
		return nil
	}
	return fmt.Errorf("database driver %q not supported", c.Driver)
}

// DSN renders the driver specific data source name.
func (c DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		if strings.Contains(c.Name, "?") {
			return c.Name + "&_foreign_keys=on"
		}
		return c.Name + "?_foreign_keys=on"
	}
	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	mc.DBName = c.Name
	mc.ParseTime = true
	// Report matched rows so an update to the current value still counts.
	mc.ClientFoundRows = true
	return mc.FormatDSN()
}
