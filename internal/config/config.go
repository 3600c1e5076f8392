package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

var (
	ErrFileNotFound  = errors.New(" file not found")
	ErrInvalidConfig = errors.New("invalid config")
)

// Режимы работы хранилищ.
const (
	WorkmodeLocal    = "local"    // всё в памяти процесса
	WorkmodeExternal = "external" // записи в redis или postgres, доверенные подсети в postgres
	WorkmodeEmbedded = "embedded" // записи в bbolt-файле, доверенные подсети в памяти
)

// Хранилища записей failban для режима external.
const (
	RecordsRedis    = "redis"
	RecordsPostgres = "postgres"
)

type App struct {
	Name string `mapstructure:"name"`
}

type Failban struct {
	FailThreshold int           `mapstructure:"fail_threshold"`
	FailureWindow time.Duration `mapstructure:"failure_window"`
	BanDuration   time.Duration `mapstructure:"ban_duration"`
	MaskLength    int           `mapstructure:"mask_length"`
	// Доверенные подсети (CIDR), никогда не учитываются и не блокируются.
	// В режиме external список живёт в БД, здесь только начальное наполнение.
	Trusted []string `mapstructure:"trusted"`
}

type Server struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
	TLS     struct {
		Enabled  bool   `mapstructure:"enabled"`
		CertFile string `mapstructure:"cert_file"`
		KeyFile  string `mapstructure:"key_file"`
	} `mapstructure:"tls"`
	Admin struct {
		Enabled bool   `mapstructure:"enabled"`
		Address string `mapstructure:"address"`
		Port    int    `mapstructure:"port"`
		// Bearer-токен для admin API, если пустой, авторизации нет
		Secret string `mapstructure:"secret"`
	} `mapstructure:"admin"`
}

type Logger struct {
	Level  string `mapstructure:"level"`
	File   string `mapstructure:"file"`
	Format string `mapstructure:"format"` // text/json
}

type Database struct {
	Workmode   string `mapstructure:"workmode"` // local/external/embedded
	Records    string `mapstructure:"records"`  // redis/postgres, только для external
	Postgresql struct {
		// Параметры подключения могут задаваться либо в dsn, либо, если dsn не задан в следующих полях
		Dsn string `mapstructure:"dsn"`
		// Поля подключения к БД в случае, если dsn не задан
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		Name     string `mapstructure:"name"`
		// параметры пула коннектов
		Pool struct {
			// Макс. число открытых соединений от этого процесса
			MaxOpenConns int `mapstructure:"max_open_conns"`
			// Макс. число открытых неиспользуемых соединений
			MaxIdleConns int `mapstructure:"max_idle_conns"`
			// Макс. время жизни одного подключения
			ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
			// Макс. время ожидания подключения в пуле
			ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
		} `mapstructure:"pool"`
	} `mapstructure:"postgresql"`
	Redis struct {
		Address   string `mapstructure:"address"`
		Password  string `mapstructure:"password"`
		DB        int    `mapstructure:"db"`
		KeyPrefix string `mapstructure:"key_prefix"`
		Policer   struct {
			ReadTimeout  time.Duration `mapstructure:"read_timeout"`
			WriteTimeout time.Duration `mapstructure:"write_timeout"`
			DialTimeout  time.Duration `mapstructure:"dial_timeout"`
			PoolSize     int           `mapstructure:"pool_size"`
		} `mapstructure:"policer"`
		Subscriber struct {
			ReadTimeout    time.Duration `mapstructure:"read_timeout"`
			PoolSize       int           `mapstructure:"pool_size"`
			SubnetsChannel string        `mapstructure:"subnets_channel"` // ключ для нотификаций об обновлении списка доверенных подсетей
		} `mapstructure:"subscriber"`
	} `mapstructure:"redis"`
	Bolt struct {
		Path        string        `mapstructure:"path"`
		OpenTimeout time.Duration `mapstructure:"open_timeout"`
	} `mapstructure:"bolt"`
}

type Config struct {
	App      App      `mapstructure:"app"`
	Failban  Failban  `mapstructure:"failban"`
	Server   Server   `mapstructure:"server"`
	Logger   Logger   `mapstructure:"logger"`
	Database Database `mapstructure:"database"`
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "subnet-failban")
	v.SetDefault("failban.fail_threshold", 5)
	v.SetDefault("failban.failure_window", "1h")
	v.SetDefault("failban.ban_duration", "1h")
	v.SetDefault("failban.mask_length", 24)
	v.SetDefault("failban.trusted", []string{})
	v.SetDefault("database.workmode", WorkmodeLocal) // локальный режим - in-memory хранилища
	v.SetDefault("database.records", RecordsRedis)
	v.SetDefault("database.postgresql.host", "localhost")
	v.SetDefault("database.postgresql.port", 5432)
	v.SetDefault("database.postgresql.name", "subnet_failban")
	v.SetDefault("database.postgresql.pool.max_open_conns", 20)
	v.SetDefault("database.postgresql.pool.max_idle_conns", 10)
	v.SetDefault("database.postgresql.pool.conn_max_lifetime", "1h")
	v.SetDefault("database.postgresql.pool.conn_max_idle_time", "10m")
	v.SetDefault("database.redis.address", "localhost:6379")
	v.SetDefault("database.redis.password", "")
	v.SetDefault("database.redis.db", 0)
	v.SetDefault("database.redis.key_prefix", "failban:")
	v.SetDefault("database.redis.policer.dial_timeout", "5s")
	v.SetDefault("database.redis.policer.read_timeout", "3s")
	v.SetDefault("database.redis.policer.write_timeout", "3s")
	v.SetDefault("database.redis.policer.pool_size", 100)
	v.SetDefault("database.redis.subscriber.read_timeout", "0s")
	v.SetDefault("database.redis.subscriber.pool_size", 2)
	v.SetDefault("database.redis.subscriber.subnets_channel", "failban.trusted.updated")
	v.SetDefault("database.bolt.path", "failban.db")
	v.SetDefault("database.bolt.open_timeout", "1s")
	v.SetDefault("server.port", 50051)
	v.SetDefault("server.admin.enabled", true)
	v.SetDefault("server.admin.address", "127.0.0.1")
	v.SetDefault("server.admin.port", 8080)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "text")
}

func LoadConfig(cfgFilePath string) (*Config, error) {
	v := viper.New()

	// ENV с префиксом FAILBAN, __ вместо . и _ вместо - в ключах
	v.SetEnvPrefix("FAILBAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// если конфиг не задан - ищем по стандартным путям
	if cfgFilePath == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/subnet-failban")
	} else {
		if !fileExists(cfgFilePath) {
			return nil, ErrFileNotFound
		}
		v.SetConfigFile(cfgFilePath)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	decoderCfg := &mapstructure.DecoderConfig{
		TagName:          "mapstructure",
		Result:           &cfg,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	}
	dec, err := mapstructure.NewDecoder(decoderCfg)
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(v.AllSettings()); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет значения, без которых сервис не может стартовать.
func (c *Config) Validate() error {
	if c.Failban.FailThreshold < 1 {
		return fmt.Errorf("%w: failban.fail_threshold must be positive", ErrInvalidConfig)
	}
	if c.Failban.FailureWindow < time.Second || c.Failban.BanDuration < time.Second {
		return fmt.Errorf("%w: failban.failure_window and failban.ban_duration must be at least 1s", ErrInvalidConfig)
	}
	if c.Failban.FailureWindow%time.Second != 0 || c.Failban.BanDuration%time.Second != 0 {
		return fmt.Errorf("%w: failban.failure_window and failban.ban_duration must be whole seconds", ErrInvalidConfig)
	}
	if c.Failban.MaskLength < 0 || c.Failban.MaskLength > 32 {
		return fmt.Errorf("%w: failban.mask_length must be in range 0..32", ErrInvalidConfig)
	}
	switch c.Database.Workmode {
	case WorkmodeLocal, WorkmodeEmbedded:
	case WorkmodeExternal:
		if c.Database.Records != RecordsRedis && c.Database.Records != RecordsPostgres {
			return fmt.Errorf("%w: database.records must be %q or %q", ErrInvalidConfig, RecordsRedis, RecordsPostgres)
		}
	default:
		return fmt.Errorf("%w: unknown database.workmode %q", ErrInvalidConfig, c.Database.Workmode)
	}
	return nil
}
