package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Astemirdum/lending-registry/pkg/kafka"
	"github.com/Astemirdum/lending-registry/pkg/logger"
	"github.com/Astemirdum/lending-registry/pkg/postgres"
)

const (
	LedgerMemory   = "memory"
	LedgerPostgres = "postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"LENDING_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"LENDING_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

// Lending is the initial parameter set and the ledger wiring.
type Lending struct {
	Operator         string        `envconfig:"LENDING_OPERATOR" required:"true"`
	FeePercent       uint64        `envconfig:"LENDING_FEE_PERCENT" default:"5"`
	MaxLendingPeriod uint64        `envconfig:"LENDING_MAX_PERIOD" default:"100"`
	Deposit          uint64        `envconfig:"LENDING_DEPOSIT" default:"10"`
	MaxBooksPerUser  uint64        `envconfig:"LENDING_MAX_BOOKS" default:"5"`
	LedgerDriver     string        `envconfig:"LEDGER_DRIVER" default:"memory"`
	BlockInterval    time.Duration `envconfig:"BLOCK_INTERVAL" default:"12s"`
	Genesis          time.Time     `envconfig:"GENESIS"`
	JWTKey           string        `json:"-" envconfig:"JWT_KEY"`
}

type Config struct {
	Server   HTTPServer `yaml:"server"`
	Lending  Lending
	Database postgres.DB `yaml:"db"`
	Kafka    kafka.Config
	Log      logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		if config.Lending.Genesis.IsZero() {
			config.Lending.Genesis = time.Now()
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	masked := *cfg
	masked.Database.Password = "***"
	jscfg, _ := json.MarshalIndent(masked, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
