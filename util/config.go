package util

import (
	"log"
	"os"

	"github.com/go-yaml/yaml"
)

// Config is Steward base configuration
type Config struct {
	Server  Server  `yaml:"server"`
	Steward Steward `yaml:"steward"`
}

type Server struct {
	Dsn           string `yaml:"dsn"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisDB       int    `yaml:"redisDB"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

type Steward struct {
	GrantsPath           string   `yaml:"grantsPath"`
	Admins               []string `yaml:"admins"`
	ProjectionTTLMinutes int      `yaml:"projectionTTLMinutes"`
}

// Load loads steward config from given path
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal("failed to open configuration file:", err)
		return err
	}
	defer f.Close()

	err = yaml.NewDecoder(f).Decode(&c)
	if err != nil {
		log.Fatal("failed to load configuration file:", err)
		return err
	}

	return nil
}
