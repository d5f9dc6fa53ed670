package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

const (
	StorageBackendFilesystem = "filesystem"
	StorageBackendMinIO      = "minio"

	EngineLibreOffice = "libreoffice"
	EngineNative      = "native"
)

type Config struct {
	App
	Storage
	Engine
	PostgreSQL
	HTTP
}

type App struct {
	DefaultFormat   string
	RetainInputs    bool
	InputRetention  time.Duration
	OutputRetention time.Duration
	JanitorInterval time.Duration
	RecordsBuffer   int
}

type Storage struct {
	Backend     string
	InboundDir  string
	OutboundDir string
	MinIO       MinIO
}

type MinIO struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

type Engine struct {
	Kind        string
	SofficePath string
	WorkDir     string
	Workers     int
	Timeout     time.Duration
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int
}

type HTTP struct {
	Host          string
	Port          string
	IdleTimeout   time.Duration
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	MaxUploadSize int64
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			DefaultFormat:   cmd.String("default-format"),
			RetainInputs:    cmd.Bool("retain-inputs"),
			InputRetention:  cmd.Duration("input-retention"),
			OutputRetention: cmd.Duration("output-retention"),
			JanitorInterval: cmd.Duration("janitor-interval"),
			RecordsBuffer:   cmd.Int("records-buffer"),
		},
		Storage: Storage{
			Backend:     cmd.String("storage"),
			InboundDir:  cmd.String("inbound-dir"),
			OutboundDir: cmd.String("outbound-dir"),
			MinIO: MinIO{
				Endpoint:  cmd.String("minio-endpoint"),
				AccessKey: cmd.String("minio-access-key"),
				SecretKey: cmd.String("minio-secret-key"),
				Bucket:    cmd.String("minio-bucket"),
				Region:    cmd.String("minio-region"),
				UseSSL:    cmd.Bool("minio-use-ssl"),
			},
		},
		Engine: Engine{
			Kind:        cmd.String("engine"),
			SofficePath: cmd.String("soffice-path"),
			WorkDir:     cmd.String("engine-work-dir"),
			Workers:     cmd.Int("engine-workers"),
			Timeout:     cmd.Duration("engine-timeout"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
			SSLMode:  cmd.String("pg-sslmode"),
			MaxConns: cmd.Int("pg-max-conns"),
		},
		HTTP: HTTP{
			Host:          cmd.String("http-host"),
			Port:          cmd.String("http-port"),
			IdleTimeout:   cmd.Duration("http-idle-timeout"),
			ReadTimeout:   cmd.Duration("http-read-timeout"),
			WriteTimeout:  cmd.Duration("http-write-timeout"),
			MaxUploadSize: cmd.Int64("max-upload-size"),
		},
	}
}
