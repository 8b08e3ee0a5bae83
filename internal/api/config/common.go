package config

// Config is the top-level configuration body.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Recaptcha RecaptchaConfig `mapstructure:"recaptcha"`
	MinIO     MinIOConfig     `mapstructure:"minio"`
	Mail      MailConfig      `mapstructure:"mail"`
	Upload    UploadConfig    `mapstructure:"upload"`
}

// ServerConfig HTTP server settings.
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // development | production
}

// DBConfig database settings.
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// JWTConfig token signing settings. Expire accepts a day count either
// as a bare number ("30") or with a day suffix ("30d").
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Expire string `mapstructure:"expire"`
}

// RecaptchaConfig Google reCAPTCHA verification settings.
type RecaptchaConfig struct {
	Secret    string `mapstructure:"secret"`
	VerifyURL string `mapstructure:"verify_url"`
}

// MinIOConfig object storage settings.
type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	Folder    string `mapstructure:"folder"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// MailConfig SMTP settings for notification mail.
type MailConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	To       string `mapstructure:"to"` // operator address for contact notifications
}

// UploadConfig media upload limits.
type UploadConfig struct {
	MaxFileSize int64  `mapstructure:"max_file_size"` // bytes per file
	MaxFiles    int    `mapstructure:"max_files"`     // files per batch
	TempDir     string `mapstructure:"temp_dir"`
}
