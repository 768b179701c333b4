package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"

	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/core/domain"
)

type Config struct {
	Port          string `env:"PORT,           default=8080"`
	Env           string `env:"ENV,            default=development"`
	SecretKey     string `env:"SECRET_KEY,     required"`
	LogLevel      string `env:"LOG_LEVEL,      default=info"`
	AllowedOrigin string `env:"ALLOWED_ORIGIN, default=http://localhost:5173"`

	Mongo  MongoConfig
	Redis  RedisConfig
	SMTP   SMTPConfig
	Admins AdminConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=techutsav25"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// SMTPConfig carries the Brevo relay settings used for status mails.
type SMTPConfig struct {
	Host        string `env:"BREVO_SMTP_HOST"`
	Port        int    `env:"BREVO_SMTP_PORT, default=587"`
	User        string `env:"BREVO_SMTP_USER"`
	Pass        string `env:"BREVO_SMTP_PASS"`
	SenderName  string `env:"BREVO_SENDER_NAME,  default=Team Techutsav25"`
	SenderEmail string `env:"BREVO_SENDER_EMAIL"`
}

// AdminConfig carries one super-admin pair plus one pair per department.
// Passwords are bcrypt hashes.
type AdminConfig struct {
	SuperUsername string `env:"SUPER_ADMIN_USERNAME"`
	SuperPassword string `env:"SUPER_ADMIN_PASSWORD_HASH"`
	CSEUsername   string `env:"CSE_ADMIN_USERNAME"`
	CSEPassword   string `env:"CSE_ADMIN_PASSWORD_HASH"`
	ITUsername    string `env:"IT_ADMIN_USERNAME"`
	ITPassword    string `env:"IT_ADMIN_PASSWORD_HASH"`
	CSBSUsername  string `env:"CSBS_ADMIN_USERNAME"`
	CSBSPassword  string `env:"CSBS_ADMIN_PASSWORD_HASH"`
	DSUsername    string `env:"DS_ADMIN_USERNAME"`
	DSPassword    string `env:"DS_ADMIN_PASSWORD_HASH"`
}

// CredentialTable folds the configured pairs into the immutable lookup
// table consumed by the auth service. Pairs with an empty username are
// skipped so a deployment can enable only the departments it runs.
func (a AdminConfig) CredentialTable() []domain.AdminCredential {
	pairs := []struct {
		username, hash, role, department string
	}{
		{a.SuperUsername, a.SuperPassword, domain.RoleSuperAdmin, domain.DepartmentAll},
		{a.CSEUsername, a.CSEPassword, domain.RoleDepartmentAdmin, "CSE"},
		{a.ITUsername, a.ITPassword, domain.RoleDepartmentAdmin, "IT"},
		{a.CSBSUsername, a.CSBSPassword, domain.RoleDepartmentAdmin, "CSBS"},
		{a.DSUsername, a.DSPassword, domain.RoleDepartmentAdmin, "DS"},
	}

	creds := make([]domain.AdminCredential, 0, len(pairs))
	for _, p := range pairs {
		if p.username == "" {
			continue
		}
		creds = append(creds, domain.AdminCredential{
			Username:     p.username,
			PasswordHash: p.hash,
			Role:         p.role,
			Department:   p.department,
		})
	}
	return creds
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
