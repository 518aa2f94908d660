package email

import (
	"fmt"
	"time"
)

// SMTPConfig содержит конфигурацию SMTP сервера
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	Timeout   time.Duration
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() *SMTPConfig {
	return &SMTPConfig{
		Host:     "smtp.gmail.com",
		Port:     587,
		FromName: "HR Interview Portal",
		Timeout:  30 * time.Second,
	}
}

func (c *SMTPConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", c.Port)
	}
	if c.FromEmail == "" && c.Username == "" {
		return fmt.Errorf("sender address is required")
	}
	return nil
}

// Sender - адрес отправителя; при пустом FromEmail используется логин SMTP
func (c *SMTPConfig) Sender() string {
	if c.FromEmail != "" {
		return c.FromEmail
	}
	return c.Username
}
