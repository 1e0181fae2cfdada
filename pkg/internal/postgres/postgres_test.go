package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	valid := Config{
		Host:   "localhost",
		Port:   "5432",
		User:   "postgres",
		Passwd: "123456",
		DB:     "postgres",
	}
	require.NoError(t, validateConfig(&valid))

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty host", func(c *Config) { c.Host = "" }},
		{"empty port", func(c *Config) { c.Port = "" }},
		{"empty user", func(c *Config) { c.User = "" }},
		{"empty password", func(c *Config) { c.Passwd = "" }},
		{"empty db", func(c *Config) { c.DB = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			require.Error(t, validateConfig(&cfg))
		})
	}
}

func TestNewDatabaseNilConfig(t *testing.T) {
	_, err := NewDatabase(context.Background(), nil)
	require.Error(t, err)
}

func TestNewDatabaseFromURLEmpty(t *testing.T) {
	_, err := NewDatabaseFromURL(context.Background(), "")
	require.Error(t, err)
}
