// Package config loads the service configuration from a YAML file with
// environment overrides for the values that differ per deployment.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Banco struct {
	DSN         string `yaml:"dsn"`
	MaxConexoes int    `yaml:"max_conexoes"`
}

type Servidor struct {
	Porta string `yaml:"porta"`
}

type JWT struct {
	// Secret is base64 encoded, same convention as the deployment tooling.
	Secret         string `yaml:"secret"`
	ExpiracaoHoras int    `yaml:"expiracao_horas"`
}

type Paginacao struct {
	QtdPorPagina int `yaml:"qtd_por_pagina"`
}

type Seguranca struct {
	BcryptCost int `yaml:"bcrypt_cost"`
}

type Config struct {
	Banco     Banco     `yaml:"banco"`
	Servidor  Servidor  `yaml:"servidor"`
	JWT       JWT       `yaml:"jwt"`
	Paginacao Paginacao `yaml:"paginacao"`
	Seguranca Seguranca `yaml:"seguranca"`
}

// Load reads the file at path (PONTO_CONFIG or config.yaml when empty),
// applies env overrides and fills the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("PONTO_CONFIG")
	}
	if path == "" {
		path = "config.yaml"
	}

	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Env-only configuration is fine.
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if v := os.Getenv("DSN"); v != "" {
		cfg.Banco.DSN = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Servidor.Porta = v
	}
	if v := os.Getenv("PONTO_SIGNING_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}

	if cfg.Banco.MaxConexoes <= 0 {
		cfg.Banco.MaxConexoes = 10
	}
	if cfg.Servidor.Porta == "" {
		cfg.Servidor.Porta = "8080"
	}
	if cfg.JWT.ExpiracaoHoras <= 0 {
		cfg.JWT.ExpiracaoHoras = 8
	}
	if cfg.Paginacao.QtdPorPagina <= 0 {
		cfg.Paginacao.QtdPorPagina = 25
	}

	return cfg, nil
}
