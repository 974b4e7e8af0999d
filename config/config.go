package config

import (
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
	"os"
)

type (
	FolioConfig struct {
		Server   ServerConfig   `yaml:"server"`
		Database DatabaseConfig `yaml:"database"`
		Auth     AuthConfig     `yaml:"auth"`
	}

	ServerConfig struct {
		Host string `yaml:"host"`
		Port uint   `yaml:"port"`
	}

	AuthConfig struct {
		EnableNative       bool     `yaml:"enableNative"`
		EnableOpenId       bool     `yaml:"enableOpenId"`
		OpenIdIssuer       string   `yaml:"openIdIssuer"`
		OpenIdClientId     string   `yaml:"openIdClientId"`
		OpenIdRedirectHost string   `yaml:"openIdRedirectHost"`
		OpenIdAdminGroups  []string `yaml:"openIdAdminGroups"`
	}

	DatabaseConfig struct {
		Host      string `yaml:"host"`
		User      string `yaml:"user"`
		Database  string `yaml:"database"`
		Port      uint   `yaml:"port"`
		LocalFile string `yaml:"localFile"`
	}
)

func Load(fileName string) *FolioConfig {
	config := defaultConfig()

	if configData, err := os.ReadFile(fileName); err != nil {
		log.Warn("Failed to load configuration file.", "path", fileName)
		data, err := yaml.Marshal(&config)
		err = os.WriteFile(fileName, data, 0755)
		if err != nil {
			log.Error("Failed to write default configuration file.", "path", fileName)
		}
	} else if err := yaml.Unmarshal(configData, &config); err != nil {
		log.Error("Failed to parse configuration file.", "error", err.Error())
	}

	return config
}

func defaultConfig() *FolioConfig {
	return &FolioConfig{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 3000,
		},
		Database: DatabaseConfig{
			Host:      "127.0.0.1",
			User:      "folio",
			Database:  "folio",
			Port:      5432,
			LocalFile: "./folio.db",
		},
		Auth: AuthConfig{
			EnableNative:       true,
			EnableOpenId:       false,
			OpenIdIssuer:       "",
			OpenIdClientId:     "",
			OpenIdRedirectHost: "",
			OpenIdAdminGroups:  make([]string, 0),
		},
	}
}
