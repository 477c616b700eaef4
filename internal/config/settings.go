package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings are the deployment settings shared by the commands.
type Settings struct {
	SSH  SSHSettings  `yaml:"ssh"`
	Web  WebSettings  `yaml:"web"`
	Save SaveSettings `yaml:"save"`
	Log  LogSettings  `yaml:"log"`
}

// SSHSettings configure the SSH arcade.
type SSHSettings struct {
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	HostKeyPath string `yaml:"host_key_path"`
}

// WebSettings configure the save service.
type WebSettings struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

// SaveSettings select where the game persists its record.
// When URL is set the game talks to the save service, otherwise it uses Path.
type SaveSettings struct {
	Path string `yaml:"path"`
	URL  string `yaml:"url"`
}

// LogSettings configure logging.
type LogSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Used by the local game, whose stderr is the screen
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		SSH:  SSHSettings{Host: "::", Port: "2222", HostKeyPath: "/app/keys/host_key"},
		Web:  WebSettings{Host: "0.0.0.0", Port: "8080"},
		Save: SaveSettings{Path: "neon_shooter_save.json"},
		Log:  LogSettings{Level: "info"},
	}
}

// Load reads settings from the YAML file at path on top of the defaults,
// then applies environment overrides. A missing file is not an error.
func Load(path string) (Settings, error) {
	s := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return s, fmt.Errorf("read settings: %w", err)
		default:
			if err := yaml.Unmarshal(data, &s); err != nil {
				return s, fmt.Errorf("parse settings %s: %w", path, err)
			}
		}
	}

	s.SSH.Host = GetEnv("SSH_HOST", s.SSH.Host)
	s.SSH.Port = GetEnv("SSH_PORT", s.SSH.Port)
	s.SSH.HostKeyPath = GetEnv("SSH_HOST_KEY", s.SSH.HostKeyPath)
	s.Web.Host = GetEnv("WEB_HOST", s.Web.Host)
	s.Web.Port = GetEnv("WEB_PORT", s.Web.Port)
	s.Save.Path = GetEnv("SAVE_PATH", s.Save.Path)
	s.Save.URL = GetEnv("SAVE_URL", s.Save.URL)
	s.Log.Level = GetEnv("LOG_LEVEL", s.Log.Level)
	s.Log.File = GetEnv("LOG_FILE", s.Log.File)
	return s, nil
}

// LoadDefault loads settings from the file named by NEONDUEL_CONFIG.
func LoadDefault() (Settings, error) {
	return Load(GetEnv("NEONDUEL_CONFIG", "neonduel.yaml"))
}
