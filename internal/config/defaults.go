package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Defaults are values the user can pin in an optional plugsmith.yml (in
// the working directory or under ~/.config/plugsmith) or via PLUGSMITH_*
// environment variables. Command-line flags always win over these.
type Defaults struct {
	GithubUser  string // default for --github-user
	Description string // default for --description
	Preset      string // default preset name, empty for none
}

// LoadDefaults reads the defaults file and environment. A missing file
// is not an error; only a present-but-unreadable file is.
func LoadDefaults() (*Defaults, error) {
	v := viper.New()
	v.SetConfigName("plugsmith")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "plugsmith"))
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("PLUGSMITH")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	d := &Defaults{
		GithubUser:  v.GetString("github_user"),
		Description: v.GetString("description"),
		Preset:      v.GetString("preset"),
	}

	// The original tool defaulted the attribution to $USER.
	if d.GithubUser == "" {
		d.GithubUser = os.Getenv("USER")
	}

	return d, nil
}
