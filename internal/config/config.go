package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Built-in endpoints. The LPR service lives on its own host but shares the
// main API's auth, so token refreshes always go to api_base_url.
const (
	DefaultAPIBaseURL    = "https://api.fususone.com"
	DefaultLPRBaseURL    = "https://lpr-api.fususone.com"
	DefaultBalenaBaseURL = "https://api.balena-cloud.com"
)

// Init reads in the config file and ENV variables if set.
func Init(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".fusus-cli" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".fusus-cli")
	}

	home, _ := os.UserHomeDir()
	viper.SetDefault("api_base_url", DefaultAPIBaseURL)
	viper.SetDefault("lpr_base_url", DefaultLPRBaseURL)
	viper.SetDefault("balena_base_url", DefaultBalenaBaseURL)
	viper.SetDefault("token_dir", home)
	viper.SetDefault("contacts_db", filepath.Join(home, "poc_contacts.db"))

	viper.AutomaticEnv() // read in environment variables that match

	// Missing config file is fine; defaults cover everything but tokens.
	_ = viper.ReadInConfig()
}
