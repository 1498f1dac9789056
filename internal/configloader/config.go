package configloader

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Structure to bind application parameters
type Config struct {
	LogLevel           string `mapstructure:"LOG_LEVEL"`           // logrus library log level to be assigned
	InterpreterConfig  string `mapstructure:"INTERPRETER_CONFIG"`  // file holding the interpreter key
	InterpreterKey     string `mapstructure:"INTERPRETER_KEY"`     // key looked up in the interpreter file
	DefaultInterpreter string `mapstructure:"DEFAULT_INTERPRETER"` // interpreter used when the key is missing
	EntryPoint         string `mapstructure:"ENTRY_POINT"`         // program handed to the interpreter
	PauseOnFailure     bool   `mapstructure:"PAUSE_ON_FAILURE"`    // wait for a key after a failed run
	HistoryDatabase    string `mapstructure:"HISTORY_DATABASE"`    // sqlite file for launch history, empty to disable
}

// Initialize default parameters values
func initDefaultConfiguration(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("INTERPRETER_CONFIG", "config.ini")
	v.SetDefault("INTERPRETER_KEY", "python_path")
	v.SetDefault("DEFAULT_INTERPRETER", "python")
	v.SetDefault("ENTRY_POINT", "main.py")
	v.SetDefault("PAUSE_ON_FAILURE", true)
	v.SetDefault("HISTORY_DATABASE", "")
}

// Load configuration from file and environment
func LoadConfiguration(applicationName string, configurationFilePath string) (config Config, err error) {
	v := viper.New()
	initDefaultConfiguration(v)

	if configurationFilePath == "" {
		// Read the volume root path
		root := filepath.VolumeName(".")
		if root == "" {
			root = string(filepath.Separator)
		}

		// Set configuration named launcher from etc/*appName*, $HOME/.*appName* or current folders
		v.AddConfigPath(filepath.Join(root, "etc", applicationName))
		v.AddConfigPath(filepath.Join("$HOME", "."+applicationName))
		v.AddConfigPath(".")
		v.SetConfigName("launcher")
		v.SetConfigType("yaml")
	} else {
		// Set the configuration file path
		v.SetConfigFile(configurationFilePath)
	}

	// Get configuration from environment variables prefixed with the
	// application name (e.g. STITCHER_LOG_LEVEL), if set
	v.SetEnvPrefix(applicationName)
	v.AutomaticEnv()

	// Get configuration from configuration file, if set. Only an explicit
	// path is worth a warning: the search paths are usually empty.
	if configError := v.ReadInConfig(); configError != nil {
		if configurationFilePath != "" {
			logrus.Warn(configError.Error())
		} else {
			logrus.Debug(configError.Error())
		}
	}
	err = v.Unmarshal(&config)

	return
}
