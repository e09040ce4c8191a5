package lib

import (
	"os"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

type testConfig struct {
	LogLevel string `mapstructure:"log_level"`
	Server   struct {
		HttpPort int `mapstructure:"http_port"`
	}
	Pubmed struct {
		Email string
	}
	KeyNotInDefaults string `mapstructure:"key_not_in_defaults"`
}

var configFileName string

func TestMain(m *testing.M) {
	configMap := map[string]interface{}{
		"log_level": "debug",
		"server": map[string]interface{}{
			"http_port": 9090,
		},
	}

	filename, err := createConfigFile(configMap, ".", "*.yml")
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Remove(filename)
	os.Exit(code)
}

func TestInitializeConfigFromPath(t *testing.T) {
	resetFlags()

	var parsedConfig testConfig
	err := InitializeConfig(configFileName, map[string]interface{}{}, &parsedConfig)

	require.NoError(t, err)
	assert.Equal(t, "debug", parsedConfig.LogLevel)
	assert.Equal(t, 9090, parsedConfig.Server.HttpPort)
}

func TestInitializeConfigDefaultsApply(t *testing.T) {
	resetFlags()

	var parsedConfig testConfig
	err := InitializeConfig(configFileName, map[string]interface{}{
		"pubmed": map[string]interface{}{
			"email": "dev@example.com",
		},
	}, &parsedConfig)

	require.NoError(t, err)
	// keys absent from the yml fall back to the in-code defaults
	assert.Equal(t, "dev@example.com", parsedConfig.Pubmed.Email)
	// keys in the yml win over nothing at all
	assert.Equal(t, "debug", parsedConfig.LogLevel)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	resetFlags()

	os.Setenv("LOG_LEVEL", "warn")
	os.Setenv("KEY_NOT_IN_DEFAULTS", "ignored")
	defer os.Unsetenv("LOG_LEVEL")
	defer os.Unsetenv("KEY_NOT_IN_DEFAULTS")

	var parsedConfig testConfig
	err := InitializeConfig(configFileName, map[string]interface{}{}, &parsedConfig)

	require.NoError(t, err)
	assert.Equal(t, "warn", parsedConfig.LogLevel)

	// env vars without a matching config key are invisible to viper
	assert.Equal(t, "", parsedConfig.KeyNotInDefaults)
}

func resetFlags() {
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
}

func createConfigFile(configMap map[string]interface{}, path, name string) (string, error) {
	file, err := os.CreateTemp(path, name)
	if err != nil {
		return "", err
	}
	configFileName = file.Name()

	bytes, err := yaml.Marshal(configMap)
	if err != nil {
		return "", err
	}
	if _, err := file.Write(bytes); err != nil {
		return "", err
	}
	return configFileName, file.Close()
}
