/*
 * Copyright 2025 Hanul Informatics
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *     http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package lib

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFlag = "config"

type BaseConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

/**
	InitializeConfig standardises config initialization across all apps.

	Config is read from a yml file located at defaultPath unless overridden
	with the --config flag. Keys present in defaultConfig but missing from the
	yml file are kept as defaults, so each app can run with no config file at
	all. Env vars override config keys when uppercased and with "_" in place
	of "." (e.g. PUBMED_EMAIL overrides pubmed.email).

	The log_level key is parsed into zerolog's global level before the config
	is unmarshalled into targetStruct.
**/
func InitializeConfig(defaultPath string, defaultConfig map[string]interface{}, targetStruct interface{}) error {

	pflag.String(configFlag, defaultPath, "The config file path.")
	pflag.Parse()

	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		return err
	}

	configFile := viper.GetString(configFlag)

	if !filepath.IsAbs(configFile) {
		var err error
		configFile, err = filepath.Abs(configFile)
		if err != nil {
			return err
		}
	}

	for k, v := range defaultConfig {
		viper.SetDefault(k, v)
	}

	viper.SetConfigName(strings.TrimSuffix(filepath.Base(configFile), filepath.Ext(configFile)))
	viper.AddConfigPath(filepath.Dir(configFile))

	// env vars are only visible to viper when the key also exists in the
	// config, so every overridable key must appear in defaultConfig.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	err := viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		log.Warn().Err(err).Msg("default settings applied")
	} else if err != nil {
		return err
	}

	var bc BaseConfig
	if err := viper.Unmarshal(&bc); err != nil {
		return err
	}

	lvl, err := zerolog.ParseLevel(bc.LogLevel)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)

	return viper.Unmarshal(targetStruct)
}
