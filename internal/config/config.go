// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/alvinbaena/pwd-meter/internal/util"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var ErrInvalid = errors.New("invalid configuration")

// Config of the strength server. Every key can be set from the environment, a .env file or the
// serve command flags, in increasing order of precedence.
type Config struct {
	Port        uint16   `mapstructure:"PORT" validate:"required"`
	Scorer      string   `mapstructure:"SCORER" validate:"oneof=heuristic model"`
	Estimator   string   `mapstructure:"ESTIMATOR"`
	SelfTLS     bool     `mapstructure:"SELF_TLS" validate:"required_without_all=TLSCert TLSKey"`
	TLSCert     string   `mapstructure:"TLS_CERT" validate:"required_if=SelfTLS false,required_with=TLSKey"`
	TLSKey      string   `mapstructure:"TLS_KEY" validate:"required_if=SelfTLS false,required_with=TLSCert"`
	WebRoot     string   `mapstructure:"WEB_ROOT"`
	PageFile    string   `mapstructure:"PAGE_FILE" validate:"omitempty,file"`
	CorsOrigins []string `mapstructure:"CORS_ORIGINS"`
	Debug       bool     `mapstructure:"DEBUG"`
}

// Flags maps config keys to the flag names that can override them.
var Flags = map[string]string{
	"PORT":         "port",
	"SCORER":       "scorer",
	"ESTIMATOR":    "estimator",
	"SELF_TLS":     "self-tls",
	"TLS_CERT":     "tls-cert",
	"TLS_KEY":      "tls-key",
	"WEB_ROOT":     "web-root",
	"PAGE_FILE":    "page",
	"CORS_ORIGINS": "cors-origin",
}

func bindEnvs(v *viper.Viper, iface interface{}, parts ...string) {
	ifv := reflect.ValueOf(iface)
	ift := reflect.TypeOf(iface)
	for i := 0; i < ift.NumField(); i++ {
		f := ifv.Field(i)
		t := ift.Field(i)
		tv, ok := t.Tag.Lookup("mapstructure")
		if !ok {
			continue
		}
		switch f.Kind() {
		case reflect.Struct:
			bindEnvs(v, f.Interface(), append(parts, tv)...)
		default:
			_ = v.BindEnv(strings.Join(append(parts, tv), "."))
		}
	}
}

func msgForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "oneof":
		return fmt.Sprintf("This field must be one of [%s]", fe.Param())
	case "file":
		return "This field must be the path of an existing file"
	case "required_without_all":
		return fmt.Sprintf("This field is required if fields [%s] are missing", util.ToScreamingSnakeCase(fe.Param()))
	case "required_if":
		return fmt.Sprintf("This field is required if %s", util.ToScreamingSnakeCase(fe.Param()))
	case "required_with":
		return fmt.Sprintf("This field requires the presence of %s", util.ToScreamingSnakeCase(fe.Param()))
	}
	return fe.Error() // default error
}

// Load reads the configuration. Flags in flags that were explicitly set take precedence over the
// environment, and their defaults are used when neither is present.
func Load(flags *pflag.FlagSet) (config Config, err error) {
	if err = godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("could not read .env file")
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// This is to not require a config file to unmarshal Envs in a struct
	// https://github.com/spf13/viper/issues/188#issuecomment-399884438
	config = Config{}
	bindEnvs(v, config)

	if flags != nil {
		for key, name := range Flags {
			if f := flags.Lookup(name); f != nil {
				if err = v.BindPFlag(key, f); err != nil {
					return
				}
			}
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}

	if err = validator.New().Struct(&config); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			var msgs []string
			for _, fe := range ve {
				msgs = append(msgs, fmt.Sprintf("%s: %s", util.ToScreamingSnakeCase(fe.Field()), msgForTag(fe)))
			}

			err = fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, ". "))
		}
	}

	return
}
