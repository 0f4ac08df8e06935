package commands

import (
	"fmt"

	"github.com/GreatValueCreamSoda/gonpp/internal/compare"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type loggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type config struct {
	Device  int            `mapstructure:"device"`
	Logging loggingConfig  `mapstructure:"logging"`
	Compare compare.Config `mapstructure:"compare"`
}

func setDefaults(v *viper.Viper) {
	def := compare.DefaultConfig()
	v.SetDefault("device", 0)
	v.SetDefault("logging.level", "info")
	v.SetDefault("compare.workers", def.Workers)
	v.SetDefault("compare.metrics", def.Metrics)
	v.SetDefault("compare.max_frames", 0)
}

func loadConfig(v *viper.Viper) (config, error) {
	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, err
	}
	return cfg, nil
}

// bindFlags binds each named flag of flags to its config key.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for name, key := range keys {
		f := flags.Lookup(name)
		if f == nil {
			panic(fmt.Sprintf("no flag %q", name))
		}
		v.BindPFlag(key, f)
	}
}
