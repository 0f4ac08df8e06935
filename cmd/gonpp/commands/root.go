package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	"github.com/GreatValueCreamSoda/gonpp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	log     = logrus.New()
	logFile io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "gonpp",
	Short: "GPU image processing with NVIDIA NPP",
	Long: `gonpp runs NVIDIA Performance Primitives on images and videos.

Operations run on the selected CUDA device. Binaries built without the
npp tag can still report what is installed but cannot process anything.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
}

// Execute runs the root command. An interrupt cancels the command's context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		log.Error(err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.gonpp/config.yaml)")
	flags.Int("device", 0, "CUDA device index")
	flags.String("log-level", "info", "log level: error, warn, info, debug")
	flags.String("log-file", "", "write logs to this file instead of stderr")

	bindFlags(viper.GetViper(), flags, map[string]string{
		"device":    "device",
		"log-level": "logging.level",
		"log-file":  "logging.file",
	})

	setDefaults(viper.GetViper())
}

// initConfig reads in the config file and GONPP_ environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".gonpp"))
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("GONPP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			fmt.Fprintln(os.Stderr, "Error reading config:", err)
		}
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	if err := configureLogger(log, cfg.Logging); err != nil {
		return err
	}
	if used := viper.ConfigFileUsed(); used != "" {
		log.Debugf("Using config file %s", used)
	}
	gonpp.SetLogger(log)
	return nil
}

func closeLogging(cmd *cobra.Command, args []string) error {
	if logFile != nil {
		return logFile.Close()
	}
	return nil
}

func configureLogger(l *logrus.Logger, cfg loggingConfig) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if cfg.File == "" {
		l.SetOutput(os.Stderr)
		return nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	l.SetOutput(f)
	logFile = f
	return nil
}

// useDevice binds the current goroutine to its OS thread and selects device
// on it. The returned func releases the thread.
func useDevice(device int) (func(), error) {
	runtime.LockOSThread()
	if err := gonpp.SetDevice(device); err != nil {
		runtime.UnlockOSThread()
		return nil, err
	}
	log.Debugf("Using CUDA device %d", device)
	return runtime.UnlockOSThread, nil
}
