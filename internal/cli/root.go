package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alpha-code-labs/Agri-sevak/internal/dataset"
	"github.com/alpha-code-labs/Agri-sevak/internal/filter"
	"github.com/alpha-code-labs/Agri-sevak/internal/model"
)

var (
	cfgFile  string
	dataPath string
	verbose  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "agrishield",
	Short: "AgriShield - banned pesticide compliance filter for crop advisories",
	Long: `AgriShield screens crop advisory content against the CIB&RC India
list of banned and restricted pesticides.

It does not judge agronomy. It detects mentions of chemicals that must
never be recommended for a given crop, annotates retrieved evidence with
safety warnings before the generation stage consumes it, and produces
the banned-substance instruction block for the downstream auditor.

AgriShield annotates and instructs; enforcement belongs to the consumer.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("agrishield v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.agrishield/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "path to banned_pesticides.json (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("data.path", rootCmd.PersistentFlags().Lookup("data"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.agrishield")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match AGRISHIELD_*
	viper.SetEnvPrefix("AGRISHIELD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig builds the effective configuration from defaults, config
// file, environment, and flags.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetString("data.path"); v != "" {
		cfg.Data.Path = v
	}
	if v := viper.GetString("log.level"); v != "" {
		cfg.Log.Level = v
	}
	if v := viper.GetInt("batch.workers"); v > 0 {
		cfg.Batch.Workers = v
	}
	if v := viper.GetFloat64("batch.rate_per_second"); v > 0 {
		cfg.Batch.RatePerSecond = v
	}
	if v := viper.GetInt("batch.burst"); v > 0 {
		cfg.Batch.Burst = v
	}
	if v := viper.GetDuration("batch.timeout"); v > 0 {
		cfg.Batch.Timeout = v
	}
	cfg.Output.Verbose = verbose || viper.GetBool("output.verbose")

	if dataPath != "" {
		cfg.Data.Path = dataPath
	}

	return cfg
}

// newLogger creates the CLI logger writing to stderr
func newLogger(cfg *model.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if cfg.Output.Verbose && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()
}

// newFilter wires the dataset store and filter from configuration
func newFilter(cfg *model.Config) *filter.Filter {
	logger := newLogger(cfg)
	store := dataset.NewStore(cfg.Data.Path, logger)
	return filter.New(store, logger)
}
