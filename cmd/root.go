package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/vamsipaul1/futurefit/internal/logger"
	"github.com/vamsipaul1/futurefit/internal/store"
)

const appName = "futurefit"

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   appName,
		Short: "Skill assessments and career matching",
		Long:  "FutureFit generates adaptive skill assessments, matches trait ratings against a career catalogue, and analyzes resumes.",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is futurefit.yaml in current directory)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FUTUREFIT_DB env var)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindEnv("db", "FUTUREFIT_DB")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(appName)
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("FUTUREFIT")
	viper.AutomaticEnv()

	// A missing config file is fine; everything has defaults.
	_ = viper.ReadInConfig()
}

// newLogger builds the command logger from the json/debug flags.
func newLogger() (*zap.Logger, error) {
	return logger.New(viper.GetBool("json"), viper.GetBool("debug"))
}

// resolveDBPath returns the database path using --db (or FUTUREFIT_DB),
// then the default XDG path.
func resolveDBPath() (string, error) {
	if p := viper.GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
