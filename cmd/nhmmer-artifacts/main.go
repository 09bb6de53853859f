/*
nhmmer-artifacts runs nhmmer and reports the sequences in the searched
database that failed to match the profile.

Usage:
	nhmmer-artifacts search [flags] profile seqdb
	nhmmer-artifacts artifacts [flags] tblout seqdb
	nhmmer-artifacts args [flags] profile seqdb

The search command runs nhmmer. With --artifacts, every database sequence
without a hit in the --tblout table is printed, one per line. The artifacts
command does the same for a table from an earlier run, and the args command
prints the nhmmer command line without running it.

Flags may also be given in a config file (--config, or
nhmmer-artifacts.{yaml,toml,json} in the current directory) or as
environment variables prefixed with NHMMER_, e.g., NHMMER_CPU=4. A .env file
in the current directory is loaded first.
*/
package main

import (
	"errors"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("%s", err)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:   "nhmmer-artifacts",
		Short: "Find sequences that fail to match a profile HMM with nhmmer",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v, cmd)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (yaml, toml or json)")
	flags.BoolP("verbose", "v", false,
		"print the nhmmer command and its output")

	root.AddCommand(newSearchCmd(v), newArtifactsCmd(v), newArgsCmd(v))
	return root
}

// loadConfig layers .env, environment, config file and command line flags
// into v. Flags win over environment variables, which win over the config
// file.
func loadConfig(v *viper.Viper, cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	v.SetEnvPrefix("NHMMER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); len(path) > 0 {
		v.SetConfigFile(path)
		return v.ReadInConfig()
	}
	v.SetConfigName("nhmmer-artifacts")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}

func logger(cmd *cobra.Command, v *viper.Viper) *log.Logger {
	if !v.GetBool("verbose") {
		return log.New(io.Discard, "", 0)
	}
	return log.New(cmd.ErrOrStderr(), "", 0)
}
