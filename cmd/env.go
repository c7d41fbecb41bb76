package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// envFlags maps environment variables to the flag they provide a default for.
var envFlags = map[string]string{
	"CHECKOUT_CONFIG":  "config",
	"CHECKOUT_EVENTS":  "events",
	"CHECKOUT_LOG":     "log",
	"CHECKOUT_HORIZON": "horizon",
	"CHECKOUT_TRACE":   "trace",
}

// applyEnvDefaults loads path (if it exists) into the environment, then uses
// CHECKOUT_* variables for any mapped flag the user did not set explicitly.
// Variables already present in the environment win over the file.
func applyEnvDefaults(cmd *cobra.Command, path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("loading %s: %w", path, err)
			}
			logrus.Debugf("No env file at %s (using environment variables)", path)
		}
	}
	for env, name := range envFlags {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || flag.Changed {
			continue
		}
		v, ok := os.LookupEnv(env)
		if !ok || v == "" {
			continue
		}
		if err := setFlag(flag, v); err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
	}
	return nil
}

func setFlag(flag *pflag.Flag, v string) error {
	if err := flag.Value.Set(v); err != nil {
		return fmt.Errorf("invalid value %q for --%s: %w", v, flag.Name, err)
	}
	return nil
}
