// Package dialconfig resolves jdwpdial's dial options from a TOML config
// file, environment variables, and command-line flags, in that order of
// increasing precedence.
package dialconfig

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
)

// Options is the fully resolved set of options jdwpdial needs to connect to
// a target VM and report on its events.
type Options struct {
	Host      string `toml:"host"`
	Port      int    `toml:"port"`
	Verbosity int    `toml:"verbosity"`
}

// Default returns the baseline options applied before any file, env, or
// flag override.
func Default() Options {
	return Options{Host: "localhost", Port: 8000, Verbosity: 0}
}

// Load resolves Options starting from Default, then a TOML file at path (if
// it exists; a missing file is not an error), then the JDWPDIAL_HOST,
// JDWPDIAL_PORT, and JDWPDIAL_VERBOSITY environment variables, then flags
// already parsed onto fs.
func Load(path string, fs *pflag.FlagSet) (Options, error) {
	opts := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := toml.Unmarshal(data, &opts); err != nil {
				return Options{}, fmt.Errorf("dialconfig: parsing %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// No config file is a normal configuration, not an error.
		default:
			return Options{}, fmt.Errorf("dialconfig: reading %s: %w", path, err)
		}
	}

	if v, ok := os.LookupEnv("JDWPDIAL_HOST"); ok {
		opts.Host = v
	}
	if v, ok := os.LookupEnv("JDWPDIAL_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Options{}, fmt.Errorf("dialconfig: JDWPDIAL_PORT=%q: %w", v, err)
		}
		opts.Port = port
	}
	if v, ok := os.LookupEnv("JDWPDIAL_VERBOSITY"); ok {
		verbosity, err := strconv.Atoi(v)
		if err != nil {
			return Options{}, fmt.Errorf("dialconfig: JDWPDIAL_VERBOSITY=%q: %w", v, err)
		}
		opts.Verbosity = verbosity
	}

	if fs != nil {
		if fs.Changed("host") {
			opts.Host, _ = fs.GetString("host")
		}
		if fs.Changed("port") {
			opts.Port, _ = fs.GetInt("port")
		}
		if fs.Changed("verbosity") {
			opts.Verbosity, _ = fs.GetInt("verbosity")
		}
	}

	return opts, nil
}

// Address formats Options as a host:port dial address.
func (o Options) Address() string {
	return fmt.Sprintf("%s:%d", o.Host, o.Port)
}

// AddFlags registers the flags Load reads back via fs.Changed.
func AddFlags(fs *pflag.FlagSet) {
	def := Default()
	fs.String("host", def.Host, "target VM host")
	fs.Int("port", def.Port, "target VM JDWP port")
	fs.Int("verbosity", def.Verbosity, "log verbosity (0=info, 1+=debug)")
	fs.String("config", "", "path to a TOML config file")
}
