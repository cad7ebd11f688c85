package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	defaults := func() *Config {
		c := &Config{}
		c.LoadDefaults()
		return c
	}

	// Test cases
	tests := []struct {
		expected    *Config
		start       func(c *Config)
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-g", ":6000", "-d", "db", "-s", "secret",
			"-t", "1", "-b", "12", "-f=false", "-l", "debug",
		}, expectPanic: false,
			expected: &Config{
				EndpointAddrHTTP:            "127.0.0.1:9090",
				EndpointAddrGRPC:            ":6000",
				DatabaseDSN:                 "db",
				SecretKey:                   "secret",
				AccessTokenValidityDuration: 1 * time.Minute,
				BcryptCost:                  12,
				AnonymousFallback:           false,
				LogLevel:                    "debug",
			}},
		{name: "bare switch does not swallow next flag", args: []string{"cmd", "-f", "-d", "memory"},
			expected: func() *Config {
				c := defaults()
				c.DatabaseDSN = "memory"
				return c
			}()},
		{name: "unknown flags are ignored", args: []string{"cmd", "-x", "1", "-d", "memory"},
			expected: func() *Config {
				c := defaults()
				c.DatabaseDSN = "memory"
				return c
			}()},
		{name: "without -t a sub-minute validity is kept", args: []string{"cmd", "-d", "memory"},
			start: func(c *Config) { c.AccessTokenValidityDuration = 30 * time.Second },
			expected: func() *Config {
				c := defaults()
				c.DatabaseDSN = "memory"
				c.AccessTokenValidityDuration = 30 * time.Second
				return c
			}()},
		{name: "bad int panics", args: []string{"cmd", "-t", "soon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := defaults()
			if tt.start != nil {
				tt.start(config)
			}

			if !tt.expectPanic {

				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
