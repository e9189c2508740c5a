package proxy

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	envPrefix = "SQLSHIM"

	keyNotSupported = "not_supported_messages"
	keyQuoteFix     = "identifier_quote_fix"
	keyTrace        = "trace"
)

// Config is the file/environment form of the options.
type Config struct {
	NotSupportedMessages []string
	IdentifierQuoteFix   bool
	Trace                bool
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault(keyNotSupported, []string{DefaultNotSupportedMessage})
	v.SetDefault(keyQuoteFix, false)
	v.SetDefault(keyTrace, false)
	return v
}

// LoadConfig reads path (any format viper understands) overlaid with SQLSHIM_*
// environment variables. An empty path reads the environment only.
func LoadConfig(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Config{
		NotSupportedMessages: stringList(v, keyNotSupported),
		IdentifierQuoteFix:   v.GetBool(keyQuoteFix),
		Trace:                v.GetBool(keyTrace),
	}, nil
}

// Options converts c into options for Wrap.
func (c *Config) Options() []Option {
	var opts []Option
	if len(c.NotSupportedMessages) > 0 {
		opts = append(opts, WithSignatures(c.NotSupportedMessages...))
	}
	if c.IdentifierQuoteFix {
		opts = append(opts, WithIdentifierQuoteFix())
	}
	if c.Trace {
		opts = append(opts, WithHooks(NewTraceHooks(logrus.StandardLogger())))
	}
	return opts
}

func loadDefaultSignatures() Signatures {
	msgs := stringList(newViper(), keyNotSupported)
	if len(msgs) == 0 {
		return Signatures{DefaultNotSupportedMessage}
	}
	return Signatures(msgs)
}

// stringList reads a list key. Environment values are ';'-separated since
// the messages themselves contain spaces.
func stringList(v *viper.Viper, key string) []string {
	raw, ok := v.Get(key).(string)
	if !ok {
		return v.GetStringSlice(key)
	}
	var out []string
	for _, s := range strings.Split(raw, ";") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
