package config

import (
	"bytes"
	"encoding/base64"
	"errors"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Viper implements Config on github.com/spf13/viper.
type Viper struct {
	v *viper.Viper
}

// NewViper loads the file at pathFile and watches it for changes, reloading
// in place on edit. The format is inferred from the file extension.
func NewViper(pathFile string) (*Viper, error) {
	name := path.Base(pathFile)
	name = name[:len(name)-len(path.Ext(name))]

	v := viper.New()
	v.AddConfigPath(path.Dir(pathFile))
	v.SetConfigName(name)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	v.OnConfigChange(func(_ fsnotify.Event) {
		if err := v.ReadInConfig(); err != nil {
			slog.Error("config reload failed", "path", pathFile, "err", err)
			return
		}
		slog.Info("config reloaded", "path", pathFile)
	})
	v.WatchConfig()

	return &Viper{v: v}, nil
}

// NewViperFromBytes parses configuration held in memory. configType names a
// viper-supported format such as "yaml" or "json". Used by tests.
func NewViperFromBytes(configType string, data []byte) (*Viper, error) {
	if strings.TrimSpace(configType) == "" {
		return nil, errors.New("config type is required")
	}

	v := viper.New()
	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return &Viper{v: v}, nil
}

func (c *Viper) GetBool(key string) bool     { return c.v.GetBool(key) }
func (c *Viper) GetString(key string) string { return c.v.GetString(key) }

func (c *Viper) GetInt(key string) int       { return c.v.GetInt(key) }
func (c *Viper) GetInt32(key string) int32   { return c.v.GetInt32(key) }
func (c *Viper) GetInt64(key string) int64   { return c.v.GetInt64(key) }
func (c *Viper) GetUint(key string) uint     { return c.v.GetUint(key) }
func (c *Viper) GetUint16(key string) uint16 { return uint16(c.v.GetUint(key)) }
func (c *Viper) GetUint32(key string) uint32 { return c.v.GetUint32(key) }
func (c *Viper) GetUint64(key string) uint64 { return c.v.GetUint64(key) }

func (c *Viper) GetFloat32(key string) float32 { return float32(c.v.GetFloat64(key)) }
func (c *Viper) GetFloat64(key string) float64 { return c.v.GetFloat64(key) }

func (c *Viper) GetSecond(key string) time.Duration {
	return time.Duration(c.v.GetInt64(key)) * time.Second
}

func (c *Viper) GetMinute(key string) time.Duration {
	return time.Duration(c.v.GetInt64(key)) * time.Minute
}

func (c *Viper) GetHour(key string) time.Duration {
	return time.Duration(c.v.GetInt64(key)) * time.Hour
}

func (c *Viper) GetDay(key string) time.Duration {
	return time.Duration(c.v.GetInt64(key)) * 24 * time.Hour
}

func (c *Viper) GetBinary(key string) []byte {
	data, err := base64.StdEncoding.DecodeString(c.v.GetString(key))
	if err != nil {
		return nil
	}
	return data
}

func (c *Viper) GetArray(key string) []string {
	return strings.Split(c.v.GetString(key), ",")
}

func (c *Viper) GetMap(key string) map[string]string {
	m := make(map[string]string)
	for _, pair := range strings.Split(c.v.GetString(key), ",") {
		if k, v, ok := strings.Cut(pair, ":"); ok {
			m[k] = v
		}
	}
	return m
}

// Close satisfies io.Closer; viper holds no closable resources.
func (c *Viper) Close() error { return nil }
