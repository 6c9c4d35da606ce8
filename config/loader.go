package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix for every setting.
const envPrefix = "IUPAC"

// newViper builds a pre-configured Viper instance: YAML file type,
// IUPAC_ env prefix, automatic env binding, and a key replacer mapping
// "." to "_" so "ring_analysis.max_ring_size" resolves to
// "IUPAC_RING_ANALYSIS_MAX_RING_SIZE".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindEnvs(v, Options{})
	return v
}

// bindEnvs recursively binds each field of the given struct to an
// environment variable using its mapstructure tag.
func bindEnvs(v *viper.Viper, iface interface{}, parts ...string) {
	ift := reflect.TypeOf(iface)
	if ift.Kind() == reflect.Ptr {
		ift = ift.Elem()
	}
	for i := 0; i < ift.NumField(); i++ {
		field := ift.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" || tag == "," {
			continue
		}
		newParts := append(parts, tag)
		if field.Type.Kind() == reflect.Struct {
			bindEnvs(v, reflect.New(field.Type).Elem().Interface(), newParts...)
		} else {
			key := strings.Join(newParts, ".")
			_ = v.BindEnv(key)
		}
	}
}

// Load reads the YAML file at configPath, merges any IUPAC_* env
// overrides, applies defaults for unset fields, and validates the
// result.
func Load(configPath string) (*Options, error) {
	v := newViper()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}
	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds Options entirely from IUPAC_* environment
// variables, with no config file required.
func LoadFromEnv() (*Options, error) {
	v := newViper()
	return unmarshalAndFinalize(v)
}

func unmarshalAndFinalize(v *viper.Viper) (*Options, error) {
	o := &Options{}
	if err := v.Unmarshal(o); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}
	ApplyDefaults(o)
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return o, nil
}

// MustLoad is a convenience wrapper around Load that panics on any
// error. Intended for use in main() where a config-load failure is
// always fatal.
func MustLoad(configPath string) *Options {
	o, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return o
}

// Watch monitors configPath for changes and invokes onChange with the
// newly parsed Options whenever the file is modified on disk. It is
// intended for hot-reloading non-critical settings (log level,
// ring-analysis bounds); callers decide which changes are safe to
// apply at runtime via Apply.
//
// Watch is non-blocking; it starts a background goroutine managed by
// viper. If the changed file fails to parse or validate, onChange is
// not called.
func Watch(configPath string, onChange func(*Options)) {
	v := newViper()
	v.SetConfigFile(configPath)
	_ = v.ReadInConfig()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		o, err := unmarshalAndFinalize(v)
		if err != nil {
			return
		}
		onChange(o)
	})
}

// Apply pushes the ring-analysis knobs onto the process-wide graph
// and ringname package variables. This is the one place global state
// is touched by config, and it is meant to run once, at process
// start (or from a Watch callback for the subset of knobs that are
// safe to change live); the naming pipeline itself never reads
// Options directly mid-run.
func Apply(o *Options) {
	graphApplyRingAnalysis(o.RingAnalysis)
}
