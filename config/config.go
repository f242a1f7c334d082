package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Algorithm names accepted by --algorithms and scheduler.algorithms.
const (
	// Priority selects non-preemptive Priority scheduling.
	Priority = "priority"
	// SJF selects non-preemptive Shortest-Job-First.
	SJF = "sjf"
	// FCFS selects First-Come-First-Served.
	FCFS = "fcfs"
	// RoundRobin selects Round Robin with the configured time quantum.
	RoundRobin = "rr"

	quantumKey    = "scheduler.round_robin.time_quantum"
	algorithmsKey = "scheduler.algorithms"
)

// ErrUnknownAlgorithm is returned when the algorithm list names something unsupported.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// DefaultAlgorithms is the run order used when none is configured.
var DefaultAlgorithms = []string{Priority, SJF, RoundRobin}

// SchedulerConfig is the merged flag and config file settings.
type SchedulerConfig struct {
	// TimeQuantum is the Round Robin quantum. Zero means it was not configured.
	TimeQuantum int64
	Algorithms  []string
	// Args holds the positional command line arguments.
	Args []string
}

// Load parses args (without the program name) and merges them over an
// optional YAML config file. Flags win over the file.
func Load(args []string) (*SchedulerConfig, error) {
	flags := pflag.NewFlagSet("schedsim", pflag.ContinueOnError)
	configFile := flags.StringP("config", "c", "", "path of a YAML config file")
	flags.Int64P("quantum", "q", 0, "time quantum for Round Robin scheduling")
	flags.StringSliceP("algorithms", "a", DefaultAlgorithms, "algorithms to run, in order: priority, sjf, fcfs, rr")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault(quantumKey, 0)
	v.SetDefault(algorithmsKey, DefaultAlgorithms)
	if err := v.BindPFlag(quantumKey, flags.Lookup("quantum")); err != nil {
		return nil, err
	}
	if err := v.BindPFlag(algorithmsKey, flags.Lookup("algorithms")); err != nil {
		return nil, err
	}

	if err := readConfigFile(v, *configFile); err != nil {
		return nil, err
	}

	config := &SchedulerConfig{
		TimeQuantum: v.GetInt64(quantumKey),
		Algorithms:  normalize(v.GetStringSlice(algorithmsKey)),
		Args:        flags.Args(),
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("%w: reading config file %s", err, path)
		}
		return nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("%w: reading config file", err)
	}
	return nil
}

func normalize(algorithms []string) []string {
	out := make([]string, 0, len(algorithms))
	for _, a := range algorithms {
		a = strings.ToLower(strings.TrimSpace(a))
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}

// Validate checks that every configured algorithm is known.
func (c *SchedulerConfig) Validate() error {
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("%w: no algorithms configured", ErrUnknownAlgorithm)
	}
	for _, a := range c.Algorithms {
		switch a {
		case Priority, SJF, FCFS, RoundRobin:
		default:
			return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, a)
		}
	}
	return nil
}

// NeedsQuantum reports whether Round Robin is configured without a quantum.
func (c *SchedulerConfig) NeedsQuantum() bool {
	if c.TimeQuantum != 0 {
		return false
	}
	for _, a := range c.Algorithms {
		if a == RoundRobin {
			return true
		}
	}
	return false
}
