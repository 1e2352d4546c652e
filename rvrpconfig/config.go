package rvrpconfig

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrLoadTuning wraps every failure LoadTuning can produce: a missing
// or unreadable file, or a file that doesn't unmarshal into Tuning.
var ErrLoadTuning = errors.New("rvrpconfig: failed to load tuning")

// Tuning holds the knobs rvrpengine.Engine.Improve takes as plain
// arguments; it exists purely so driver code can read them from a
// file instead of wiring flags by hand.
type Tuning struct {
	WorkTimeSeconds int64 `mapstructure:"work_time_seconds"`
	MaxFails        int   `mapstructure:"max_fails"`
	Phases          int   `mapstructure:"phases"`
	PostThreeOpt    bool  `mapstructure:"post_three_opt"`
	PostCross       bool  `mapstructure:"post_cross"`
	Seed            int64 `mapstructure:"seed"`
}

// WorkTime converts WorkTimeSeconds to a time.Duration.
func (t Tuning) WorkTime() time.Duration {
	return time.Duration(t.WorkTimeSeconds) * time.Second
}

// LoadTuning reads a YAML or JSON file at path into a Tuning. The
// config format is inferred from the file extension.
func LoadTuning(path string) (Tuning, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType(strings.TrimPrefix(filepath.Ext(path), "."))
	vp.AddConfigPath(filepath.Dir(path))

	if err := vp.ReadInConfig(); err != nil {
		return Tuning{}, fmt.Errorf("%w: reading %q: %v", ErrLoadTuning, path, err)
	}

	var tuning Tuning
	if err := vp.Unmarshal(&tuning); err != nil {
		return Tuning{}, fmt.Errorf("%w: unmarshalling %q: %v", ErrLoadTuning, path, err)
	}
	return tuning, nil
}
