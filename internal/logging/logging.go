// Package logging builds the leveled loggers used by the treemap tools.
package logging

import (
	"encoding/json"
	"strings"

	"github.com/astaxie/beego/logs"
	"github.com/pkg/errors"
)

// DefaultLevel is the level used when none is configured.
const DefaultLevel = "error"

type logConfig struct {
	Filename string `json:"filename,omitempty"`
	Level    int    `json:"level"`
	Color    bool   `json:"color"`
}

var levels = map[string]int{
	"emergency": logs.LevelEmergency,
	"alert":     logs.LevelAlert,
	"critical":  logs.LevelCritical,
	"error":     logs.LevelError,
	"warn":      logs.LevelWarn,
	"notice":    logs.LevelNotice,
	"info":      logs.LevelInfo,
	"debug":     logs.LevelDebug,
}

// ParseLevel returns the beego level for a level name such as "warn".
// Names are case-insensitive.
func ParseLevel(name string) (int, bool) {
	l, ok := levels[strings.ToLower(name)]
	return l, ok
}

// New returns a logger at the named level.
// It appends to file if file is non-empty and writes to the console otherwise.
// color enables ANSI colors on the console; files are never colored.
func New(level, file string, color bool) (*logs.BeeLogger, error) {
	if level == "" {
		level = DefaultLevel
	}
	l, ok := ParseLevel(level)
	if !ok {
		return nil, errors.Errorf("unknown log level %q", level)
	}
	adapter, config, err := adapterConfig(file, l, color)
	if err != nil {
		return nil, err
	}
	log := logs.NewLogger()
	if err := log.SetLogger(adapter, config); err != nil {
		return nil, errors.Wrapf(err, "starting %s logger", adapter)
	}
	log.SetLevel(l)
	return log, nil
}

// adapterConfig picks the beego adapter and its JSON config.
func adapterConfig(file string, level int, color bool) (adapter, config string, err error) {
	c := logConfig{Level: level}
	if file != "" {
		adapter, c.Filename = logs.AdapterFile, file
	} else {
		adapter, c.Color = logs.AdapterConsole, color
	}
	b, err := json.Marshal(c)
	if err != nil {
		return "", "", errors.Wrap(err, "encoding log config")
	}
	return adapter, string(b), nil
}

// Discard returns a logger that drops everything below emergency.
func Discard() *logs.BeeLogger {
	log := logs.NewLogger()
	log.SetLevel(logs.LevelEmergency)
	return log
}
