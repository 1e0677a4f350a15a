package history

import (
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/stylize/core/locate/resources"
)

// DefaultLimit is the default capacity of a store.
const DefaultLimit = 50

// Config describes where a store persists and how many entries it keeps.
// An empty Path keeps the history in memory only.
type Config struct {
	Path  string
	Limit int
}

// ConfigFrom reads a store configuration from conf.
//
// Keys are `history-file` (see resources.HistoryFilePath) and
// `history-limit`. If no history file location can be determined, the
// error is returned together with an in-memory configuration.
func ConfigFrom(conf schuko.Configuration) (Config, error) {
	cfg := Config{Limit: DefaultLimit}
	if conf != nil && conf.IsSet("history-limit") {
		if l := conf.GetInt("history-limit"); l > 0 {
			cfg.Limit = l
		} else {
			tracer().Errorf("ignoring invalid history-limit %d", l)
		}
	}
	path, err := resources.HistoryFilePath(conf)
	if err != nil {
		tracer().Errorf("history will not be persisted: %v", err)
		return cfg, err
	}
	cfg.Path = path
	return cfg, nil
}

func (cfg Config) limit() int {
	if cfg.Limit <= 0 {
		return DefaultLimit
	}
	return cfg.Limit
}
