package resources

import (
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/stylize/core"
)

// DefaultAppKey is used as the application folder name if the configuration
// does not set `app-key`.
const DefaultAppKey = "stylize"

// HistoryFileName is the file name of the persisted history within the
// application's configuration folder.
const HistoryFileName = "history.txt"

// AppKey returns the application key from conf, or DefaultAppKey.
func AppKey(conf schuko.Configuration) string {
	if conf == nil {
		return DefaultAppKey
	}
	if key := conf.GetString("app-key"); key != "" {
		return key
	}
	return DefaultAppKey
}

// ConfigDirPath checks and possibly creates a folder in the user's config
// directory. The base directory is taken from `os.UserConfigDir()`, plus
// an application specific key, taken as `app-key` from conf.
// Clients may specify a sequence of folder names, which will be appended to
// the base path. Non-existing sub-folders will be created as necessary
// (with permissions 755).
func ConfigDirPath(conf schuko.Configuration, subfolders ...string) (string, error) {
	uconfdir, err := os.UserConfigDir()
	if err != nil {
		return "", core.WrapError(err, core.EMISSING, "user configuration directory not set")
	}
	dir := filepath.Join(append([]string{uconfdir, AppKey(conf)}, subfolders...)...)
	tracer().Debugf("config dir is %s", dir)
	if _, err = os.Stat(dir); os.IsNotExist(err) {
		if err = os.MkdirAll(dir, 0755); err != nil {
			return "", core.WrapError(err, core.EIO,
				"user configuration path cannot be created: %s", dir)
		}
	}
	return dir, nil
}

// HistoryFilePath returns the location of the history file.
// If conf sets `history-file`, this path is used as is. Otherwise the file
// lives in the application's configuration folder (see ConfigDirPath).
func HistoryFilePath(conf schuko.Configuration) (string, error) {
	if conf != nil {
		if p := conf.GetString("history-file"); p != "" {
			tracer().Debugf("config[history-file] = %s", p)
			return p, nil
		}
	}
	dir, err := ConfigDirPath(conf)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, HistoryFileName), nil
}
