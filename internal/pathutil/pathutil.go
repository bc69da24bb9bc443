// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const envSuffix = "POMODORO_ENV"

// Paths holds all application path configurations.
type Paths struct {
	appDir         string
	configFileName string
	dbFileName     string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dbFilePath     string
	logFilePath    string
}

var (
	paths   *Paths
	once    sync.Once
	initErr error
)

// Initialize resolves every path once. It must be called at program startup
// before any of the accessors below.
func Initialize() error {
	once.Do(func() {
		paths = &Paths{
			appDir:         "pomodoro",
			configFileName: "config.yml",
			dbFileName:     "pomodoro.db",
			logFileName:    "pomodoro.log",
		}

		paths.applyEnvironmentOverrides()
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func Dir() string {
	return Must().appDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func DBFilePath() string {
	return Must().dbFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

// applyEnvironmentOverrides suffixes every file name with the value of
// POMODORO_ENV so that a development instance never touches real data.
func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envSuffix))
	if env == "" {
		return
	}

	p.configFileName = fmt.Sprintf("config_%s.yml", env)
	p.dbFileName = fmt.Sprintf("pomodoro_%s.db", env)
	p.logFileName = fmt.Sprintf("pomodoro_%s.log", env)
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(
		filepath.Join(p.appDir, p.configFileName),
	)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	p.dbFilePath, err = xdg.DataFile(filepath.Join(p.appDir, p.dbFileName))
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}

	p.logFilePath, err = xdg.DataFile(
		filepath.Join(p.appDir, "log", p.logFileName),
	)
	if err != nil {
		return fmt.Errorf("resolve log path: %w", err)
	}

	return nil
}
