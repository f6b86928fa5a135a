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

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	dbFileName     string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dbFilePath     string
	logFilePath    string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = &Paths{
			configDir:      "kicks",
			configFileName: "config.yml",
			dbFileName:     "kicks.db",
			logFileName:    "kicks.log",
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

func ConfigFilePath() string {
	return Must().configFilePath
}

func DBFilePath() string {
	return Must().dbFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	kicksEnv := strings.TrimSpace(os.Getenv("KICKS_ENV"))
	if kicksEnv != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", kicksEnv)
		p.dbFileName = fmt.Sprintf("kicks_%s.db", kicksEnv)
		p.logFileName = fmt.Sprintf("kicks_%s.log", kicksEnv)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	// xdg.DataFile creates the parent directories of the returned path
	dbPath, err := xdg.DataFile(filepath.Join(p.configDir, p.dbFileName))
	if err != nil {
		return err
	}

	p.dbFilePath = dbPath

	p.logFilePath = filepath.Join(filepath.Dir(dbPath), "log", p.logFileName)

	return nil
}
