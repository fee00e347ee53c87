package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"todolist/internal/todo"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultAppDir         = "todo"
	EnvConfigPath         = "TODO_CONFIG"
)

var (
	ErrInvalidTheme    = errors.New("config: invalid theme")
	ErrInvalidLogLevel = errors.New("config: invalid log level")
	ErrEmptyKey        = errors.New("config: key binding is empty")
)

type Keymap struct {
	Quit       string `toml:"quit"`
	Add        string `toml:"add"`
	Up         string `toml:"up"`
	Down       string `toml:"down"`
	Toggle     string `toml:"toggle"`
	Delete     string `toml:"delete"`
	Edit       string `toml:"edit"`
	Confirm    string `toml:"confirm"`
	Cancel     string `toml:"cancel"`
	StatusNext string `toml:"status_next"`
	StatusPrev string `toml:"status_prev"`
	FilterNext string `toml:"filter_next"`
	FilterPrev string `toml:"filter_prev"`
	Yank       string `toml:"yank"`
	Help       string `toml:"help"`
}

type Config struct {
	DefaultFilter string `toml:"default_filter"`
	IDPolicy      string `toml:"id_policy"`
	ConfirmDelete bool   `toml:"confirm_delete"`
	Theme         string `toml:"theme"`
	LogPath       string `toml:"log_path"`
	LogLevel      string `toml:"log_level"`
	Keys          Keymap `toml:"keys"`
}

// ResolveConfigPath picks $TODO_CONFIG, then the user config dir.
func ResolveConfigPath() string {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, DefaultAppDir, DefaultConfigFileName)
}

// LoadOrCreate reads path, writing the defaults there on first launch.
// Fields missing from the file keep their default values.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := todo.ParseFilter(c.DefaultFilter); err != nil {
		return err
	}
	if _, err := todo.ParseIDPolicy(c.IDPolicy); err != nil {
		return err
	}
	if !isKnownTheme(c.Theme) {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, c.Theme)
	}
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	for name, v := range c.Keys.bindings() {
		if v == "" {
			return fmt.Errorf("%w: %s", ErrEmptyKey, name)
		}
	}
	return nil
}

// Filter returns the parsed default filter. Call after Validate.
func (c Config) Filter() todo.Filter {
	f, err := todo.ParseFilter(c.DefaultFilter)
	if err != nil {
		return todo.FilterNotStarted
	}
	return f
}

func (c Config) Policy() todo.IDPolicy {
	p, err := todo.ParseIDPolicy(c.IDPolicy)
	if err != nil {
		return todo.IDPolicyCounter
	}
	return p
}

func (k Keymap) bindings() map[string]string {
	return map[string]string{
		"quit":        k.Quit,
		"add":         k.Add,
		"up":          k.Up,
		"down":        k.Down,
		"toggle":      k.Toggle,
		"delete":      k.Delete,
		"edit":        k.Edit,
		"confirm":     k.Confirm,
		"cancel":      k.Cancel,
		"status_next": k.StatusNext,
		"status_prev": k.StatusPrev,
		"filter_next": k.FilterNext,
		"filter_prev": k.FilterPrev,
		"yank":        k.Yank,
		"help":        k.Help,
	}
}

func isKnownTheme(name string) bool {
	switch name {
	case "nord", "plain":
		return true
	default:
		return false
	}
}

func write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func Default() Config {
	return Config{
		DefaultFilter: todo.FilterNotStarted.String(),
		IDPolicy:      string(todo.IDPolicyCounter),
		ConfirmDelete: true,
		Theme:         "nord",
		LogPath:       "",
		LogLevel:      "info",
		Keys: Keymap{
			Quit:       "q",
			Add:        "a",
			Up:         "k",
			Down:       "j",
			Toggle:     " ",
			Delete:     "d",
			Edit:       "e",
			Confirm:    "enter",
			Cancel:     "esc",
			StatusNext: "s",
			StatusPrev: "S",
			FilterNext: "f",
			FilterPrev: "F",
			Yank:       "y",
			Help:       "?",
		},
	}
}
