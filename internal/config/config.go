package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Host    HostConfig    `yaml:"host"`
	Browser BrowserConfig `yaml:"browser"`
	Lookup  LookupConfig  `yaml:"lookup"`
	Server  ServerConfig  `yaml:"server"`
	Journal JournalConfig `yaml:"journal"`
	Log     LogConfig     `yaml:"log"`
}

// HostConfig describes the flashcard page being observed and the selectors
// used to read its state.
type HostConfig struct {
	// Mode selects how the page is read: "browser" drives a live tab over
	// CDP, "static" fetches server-rendered HTML.
	Mode              string        `yaml:"mode"               env:"HOST_MODE"               env-default:"browser"`
	URL               string        `yaml:"url"                env:"HOST_URL"                env-default:"https://gre.magoosh.com/flashcards/vocabulary"`
	ContainerSelector string        `yaml:"container_selector" env:"HOST_CONTAINER_SELECTOR" env-default:".flashcard-container"`
	WordSelector      string        `yaml:"word_selector"      env:"HOST_WORD_SELECTOR"      env-default:".flashcard-word"`
	CardSelector      string        `yaml:"card_selector"      env:"HOST_CARD_SELECTOR"      env-default:".flashcard"`
	RevealedClass     string        `yaml:"revealed_class"     env:"HOST_REVEALED_CLASS"     env-default:"flipped"`
	PollInterval      time.Duration `yaml:"poll_interval"      env:"HOST_POLL_INTERVAL"      env-default:"500ms"`
}

// BrowserConfig holds Chrome DevTools Protocol settings.
// When CDPURL is set, an already running Chrome is attached to instead of
// launching a new one.
type BrowserConfig struct {
	CDPURL       string        `yaml:"cdp_url"       env:"BROWSER_CDP_URL"`
	Headless     bool          `yaml:"headless"      env:"BROWSER_HEADLESS"      env-default:"false"`
	ExecPath     string        `yaml:"exec_path"     env:"BROWSER_EXEC_PATH"`
	UserDataDir  string        `yaml:"user_data_dir" env:"BROWSER_USER_DATA_DIR"`
	StartTimeout time.Duration `yaml:"start_timeout" env:"BROWSER_START_TIMEOUT" env-default:"15s"`
}

// LookupConfig holds settings for the external lookup sources.
type LookupConfig struct {
	GoogleBaseURL   string        `yaml:"google_base_url"   env:"LOOKUP_GOOGLE_BASE_URL"   env-default:"https://www.google.com"`
	Language        string        `yaml:"language"          env:"LOOKUP_LANGUAGE"          env-default:"bn"`
	BlockSelector   string        `yaml:"block_selector"    env:"LOOKUP_BLOCK_SELECTOR"    env-default:"div.VNOU7b"`
	POSSelector     string        `yaml:"pos_selector"      env:"LOOKUP_POS_SELECTOR"      env-default:".XGaHQb.YrbPuc"`
	FreeDictBaseURL string        `yaml:"freedict_base_url" env:"LOOKUP_FREEDICT_BASE_URL" env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	Timeout         time.Duration `yaml:"timeout"           env:"LOOKUP_TIMEOUT"           env-default:"10s"`
	UserAgent       string        `yaml:"user_agent"        env:"LOOKUP_USER_AGENT"        env-default:"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"`
}

// ServerConfig holds settings of the local status HTTP server.
type ServerConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"SERVER_ENABLED"          env-default:"true"`
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8090"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	AllowedOrigins  []string      `yaml:"allowed_origins"  env:"SERVER_ALLOWED_ORIGINS"  env-separator:","`
}

// JournalConfig holds PostgreSQL settings for the lookup journal.
// An empty DSN disables the journal.
type JournalConfig struct {
	DSN             string        `yaml:"dsn"                env:"JOURNAL_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"JOURNAL_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"JOURNAL_MIN_CONNS"          env-default:"0"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"JOURNAL_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"JOURNAL_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Host modes.
const (
	HostModeBrowser = "browser"
	HostModeStatic  = "static"
)

// Enabled reports whether a journal database is configured.
func (c JournalConfig) Enabled() bool {
	return c.DSN != ""
}

// Addr returns the listen address of the status server.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
