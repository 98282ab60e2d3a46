package utils

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	port string

	location    *time.Location
	locale      string
	startingDay int

	timeInterval int
	startTime    string
	endTime      string

	tableClasses   string
	hiddenWeekdays map[time.Weekday]bool

	apiKey          string
	staticAssetsDir string

	prerenderInterval        time.Duration
	metricCollectionInterval time.Duration
}

func NewConfig() *Config {
	return &Config{
		port: func() string {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			slog.Debug("env", "PORT", port)
			return port
		}(),

		location: func() *time.Location {
			timezoneStr := os.Getenv("TIMEZONE")
			var loc *time.Location
			var err error
			switch timezoneStr {
			case "":
				slog.Warn("TIMEZONE is not set, using local timezone", "timezone", time.Local)
				loc = time.Local
			case "UTC":
				loc = time.UTC
			default:
				loc, err = time.LoadLocation(timezoneStr)
				if err != nil {
					slog.Error("invalid timezone", "timezone", timezoneStr, "error", err)
					os.Exit(1)
				}
			}
			slog.Debug("env", "TIMEZONE", timezoneStr)
			return loc
		}(),
		locale: func() string {
			locale := os.Getenv("LOCALE")
			if locale == "" {
				locale = "en"
			}
			slog.Debug("env", "LOCALE", locale)
			return locale
		}(),
		startingDay: func() int {
			startingDayStr := os.Getenv("STARTING_DAY")
			if startingDayStr == "" {
				return 1 // Monday
			}
			startingDay, err := strconv.Atoi(startingDayStr)
			if err != nil || (startingDay != 0 && startingDay != 1) {
				slog.Error("STARTING_DAY must be 0 (Sunday) or 1 (Monday)", "value", startingDayStr)
				os.Exit(1)
			}
			slog.Debug("env", "STARTING_DAY", startingDay)
			return startingDay
		}(),

		timeInterval: func() int {
			timeIntervalStr := os.Getenv("TIME_INTERVAL")
			if timeIntervalStr == "" {
				return 30
			}
			timeInterval, err := strconv.Atoi(timeIntervalStr)
			if err != nil || timeInterval <= 0 {
				slog.Error("TIME_INTERVAL must be a positive number of minutes", "value", timeIntervalStr)
				os.Exit(1)
			}
			slog.Debug("env", "TIME_INTERVAL", timeInterval)
			return timeInterval
		}(),
		startTime: func() string {
			startTime := os.Getenv("START_TIME")
			if startTime == "" {
				return "08:00"
			}
			if _, err := time.Parse("15:04", startTime); err != nil {
				slog.Error("START_TIME must be a HH:MM clock value", "value", startTime, "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "START_TIME", startTime)
			return startTime
		}(),
		endTime: func() string {
			endTime := os.Getenv("END_TIME")
			if endTime == "" {
				return "20:00"
			}
			if _, err := time.Parse("15:04", endTime); err != nil {
				slog.Error("END_TIME must be a HH:MM clock value", "value", endTime, "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "END_TIME", endTime)
			return endTime
		}(),

		tableClasses: func() string {
			tableClasses := os.Getenv("TABLE_CLASSES")
			slog.Debug("env", "TABLE_CLASSES", tableClasses)
			return tableClasses
		}(),
		hiddenWeekdays: func() map[time.Weekday]bool {
			hidden := make(map[time.Weekday]bool)
			hiddenDaysStr := os.Getenv("HIDDEN_DAYS")
			if hiddenDaysStr == "" {
				return hidden
			}
			names := map[string]time.Weekday{
				"sunday":    time.Sunday,
				"monday":    time.Monday,
				"tuesday":   time.Tuesday,
				"wednesday": time.Wednesday,
				"thursday":  time.Thursday,
				"friday":    time.Friday,
				"saturday":  time.Saturday,
			}
			for _, name := range strings.Split(hiddenDaysStr, ",") {
				weekday, ok := names[strings.ToLower(strings.TrimSpace(name))]
				if !ok {
					slog.Error("HIDDEN_DAYS contains an unknown weekday name", "value", name)
					os.Exit(1)
				}
				hidden[weekday] = true
			}
			slog.Debug("env", "HIDDEN_DAYS", hiddenDaysStr)
			return hidden
		}(),

		apiKey: func() string {
			apiKey := os.Getenv("API_KEY")
			if apiKey == "" {
				slog.Warn("API_KEY is not set, mutating routes are unprotected")
				return ""
			}
			slog.Debug("env", "API_KEY", apiKey[0:3]+"...")
			return apiKey
		}(),
		staticAssetsDir: func() string {
			staticAssetsDir := os.Getenv("STATIC_ASSETS_DIR")
			if staticAssetsDir == "" {
				return ""
			}
			info, err := os.Stat(staticAssetsDir)
			if err != nil {
				slog.Error("can't get info of STATIC_ASSETS_DIR", "error", err)
				os.Exit(1)
			}
			if !info.IsDir() {
				slog.Error("STATIC_ASSETS_DIR is not a directory", "dir", staticAssetsDir)
				os.Exit(1)
			}
			slog.Debug("env", "STATIC_ASSETS_DIR", staticAssetsDir)
			return filepath.Clean(staticAssetsDir)
		}(),

		prerenderInterval: func() time.Duration {
			prerenderIntervalStr := os.Getenv("PRERENDER_INTERVAL")
			if prerenderIntervalStr == "" {
				prerenderIntervalStr = "5m"
			}
			duration, err := time.ParseDuration(prerenderIntervalStr)
			if err != nil || duration <= 0 {
				slog.Error("invalid PRERENDER_INTERVAL", "value", prerenderIntervalStr, "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "PRERENDER_INTERVAL", duration)
			return duration
		}(),
		metricCollectionInterval: func() time.Duration {
			metricCollectionIntervalStr := os.Getenv("METRIC_COLLECTION_INTERVAL")
			if metricCollectionIntervalStr == "" {
				metricCollectionIntervalStr = "1m"
			}
			duration, err := time.ParseDuration(metricCollectionIntervalStr)
			if err != nil || duration <= 0 {
				slog.Error("invalid METRIC_COLLECTION_INTERVAL", "value", metricCollectionIntervalStr, "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "METRIC_COLLECTION_INTERVAL", duration)
			return duration
		}(),
	}
}

// Get PORT env, default to 8080
func (c *Config) GetPort() string {
	return c.port
}

// Get TIMEZONE env
func (c *Config) GetLocation() *time.Location {
	return c.location
}

// Get LOCALE env, default to en
func (c *Config) GetLocale() string {
	return c.locale
}

// Get STARTING_DAY env, 0 for Sunday, 1 for Monday
func (c *Config) GetStartingDay() int {
	return c.startingDay
}

// Get TIME_INTERVAL env, minutes per slot row
func (c *Config) GetTimeInterval() int {
	return c.timeInterval
}

// Get START_TIME env
func (c *Config) GetStartTime() string {
	return c.startTime
}

// Get END_TIME env
func (c *Config) GetEndTime() string {
	return c.endTime
}

// Get TABLE_CLASSES env
func (c *Config) GetTableClasses() string {
	return c.tableClasses
}

// Get HIDDEN_DAYS env as a weekday set
func (c *Config) GetHiddenWeekdays() map[time.Weekday]bool {
	return c.hiddenWeekdays
}

// Get API_KEY env; blank means the mutating routes are open
func (c *Config) GetAPIKey() string {
	return c.apiKey
}

// Get STATIC_ASSETS_DIR env; blank disables the assets route
func (c *Config) GetStaticAssetsDir() string {
	return c.staticAssetsDir
}

// Get PRERENDER_INTERVAL env
func (c *Config) GetPrerenderInterval() time.Duration {
	return c.prerenderInterval
}

// Get METRIC_COLLECTION_INTERVAL env
func (c *Config) GetMetricCollectionInterval() time.Duration {
	return c.metricCollectionInterval
}
