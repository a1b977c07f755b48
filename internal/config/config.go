package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Canvas
	CanvasBaseURL string
	CanvasAPIKey  string

	// Notion
	NotionBaseURL      string
	NotionAPIKey       string
	NotionDataSourceID string

	// Course name -> Notion "Class" label
	CourseMapFile string

	// Logging
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int

	// Attempt budget for idempotent reads; creates always get one attempt.
	HTTPMaxAttempts int

	// Run report
	ReportFile string
	ReportSFTP bool

	// SFTP
	SFTPHost                  string
	SFTPPort                  int
	SFTPUser                  string
	SFTPPass                  string
	SFTPDir                   string
	SFTPInsecureIgnoreHostKey bool
	SFTPKnownHostsFile        string
}

// EnvFilePath is the .env file read before Load, from SYNC_ENV_FILE.
func EnvFilePath() string {
	return getenv("SYNC_ENV_FILE", ".env")
}

// LoadEnvFile loads variables from a .env file into the process environment.
// Variables already set win. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

func Load() Config {
	return Config{
		// Canvas
		CanvasBaseURL: strings.TrimRight(os.Getenv("CANVAS_BASE_URL"), "/"),
		CanvasAPIKey:  os.Getenv("CANVAS_API_KEY"),

		// Notion
		NotionBaseURL:      strings.TrimRight(getenv("NOTION_BASE_URL", "https://api.notion.com"), "/"),
		NotionAPIKey:       os.Getenv("NOTION_API_KEY"),
		NotionDataSourceID: os.Getenv("NOTION_DATA_SOURCE_ID"),

		CourseMapFile: getenv("COURSE_MAP_FILE", "course_map.json"),

		// Logging
		LogFile:       getenv("SYNC_LOG_FILE", "canvas_notion_sync.log"),
		LogMaxSizeMB:  getenvInt("SYNC_LOG_MAX_SIZE_MB", 50),
		LogMaxBackups: getenvInt("SYNC_LOG_MAX_BACKUPS", 5),

		HTTPMaxAttempts: getenvInt("SYNC_HTTP_MAX_ATTEMPTS", 1),

		// Report
		ReportFile: os.Getenv("SYNC_REPORT_FILE"),
		ReportSFTP: getenvBool("SYNC_REPORT_SFTP", false),

		// SFTP
		SFTPHost:                  os.Getenv("SFTP_HOST"),
		SFTPPort:                  getenvInt("SFTP_PORT", 22),
		SFTPUser:                  os.Getenv("SFTP_USER"),
		SFTPPass:                  os.Getenv("SFTP_PASS"),
		SFTPDir:                   getenv("SFTP_DIR", "/inbound"),
		SFTPInsecureIgnoreHostKey: getenvBool("SFTP_INSECURE_IGNORE_HOSTKEY", true),
		SFTPKnownHostsFile:        os.Getenv("SFTP_KNOWN_HOSTS"),
	}
}

// Validate reports every missing required setting in one error.
func (c Config) Validate() error {
	var missing []string
	if c.CanvasBaseURL == "" {
		missing = append(missing, "CANVAS_BASE_URL")
	}
	if c.CanvasAPIKey == "" {
		missing = append(missing, "CANVAS_API_KEY")
	}
	if c.NotionAPIKey == "" {
		missing = append(missing, "NOTION_API_KEY")
	}
	if c.NotionDataSourceID == "" {
		missing = append(missing, "NOTION_DATA_SOURCE_ID")
	}
	if c.ReportSFTP && c.ReportFile == "" {
		missing = append(missing, "SYNC_REPORT_FILE (required by SYNC_REPORT_SFTP)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("config: missing env: %s", strings.Join(missing, " / "))
	}
	return nil
}

// LoadNameMapping reads a JSON object of Canvas course name -> Notion class label.
func LoadNameMapping(path string) (map[string]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read course map: %w", err)
	}
	return ParseNameMapping(b)
}

func ParseNameMapping(b []byte) (map[string]string, error) {
	var m map[string]string
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("config: parse course map: %w", err)
	}
	for name, label := range m {
		if strings.TrimSpace(name) == "" {
			return nil, errors.New("config: course map has an empty course name")
		}
		if strings.TrimSpace(label) == "" {
			return nil, fmt.Errorf("config: course map entry %q has an empty label", name)
		}
	}
	if m == nil {
		m = map[string]string{}
	}
	return m, nil
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(k string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
