package services

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"

	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/ldanie38/geniuscrm/pkg/constants"
	"github.com/ldanie38/geniuscrm/pkg/errors"
	"github.com/ldanie38/geniuscrm/pkg/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogService ingests extension log lines and serves the tail of the server log
type LogService struct {
	extension *zap.Logger
	dir       string
	env       string
}

func NewLogService(logger *zap.Logger, dir, env string) *LogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogService{
		extension: logger.Named(constants.LoggerExtension),
		dir:       dir,
		env:       env,
	}
}

// Environment is the ENV whose log file is served
func (s *LogService) Environment() string {
	return s.env
}

// Ingest writes "<timestamp>  <message>" at the entry's level. Unknown levels
// are logged at info; critical entries go out at DPanic, which the server
// logger stores as CRITICAL without panicking.
func (s *LogService) Ingest(entry models.LogEntry) {
	level := zapcore.InfoLevel
	if logging.IsKnownLevel(entry.Level) {
		level = logging.ParseLevel(entry.Level)
	}
	if ce := s.extension.Check(level, entry.Timestamp+"  "+entry.Message); ce != nil {
		ce.Write()
	}
}

// Tail returns the last lines of the log file, keeping only those at level
// when one is given. An unknown level matches nothing.
func (s *LogService) Tail(level string) (*models.LogTail, error) {
	if level != "" && !logging.IsKnownLevel(level) {
		return &models.LogTail{Environment: s.env, Entries: []string{}}, nil
	}

	path := logging.FilePath(s.dir, s.env)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("No log file", "")
		}
		return nil, errors.NewInternalError("failed to open log file", err)
	}
	defer f.Close()

	lines, err := lastLines(f, constants.LogTailLines)
	if err != nil {
		return nil, errors.NewInternalError("failed to read log file", err)
	}

	if level != "" {
		want := logging.LevelName(logging.ParseLevel(level))
		filtered := make([]string, 0, len(lines))
		for _, line := range lines {
			if lineLevel(line) == want {
				filtered = append(filtered, line)
			}
		}
		lines = filtered
	}

	return &models.LogTail{Environment: s.env, Entries: lines}, nil
}

func lastLines(f *os.File, n int) ([]string, error) {
	ring := make([]string, 0, n)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		if len(ring) == n {
			ring = append(ring[1:], scanner.Text())
			continue
		}
		ring = append(ring, scanner.Text())
	}
	return ring, scanner.Err()
}

func lineLevel(line string) string {
	var rec struct {
		Level string `json:"level"`
	}
	if err := json.Unmarshal([]byte(line), &rec); err == nil {
		return rec.Level
	}
	for _, name := range []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"} {
		if strings.Contains(line, "] "+name+":") {
			return name
		}
	}
	return ""
}
