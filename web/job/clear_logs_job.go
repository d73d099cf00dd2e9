package job

import (
	"os"
	"path/filepath"

	"github.com/hakwonlab/acadpanel/config"
	"github.com/hakwonlab/acadpanel/logger"
)

type ClearLogsJob struct{}

func NewClearLogsJob() *ClearLogsJob {
	return new(ClearLogsJob)
}

// Run rotates the current log files into ".prev" copies and truncates the
// originals so the log folder stays bounded.
func (j *ClearLogsJob) Run() {
	logDir := config.GetLogFolder()
	files, err := filepath.Glob(filepath.Join(logDir, "*.log"))
	if err != nil {
		logger.Warning("clear logs job err:", err)
		return
	}

	for _, logPath := range files {
		prevPath := logPath + ".prev"

		content, err := os.ReadFile(logPath)
		if err != nil {
			logger.Warning("clear logs job err:", err)
			continue
		}
		if err := os.WriteFile(prevPath, content, 0o644); err != nil {
			logger.Warning("clear logs job err:", err)
			continue
		}
		if err := os.Truncate(logPath, 0); err != nil {
			logger.Warning("clear logs job err:", err)
		}
	}
}
