package job

import (
	"github.com/hakwonlab/acadpanel/database"
	"github.com/hakwonlab/acadpanel/logger"
)

// CheckpointJob flushes the SQLite write-ahead log back into the main
// database file so backups see a consistent snapshot.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("checkpoint job err:", err)
	}
}
