package job

import (
	"github.com/hakwonlab/acadpanel/web/service"
)

// DailyReportJob sends yesterday's attendance and billing summary to the
// Telegram bot admins.
type DailyReportJob struct {
	tgbotService service.Tgbot
}

func NewDailyReportJob() *DailyReportJob {
	return new(DailyReportJob)
}

func (j *DailyReportJob) Run() {
	j.tgbotService.SendReport()
}
