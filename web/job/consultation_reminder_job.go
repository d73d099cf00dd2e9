package job

import (
	"time"

	"github.com/hakwonlab/acadpanel/logger"
	"github.com/hakwonlab/acadpanel/web/service"
)

// ConsultationReminderJob sends a Telegram reminder for consultations
// scheduled on the next day.
type ConsultationReminderJob struct {
	settingService service.SettingService
	tgbotService   service.Tgbot
}

func NewConsultationReminderJob() *ConsultationReminderJob {
	return new(ConsultationReminderJob)
}

func (j *ConsultationReminderJob) Run() {
	loc, err := j.settingService.GetTimeLocation()
	if err != nil {
		logger.Warning("consultation reminder job err:", err)
		return
	}
	tomorrow := time.Now().In(loc).AddDate(0, 0, 1).Format("2006-01-02")
	j.tgbotService.NotifyConsultations(tomorrow)
}
