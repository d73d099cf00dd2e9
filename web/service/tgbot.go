package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hakwonlab/acadpanel/database"
	"github.com/hakwonlab/acadpanel/database/model"
	"github.com/hakwonlab/acadpanel/logger"
	"github.com/hakwonlab/acadpanel/util/common"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"
	"go.uber.org/atomic"
)

var bot *telego.Bot
var botHandler *th.BotHandler
var botCancel context.CancelFunc
var adminIds []int64
var isRunning atomic.Bool

type LoginStatus byte

const (
	LoginSuccess LoginStatus = 1
	LoginFail    LoginStatus = 0
)

// Tgbot pushes panel notifications to academy admins over Telegram and
// answers a few read-only commands.
type Tgbot struct {
	settingService      SettingService
	userService         UserService
	studentService      StudentService
	attendanceService   AttendanceService
	consultationService ConsultationService
	invoiceService      InvoiceService
	serverService       *ServerService
}

func (t *Tgbot) NewTgbot() *Tgbot {
	return new(Tgbot)
}

func (t *Tgbot) Start() error {
	token, err := t.settingService.GetTgBotToken()
	if err != nil || token == "" {
		logger.Warning("Get tgBotToken failed:", err)
		return err
	}

	chatIds, err := t.settingService.GetTgBotChatId()
	if err != nil {
		logger.Warning("Get tgBotChatId failed:", err)
		return err
	}

	adminIds = nil
	for _, adminId := range strings.Split(chatIds, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(adminId))
		if err != nil {
			logger.Warning("Failed to parse tgBotChatId:", err)
			return err
		}
		adminIds = append(adminIds, int64(id))
	}

	bot, err = telego.NewBot(token)
	if err != nil {
		logger.Warning("Get tgbot's api error:", err)
		return err
	}

	if !isRunning.Load() {
		logger.Info("Starting Telegram receiver ...")
		var botCtx context.Context
		botCtx, botCancel = context.WithCancel(context.Background())
		go t.OnReceive(botCtx)
		isRunning.Store(true)
	}

	return nil
}

func (t *Tgbot) IsRunning() bool {
	return isRunning.Load()
}

func (t *Tgbot) Stop() {
	if botHandler != nil {
		if err := botHandler.Stop(); err != nil {
			logger.Warning("Failed to stop Telegram handler:", err)
		}
	}
	if botCancel != nil {
		botCancel()
	}
	logger.Info("Stop Telegram receiver ...")
	isRunning.Store(false)
	adminIds = nil
}

func (t *Tgbot) OnReceive(ctx context.Context) {
	params := telego.GetUpdatesParams{
		Timeout: 10,
	}

	updates, err := bot.UpdatesViaLongPolling(ctx, &params)
	if err != nil {
		logger.Warning("Failed to start long polling:", err)
		return
	}

	botHandler, err = th.NewBotHandler(bot, updates)
	if err != nil {
		logger.Warning("Failed to create Telegram handler:", err)
		return
	}

	botHandler.HandleMessage(func(_ *th.Context, message telego.Message) error {
		t.answerCommand(&message, message.Chat.ID, t.isAdmin(message.Chat.ID))
		return nil
	}, th.AnyCommand())

	if err := botHandler.Start(); err != nil {
		logger.Warning("Telegram handler stopped:", err)
	}
}

func (t *Tgbot) isAdmin(chatId int64) bool {
	for _, adminId := range adminIds {
		if chatId == adminId {
			return true
		}
	}
	return false
}

func (t *Tgbot) answerCommand(message *telego.Message, chatId int64, isAdmin bool) {
	msg := ""
	command, _, _ := tu.ParseCommand(message.Text)

	if !isAdmin {
		t.SendMsgToTgbot(chatId, "Unknown chat. Ask the panel owner to register this chat id.")
		return
	}

	switch command {
	case "start", "help":
		msg = "Available commands:\r\n/status - server status\r\n/today - today's attendance\r\n/report - daily report"
	case "status":
		msg = t.getServerStatus()
	case "today":
		msg = t.getTodayAttendance()
	case "report":
		t.SendReport()
		return
	default:
		msg = "Unknown command. Use /help."
	}
	t.SendMsgToTgbot(chatId, msg)
}

func (t *Tgbot) SendMsgToTgbot(chatId int64, msg string) {
	if msg == "" {
		return
	}
	params := telego.SendMessageParams{
		ChatID: tu.ID(chatId),
		Text:   msg,
	}
	_, err := bot.SendMessage(context.Background(), &params)
	if err != nil {
		logger.Warning("Error sending telegram message :", err)
	}
	time.Sleep(500 * time.Millisecond)
}

func (t *Tgbot) SendMsgToTgbotAdmins(msg string) {
	for _, adminId := range adminIds {
		t.SendMsgToTgbot(adminId, msg)
	}
}

// UserLoginNotify reports a panel login attempt to the admin chats.
func (t *Tgbot) UserLoginNotify(username string, ip string, time string, status LoginStatus) {
	if !t.IsRunning() {
		return
	}
	notify, err := t.settingService.GetTgBotLoginNotify()
	if err != nil || !notify {
		return
	}

	var msg string
	if status == LoginSuccess {
		msg = "✅ Panel login\r\n"
	} else {
		msg = "❗ Failed panel login\r\n"
	}
	msg += fmt.Sprintf("Username: %s\r\nIP: %s\r\nTime: %s", username, ip, time)
	t.SendMsgToTgbotAdmins(msg)
}

func (t *Tgbot) getServerStatus() string {
	if t.serverService == nil {
		t.serverService = NewServerService()
	}
	status := t.serverService.GetStatus()
	return fmt.Sprintf("💻 Server status\r\nCPU: %.1f%%\r\nMemory: %s / %s\r\nUptime: %s",
		status.Cpu,
		common.FormatBytes(status.Mem.Current),
		common.FormatBytes(status.Mem.Total),
		(time.Duration(status.Uptime) * time.Second).String())
}

func (t *Tgbot) getTodayAttendance() string {
	loc, err := t.settingService.GetTimeLocation()
	if err != nil {
		loc = time.Local
	}
	today := time.Now().In(loc).Format("2006-01-02")

	db := database.GetDB()
	var orgs []model.Organization
	if err := db.Find(&orgs).Error; err != nil {
		return "Failed to read organizations."
	}

	msg := "📋 Attendance for " + today
	for _, org := range orgs {
		var present, absent int64
		db.Model(model.Attendance{}).
			Where("org_id = ? AND date = ? AND status = ?", org.Id, today, model.AttendancePresent).
			Count(&present)
		db.Model(model.Attendance{}).
			Where("org_id = ? AND date = ? AND status = ?", org.Id, today, model.AttendanceAbsent).
			Count(&absent)
		msg += fmt.Sprintf("\r\n%s: %d present, %d absent", org.Name, present, absent)
	}
	return msg
}

// SendReport pushes yesterday's attendance counts and the month's revenue to
// the admin chats. The daily report job calls this on the configured cron.
func (t *Tgbot) SendReport() {
	if !t.IsRunning() {
		return
	}
	loc, err := t.settingService.GetTimeLocation()
	if err != nil {
		loc = time.Local
	}
	now := time.Now().In(loc)
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
	month := now.Format("2006-01")

	db := database.GetDB()
	var orgs []model.Organization
	if err := db.Find(&orgs).Error; err != nil {
		logger.Warning("daily report: failed to read organizations:", err)
		return
	}

	for _, org := range orgs {
		var present, absent int64
		db.Model(model.Attendance{}).
			Where("org_id = ? AND date = ? AND status = ?", org.Id, yesterday, model.AttendancePresent).
			Count(&present)
		db.Model(model.Attendance{}).
			Where("org_id = ? AND date = ? AND status = ?", org.Id, yesterday, model.AttendanceAbsent).
			Count(&absent)

		income, expense, err := t.invoiceService.MonthlyTotals(org.Id, month)
		if err != nil {
			logger.Warning("daily report: totals failed:", err)
			continue
		}

		msg := fmt.Sprintf("🗓 Daily report - %s\r\nDate: %s\r\nPresent: %d\r\nAbsent: %d\r\nMonth income: %s\r\nMonth expenses: %s",
			org.Name, yesterday, present, absent,
			common.FormatCurrency(income), common.FormatCurrency(expense))
		t.SendMsgToTgbotAdmins(msg)
	}
}

// NotifyConsultations reminds admins about consultations scheduled for the
// given date.
func (t *Tgbot) NotifyConsultations(date string) {
	if !t.IsRunning() {
		return
	}
	db := database.GetDB()
	var orgs []model.Organization
	if err := db.Find(&orgs).Error; err != nil {
		return
	}
	for _, org := range orgs {
		consultations, err := t.consultationService.GetUpcoming(org.Id, date)
		if err != nil || len(consultations) == 0 {
			continue
		}
		msg := fmt.Sprintf("📌 %s: %d consultation(s) scheduled for %s", org.Name, len(consultations), date)
		t.SendMsgToTgbotAdmins(msg)
	}
}
