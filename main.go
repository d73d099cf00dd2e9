package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	_ "unsafe"

	"github.com/hakwonlab/acadpanel/config"
	"github.com/hakwonlab/acadpanel/database"
	"github.com/hakwonlab/acadpanel/database/model"
	"github.com/hakwonlab/acadpanel/logger"
	"github.com/hakwonlab/acadpanel/web"
	"github.com/hakwonlab/acadpanel/web/cache"
	"github.com/hakwonlab/acadpanel/web/global"
	"github.com/hakwonlab/acadpanel/web/service"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}

	if err := cache.InitRedis(config.GetRedisAddr()); err != nil {
		log.Fatal(err)
	}
	defer cache.Close()

	var server *web.Server

	server = web.NewServer()
	global.SetWebServer(server)
	err = server.Start()
	if err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			global.SetWebServer(server)
			err = server.Start()
			if err != nil {
				log.Println(err)
				return
			}
		default:
			_ = server.Stop()
			return
		}
	}
}

func resetSetting() {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	settingService := service.SettingService{}
	err = settingService.ResetSettings()
	if err != nil {
		fmt.Println("reset setting failed:", err)
	} else {
		fmt.Println("reset setting success")
	}
}

func showSetting() {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	settingService := service.SettingService{}
	port, err := settingService.GetPort()
	if err != nil {
		fmt.Println("get current port failed, error info:", err)
	}
	userService := service.UserService{}
	userModel, err := userService.GetFirstUser()
	if err != nil {
		fmt.Println("get current user info failed, error info:", err)
		return
	}
	if userModel.Username == "" {
		fmt.Println("current username is empty")
	}
	fmt.Println("current panel settings as follows:")
	fmt.Println("username:", userModel.Username)
	fmt.Println("port:", port)
}

func updateSetting(port int, username string, password string) {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	settingService := service.SettingService{}

	if port > 0 {
		err := settingService.SetPort(port)
		if err != nil {
			fmt.Println("set port failed:", err)
		} else {
			fmt.Printf("set port %v success\n", port)
		}
	}
	if username != "" || password != "" {
		userService := service.UserService{}
		err := userService.UpdateFirstUser(username, password)
		if err != nil {
			fmt.Println("set username and password failed:", err)
		} else {
			fmt.Println("set username and password success")
		}
	}
}

func updateTgbotSetting(tgBotToken string, tgBotChatId string, tgBotRuntime string) {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	settingService := service.SettingService{}

	if tgBotToken != "" {
		if err := settingService.SetTgBotToken(tgBotToken); err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println("set tgBotToken success")
	}

	if tgBotRuntime != "" {
		if err := settingService.SetTgbotRuntime(tgBotRuntime); err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("set tgRunTime %s success\n", tgBotRuntime)
	}

	if tgBotChatId != "" {
		if err := settingService.SetTgBotChatId(tgBotChatId); err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println("set tgBotChatId success")
	}
}

func updateTgbotEnableSts(status bool) {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	settingService := service.SettingService{}
	currentTgSts, err := settingService.GetTgbotEnabled()
	if err != nil {
		fmt.Println(err)
		return
	}
	if currentTgSts != status {
		if err := settingService.SetTgbotEnabled(status); err != nil {
			fmt.Println(err)
			return
		}
	}
	fmt.Printf("set tgBotEnable %v success\n", status)
}

func migrateDb() {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Start migrating database...")
	if err := database.Checkpoint(); err != nil {
		fmt.Println("checkpoint failed:", err)
	}
	fmt.Println("Migration done!")
}

// resetPermissions restores the default page-permission table. With org 0 it
// resets every registered organization.
func resetPermissions(orgId int) {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := cache.InitRedis(config.GetRedisAddr()); err != nil {
		fmt.Println(err)
		return
	}
	defer cache.Close()

	permissionService := service.PermissionService{}

	var orgIds []int
	if orgId > 0 {
		orgIds = []int{orgId}
	} else {
		db := database.GetDB()
		var orgs []model.Organization
		if err := db.Find(&orgs).Error; err != nil {
			fmt.Println("read organizations failed:", err)
			return
		}
		for _, org := range orgs {
			orgIds = append(orgIds, org.Id)
		}
	}

	for _, id := range orgIds {
		if err := permissionService.ResetPermissions(id); err != nil {
			fmt.Printf("reset permissions for org %d failed: %v\n", id, err)
			continue
		}
		fmt.Printf("reset permissions for org %d success\n", id)
	}
}

func main() {
	_ = godotenv.Load()

	var rootCmd = &cobra.Command{
		Use: "acadpanel",
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Run: func(cmd *cobra.Command, args []string) {
			migrateDb()
		},
	}

	var settingCmd = &cobra.Command{
		Use:   "setting",
		Short: "Set settings",
	}

	var resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Reset all settings",
		Run: func(cmd *cobra.Command, args []string) {
			resetSetting()
		},
	}

	var showCmd = &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		Run: func(cmd *cobra.Command, args []string) {
			showSetting()
		},
	}

	var updateCmd = &cobra.Command{
		Use:   "update",
		Short: "Update settings",
		Run: func(cmd *cobra.Command, args []string) {
			port, _ := cmd.Flags().GetInt("port")
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")
			updateSetting(port, username, password)
		},
	}

	updateCmd.Flags().Int("port", 0, "set panel port")
	updateCmd.Flags().String("username", "", "set login username")
	updateCmd.Flags().String("password", "", "set login password")

	var tgbotCmd = &cobra.Command{
		Use:   "tgbot",
		Short: "Update telegram bot settings",
		Run: func(cmd *cobra.Command, args []string) {
			tgBotToken, _ := cmd.Flags().GetString("tgbottoken")
			tgBotChatId, _ := cmd.Flags().GetString("tgbotchatid")
			tgBotRuntime, _ := cmd.Flags().GetString("tgbotRuntime")
			enableTgbot, _ := cmd.Flags().GetBool("enabletgbot")

			if tgBotToken != "" || tgBotChatId != "" || tgBotRuntime != "" {
				updateTgbotSetting(tgBotToken, tgBotChatId, tgBotRuntime)
			}
			if cmd.Flags().Changed("enabletgbot") {
				updateTgbotEnableSts(enableTgbot)
			}
		},
	}

	tgbotCmd.Flags().String("tgbottoken", "", "set telegram bot token")
	tgbotCmd.Flags().String("tgbotchatid", "", "set telegram bot admin chat ids")
	tgbotCmd.Flags().String("tgbotRuntime", "", "set telegram bot report cron")
	tgbotCmd.Flags().Bool("enabletgbot", false, "enable or disable telegram bot")

	var resetPermissionsCmd = &cobra.Command{
		Use:   "resetpermissions",
		Short: "Reset page permissions to defaults",
		Run: func(cmd *cobra.Command, args []string) {
			orgId, _ := cmd.Flags().GetInt("org")
			resetPermissions(orgId)
		},
	}

	resetPermissionsCmd.Flags().Int("org", 0, "organization id, 0 for all")

	settingCmd.AddCommand(resetCmd, showCmd, updateCmd, tgbotCmd)
	rootCmd.AddCommand(runCmd, migrateCmd, settingCmd, resetPermissionsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println("run failed:", err)
		os.Exit(1)
	}
}
