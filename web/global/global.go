// Package global holds the process-wide handle to the running web server,
// letting the panel service and jobs reach the server's cron and context
// without an import cycle through the web package.
package global

import (
	"context"

	"github.com/robfig/cron/v3"
)

var webServer WebServer

type WebServer interface {
	GetCron() *cron.Cron
	GetCtx() context.Context
}

func SetWebServer(s WebServer) {
	webServer = s
}

func GetWebServer() WebServer {
	return webServer
}
