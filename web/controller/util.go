package controller

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/hakwonlab/acadpanel/config"
	"github.com/hakwonlab/acadpanel/logger"
	"github.com/hakwonlab/acadpanel/web/entity"
	"github.com/hakwonlab/acadpanel/web/service"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the real IP address from the request headers or remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// pathParamId parses a numeric :id style path parameter.
func pathParamId(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return 0, false
	}
	return id, true
}

// jsonMsg sends a JSON response with a message and error status.
func jsonMsg(c *gin.Context, msg string, err error) {
	jsonMsgObj(c, msg, nil, err)
}

// jsonObj sends a JSON response with an object and error status.
func jsonObj(c *gin.Context, obj any, err error) {
	jsonMsgObj(c, "", obj, err)
}

// jsonMsgObj sends a JSON response with a message, object, and error status.
func jsonMsgObj(c *gin.Context, msg string, obj any, err error) {
	m := entity.Msg{
		Obj: obj,
	}
	if err == nil {
		m.Success = true
		if msg != "" {
			m.Msg = msg
		}
	} else {
		m.Success = false
		m.Msg = msg + " (" + err.Error() + ")"
		logger.Warning(msg+" "+I18nWeb(c, "fail")+": ", err)
	}
	c.JSON(http.StatusOK, m)
}

// pureJsonMsg sends a pure JSON message response with custom status code.
func pureJsonMsg(c *gin.Context, statusCode int, success bool, msg string) {
	c.JSON(statusCode, entity.Msg{
		Success: success,
		Msg:     msg,
	})
}

// jsonErr converts a service error into a status and a localized message.
// Sentinels map onto their own statuses; anything unexpected is logged and
// reported as a generic server error so store details never leak.
func jsonErr(c *gin.Context, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, entity.Msg{
			Success: false,
			Msg:     I18nWeb(c, "errors.invalidPayload"),
			Obj:     vErr.Fields,
		})
	case errors.Is(err, service.ErrNotFound):
		pureJsonMsg(c, http.StatusNotFound, false, I18nWeb(c, "errors.notFound"))
	case errors.Is(err, service.ErrConflict):
		pureJsonMsg(c, http.StatusConflict, false, I18nWeb(c, "errors.conflict"))
	case errors.Is(err, service.ErrForbidden):
		pureJsonMsg(c, http.StatusForbidden, false, I18nWeb(c, "errors.forbidden"))
	case errors.Is(err, service.ErrProfileNotFound):
		pureJsonMsg(c, http.StatusUnauthorized, false, I18nWeb(c, "errors.profileNotFound"))
	case errors.Is(err, service.ErrUnauthenticated):
		pureJsonMsg(c, http.StatusUnauthorized, false, I18nWeb(c, "errors.authRequired"))
	case errors.Is(err, service.ErrFeatureDisabled):
		pureJsonMsg(c, http.StatusForbidden, false, I18nWeb(c, "errors.featureDisabled"))
	default:
		logger.Warning("request failed:", err)
		pureJsonMsg(c, http.StatusInternalServerError, false, I18nWeb(c, "errors.serverError"))
	}
}

// jsonConflictMsg is jsonErr with a page-specific message for the conflict
// case, e.g. "already recorded today" instead of the generic text.
func jsonConflictMsg(c *gin.Context, err error, i18nKey string) {
	if errors.Is(err, service.ErrConflict) {
		pureJsonMsg(c, http.StatusConflict, false, I18nWeb(c, i18nKey))
		return
	}
	jsonErr(c, err)
}

// html renders an HTML template with the provided data and title.
func html(c *gin.Context, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = title
	host := c.GetHeader("X-Forwarded-Host")
	if host == "" {
		host = c.GetHeader("X-Real-IP")
	}
	if host == "" {
		var err error
		host, _, err = net.SplitHostPort(c.Request.Host)
		if err != nil {
			host = c.Request.Host
		}
	}
	data["host"] = host
	data["request_uri"] = c.Request.RequestURI
	data["base_path"] = c.GetString("base_path")
	c.HTML(http.StatusOK, name, getContext(data))
}

// getContext adds version and other context data to the provided gin.H.
func getContext(h gin.H) gin.H {
	a := gin.H{
		"cur_ver": config.GetVersion(),
	}
	for key, value := range h {
		a[key] = value
	}
	return a
}

// isAjax checks if the request is an AJAX request.
func isAjax(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}
