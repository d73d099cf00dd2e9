// Package entity defines data structures shared by the web layer of the panel.
package entity

// Msg represents a standard API response with success status, message text,
// and optional data object.
type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Obj     any    `json:"obj"`
}

// FieldErrors carries per-field validation detail for a rejected payload.
type FieldErrors map[string]string

// AllSetting contains every panel-level setting exposed to the settings page.
type AllSetting struct {
	// Web server settings
	WebListen     string `json:"webListen" form:"webListen"`
	WebDomain     string `json:"webDomain" form:"webDomain"`
	WebPort       int    `json:"webPort" form:"webPort"`
	WebCertFile   string `json:"webCertFile" form:"webCertFile"`
	WebKeyFile    string `json:"webKeyFile" form:"webKeyFile"`
	WebBasePath   string `json:"webBasePath" form:"webBasePath"`
	SessionMaxAge int    `json:"sessionMaxAge" form:"sessionMaxAge"`

	// UI settings
	PageSize     int    `json:"pageSize" form:"pageSize"`
	TimeLocation string `json:"timeLocation" form:"timeLocation"`
	Datepicker   string `json:"datepicker" form:"datepicker"`
	WebLang      string `json:"webLang" form:"webLang"`

	// Security settings
	TwoFactorEnable bool   `json:"twoFactorEnable" form:"twoFactorEnable"`
	TwoFactorToken  string `json:"twoFactorToken" form:"twoFactorToken"`

	// Telegram bot settings
	TgBotEnable      bool   `json:"tgBotEnable" form:"tgBotEnable"`
	TgBotToken       string `json:"tgBotToken" form:"tgBotToken"`
	TgBotChatId      string `json:"tgBotChatId" form:"tgBotChatId"`
	TgRunTime        string `json:"tgRunTime" form:"tgRunTime"`
	TgBotLoginNotify bool   `json:"tgBotLoginNotify" form:"tgBotLoginNotify"`
	TgLang           string `json:"tgLang" form:"tgLang"`

	// Payment collaborator settings
	PayEnable    bool   `json:"payEnable" form:"payEnable"`
	PayAccountId string `json:"payAccountId" form:"payAccountId"`
	PaySecretKey string `json:"paySecretKey" form:"paySecretKey"`
	PayReturnURL string `json:"payReturnURL" form:"payReturnURL"`

	// AI suggestion settings
	AiEnable bool   `json:"aiEnable" form:"aiEnable"`
	AiApiKey string `json:"aiApiKey" form:"aiApiKey"`
	AiModel  string `json:"aiModel" form:"aiModel"`
}
