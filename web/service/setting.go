package service

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/hakwonlab/acadpanel/database"
	"github.com/hakwonlab/acadpanel/database/model"
	"github.com/hakwonlab/acadpanel/util/common"
	"github.com/hakwonlab/acadpanel/util/random"
	"github.com/hakwonlab/acadpanel/util/reflect_util"
	"github.com/hakwonlab/acadpanel/web/cache"
	"github.com/hakwonlab/acadpanel/web/entity"
)

var defaultValueMap = map[string]string{
	"webListen":        "",
	"webDomain":        "",
	"webPort":          "2090",
	"webCertFile":      "",
	"webKeyFile":       "",
	"secret":           random.Seq(32),
	"webBasePath":      "/",
	"sessionMaxAge":    "60",
	"pageSize":         "50",
	"timeLocation":     "Asia/Seoul",
	"datepicker":       "gregorian",
	"webLang":          "ko-KR",
	"twoFactorEnable":  "false",
	"twoFactorToken":   "",
	"tgBotEnable":      "false",
	"tgBotToken":       "",
	"tgBotChatId":      "",
	"tgRunTime":        "@daily",
	"tgBotLoginNotify": "true",
	"tgLang":           "en-US",
	"payEnable":        "false",
	"payAccountId":     "",
	"paySecretKey":     "",
	"payReturnURL":     "",
	"aiEnable":         "false",
	"aiApiKey":         "",
	"aiModel":          "gemini-1.5-flash",
}

type SettingService struct{}

func (s *SettingService) GetAllSetting() (*entity.AllSetting, error) {
	db := database.GetDB()
	settings := make([]*model.Setting, 0)
	err := db.Model(model.Setting{}).Not("key = ?", "secret").Find(&settings).Error
	if err != nil {
		return nil, err
	}
	allSetting := &entity.AllSetting{}
	t := reflect.TypeOf(allSetting).Elem()
	v := reflect.ValueOf(allSetting).Elem()
	fields := reflect_util.GetFields(t)

	setSetting := func(key, value string) (err error) {
		defer func() {
			panicErr := recover()
			if panicErr != nil {
				err = errors.New(fmt.Sprint(panicErr))
			}
		}()

		var found bool
		var field reflect.StructField
		for _, f := range fields {
			if f.Tag.Get("json") == key {
				field = f
				found = true
				break
			}
		}

		if !found {
			// Internal settings are not exposed to the settings page.
			return nil
		}

		fieldV := v.FieldByName(field.Name)
		switch t := fieldV.Interface().(type) {
		case int:
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return err
			}
			fieldV.SetInt(n)
		case string:
			fieldV.SetString(value)
		case bool:
			fieldV.SetBool(value == "true")
		default:
			return common.NewErrorf("unknown field %v type %v", key, t)
		}
		return
	}

	keyMap := map[string]bool{}
	for _, setting := range settings {
		err := setSetting(setting.Key, setting.Value)
		if err != nil {
			return nil, err
		}
		keyMap[setting.Key] = true
	}

	for key, value := range defaultValueMap {
		if keyMap[key] {
			continue
		}
		err := setSetting(key, value)
		if err != nil {
			return nil, err
		}
	}

	return allSetting, nil
}

// UpdateAllSetting persists every field of the settings page in one pass.
func (s *SettingService) UpdateAllSetting(allSetting *entity.AllSetting) error {
	t := reflect.TypeOf(allSetting).Elem()
	v := reflect.ValueOf(allSetting).Elem()
	fields := reflect_util.GetFields(t)
	errs := make([]error, 0, len(fields))
	for _, field := range fields {
		key := field.Tag.Get("json")
		if key == "" {
			continue
		}
		fieldV := v.FieldByName(field.Name)
		value := fmt.Sprint(fieldV.Interface())
		errs = append(errs, s.saveSetting(key, value))
	}
	return common.Combine(errs...)
}

func (s *SettingService) ResetSettings() error {
	db := database.GetDB()
	err := db.Where("1 = 1").Delete(model.Setting{}).Error
	if err != nil {
		return err
	}
	return cache.InvalidateAllSettings()
}

func (s *SettingService) getSetting(key string) (*model.Setting, error) {
	setting := &model.Setting{}
	err := cache.GetOrSet(cache.KeySettingPrefix+key, setting, cache.TTLSetting, func() (any, error) {
		db := database.GetDB()
		fresh := &model.Setting{}
		err := db.Model(model.Setting{}).Where("key = ?", key).First(fresh).Error
		if err != nil {
			return nil, err
		}
		return fresh, nil
	})
	if err != nil {
		return nil, err
	}
	return setting, nil
}

func (s *SettingService) saveSetting(key string, value string) error {
	db := database.GetDB()
	setting := &model.Setting{}
	err := db.Model(model.Setting{}).Where("key = ?", key).First(setting).Error
	if database.IsNotFound(err) {
		err = db.Create(&model.Setting{Key: key, Value: value}).Error
	} else if err == nil {
		setting.Key = key
		setting.Value = value
		err = db.Save(setting).Error
	}
	if err != nil {
		return err
	}
	return cache.InvalidateSetting(key)
}

func (s *SettingService) getString(key string) (string, error) {
	setting, err := s.getSetting(key)
	if database.IsNotFound(err) {
		value, ok := defaultValueMap[key]
		if !ok {
			return "", common.NewErrorf("unknown setting key: %v", key)
		}
		return value, nil
	} else if err != nil {
		return "", err
	}
	return setting.Value, nil
}

func (s *SettingService) setString(key string, value string) error {
	return s.saveSetting(key, value)
}

func (s *SettingService) getBool(key string) (bool, error) {
	str, err := s.getString(key)
	if err != nil {
		return false, err
	}
	return strconv.ParseBool(str)
}

func (s *SettingService) setBool(key string, value bool) error {
	return s.setString(key, strconv.FormatBool(value))
}

func (s *SettingService) getInt(key string) (int, error) {
	str, err := s.getString(key)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(str)
}

func (s *SettingService) setInt(key string, value int) error {
	return s.setString(key, strconv.Itoa(value))
}

func (s *SettingService) GetListen() (string, error) {
	return s.getString("webListen")
}

func (s *SettingService) GetWebDomain() (string, error) {
	return s.getString("webDomain")
}

func (s *SettingService) GetPort() (int, error) {
	return s.getInt("webPort")
}

func (s *SettingService) SetPort(port int) error {
	return s.setInt("webPort", port)
}

func (s *SettingService) GetCertFile() (string, error) {
	return s.getString("webCertFile")
}

func (s *SettingService) GetKeyFile() (string, error) {
	return s.getString("webKeyFile")
}

func (s *SettingService) GetSecret() ([]byte, error) {
	secret, err := s.getString("secret")
	if err != nil {
		return nil, err
	}
	return []byte(secret), nil
}

func (s *SettingService) GetBasePath() (string, error) {
	basePath, err := s.getString("webBasePath")
	if err != nil {
		return "", err
	}
	if basePath == "" {
		basePath = "/"
	}
	if basePath[0] != '/' {
		basePath = "/" + basePath
	}
	if basePath[len(basePath)-1] != '/' {
		basePath += "/"
	}
	return basePath, nil
}

func (s *SettingService) GetSessionMaxAge() (int, error) {
	return s.getInt("sessionMaxAge")
}

func (s *SettingService) GetPageSize() (int, error) {
	return s.getInt("pageSize")
}

func (s *SettingService) GetTimeLocation() (*time.Location, error) {
	l, err := s.getString("timeLocation")
	if err != nil {
		return nil, err
	}
	location, err := time.LoadLocation(l)
	if err != nil {
		defaultLocation := defaultValueMap["timeLocation"]
		location, err = time.LoadLocation(defaultLocation)
	}
	return location, err
}

func (s *SettingService) GetTwoFactorEnable() (bool, error) {
	return s.getBool("twoFactorEnable")
}

func (s *SettingService) SetTwoFactorEnable(value bool) error {
	return s.setBool("twoFactorEnable", value)
}

func (s *SettingService) GetTwoFactorToken() (string, error) {
	return s.getString("twoFactorToken")
}

func (s *SettingService) SetTwoFactorToken(token string) error {
	return s.setString("twoFactorToken", token)
}

func (s *SettingService) GetTgbotEnabled() (bool, error) {
	return s.getBool("tgBotEnable")
}

func (s *SettingService) SetTgbotEnabled(value bool) error {
	return s.setBool("tgBotEnable", value)
}

func (s *SettingService) GetTgBotToken() (string, error) {
	return s.getString("tgBotToken")
}

func (s *SettingService) SetTgBotToken(token string) error {
	return s.setString("tgBotToken", token)
}

func (s *SettingService) GetTgBotChatId() (string, error) {
	return s.getString("tgBotChatId")
}

func (s *SettingService) SetTgBotChatId(chatIds string) error {
	return s.setString("tgBotChatId", chatIds)
}

func (s *SettingService) GetTgbotRuntime() (string, error) {
	return s.getString("tgRunTime")
}

func (s *SettingService) SetTgbotRuntime(time string) error {
	return s.setString("tgRunTime", time)
}

func (s *SettingService) GetTgBotLoginNotify() (bool, error) {
	return s.getBool("tgBotLoginNotify")
}

func (s *SettingService) GetTgLang() (string, error) {
	return s.getString("tgLang")
}

func (s *SettingService) GetPayEnable() (bool, error) {
	return s.getBool("payEnable")
}

func (s *SettingService) GetPayAccountId() (string, error) {
	return s.getString("payAccountId")
}

func (s *SettingService) GetPaySecretKey() (string, error) {
	return s.getString("paySecretKey")
}

func (s *SettingService) GetPayReturnURL() (string, error) {
	return s.getString("payReturnURL")
}

func (s *SettingService) GetAiEnable() (bool, error) {
	return s.getBool("aiEnable")
}

func (s *SettingService) GetAiApiKey() (string, error) {
	return s.getString("aiApiKey")
}

func (s *SettingService) GetAiModel() (string, error) {
	return s.getString("aiModel")
}
