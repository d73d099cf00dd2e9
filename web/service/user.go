package service

import (
	"errors"

	"github.com/hakwonlab/acadpanel/database"
	"github.com/hakwonlab/acadpanel/database/model"
	"github.com/hakwonlab/acadpanel/logger"
	"github.com/hakwonlab/acadpanel/util/crypto"
	"github.com/hakwonlab/acadpanel/web/access"

	"github.com/xlzd/gotp"
	"gorm.io/gorm"
)

// AccountForm is the payload for creating or updating a panel account.
type AccountForm struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" form:"password" validate:"omitempty,min=8,max=100"`
	Name     string `json:"name" form:"name" validate:"required,max=50"`
	Role     string `json:"role" form:"role" validate:"required,oneof=owner manager teacher staff"`
}

type UserService struct {
	settingService SettingService
}

func (s *UserService) GetFirstUser() (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser resolves the caller's profile row. A deleted account behind a live
// session surfaces ErrProfileNotFound so downstream checks fail closed.
func (s *UserService) GetUser(id int) (*model.User, error) {
	db := database.GetDB()
	user := &model.User{}
	err := db.Model(model.User{}).Where("id = ?", id).First(user).Error
	if database.IsNotFound(err) {
		return nil, ErrProfileNotFound
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) CheckUser(username string, password string, twoFactorCode string) *model.User {
	db := database.GetDB()

	user := &model.User{}

	err := db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil
	}

	twoFactorEnable, err := s.settingService.GetTwoFactorEnable()
	if err != nil {
		logger.Warning("check two factor err:", err)
		return nil
	}

	if twoFactorEnable {
		twoFactorToken, err := s.settingService.GetTwoFactorToken()
		if err != nil {
			logger.Warning("check two factor token err:", err)
			return nil
		}

		if gotp.NewDefaultTOTP(twoFactorToken).Now() != twoFactorCode {
			return nil
		}
	}

	return user
}

// GetAccounts lists every panel account of one organization.
func (s *UserService) GetAccounts(orgId int) ([]model.User, error) {
	db := database.GetDB()
	var users []model.User
	err := db.Model(model.User{}).
		Where("org_id = ?", orgId).
		Order("created_at asc").
		Find(&users).Error
	return users, err
}

// IsUsernameTaken checks username uniqueness, excluding the account being
// edited. Usernames are unique across the whole panel, not per org, since
// they are the login key.
func (s *UserService) IsUsernameTaken(username string, excludeId int) (bool, error) {
	db := database.GetDB()
	var count int64
	err := db.Model(model.User{}).
		Where("username = ? AND id != ?", username, excludeId).
		Count(&count).Error
	return count > 0, err
}

func (s *UserService) AddAccount(orgId int, form *AccountForm) (*model.User, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	if form.Password == "" {
		return nil, &ValidationError{Fields: map[string]string{"password": "failed on 'required' rule"}}
	}
	taken, err := s.IsUsernameTaken(form.Username, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrConflict
	}

	hash, err := crypto.HashPasswordAsBcrypt(form.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		OrgId:    orgId,
		Username: form.Username,
		Password: hash,
		Name:     form.Name,
		Role:     model.Role(form.Role),
	}
	err = database.GetDB().Create(user).Error
	if isUniqueViolation(err) {
		return nil, ErrConflict
	}
	return user, err
}

func (s *UserService) UpdateAccount(orgId int, id int, form *AccountForm) (*model.User, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	db := database.GetDB()
	user := &model.User{}
	err := db.Model(model.User{}).
		Where("id = ? AND org_id = ?", id, orgId).
		First(user).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	taken, err := s.IsUsernameTaken(form.Username, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrConflict
	}

	// Demoting the last owner would lock the organization out.
	if user.Role == model.RoleOwner && model.Role(form.Role) != model.RoleOwner {
		last, err := s.isLastOwner(orgId, id)
		if err != nil {
			return nil, err
		}
		if last {
			return nil, ErrForbidden
		}
	}

	user.Username = form.Username
	user.Name = form.Name
	user.Role = model.Role(form.Role)
	if form.Password != "" {
		hash, err := crypto.HashPasswordAsBcrypt(form.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}
	return user, db.Save(user).Error
}

func (s *UserService) DeleteAccount(orgId int, id int) error {
	db := database.GetDB()
	user := &model.User{}
	err := db.Model(model.User{}).
		Where("id = ? AND org_id = ?", id, orgId).
		First(user).Error
	if database.IsNotFound(err) {
		return ErrNotFound
	} else if err != nil {
		return err
	}

	if user.Role == model.RoleOwner {
		last, err := s.isLastOwner(orgId, id)
		if err != nil {
			return err
		}
		if last {
			return ErrForbidden
		}
	}

	return db.Delete(&model.User{}, user.Id).Error
}

func (s *UserService) isLastOwner(orgId int, excludeId int) (bool, error) {
	db := database.GetDB()
	var count int64
	err := db.Model(model.User{}).
		Where("org_id = ? AND role = ? AND id != ?", orgId, model.RoleOwner, excludeId).
		Count(&count).Error
	return count == 0, err
}

// CanMutate reports whether the account's role tier allows destructive
// operations. Kept here so callers outside the web layer share one rule.
func (s *UserService) CanMutate(user *model.User) bool {
	if user == nil {
		return false
	}
	return access.CanMutate(user.Role)
}

func (s *UserService) UpdateFirstUser(username string, password string) error {
	if username == "" {
		return errors.New("username can not be empty")
	} else if password == "" {
		return errors.New("password can not be empty")
	}
	hashedPassword, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}

	db := database.GetDB()
	user := &model.User{}
	err = db.Model(model.User{}).First(user).Error
	if database.IsNotFound(err) {
		user.Username = username
		user.Password = hashedPassword
		user.Role = model.RoleOwner
		return db.Model(model.User{}).Create(user).Error
	} else if err != nil {
		return err
	}
	user.Username = username
	user.Password = hashedPassword
	return db.Save(user).Error
}
