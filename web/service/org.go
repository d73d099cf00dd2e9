package service

import (
	"github.com/hakwonlab/acadpanel/database"
	"github.com/hakwonlab/acadpanel/database/model"
	"github.com/hakwonlab/acadpanel/util/crypto"

	"gorm.io/gorm"
)

// RegisterForm creates a new organization together with its owner account.
type RegisterForm struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" form:"password" validate:"required,min=8,max=100"`
	Name     string `json:"name" form:"name" validate:"required,max=50"`
	OrgName  string `json:"orgName" form:"orgName" validate:"required,max=100"`
}

// OrgSettingsForm replaces the organization's settings document wholesale.
type OrgSettingsForm struct {
	Name     string `json:"name" form:"name" validate:"omitempty,max=100"`
	Settings string `json:"settings" form:"settings"`
}

type OrgService struct {
	permissionService PermissionService
}

func (s *OrgService) GetOrg(orgId int) (*model.Organization, error) {
	db := database.GetDB()
	org := &model.Organization{}
	err := db.Model(model.Organization{}).Where("id = ?", orgId).First(org).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return org, nil
}

// Register creates the organization, its owner profile and the default page
// permissions in one transaction; a duplicate username aborts the whole
// registration.
func (s *OrgService) Register(form *RegisterForm) (*model.Organization, *model.User, error) {
	if err := checkStruct(form); err != nil {
		return nil, nil, err
	}

	db := database.GetDB()

	var count int64
	err := db.Model(model.User{}).Where("username = ?", form.Username).Count(&count).Error
	if err != nil {
		return nil, nil, err
	}
	if count > 0 {
		return nil, nil, ErrConflict
	}

	hash, err := crypto.HashPasswordAsBcrypt(form.Password)
	if err != nil {
		return nil, nil, err
	}

	org := &model.Organization{Name: form.OrgName, Type: "academy"}
	user := &model.User{
		Username: form.Username,
		Password: hash,
		Name:     form.Name,
		Role:     model.RoleOwner,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}
		user.OrgId = org.Id
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		org.OwnerId = user.Id
		if err := tx.Save(org).Error; err != nil {
			return err
		}
		return s.permissionService.seedDefaults(tx, org.Id)
	})
	if isUniqueViolation(err) {
		return nil, nil, ErrConflict
	}
	if err != nil {
		return nil, nil, err
	}
	return org, user, nil
}

// UpdateSettings replaces the organization settings document. Caller must
// already have passed the mutation gate.
func (s *OrgService) UpdateSettings(orgId int, form *OrgSettingsForm) (*model.Organization, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	org, err := s.GetOrg(orgId)
	if err != nil {
		return nil, err
	}
	if form.Name != "" {
		org.Name = form.Name
	}
	org.Settings = form.Settings
	return org, database.GetDB().Save(org).Error
}
