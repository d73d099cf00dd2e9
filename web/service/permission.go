package service

import (
	"fmt"

	"github.com/hakwonlab/acadpanel/database"
	"github.com/hakwonlab/acadpanel/database/model"
	"github.com/hakwonlab/acadpanel/web/access"
	"github.com/hakwonlab/acadpanel/web/cache"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PermissionService persists one access.Table per organization. The table is
// loaded per request and never held in a process-wide variable, so tenants
// cannot cross-contaminate each other in one server process.
type PermissionService struct{}

// GetTable loads the permission table of one organization, seeding the
// defaults on first use.
func (s *PermissionService) GetTable(orgId int) (access.Table, error) {
	table := access.Table{}
	err := cache.GetOrSet(fmt.Sprintf("%s%d", cache.KeyPermissionsPrefix, orgId), &table, cache.TTLPermissions, func() (any, error) {
		return s.loadTable(orgId)
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

func (s *PermissionService) loadTable(orgId int) (access.Table, error) {
	db := database.GetDB()
	var rows []model.PagePermission
	err := db.Model(model.PagePermission{}).
		Where("org_id = ?", orgId).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		if err := s.seedDefaults(db, orgId); err != nil {
			return nil, err
		}
		return access.Defaults(), nil
	}

	table := access.Table{}
	for _, row := range rows {
		table[access.Page(row.Page)] = access.Flags{Staff: row.Staff, Teacher: row.Teacher}
	}
	return table, nil
}

// seedDefaults writes the factory table for a new organization.
func (s *PermissionService) seedDefaults(db *gorm.DB, orgId int) error {
	defaults := access.Defaults()
	rows := make([]model.PagePermission, 0, len(defaults))
	for _, page := range access.Pages {
		flags, ok := defaults[page]
		if !ok {
			continue
		}
		rows = append(rows, model.PagePermission{
			OrgId:   orgId,
			Page:    string(page),
			Staff:   flags.Staff,
			Teacher: flags.Teacher,
		})
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

// UpdatePagePermission sets one role flag for one page. Setting the same
// value twice is a no-op in effect. Unknown pages are rejected before the
// store is touched; the paired flag of the other role is left untouched.
func (s *PermissionService) UpdatePagePermission(orgId int, page access.Page, role model.Role, hasAccess bool) error {
	if !access.ValidPage(page) {
		return &ValidationError{Fields: map[string]string{"page": "failed on 'oneof' rule"}}
	}
	var column string
	switch role {
	case model.RoleStaff:
		column = "staff"
	case model.RoleTeacher:
		column = "teacher"
	default:
		return &ValidationError{Fields: map[string]string{"role": "failed on 'oneof' rule"}}
	}

	db := database.GetDB()
	row := &model.PagePermission{}
	err := db.Model(model.PagePermission{}).
		Where("org_id = ? AND page = ?", orgId, string(page)).
		First(row).Error
	if database.IsNotFound(err) {
		row = &model.PagePermission{OrgId: orgId, Page: string(page)}
		if err := db.Create(row).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	err = db.Model(model.PagePermission{}).
		Where("id = ?", row.Id).
		Update(column, hasAccess).Error
	if err != nil {
		return err
	}
	return cache.InvalidatePermissions(orgId)
}

// ResetPermissions restores the default table for one organization.
// Calling it twice yields the same table as calling it once.
func (s *PermissionService) ResetPermissions(orgId int) error {
	db := database.GetDB()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("org_id = ?", orgId).Delete(model.PagePermission{}).Error; err != nil {
			return err
		}
		return s.seedDefaults(tx, orgId)
	})
	if err != nil {
		return err
	}
	return cache.InvalidatePermissions(orgId)
}

// CanAccessPage is the request-path entry point: resolves the caller's table
// and evaluates the gate. A nil role or unknown page denies.
func (s *PermissionService) CanAccessPage(orgId int, page access.Page, role model.Role) (bool, error) {
	if role == model.RoleOwner {
		return true, nil
	}
	table, err := s.GetTable(orgId)
	if err != nil {
		return false, err
	}
	return access.CanAccessPage(table, page, role), nil
}
