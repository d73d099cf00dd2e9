package service

import (
	"github.com/hakwonlab/acadpanel/database"
	"github.com/hakwonlab/acadpanel/database/model"

	"gorm.io/gorm"
)

type WidgetForm struct {
	Type    string `json:"type" form:"type" validate:"required,max=50"`
	Title   string `json:"title" form:"title" validate:"omitempty,max=100"`
	Size    string `json:"size" form:"size" validate:"omitempty,oneof=small medium large full"`
	Enabled *bool  `json:"enabled" form:"enabled"`
}

// defaultWidgets is the dashboard every user starts with.
var defaultWidgets = []model.Widget{
	{Type: "todayAttendance", Title: "Today's Attendance", Category: "attendance", Size: "medium", Enabled: true, SortOrder: 0},
	{Type: "studentCount", Title: "Students", Category: "students", Size: "small", Enabled: true, SortOrder: 1},
	{Type: "monthlyRevenue", Title: "Monthly Revenue", Category: "billing", Size: "medium", Enabled: true, SortOrder: 2},
	{Type: "upcomingConsultations", Title: "Upcoming Consultations", Category: "consultations", Size: "medium", Enabled: true, SortOrder: 3},
	{Type: "serverStatus", Title: "Server Status", Category: "system", Size: "small", Enabled: false, SortOrder: 4},
}

type WidgetService struct{}

// GetWidgets returns the caller's dashboard layout, seeding the default set
// on first use.
func (s *WidgetService) GetWidgets(orgId int, userId int) ([]model.Widget, error) {
	db := database.GetDB()
	var widgets []model.Widget
	err := db.Model(model.Widget{}).
		Where("org_id = ? AND user_id = ?", orgId, userId).
		Order("sort_order asc").
		Find(&widgets).Error
	if err != nil {
		return nil, err
	}
	if len(widgets) > 0 {
		return widgets, nil
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, w := range defaultWidgets {
			w.OrgId = orgId
			w.UserId = userId
			if err := tx.Create(&w).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	err = db.Model(model.Widget{}).
		Where("org_id = ? AND user_id = ?", orgId, userId).
		Order("sort_order asc").
		Find(&widgets).Error
	return widgets, err
}

func (s *WidgetService) getWidget(orgId int, userId int, widgetType string) (*model.Widget, error) {
	db := database.GetDB()
	widget := &model.Widget{}
	err := db.Model(model.Widget{}).
		Where("org_id = ? AND user_id = ? AND type = ?", orgId, userId, widgetType).
		First(widget).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return widget, nil
}

// UpdateWidget changes one tile's title, size or enabled flag.
func (s *WidgetService) UpdateWidget(orgId int, userId int, form *WidgetForm) (*model.Widget, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	widget, err := s.getWidget(orgId, userId, form.Type)
	if err != nil {
		return nil, err
	}
	if form.Title != "" {
		widget.Title = form.Title
	}
	if form.Size != "" {
		widget.Size = form.Size
	}
	if form.Enabled != nil {
		widget.Enabled = *form.Enabled
	}
	return widget, database.GetDB().Save(widget).Error
}

// Reorder persists a new tile order. Types missing from the list keep their
// old position relative to each other, after the listed ones.
func (s *WidgetService) Reorder(orgId int, userId int, types []string) error {
	if len(types) == 0 {
		return newFieldError("types", "failed on 'required' rule")
	}
	db := database.GetDB()
	return db.Transaction(func(tx *gorm.DB) error {
		for i, widgetType := range types {
			err := tx.Model(model.Widget{}).
				Where("org_id = ? AND user_id = ? AND type = ?", orgId, userId, widgetType).
				Update("sort_order", i).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// ResetWidgets drops the caller's layout; the next GetWidgets reseeds it.
func (s *WidgetService) ResetWidgets(orgId int, userId int) error {
	return database.GetDB().
		Where("org_id = ? AND user_id = ?", orgId, userId).
		Delete(model.Widget{}).Error
}
