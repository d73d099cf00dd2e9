package service

import (
	"github.com/hakwonlab/acadpanel/database"
	"github.com/hakwonlab/acadpanel/database/model"

	"gorm.io/gorm"
)

type RoomForm struct {
	Name     string `json:"name" form:"name" validate:"required,min=1,max=50"`
	Capacity int    `json:"capacity" form:"capacity" validate:"omitempty,min=1,max=500"`
	Floor    int    `json:"floor" form:"floor"`
	Status   string `json:"status" form:"status" validate:"omitempty,oneof=available maintenance closed"`
}

type SeatForm struct {
	Label string `json:"label" form:"label" validate:"required,min=1,max=20"`
}

type RoomService struct{}

func (s *RoomService) GetRooms(orgId int) ([]model.Room, error) {
	db := database.GetDB()
	var rooms []model.Room
	err := db.Model(model.Room{}).
		Where("org_id = ?", orgId).
		Order("floor asc, name asc").
		Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetRoom(orgId int, id int) (*model.Room, error) {
	db := database.GetDB()
	room := &model.Room{}
	err := db.Model(model.Room{}).
		Where("id = ? AND org_id = ?", id, orgId).
		First(room).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return room, nil
}

func (s *RoomService) AddRoom(orgId int, form *RoomForm) (*model.Room, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	status := form.Status
	if status == "" {
		status = "available"
	}
	room := &model.Room{
		OrgId:    orgId,
		Name:     form.Name,
		Capacity: form.Capacity,
		Floor:    form.Floor,
		Status:   status,
	}
	return room, database.GetDB().Create(room).Error
}

func (s *RoomService) UpdateRoom(orgId int, id int, form *RoomForm) (*model.Room, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	room, err := s.GetRoom(orgId, id)
	if err != nil {
		return nil, err
	}
	room.Name = form.Name
	room.Capacity = form.Capacity
	room.Floor = form.Floor
	if form.Status != "" {
		room.Status = form.Status
	}
	return room, database.GetDB().Save(room).Error
}

func (s *RoomService) DeleteRoom(orgId int, id int) error {
	room, err := s.GetRoom(orgId, id)
	if err != nil {
		return err
	}
	db := database.GetDB()
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("org_id = ? AND room_id = ?", orgId, room.Id).Delete(model.Seat{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Room{}, room.Id).Error
	})
}

func (s *RoomService) GetSeats(orgId int, roomId int) ([]model.Seat, error) {
	if _, err := s.GetRoom(orgId, roomId); err != nil {
		return nil, err
	}
	db := database.GetDB()
	var seats []model.Seat
	err := db.Model(model.Seat{}).
		Where("org_id = ? AND room_id = ?", orgId, roomId).
		Order("label asc").
		Find(&seats).Error
	return seats, err
}

// AddSeat creates one seat in a room. Labels are unique within the room.
func (s *RoomService) AddSeat(orgId int, roomId int, form *SeatForm) (*model.Seat, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	if _, err := s.GetRoom(orgId, roomId); err != nil {
		return nil, err
	}
	seat := &model.Seat{
		OrgId:  orgId,
		RoomId: roomId,
		Label:  form.Label,
		Status: "free",
	}
	err := database.GetDB().Create(seat).Error
	if isUniqueViolation(err) {
		return nil, ErrConflict
	}
	return seat, err
}

func (s *RoomService) getSeat(orgId int, seatId int) (*model.Seat, error) {
	db := database.GetDB()
	seat := &model.Seat{}
	err := db.Model(model.Seat{}).
		Where("id = ? AND org_id = ?", seatId, orgId).
		First(seat).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return seat, nil
}

// AssignSeat places a student on a free seat. An occupied seat is a conflict.
func (s *RoomService) AssignSeat(orgId int, seatId int, studentId int) (*model.Seat, error) {
	seat, err := s.getSeat(orgId, seatId)
	if err != nil {
		return nil, err
	}
	if seat.StudentId != 0 {
		return nil, ErrConflict
	}
	if err := checkStudentScope(orgId, studentId); err != nil {
		return nil, err
	}
	seat.StudentId = studentId
	seat.Status = "occupied"
	return seat, database.GetDB().Save(seat).Error
}

func (s *RoomService) ReleaseSeat(orgId int, seatId int) (*model.Seat, error) {
	seat, err := s.getSeat(orgId, seatId)
	if err != nil {
		return nil, err
	}
	seat.StudentId = 0
	seat.Status = "free"
	return seat, database.GetDB().Save(seat).Error
}

func (s *RoomService) DeleteSeat(orgId int, seatId int) error {
	seat, err := s.getSeat(orgId, seatId)
	if err != nil {
		return err
	}
	return database.GetDB().Delete(&model.Seat{}, seat.Id).Error
}
