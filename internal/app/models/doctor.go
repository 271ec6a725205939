package models

import (
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
)

type ScheduleSlot struct {
	Day       string `bson:"day"`
	StartTime string `bson:"startTime"`
	EndTime   string `bson:"endTime"`
}

func NewScheduleSlots(slots []requests.ScheduleSlot) []ScheduleSlot {
	schedule := make([]ScheduleSlot, 0, len(slots))
	for _, slot := range slots {
		schedule = append(schedule, ScheduleSlot{
			Day:       slot.Day,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}
	return schedule
}

type Doctor struct {
	ID             string         `bson:"_id"`
	UserID         string         `bson:"userId"`
	Specialization string         `bson:"specialization"`
	Qualification  string         `bson:"qualification"`
	Experience     int            `bson:"experience"`
	Phone          string         `bson:"phone"`
	Schedule       []ScheduleSlot `bson:"schedule"`
	TimeModel      `bson:",inline"`
}

func (d *Doctor) ToResponse(owner *User) *responses.Doctor {
	schedule := make([]responses.ScheduleSlot, 0, len(d.Schedule))
	for _, slot := range d.Schedule {
		schedule = append(schedule, responses.ScheduleSlot{
			Day:       slot.Day,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}

	response := &responses.Doctor{
		ID:             d.ID,
		UserID:         d.UserID,
		Specialization: d.Specialization,
		Qualification:  d.Qualification,
		Experience:     d.Experience,
		Phone:          d.Phone,
		Schedule:       schedule,
	}
	if owner != nil {
		response.FirstName = owner.FirstName
		response.LastName = owner.LastName
		response.Email = owner.Email
	}
	return response
}
