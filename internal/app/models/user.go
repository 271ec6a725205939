package models

import (
	"hospital-service/internal/pkg/dto/responses"
)

type User struct {
	ID             string `bson:"_id"`
	Username       string `bson:"username"`
	Email          string `bson:"email"`
	Password       string `bson:"password"`
	Role           string `bson:"role"`
	FirstName      string `bson:"firstName"`
	LastName       string `bson:"lastName"`
	ProfilePicture string `bson:"profilePicture,omitempty"`
	TimeModel      `bson:",inline"`
}

func (u *User) ToResponse() responses.User {
	return responses.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
