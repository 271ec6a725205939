package responses

type ScheduleSlot struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type Doctor struct {
	ID             string         `json:"id"`
	UserID         string         `json:"userId"`
	FirstName      string         `json:"firstName,omitempty"`
	LastName       string         `json:"lastName,omitempty"`
	Email          string         `json:"email,omitempty"`
	Specialization string         `json:"specialization"`
	Qualification  string         `json:"qualification"`
	Experience     int            `json:"experience"`
	Phone          string         `json:"phone"`
	Schedule       []ScheduleSlot `json:"schedule"`
}
