package responses

import "time"

type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Profile struct {
	User
	ProfilePictureURL string    `json:"profilePictureUrl,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	DoctorDetails     *Doctor   `json:"doctorDetails,omitempty"`
	PatientDetails    *Patient  `json:"patientDetails,omitempty"`
}
