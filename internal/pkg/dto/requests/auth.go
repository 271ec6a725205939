package requests

// RegistrationRequest is implemented by every role that can self-register.
type RegistrationRequest interface {
	Account() *RegisterAccount
}

type RegisterAccount struct {
	Username  string `json:"username" validate:"required,alphanum,min=3,max=30"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,password"`
	Role      string `json:"role" validate:"required,oneof=doctor patient"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
}

type PatientRegistration struct {
	RegisterAccount
	DateOfBirth      string            `json:"dateOfBirth" validate:"required,yyyymmdd,not_after"`
	Phone            string            `json:"phone" validate:"required,phone"`
	Address          string            `json:"address" validate:"required,max=255"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty" validate:"omitempty"`
}

func (r *PatientRegistration) Account() *RegisterAccount {
	return &r.RegisterAccount
}

type DoctorRegistration struct {
	RegisterAccount
	Specialization string         `json:"specialization" validate:"required,max=100"`
	Qualification  string         `json:"qualification" validate:"required,max=255"`
	Experience     int            `json:"experience" validate:"gte=0,lte=80"`
	Phone          string         `json:"phone" validate:"required,phone"`
	Schedule       []ScheduleSlot `json:"schedule" validate:"omitempty,dive"`
}

func (r *DoctorRegistration) Account() *RegisterAccount {
	return &r.RegisterAccount
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UploadProfilePicture struct {
	FileName    string
	ContentType string
	Size        int64
	Data        []byte
}
