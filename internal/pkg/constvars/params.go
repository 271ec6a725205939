package constvars

const (
	URLParamID             = "id"
	URLParamSpecialization = "specialization"
)

const (
	FormFieldProfilePicture = "picture"
)
