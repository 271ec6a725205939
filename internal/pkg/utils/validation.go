package utils

import (
	"errors"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	validate *validator.Validate

	specialCharRegex = regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar)
	uppercaseRegex   = regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase)
	dateRegex        = regexp.MustCompile(constvars.RegexDateYYYYMMDD)
	timeRegex        = regexp.MustCompile(constvars.RegexTimeHHMM)
	phoneRegex       = regexp.MustCompile(constvars.RegexPhoneNumberGeneral)
)

var weekdays = map[string]bool{
	"Monday":    true,
	"Tuesday":   true,
	"Wednesday": true,
	"Thursday":  true,
	"Friday":    true,
	"Saturday":  true,
	"Sunday":    true,
}

var allowedImageTypes = map[string]bool{
	constvars.MIMEImageJPEG: true,
	constvars.MIMEImagePNG:  true,
	constvars.MIMEImageWEBP: true,
}

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("hhmm", validateHHMM)
	validate.RegisterValidation("yyyymmdd", validateYYYYMMDD)
	validate.RegisterValidation("not_after", validateNotInFuture)
	validate.RegisterValidation("weekday", validateWeekday)
	validate.RegisterValidation("phone", validatePhone)
	validate.RegisterStructValidation(validateScheduleSlot, requests.ScheduleSlot{})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := specialCharRegex.MatchString(password)
	hasUppercase := uppercaseRegex.MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validateHHMM(fl validator.FieldLevel) bool {
	return timeRegex.MatchString(fl.Field().String())
}

func validateYYYYMMDD(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !dateRegex.MatchString(value) {
		return false
	}
	_, err := time.Parse(constvars.DateLayoutYYYYMMDD, value)
	return err == nil
}

func validateNotInFuture(fl validator.FieldLevel) bool {
	date, err := time.Parse(constvars.DateLayoutYYYYMMDD, fl.Field().String())
	if err != nil {
		// the yyyymmdd rule reports malformed dates
		return true
	}
	return !date.After(time.Now().UTC())
}

func validateWeekday(fl validator.FieldLevel) bool {
	return weekdays[fl.Field().String()]
}

func validatePhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

func validateScheduleSlot(sl validator.StructLevel) {
	slot := sl.Current().Interface().(requests.ScheduleSlot)
	if !timeRegex.MatchString(slot.StartTime) || !timeRegex.MatchString(slot.EndTime) {
		return
	}
	if slot.EndTime <= slot.StartTime {
		sl.ReportError(slot.EndTime, "endTime", "EndTime", "after", "startTime")
	}
}

// ValidateImage checks size and sniffed content type of an uploaded picture.
func ValidateImage(data []byte, maxSizeInBytes int64) (string, error) {
	if len(data) == 0 {
		return "", errors.New("file is empty")
	}
	if int64(len(data)) > maxSizeInBytes {
		return "", errors.New("file size exceeds the maximum limit")
	}

	contentType := http.DetectContentType(data)
	if !allowedImageTypes[contentType] {
		return "", errors.New("invalid file format")
	}
	return contentType, nil
}

func ValidateUrlParamID(param string) error {
	if param == "" {
		return errors.New("parameter is missing from url path")
	}

	_, err := uuid.Parse(param)
	if err != nil {
		return err
	}

	return nil
}
