// Package testutil holds in-memory implementations of the contracts used by
// usecase and delivery tests.
package testutil

import (
	"context"
	"errors"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

var ErrInjected = errors.New("injected failure")

type UserRepository struct {
	mu              sync.Mutex
	users           map[string]models.User
	FailCreate      bool
	DeletedUserIDs  []string
	CreateCallCount int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: map[string]models.User{}}
}

func (r *UserRepository) CreateUser(ctx context.Context, userModel *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.CreateCallCount++
	if r.FailCreate {
		return ErrInjected
	}
	r.users[userModel.ID] = *userModel
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *UserRepository) FindByIDs(ctx context.Context, userIDs []string) (map[string]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make(map[string]*models.User, len(userIDs))
	for _, id := range userIDs {
		if user, ok := r.users[id]; ok {
			user := user
			result[id] = &user
		}
	}
	return result, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			user := user
			return &user, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email || user.Username == username {
			user := user
			return &user, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) UpdateProfilePicture(ctx context.Context, userID, objectName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return nil
	}
	user.ProfilePicture = objectName
	r.users[userID] = user
	return nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, userID)
	r.DeletedUserIDs = append(r.DeletedUserIDs, userID)
	return nil
}

func (r *UserRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type DoctorRepository struct {
	mu         sync.Mutex
	doctors    map[string]models.Doctor
	FailCreate bool
}

func NewDoctorRepository() *DoctorRepository {
	return &DoctorRepository{doctors: map[string]models.Doctor{}}
}

func (r *DoctorRepository) CreateDoctor(ctx context.Context, doctorModel *models.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailCreate {
		return ErrInjected
	}
	r.doctors[doctorModel.ID] = *doctorModel
	return nil
}

func (r *DoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doctors := make([]models.Doctor, 0, len(r.doctors))
	for _, doctor := range r.doctors {
		doctors = append(doctors, doctor)
	}
	sort.Slice(doctors, func(i, j int) bool { return doctors[i].ID < doctors[j].ID })
	return doctors, nil
}

func (r *DoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doctor, ok := r.doctors[doctorID]
	if !ok {
		return nil, nil
	}
	return &doctor, nil
}

func (r *DoctorRepository) FindByIDs(ctx context.Context, doctorIDs []string) (map[string]*models.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make(map[string]*models.Doctor, len(doctorIDs))
	for _, id := range doctorIDs {
		if doctor, ok := r.doctors[id]; ok {
			doctor := doctor
			result[id] = &doctor
		}
	}
	return result, nil
}

func (r *DoctorRepository) FindByUserID(ctx context.Context, userID string) (*models.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, doctor := range r.doctors {
		if doctor.UserID == userID {
			doctor := doctor
			return &doctor, nil
		}
	}
	return nil, nil
}

func (r *DoctorRepository) FindBySpecialization(ctx context.Context, specialization string) ([]models.Doctor, error) {
	all, _ := r.FindAll(ctx)
	doctors := make([]models.Doctor, 0)
	for _, doctor := range all {
		if strings.Contains(strings.ToLower(doctor.Specialization), strings.ToLower(specialization)) {
			doctors = append(doctors, doctor)
		}
	}
	return doctors, nil
}

func (r *DoctorRepository) UpdateByUserID(ctx context.Context, userID string, fields map[string]interface{}) (*models.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, doctor := range r.doctors {
		if doctor.UserID != userID {
			continue
		}
		if err := applyFields(&doctor, fields); err != nil {
			return nil, err
		}
		r.doctors[id] = doctor
		return &doctor, nil
	}
	return nil, nil
}

type PatientRepository struct {
	mu         sync.Mutex
	patients   map[string]models.Patient
	FailCreate bool
}

func NewPatientRepository() *PatientRepository {
	return &PatientRepository{patients: map[string]models.Patient{}}
}

func (r *PatientRepository) CreatePatient(ctx context.Context, patientModel *models.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailCreate {
		return ErrInjected
	}
	r.patients[patientModel.ID] = *patientModel
	return nil
}

func (r *PatientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	patients := make([]models.Patient, 0, len(r.patients))
	for _, patient := range r.patients {
		patients = append(patients, patient)
	}
	sort.Slice(patients, func(i, j int) bool { return patients[i].ID < patients[j].ID })
	return patients, nil
}

func (r *PatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	patient, ok := r.patients[patientID]
	if !ok {
		return nil, nil
	}
	return &patient, nil
}

func (r *PatientRepository) FindByIDs(ctx context.Context, patientIDs []string) (map[string]*models.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make(map[string]*models.Patient, len(patientIDs))
	for _, id := range patientIDs {
		if patient, ok := r.patients[id]; ok {
			patient := patient
			result[id] = &patient
		}
	}
	return result, nil
}

func (r *PatientRepository) FindByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, patient := range r.patients {
		if patient.UserID == userID {
			patient := patient
			return &patient, nil
		}
	}
	return nil, nil
}

func (r *PatientRepository) UpdateByUserID(ctx context.Context, userID string, fields map[string]interface{}) (*models.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, patient := range r.patients {
		if patient.UserID != userID {
			continue
		}
		if err := applyFields(&patient, fields); err != nil {
			return nil, err
		}
		r.patients[id] = patient
		return &patient, nil
	}
	return nil, nil
}

func (r *PatientRepository) AppendMedicalHistory(ctx context.Context, userID string, entry models.MedicalHistoryEntry) (*models.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, patient := range r.patients {
		if patient.UserID != userID {
			continue
		}
		patient.MedicalHistory = append(append([]models.MedicalHistoryEntry{}, patient.MedicalHistory...), entry)
		r.patients[id] = patient
		return &patient, nil
	}
	return nil, nil
}

type AppointmentRepository struct {
	mu           sync.Mutex
	appointments map[string]models.Appointment
}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{appointments: map[string]models.Appointment{}}
}

func (r *AppointmentRepository) CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appointments[appointmentModel.ID] = *appointmentModel
	return nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appointment, ok := r.appointments[appointmentID]
	if !ok {
		return nil, nil
	}
	return &appointment, nil
}

func (r *AppointmentRepository) FindAll(ctx context.Context, filter contracts.AppointmentFilter) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appointments := make([]models.Appointment, 0)
	for _, appointment := range r.appointments {
		if filter.PatientID != "" && appointment.PatientID != filter.PatientID {
			continue
		}
		if filter.DoctorID != "" && appointment.DoctorID != filter.DoctorID {
			continue
		}
		appointments = append(appointments, appointment)
	}
	sort.SliceStable(appointments, func(i, j int) bool {
		if !appointments[i].AppointmentDate.Equal(appointments[j].AppointmentDate) {
			return appointments[i].AppointmentDate.Before(appointments[j].AppointmentDate)
		}
		return appointments[i].AppointmentTime < appointments[j].AppointmentTime
	})
	return appointments, nil
}

func (r *AppointmentRepository) TransitionStatus(ctx context.Context, appointmentID, newStatus string, notes *string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appointment, ok := r.appointments[appointmentID]
	if !ok || appointment.IsTerminal() {
		return nil, nil
	}
	appointment.Status = newStatus
	if notes != nil {
		appointment.Notes = *notes
	}
	appointment.SetUpdatedAt()
	r.appointments[appointmentID] = appointment
	return &appointment, nil
}

type RedisRepository struct {
	mu     sync.Mutex
	values map[string]string
}

func NewRedisRepository() *RedisRepository {
	return &RedisRepository{values: map[string]string{}}
}

func (r *RedisRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, key)
	return nil
}

func (r *RedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = string(data)
	return nil
}

func (r *RedisRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.values[key], nil
}

func (r *RedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int
	if current, ok := r.values[key]; ok {
		json.Unmarshal([]byte(current), &count)
	}
	count++
	data, _ := json.Marshal(count)
	r.values[key] = string(data)
	return count, nil
}

func (r *RedisRepository) Ping(ctx context.Context) error {
	return nil
}

type Storage struct {
	mu      sync.Mutex
	Objects map[string][]byte
}

func NewStorage() *Storage {
	return &Storage{Objects: map[string][]byte{}}
}

func (s *Storage) UploadFile(ctx context.Context, data []byte, contentType, bucketName, objectName string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Objects[bucketName+"/"+objectName] = data
	return objectName, nil
}

func (s *Storage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	return "https://storage.test/" + bucketName + "/" + objectName, nil
}

func (s *Storage) BucketExists(ctx context.Context, bucketName string) error {
	return nil
}

type EventPublisher struct {
	mu       sync.Mutex
	Events   []models.AppointmentEvent
	FailNext bool
}

func (p *EventPublisher) PublishAppointmentEvent(ctx context.Context, event *models.AppointmentEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.FailNext {
		p.FailNext = false
		return ErrInjected
	}
	p.Events = append(p.Events, *event)
	return nil
}

func (p *EventPublisher) Published() []models.AppointmentEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.AppointmentEvent{}, p.Events...)
}
