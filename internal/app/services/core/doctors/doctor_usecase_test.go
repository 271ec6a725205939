package doctors

import (
	"context"
	"hospital-service/internal/app/services/testutil"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDoctorUsecaseForTest(t *testing.T, store *testutil.Store) *doctorUsecase {
	return NewDoctorUsecase(store.Doctors, store.Users, testutil.NewPolicy(t), zap.NewNop()).(*doctorUsecase)
}

func TestListDoctors_JoinsOwnerFields(t *testing.T) {
	store := testutil.NewStore()
	_, doctor := store.SeedDoctor(t, "bob", "Cardiology")
	uc := newDoctorUsecaseForTest(t, store)

	doctors, err := uc.ListDoctors(context.Background())

	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, doctor.ID, doctors[0].ID)
	assert.Equal(t, "bob", doctors[0].FirstName)
	assert.Equal(t, "bob@hospital.test", doctors[0].Email)
	assert.Equal(t, "Cardiology", doctors[0].Specialization)
}

func TestGetDoctorByID(t *testing.T) {
	store := testutil.NewStore()
	_, doctor := store.SeedDoctor(t, "bob", "Cardiology")
	uc := newDoctorUsecaseForTest(t, store)

	found, err := uc.GetDoctorByID(context.Background(), doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, doctor.ID, found.ID)

	_, err = uc.GetDoctorByID(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
}

func TestSearchBySpecialization_CaseInsensitiveSubstring(t *testing.T) {
	store := testutil.NewStore()
	store.SeedDoctor(t, "bob", "Cardiology")
	store.SeedDoctor(t, "dave", "Pediatric Cardiology")
	store.SeedDoctor(t, "erin", "Dermatology")
	uc := newDoctorUsecaseForTest(t, store)

	doctors, err := uc.SearchBySpecialization(context.Background(), "CARDIO")
	require.NoError(t, err)
	assert.Len(t, doctors, 2)

	doctors, err = uc.SearchBySpecialization(context.Background(), "neuro")
	require.NoError(t, err)
	assert.Empty(t, doctors)
}

func TestUpdateOwnProfile_OnlyPresentFieldsChange(t *testing.T) {
	store := testutil.NewStore()
	user, doctor := store.SeedDoctor(t, "bob", "Cardiology")
	uc := newDoctorUsecaseForTest(t, store)

	experience := 12
	updated, err := uc.UpdateOwnProfile(context.Background(), testutil.SessionFor(user), &requests.UpdateDoctorProfile{
		Experience: &experience,
		Schedule: []requests.ScheduleSlot{
			{Day: "Tuesday", StartTime: "08:00", EndTime: "12:00"},
			{Day: "Friday", StartTime: "13:00", EndTime: "18:00"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, doctor.ID, updated.ID)
	assert.Equal(t, 12, updated.Experience)
	assert.Equal(t, "Cardiology", updated.Specialization)
	assert.Equal(t, doctor.Qualification, updated.Qualification)
	assert.Equal(t, doctor.Phone, updated.Phone)
	require.Len(t, updated.Schedule, 2)
	assert.Equal(t, "Tuesday", updated.Schedule[0].Day)
	assert.Equal(t, "Friday", updated.Schedule[1].Day)
}

func TestUpdateOwnProfile_Rejections(t *testing.T) {
	store := testutil.NewStore()
	doctorUser, _ := store.SeedDoctor(t, "bob", "Cardiology")
	patientUser, _ := store.SeedPatient(t, "alice")
	orphan := store.SeedUser(t, "ghost", constvars.RoleDoctor)
	uc := newDoctorUsecaseForTest(t, store)

	empty := ""
	tests := []struct {
		name    string
		session string
		request *requests.UpdateDoctorProfile
		want    int
	}{
		{name: "patient cannot update a doctor profile", session: patientUser.ID, request: &requests.UpdateDoctorProfile{}, want: constvars.StatusForbidden},
		{name: "empty specialization", session: doctorUser.ID, request: &requests.UpdateDoctorProfile{Specialization: &empty}, want: constvars.StatusBadRequest},
		{name: "end before start", session: doctorUser.ID, request: &requests.UpdateDoctorProfile{Schedule: []requests.ScheduleSlot{
			{Day: "Monday", StartTime: "12:00", EndTime: "09:00"},
		}}, want: constvars.StatusBadRequest},
		{name: "doctor without profile", session: orphan.ID, request: &requests.UpdateDoctorProfile{}, want: constvars.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := store.Users.FindByID(context.Background(), tt.session)
			require.NoError(t, err)

			_, err = uc.UpdateOwnProfile(context.Background(), testutil.SessionFor(user), tt.request)
			require.Error(t, err)
			assert.Equal(t, tt.want, exceptions.StatusCodeOf(err))
		})
	}
}
