package patients

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

func TestUpdateOwnProfile_PreservesAbsentFieldsAndHistory(t *testing.T) {
	store := testutil.NewStore()
	user, patient := store.SeedPatient(t, "alice")
	uc := NewPatientUsecase(store.Patients, store.Users, testutil.NewPolicy(t), zap.NewNop())
	session := testutil.SessionFor(user)
	ctx := context.Background()

	_, err := uc.AppendMedicalHistory(ctx, session, &requests.AppendMedicalHistory{
		Condition: "Asthma",
		Date:      "2020-03-04",
	})
	require.NoError(t, err)

	address := "22 Side Road"
	updated, err := uc.UpdateOwnProfile(ctx, session, &requests.UpdatePatientProfile{
		Address: &address,
		EmergencyContact: &requests.EmergencyContact{
			Name:     "Bob",
			Phone:    "+15550003",
			Relation: "brother",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, patient.ID, updated.ID)
	assert.Equal(t, "22 Side Road", updated.Address)
	assert.Equal(t, patient.Phone, updated.Phone)
	assert.Equal(t, "1990-01-01", updated.DateOfBirth)
	require.NotNil(t, updated.EmergencyContact)
	assert.Equal(t, "brother", updated.EmergencyContact.Relation)
	require.Len(t, updated.MedicalHistory, 1)
	assert.Equal(t, "Asthma", updated.MedicalHistory[0].Condition)
}

func TestAppendMedicalHistory_KeepsOrder(t *testing.T) {
	store := testutil.NewStore()
	user, _ := store.SeedPatient(t, "alice")
	uc := NewPatientUsecase(store.Patients, store.Users, testutil.NewPolicy(t), zap.NewNop())
	session := testutil.SessionFor(user)

	for _, condition := range []string{"Flu", "Sprain", "Migraine"} {
		_, err := uc.AppendMedicalHistory(context.Background(), session, &requests.AppendMedicalHistory{
			Condition: condition,
			Date:      "2021-01-01",
		})
		require.NoError(t, err)
	}

	stored, err := store.Patients.FindByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, stored.MedicalHistory, 3)
	assert.Equal(t, "Flu", stored.MedicalHistory[0].Condition)
	assert.Equal(t, "Sprain", stored.MedicalHistory[1].Condition)
	assert.Equal(t, "Migraine", stored.MedicalHistory[2].Condition)
}

func TestAppendMedicalHistory_Rejections(t *testing.T) {
	store := testutil.NewStore()
	patientUser, _ := store.SeedPatient(t, "alice")
	doctorUser, _ := store.SeedDoctor(t, "bob", "Cardiology")
	uc := NewPatientUsecase(store.Patients, store.Users, testutil.NewPolicy(t), zap.NewNop())

	_, err := uc.AppendMedicalHistory(context.Background(), testutil.SessionFor(doctorUser), &requests.AppendMedicalHistory{
		Condition: "Flu",
		Date:      "2021-01-01",
	})
	assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCodeOf(err))

	_, err = uc.AppendMedicalHistory(context.Background(), testutil.SessionFor(patientUser), &requests.AppendMedicalHistory{
		Condition: "Flu",
		Date:      "01/01/2021",
	})
	assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
}

func TestPatientRecords_OnlyAdminAndDoctor(t *testing.T) {
	store := testutil.NewStore()
	patientUser, patient := store.SeedPatient(t, "alice")
	doctorUser, _ := store.SeedDoctor(t, "bob", "Cardiology")
	adminUser := store.SeedUser(t, "root", constvars.RoleAdmin)
	uc := NewPatientUsecase(store.Patients, store.Users, testutil.NewPolicy(t), zap.NewNop())
	ctx := context.Background()

	for _, caller := range []string{doctorUser.ID, adminUser.ID} {
		user, err := store.Users.FindByID(ctx, caller)
		require.NoError(t, err)

		list, err := uc.ListPatients(ctx, testutil.SessionFor(user))
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "alice", list[0].FirstName)

		found, err := uc.GetPatientByID(ctx, testutil.SessionFor(user), patient.ID)
		require.NoError(t, err)
		assert.Equal(t, patient.ID, found.ID)
	}

	_, err := uc.ListPatients(ctx, testutil.SessionFor(patientUser))
	assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCodeOf(err))

	_, err = uc.GetPatientByID(ctx, testutil.SessionFor(doctorUser), "missing")
	assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
}
