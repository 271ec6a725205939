package appointments

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/app/services/testutil"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type appointmentFixture struct {
	store   *testutil.Store
	usecase contracts.AppointmentUsecase

	alice        *models.Session
	alicePatient *models.Patient
	carol        *models.Session
	bob          *models.Session
	bobDoctor    *models.Doctor
	dave         *models.Session
	daveDoctor   *models.Doctor
	admin        *models.Session
}

func newAppointmentFixture(t *testing.T) *appointmentFixture {
	store := testutil.NewStore()
	f := &appointmentFixture{store: store}

	aliceUser, alicePatient := store.SeedPatient(t, "alice")
	carolUser, _ := store.SeedPatient(t, "carol")
	bobUser, bobDoctor := store.SeedDoctor(t, "bob", "Cardiology")
	daveUser, daveDoctor := store.SeedDoctor(t, "dave", "Dermatology")
	adminUser := store.SeedUser(t, "root", constvars.RoleAdmin)

	f.alice, f.alicePatient = testutil.SessionFor(aliceUser), alicePatient
	f.carol = testutil.SessionFor(carolUser)
	f.bob, f.bobDoctor = testutil.SessionFor(bobUser), bobDoctor
	f.dave, f.daveDoctor = testutil.SessionFor(daveUser), daveDoctor
	f.admin = testutil.SessionFor(adminUser)

	f.usecase = NewAppointmentUsecase(
		store.Appointments,
		store.Patients,
		store.Doctors,
		store.Users,
		testutil.NewPolicy(t),
		store.Events,
		zap.NewNop(),
	)
	return f
}

func (f *appointmentFixture) book(t *testing.T, patient *models.Session, doctor *models.Doctor, date, time, reason string) string {
	t.Helper()
	created, err := f.usecase.CreateAppointment(context.Background(), patient, &requests.CreateAppointment{
		DoctorID:        doctor.ID,
		AppointmentDate: date,
		AppointmentTime: time,
		Reason:          reason,
	})
	require.NoError(t, err)
	return created.ID
}

func statusCode(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	return exceptions.StatusCodeOf(err)
}

func TestCreateAppointment_BooksScheduledAppointment(t *testing.T) {
	f := newAppointmentFixture(t)

	created, err := f.usecase.CreateAppointment(context.Background(), f.alice, &requests.CreateAppointment{
		DoctorID:        f.bobDoctor.ID,
		AppointmentDate: "2025-06-01",
		AppointmentTime: "10:00",
		Reason:          "checkup",
	})

	require.NoError(t, err)
	assert.Equal(t, constvars.AppointmentStatusScheduled, created.Status)
	assert.Equal(t, f.alicePatient.ID, created.PatientID)
	assert.Equal(t, f.bobDoctor.ID, created.DoctorID)
	assert.Equal(t, "2025-06-01", created.AppointmentDate)
	assert.Equal(t, "10:00", created.AppointmentTime)
	require.NotNil(t, created.Doctor)
	assert.Equal(t, "bob", created.Doctor.FirstName)
	assert.Equal(t, "Cardiology", created.Doctor.Specialization)
	require.NotNil(t, created.Patient)
	assert.Equal(t, "alice@hospital.test", created.Patient.Email)

	events := f.store.Events.Published()
	require.Len(t, events, 1)
	assert.Equal(t, constvars.AppointmentEventCreated, events[0].Type)
	assert.Equal(t, created.ID, events[0].AppointmentID)
	assert.Equal(t, constvars.AppointmentStatusScheduled, events[0].ToStatus)
}

func TestCreateAppointment_Rejections(t *testing.T) {
	f := newAppointmentFixture(t)
	valid := func() *requests.CreateAppointment {
		return &requests.CreateAppointment{
			DoctorID:        f.bobDoctor.ID,
			AppointmentDate: "2025-06-01",
			AppointmentTime: "10:00",
			Reason:          "checkup",
		}
	}

	tests := []struct {
		name    string
		session *models.Session
		mutate  func(*requests.CreateAppointment)
		want    int
	}{
		{name: "doctor cannot book", session: f.bob, want: constvars.StatusForbidden},
		{name: "admin cannot book", session: f.admin, want: constvars.StatusForbidden},
		{name: "unknown doctor", session: f.alice, mutate: func(r *requests.CreateAppointment) {
			r.DoctorID = "6f1c8a4e-3b7d-4c2a-9e5f-0a1b2c3d4e5f"
		}, want: constvars.StatusNotFound},
		{name: "malformed time", session: f.alice, mutate: func(r *requests.CreateAppointment) {
			r.AppointmentTime = "25:00"
		}, want: constvars.StatusBadRequest},
		{name: "missing reason", session: f.alice, mutate: func(r *requests.CreateAppointment) {
			r.Reason = ""
		}, want: constvars.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := valid()
			if tt.mutate != nil {
				tt.mutate(request)
			}
			_, err := f.usecase.CreateAppointment(context.Background(), tt.session, request)
			assert.Equal(t, tt.want, statusCode(t, err))
		})
	}
	assert.Empty(t, f.store.Events.Published())
}

func TestCreateAppointment_PatientWithoutProfile(t *testing.T) {
	f := newAppointmentFixture(t)
	orphan := testutil.SessionFor(f.store.SeedUser(t, "orphan", constvars.RolePatient))

	_, err := f.usecase.CreateAppointment(context.Background(), orphan, &requests.CreateAppointment{
		DoctorID:        f.bobDoctor.ID,
		AppointmentDate: "2025-06-01",
		AppointmentTime: "10:00",
		Reason:          "checkup",
	})
	assert.Equal(t, constvars.StatusNotFound, statusCode(t, err))
}

func TestListAppointments_ScopedPerCaller(t *testing.T) {
	f := newAppointmentFixture(t)
	ctx := context.Background()

	a1 := f.book(t, f.alice, f.bobDoctor, "2025-06-02", "09:00", "follow-up")
	a2 := f.book(t, f.alice, f.daveDoctor, "2025-06-01", "11:00", "rash")
	c1 := f.book(t, f.carol, f.bobDoctor, "2025-06-01", "08:30", "checkup")

	ids := func(session *models.Session) []string {
		list, err := f.usecase.ListAppointments(ctx, session)
		require.NoError(t, err)
		result := make([]string, 0, len(list))
		for _, item := range list {
			result = append(result, item.ID)
		}
		return result
	}

	assert.Equal(t, []string{a2, a1}, ids(f.alice))
	assert.Equal(t, []string{c1}, ids(f.carol))
	assert.Equal(t, []string{c1, a1}, ids(f.bob))
	assert.Equal(t, []string{a2}, ids(f.dave))
	assert.Equal(t, []string{c1, a2, a1}, ids(f.admin))
}

func TestListAppointments_RoundTripKeepsFields(t *testing.T) {
	f := newAppointmentFixture(t)
	id := f.book(t, f.alice, f.bobDoctor, "2025-06-01", "10:00", "checkup")

	list, err := f.usecase.ListAppointments(context.Background(), f.alice)

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, constvars.AppointmentStatusScheduled, list[0].Status)
	assert.Equal(t, "checkup", list[0].Reason)
	assert.Equal(t, "2025-06-01", list[0].AppointmentDate)
	assert.Equal(t, "10:00", list[0].AppointmentTime)
}

func TestListAppointments_DoctorWithoutProfile(t *testing.T) {
	f := newAppointmentFixture(t)
	orphan := testutil.SessionFor(f.store.SeedUser(t, "ghost", constvars.RoleDoctor))

	_, err := f.usecase.ListAppointments(context.Background(), orphan)
	assert.Equal(t, constvars.StatusNotFound, statusCode(t, err))
}

func TestScenario_PatientBooksDoctorCompletes(t *testing.T) {
	f := newAppointmentFixture(t)
	ctx := context.Background()

	id := f.book(t, f.alice, f.bobDoctor, "2025-06-01", "10:00", "checkup")

	notes := "all good"
	updated, err := f.usecase.UpdateAppointmentStatus(ctx, f.bob, id, &requests.UpdateAppointmentStatus{
		Status: constvars.AppointmentStatusCompleted,
		Notes:  &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, constvars.AppointmentStatusCompleted, updated.Status)

	list, err := f.usecase.ListAppointments(ctx, f.alice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, constvars.AppointmentStatusCompleted, list[0].Status)
	assert.Equal(t, "all good", list[0].Notes)

	events := f.store.Events.Published()
	require.Len(t, events, 2)
	assert.Equal(t, constvars.AppointmentEventStatusChanged, events[1].Type)
	assert.Equal(t, constvars.AppointmentStatusScheduled, events[1].FromStatus)
	assert.Equal(t, constvars.AppointmentStatusCompleted, events[1].ToStatus)
	assert.Equal(t, f.bob.UserID, events[1].ActorID)
}

func TestUpdateAppointmentStatus_PatientAlwaysForbidden(t *testing.T) {
	f := newAppointmentFixture(t)
	id := f.book(t, f.alice, f.bobDoctor, "2025-06-01", "10:00", "checkup")

	_, err := f.usecase.UpdateAppointmentStatus(context.Background(), f.alice, id, &requests.UpdateAppointmentStatus{
		Status: constvars.AppointmentStatusCancelled,
	})
	assert.Equal(t, constvars.StatusForbidden, statusCode(t, err))

	// the role gate runs before the lookup, so an unknown id is still 403
	_, err = f.usecase.UpdateAppointmentStatus(context.Background(), f.alice, "missing", &requests.UpdateAppointmentStatus{
		Status: "bogus",
	})
	assert.Equal(t, constvars.StatusForbidden, statusCode(t, err))
}

func TestUpdateAppointmentStatus_Rejections(t *testing.T) {
	f := newAppointmentFixture(t)
	ctx := context.Background()
	id := f.book(t, f.alice, f.bobDoctor, "2025-06-01", "10:00", "checkup")

	_, err := f.usecase.UpdateAppointmentStatus(ctx, f.bob, id, &requests.UpdateAppointmentStatus{Status: "scheduled"})
	assert.Equal(t, constvars.StatusBadRequest, statusCode(t, err))

	_, err = f.usecase.UpdateAppointmentStatus(ctx, f.bob, "c0ffee00-0000-4000-8000-000000000000", &requests.UpdateAppointmentStatus{Status: "completed"})
	assert.Equal(t, constvars.StatusNotFound, statusCode(t, err))

	_, err = f.usecase.UpdateAppointmentStatus(ctx, f.dave, id, &requests.UpdateAppointmentStatus{Status: "completed"})
	assert.Equal(t, constvars.StatusForbidden, statusCode(t, err), "only the assigned doctor may update")

	stored, err := f.store.Appointments.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, constvars.AppointmentStatusScheduled, stored.Status)
}

func TestUpdateAppointmentStatus_TerminalStatesAreFinal(t *testing.T) {
	for _, terminal := range []string{constvars.AppointmentStatusCompleted, constvars.AppointmentStatusCancelled} {
		t.Run(terminal, func(t *testing.T) {
			f := newAppointmentFixture(t)
			ctx := context.Background()
			id := f.book(t, f.alice, f.bobDoctor, "2025-06-01", "10:00", "checkup")

			_, err := f.usecase.UpdateAppointmentStatus(ctx, f.admin, id, &requests.UpdateAppointmentStatus{Status: terminal})
			require.NoError(t, err)

			for _, next := range []string{constvars.AppointmentStatusCompleted, constvars.AppointmentStatusCancelled} {
				_, err = f.usecase.UpdateAppointmentStatus(ctx, f.admin, id, &requests.UpdateAppointmentStatus{Status: next})
				assert.Equal(t, constvars.StatusConflict, statusCode(t, err))
			}
			_, err = f.usecase.CancelAppointment(ctx, f.alice, id)
			assert.Equal(t, constvars.StatusConflict, statusCode(t, err))

			stored, err := f.store.Appointments.FindByID(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, terminal, stored.Status)
		})
	}
}

func TestUpdateAppointmentStatus_ConcurrentTransitionsSettleOnce(t *testing.T) {
	f := newAppointmentFixture(t)
	ctx := context.Background()
	id := f.book(t, f.alice, f.bobDoctor, "2025-06-01", "10:00", "checkup")

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		status := constvars.AppointmentStatusCompleted
		if i%2 == 0 {
			status = constvars.AppointmentStatusCancelled
		}
		wg.Add(1)
		go func(status string) {
			defer wg.Done()
			_, err := f.usecase.UpdateAppointmentStatus(ctx, f.admin, id, &requests.UpdateAppointmentStatus{Status: status})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
			} else if exceptions.StatusCodeOf(err) == constvars.StatusConflict {
				conflicts++
			}
		}(status)
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, conflicts)
}

func TestCancelAppointment(t *testing.T) {
	t.Run("booking patient cancels and the record is kept", func(t *testing.T) {
		f := newAppointmentFixture(t)
		id := f.book(t, f.alice, f.bobDoctor, "2025-06-01", "10:00", "checkup")

		cancelled, err := f.usecase.CancelAppointment(context.Background(), f.alice, id)

		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCancelled, cancelled.Status)
		list, err := f.usecase.ListAppointments(context.Background(), f.alice)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, constvars.AppointmentStatusCancelled, list[0].Status)
	})

	t.Run("other patient is forbidden", func(t *testing.T) {
		f := newAppointmentFixture(t)
		id := f.book(t, f.alice, f.bobDoctor, "2025-06-01", "10:00", "checkup")

		_, err := f.usecase.CancelAppointment(context.Background(), f.carol, id)
		assert.Equal(t, constvars.StatusForbidden, statusCode(t, err))
	})

	t.Run("assigned doctor cancels, other doctor is forbidden", func(t *testing.T) {
		f := newAppointmentFixture(t)
		id := f.book(t, f.alice, f.bobDoctor, "2025-06-01", "10:00", "checkup")

		_, err := f.usecase.CancelAppointment(context.Background(), f.dave, id)
		assert.Equal(t, constvars.StatusForbidden, statusCode(t, err))

		_, err = f.usecase.CancelAppointment(context.Background(), f.bob, id)
		assert.NoError(t, err)
	})

	t.Run("admin cancels any", func(t *testing.T) {
		f := newAppointmentFixture(t)
		id := f.book(t, f.alice, f.bobDoctor, "2025-06-01", "10:00", "checkup")

		_, err := f.usecase.CancelAppointment(context.Background(), f.admin, id)
		assert.NoError(t, err)
	})

	t.Run("unknown id", func(t *testing.T) {
		f := newAppointmentFixture(t)

		_, err := f.usecase.CancelAppointment(context.Background(), f.alice, "c0ffee00-0000-4000-8000-000000000000")
		assert.Equal(t, constvars.StatusNotFound, statusCode(t, err))
	})
}

func TestPublishFailureDoesNotFailTheRequest(t *testing.T) {
	f := newAppointmentFixture(t)
	f.store.Events.FailNext = true

	created, err := f.usecase.CreateAppointment(context.Background(), f.alice, &requests.CreateAppointment{
		DoctorID:        f.bobDoctor.ID,
		AppointmentDate: "2025-06-01",
		AppointmentTime: "10:00",
		Reason:          "checkup",
	})

	require.NoError(t, err)
	stored, err := f.store.Appointments.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored)
	assert.Empty(t, f.store.Events.Published())
}
