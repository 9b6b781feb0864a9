package patient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/patient"
	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

type fakeRepo struct {
	patients map[uint]*models.Patient
	history  map[uint]*models.MedicalHistory
	nextID   uint
	deleted  []uint
	filter   domain.ListFilter
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		patients: map[uint]*models.Patient{},
		history:  map[uint]*models.MedicalHistory{},
		nextID:   1,
	}
}

func (f *fakeRepo) CreatePatient(_ context.Context, p *models.Patient) error {
	p.ID = f.nextID
	f.nextID++
	cp := *p
	f.patients[p.ID] = &cp
	return nil
}

func (f *fakeRepo) GetPatient(_ context.Context, id uint) (*models.Patient, error) {
	p, ok := f.patients[id]
	if !ok {
		return nil, httperr.ErrBusiness("patient_not_found")
	}
	cp := *p
	return &cp, nil
}

func (f *fakeRepo) UpdatePatient(_ context.Context, p *models.Patient) error {
	cp := *p
	f.patients[p.ID] = &cp
	return nil
}

func (f *fakeRepo) DeletePatient(_ context.Context, p *models.Patient) error {
	delete(f.patients, p.ID)
	delete(f.history, p.ID)
	f.deleted = append(f.deleted, p.ID)
	return nil
}

func (f *fakeRepo) ListPatients(_ context.Context, lf domain.ListFilter) ([]models.Patient, int64, error) {
	f.filter = lf
	var out []models.Patient
	for _, p := range f.patients {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) GetMedicalHistory(_ context.Context, patientID uint) (*models.MedicalHistory, error) {
	mh, ok := f.history[patientID]
	if !ok {
		return nil, httperr.ErrBusiness("medical_history_not_found")
	}
	return mh, nil
}

func (f *fakeRepo) UpsertMedicalHistory(_ context.Context, mh *models.MedicalHistory) error {
	if cur, ok := f.history[mh.PatientID]; ok {
		mh.ID = cur.ID
	} else {
		mh.ID = uint(len(f.history) + 1)
	}
	cp := *mh
	f.history[mh.PatientID] = &cp
	return nil
}

type fakeCache struct{ invalidated int }

func (c *fakeCache) Invalidate(context.Context) { c.invalidated++ }

func strPtr(s string) *string { return &s }

var today = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func TestCreatePatient(t *testing.T) {
	repo := newFakeRepo()
	cache := &fakeCache{}
	uc := NewCreatePatient(repo, cache)
	uc.now = func() time.Time { return today }

	p, err := uc.Execute(context.Background(), PatientInput{
		Name:        strPtr("  Maria Silva "),
		Phone:       strPtr("(11) 98888-7777"),
		Gender:      strPtr("Female"),
		Email:       strPtr("Maria@Example.com"),
		DateOfBirth: strPtr("1990-02-03"),
		BloodGroup:  strPtr("o+"),
		EmergencyContact: &models.EmergencyContact{
			Name:     "João",
			Relation: "husband",
			Phone:    "11 97777-6666",
		},
	}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, uint(1), p.ID)
	assert.Equal(t, "Maria Silva", p.Name)
	assert.Equal(t, "11988887777", p.Phone)
	assert.Equal(t, "female", p.Gender)
	assert.Equal(t, "maria@example.com", p.Email)
	assert.Equal(t, "O+", p.BloodGroup)
	assert.Equal(t, "user-1", p.CreatedBy)
	assert.Equal(t, "11977776666", p.EmergencyContact.Data().Phone)
	require.NotNil(t, p.DateOfBirth)
	assert.Equal(t, "1990-02-03", p.DateOfBirth.Format("2006-01-02"))
	assert.Equal(t, 1, cache.invalidated)
}

func TestCreatePatient_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   PatientInput
		code string
	}{
		{"missing name", PatientInput{Phone: strPtr("11988887777")}, "invalid_name"},
		{"blank name", PatientInput{Name: strPtr("  "), Phone: strPtr("11988887777")}, "invalid_name"},
		{"missing phone", PatientInput{Name: strPtr("Ana")}, "invalid_phone"},
		{"bad phone", PatientInput{Name: strPtr("Ana"), Phone: strPtr("123")}, "invalid_phone"},
		{"bad gender", PatientInput{Name: strPtr("Ana"), Phone: strPtr("11988887777"), Gender: strPtr("x")}, "invalid_gender"},
		{"bad email", PatientInput{Name: strPtr("Ana"), Phone: strPtr("11988887777"), Email: strPtr("ana@")}, "invalid_email"},
		{"future birth", PatientInput{Name: strPtr("Ana"), Phone: strPtr("11988887777"), DateOfBirth: strPtr("2030-01-01")}, "invalid_date_of_birth"},
		{"bad blood group", PatientInput{Name: strPtr("Ana"), Phone: strPtr("11988887777"), BloodGroup: strPtr("C+")}, "invalid_blood_group"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreatePatient(newFakeRepo(), &fakeCache{})
			uc.now = func() time.Time { return today }

			_, err := uc.Execute(context.Background(), tt.in, "")
			assert.Equal(t, tt.code, httperr.BusinessCode(err))
		})
	}
}

func TestUpdatePatient_Partial(t *testing.T) {
	repo := newFakeRepo()
	dob := time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.patients[1] = &models.Patient{ID: 1, Name: "Ana", Phone: "11988887777", Gender: "female", DateOfBirth: &dob}

	uc := NewUpdatePatient(repo, &fakeCache{})
	uc.now = func() time.Time { return today }

	p, err := uc.Execute(context.Background(), 1, PatientInput{
		Occupation:  strPtr(" engineer "),
		DateOfBirth: strPtr(""),
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana", p.Name)
	assert.Equal(t, "female", p.Gender)
	assert.Equal(t, "engineer", p.Occupation)
	assert.Nil(t, p.DateOfBirth)

	_, err = uc.Execute(context.Background(), 2, PatientInput{})
	assert.Equal(t, "patient_not_found", httperr.BusinessCode(err))
}

func TestDeletePatient(t *testing.T) {
	repo := newFakeRepo()
	repo.patients[4] = &models.Patient{ID: 4, Name: "Ana"}
	cache := &fakeCache{}

	uc := NewDeletePatient(repo, cache)
	require.NoError(t, uc.Execute(context.Background(), 4))
	assert.Equal(t, []uint{4}, repo.deleted)
	assert.Equal(t, 1, cache.invalidated)

	assert.Equal(t, "patient_not_found", httperr.BusinessCode(uc.Execute(context.Background(), 4)))
}

func TestListPatients_GenderFilter(t *testing.T) {
	repo := newFakeRepo()
	uc := NewListPatients(repo)

	_, _, err := uc.Execute(context.Background(), domain.ListFilter{Gender: " MALE "})
	require.NoError(t, err)
	assert.Equal(t, "male", repo.filter.Gender)

	_, _, err = uc.Execute(context.Background(), domain.ListFilter{Gender: "robot"})
	assert.Equal(t, "invalid_gender", httperr.BusinessCode(err))
}

func TestMedicalHistory_Upsert(t *testing.T) {
	repo := newFakeRepo()
	repo.patients[1] = &models.Patient{ID: 1, Name: "Ana"}

	get := NewGetMedicalHistory(repo)
	_, err := get.Execute(context.Background(), 1)
	assert.Equal(t, "medical_history_not_found", httperr.BusinessCode(err))

	upsert := NewUpsertMedicalHistory(repo)
	first, err := upsert.Execute(context.Background(), 1, models.MedicalHistory{Diabetes: true, CurrentMedications: " metformin "})
	require.NoError(t, err)
	assert.Equal(t, uint(1), first.PatientID)
	assert.Equal(t, "metformin", first.CurrentMedications)

	second, err := upsert.Execute(context.Background(), 1, models.MedicalHistory{Hypertension: true})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	got, err := get.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, got.Diabetes)
	assert.True(t, got.Hypertension)

	_, err = upsert.Execute(context.Background(), 9, models.MedicalHistory{})
	assert.Equal(t, "patient_not_found", httperr.BusinessCode(err))
}

type fakeStore struct {
	key         string
	contentType string
	err         error
}

func (s *fakeStore) Put(_ context.Context, key string, _ []byte, contentType string) (string, error) {
	s.key = key
	s.contentType = contentType
	return "https://cdn.example/" + key, s.err
}

type fakeEncoder struct{ err error }

func (e fakeEncoder) Encode(data []byte) ([]byte, string, error) {
	if e.err != nil {
		return nil, "", e.err
	}
	return data, "image/webp", nil
}

func TestUploadPatientPhoto(t *testing.T) {
	repo := newFakeRepo()
	repo.patients[3] = &models.Patient{ID: 3, Name: "Ana"}
	store := &fakeStore{}

	uc := NewUploadPatientPhoto(repo, store, fakeEncoder{}, 10)
	uc.now = func() time.Time { return today }

	p, err := uc.Execute(context.Background(), 3, []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/"+store.key, p.PhotoURL)
	assert.Equal(t, "image/webp", store.contentType)
	assert.Equal(t, p.PhotoURL, repo.patients[3].PhotoURL)

	_, err = uc.Execute(context.Background(), 3, []byte("way too large payload"))
	assert.Equal(t, "photo_too_large", httperr.BusinessCode(err))

	_, err = uc.Execute(context.Background(), 8, []byte("img"))
	assert.Equal(t, "patient_not_found", httperr.BusinessCode(err))

	bad := NewUploadPatientPhoto(repo, store, fakeEncoder{err: domain.ErrInvalidImage}, 0)
	_, err = bad.Execute(context.Background(), 3, []byte("img"))
	assert.Equal(t, "invalid_image", httperr.BusinessCode(err))

	failing := NewUploadPatientPhoto(repo, &fakeStore{err: errors.New("s3 down")}, fakeEncoder{}, 0)
	_, err = failing.Execute(context.Background(), 3, []byte("img"))
	assert.Error(t, err)
	assert.Empty(t, httperr.BusinessCode(err))

	noStore := NewUploadPatientPhoto(repo, nil, fakeEncoder{}, 0)
	_, err = noStore.Execute(context.Background(), 3, []byte("img"))
	assert.Equal(t, "storage_unavailable", httperr.BusinessCode(err))
}
