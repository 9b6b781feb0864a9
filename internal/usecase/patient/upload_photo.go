package patient

import (
	"context"
	"errors"
	"time"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/patient"
	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

type UploadPatientPhoto struct {
	repo     domain.Repository
	store    domain.PhotoStore
	encoder  domain.PhotoEncoder
	maxBytes int64
	now      func() time.Time
}

// NewUploadPatientPhoto accepts a nil store; uploads then fail with
// storage_unavailable.
func NewUploadPatientPhoto(
	repo domain.Repository,
	store domain.PhotoStore,
	encoder domain.PhotoEncoder,
	maxBytes int64,
) *UploadPatientPhoto {
	return &UploadPatientPhoto{
		repo:     repo,
		store:    store,
		encoder:  encoder,
		maxBytes: maxBytes,
		now:      time.Now,
	}
}

func (uc *UploadPatientPhoto) Execute(
	ctx context.Context,
	patientID uint,
	data []byte,
) (*models.Patient, error) {

	// --------------------------------------------------
	// 1️⃣ Storage and size
	// --------------------------------------------------
	if uc.store == nil {
		return nil, httperr.ErrBusiness("storage_unavailable")
	}
	if len(data) == 0 {
		return nil, httperr.ErrBusiness("invalid_image")
	}
	if uc.maxBytes > 0 && int64(len(data)) > uc.maxBytes {
		return nil, httperr.ErrBusiness("photo_too_large")
	}

	p, err := uc.repo.GetPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Normalize (resize + webp)
	// --------------------------------------------------
	encoded, contentType, err := uc.encoder.Encode(data)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidImage) {
			return nil, httperr.ErrBusiness("invalid_image")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Store and link
	// --------------------------------------------------
	url, err := uc.store.Put(ctx, domain.PhotoKey(p.ID, uc.now()), encoded, contentType)
	if err != nil {
		return nil, err
	}

	p.PhotoURL = url
	if err := uc.repo.UpdatePatient(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
