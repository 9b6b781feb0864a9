package visit

import (
	"context"
	"time"

	"github.com/BruksfildServices01/dental-clinic/internal/domain/analytics"
	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/visit"
	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
	"github.com/BruksfildServices01/dental-clinic/internal/timezone"
)

type CreateVisit struct {
	repo  domain.Repository
	cache analytics.Invalidator
	now   func() time.Time
}

func NewCreateVisit(repo domain.Repository, cache analytics.Invalidator) *CreateVisit {
	return &CreateVisit{repo: repo, cache: cache, now: timezone.Now}
}

func (uc *CreateVisit) Execute(
	ctx context.Context,
	in VisitInput,
	createdBy string,
) (*models.Visit, error) {

	// --------------------------------------------------
	// 1️⃣ Patient
	// --------------------------------------------------
	if in.PatientID == 0 {
		return nil, httperr.ErrBusiness("patient_not_found")
	}
	ok, err := uc.repo.PatientExists(ctx, in.PatientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("patient_not_found")
	}

	// --------------------------------------------------
	// 2️⃣ Findings, procedures and totals
	// --------------------------------------------------
	v := &models.Visit{
		PatientID: in.PatientID,
		CreatedBy: createdBy,
	}
	if err := apply(v, in, uc.now()); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Persist
	// --------------------------------------------------
	if err := uc.repo.CreateVisit(ctx, v); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)
	return v, nil
}
