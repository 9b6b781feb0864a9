package patient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidImage = errors.New("invalid_image")

// PhotoEncoder turns an uploaded image into the stored format and
// returns the encoded bytes and their content type.
type PhotoEncoder interface {
	Encode(data []byte) ([]byte, string, error)
}

// PhotoStore stores an object and returns its public URL.
type PhotoStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// PhotoKey builds a unique object key for a patient photo.
func PhotoKey(patientID uint, now time.Time) string {
	return fmt.Sprintf("patients/%d/%s-%s.webp", patientID, now.UTC().Format("20060102"), uuid.NewString())
}
