// Package review implements appointment reviews and the derived doctor
// rating. Each appointment takes at most one review, edits and deletes are
// only allowed within 24 hours of creation, and every mutation recomputes
// the reviewed doctor's average rating as a second save.
package review

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/healthplus/healthplus/internal/model"
	"github.com/healthplus/healthplus/internal/platform/apperr"
	"github.com/healthplus/healthplus/internal/platform/store"
)

// EditWindow is how long after creation a review stays editable. A review
// whose age is exactly the window is already locked.
const EditWindow = 24 * time.Hour

type Service struct {
	store store.Store

	// now is swapped out by tests to pin the edit-window clock.
	now func() time.Time
}

func NewService(st store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

// ListFilter narrows ListReviews; empty fields match everything.
type ListFilter struct {
	DoctorID      string
	PatientID     string
	AppointmentID string
}

func (s *Service) ListReviews(ctx context.Context, f ListFilter) ([]model.Review, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to fetch reviews", err)
	}
	out := []model.Review{}
	for _, r := range doc.Reviews {
		if f.DoctorID != "" && r.DoctorID != f.DoctorID {
			continue
		}
		if f.PatientID != "" && r.PatientID != f.PatientID {
			continue
		}
		if f.AppointmentID != "" && r.AppointmentID != f.AppointmentID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *Service) GetReview(ctx context.Context, id string) (*model.Review, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to fetch review", err)
	}
	for i := range doc.Reviews {
		if doc.Reviews[i].ID == id {
			return &doc.Reviews[i], nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "Review not found")
}

// CreateReview adds a review and recomputes the doctor's rating. The review
// save and the rating save are two separate writes; a recompute failure
// after a successful review save is reported but not rolled back.
func (s *Service) CreateReview(ctx context.Context, r *model.Review) (*model.Review, error) {
	if r.AppointmentID == "" || r.DoctorID == "" || r.PatientID == "" || r.Rating == 0 {
		return nil, apperr.New(apperr.Invalid, "Missing required fields")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return nil, apperr.New(apperr.Invalid, "Rating must be between 1 and 5")
	}
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to create review", err)
	}
	for _, existing := range doc.Reviews {
		if existing.AppointmentID == r.AppointmentID {
			return nil, apperr.New(apperr.Conflict, "A review already exists for this appointment")
		}
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	r.CreatedAt = s.now().UTC()
	doc.Reviews = append(doc.Reviews, *r)
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to create review", err)
	}
	if err := s.recomputeRating(ctx, r.DoctorID); err != nil {
		return nil, err
	}
	return r, nil
}

// UpdateReview merges a patch onto an editable review. The ID and CreatedAt
// survive any patch; the rating, if changed, is re-validated. If the patch
// moves the review to another doctor only the new doctor is recomputed.
func (s *Service) UpdateReview(ctx context.Context, id string, patch map[string]any) (*model.Review, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to update review", err)
	}
	for i := range doc.Reviews {
		if doc.Reviews[i].ID != id {
			continue
		}
		if s.locked(doc.Reviews[i]) {
			return nil, apperr.New(apperr.Forbidden, "Reviews can only be edited within 24 hours of creation")
		}
		updated := doc.Reviews[i]
		if err := model.MergeInto(&updated, patch); err != nil {
			return nil, apperr.Wrap(apperr.Invalid, "Invalid update payload", err)
		}
		updated.ID = id
		updated.CreatedAt = doc.Reviews[i].CreatedAt
		if updated.Rating < 1 || updated.Rating > 5 {
			return nil, apperr.New(apperr.Invalid, "Rating must be between 1 and 5")
		}
		doc.Reviews[i] = updated
		if err := s.store.Save(ctx, doc); err != nil {
			return nil, apperr.Wrap(apperr.Storage, "Failed to update review", err)
		}
		if err := s.recomputeRating(ctx, updated.DoctorID); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, apperr.New(apperr.NotFound, "Review not found")
}

// DeleteReview removes an editable review and recomputes the doctor's
// rating; removing the last review resets the doctor to 0 rating, 0 count.
func (s *Service) DeleteReview(ctx context.Context, id string) error {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return apperr.Wrap(apperr.Storage, "Failed to delete review", err)
	}
	for i := range doc.Reviews {
		if doc.Reviews[i].ID != id {
			continue
		}
		if s.locked(doc.Reviews[i]) {
			return apperr.New(apperr.Forbidden, "Reviews can only be deleted within 24 hours of creation")
		}
		doctorID := doc.Reviews[i].DoctorID
		doc.Reviews = append(doc.Reviews[:i], doc.Reviews[i+1:]...)
		if err := s.store.Save(ctx, doc); err != nil {
			return apperr.Wrap(apperr.Storage, "Failed to delete review", err)
		}
		return s.recomputeRating(ctx, doctorID)
	}
	return apperr.New(apperr.NotFound, "Review not found")
}

func (s *Service) locked(r model.Review) bool {
	return s.now().Sub(r.CreatedAt) >= EditWindow
}

// recomputeRating rereads the store, averages the doctor's reviews rounded
// to one decimal place, and saves. Runs after the review mutation has
// already been persisted, so it is a second whole-document write.
func (s *Service) recomputeRating(ctx context.Context, doctorID string) error {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return apperr.Wrap(apperr.Storage, "Failed to update doctor rating", err)
	}
	sum, count := 0, 0
	for _, r := range doc.Reviews {
		if r.DoctorID == doctorID {
			sum += r.Rating
			count++
		}
	}
	for i := range doc.Doctors {
		if doc.Doctors[i].ID != doctorID {
			continue
		}
		if count == 0 {
			doc.Doctors[i].Rating = 0
			doc.Doctors[i].ReviewCount = 0
		} else {
			doc.Doctors[i].Rating = math.Round(float64(sum)/float64(count)*10) / 10
			doc.Doctors[i].ReviewCount = count
		}
		if err := s.store.Save(ctx, doc); err != nil {
			return apperr.Wrap(apperr.Storage, "Failed to update doctor rating", err)
		}
		return nil
	}
	// Review for an unknown doctor: nothing to recompute.
	return nil
}
