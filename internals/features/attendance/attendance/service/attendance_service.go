// internals/features/attendance/attendance/service/attendance_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"magangku_backend/internals/features/attendance/attendance/model"
	"magangku_backend/internals/features/attendance/attendance/repository"
	"magangku_backend/internals/features/attendance/location"
)

var (
	ErrAlreadyCheckedIn  = errors.New("sudah check-in hari ini")
	ErrAlreadyCheckedOut = errors.New("sudah check-out hari ini")
	ErrNotCheckedIn      = errors.New("belum check-in hari ini")
)

const DefaultHistoryLimit = 30

// AttendanceService memegang alur check-in/check-out harian.
// Clock bisa diganti di test; default jam dinding lokal.
type AttendanceService struct {
	repo repository.AttendanceRepository
	now  func() time.Time
}

func NewAttendanceService(repo repository.AttendanceRepository) *AttendanceService {
	return &AttendanceService{repo: repo, now: time.Now}
}

// WithClock mengganti sumber waktu (dipakai test).
func (s *AttendanceService) WithClock(now func() time.Time) *AttendanceService {
	s.now = now
	return s
}

// DateKey: tanggal hari ini menurut jam dinding lokal.
func (s *AttendanceService) DateKey() string {
	return s.now().Format(model.DateLayout)
}

// Today mengembalikan record hari ini, atau nil kalau belum ada.
func (s *AttendanceService) Today(ctx context.Context, userID uuid.UUID) (*model.AttendanceModel, error) {
	return s.repo.FindByUserAndDate(ctx, userID, s.DateKey())
}

// CheckIn: ambil lokasi, tolak kalau sudah check-in, lalu tulis record
// hari ini lewat conditional upsert (menutup race dua check-in bersamaan).
func (s *AttendanceService) CheckIn(ctx context.Context, userID uuid.UUID, provider location.Provider) (*model.AttendanceModel, error) {
	now := s.now()
	dateKey := now.Format(model.DateLayout)

	loc, err := provider.Current(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByUserAndDate(ctx, userID, dateKey)
	if err != nil {
		return nil, fmt.Errorf("cek record hari ini: %w", err)
	}
	if existing != nil && existing.CheckInTime != nil {
		return nil, ErrAlreadyCheckedIn
	}

	checkInTime := now
	rec := &model.AttendanceModel{
		UserID:          userID,
		Date:            dateKey,
		CheckInTime:     &checkInTime,
		CheckInLocation: model.NewLocationColumn(loc),
		Status:          DeriveCheckInStatus(now.Hour()),
	}

	ok, err := s.repo.UpsertCheckIn(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("simpan check-in: %w", err)
	}
	if !ok {
		// kalah race dengan check-in lain untuk (user, tanggal) yang sama
		return nil, ErrAlreadyCheckedIn
	}

	return s.repo.FindByUserAndDate(ctx, userID, dateKey)
}

// CheckOut: wajib sudah check-in dan belum check-out; status bisa turun
// jadi early_leave kalau pulang sebelum jam 17.
func (s *AttendanceService) CheckOut(ctx context.Context, userID uuid.UUID, provider location.Provider) (*model.AttendanceModel, error) {
	now := s.now()
	dateKey := now.Format(model.DateLayout)

	loc, err := provider.Current(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByUserAndDate(ctx, userID, dateKey)
	if err != nil {
		return nil, fmt.Errorf("cek record hari ini: %w", err)
	}
	if existing == nil || existing.CheckInTime == nil {
		return nil, ErrNotCheckedIn
	}
	if existing.CheckOutTime != nil {
		return nil, ErrAlreadyCheckedOut
	}

	upd := &model.AttendanceModel{
		CheckOutLocation: model.NewLocationColumn(loc),
		Status:           DeriveCheckOutStatus(now.Hour(), existing.Status),
	}

	ok, err := s.repo.CompleteCheckOut(ctx, existing.ID, now, upd)
	if err != nil {
		return nil, fmt.Errorf("simpan check-out: %w", err)
	}
	if !ok {
		return nil, ErrAlreadyCheckedOut
	}

	return s.repo.FindByUserAndDate(ctx, userID, dateKey)
}

// History: riwayat absensi user, tanggal menurun, maksimal limit baris.
func (s *AttendanceService) History(ctx context.Context, userID uuid.UUID, limit int) ([]model.AttendanceModel, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.repo.ListByUser(ctx, userID, limit)
}
