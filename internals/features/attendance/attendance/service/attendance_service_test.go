package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"magangku_backend/internals/features/attendance/attendance/model"
	"magangku_backend/internals/features/attendance/location"
)

// fakeAttendanceRepo meniru semantik repository postgres di memori.
type fakeAttendanceRepo struct {
	records map[string]*model.AttendanceModel
	findErr error

	// afterFind dijalankan sekali setelah FindByUserAndDate berikutnya,
	// untuk menyisipkan baris di antara pre-check dan upsert.
	afterFind func()
}

func newFakeRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: map[string]*model.AttendanceModel{}}
}

func key(userID uuid.UUID, date string) string {
	return userID.String() + "|" + date
}

func (f *fakeAttendanceRepo) FindByUserAndDate(_ context.Context, userID uuid.UUID, date string) (*model.AttendanceModel, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	rec, ok := f.records[key(userID, date)]
	if hook := f.afterFind; hook != nil {
		f.afterFind = nil
		hook()
	}
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeAttendanceRepo) UpsertCheckIn(_ context.Context, rec *model.AttendanceModel) (bool, error) {
	k := key(rec.UserID, rec.Date)
	if existing, ok := f.records[k]; ok {
		if existing.CheckInTime != nil {
			return false, nil
		}
		existing.CheckInTime = rec.CheckInTime
		existing.CheckInLocation = rec.CheckInLocation
		existing.Status = rec.Status
		return true, nil
	}
	cp := *rec
	cp.ID = uuid.New()
	f.records[k] = &cp
	return true, nil
}

func (f *fakeAttendanceRepo) CompleteCheckOut(_ context.Context, id uuid.UUID, checkOutTime time.Time, rec *model.AttendanceModel) (bool, error) {
	for _, existing := range f.records {
		if existing.ID != id {
			continue
		}
		if existing.CheckOutTime != nil {
			return false, nil
		}
		t := checkOutTime
		existing.CheckOutTime = &t
		existing.CheckOutLocation = rec.CheckOutLocation
		existing.Status = rec.Status
		return true, nil
	}
	return false, nil
}

func (f *fakeAttendanceRepo) ListByUser(_ context.Context, userID uuid.UUID, limit int) ([]model.AttendanceModel, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []model.AttendanceModel
	for _, rec := range f.records {
		if rec.UserID == userID {
			out = append(out, *rec)
		}
	}
	// tanggal menurun
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Date > out[i].Date {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func clockAt(hour int) func() time.Time {
	return func() time.Time {
		return time.Date(2025, 3, 10, hour, 30, 0, 0, time.Local)
	}
}

func testProvider() location.Provider {
	lat, lng := -6.2, 106.8
	return location.RequestProvider{Lat: &lat, Lng: &lng}
}

func TestCheckIn_EarlyMorningIsPresent(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := NewAttendanceService(repo).WithClock(clockAt(7))
	userID := uuid.New()

	rec, err := svc.CheckIn(context.Background(), userID, testProvider())
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if rec.Status != model.AttendancePresent {
		t.Fatalf("status = %q, want present", rec.Status)
	}
	if rec.CheckInTime == nil {
		t.Fatal("check_in_time kosong")
	}
	if rec.CheckInLocation == nil {
		t.Fatal("check_in_location kosong")
	}
	if rec.Date != "2025-03-10" {
		t.Fatalf("date = %q, want 2025-03-10", rec.Date)
	}
}

func TestCheckIn_AfterEightIsLate(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := NewAttendanceService(repo).WithClock(clockAt(9))

	rec, err := svc.CheckIn(context.Background(), uuid.New(), testProvider())
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if rec.Status != model.AttendanceLate {
		t.Fatalf("status = %q, want late", rec.Status)
	}
}

func TestCheckIn_TwiceRejectsSecond(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := NewAttendanceService(repo).WithClock(clockAt(7))
	userID := uuid.New()

	first, err := svc.CheckIn(context.Background(), userID, testProvider())
	if err != nil {
		t.Fatalf("first CheckIn: %v", err)
	}

	if _, err := svc.CheckIn(context.Background(), userID, testProvider()); !errors.Is(err, ErrAlreadyCheckedIn) {
		t.Fatalf("second CheckIn err = %v, want ErrAlreadyCheckedIn", err)
	}

	// check_in_time tidak berubah (idempotent-reject, bukan merge)
	after, err := svc.Today(context.Background(), userID)
	if err != nil {
		t.Fatalf("Today: %v", err)
	}
	if !after.CheckInTime.Equal(*first.CheckInTime) {
		t.Fatalf("check_in_time berubah: %v != %v", after.CheckInTime, first.CheckInTime)
	}
}

func TestCheckIn_LostRaceRejected(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := NewAttendanceService(repo).WithClock(clockAt(7))
	userID := uuid.New()

	// baris muncul di antara pre-check dan upsert: upsert conditional kalah
	now := clockAt(7)()
	repo.afterFind = func() {
		repo.records[key(userID, "2025-03-10")] = &model.AttendanceModel{
			ID: uuid.New(), UserID: userID, Date: "2025-03-10",
			CheckInTime: &now, Status: model.AttendancePresent,
		}
	}

	if _, err := svc.CheckIn(context.Background(), userID, testProvider()); !errors.Is(err, ErrAlreadyCheckedIn) {
		t.Fatalf("err = %v, want ErrAlreadyCheckedIn", err)
	}
}

func TestCheckIn_LocationFailureAborts(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := NewAttendanceService(repo).WithClock(clockAt(7))
	userID := uuid.New()

	if _, err := svc.CheckIn(context.Background(), userID, location.RequestProvider{}); !errors.Is(err, location.ErrUnsupported) {
		t.Fatalf("err = %v, want ErrUnsupported", err)
	}
	// tidak ada baris yang tertulis
	if rec, _ := svc.Today(context.Background(), userID); rec != nil {
		t.Fatalf("record tertulis padahal lokasi gagal: %+v", rec)
	}
}

func TestCheckOut_WithoutCheckInRejected(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := NewAttendanceService(repo).WithClock(clockAt(16))
	userID := uuid.New()

	if _, err := svc.CheckOut(context.Background(), userID, testProvider()); !errors.Is(err, ErrNotCheckedIn) {
		t.Fatalf("err = %v, want ErrNotCheckedIn", err)
	}
	if rec, _ := svc.Today(context.Background(), userID); rec != nil {
		t.Fatalf("check-out tanpa check-in membuat record: %+v", rec)
	}
}

func TestCheckOut_BeforeFiveIsEarlyLeave(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	userID := uuid.New()

	svc := NewAttendanceService(repo).WithClock(clockAt(7))
	checkedIn, err := svc.CheckIn(context.Background(), userID, testProvider())
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}

	svc.WithClock(clockAt(16))
	rec, err := svc.CheckOut(context.Background(), userID, testProvider())
	if err != nil {
		t.Fatalf("CheckOut: %v", err)
	}
	if rec.Status != model.AttendanceEarlyLeave {
		t.Fatalf("status = %q, want early_leave", rec.Status)
	}
	if rec.CheckOutTime == nil {
		t.Fatal("check_out_time kosong")
	}
	if !rec.CheckInTime.Equal(*checkedIn.CheckInTime) {
		t.Fatal("check_in_time berubah saat check-out")
	}
}

func TestCheckOut_EveningKeepsLateStatus(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	userID := uuid.New()

	svc := NewAttendanceService(repo).WithClock(clockAt(9))
	if _, err := svc.CheckIn(context.Background(), userID, testProvider()); err != nil {
		t.Fatalf("CheckIn: %v", err)
	}

	svc.WithClock(clockAt(18))
	rec, err := svc.CheckOut(context.Background(), userID, testProvider())
	if err != nil {
		t.Fatalf("CheckOut: %v", err)
	}
	if rec.Status != model.AttendanceLate {
		t.Fatalf("status = %q, want late dipertahankan", rec.Status)
	}
}

func TestCheckOut_TwiceRejectsSecond(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	userID := uuid.New()

	svc := NewAttendanceService(repo).WithClock(clockAt(7))
	if _, err := svc.CheckIn(context.Background(), userID, testProvider()); err != nil {
		t.Fatalf("CheckIn: %v", err)
	}

	svc.WithClock(clockAt(18))
	first, err := svc.CheckOut(context.Background(), userID, testProvider())
	if err != nil {
		t.Fatalf("first CheckOut: %v", err)
	}

	if _, err := svc.CheckOut(context.Background(), userID, testProvider()); !errors.Is(err, ErrAlreadyCheckedOut) {
		t.Fatalf("second CheckOut err = %v, want ErrAlreadyCheckedOut", err)
	}

	after, _ := svc.Today(context.Background(), userID)
	if !after.CheckOutTime.Equal(*first.CheckOutTime) {
		t.Fatal("check_out_time berubah pada check-out kedua")
	}
}

func TestToday_NoRecordReturnsNil(t *testing.T) {
	t.Parallel()

	svc := NewAttendanceService(newFakeRepo()).WithClock(clockAt(10))

	rec, err := svc.Today(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Today: %v", err)
	}
	if rec != nil {
		t.Fatalf("rec = %+v, want nil", rec)
	}
}

func TestHistory_LimitAndOrdering(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := NewAttendanceService(repo).WithClock(clockAt(10))
	userID := uuid.New()

	dates := []string{"2025-03-01", "2025-03-03", "2025-03-02", "2025-02-28"}
	for _, d := range dates {
		repo.records[key(userID, d)] = &model.AttendanceModel{
			ID: uuid.New(), UserID: userID, Date: d, Status: model.AttendancePresent,
		}
	}

	records, err := svc.History(context.Background(), userID, 3)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len = %d, want 3", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].Date > records[i-1].Date {
			t.Fatalf("urutan tanggal tidak menurun: %q setelah %q", records[i].Date, records[i-1].Date)
		}
	}
}

func TestHistory_DefaultLimit(t *testing.T) {
	t.Parallel()

	svc := NewAttendanceService(newFakeRepo()).WithClock(clockAt(10))
	records, err := svc.History(context.Background(), uuid.New(), 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("len = %d, want 0", len(records))
	}
}

func TestCheckIn_RepoErrorPropagates(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	repo.findErr = errors.New("connection refused")
	svc := NewAttendanceService(repo).WithClock(clockAt(7))

	if _, err := svc.CheckIn(context.Background(), uuid.New(), testProvider()); err == nil {
		t.Fatal("expected error from repo, got nil")
	}
}
