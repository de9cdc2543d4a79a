// internals/features/attendance/attendance/repository/attendance_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"magangku_backend/internals/features/attendance/attendance/model"
)

// AttendanceRepository memisahkan akses tabel attendance dari service
// supaya logika check-in/check-out bisa dites dengan fake.
type AttendanceRepository interface {
	// FindByUserAndDate mengembalikan (nil, nil) kalau baris belum ada.
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date string) (*model.AttendanceModel, error)

	// UpsertCheckIn menulis check-in secara conditional upsert pada kunci
	// (user_id, date): insert baris baru, atau lengkapi baris yang belum
	// punya check_in_time. Mengembalikan false kalau baris sudah
	// check-in (kalah race atau double submit).
	UpsertCheckIn(ctx context.Context, rec *model.AttendanceModel) (bool, error)

	// CompleteCheckOut mengisi check_out_time/location/status hanya kalau
	// check_out_time masih kosong. Mengembalikan false kalau sudah terisi.
	CompleteCheckOut(ctx context.Context, id uuid.UUID, checkOutTime time.Time, loc *model.AttendanceModel) (bool, error)

	// ListByUser: riwayat user, tanggal menurun, maksimal limit baris.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.AttendanceModel, error)
}

type gormAttendanceRepository struct {
	db *gorm.DB
}

func NewGormAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &gormAttendanceRepository{db: db}
}

func (r *gormAttendanceRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date string) (*model.AttendanceModel, error) {
	var rec model.AttendanceModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *gormAttendanceRepository) UpsertCheckIn(ctx context.Context, rec *model.AttendanceModel) (bool, error) {
	// ON CONFLICT (user_id, date) DO UPDATE ... WHERE attendance.check_in_time IS NULL
	// menutup celah check-then-act: dua check-in bersamaan hanya satu yang menang.
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"check_in_time":     rec.CheckInTime,
			"check_in_location": rec.CheckInLocation,
			"status":            rec.Status,
			"updated_at":        time.Now(),
		}),
		Where: clause.Where{Exprs: []clause.Expression{
			gorm.Expr("attendance.check_in_time IS NULL"),
		}},
	}).Create(rec)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *gormAttendanceRepository) CompleteCheckOut(ctx context.Context, id uuid.UUID, checkOutTime time.Time, rec *model.AttendanceModel) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.AttendanceModel{}).
		Where("id = ? AND check_out_time IS NULL", id).
		Updates(map[string]interface{}{
			"check_out_time":     checkOutTime,
			"check_out_location": rec.CheckOutLocation,
			"status":             rec.Status,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *gormAttendanceRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.AttendanceModel, error) {
	var out []model.AttendanceModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}
