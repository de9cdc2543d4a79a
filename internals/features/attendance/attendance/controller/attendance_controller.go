// internals/features/attendance/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/configs"
	"magangku_backend/internals/features/attendance/attendance/dto"
	"magangku_backend/internals/features/attendance/attendance/model"
	"magangku_backend/internals/features/attendance/attendance/repository"
	"magangku_backend/internals/features/attendance/attendance/service"
	"magangku_backend/internals/features/attendance/location"
	"magangku_backend/internals/features/attendance/qrcode"
	userModel "magangku_backend/internals/features/users/user/model"
	helper "magangku_backend/internals/helpers"
)

type AttendanceController struct {
	DB        *gorm.DB
	Service   *service.AttendanceService
	Validator *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:        db,
		Service:   service.NewAttendanceService(repository.NewGormAttendanceRepository(db)),
		Validator: validator.New(),
	}
}

// provider dari body request: koordinat klien + timeout budget.
func (ctl *AttendanceController) locationProvider(req dto.CheckRequest) location.Provider {
	return location.WithTimeout(
		location.RequestProvider{Lat: req.Lat, Lng: req.Lng},
		location.DefaultTimeout,
	)
}

func mapAttendanceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrAlreadyCheckedIn):
		return helper.JsonError(c, fiber.StatusConflict, "Sudah check-in hari ini")
	case errors.Is(err, service.ErrAlreadyCheckedOut):
		return helper.JsonError(c, fiber.StatusConflict, "Sudah check-out hari ini")
	case errors.Is(err, service.ErrNotCheckedIn):
		return helper.JsonError(c, fiber.StatusConflict, "Belum check-in hari ini")
	case errors.Is(err, location.ErrUnsupported):
		return helper.JsonError(c, fiber.StatusBadRequest, "Geolocation tidak tersedia, aktifkan izin lokasi")
	case errors.Is(err, location.ErrDenied):
		return helper.JsonError(c, fiber.StatusBadRequest, "Koordinat lokasi tidak valid")
	case errors.Is(err, location.ErrTimeout):
		return helper.JsonError(c, fiber.StatusRequestTimeout, "Pengambilan lokasi timeout")
	default:
		log.Println("[ERROR] attendance:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}
}

// POST /api/u/attendance/check-in
func (ctl *AttendanceController) CheckIn(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CheckRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	rec, err := ctl.Service.CheckIn(c.UserContext(), userID, ctl.locationProvider(req))
	if err != nil {
		return mapAttendanceError(c, err)
	}
	return helper.JsonCreated(c, "Check-in berhasil", rec)
}

// POST /api/u/attendance/check-out
func (ctl *AttendanceController) CheckOut(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CheckRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	rec, err := ctl.Service.CheckOut(c.UserContext(), userID, ctl.locationProvider(req))
	if err != nil {
		return mapAttendanceError(c, err)
	}
	return helper.JsonUpdated(c, "Check-out berhasil", rec)
}

// GET /api/u/attendance/today
// Gagal fetch didegradasi jadi data null (UI menampilkan "belum ada record"),
// sama seperti perilaku front end lama; penyebab tetap masuk log.
func (ctl *AttendanceController) Today(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	rec, err := ctl.Service.Today(c.UserContext(), userID)
	if err != nil {
		log.Println("[ERROR] get today attendance:", err)
		return helper.JsonOK(c, "ok", nil)
	}
	return helper.JsonOK(c, "ok", rec)
}

// GET /api/u/attendance/history?limit=30
// Gagal fetch didegradasi jadi list kosong, ambigu dengan "tidak ada data".
func (ctl *AttendanceController) History(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(service.DefaultHistoryLimit)))
	records, err := ctl.Service.History(c.UserContext(), userID, limit)
	if err != nil {
		log.Println("[ERROR] get attendance history:", err)
		return helper.JsonOK(c, "ok", []model.AttendanceModel{})
	}
	return helper.JsonOK(c, "ok", records)
}

// GET /api/u/attendance/qrcode[?format=json]
func (ctl *AttendanceController) QRCode(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	dateKey := ctl.Service.DateKey()
	payload := qrcode.BuildPayload(configs.OrgPrefix, userID.String(), dateKey)

	if c.Query("format") == "json" {
		return helper.JsonOK(c, "ok", dto.QRCodeResponse{Payload: payload, Date: dateKey})
	}

	png, err := qrcode.Generate(payload)
	if err != nil {
		log.Println("[ERROR] generate qrcode:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat QR code")
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// GET /api/u/attendance/summary: rekap bulan berjalan untuk dashboard.
func (ctl *AttendanceController) Summary(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	monthPrefix := ctl.Service.DateKey()[:7] // yyyy-MM
	type row struct {
		Status model.AttendanceStatus
		Count  int64
	}
	var rows []row
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.AttendanceModel{}).
		Select("status, COUNT(*) AS count").
		Where("user_id = ? AND date >= ? AND date < ?", userID, monthPrefix+"-01", nextMonthStart(monthPrefix)).
		Group("status").
		Scan(&rows).Error; err != nil {
		log.Println("[ERROR] attendance summary:", err)
		return helper.JsonOK(c, "ok", dto.SummaryResponse{Month: monthPrefix})
	}

	out := dto.SummaryResponse{Month: monthPrefix}
	for _, r := range rows {
		switch r.Status {
		case model.AttendancePresent:
			out.Present = r.Count
		case model.AttendanceLate:
			out.Late = r.Count
		case model.AttendanceEarlyLeave:
			out.EarlyLeave = r.Count
		case model.AttendanceAbsent:
			out.Absent = r.Count
		}
		out.TotalDays += r.Count
	}
	return helper.JsonOK(c, "ok", out)
}

// GET /api/a/attendance: listing untuk admin (filter + pagination)
func (ctl *AttendanceController) List(c *fiber.Ctx) error {
	var q dto.ListAttendanceQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query invalid")
	}
	if err := ctl.Validator.Struct(q); err != nil {
		return helper.JsonValidationError(c, err)
	}

	paging := helper.ResolvePaging(c, 25, 200)
	tx := ctl.buildListQuery(c, q)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung absensi")
	}

	var records []model.AttendanceModel
	if err := tx.Order("date DESC, created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absensi")
	}

	return helper.JsonList(c, "ok", records,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/s/attendance/:intern_id: riwayat intern bimbingan supervisor.
func (ctl *AttendanceController) InternHistory(c *fiber.Ctx) error {
	supervisorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	internID, err := uuid.Parse(strings.TrimSpace(c.Params("intern_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "intern_id invalid")
	}

	// pastikan intern memang dibimbing supervisor ini
	var count int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&userModel.UserModel{}).
		Where("id = ? AND supervisor_id = ?", internID, supervisorID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa intern")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusForbidden, "Intern bukan bimbingan Anda")
	}

	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(service.DefaultHistoryLimit)))
	records, err := ctl.Service.History(c.UserContext(), internID, limit)
	if err != nil {
		log.Println("[ERROR] intern history:", err)
		return helper.JsonOK(c, "ok", []model.AttendanceModel{})
	}
	return helper.JsonOK(c, "ok", records)
}

func (ctl *AttendanceController) buildListQuery(c *fiber.Ctx, q dto.ListAttendanceQuery) *gorm.DB {
	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.AttendanceModel{})
	if q.UserID != nil {
		tx = tx.Where("user_id = ?", *q.UserID)
	}
	if q.DateFrom != nil {
		tx = tx.Where("date >= ?", *q.DateFrom)
	}
	if q.DateTo != nil {
		tx = tx.Where("date <= ?", *q.DateTo)
	}
	if q.Status != nil {
		tx = tx.Where("status = ?", *q.Status)
	}
	return tx
}

func nextMonthStart(monthPrefix string) string {
	year, _ := strconv.Atoi(monthPrefix[:4])
	month, _ := strconv.Atoi(monthPrefix[5:7])
	month++
	if month > 12 {
		month = 1
		year++
	}
	return fmt.Sprintf("%04d-%02d-01", year, month)
}
