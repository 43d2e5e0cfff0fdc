package controllers

import (
	"net/http"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotelbooking/dto"
	apperrors "hotelbooking/errors"
	"hotelbooking/middleware"
	"hotelbooking/models"
	"hotelbooking/response"
	"hotelbooking/services"
)

type BookingController struct {
	Pages *services.PageRegistry
}

func NewBookingController(pages *services.PageRegistry) BookingController {
	return BookingController{Pages: pages}
}

// page trang của session hiện tại, tải dữ liệu nếu chưa tải hoặc lần trước lỗi
func (b BookingController) page(c *gin.Context) (*services.BookingPage, error) {
	page := b.Pages.Get(c.Request.Context(), middleware.SessionID(c))
	if !page.Loaded() {
		if err := page.Load(c.Request.Context()); err != nil {
			return nil, err
		}
	}
	return page, nil
}

// queryValue trả về nil nếu tham số không có trong query; "?startDate=" xóa giá trị cũ
func queryValue(c *gin.Context, key string) *string {
	if v, ok := c.GetQuery(key); ok {
		return &v
	}
	return nil
}

// GetBookings godoc
// @Summary      Danh sách đặt phòng
// @Description  Áp dụng tìm kiếm, bộ lọc, sắp xếp có trong query rồi trả về danh sách hiển thị
// @Tags         bookings
// @Produce      json
// @Param        search     query  string  false  "Từ khóa"
// @Param        status     query  string  false  "pending|confirmed|cancelled|completed|all"
// @Param        dateRange  query  string  false  "all|upcoming|today|week|month|custom"
// @Param        city       query  string  false  "Thành phố"
// @Param        roomType   query  string  false  "standard|deluxe|suite|family|all"
// @Param        startDate  query  string  false  "YYYY-MM-DD"
// @Param        endDate    query  string  false  "YYYY-MM-DD"
// @Param        sortField  query  string  false  "Cột sắp xếp"
// @Param        sortDir    query  string  false  "asc|desc"
// @Success      200  {object}  dto.BookingListResponse
// @Router       /api/v1/bookings [get]
func (b BookingController) GetBookings(c *gin.Context) {
	page, err := b.page(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	changed := false
	if search, ok := c.GetQuery("search"); ok {
		page.SetSearch(search)
		changed = true
	}

	patch := dto.FilterPatch{
		Status:    queryValue(c, "status"),
		DateRange: queryValue(c, "dateRange"),
		City:      queryValue(c, "city"),
		RoomType:  queryValue(c, "roomType"),
		StartDate: queryValue(c, "startDate"),
		EndDate:   queryValue(c, "endDate"),
	}
	if !patch.Empty() {
		page.SetFilters(services.MergeFilters(page.LastFilters().Filters, patch))
		changed = true
	}

	if field, ok := c.GetQuery("sortField"); ok {
		page.SetSort(field, c.Query("sortDir"))
		changed = true
	} else if dir, ok := c.GetQuery("sortDir"); ok {
		page.SetSort(page.LastFilters().SortField, dir)
		changed = true
	}

	if changed {
		b.Pages.Remember(c.Request.Context(), middleware.SessionID(c), page)
	}
	response.Success(c, page.View())
}

// ReloadBookings tải lại dữ liệu từ data service
func (b BookingController) ReloadBookings(c *gin.Context) {
	page := b.Pages.Get(c.Request.Context(), middleware.SessionID(c))
	if err := page.Load(c.Request.Context()); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, page.View())
}

func (b BookingController) ResetFilters(c *gin.Context) {
	page, err := b.page(c)
	if err != nil {
		response.FromError(c, err)
		return
	}
	page.ResetFilters()
	b.Pages.Forget(c.Request.Context(), middleware.SessionID(c))
	response.Success(c, page.View())
}

func (b BookingController) GetCities(c *gin.Context) {
	page, err := b.page(c)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, page.Cities())
}

// SuggestCities gợi ý thành phố gần đúng cho ô lọc
func (b BookingController) SuggestCities(c *gin.Context) {
	page, err := b.page(c)
	if err != nil {
		response.FromError(c, err)
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	response.Success(c, services.SuggestCities(c.Query("q"), page.Cities(), limit))
}

// CreateBooking godoc
// @Summary  Tạo đặt phòng
// @Tags     bookings
// @Accept   json
// @Produce  json
// @Param    booking  body  dto.BookingForm  true  "Form đặt phòng"
// @Success  201  {object}  models.Booking
// @Failure  400  {object}  response.Response
// @Router   /api/v1/bookings [post]
func (b BookingController) CreateBooking(c *gin.Context) {
	var form dto.BookingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	page, err := b.page(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	page.OpenCreate()
	saved, errs := page.Submit(c.Request.Context(), form)
	if !errs.Empty() {
		respondFormErrors(c, errs)
		return
	}
	response.Created(c, saved)
}

// UpdateBooking godoc
// @Summary  Cập nhật đặt phòng
// @Tags     bookings
// @Accept   json
// @Produce  json
// @Param    id       path  string           true  "Booking ID"
// @Param    booking  body  dto.BookingForm  true  "Form đặt phòng"
// @Success  200  {object}  models.Booking
// @Router   /api/v1/bookings/{id} [put]
func (b BookingController) UpdateBooking(c *gin.Context) {
	var form dto.BookingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	page, err := b.page(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	if _, err := page.OpenEdit(c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	saved, errs := page.Submit(c.Request.Context(), form)
	if !errs.Empty() {
		respondFormErrors(c, errs)
		return
	}
	response.Success(c, saved)
}

func (b BookingController) DeleteBooking(c *gin.Context) {
	page, err := b.page(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	id := c.Param("id")
	if err := page.RequestDelete(id); err != nil {
		response.FromError(c, err)
		return
	}
	if err := page.ConfirmDelete(c.Request.Context()); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"id": id})
}

// ChangeBookingStatus godoc
// @Summary  Đổi trạng thái đặt phòng
// @Tags     bookings
// @Accept   json
// @Produce  json
// @Param    id      path  string                   true  "Booking ID"
// @Param    status  body  dto.StatusUpdateRequest  true  "Trạng thái mới"
// @Success  200  {object}  models.Booking
// @Failure  409  {object}  response.Response
// @Router   /api/v1/bookings/{id}/status [patch]
func (b BookingController) ChangeBookingStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}
	status := models.BookingStatus(req.Status)
	if !slices.Contains(models.BookingStatuses(), status) {
		response.ValidationErrors(c, apperrors.FieldErrors{"status": "Trạng thái không hợp lệ"})
		return
	}

	page, err := b.page(c)
	if err != nil {
		response.FromError(c, err)
		return
	}
	updated, err := page.ChangeStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, updated)
}

// PrintVoucher godoc
// @Summary  Dữ liệu voucher
// @Tags     bookings
// @Produce  json
// @Param    id  path  string  true  "Booking ID"
// @Success  200  {object}  dto.VoucherResponse
// @Router   /api/v1/bookings/{id}/voucher [get]
func (b BookingController) PrintVoucher(c *gin.Context) {
	page, err := b.page(c)
	if err != nil {
		response.FromError(c, err)
		return
	}
	voucher, err := page.PrintVoucher(c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, voucher)
}

// respondFormErrors: lỗi kiểm tra trả 400, lỗi khi lưu trả 422
func respondFormErrors(c *gin.Context, errs apperrors.FieldErrors) {
	if errs.Has(apperrors.SubmitField) {
		c.JSON(http.StatusUnprocessableEntity, response.Response{
			Code:   0,
			Mess:   errs[apperrors.SubmitField],
			Errors: errs,
		})
		return
	}
	response.ValidationErrors(c, errs)
}
