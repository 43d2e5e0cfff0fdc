package services

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"hotelbooking/commands"
	"hotelbooking/constants"
	"hotelbooking/dto"
	apperrors "hotelbooking/errors"
	"hotelbooking/filters"
	"hotelbooking/models"
	"hotelbooking/services/logger"
	"hotelbooking/services/notification"
	"hotelbooking/utils"
)

const (
	msgLoadFailed     = "Không thể tải danh sách đặt phòng"
	msgNoOpenForm     = "Chưa mở form đặt phòng"
	msgStatusInvalid  = "Không thể chuyển trạng thái đặt phòng"
	msgBookingMissing = "Không tìm thấy đặt phòng"
)

// PageDeps các phụ thuộc của một trang quản lý đặt phòng
type PageDeps struct {
	Bookings  BookingStore
	Customers CustomerStore
	Notifier  notification.Service
	Logger    logger.Logger
	// Location múi giờ dùng cho các mốc ngày của bộ lọc
	Location  *time.Location
	WeekStart time.Weekday
	// Clock mặc định là time.Now
	Clock func() time.Time
}

// BookingPage giữ trạng thái trang quản lý đặt phòng của một session:
// danh sách gốc, bộ lọc, tìm kiếm, sắp xếp và các dialog đang mở.
type BookingPage struct {
	mu sync.Mutex

	sessionID string
	deps      PageDeps

	source    []models.Booking
	customers []models.Customer
	cities    []string
	loaded    bool

	search    string
	filters   dto.BookingFilters
	sortField filters.SortField
	sortDir   string

	form         *BookingForm
	deleteTarget string

	lastUsed time.Time
}

func NewBookingPage(sessionID string, deps PageDeps) *BookingPage {
	if deps.Location == nil {
		deps.Location = models.DefaultLocation
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = logger.Nop{}
	}
	if deps.Notifier == nil {
		deps.Notifier = &notification.Recorder{}
	}
	p := &BookingPage{
		sessionID: sessionID,
		deps:      deps,
		filters:   dto.DefaultBookingFilters(),
		sortField: filters.SortCreatedAt,
		sortDir:   constants.SortDesc,
	}
	p.lastUsed = p.now()
	return p
}

func (p *BookingPage) now() time.Time {
	return p.deps.Clock().In(p.deps.Location)
}

func (p *BookingPage) touch() {
	p.lastUsed = p.now()
}

// LastUsed thời điểm trang được dùng gần nhất
func (p *BookingPage) LastUsed() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastUsed
}

func (p *BookingPage) Loaded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded
}

// Load tải lại danh sách đặt phòng và khách hàng.
// Khi lỗi, trạng thái cũ được giữ nguyên.
func (p *BookingPage) Load(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.touch()

	bookings, err := p.deps.Bookings.ListBookings(ctx)
	if err != nil {
		p.fail("load", msgLoadFailed, err)
		return err
	}
	customers, err := p.deps.Customers.ListCustomers(ctx)
	if err != nil {
		p.fail("load", msgLoadFailed, err)
		return err
	}

	p.source = bookings
	p.customers = customers
	p.cities = uniqueCities(bookings)
	p.loaded = true
	observeOperation("load", nil)
	p.deps.Logger.Debug("Session %s: đã tải %d đặt phòng", p.sessionID, len(bookings))
	return nil
}

// Visible danh sách hiển thị sau khi lọc và sắp xếp
func (p *BookingPage) Visible() []models.Booking {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.touch()
	return p.visible()
}

func (p *BookingPage) visible() []models.Booking {
	start := time.Now()
	defer func() { filterDuration.Observe(time.Since(start).Seconds()) }()
	return filters.Apply(p.source, p.query(), p.now())
}

func (p *BookingPage) query() filters.Query {
	return filters.Query{
		Search:    p.search,
		Filters:   p.filters,
		SortField: p.sortField,
		SortDir:   p.sortDir,
		WeekStart: p.deps.WeekStart,
	}
}

// View dựng dữ liệu trả về cho màn hình danh sách
func (p *BookingPage) View() dto.BookingListResponse {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.touch()

	visible := p.visible()
	return dto.BookingListResponse{
		Bookings:  visible,
		Total:     len(p.source),
		Filtered:  len(visible),
		Search:    p.search,
		Filters:   p.filters,
		SortField: string(p.sortField),
		SortDir:   p.sortDir,
		Cities:    slices.Clone(p.cities),
	}
}

func (p *BookingPage) SetSearch(term string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.touch()
	p.search = term
}

// SetFilters thay toàn bộ bộ lọc; giá trị rỗng được hiểu là "all".
func (p *BookingPage) SetFilters(f dto.BookingFilters) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.touch()
	p.filters = normalizeFilters(f)
}

func (p *BookingPage) ResetFilters() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.touch()
	p.search = ""
	p.filters = dto.DefaultBookingFilters()
	p.sortField = filters.SortCreatedAt
	p.sortDir = constants.SortDesc
}

func (p *BookingPage) SetSort(field, dir string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.touch()
	p.sortField = filters.SortField(field)
	p.sortDir = filters.NormalizeDir(dir)
}

// ToggleSort bấm lại cùng cột thì đảo chiều, cột khác thì sắp tăng dần
func (p *BookingPage) ToggleSort(field string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.touch()
	if p.sortField == filters.SortField(field) {
		if p.sortDir == constants.SortAsc {
			p.sortDir = constants.SortDesc
		} else {
			p.sortDir = constants.SortAsc
		}
		return
	}
	p.sortField = filters.SortField(field)
	p.sortDir = constants.SortAsc
}

// LastFilters trạng thái tìm kiếm hiện tại để lưu theo session
func (p *BookingPage) LastFilters() dto.LastFilters {
	p.mu.Lock()
	defer p.mu.Unlock()
	return dto.LastFilters{
		Search:    p.search,
		Filters:   p.filters,
		SortField: string(p.sortField),
		SortDir:   p.sortDir,
	}
}

// RestoreFilters khôi phục trạng thái tìm kiếm đã lưu
func (p *BookingPage) RestoreFilters(lf dto.LastFilters) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.search = lf.Search
	p.filters = normalizeFilters(lf.Filters)
	if lf.SortField != "" {
		p.sortField = filters.SortField(lf.SortField)
		p.sortDir = filters.NormalizeDir(lf.SortDir)
	}
}

func (p *BookingPage) Cities() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.cities)
}

func (p *BookingPage) Customers() []models.Customer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.customers)
}

// OpenCreate mở form tạo mới
func (p *BookingPage) OpenCreate() *BookingForm {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.touch()
	p.form = NewBookingForm(nil)
	return p.form
}

// OpenEdit mở form sửa booking id
func (p *BookingPage) OpenEdit(id string) (*BookingForm, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.touch()

	idx := p.indexOf(id)
	if idx < 0 {
		return nil, notFound(id)
	}
	booking := p.source[idx]
	p.form = NewBookingForm(&booking)
	return p.form, nil
}

func (p *BookingPage) CloseForm() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.touch()
	p.form = nil
}

// Form form đang mở, nil nếu không có
func (p *BookingPage) Form() *BookingForm {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.form
}

func (p *BookingPage) RequestDelete(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.touch()

	if p.indexOf(id) < 0 {
		return notFound(id)
	}
	p.deleteTarget = id
	return nil
}

func (p *BookingPage) CancelDelete() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.touch()
	p.deleteTarget = ""
}

// DeleteTarget id booking đang chờ xác nhận xóa
func (p *BookingPage) DeleteTarget() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.deleteTarget
}

// Submit gửi form đang mở. Lỗi kiểm tra và lỗi data service đều được trả về
// dưới dạng FieldErrors; lỗi data service nằm ở trường "submit".
func (p *BookingPage) Submit(ctx context.Context, values dto.BookingForm) (models.Booking, apperrors.FieldErrors) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.touch()

	form := p.form
	if form == nil {
		return models.Booking{}, apperrors.FieldErrors{apperrors.SubmitField: msgNoOpenForm}
	}

	operation := "create"
	if form.IsEdit() {
		operation = "update"
	}

	var saved models.Booking
	var submitErr error
	ok := form.Submit(ctx, values, func(ctx context.Context, payload dto.BookingPayload) error {
		submitErr = p.save(ctx, form, payload, &saved)
		return submitErr
	})
	if !ok {
		if submitErr != nil {
			observeOperation(operation, submitErr)
			p.deps.Logger.Error("Session %s: %s đặt phòng thất bại: %v", p.sessionID, operation, submitErr)
			p.notify(notification.Failure(form.Errors[apperrors.SubmitField]))
		}
		return models.Booking{}, form.Errors
	}

	observeOperation(operation, nil)
	if form.IsEdit() {
		p.merge(saved)
		p.notify(notification.Success(notification.NewMessageBuilder("updated", saved).Build()))
	} else {
		p.source = append([]models.Booking{saved}, p.source...)
		p.addCity(saved.City)
		p.notify(notification.Success(notification.NewMessageBuilder("created", saved).Build()))
	}
	p.form = nil
	return saved, nil
}

func (p *BookingPage) save(ctx context.Context, form *BookingForm, payload dto.BookingPayload, saved *models.Booking) error {
	customer, err := p.deps.Customers.GetCustomer(ctx, payload.CustomerID)
	if err != nil {
		return err
	}
	payload.CustomerName = customer.Name

	if form.IsEdit() {
		cmd := commands.NewUpdateBookingCommand(p.deps.Bookings, form.EditingID, payload)
		if err := cmd.Execute(ctx); err != nil {
			return err
		}
		*saved = cmd.Result
		return nil
	}

	cmd := commands.NewCreateBookingCommand(p.deps.Bookings, payload)
	if err := cmd.Execute(ctx); err != nil {
		return err
	}
	*saved = cmd.Result
	return nil
}

// ConfirmDelete xóa booking đã chọn rồi bỏ khỏi danh sách, không tải lại.
func (p *BookingPage) ConfirmDelete(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.touch()

	id := p.deleteTarget
	if id == "" {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidOperation, "Chưa chọn đặt phòng cần xóa", apperrors.ErrNothingSelected)
	}

	if err := commands.NewDeleteBookingCommand(p.deps.Bookings, id).Execute(ctx); err != nil {
		p.fail("delete", errorMessage(err), err)
		return err
	}
	observeOperation("delete", nil)

	var removed models.Booking
	if idx := p.indexOf(id); idx >= 0 {
		removed = p.source[idx]
		p.source = slices.Delete(slices.Clone(p.source), idx, idx+1)
	}
	if removed.ID == "" {
		removed.ID = id
	}
	p.deleteTarget = ""
	p.notify(notification.Success(notification.NewMessageBuilder("deleted", removed).Build()))
	return nil
}

// ChangeStatus chuyển nhanh trạng thái của booking id sang status
func (p *BookingPage) ChangeStatus(ctx context.Context, id string, status models.BookingStatus) (models.Booking, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.touch()

	idx := p.indexOf(id)
	if idx < 0 {
		err := notFound(id)
		p.fail("status", msgBookingMissing, err)
		return models.Booking{}, err
	}

	next := p.source[idx]
	if err := models.Transition(&next, status); err != nil {
		appErr := apperrors.NewAppError(apperrors.ErrCodeInvalidOperation, msgStatusInvalid,
			fmt.Errorf("%w: %w", apperrors.ErrInvalidTransition, err))
		p.fail("status", msgStatusInvalid, appErr)
		return models.Booking{}, appErr
	}

	cmd := commands.NewUpdateBookingCommand(p.deps.Bookings, id, dto.PayloadFromBooking(next))
	if err := cmd.Execute(ctx); err != nil {
		p.fail("status", errorMessage(err), err)
		return models.Booking{}, err
	}
	observeOperation("status", nil)

	p.merge(cmd.Result)
	p.notify(notification.Success(notification.NewMessageBuilder("status", cmd.Result).Build()))
	return cmd.Result, nil
}

// PrintVoucher dựng dữ liệu voucher của booking id; chưa xuất file.
func (p *BookingPage) PrintVoucher(id string) (dto.VoucherResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.touch()

	idx := p.indexOf(id)
	if idx < 0 {
		err := notFound(id)
		p.fail("voucher", msgBookingMissing, err)
		return dto.VoucherResponse{}, err
	}
	b := p.source[idx]

	location := b.City
	if b.Country != "" {
		location = b.City + ", " + b.Country
	}
	guests := fmt.Sprintf("%d người lớn", b.Adults)
	if b.Children > 0 {
		guests += fmt.Sprintf(", %d trẻ em", b.Children)
	}

	voucher := dto.VoucherResponse{
		BookingID:     b.ID,
		BookingNumber: b.BookingNumber,
		CustomerName:  b.CustomerName,
		HotelName:     b.HotelName,
		Location:      location,
		CheckIn:       utils.FormatDate(b.CheckIn),
		CheckOut:      utils.FormatDate(b.CheckOut),
		Nights:        b.Nights,
		RoomType:      string(b.RoomType),
		Rooms:         b.Rooms,
		Guests:        guests,
		MealPlan:      string(b.MealPlan),
		TotalAmount:   utils.FormatAmount(b.TotalAmount),
		PaidAmount:    utils.FormatAmount(b.PaidAmount),
		BalanceDue:    utils.FormatAmount(b.BalanceDue()),
		Status:        string(b.Status),
	}
	observeOperation("voucher", nil)
	p.notify(notification.Info(notification.NewMessageBuilder("voucher", b).Build()))
	return voucher, nil
}

func (p *BookingPage) indexOf(id string) int {
	return slices.IndexFunc(p.source, func(b models.Booking) bool { return b.ID == id })
}

// merge thay bản ghi cùng id; chưa có thì thêm lên đầu
func (p *BookingPage) merge(b models.Booking) {
	next := slices.Clone(p.source)
	if idx := slices.IndexFunc(next, func(x models.Booking) bool { return x.ID == b.ID }); idx >= 0 {
		next[idx] = b
	} else {
		next = append([]models.Booking{b}, next...)
	}
	p.source = next
}

func (p *BookingPage) addCity(city string) {
	if city == "" || slices.Contains(p.cities, city) {
		return
	}
	p.cities = append(slices.Clone(p.cities), city)
}

func (p *BookingPage) fail(operation, message string, err error) {
	observeOperation(operation, err)
	p.deps.Logger.Error("Session %s: %s thất bại: %v", p.sessionID, operation, err)
	p.notify(notification.Failure(message))
}

func (p *BookingPage) notify(toast notification.Toast) {
	if err := p.deps.Notifier.Send(p.sessionID, toast); err != nil {
		p.deps.Logger.Error("Không thể gửi thông báo tới session %s: %v", p.sessionID, err)
	}
}

func notFound(id string) error {
	return apperrors.NewAppError(apperrors.ErrCodeDBNotFound, msgBookingMissing,
		fmt.Errorf("%w: %s", apperrors.ErrBookingNotFound, id))
}

func normalizeFilters(f dto.BookingFilters) dto.BookingFilters {
	if f.Status == "" {
		f.Status = constants.FilterAll
	}
	if f.DateRange == "" {
		f.DateRange = constants.DateRangeAll
	}
	if f.RoomType == "" {
		f.RoomType = constants.FilterAll
	}
	if f.City == constants.FilterAll {
		f.City = ""
	}
	return f
}

// uniqueCities các thành phố khác rỗng, không trùng, đã sắp xếp
func uniqueCities(bookings []models.Booking) []string {
	cities := make([]string, 0, len(bookings))
	for _, b := range bookings {
		if b.City != "" {
			cities = append(cities, b.City)
		}
	}
	slices.Sort(cities)
	return slices.Compact(cities)
}
