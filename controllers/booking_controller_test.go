package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"hotelbooking/builders"
	"hotelbooking/dto"
	apperrors "hotelbooking/errors"
	"hotelbooking/middleware"
	"hotelbooking/models"
	"hotelbooking/services"
	"hotelbooking/services/notification"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memoryBookings struct {
	bookings []models.Booking
	seq      int
}

func (m *memoryBookings) ListBookings(context.Context) ([]models.Booking, error) {
	return append([]models.Booking(nil), m.bookings...), nil
}

func (m *memoryBookings) CreateBooking(_ context.Context, p dto.BookingPayload) (models.Booking, error) {
	m.seq++
	b := models.Booking{
		ID: "new-" + strconv.Itoa(m.seq), CustomerID: p.CustomerID, CustomerName: p.CustomerName,
		HotelName: p.HotelName, City: p.City, CheckIn: p.CheckIn, CheckOut: p.CheckOut, Nights: p.Nights,
		RoomType: p.RoomType, Rooms: p.Rooms, Adults: p.Adults, Children: p.Children, MealPlan: p.MealPlan,
		TotalAmount: p.TotalAmount, PaidAmount: p.PaidAmount, PaymentMethod: p.PaymentMethod, Status: p.Status,
	}
	m.bookings = append(m.bookings, b)
	return b, nil
}

func (m *memoryBookings) UpdateBooking(_ context.Context, id string, p dto.BookingPayload) (models.Booking, error) {
	for i, b := range m.bookings {
		if b.ID == id {
			b.Status = p.Status
			b.HotelName = p.HotelName
			b.TotalAmount = p.TotalAmount
			m.bookings[i] = b
			return b, nil
		}
	}
	return models.Booking{}, apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "Không tìm thấy đặt phòng", apperrors.ErrBookingNotFound)
}

func (m *memoryBookings) DeleteBooking(_ context.Context, id string) error {
	for i, b := range m.bookings {
		if b.ID == id {
			m.bookings = append(m.bookings[:i], m.bookings[i+1:]...)
			return nil
		}
	}
	return apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "Không tìm thấy đặt phòng", apperrors.ErrBookingNotFound)
}

// downBookings luôn lỗi khi đọc danh sách
type downBookings struct {
	memoryBookings
	listCalls int
}

func (d *downBookings) ListBookings(context.Context) ([]models.Booking, error) {
	d.listCalls++
	return nil, errors.New("connection refused")
}

type memoryCustomers []models.Customer

func (m memoryCustomers) ListCustomers(context.Context) ([]models.Customer, error) {
	return m, nil
}

func (m memoryCustomers) GetCustomer(_ context.Context, id string) (models.Customer, error) {
	for _, c := range m {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Customer{}, apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "Không tìm thấy khách hàng", apperrors.ErrCustomerNotFound)
}

func seedBooking(id, city string, status models.BookingStatus, total float64) models.Booking {
	loc := time.FixedZone("ICT", 7*60*60)
	b := builders.NewBookingBuilder().
		WithID(id).
		WithBookingNumber("BK-"+id).
		WithCustomer("c1", "Lê Minh").
		WithHotel("Hotel "+city, city, "").
		WithStay(time.Date(2024, 3, 20, 14, 0, 0, 0, loc), time.Date(2024, 3, 21, 12, 0, 0, 0, loc)).
		WithRoomType(models.RoomTypeDeluxe).
		WithAmounts(total, 0).
		WithStatus(status).
		Build()
	b.Adults = 2
	b.PaymentMethod = models.PaymentMethodCard
	return b
}

type envelope struct {
	Code   int               `json:"code"`
	Mess   string            `json:"mess"`
	Data   json.RawMessage   `json:"data"`
	Errors map[string]string `json:"errors"`
	Total  int               `json:"total"`
}

func newTestRouter(store services.BookingStore) *gin.Engine {
	deps := services.PageDeps{
		Bookings:  store,
		Customers: memoryCustomers{{ID: "c1", Name: "Lê Minh"}, {ID: "c2", Name: "Phạm Thu"}},
		Notifier:  &notification.Recorder{},
		Location:  time.FixedZone("ICT", 7*60*60),
		Clock:     func() time.Time { return time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC) },
	}
	bc := NewBookingController(services.NewPageRegistry(deps, nil, time.Hour))
	cc := NewCustomerController(deps.Customers)

	r := gin.New()
	r.Use(middleware.SessionMiddleware())
	v1 := r.Group("/api/v1")
	v1.GET("/bookings", bc.GetBookings)
	v1.POST("/bookings/reload", bc.ReloadBookings)
	v1.DELETE("/bookings/filters", bc.ResetFilters)
	v1.GET("/bookings/cities", bc.GetCities)
	v1.GET("/bookings/cities/suggest", bc.SuggestCities)
	v1.POST("/bookings", bc.CreateBooking)
	v1.PUT("/bookings/:id", bc.UpdateBooking)
	v1.DELETE("/bookings/:id", bc.DeleteBooking)
	v1.PATCH("/bookings/:id/status", bc.ChangeBookingStatus)
	v1.GET("/bookings/:id/voucher", bc.PrintVoucher)
	v1.GET("/customers", cc.GetCustomers)
	v1.GET("/customers/:id", cc.GetCustomerDetail)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(middleware.SessionHeader, "session-test")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: invalid body %q: %v", method, path, w.Body.String(), err)
	}
	return w, env
}

func TestGetBookings_FilterAndSort(t *testing.T) {
	r := newTestRouter(&memoryBookings{bookings: []models.Booking{
		seedBooking("b1", "Hà Nội", models.BookingStatusPending, 300),
		seedBooking("b2", "Huế", models.BookingStatusConfirmed, 100),
		seedBooking("b3", "Huế", models.BookingStatusConfirmed, 200),
	}})

	w, env := do(t, r, http.MethodGet, "/api/v1/bookings?status=confirmed&sortField=totalAmount&sortDir=desc", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var list dto.BookingListResponse
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatal(err)
	}
	if list.Total != 3 || list.Filtered != 2 {
		t.Fatalf("total/filtered = %d/%d", list.Total, list.Filtered)
	}
	if list.Bookings[0].ID != "b3" || list.Bookings[1].ID != "b2" {
		t.Errorf("order = %s,%s", list.Bookings[0].ID, list.Bookings[1].ID)
	}

	// bộ lọc được giữ cho các request sau của cùng session
	_, env = do(t, r, http.MethodGet, "/api/v1/bookings?city=Hu%E1%BA%BF", "")
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatal(err)
	}
	if list.Filters.Status != "confirmed" || list.Filtered != 2 {
		t.Errorf("filters not kept: %+v filtered=%d", list.Filters, list.Filtered)
	}

	_, env = do(t, r, http.MethodDelete, "/api/v1/bookings/filters", "")
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatal(err)
	}
	if list.Filtered != 3 {
		t.Errorf("after reset filtered = %d, want 3", list.Filtered)
	}
}

func TestGetBookings_ClearSingleDateBound(t *testing.T) {
	r := newTestRouter(&memoryBookings{bookings: []models.Booking{
		seedBooking("b1", "Hà Nội", models.BookingStatusPending, 300),
		seedBooking("b2", "Huế", models.BookingStatusConfirmed, 100),
	}})

	var list dto.BookingListResponse
	_, env := do(t, r, http.MethodGet, "/api/v1/bookings?dateRange=custom&startDate=2024-03-01&endDate=2024-03-10", "")
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatal(err)
	}
	if list.Filtered != 0 {
		t.Fatalf("filtered = %d, want 0", list.Filtered)
	}

	// endDate rỗng chỉ xóa mốc cuối, giữ mốc đầu
	_, env = do(t, r, http.MethodGet, "/api/v1/bookings?endDate=", "")
	list = dto.BookingListResponse{}
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatal(err)
	}
	if list.Filters.EndDate != "" || list.Filters.StartDate != "2024-03-01" || list.Filters.DateRange != "custom" {
		t.Errorf("filters = %+v", list.Filters)
	}
	if list.Filtered != 2 {
		t.Errorf("filtered = %d, want 2", list.Filtered)
	}
}

func TestGetBookings_FailingStoreQueriedOnce(t *testing.T) {
	store := &downBookings{}
	r := newTestRouter(store)

	w, _ := do(t, r, http.MethodGet, "/api/v1/bookings", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if store.listCalls != 1 {
		t.Errorf("listCalls = %d, want 1", store.listCalls)
	}
}

func TestCreateBooking(t *testing.T) {
	store := &memoryBookings{bookings: []models.Booking{seedBooking("b1", "Hà Nội", models.BookingStatusPending, 300)}}
	r := newTestRouter(store)

	body := `{"customerId":"c2","hotelName":"Lotus","city":"Đà Lạt","checkIn":"2024-01-01","checkOut":"2024-01-03","rooms":2,"adults":"2","totalAmount":1500000,"paidAmount":"0"}`
	w, env := do(t, r, http.MethodPost, "/api/v1/bookings", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	var saved models.Booking
	if err := json.Unmarshal(env.Data, &saved); err != nil {
		t.Fatal(err)
	}
	if saved.Nights != 2 || saved.CustomerName != "Phạm Thu" || saved.Rooms != 2 {
		t.Errorf("saved = %+v", saved)
	}

	_, env = do(t, r, http.MethodGet, "/api/v1/bookings/cities", "")
	var cities []string
	if err := json.Unmarshal(env.Data, &cities); err != nil {
		t.Fatal(err)
	}
	if len(cities) != 2 {
		t.Errorf("cities = %v, want 2", cities)
	}
}

func TestCreateBooking_ValidationErrors(t *testing.T) {
	r := newTestRouter(&memoryBookings{})

	body := `{"customerId":"c1","hotelName":"Lotus","city":"Huế","checkIn":"2024-01-03","checkOut":"2024-01-01","totalAmount":"100","paidAmount":"150"}`
	w, env := do(t, r, http.MethodPost, "/api/v1/bookings", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if env.Errors["checkOut"] == "" || env.Errors["paidAmount"] == "" {
		t.Errorf("errors = %v", env.Errors)
	}
}

func TestCreateBooking_UnknownCustomer(t *testing.T) {
	r := newTestRouter(&memoryBookings{})

	body := `{"customerId":"nobody","hotelName":"Lotus","city":"Huế","checkIn":"2024-01-01","checkOut":"2024-01-02","totalAmount":"100"}`
	w, env := do(t, r, http.MethodPost, "/api/v1/bookings", body)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", w.Code)
	}
	if env.Errors["submit"] == "" {
		t.Errorf("errors = %v", env.Errors)
	}
}

func TestUpdateAndDeleteBooking(t *testing.T) {
	store := &memoryBookings{bookings: []models.Booking{
		seedBooking("b1", "Hà Nội", models.BookingStatusPending, 300),
		seedBooking("b2", "Huế", models.BookingStatusConfirmed, 100),
	}}
	r := newTestRouter(store)

	body := `{"customerId":"c1","hotelName":"Grand","city":"Huế","checkIn":"2024-03-20","checkOut":"2024-03-22","totalAmount":"450","status":"confirmed"}`
	w, _ := do(t, r, http.MethodPut, "/api/v1/bookings/b2", body)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d body=%s", w.Code, w.Body.String())
	}
	if store.bookings[1].HotelName != "Grand" {
		t.Errorf("store not updated: %+v", store.bookings[1])
	}

	if w, _ = do(t, r, http.MethodPut, "/api/v1/bookings/missing", body); w.Code != http.StatusNotFound {
		t.Errorf("update missing = %d, want 404", w.Code)
	}

	if w, _ = do(t, r, http.MethodDelete, "/api/v1/bookings/b1", ""); w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	if w, _ = do(t, r, http.MethodDelete, "/api/v1/bookings/b1", ""); w.Code != http.StatusNotFound {
		t.Errorf("second delete = %d, want 404", w.Code)
	}
}

func TestChangeBookingStatus(t *testing.T) {
	r := newTestRouter(&memoryBookings{bookings: []models.Booking{
		seedBooking("b1", "Hà Nội", models.BookingStatusPending, 300),
		seedBooking("b2", "Huế", models.BookingStatusCompleted, 100),
	}})

	w, _ := do(t, r, http.MethodPatch, "/api/v1/bookings/b1/status", `{"status":"confirmed"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w, _ = do(t, r, http.MethodPatch, "/api/v1/bookings/b2/status", `{"status":"cancelled"}`); w.Code != http.StatusConflict {
		t.Errorf("invalid transition = %d, want 409", w.Code)
	}
	if w, _ = do(t, r, http.MethodPatch, "/api/v1/bookings/b1/status", `{"status":"archived"}`); w.Code != http.StatusBadRequest {
		t.Errorf("unknown status = %d, want 400", w.Code)
	}
}

func TestPrintVoucherAndSuggest(t *testing.T) {
	r := newTestRouter(&memoryBookings{bookings: []models.Booking{
		seedBooking("b1", "Hà Nội", models.BookingStatusConfirmed, 1200000),
		seedBooking("b2", "Hải Phòng", models.BookingStatusConfirmed, 100),
	}})

	w, env := do(t, r, http.MethodGet, "/api/v1/bookings/b1/voucher", "")
	if w.Code != http.StatusOK {
		t.Fatalf("voucher status = %d", w.Code)
	}
	var voucher dto.VoucherResponse
	if err := json.Unmarshal(env.Data, &voucher); err != nil {
		t.Fatal(err)
	}
	if voucher.TotalAmount != "1.200.000 ₫" || voucher.CheckIn != "20/03/2024" {
		t.Errorf("voucher = %+v", voucher)
	}

	_, env = do(t, r, http.MethodGet, "/api/v1/bookings/cities/suggest?q=ha%20noi", "")
	var suggestions []string
	if err := json.Unmarshal(env.Data, &suggestions); err != nil {
		t.Fatal(err)
	}
	if len(suggestions) == 0 || suggestions[0] != "Hà Nội" {
		t.Errorf("suggestions = %v", suggestions)
	}
}

func TestCustomers(t *testing.T) {
	r := newTestRouter(&memoryBookings{})

	_, env := do(t, r, http.MethodGet, "/api/v1/customers", "")
	if env.Total != 2 {
		t.Errorf("total = %d", env.Total)
	}
	if w, _ := do(t, r, http.MethodGet, "/api/v1/customers/zzz", ""); w.Code != http.StatusNotFound {
		t.Errorf("missing customer = %d, want 404", w.Code)
	}
}
