package models

// BookingStatus trạng thái đặt phòng
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// RoomType loại phòng
type RoomType string

const (
	RoomTypeStandard RoomType = "standard"
	RoomTypeDeluxe   RoomType = "deluxe"
	RoomTypeSuite    RoomType = "suite"
	RoomTypeFamily   RoomType = "family"
)

// MealPlan gói ăn uống
type MealPlan string

const (
	MealPlanBreakfast    MealPlan = "breakfast"
	MealPlanHalfBoard    MealPlan = "halfBoard"
	MealPlanFullBoard    MealPlan = "fullBoard"
	MealPlanAllInclusive MealPlan = "allInclusive"
	MealPlanRoomOnly     MealPlan = "roomOnly"
)

// PaymentMethod phương thức thanh toán
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

type Booking struct {
	ID              string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	BookingNumber   string        `json:"bookingNumber,omitempty" gorm:"index"`
	CustomerID      string        `json:"customerId" gorm:"index"`
	CustomerName    string        `json:"customerName"`
	HotelName       string        `json:"hotelName"`
	City            string        `json:"city" gorm:"index"`
	Country         string        `json:"country"`
	CheckIn         Instant       `json:"checkIn"`
	CheckOut        Instant       `json:"checkOut"`
	Nights          int           `json:"nights"`
	RoomType        RoomType      `json:"roomType"`
	Rooms           int           `json:"rooms"`
	Adults          int           `json:"adults"`
	Children        int           `json:"children"`
	MealPlan        MealPlan      `json:"mealPlan"`
	TotalAmount     float64       `json:"totalAmount"`
	PaidAmount      float64       `json:"paidAmount"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	Status          BookingStatus `json:"status" gorm:"index"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	CreatedAt       Instant       `json:"createdAt"`
	UpdatedAt       Instant       `json:"updatedAt"`
}

// BalanceDue số tiền còn phải thu
func (b Booking) BalanceDue() float64 {
	due := b.TotalAmount - b.PaidAmount
	if due < 0 {
		return 0
	}
	return due
}

func RoomTypes() []RoomType {
	return []RoomType{RoomTypeStandard, RoomTypeDeluxe, RoomTypeSuite, RoomTypeFamily}
}

func MealPlans() []MealPlan {
	return []MealPlan{MealPlanBreakfast, MealPlanHalfBoard, MealPlanFullBoard, MealPlanAllInclusive, MealPlanRoomOnly}
}

func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer}
}

func BookingStatuses() []BookingStatus {
	return []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted}
}
