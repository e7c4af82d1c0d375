package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Booking defaults
const (
	DefaultAppointmentDurationMinutes = 60
	DefaultFlowTTLMinutes             = 120
)

// Business validation constants
const (
	MaxNotesLength        = 1000
	MaxBusinessNameLength = 200
	DaysInWeek            = 7
	// MonthlyRateDays множитель дневной ставки для месячной по умолчанию
	MonthlyRateDays = 30
)

// Keywords классификации бронирования по тексту
var (
	// AppointmentServiceKeywords название услуги с этими словами = appointment
	AppointmentServiceKeywords = []string{"walk", "visit", "groom", "consultation"}
	// RangeServiceKeywords название услуги с этими словами = range
	RangeServiceKeywords = []string{"sitting", "boarding"}
	// AppointmentCategoryKeywords категории (slug или часть названия) с записью на время
	AppointmentCategoryKeywords = []string{"veterinary", "training", "grooming", "walking"}
	// WalkingKeyword признак услуги выгула
	WalkingKeyword = "walk"
)
