package domain

type Category string

const (
	CategoryAccommodation  Category = "accommodation"
	CategoryActivities     Category = "activities"
	CategoryTransportation Category = "transportation"
	CategoryMeals          Category = "meals"
	CategoryShopping       Category = "shopping"
	CategoryMiscellaneous  Category = "miscellaneous"
)

// Categories is the canonical category order used by every report.
var Categories = []Category{
	CategoryAccommodation,
	CategoryActivities,
	CategoryTransportation,
	CategoryMeals,
	CategoryShopping,
	CategoryMiscellaneous,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

type CrowdLevel string

const (
	CrowdLow    CrowdLevel = "low"
	CrowdMedium CrowdLevel = "medium"
	CrowdHigh   CrowdLevel = "high"
)

var CrowdLevels = []CrowdLevel{CrowdLow, CrowdMedium, CrowdHigh}

func (c CrowdLevel) Valid() bool {
	return c == CrowdLow || c == CrowdMedium || c == CrowdHigh
}

// ActivityStatus has no transition table: any value may be set from any other.
type ActivityStatus string

const (
	StatusPlanned   ActivityStatus = "planned"
	StatusBooked    ActivityStatus = "booked"
	StatusConfirmed ActivityStatus = "confirmed"
	StatusCancelled ActivityStatus = "cancelled"
)

var ActivityStatuses = []ActivityStatus{StatusPlanned, StatusBooked, StatusConfirmed, StatusCancelled}

func (s ActivityStatus) Valid() bool {
	for _, v := range ActivityStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ActivityTypes lists the activity kinds offered by the editor. Type is
// descriptive only; budget grouping always uses Category.
var ActivityTypes = []string{
	"activity", "restaurant", "hotel", "transport",
	"attraction", "shopping", "entertainment",
}

// ValidActivityType reports whether t is one of ActivityTypes.
func ValidActivityType(t string) bool {
	for _, v := range ActivityTypes {
		if t == v {
			return true
		}
	}
	return false
}

// SpendLevel classifies how much of a category ceiling has been used.
type SpendLevel string

const (
	SpendOK       SpendLevel = "ok"
	SpendWarning  SpendLevel = "warning"
	SpendCritical SpendLevel = "critical"
)
