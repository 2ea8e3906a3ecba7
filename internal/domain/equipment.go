package domain

import "time"

type EquipmentCategory string

const (
	EquipmentCategoryInfantSeat      EquipmentCategory = "INFANT_SEAT"
	EquipmentCategoryConvertibleSeat EquipmentCategory = "CONVERTIBLE_SEAT"
	EquipmentCategoryBoosterSeat     EquipmentCategory = "BOOSTER_SEAT"
	EquipmentCategoryTravelStroller  EquipmentCategory = "TRAVEL_STROLLER"
	EquipmentCategoryAccessory       EquipmentCategory = "ACCESSORY"
)

type EquipmentCondition string

const (
	EquipmentConditionNew        EquipmentCondition = "NEW"
	EquipmentConditionExcellent  EquipmentCondition = "EXCELLENT"
	EquipmentConditionGood       EquipmentCondition = "GOOD"
	EquipmentConditionAcceptable EquipmentCondition = "ACCEPTABLE"
)

type EquipmentStatus string

const (
	EquipmentStatusListed   EquipmentStatus = "LISTED"
	EquipmentStatusUnlisted EquipmentStatus = "UNLISTED"
)

// Equipment is a rentable item (car seat, stroller, travel crib) listed by a
// provider. Money fields are dollars rounded to cents.
type Equipment struct {
	ID             int32              `json:"id"`
	ProviderID     int32              `json:"provider_id"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	Category       EquipmentCategory  `json:"category"`
	Condition      EquipmentCondition `json:"condition"`
	DailyRate      float64            `json:"daily_rate"`
	DepositAmount  float64            `json:"deposit_amount"`
	ExpirationDate *string            `json:"expiration_date,omitempty"` // car seats expire; yyyy-mm-dd
	Status         EquipmentStatus    `json:"status"`
	CreatedOn      time.Time          `json:"created_on"`
	DeletedOn      *time.Time         `json:"deleted_on,omitempty"`
}
