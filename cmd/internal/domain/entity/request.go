package entity

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusRejected RequestStatus = "rejected"
)

type RequestType int

const (
	RequestTypeDocument RequestType = 1
	RequestTypeOthers   RequestType = 2
)

// Request is a company's ask for a document or service from the back
// office. Requests start pending and are resolved by an administrator.
type Request struct {
	ID          int64         `gorm:"primaryKey" json:"id"`
	Description string        `gorm:"not null" json:"description"`
	Status      RequestStatus `gorm:"not null;default:pending" json:"status"`
	Type        RequestType   `gorm:"not null;default:1" json:"type"`
	CompanyID   int64         `gorm:"not null;index" json:"companyId"`
	Deleted     bool          `gorm:"not null;default:false" json:"deleted"`
	CreatedAt   int64         `gorm:"not null" json:"createdAt"`
	UpdatedAt   int64         `gorm:"not null;autoUpdateTime:false" json:"updatedAt"`

	// Relations
	Company *Company `gorm:"foreignKey:CompanyID;references:ID" json:"company,omitempty"`
}

func ValidRequestStatus(s RequestStatus) bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusRejected:
		return true
	}
	return false
}
