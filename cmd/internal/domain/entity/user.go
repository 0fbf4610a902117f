package entity

import "strings"

type UserType int

const (
	UserTypeAdmin      UserType = 1
	UserTypeNormalUser UserType = 2
)

// User is the general basic structure of all accounts across the platform.
// Password holds the bcrypt hash and is never serialized.
type User struct {
	ID                 int64    `gorm:"primaryKey" json:"id"`
	FullName           string   `gorm:"not null" json:"fullName"`
	UserName           string   `gorm:"not null" json:"userName"`
	Password           string   `gorm:"not null" json:"-"`
	Type               UserType `gorm:"not null;default:2" json:"type"`
	PhoneNumber        string   `json:"phoneNumber"`
	RegistrationTokens string   `json:"-"` // space-joined set, see AddRegistrationToken
	CompanyID          *int64   `json:"companyId,omitempty"`
	Deleted            bool     `gorm:"not null;default:false" json:"deleted"`
	CreatedAt          int64    `gorm:"not null" json:"createdAt"`
	UpdatedAt          int64    `gorm:"not null;autoUpdateTime:false" json:"updatedAt"`

	// Relations
	Company *Company `gorm:"foreignKey:CompanyID;references:ID" json:"company,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Type == UserTypeAdmin
}

// AddRegistrationToken unions a device token into the stored set.
// Duplicates collapse; reports whether the set actually changed.
func (u *User) AddRegistrationToken(token string) bool {
	token = strings.TrimSpace(token)
	if token == "" {
		return false
	}

	tokens := u.RegistrationTokenSet()
	for _, t := range tokens {
		if t == token {
			return false
		}
	}

	u.RegistrationTokens = strings.Join(append(tokens, token), " ")
	return true
}

func (u *User) RegistrationTokenSet() []string {
	if u.RegistrationTokens == "" {
		return []string{}
	}
	return strings.Fields(u.RegistrationTokens)
}
