package entity

// Dot is a company's Department of Taxation registration record.
type Dot struct {
	ID                 int64  `gorm:"primaryKey" json:"id"`
	DotNumber          string `gorm:"not null" json:"dotNumber"`
	NotedDate          int64  `gorm:"not null" json:"notedDate"`
	DotBranch          string `json:"dotBranch"`
	Address            string `json:"address"`
	BankName           string `json:"bankName"`
	BankAccountName    string `json:"bankAccountName"`
	BankAccountNumber  string `json:"bankAccountNumber"`
	TaxationCardNumber string `json:"taxationCardNumber"`
	PhoneNumber        string `json:"phoneNumber"`
	Deleted            bool   `gorm:"not null;default:false" json:"deleted"`
	CreatedAt          int64  `gorm:"not null" json:"createdAt"`
	UpdatedAt          int64  `gorm:"not null;autoUpdateTime:false" json:"updatedAt"`
}
