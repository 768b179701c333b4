package domain

import "errors"

var ErrRegistrantNotFound = errors.New("registrant not found")
var ErrImageNotFound = errors.New("payment image not found")
var ErrMailDelivery = errors.New("email delivery failed")

// Registrant is one participant's stored registration and payment data.
// Field names mirror the document store schema; the password hash and OTP
// fields present in stored documents are deliberately never projected here.
type Registrant struct {
	ID                    string `json:"_id" bson:"_id,omitempty"`
	Email                 string `json:"email" bson:"email"`
	Verified              bool   `json:"verified" bson:"verified"`
	FullName              string `json:"fullName" bson:"fullName"`
	PhoneNumber           string `json:"phoneNumber" bson:"phoneNumber"`
	CollegeName           string `json:"collegeName" bson:"collegeName"`
	Department            string `json:"department" bson:"department"`
	Paid                  bool   `json:"paid" bson:"paid"`
	TransactionNumber     string `json:"transactionNumber" bson:"transactionNumber"`
	TransactionScreenshot string `json:"transactionScreenshot" bson:"transactionScreenshot"`
	SelectedDepartment    string `json:"selectedDepartment" bson:"selectedDepartment"`
}
