package models

import "time"

var (
	Genders       = []string{"male", "female"}
	DocumentTypes = []string{"national_id", "identity_card", "passport"}
	BloodTypes    = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}
	Positions     = []string{"setter", "middle_blocker", "outside_hitter", "libero", "opposite"}
)

type Athlete struct {
	Base
	FirstName         string       `gorm:"size:100;not null" json:"first_name"`
	MiddleName        string       `gorm:"size:100" json:"middle_name"`
	LastName          string       `gorm:"size:100;not null" json:"last_name"`
	SecondLastName    string       `gorm:"size:100" json:"second_last_name"`
	BirthDate         time.Time    `json:"birth_date"`
	Gender            string       `gorm:"size:10;not null;index" json:"gender"`
	DocumentNumber    string       `gorm:"size:20;uniqueIndex;not null" json:"document_number"`
	DocumentType      string       `gorm:"size:20;not null" json:"document_type"`
	BloodType         string       `gorm:"size:3;not null" json:"blood_type"`
	Phone             string       `gorm:"size:20" json:"phone"`
	Email             string       `gorm:"size:150" json:"email"`
	Address           string       `gorm:"type:text" json:"address"`
	Status            RecordStatus `gorm:"size:20;not null;default:active;index" json:"status"`
	Position          string       `gorm:"size:20" json:"position"`
	JerseyNumber      *int         `json:"jersey_number,omitempty"`
	Photo             string       `gorm:"size:255" json:"photo,omitempty"`
	IdentityDocument  string       `gorm:"size:255" json:"identity_document,omitempty"`
	BirthCertificate  string       `gorm:"size:255" json:"birth_certificate,omitempty"`
	Affiliation       string       `gorm:"size:255" json:"affiliation,omitempty"`
	HealthCertificate string       `gorm:"size:255" json:"health_certificate,omitempty"`
	GuardianPermit    string       `gorm:"size:255" json:"guardian_permit,omitempty"`
}

type Contact struct {
	Base
	AthleteID    uint     `gorm:"not null;index" json:"athlete_id"`
	Athlete      *Athlete `json:"athlete,omitempty"`
	FirstNames   string   `gorm:"size:150;not null" json:"first_names"`
	LastNames    string   `gorm:"size:150;not null" json:"last_names"`
	Relationship string   `gorm:"size:50" json:"relationship"`
	Phone        string   `gorm:"size:20;not null" json:"phone"`
	Email        string   `gorm:"size:150" json:"email"`
	Address      string   `gorm:"type:text" json:"address"`
	IsEmergency  bool     `gorm:"not null;default:false" json:"is_emergency"`
}
