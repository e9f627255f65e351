package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fixed category domain for job postings. The aggregate view counts exact
// matches only; anything else (including empty) stays uncounted.
var Categories = []string{
	"IT & Software",
	"Construction",
	"Finance",
	"Healthcare",
	"Education",
	"Business",
	"Teaching",
	"Logistics",
}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

type Job struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyName string             `bson:"companyName" json:"companyName"`
	Position    string             `bson:"position" json:"position"`
	Vacancies   int                `bson:"vacancies" json:"vacancies"`
	SalaryFrom  int                `bson:"salaryFrom" json:"salaryFrom"`
	SalaryTo    int                `bson:"salaryTo" json:"salaryTo"`
	Location    string             `bson:"location" json:"location"`
	LogoURL     string             `bson:"companyLogo,omitempty" json:"companyLogo,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "Pending"
	StatusAccepted ApplicationStatus = "Accepted"
	StatusRejected ApplicationStatus = "Rejected"
)

// Application records are created by the public site, never by this
// service. Status is a direct overwrite with no transition checks; the
// review actions only ever write Accepted or Rejected.
type Application struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ApplicantName  string             `bson:"applicantName" json:"applicantName"`
	ApplicantEmail string             `bson:"applicantEmail" json:"applicantEmail"`
	JobPosition    string             `bson:"jobPosition" json:"jobPosition"`
	CompanyName    string             `bson:"companyName" json:"companyName"`
	ResumeURL      string             `bson:"resume,omitempty" json:"resume,omitempty"`
	Status         ApplicationStatus  `bson:"status,omitempty" json:"status,omitempty"`
}

// CategoryCount is derived, never persisted.
type CategoryCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// PositionCount backs the applications-per-position chart.
type PositionCount struct {
	Position string `json:"position"`
	Value    int    `json:"value"`
}

// ContactSettings is a singleton document; a full save replaces the whole
// document, so every field is always present even when empty.
type ContactSettings struct {
	Address  string `bson:"address" json:"address"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone" json:"phone"`
	LinkedIn string `bson:"linkedin" json:"linkedin"`
	Facebook string `bson:"facebook" json:"facebook"`
	Twitter  string `bson:"twitter" json:"twitter"`
}

type Testimonial struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name"`
	Review string             `bson:"review" json:"review"`
}

// MediaAsset backs both panels (company logos and screenshots); the two
// live in parallel collections with the same shape. ObjectKey is the blob
// name, needed for the second half of a delete.
type MediaAsset struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title,omitempty" json:"title,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	AssetURL    string             `bson:"assetUrl" json:"assetUrl"`
	ObjectKey   string             `bson:"objectKey" json:"objectKey"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// HelpMessage is append-only from the public contact form; staff read and
// eventually resolve (delete) them.
type HelpMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Message   string             `bson:"message" json:"message"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
}
