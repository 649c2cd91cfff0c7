package goCertify

import "github.com/MrEthical07/goCertify/session"

// EventTemplate defines a public type used by goCertify APIs.
//
// EventTemplate instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type EventTemplate string

const (
	// TemplateDefault is an exported constant or variable used by the certificate engine.
	TemplateDefault EventTemplate = "DEFAULTDESIGN"
	// TemplateTechnology1 is an exported constant or variable used by the certificate engine.
	TemplateTechnology1 EventTemplate = "TECHNOLOGYDESIGN_1"
	// TemplateTechnology2 is an exported constant or variable used by the certificate engine.
	TemplateTechnology2 EventTemplate = "TECHNOLOGYDESIGN_2"
	// TemplateTechnology3 is an exported constant or variable used by the certificate engine.
	TemplateTechnology3 EventTemplate = "TECHNOLOGYDESIGN_3"
	// TemplateFormal1 is an exported constant or variable used by the certificate engine.
	TemplateFormal1 EventTemplate = "FORMALDESIGN_1"
	// TemplateFormal2 is an exported constant or variable used by the certificate engine.
	TemplateFormal2 EventTemplate = "FORMALDESIGN_2"
	// TemplateFormal3 is an exported constant or variable used by the certificate engine.
	TemplateFormal3 EventTemplate = "FORMALDESIGN_3"
	// TemplateSemnasti is an exported constant or variable used by the certificate engine.
	TemplateSemnasti EventTemplate = "SEMNASTIDESIGN"
)

// LogoOption selects which of the two certificate logo slots an upload
// targets.
type LogoOption string

const (
	// LogoFirst is an exported constant or variable used by the certificate engine.
	LogoFirst LogoOption = "first"
	// LogoSecond is an exported constant or variable used by the certificate engine.
	LogoSecond LogoOption = "second"
)

// Stakeholder defines a public type used by goCertify APIs.
//
// Stakeholder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Stakeholder struct {
	UID       string  `json:"uid"`
	Name      string  `json:"name"`
	Position  string  `json:"position"`
	PhotoPath *string `json:"photoPath"`
}

// Event defines a public type used by goCertify APIs.
//
// Event instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Event struct {
	UID            string        `json:"uid"`
	EventName      string        `json:"eventName"`
	EventTheme     string        `json:"eventTheme"`
	Description    string        `json:"description"`
	ActivityAt     string        `json:"activityAt"`
	Organizer      string        `json:"organizer"`
	PrefixCode     string        `json:"prefixCode"`
	SuffixCode     int           `json:"suffixCode"`
	LogoFirstPath  *string       `json:"logoFirstPath"`
	LogoSecondPath *string       `json:"logoSecondPath"`
	EventTemplate  EventTemplate `json:"eventTemplate"`
	Stakeholders   []Stakeholder `json:"stakeholders,omitempty"`
	CreatedAt      string        `json:"createdAt,omitempty"`
	UpdatedAt      string        `json:"updatedAt,omitempty"`
}

// Participant defines a public type used by goCertify APIs.
//
// Participant instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Participant struct {
	UID             string `json:"uid"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Position        string `json:"position"`
	CertificateCode string `json:"certificateCode,omitempty"`
}

// Certificate is the public view of a single participant's certificate:
// the participant row joined with the event that issued it.
type Certificate struct {
	Participant Participant `json:"participant"`
	Event       Event       `json:"event"`
}

// User defines a public type used by goCertify APIs.
//
// User instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type User struct {
	UID            string                 `json:"uid"`
	Email          string                 `json:"email"`
	Role           session.Role           `json:"roles"`
	PremiumPackage session.PremiumPackage `json:"packagePremium"`
	VerifiedEmail  bool                   `json:"verifiedEmail"`
	CreatedAt      string                 `json:"createdAt,omitempty"`
}

// CreateEventInput defines a public type used by goCertify APIs.
//
// CreateEventInput instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CreateEventInput struct {
	EventName           string        `validate:"required,min=3,max=100"`
	Description         string        `validate:"required,min=3"`
	ActivityAt          string        `validate:"required"`
	PrefixCode          string        `validate:"required,certprefix"`
	SuffixCode          int           `validate:"required,gt=0"`
	Organizer           string        `validate:"required,min=2"`
	EventTheme          string        `validate:"required,min=2"`
	EventTemplate       EventTemplate `validate:"required,oneof=DEFAULTDESIGN TECHNOLOGYDESIGN_1 TECHNOLOGYDESIGN_2 TECHNOLOGYDESIGN_3 FORMALDESIGN_1 FORMALDESIGN_2 FORMALDESIGN_3 SEMNASTIDESIGN"`
	StakeholderName     string        `validate:"required,min=2"`
	StakeholderPosition string        `validate:"required,min=2"`
}

// UpdateEventInput defines a public type used by goCertify APIs.
//
// UpdateEventInput instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// Empty fields are left untouched by the backend; SuffixCode zero means
// "do not change".
type UpdateEventInput struct {
	EventName     string        `validate:"omitempty,min=3,max=100"`
	Description   string        `validate:"omitempty,min=3"`
	ActivityAt    string        `validate:"omitempty"`
	PrefixCode    string        `validate:"omitempty,certprefix"`
	SuffixCode    int           `validate:"omitempty,gt=0"`
	Organizer     string        `validate:"omitempty,min=2"`
	EventTheme    string        `validate:"omitempty,min=2"`
	EventTemplate EventTemplate `validate:"omitempty,oneof=DEFAULTDESIGN TECHNOLOGYDESIGN_1 TECHNOLOGYDESIGN_2 TECHNOLOGYDESIGN_3 FORMALDESIGN_1 FORMALDESIGN_2 FORMALDESIGN_3 SEMNASTIDESIGN"`
}

// UpdateStakeholderInput defines a public type used by goCertify APIs.
//
// UpdateStakeholderInput instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type UpdateStakeholderInput struct {
	Name     string `validate:"required,min=2"`
	Position string `validate:"required,min=2"`
}

// ParticipantInput defines a public type used by goCertify APIs.
//
// ParticipantInput instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ParticipantInput struct {
	Name     string `validate:"required,min=1"`
	Email    string `validate:"required,email"`
	Position string `validate:"required,min=1"`
}

// SignUpByAdminInput defines a public type used by goCertify APIs.
//
// SignUpByAdminInput instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SignUpByAdminInput struct {
	Email           string                 `validate:"required,email"`
	Password        string                 `validate:"required,min=8"`
	ConfirmPassword string                 `validate:"required,eqfield=Password"`
	Role            session.Role           `validate:"required,oneof=USER SUPERADMIN"`
	PremiumPackage  session.PremiumPackage `validate:"required,oneof=FREEPLAN SILVER GOLD PLATINUM"`
}

// MutationResult defines a public type used by goCertify APIs.
//
// MutationResult instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// A MutationResult is the only outcome a mutation produces: no error
// return, no panic. Message is always human-presentable.
type MutationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func failure(message string) MutationResult {
	return MutationResult{Success: false, Message: message}
}

func success(message string) MutationResult {
	return MutationResult{Success: true, Message: message}
}
