package intake

import (
	"strings"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
)

// Phase names a step of the intake conversation.
type Phase string

const (
	PhaseSelectBuilder          Phase = "SELECT_BUILDER"
	PhaseCollectHouseAttributes Phase = "COLLECT_HOUSE_ATTRIBUTES"
	PhaseConfirmContinue        Phase = "CONFIRM_CONTINUE"
	PhaseSelectSupplier         Phase = "SELECT_SUPPLIER"
	PhaseSelectBank             Phase = "SELECT_BANK"
	PhaseCollectContact         Phase = "COLLECT_CONTACT"
	PhaseTicketIssued           Phase = "TICKET_ISSUED"
)

// ContactStep is the sub-phase of COLLECT_CONTACT.
type ContactStep string

const (
	ContactStepEmail   ContactStep = "EMAIL"
	ContactStepPhone   ContactStep = "PHONE"
	ContactStepMode    ContactStep = "MODE"
	ContactStepPlace   ContactStep = "PLACE"
	ContactStepVirtual ContactStep = "VIRTUAL_CHANNEL"
)

// state is the tagged union of conversation phases. Each variant carries only
// the fields its phase guarantees; values move forward by copy.
type state interface {
	phase() Phase
}

type selectBuilder struct{}

type collectHouse struct {
	builder string
	cursor  int
	answers entities.HouseAttributes
}

// design is what the house questionnaire produced.
type design struct {
	id            string
	estimatedCost int64
	blueprintRef  string
	renderRef     string
}

type confirmContinue struct {
	builder string
	answers entities.HouseAttributes
	design  design
}

type selectSupplier struct {
	builder string
	answers entities.HouseAttributes
	design  design
}

type selectBank struct {
	builder  string
	supplier string
	answers  entities.HouseAttributes
	design   design
}

// contactDraft is filled field by field; mode is only meaningful from
// ContactStepPlace/ContactStepVirtual on.
type contactDraft struct {
	step  ContactStep
	email string
	phone string
	mode  entities.ContactMode
}

type collectContact struct {
	builder  string
	supplier string
	bank     entities.Bank
	answers  entities.HouseAttributes
	design   design
	contact  contactDraft
}

// Contact is the completed contact block.
type Contact struct {
	Email          string                  `json:"email"`
	Phone          string                  `json:"phone"`
	Mode           entities.ContactMode    `json:"mode"`
	Place          string                  `json:"place,omitempty"`
	VirtualChannel entities.VirtualChannel `json:"virtual_channel,omitempty"`
}

type ticketIssued struct {
	builder   string
	supplier  string
	bank      entities.Bank
	answers   entities.HouseAttributes
	design    design
	contact   Contact
	ticket    string
	persisted bool
}

func (selectBuilder) phase() Phase   { return PhaseSelectBuilder }
func (collectHouse) phase() Phase    { return PhaseCollectHouseAttributes }
func (confirmContinue) phase() Phase { return PhaseConfirmContinue }
func (selectSupplier) phase() Phase  { return PhaseSelectSupplier }
func (selectBank) phase() Phase      { return PhaseSelectBank }
func (collectContact) phase() Phase  { return PhaseCollectContact }
func (ticketIssued) phase() Phase    { return PhaseTicketIssued }

// houseQuestion is one entry of the fixed questionnaire.
type houseQuestion struct {
	key      string
	question string
	capture  func(a *entities.HouseAttributes, text string)
}

var houseQuestions = []houseQuestion{
	{
		key:      "house_type",
		question: "Indíquenos, por favor, qué tipo de casa le interesa (por ejemplo: minimalista, moderna, rústica, tropical…).",
		capture:  func(a *entities.HouseAttributes, text string) { a.HouseType = text },
	},
	{
		key:      "area_varas",
		question: "¿De cuántas varas cuadradas aproximadamente desea que sea la vivienda? (por ejemplo: 200).",
		capture:  func(a *entities.HouseAttributes, text string) { a.AreaVaras = text },
	},
	{
		key:      "bedrooms",
		question: "¿Cuántas habitaciones considera necesarias?",
		capture:  func(a *entities.HouseAttributes, text string) { a.Bedrooms = text },
	},
	{
		key:      "bathrooms",
		question: "¿Cuántos baños requiere el diseño de la vivienda?",
		capture:  func(a *entities.HouseAttributes, text string) { a.Bathrooms = text },
	},
	{
		key:      "department",
		question: "¿En qué departamento de Honduras estaría ubicada la vivienda? (por ejemplo: Cortés, Francisco Morazán…).",
		capture:  func(a *entities.HouseAttributes, text string) { a.Department = text },
	},
	{
		key:      "municipality",
		question: "¿En qué municipio se encontraría el proyecto?",
		capture:  func(a *entities.HouseAttributes, text string) { a.Municipality = text },
	},
	{
		key:      "neighborhood",
		question: "¿En qué colonia o residencial le gustaría ubicar la vivienda? Puede indicarnos una de referencia.",
		capture:  func(a *entities.HouseAttributes, text string) { a.Neighborhood = text },
	},
	{
		key:      "pool",
		question: "¿Desea que la vivienda incluya piscina? (responda 'sí' o 'no').",
		capture: func(a *entities.HouseAttributes, text string) {
			lower := strings.ToLower(strings.TrimSpace(text))
			if strings.HasPrefix(lower, "s") || strings.Contains(lower, "pisc") {
				a.Pool = "SI"
			} else {
				a.Pool = "NO"
			}
		},
	},
	{
		key:      "additional_notes",
		question: "¿Desea agregar algún detalle adicional importante (ventanales, cochera, área verde, etc.)? Si no, puede indicar 'no'.",
		capture: func(a *entities.HouseAttributes, text string) {
			if strings.ToLower(strings.TrimSpace(text)) == "no" {
				a.AdditionalNotes = ""
			} else {
				a.AdditionalNotes = text
			}
		},
	},
}

// HouseQuestionCount is the number of questions in the house questionnaire.
var HouseQuestionCount = len(houseQuestions)
