// Package models содержит доменную модель интеграции с кредитным бюро CRIF:
// субъекты (физические и юридические лица), заявки, кредитные отчёты и
// агрегаты запросов/ответов шести операций бюро.
//
// Все сущности живут в рамках одного вызова: собираются, проходят через
// кодек и отбрасываются. Опциональные поля выражены через null-обёртки,
// потому что для XML-схемы бюро отсутствие атрибута и пустой атрибут —
// разные вещи.
package models

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Individual — данные физического лица.
type Individual struct {
	FirstName        string
	LastName         string
	Patronymic       null.String
	OriginalLastName null.String
	DateOfBirth      time.Time
	BirthPlace       null.String
	Gender           Gender
	MaritalStatus    MaritalStatus

	Addresses           []Address
	IdentificationCodes []IdentificationCode
	IDDocuments         []IDDocument
	Contacts            []Contact
	Employment          *Employment
}

// Company — данные юридического лица.
type Company struct {
	TradeName         string
	ShortName         null.String
	LegalForm         LegalForm
	RegistrationPlace string
	EconomicActivity  string
	EstablishmentDate time.Time
	GrossIncome       null.Float64
	EmployeesNumber   EmployeeCount

	Addresses           []Address
	IdentificationCodes []IdentificationCode
	Contacts            []Contact
}

// Address — адрес субъекта: либо единая строка FullAddress, либо
// структурированный набор, где город, район, регион и страна обязательны.
type Address struct {
	Type        AddressType
	FullAddress null.String
	Street      null.String
	PostalCode  null.String
	City        string
	District    string
	Region      string
	Country     string
}

// IdentificationCode — идентификационный код субъекта (ПИНФЛ, ИНН).
type IdentificationCode struct {
	Type   IdentificationType
	Number string
}

// IDDocument — документ, удостоверяющий личность.
type IDDocument struct {
	Type       IDDocumentType
	Number     string
	IssueDate  null.Time
	ExpiryDate null.Time
}

// Contact — контакт субъекта.
type Contact struct {
	Type  ContactType
	Value string
}

// Employment — сведения о занятости физического лица.
type Employment struct {
	OccupationStatus  OccupationStatus
	EmployerTradeName null.String
	Occupation        null.String
	GrossAnnualIncome null.Float64
	Currency          string
	DateHiredFrom     null.Time
}
