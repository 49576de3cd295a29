// Package codes реализует доменные таблицы бюро: двунаправленное
// соответствие между перечислениями модели и короткими кодами провода.
//
// Кодирование тотально на определённых значениях перечисления и отдаёт
// пустую строку для сентинела "неизвестно". Декодирование никогда не
// падает: незнакомый код превращается в сентинел, потому что бюро вправе
// вводить новые коды раньше, чем обновится эта таблица.
package codes

import "github.com/oybekdev/crif-gateway/internal/models"

// Фиксированные значения провода: единственные принимаемые валюта и
// страна.
const (
	CurrencyUZS = "UZS"
	CountryUZ   = "UZ"
)

func reverse[E comparable](m map[E]string) map[string]E {
	r := make(map[string]E, len(m))
	for k, v := range m {
		r[v] = k
	}
	return r
}

var subjectRoleCodes = map[models.SubjectRole]string{
	models.RoleBorrower:   "B",
	models.RoleCoBorrower: "C",
	models.RoleGuarantor:  "G",
}

var subjectRolesByCode = reverse(subjectRoleCodes)

// SubjectRoleCode кодирует роль субъекта в код бюро.
func SubjectRoleCode(r models.SubjectRole) string { return subjectRoleCodes[r] }

// SubjectRoleFromCode декодирует код роли субъекта.
func SubjectRoleFromCode(code string) models.SubjectRole { return subjectRolesByCode[code] }

var companyRoleCodes = map[models.CompanyRole]string{
	models.CompanyRoleChairman:        "1",
	models.CompanyRoleChairmanOfBoard: "2",
	models.CompanyRoleCEO:             "3",
	models.CompanyRoleDirector:        "4",
	models.CompanyRoleDeputyDirector:  "5",
	models.CompanyRoleShareholder:     "6",
	models.CompanyRoleMember:          "7",
	models.CompanyRoleBoardMember:     "8",
	models.CompanyRoleOther:           "9",
}

var companyRolesByCode = reverse(companyRoleCodes)

func CompanyRoleCode(r models.CompanyRole) string        { return companyRoleCodes[r] }
func CompanyRoleFromCode(code string) models.CompanyRole { return companyRolesByCode[code] }

var genderCodes = map[models.Gender]string{
	models.GenderMale:   "M",
	models.GenderFemale: "F",
}

var gendersByCode = reverse(genderCodes)

func GenderCode(g models.Gender) string        { return genderCodes[g] }
func GenderFromCode(code string) models.Gender { return gendersByCode[code] }

var addressTypeCodes = map[models.AddressType]string{
	models.AddressIndividualMain:       "MI",
	models.AddressIndividualAdditional: "AI",
	models.AddressCompanyMain:          "MT",
	models.AddressCompanyAdditional:    "AT",
}

var addressTypesByCode = reverse(addressTypeCodes)

func AddressTypeCode(t models.AddressType) string        { return addressTypeCodes[t] }
func AddressTypeFromCode(code string) models.AddressType { return addressTypesByCode[code] }

var identificationTypeCodes = map[models.IdentificationType]string{
	models.IdentificationIndividualPINFL:   "1",
	models.IdentificationIndividualTIN:     "2",
	models.IdentificationCompanyTIN:        "3",
	models.IdentificationEntrepreneurPINFL: "4",
}

var identificationTypesByCode = reverse(identificationTypeCodes)

func IdentificationTypeCode(t models.IdentificationType) string {
	return identificationTypeCodes[t]
}

func IdentificationTypeFromCode(code string) models.IdentificationType {
	return identificationTypesByCode[code]
}

var idDocumentTypeCodes = map[models.IDDocumentType]string{
	models.IDDocumentPassportUZ:       "1",
	models.IDDocumentForeignPassport:  "2",
	models.IDDocumentDriverLicense:    "3",
	models.IDDocumentResidencePermit:  "4",
	models.IDDocumentMilitaryID:       "5",
	models.IDDocumentVoterID:          "6",
	models.IDDocumentIDCard:           "7",
	models.IDDocumentBirthCertificate: "8",
	models.IDDocumentServiceID:        "9",
	models.IDDocumentOther:            "0",
}

var idDocumentTypesByCode = reverse(idDocumentTypeCodes)

func IDDocumentTypeCode(t models.IDDocumentType) string { return idDocumentTypeCodes[t] }

func IDDocumentTypeFromCode(code string) models.IDDocumentType {
	return idDocumentTypesByCode[code]
}

var contactTypeCodes = map[models.ContactType]string{
	models.ContactPhone:  "1",
	models.ContactMobile: "2",
	models.ContactEmail:  "3",
}

var contactTypesByCode = reverse(contactTypeCodes)

func ContactTypeCode(t models.ContactType) string        { return contactTypeCodes[t] }
func ContactTypeFromCode(code string) models.ContactType { return contactTypesByCode[code] }

var maritalStatusCodes = map[models.MaritalStatus]string{
	models.MaritalSingle:   "1",
	models.MaritalMarried:  "2",
	models.MaritalDivorced: "3",
	models.MaritalWidowed:  "4",
}

var maritalStatusesByCode = reverse(maritalStatusCodes)

func MaritalStatusCode(s models.MaritalStatus) string { return maritalStatusCodes[s] }

func MaritalStatusFromCode(code string) models.MaritalStatus {
	return maritalStatusesByCode[code]
}

var occupationStatusCodes = map[models.OccupationStatus]string{
	models.OccupationEmployed:   "1",
	models.OccupationUnemployed: "2",
}

var occupationStatusesByCode = reverse(occupationStatusCodes)

func OccupationStatusCode(s models.OccupationStatus) string { return occupationStatusCodes[s] }

func OccupationStatusFromCode(code string) models.OccupationStatus {
	return occupationStatusesByCode[code]
}

var contractPhaseCodes = map[models.ContractPhase]string{
	models.PhaseRequested:       "RQ",
	models.PhaseRenounced:       "RN",
	models.PhaseRefused:         "RF",
	models.PhaseActive:          "AC",
	models.PhaseClosed:          "CL",
	models.PhaseClosedInAdvance: "CA",
}

var contractPhasesByCode = reverse(contractPhaseCodes)

func ContractPhaseCode(p models.ContractPhase) string { return contractPhaseCodes[p] }

func ContractPhaseFromCode(code string) models.ContractPhase {
	return contractPhasesByCode[code]
}

var paymentPeriodicityCodes = map[models.PaymentPeriodicity]string{
	models.PeriodicityDaily:       "D",
	models.PeriodicityWeekly:      "W",
	models.PeriodicityFortnightly: "F",
	models.PeriodicityMonthly:     "M",
	models.PeriodicityBimonthly:   "B",
	models.PeriodicityQuarterly:   "Q",
	models.PeriodicityTrimester:   "T",
	models.PeriodicityFiveMonthly: "C",
	models.PeriodicitySixMonthly:  "S",
	models.PeriodicityYearly:      "Y",
	models.PeriodicityIrregular:   "I",
}

var paymentPeriodicitiesByCode = reverse(paymentPeriodicityCodes)

func PaymentPeriodicityCode(p models.PaymentPeriodicity) string {
	return paymentPeriodicityCodes[p]
}

func PaymentPeriodicityFromCode(code string) models.PaymentPeriodicity {
	return paymentPeriodicitiesByCode[code]
}

var employeeCountCodes = map[models.EmployeeCount]string{
	models.EmployeesLessThan10:  "01",
	models.EmployeesFrom10To49:  "02",
	models.EmployeesFrom50To249: "03",
	models.EmployeesMoreThan249: "04",
}

var employeeCountsByCode = reverse(employeeCountCodes)

func EmployeeCountCode(c models.EmployeeCount) string { return employeeCountCodes[c] }

func EmployeeCountFromCode(code string) models.EmployeeCount {
	return employeeCountsByCode[code]
}

var enquiryTypeCodes = map[models.EnquiryType]string{
	models.EnquiryNAE: "NAE",
	models.EnquiryME:  "ME",
}

var enquiryTypesByCode = reverse(enquiryTypeCodes)

func EnquiryTypeCode(t models.EnquiryType) string        { return enquiryTypeCodes[t] }
func EnquiryTypeFromCode(code string) models.EnquiryType { return enquiryTypesByCode[code] }

var presentationCultureCodes = map[models.PresentationCulture]string{
	models.CultureRussian: "ru-RU",
	models.CultureEnglish: "en-US",
	models.CultureUzbek:   "uz-UZ",
}

var presentationCulturesByCode = reverse(presentationCultureCodes)

func PresentationCultureCode(c models.PresentationCulture) string {
	return presentationCultureCodes[c]
}

func PresentationCultureFromCode(code string) models.PresentationCulture {
	return presentationCulturesByCode[code]
}
