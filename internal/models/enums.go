package models

// Перечисления предметной области кредитного бюро. Нулевое значение каждого
// типа — сентинел "неизвестно": бюро может вводить новые коды, и декодер
// таблиц кодов возвращает его вместо ошибки.

// SubjectRole — роль субъекта в договоре.
type SubjectRole int

const (
	SubjectRoleUnknown SubjectRole = iota
	RoleBorrower
	RoleCoBorrower
	RoleGuarantor
)

// CompanyRole — должность физического лица в организации.
type CompanyRole int

const (
	CompanyRoleUnknown CompanyRole = iota
	CompanyRoleChairman
	CompanyRoleChairmanOfBoard
	CompanyRoleCEO
	CompanyRoleDirector
	CompanyRoleDeputyDirector
	CompanyRoleShareholder
	CompanyRoleMember
	CompanyRoleBoardMember
	CompanyRoleOther
)

// Gender — пол субъекта.
type Gender int

const (
	GenderUnknown Gender = iota
	GenderMale
	GenderFemale
)

// AddressType — тип адреса.
type AddressType int

const (
	AddressTypeUnknown AddressType = iota
	AddressIndividualMain
	AddressIndividualAdditional
	AddressCompanyMain
	AddressCompanyAdditional
)

// IdentificationType — тип идентификационного кода (ПИНФЛ, ИНН).
type IdentificationType int

const (
	IdentificationTypeUnknown IdentificationType = iota
	IdentificationIndividualPINFL
	IdentificationIndividualTIN
	IdentificationCompanyTIN
	IdentificationEntrepreneurPINFL
)

// IDDocumentType — тип документа, удостоверяющего личность.
type IDDocumentType int

const (
	IDDocumentTypeUnknown IDDocumentType = iota
	IDDocumentPassportUZ
	IDDocumentForeignPassport
	IDDocumentDriverLicense
	IDDocumentResidencePermit
	IDDocumentMilitaryID
	IDDocumentVoterID
	IDDocumentIDCard
	IDDocumentBirthCertificate
	IDDocumentServiceID
	IDDocumentOther
)

// ContactType — тип контакта.
type ContactType int

const (
	ContactTypeUnknown ContactType = iota
	ContactPhone
	ContactMobile
	ContactEmail
)

// MaritalStatus — семейное положение.
type MaritalStatus int

const (
	MaritalStatusUnknown MaritalStatus = iota
	MaritalSingle
	MaritalMarried
	MaritalDivorced
	MaritalWidowed
)

// OccupationStatus — статус занятости.
type OccupationStatus int

const (
	OccupationStatusUnknown OccupationStatus = iota
	OccupationEmployed
	OccupationUnemployed
)

// ContractPhase — фаза договора.
type ContractPhase int

const (
	ContractPhaseUnknown ContractPhase = iota
	PhaseRequested
	PhaseRenounced
	PhaseRefused
	PhaseActive
	PhaseClosed
	PhaseClosedInAdvance
)

// PaymentPeriodicity — периодичность платежей.
type PaymentPeriodicity int

const (
	PaymentPeriodicityUnknown PaymentPeriodicity = iota
	PeriodicityDaily
	PeriodicityWeekly
	PeriodicityFortnightly
	PeriodicityMonthly
	PeriodicityBimonthly
	PeriodicityQuarterly
	PeriodicityTrimester
	PeriodicityFiveMonthly
	PeriodicitySixMonthly
	PeriodicityYearly
	PeriodicityIrregular
)

// EmployeeCount — диапазон количества сотрудников компании.
type EmployeeCount int

const (
	EmployeeCountUnknown EmployeeCount = iota
	EmployeesLessThan10
	EmployeesFrom10To49
	EmployeesFrom50To249
	EmployeesMoreThan249
)

// ContractCategory — категория типа договора.
type ContractCategory int

const (
	ContractCategoryUnknown ContractCategory = iota
	CategoryInstallment
	CategoryNonInstallment
	CategoryCreditCard
	CategoryService
)

func (c ContractCategory) String() string {
	switch c {
	case CategoryInstallment:
		return "installment"
	case CategoryNonInstallment:
		return "non-installment"
	case CategoryCreditCard:
		return "credit-card"
	case CategoryService:
		return "service"
	default:
		return "unknown"
	}
}

// ContractType — тип договора из доменной таблицы бюро.
type ContractType int

const (
	ContractTypeUnknown ContractType = iota

	// Рассрочные договоры (категория I).
	ContractCreditWithoutLine
	ContractCreditIssuedWithoutLine
	ContractSyndicatedCredit
	ContractMortgageCredit
	ContractMicrocredit
	ContractLeasing
	ContractConsumerCredit
	ContractMicroleasing
	ContractMicroloan
	ContractBankInitiatedCredit
	ContractAutoCredit
	ContractExpressCredit
	ContractEducationalCredit
	ContractOnlineCredit
	ContractCreditWithLine
	ContractCreditIssuedWithLine
	ContractSyndicatedCreditWithLine
	ContractCurrentAccountCredit
	ContractMicrocreditWithLine
	ContractBankInitiatedCreditWithLine
	ContractBuyNowPayLater

	// Нерассрочные договоры (категория N).
	ContractMicroloanWithLine
	ContractFactoring
	ContractForfaiting
	ContractBNPLCreditLine

	// Карточные договоры (категория C).
	ContractOverdraft
	ContractOverdraftCard
	ContractCreditCard
	ContractCreditCardWithLine
	ContractRevolvingCredit

	// Сервисные договоры (категория S).
	ContractWiredPhone
	ContractMobilePhone
	ContractWaterSupply
	ContractGasSupply
	ContractElectricSupply
	ContractSatelliteTV
	ContractCableTV
	ContractInternet
	ContractInsurance
)

// LegalForm — организационно-правовая форма компании.
type LegalForm int

const (
	LegalFormUnknown LegalForm = iota

	LegalFormCommercialOrganization
	LegalFormPrivateEnterprise
	LegalFormEnterprise
	LegalFormStateEnterprise
	LegalFormPublicEnterprise
	LegalFormCooperativeEnterprise
	LegalFormMahallaEnterprise
	LegalFormJointStockCompany
	LegalFormStateJointStock
	LegalFormLimitedLiability
	LegalFormFullPartnership
	LegalFormProductionCooperative
	LegalFormFarmHousehold
	LegalFormUnitaryEnterprise
	LegalFormAssociation
	LegalFormConcern
	LegalFormJointStockUnion
	LegalFormMixedPartnershipUnion
	LegalFormFullPartnershipUnion
	LegalFormLeasingCompany
	LegalFormCorporation
	LegalFormHoldingCompany
	LegalFormInvestmentFund
	LegalFormOtherCommercial

	LegalFormNonCommercialOrganization
	LegalFormStateInstitution
	LegalFormSelfGovernmentInstitution
	LegalFormPublicAssociation
	LegalFormPublicInstitution
	LegalFormUnionOfSocieties
	LegalFormConsumerUnion
	LegalFormCooperativeInstitution
	LegalFormFinancialIndustrialGroup
	LegalFormOtherNonCommercial
	LegalFormFamilyEnterprise

	LegalFormPrivateEnterpriseEntity
	LegalFormFamilyEnterpriseEntity
	LegalFormFarmEntity
	LegalFormDehkanHousehold
	LegalFormEconomicPartnership
	LegalFormLimitedLiabilityEntity
	LegalFormCommercialOther
	LegalFormJointStockEntity
	LegalFormUnitaryEnterpriseEntity
	LegalFormProductionCooperativeEntity

	LegalFormPublicAssociationEntity
	LegalFormSelfGovernment
	LegalFormConsumerCooperative
	LegalFormPrivateHousingPartnership
	LegalFormPublicFund
	LegalFormLegalEntitiesUnion
	LegalFormInstitution
	LegalFormNonCommercialOther

	LegalFormBranch
	LegalFormRepresentative
	LegalFormSeparateDivision

	LegalFormDehkanWithoutLegalEntity
	LegalFormIndividualEntrepreneur
	LegalFormFamilyEntrepreneurship
)

// EnquiryType — тип запроса в футпринте.
type EnquiryType int

const (
	EnquiryTypeUnknown EnquiryType = iota
	EnquiryNAE
	EnquiryME
)

// PresentationCulture — язык презентационного (PDF) отчёта.
type PresentationCulture int

const (
	PresentationCultureUnknown PresentationCulture = iota
	CultureRussian
	CultureEnglish
	CultureUzbek
)
