package codes

import "github.com/oybekdev/crif-gateway/internal/models"

// contractTypeEntry связывает тип договора с кодом бюро и категорией.
type contractTypeEntry struct {
	code     string
	category models.ContractCategory
}

var contractTypes = map[models.ContractType]contractTypeEntry{
	// Рассрочные договоры (I).
	models.ContractCreditWithoutLine:           {"20", models.CategoryInstallment},
	models.ContractCreditIssuedWithoutLine:     {"21", models.CategoryInstallment},
	models.ContractSyndicatedCredit:            {"23", models.CategoryInstallment},
	models.ContractMortgageCredit:              {"24", models.CategoryInstallment},
	models.ContractMicrocredit:                 {"25", models.CategoryInstallment},
	models.ContractLeasing:                     {"26", models.CategoryInstallment},
	models.ContractConsumerCredit:              {"30", models.CategoryInstallment},
	models.ContractMicroleasing:                {"31", models.CategoryInstallment},
	models.ContractMicroloan:                   {"32", models.CategoryInstallment},
	models.ContractBankInitiatedCredit:         {"33", models.CategoryInstallment},
	models.ContractAutoCredit:                  {"34", models.CategoryInstallment},
	models.ContractExpressCredit:               {"36", models.CategoryInstallment},
	models.ContractEducationalCredit:           {"59", models.CategoryInstallment},
	models.ContractOnlineCredit:                {"61", models.CategoryInstallment},
	models.ContractCreditWithLine:              {"50", models.CategoryInstallment},
	models.ContractCreditIssuedWithLine:        {"51", models.CategoryInstallment},
	models.ContractSyndicatedCreditWithLine:    {"52", models.CategoryInstallment},
	models.ContractCurrentAccountCredit:        {"62", models.CategoryInstallment},
	models.ContractMicrocreditWithLine:         {"55", models.CategoryInstallment},
	models.ContractBankInitiatedCreditWithLine: {"56", models.CategoryInstallment},
	models.ContractBuyNowPayLater:              {"90", models.CategoryInstallment},

	// Нерассрочные договоры (N).
	models.ContractMicroloanWithLine: {"58", models.CategoryNonInstallment},
	models.ContractFactoring:         {"28", models.CategoryNonInstallment},
	models.ContractForfaiting:        {"29", models.CategoryNonInstallment},
	models.ContractBNPLCreditLine:    {"91", models.CategoryNonInstallment},

	// Карточные договоры (C).
	models.ContractOverdraft:          {"53", models.CategoryCreditCard},
	models.ContractOverdraftCard:      {"54", models.CategoryCreditCard},
	models.ContractCreditCard:         {"35", models.CategoryCreditCard},
	models.ContractCreditCardWithLine: {"60", models.CategoryCreditCard},
	models.ContractRevolvingCredit:    {"57", models.CategoryCreditCard},

	// Сервисные договоры (S).
	models.ContractWiredPhone:     {"80", models.CategoryService},
	models.ContractMobilePhone:    {"81", models.CategoryService},
	models.ContractWaterSupply:    {"82", models.CategoryService},
	models.ContractGasSupply:      {"83", models.CategoryService},
	models.ContractElectricSupply: {"84", models.CategoryService},
	models.ContractSatelliteTV:    {"85", models.CategoryService},
	models.ContractCableTV:        {"86", models.CategoryService},
	models.ContractInternet:       {"87", models.CategoryService},
	models.ContractInsurance:      {"88", models.CategoryService},
}

var contractTypesByCode = func() map[string]models.ContractType {
	r := make(map[string]models.ContractType, len(contractTypes))
	for t, e := range contractTypes {
		r[e.code] = t
	}
	return r
}()

// ContractTypeCode кодирует тип договора в код бюро.
func ContractTypeCode(t models.ContractType) string { return contractTypes[t].code }

// ContractTypeFromCode декодирует код типа договора.
func ContractTypeFromCode(code string) models.ContractType {
	return contractTypesByCode[code]
}

// ContractTypeCategory возвращает категорию типа договора.
func ContractTypeCategory(t models.ContractType) models.ContractCategory {
	return contractTypes[t].category
}

// ContractCategoryByCode — категория по коду провода; для незнакомого
// кода возвращается сентинел.
func ContractCategoryByCode(code string) models.ContractCategory {
	return ContractTypeCategory(ContractTypeFromCode(code))
}
