package codes

import "github.com/oybekdev/crif-gateway/internal/models"

var legalFormCodes = map[models.LegalForm]string{
	// Коммерческие организации.
	models.LegalFormCommercialOrganization: "10",
	models.LegalFormPrivateEnterprise:      "11",
	models.LegalFormEnterprise:             "12",
	models.LegalFormStateEnterprise:        "13",
	models.LegalFormPublicEnterprise:       "14",
	models.LegalFormCooperativeEnterprise:  "15",
	models.LegalFormMahallaEnterprise:      "16",
	models.LegalFormJointStockCompany:      "17",
	models.LegalFormStateJointStock:        "18",
	models.LegalFormLimitedLiability:       "19",
	models.LegalFormFullPartnership:        "20",
	models.LegalFormProductionCooperative:  "21",
	models.LegalFormFarmHousehold:          "22",
	models.LegalFormUnitaryEnterprise:      "23",
	models.LegalFormAssociation:            "24",
	models.LegalFormConcern:                "25",
	models.LegalFormJointStockUnion:        "26",
	models.LegalFormMixedPartnershipUnion:  "27",
	models.LegalFormFullPartnershipUnion:   "28",
	models.LegalFormLeasingCompany:         "29",
	models.LegalFormCorporation:            "30",
	models.LegalFormHoldingCompany:         "31",
	models.LegalFormInvestmentFund:         "32",
	models.LegalFormOtherCommercial:        "33",

	// Некоммерческие организации.
	models.LegalFormNonCommercialOrganization: "34",
	models.LegalFormStateInstitution:          "35",
	models.LegalFormSelfGovernmentInstitution: "36",
	models.LegalFormPublicAssociation:         "37",
	models.LegalFormPublicInstitution:         "38",
	models.LegalFormUnionOfSocieties:          "39",
	models.LegalFormConsumerUnion:             "40",
	models.LegalFormCooperativeInstitution:    "41",
	models.LegalFormFinancialIndustrialGroup:  "42",
	models.LegalFormOtherNonCommercial:        "43",
	models.LegalFormFamilyEnterprise:          "44",

	// ОПФ коммерческих юридических лиц.
	models.LegalFormPrivateEnterpriseEntity:     "100",
	models.LegalFormFamilyEnterpriseEntity:      "110",
	models.LegalFormFarmEntity:                  "120",
	models.LegalFormDehkanHousehold:             "130",
	models.LegalFormEconomicPartnership:         "151",
	models.LegalFormLimitedLiabilityEntity:      "152",
	models.LegalFormCommercialOther:             "153",
	models.LegalFormJointStockEntity:            "160",
	models.LegalFormUnitaryEnterpriseEntity:     "170",
	models.LegalFormProductionCooperativeEntity: "190",

	// ОПФ некоммерческих юридических лиц.
	models.LegalFormPublicAssociationEntity:   "200",
	models.LegalFormSelfGovernment:            "210",
	models.LegalFormConsumerCooperative:       "220",
	models.LegalFormPrivateHousingPartnership: "230",
	models.LegalFormPublicFund:                "240",
	models.LegalFormLegalEntitiesUnion:        "250",
	models.LegalFormInstitution:               "260",
	models.LegalFormNonCommercialOther:        "270",

	// Обособленные подразделения.
	models.LegalFormBranch:           "300",
	models.LegalFormRepresentative:   "310",
	models.LegalFormSeparateDivision: "330",

	// Формы индивидуального предпринимательства.
	models.LegalFormDehkanWithoutLegalEntity: "400",
	models.LegalFormIndividualEntrepreneur:   "410",
	models.LegalFormFamilyEntrepreneurship:   "420",
}

var legalFormsByCode = reverse(legalFormCodes)

// LegalFormCode кодирует организационно-правовую форму в код бюро.
func LegalFormCode(f models.LegalForm) string { return legalFormCodes[f] }

// LegalFormFromCode декодирует код организационно-правовой формы.
func LegalFormFromCode(code string) models.LegalForm { return legalFormsByCode[code] }
