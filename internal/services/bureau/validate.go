package bureau

import (
	"github.com/oybekdev/crif-gateway/internal/criferr"
	"github.com/oybekdev/crif-gateway/internal/models"
)

// ValidateNAE проверяет предусловия регистрации новой заявки.
// Невалидный запрос не уходит в сеть.
func ValidateNAE(req *models.NAERequest) error {
	if req == nil {
		return criferr.Validation("request", "request is required")
	}
	if req.Individual == nil && req.Company == nil {
		return criferr.Validation("subject", "either individual or company data must be provided")
	}
	if req.Individual != nil && req.Company != nil {
		return criferr.Validation("subject", "individual and company data are mutually exclusive")
	}
	if req.Application != nil {
		if req.Application.ContractType == "" {
			return criferr.Validation("application.contract_type", "contract type is required")
		}
		if req.Application.Currency != "" && req.Application.Currency != "UZS" {
			return criferr.Validation("application.currency", "only UZS is accepted")
		}
	}
	// Регистрация субъекта в существующий договор: при заданном
	// CBContractCode провайдерские номера обязаны быть пусты.
	if req.ApplicationCodes.CBContractCode.Valid {
		if req.ApplicationCodes.ProviderContractNo.Valid || req.ApplicationCodes.ProviderApplicationNo.Valid {
			return criferr.Validation("application_codes",
				"when cb contract code is provided, provider numbers must be empty")
		}
	}
	return nil
}

// ValidateME проверяет, что субъект мониторинга задан хотя бы одним
// способом: кодом бюро, номером провайдера или полными данными.
func ValidateME(req *models.MERequest) error {
	if req == nil {
		return criferr.Validation("request", "request is required")
	}
	if !req.CBSubjectCode.Valid && !req.ProviderSubjectNo.Valid &&
		req.Individual == nil && req.Company == nil {
		return criferr.Validation("subject",
			"must provide cb subject code, provider subject no, or subject data")
	}
	return nil
}

// ValidateAUE проверяет, что заявка к обновлению идентифицирована ровно
// одним кодом.
func ValidateAUE(req *models.AUERequest) error {
	if req == nil {
		return criferr.Validation("request", "request is required")
	}
	count := 0
	if req.ApplicationCodes.CBContractCode.Valid {
		count++
	}
	if req.ApplicationCodes.ProviderContractNo.Valid {
		count++
	}
	if req.ApplicationCodes.ProviderApplicationNo.Valid {
		count++
	}
	switch {
	case count == 0:
		return criferr.Validation("application_codes",
			"must provide one application code (cb contract code, provider contract no, or provider application no)")
	case count > 1:
		return criferr.Validation("application_codes", "only one application code should be provided")
	}
	return nil
}
