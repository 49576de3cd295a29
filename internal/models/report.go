package models

import "github.com/aarondl/null/v8"

// CreditReport — кредитный отчёт из ответа бюро.
type CreditReport struct {
	MatchedSubject  *MatchedSubject
	ContractHistory *ContractHistory
	Footprint       *Footprint
}

// MatchedSubject — субъект, найденный в базе бюро.
type MatchedSubject struct {
	CBSubjectCode string
	FlagMatched   bool
}

// ContractHistory — история договоров субъекта. Списки сохраняют порядок
// следования элементов в документе.
type ContractHistory struct {
	AggregatedData      *AggregatedData
	NotGrantedContracts []NotGrantedContract
	GrantedContracts    []GrantedContract
}

// AggregatedData — агрегированные показатели по истории.
type AggregatedData struct {
	TotalContracts int
	TotalProviders int
	Currency       string
}

// NotGrantedContract — невыданный договор (запрошен, отозван, отказан).
type NotGrantedContract struct {
	CBContractCode     string
	ProviderContractNo string
	ContractType       string
	ContractPhase      ContractPhase
	LastUpdateDate     null.Time
}

// GrantedContract — выданный договор с помесячной историей платежей.
type GrantedContract struct {
	CBContractCode     string
	ProviderContractNo string
	ContractType       string
	ContractPhase      ContractPhase
	ProviderName       string
	LastUpdateDate     null.Time
	PaymentHistory     []PaymentRecord
}

// PaymentRecord — помесячный срез платежей, ключ — (год, месяц).
type PaymentRecord struct {
	ReferenceYear      int
	ReferenceMonth     int
	OutstandingBalance null.Float64
	DaysPastDue        null.Int
	Status             string
}

// Footprint — история запросов по субъекту.
type Footprint struct {
	Counters *FootprintCounters
	Data     []FootprintData
}

// FootprintCounters — скользящие счётчики запросов за 1/3/6/12 месяцев.
type FootprintCounters struct {
	Count1Month   int
	Count3Months  int
	Count6Months  int
	Count12Months int
}

// FootprintData — отдельное событие запроса.
type FootprintData struct {
	EnquiryType   EnquiryType
	EnquiryDate   null.Time
	InstituteName string
}
