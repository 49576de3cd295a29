package soap

import (
	"encoding/xml"
	"strconv"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"

	"github.com/oybekdev/crif-gateway/internal/codes"
	"github.com/oybekdev/crif-gateway/internal/criferr"
	"github.com/oybekdev/crif-gateway/internal/models"
)

// Форматы дат и меток времени провода.
const (
	dateFormat      = "2006-01-02"
	timestampFormat = "2006-01-02T15:04:05.000Z"
)

// Идентификаторы продуктов по операциям.
var productIDs = map[models.Operation]string{
	models.OpNAE:  "CB_NAE_Product",
	models.OpNAEP: "CB_NAEP_Product",
	models.OpME:   "CB_ME_Product",
	models.OpMEP:  "CB_MEP_Product",
	models.OpAUE:  "CB_AUE_Product",
	models.OpPAE:  "CB_PAE_Product",
}

// Builder собирает SOAP-конверты запросов. Часы и генератор
// идентификаторов инжектируются, чтобы тесты получали детерминированный
// вывод.
type Builder struct {
	userID   string
	password string

	now   func() time.Time
	newID func() string
}

// NewBuilder создаёт сборщик с учётными данными бюро.
func NewBuilder(userID, password string) *Builder {
	return &Builder{
		userID:   userID,
		password: password,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Build собирает полный конверт запроса для заданной операции.
func (b *Builder) Build(req models.Request) (string, error) {
	product := reqProduct{
		ServiceID: serviceID,
		ID:        productIDs[req.Op],
	}

	switch req.Op {
	case models.OpNAE:
		if req.NAE == nil {
			return "", criferr.New(criferr.KindProtocol, "NAE payload is missing")
		}
		product.NAE = buildNAEInput(req.NAE, nil)
	case models.OpNAEP:
		if req.NAE == nil {
			return "", criferr.New(criferr.KindProtocol, "NAEP payload is missing")
		}
		product.NAEP = buildNAEInput(req.NAE, req.Presentation)
	case models.OpME:
		if req.ME == nil {
			return "", criferr.New(criferr.KindProtocol, "ME payload is missing")
		}
		product.ME = buildMEInput(req.ME, nil)
	case models.OpMEP:
		if req.ME == nil {
			return "", criferr.New(criferr.KindProtocol, "MEP payload is missing")
		}
		product.MEP = buildMEInput(req.ME, req.Presentation)
	case models.OpAUE:
		if req.AUE == nil {
			return "", criferr.New(criferr.KindProtocol, "AUE payload is missing")
		}
		product.AUE = buildAUEInput(req.AUE)
	case models.OpPAE:
		if req.PAE == nil {
			return "", criferr.New(criferr.KindProtocol, "PAE payload is missing")
		}
		product.PAE = buildPAEInput(req.PAE)
	default:
		return "", criferr.Newf(criferr.KindProtocol, "unsupported operation %q", req.Op)
	}

	env := reqEnvelope{
		NSSoapenv: nsSoap,
		NSUrn:     nsMG,
		NSCb:      nsCB,
		Body: reqBody{
			MGRequest: mgRequest{
				Message: reqMessage{
					GroupID:     b.newID(),
					ID:          b.newID(),
					TimeStamp:   b.now().UTC().Format(timestampFormat),
					Idempotence: "unique",
					Credential: reqCredential{
						ID:       b.userID,
						Password: b.password,
					},
				},
				Product: product,
			},
		},
	}

	raw, err := xml.Marshal(env)
	if err != nil {
		return "", criferr.Wrap(criferr.KindProtocol, "marshal request envelope", err)
	}
	return string(raw), nil
}

func buildNAEInput(req *models.NAERequest, pres *models.PresentationOptions) *naeInput {
	in := &naeInput{
		Subject: wireSubject{
			ProviderSubjectNo: req.ProviderSubjectNo.String,
			SubjectRefDate:    formatDate(req.SubjectRefDate),
			Individual:        buildIndividual(req.Individual),
			Company:           buildCompany(req.Company),
		},
		Application:  buildApplication(req.Application),
		Link:         buildLink(req.Link),
		Presentation: buildPresentation(pres),
	}
	if ac := buildAppCodes(req.ApplicationCodes); ac != nil {
		in.ApplicationCodes = ac
	}
	return in
}

func buildMEInput(req *models.MERequest, pres *models.PresentationOptions) *meInput {
	return &meInput{
		Subject: wireSubject{
			CBSubjectCode:     req.CBSubjectCode.String,
			ProviderSubjectNo: req.ProviderSubjectNo.String,
			Individual:        buildIndividual(req.Individual),
			Company:           buildCompany(req.Company),
		},
		Presentation: buildPresentation(pres),
	}
}

func buildAUEInput(req *models.AUERequest) *aueInput {
	in := &aueInput{}
	if ac := buildAppCodes(req.ApplicationCodes); ac != nil {
		in.ApplicationCodes = *ac
	}

	upd := &wireAppUpdate{
		ContractPhase:        codes.ContractPhaseCode(req.ApplicationToUpdate.ContractPhase),
		FinancedAmount:       formatNullFloat(req.ApplicationToUpdate.FinancedAmount),
		CreditLimit:          formatNullFloat(req.ApplicationToUpdate.CreditLimit),
		MonthlyPaymentAmount: formatNullFloat(req.ApplicationToUpdate.MonthlyPaymentAmount),
	}
	if req.ApplicationToUpdate.CancellationFlag.Valid {
		upd.CancellationFlag = formatBool(req.ApplicationToUpdate.CancellationFlag.Bool)
	}
	in.Application = upd
	return in
}

func buildPAEInput(req *models.PAERequest) *paeInput {
	in := &paeInput{AlertCode: req.AlertCode.String}
	if req.DateFrom.Valid {
		in.DateFrom = formatDate(req.DateFrom.Time)
	}
	if req.DateTo.Valid {
		in.DateTo = formatDate(req.DateTo.Time)
	}
	if req.MaxResults.Valid {
		in.MaxResults = strconv.Itoa(req.MaxResults.Int)
	}
	return in
}

func buildPresentation(pres *models.PresentationOptions) *wirePresentation {
	if pres == nil {
		return nil
	}
	return &wirePresentation{
		Culture:    codes.PresentationCultureCode(pres.Culture),
		FormatType: pres.Format,
	}
}

func buildIndividual(ind *models.Individual) *wireIndividual {
	if ind == nil {
		return nil
	}
	w := &wireIndividual{
		Gender:        codes.GenderCode(ind.Gender),
		MaritalStatus: codes.MaritalStatusCode(ind.MaritalStatus),
		Name: wireIndividualName{
			FirstName:        ind.FirstName,
			LastName:         ind.LastName,
			Patronymic:       ind.Patronymic.String,
			OriginalLastName: ind.OriginalLastName.String,
		},
		BirthData: wireBirthData{
			Date:    formatDate(ind.DateOfBirth),
			Place:   ind.BirthPlace.String,
			Country: codes.CountryUZ,
		},
		Addresses: buildAddresses(ind.Addresses),
		IDCodes:   buildIDCodes(ind.IdentificationCodes),
		Contacts:  buildContacts(ind.Contacts),
	}
	for _, d := range ind.IDDocuments {
		doc := wireIDDocument{
			Type:         codes.IDDocumentTypeCode(d.Type),
			Number:       d.Number,
			IssueCountry: codes.CountryUZ,
		}
		if d.IssueDate.Valid {
			doc.IssueDate = formatDate(d.IssueDate.Time)
		}
		if d.ExpiryDate.Valid {
			doc.ExpiryDate = formatDate(d.ExpiryDate.Time)
		}
		w.Documents = append(w.Documents, doc)
	}
	if emp := ind.Employment; emp != nil {
		we := &wireEmployment{
			GrossIncome:      formatNullFloat(emp.GrossAnnualIncome),
			Currency:         emp.Currency,
			OccupationStatus: codes.OccupationStatusCode(emp.OccupationStatus),
			Occupation:       emp.Occupation.String,
		}
		if emp.DateHiredFrom.Valid {
			we.DateHiredFrom = formatDate(emp.DateHiredFrom.Time)
		}
		if emp.EmployerTradeName.Valid {
			we.EmployerData = &wireEmployerData{
				Name: wireCompanyName{TradeName: emp.EmployerTradeName.String},
			}
		}
		w.Employment = we
	}
	return w
}

func buildCompany(c *models.Company) *wireCompany {
	if c == nil {
		return nil
	}
	return &wireCompany{
		LegalForm:         codes.LegalFormCode(c.LegalForm),
		RegistrationPlace: c.RegistrationPlace,
		EconomicActivity:  c.EconomicActivity,
		EstablishmentDate: formatDate(c.EstablishmentDate),
		GrossIncome:       formatNullFloat(c.GrossIncome),
		NoOfEmployees:     codes.EmployeeCountCode(c.EmployeesNumber),
		Name: wireCompanyName{
			TradeName:        c.TradeName,
			ShortCompanyName: c.ShortName.String,
		},
		Addresses: buildAddresses(c.Addresses),
		IDCodes:   buildIDCodes(c.IdentificationCodes),
		Contacts:  buildContacts(c.Contacts),
	}
}

func buildAddresses(addrs []models.Address) []wireAddress {
	out := make([]wireAddress, 0, len(addrs))
	for _, a := range addrs {
		w := wireAddress{Type: codes.AddressTypeCode(a.Type)}
		// FullAddress вытесняет структурные атрибуты, а не дополняет их.
		if a.FullAddress.Valid {
			w.FullAddress = a.FullAddress.String
		} else {
			w.StreetNo = a.Street.String
			w.PostalCode = a.PostalCode.String
			w.City = a.City
			w.District = a.District
			w.Region = a.Region
			w.Country = a.Country
		}
		out = append(out, w)
	}
	return out
}

func buildIDCodes(ids []models.IdentificationCode) []wireIDCode {
	out := make([]wireIDCode, 0, len(ids))
	for _, id := range ids {
		out = append(out, wireIDCode{
			Type:   codes.IdentificationTypeCode(id.Type),
			Number: id.Number,
		})
	}
	return out
}

func buildContacts(contacts []models.Contact) []wireContact {
	out := make([]wireContact, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, wireContact{
			Type:  codes.ContactTypeCode(c.Type),
			Value: c.Value,
		})
	}
	return out
}

func buildApplication(app *models.ApplicationData) *wireApplication {
	if app == nil {
		return nil
	}
	w := &wireApplication{
		ContractType:        app.ContractType,
		ContractPhase:       codes.ContractPhaseCode(app.ContractPhase),
		ContractRequestDate: formatDate(app.ContractRequestDate),
		Currency:            app.Currency,
	}
	if app.FinancedAmount.Valid {
		inst := &wireInstallment{
			FinancedAmount:       formatFloat(app.FinancedAmount.Float64),
			MonthlyPaymentAmount: formatNullFloat(app.MonthlyPaymentAmount),
			PaymentPeriodicity:   codes.PaymentPeriodicityCode(app.PaymentPeriodicity),
		}
		if app.InstallmentsNumber.Valid {
			inst.InstallmentsNumber = strconv.Itoa(app.InstallmentsNumber.Int)
		}
		if app.DueDate.Valid {
			inst.DueDate = formatDate(app.DueDate.Time)
		}
		w.Installment = inst
	}
	if app.CreditLimit.Valid {
		w.CreditCard = &wireCreditCard{CreditLimit: formatFloat(app.CreditLimit.Float64)}
	}
	return w
}

func buildLink(link models.LinkData) wireLink {
	return wireLink{
		Role:        codes.SubjectRoleCode(link.Role),
		CompanyRole: codes.CompanyRoleCode(link.CompanyRole),
	}
}

func buildAppCodes(ac models.ApplicationCodes) *wireAppCodes {
	if !ac.ProviderContractNo.Valid && !ac.ProviderApplicationNo.Valid && !ac.CBContractCode.Valid {
		return nil
	}
	return &wireAppCodes{
		ProviderContractNo:    ac.ProviderContractNo.String,
		ProviderApplicationNo: ac.ProviderApplicationNo.String,
		CBContractCode:        ac.CBContractCode.String,
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateFormat)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatNullFloat(v null.Float64) string {
	if !v.Valid {
		return ""
	}
	return formatFloat(v.Float64)
}

func formatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
