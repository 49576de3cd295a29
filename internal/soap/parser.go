package soap

import (
	"encoding/base64"
	"encoding/xml"
	"strconv"
	"strings"
	"time"

	"github.com/aarondl/null/v8"

	"github.com/oybekdev/crif-gateway/internal/codes"
	"github.com/oybekdev/crif-gateway/internal/criferr"
	"github.com/oybekdev/crif-gateway/internal/models"
)

// Parser разбирает SOAP-ответы бюро. Ответ проходит последовательность
// шлюзов: код результата уровня сообщений, код результата уровня
// продукта, явный элемент ошибки в теле и, наконец, наличие контейнера
// вывода. Первые три дают типизированный ответ с Success=false;
// отсутствие контейнера — протокольная ошибка.
type Parser struct{}

// NewParser создаёт парсер ответов.
func NewParser() *Parser { return &Parser{} }

// gate пропускает ответ через шлюзы результата и ошибки. Возвращает
// базовую часть ответа и признак того, что разбор полезной нагрузки
// имеет смысл продолжать.
func (p *Parser) gate(raw string) (models.BaseResponse, *mgResponse, bool, error) {
	var env respEnvelope
	if err := xml.Unmarshal([]byte(raw), &env); err != nil {
		return models.BaseResponse{}, nil, false,
			criferr.Wrap(criferr.KindCommunication, "unparseable response", err)
	}

	mg := env.Body.MGResponse
	if mg == nil {
		return models.BaseResponse{}, nil, false,
			criferr.New(criferr.KindProtocol, "MGResponse element is missing")
	}

	base := models.BaseResponse{}
	if mg.MessageResponse != nil {
		base.MessageResultCode = null.StringFrom(mg.MessageResponse.ResultCode)
	}
	if mg.ProductResponse != nil {
		base.ProductResultCode = null.StringFrom(mg.ProductResponse.ResultCode)
	}

	// Шлюз результата срабатывает только на присутствующий код, отличный
	// от сентинела успеха. Отсутствующий элемент пропускается дальше:
	// судьбу такого ответа решает шлюз контейнера вывода.
	if mg.MessageResponse != nil && mg.MessageResponse.ResultCode != resultCodeSuccess {
		base.Error = resultError(mg.MessageResponse.ResultCode, mg.MessageResponse.ResultDescription)
		return base, mg, false, nil
	}
	if mg.ProductResponse != nil && mg.ProductResponse.ResultCode != resultCodeSuccess {
		base.Error = resultError(mg.ProductResponse.ResultCode, mg.ProductResponse.ResultDescription)
		return base, mg, false, nil
	}
	if errInfo := findErrorElement(raw); errInfo != nil {
		base.Error = errInfo
		return base, mg, false, nil
	}

	base.Success = true
	return base, mg, true, nil
}

func resultError(code, description string) *models.ErrorInfo {
	return &models.ErrorInfo{Code: code, Description: description}
}

// findErrorElement ищет элемент Error в любом месте тела ответа.
// Токенный проход не зависит от того, в каком контейнере бюро решило
// разместить ошибку.
func findErrorElement(raw string) *models.ErrorInfo {
	dec := xml.NewDecoder(strings.NewReader(raw))
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Error" {
			continue
		}
		info := &models.ErrorInfo{}
		for _, a := range se.Attr {
			switch a.Name.Local {
			case "Code":
				info.Code = a.Value
			case "Description":
				info.Description = a.Value
			case "FieldName":
				info.FieldName = a.Value
			}
		}
		return info
	}
}

// ParseNAE разбирает ответ операции NAE.
func (p *Parser) ParseNAE(raw string) (*models.NAEResponse, error) {
	base, mg, ok, err := p.gate(raw)
	if err != nil {
		return nil, err
	}
	resp := &models.NAEResponse{BaseResponse: base}
	if !ok {
		return resp, nil
	}

	if mg.ProductResponse == nil || mg.ProductResponse.NAE == nil {
		return nil, criferr.New(criferr.KindProtocol, "CB_NAE_ProductOutput is missing")
	}
	out := mg.ProductResponse.NAE
	resp.ApplicationCodes = parseAppCodes(out.ApplicationCodes)
	resp.CreditReport = parseCreditReport(out.CreditReport)
	fillSubjectCode(&resp.ApplicationCodes, resp.CreditReport)
	return resp, nil
}

// ParseME разбирает ответ операции ME.
func (p *Parser) ParseME(raw string) (*models.MEResponse, error) {
	base, mg, ok, err := p.gate(raw)
	if err != nil {
		return nil, err
	}
	resp := &models.MEResponse{BaseResponse: base}
	if !ok {
		return resp, nil
	}

	if mg.ProductResponse == nil || mg.ProductResponse.ME == nil {
		return nil, criferr.New(criferr.KindProtocol, "CB_ME_ProductOutput is missing")
	}
	resp.CreditReport = parseCreditReport(mg.ProductResponse.ME.CreditReport)
	return resp, nil
}

// ParseAUE разбирает ответ операции AUE.
func (p *Parser) ParseAUE(raw string) (*models.AUEResponse, error) {
	base, mg, ok, err := p.gate(raw)
	if err != nil {
		return nil, err
	}
	resp := &models.AUEResponse{BaseResponse: base}
	if !ok {
		return resp, nil
	}

	if mg.ProductResponse == nil || mg.ProductResponse.AUE == nil {
		return nil, criferr.New(criferr.KindProtocol, "CB_AUE_ProductOutput is missing")
	}
	out := mg.ProductResponse.AUE
	resp.ApplicationCodes = parseAppCodes(out.ApplicationCodes)
	resp.ApplicationDB = parseSnapshot(out.ApplicationDB)
	resp.ApplicationUpdated = parseSnapshot(out.ApplicationUpdated)
	return resp, nil
}

// ParsePAE разбирает ответ операции PAE.
func (p *Parser) ParsePAE(raw string) (*models.PAEResponse, error) {
	base, mg, ok, err := p.gate(raw)
	if err != nil {
		return nil, err
	}
	resp := &models.PAEResponse{BaseResponse: base}
	if !ok {
		return resp, nil
	}

	if mg.ProductResponse == nil || mg.ProductResponse.PAE == nil {
		return nil, criferr.New(criferr.KindProtocol, "CB_PAE_ProductOutput is missing")
	}
	for _, a := range mg.ProductResponse.PAE.Alerts {
		resp.Alerts = append(resp.Alerts, models.Alert{
			AlertCode:          a.AlertCode,
			AlertDescription:   a.AlertDescription,
			EventDateTime:      parseTimestamp(a.EventDateTime),
			CBSubjectCode:      a.CBSubjectCode,
			CBContractCode:     a.CBContractCode,
			ProviderContractNo: a.ProviderContractNo,
			SubjectName:        a.SubjectName,
			Details:            strings.TrimSpace(a.Details),
		})
	}
	resp.TotalCount = len(resp.Alerts)
	return resp, nil
}

// ParsePresentation разбирает ответ презентационного варианта NAEP/MEP.
// base указывает, какой из двух вариантов ожидается: OpNAE или OpME.
func (p *Parser) ParsePresentation(raw string, base models.Operation) (*models.PresentationResponse, error) {
	gateBase, mg, ok, err := p.gate(raw)
	if err != nil {
		return nil, err
	}
	resp := &models.PresentationResponse{BaseResponse: gateBase, Base: base}
	if !ok {
		return resp, nil
	}

	var doc *wirePresentationDoc
	switch base {
	case models.OpNAE:
		if mg.ProductResponse == nil || mg.ProductResponse.NAEP == nil {
			return nil, criferr.New(criferr.KindProtocol, "CB_NAEP_ProductOutput is missing")
		}
		out := mg.ProductResponse.NAEP
		resp.ApplicationCodes = parseAppCodes(out.ApplicationCodes)
		resp.CreditReport = parseCreditReport(out.CreditReport)
		fillSubjectCode(&resp.ApplicationCodes, resp.CreditReport)
		doc = out.Presentation
	case models.OpME:
		if mg.ProductResponse == nil || mg.ProductResponse.MEP == nil {
			return nil, criferr.New(criferr.KindProtocol, "CB_MEP_ProductOutput is missing")
		}
		resp.CreditReport = parseCreditReport(mg.ProductResponse.MEP.CreditReport)
		doc = mg.ProductResponse.MEP.Presentation
	default:
		return nil, criferr.Newf(criferr.KindProtocol, "unsupported presentation base %q", base)
	}

	if doc != nil {
		resp.Culture = codes.PresentationCultureFromCode(doc.Culture)
		resp.Format = doc.FormatType
		data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(doc.Data))
		if err != nil {
			return nil, criferr.Wrap(criferr.KindProtocol, "decode presentation document", err)
		}
		resp.Document = data
	}
	return resp, nil
}

// fillSubjectCode переносит код субъекта бюро из сопоставленного
// субъекта отчёта в коды заявки: на проводе он приходит только внутри
// MatchedSubject.
func fillSubjectCode(ac **models.ApplicationCodes, r *models.CreditReport) {
	if r == nil || r.MatchedSubject == nil || r.MatchedSubject.CBSubjectCode == "" {
		return
	}
	if *ac == nil {
		*ac = &models.ApplicationCodes{}
	}
	(*ac).CBSubjectCode = null.StringFrom(r.MatchedSubject.CBSubjectCode)
}

func parseAppCodes(w *wireAppCodesOut) *models.ApplicationCodes {
	if w == nil {
		return nil
	}
	ac := &models.ApplicationCodes{}
	if w.ProviderContractNo != "" {
		ac.ProviderContractNo = null.StringFrom(w.ProviderContractNo)
	}
	if w.ProviderApplicationNo != "" {
		ac.ProviderApplicationNo = null.StringFrom(w.ProviderApplicationNo)
	}
	if w.CBContractCode != "" {
		ac.CBContractCode = null.StringFrom(w.CBContractCode)
	}
	return ac
}

func parseSnapshot(w *wireAppSnapshot) *models.ApplicationSnapshot {
	if w == nil {
		return nil
	}
	s := &models.ApplicationSnapshot{
		ContractType:         w.ContractType,
		ContractPhase:        codes.ContractPhaseFromCode(w.ContractPhase),
		ContractRequestDate:  nullDate(w.ContractRequestDate),
		FinancedAmount:       nullFloat(w.FinancedAmount),
		CreditLimit:          nullFloat(w.CreditLimit),
		MonthlyPaymentAmount: nullFloat(w.MonthlyPaymentAmount),
	}
	switch w.CancellationFlag {
	case "1":
		s.CancellationFlag = null.BoolFrom(true)
	case "0":
		s.CancellationFlag = null.BoolFrom(false)
	}
	return s
}

func parseCreditReport(w *wireCreditReport) *models.CreditReport {
	if w == nil {
		return nil
	}
	r := &models.CreditReport{}
	if ms := w.MatchedSubject; ms != nil {
		r.MatchedSubject = &models.MatchedSubject{
			CBSubjectCode: ms.CBSubjectCode,
			FlagMatched:   ms.FlagMatched == "1",
		}
	}
	if ch := w.ContractHistory; ch != nil {
		r.ContractHistory = parseContractHistory(ch)
	}
	if fp := w.Footprint; fp != nil {
		r.Footprint = parseFootprint(fp)
	}
	return r
}

func parseContractHistory(w *wireContractHistory) *models.ContractHistory {
	h := &models.ContractHistory{}
	if agg := w.AggregatedData; agg != nil {
		h.AggregatedData = &models.AggregatedData{
			TotalContracts: atoiOr0(agg.TotalContracts),
			TotalProviders: atoiOr0(agg.TotalProviders),
			Currency:       agg.Currency,
		}
	}
	for _, c := range w.NotGrantedContracts {
		h.NotGrantedContracts = append(h.NotGrantedContracts, models.NotGrantedContract{
			CBContractCode:     c.CBContractCode,
			ProviderContractNo: c.ProviderContractNo,
			ContractType:       c.ContractType,
			ContractPhase:      codes.ContractPhaseFromCode(c.ContractPhase),
			LastUpdateDate:     nullDate(c.LastUpdateDate),
		})
	}
	for _, c := range w.GrantedContracts {
		g := models.GrantedContract{
			CBContractCode:     c.CBContractCode,
			ProviderContractNo: c.ProviderContractNo,
			ContractType:       c.ContractType,
			ContractPhase:      codes.ContractPhaseFromCode(c.ContractPhase),
			ProviderName:       c.ProviderName,
			LastUpdateDate:     nullDate(c.LastUpdateDate),
		}
		for _, pmt := range c.PaymentHistory {
			g.PaymentHistory = append(g.PaymentHistory, models.PaymentRecord{
				ReferenceYear:      atoiOr0(pmt.ReferenceYear),
				ReferenceMonth:     atoiOr0(pmt.ReferenceMonth),
				OutstandingBalance: nullFloat(pmt.OutstandingBalance),
				DaysPastDue:        nullInt(pmt.DaysPastDue),
				Status:             pmt.Status,
			})
		}
		h.GrantedContracts = append(h.GrantedContracts, g)
	}
	return h
}

func parseFootprint(w *wireFootprint) *models.Footprint {
	fp := &models.Footprint{}
	if c := w.Counters; c != nil {
		fp.Counters = &models.FootprintCounters{
			Count1Month:   atoiOr0(c.Count1Month),
			Count3Months:  atoiOr0(c.Count3Months),
			Count6Months:  atoiOr0(c.Count6Months),
			Count12Months: atoiOr0(c.Count12Months),
		}
	}
	for _, d := range w.Data {
		fp.Data = append(fp.Data, models.FootprintData{
			EnquiryType:   codes.EnquiryTypeFromCode(d.EnquiryType),
			EnquiryDate:   nullDate(d.EnquiryDate),
			InstituteName: d.InstituteName,
		})
	}
	return fp
}

// Толерантные помощники: мусорные значения атрибутов дают нули и
// невалидные null-обёртки, а не отказ разбора.

func atoiOr0(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func nullInt(s string) null.Int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return null.Int{}
	}
	return null.IntFrom(n)
}

func nullFloat(s string) null.Float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return null.Float64{}
	}
	return null.Float64From(f)
}

func nullDate(s string) null.Time {
	t, err := time.Parse(dateFormat, strings.TrimSpace(s))
	if err != nil {
		return null.Time{}
	}
	return null.TimeFrom(t)
}

func parseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range []string{timestampFormat, time.RFC3339, dateFormat} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
