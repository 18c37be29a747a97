package adapters

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"sigep-gateway/internal/core/soap"
	"sigep-gateway/internal/core/xmlutil"
	"sigep-gateway/internal/features/tracking/domain"

	"github.com/beevik/etree"
)

// CourierCorreios is the courier name served by SROAdapter.
const CourierCorreios = "correios"

// SRO request constants.
const (
	SRONamespace = "http://resource.webservice.correios.com.br/"

	queryTypeList      = "L"
	resultLastEvent    = "U"
	resultAllEvents    = "T"
	languagePortuguese = "101"
)

// SROAdapter looks up tracking events on the Correios Rastro service.
type SROAdapter struct {
	user     string
	password string
	client   *soap.Client
}

// NewSROAdapter creates an adapter for the Rastro endpoint.
func NewSROAdapter(user, password, endpoint string, httpClient *http.Client) *SROAdapter {
	return &SROAdapter{
		user:     user,
		password: password,
		client: soap.NewClient(soap.Config{
			Name:      "rastro",
			Endpoint:  endpoint,
			Namespace: SRONamespace,
			Prefix:    "res",
		}, httpClient),
	}
}

// Lookup calls buscaEventos for a single code. Only the first returned object
// is read.
func (a *SROAdapter) Lookup(ctx context.Context, trackingCode string, lastEventOnly bool) (*domain.TrackingResult, error) {
	result := resultAllEvents
	if lastEventOnly {
		result = resultLastEvent
	}

	resp, err := a.client.Call(ctx, "buscaEventos",
		soap.P("usuario", a.user),
		soap.P("senha", a.password),
		soap.P("tipo", queryTypeList),
		soap.P("resultado", result),
		soap.P("lingua", languagePortuguese),
		soap.P("objetos", trackingCode),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s: %w", trackingCode, err)
	}

	var obj *etree.Element
	if ret := resp.SelectElement("return"); ret != nil {
		obj = ret.SelectElement("objeto")
	}
	if obj == nil {
		return nil, fmt.Errorf("failed to look up %s: response has no objeto", trackingCode)
	}

	return parseObject(obj, trackingCode), nil
}

// SupportsCourier returns true if this adapter supports correios.
func (a *SROAdapter) SupportsCourier(courierName string) bool {
	return courierName == CourierCorreios
}

func parseObject(obj *etree.Element, requested string) *domain.TrackingResult {
	code := xmlutil.ChildText(obj, "numero")
	if code == "" {
		code = requested
	}

	if erro := obj.SelectElement("erro"); erro != nil {
		return &domain.TrackingResult{
			Found:        false,
			TrackingCode: code,
			ErrorMessage: strings.TrimSpace(erro.Text()),
		}
	}

	r := &domain.TrackingResult{
		Found:        true,
		TrackingCode: code,
		Abbreviation: xmlutil.ChildText(obj, "sigla"),
		Name:         xmlutil.ChildText(obj, "nome"),
		Category:     xmlutil.ChildText(obj, "categoria"),
	}

	for _, ev := range obj.SelectElements("evento") {
		r.Events = append(r.Events, parseEvent(ev))
	}
	if latest := r.LatestEvent(); latest != nil {
		r.MostRecentStatus = latest.Description
	}

	return r
}

func parseEvent(ev *etree.Element) domain.TrackingEvent {
	e := domain.TrackingEvent{
		Type:        xmlutil.ChildText(ev, "tipo"),
		Status:      xmlutil.ChildText(ev, "status"),
		Date:        xmlutil.ChildText(ev, "data"),
		Hour:        xmlutil.ChildText(ev, "hora"),
		Description: xmlutil.ChildText(ev, "descricao"),
		Location:    xmlutil.ChildText(ev, "local"),
		Code:        xmlutil.ChildText(ev, "codigo"),
		City:        xmlutil.ChildText(ev, "cidade"),
		State:       xmlutil.ChildText(ev, "uf"),
	}

	if t, err := time.ParseInLocation(domain.EventTimeLayout, e.Date+" "+e.Hour, domain.Brasilia); err == nil {
		e.OccurredAt = t
	}

	if dest := ev.SelectElement("destino"); dest != nil {
		e.Destination = &domain.Destination{
			Location:     xmlutil.ChildText(dest, "local"),
			Code:         xmlutil.ChildText(dest, "codigo"),
			City:         xmlutil.ChildText(dest, "cidade"),
			Neighborhood: xmlutil.ChildText(dest, "bairro"),
			State:        xmlutil.ChildText(dest, "uf"),
		}
	}

	return e
}
