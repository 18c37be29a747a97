package document

import (
	"errors"
	"fmt"

	"sigep-gateway/internal/core/validation"
	"sigep-gateway/internal/core/xmlutil"

	"github.com/beevik/etree"
	"github.com/samber/lo"
)

// ErrInvalidDocument is returned when a PLP document breaks the postagem 2.3 layout.
var ErrInvalidDocument = errors.New("invalid plp document")

// The structs below mirror the correioslog layout. Field names in validation
// messages are the element names.
type plpDocument struct {
	FileType    string         `json:"tipo_arquivo" validate:"eq=Postagem"`
	FileVersion string         `json:"versao_arquivo" validate:"eq=2.3"`
	PostageCard string         `json:"cartao_postagem" validate:"required,numeric,max=10"`
	Sender      plpSender      `json:"remetente"`
	Objects     []postalObject `json:"objeto_postal" validate:"min=1,dive"`
}

type plpSender struct {
	Contract     string `json:"numero_contrato" validate:"required,numeric,max=10"`
	Regional     string `json:"numero_diretoria" validate:"required,numeric,max=3"`
	AdminCode    string `json:"codigo_administrativo" validate:"required,numeric,max=8"`
	Name         string `json:"nome_remetente" validate:"required,max=50"`
	Street       string `json:"logradouro_remetente" validate:"required,max=50"`
	Number       string `json:"numero_remetente" validate:"required,max=6"`
	Complement   string `json:"complemento_remetente" validate:"max=30"`
	Neighborhood string `json:"bairro_remetente" validate:"max=30"`
	Zip          string `json:"cep_remetente" validate:"required,numeric,len=8"`
	City         string `json:"cidade_remetente" validate:"required,max=30"`
	State        string `json:"uf_remetente" validate:"required,len=2,alpha"`
	Phone        string `json:"telefone_remetente" validate:"omitempty,numeric,max=12"`
	Fax          string `json:"fax_remetente" validate:"omitempty,numeric,max=12"`
	Email        string `json:"email_remetente" validate:"max=50"`
}

type postalObject struct {
	TrackingCode       string        `json:"numero_etiqueta" validate:"required,len=13"`
	ServiceCode        string        `json:"codigo_servico_postagem" validate:"required,numeric,max=5"`
	Weight             string        `json:"peso" validate:"required,numeric,max=5"`
	Receiver           plpReceiver   `json:"destinatario"`
	National           plpNational   `json:"nacional"`
	AdditionalServices []string      `json:"servico_adicional" validate:"min=1,dive,numeric,len=3"`
	DeclaredValue      string        `json:"valor_declarado" validate:"omitempty,decimal_br"`
	Dimensions         plpDimensions `json:"dimensao_objeto"`
	Status             string        `json:"status_processamento" validate:"eq=0"`
}

type plpReceiver struct {
	Name       string `json:"nome_destinatario" validate:"required,max=50"`
	Phone      string `json:"telefone_destinatario" validate:"omitempty,numeric,max=12"`
	Mobile     string `json:"celular_destinatario" validate:"omitempty,numeric,max=12"`
	Email      string `json:"email_destinatario" validate:"max=50"`
	Street     string `json:"logradouro_destinatario" validate:"required,max=50"`
	Complement string `json:"complemento_destinatario" validate:"max=30"`
	Number     string `json:"numero_end_destinatario" validate:"required,max=6"`
}

type plpNational struct {
	Neighborhood string `json:"bairro_destinatario" validate:"max=30"`
	City         string `json:"cidade_destinatario" validate:"required,max=30"`
	State        string `json:"uf_destinatario" validate:"required,len=2,alpha"`
	Zip          string `json:"cep_destinatario" validate:"required,numeric,len=8"`
	Invoice      string `json:"numero_nota_fiscal" validate:"omitempty,numeric,max=7"`
}

type plpDimensions struct {
	Type     string `json:"tipo_objeto" validate:"oneof=001 002 003"`
	Height   string `json:"dimensao_altura" validate:"required,numeric"`
	Width    string `json:"dimensao_largura" validate:"required,numeric"`
	Length   string `json:"dimensao_comprimento" validate:"required,numeric"`
	Diameter string `json:"dimensao_diametro" validate:"required,numeric"`
}

// Validate parses doc and checks it against the postagem layout. Every
// failure wraps ErrInvalidDocument.
func Validate(doc string) error {
	parsed, err := xmlutil.ReadDocument([]byte(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	root := parsed.Root()
	if root.Tag != "correioslog" {
		return fmt.Errorf("%w: unexpected root element %q", ErrInvalidDocument, root.Tag)
	}

	d := readDocument(root)
	if err := validation.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	for i, obj := range d.Objects {
		if !lo.Contains(obj.AdditionalServices, ServiceRegistered) {
			return fmt.Errorf("%w: objeto_postal[%d].servico_adicional must include %s",
				ErrInvalidDocument, i, ServiceRegistered)
		}
	}
	return nil
}

func readDocument(root *etree.Element) plpDocument {
	text := xmlutil.ChildText

	sender := root.SelectElement("remetente")
	d := plpDocument{
		FileType:    text(root, "tipo_arquivo"),
		FileVersion: text(root, "versao_arquivo"),
		PostageCard: text(root.SelectElement("plp"), "cartao_postagem"),
		Sender: plpSender{
			Contract:     text(sender, "numero_contrato"),
			Regional:     text(sender, "numero_diretoria"),
			AdminCode:    text(sender, "codigo_administrativo"),
			Name:         text(sender, "nome_remetente"),
			Street:       text(sender, "logradouro_remetente"),
			Number:       text(sender, "numero_remetente"),
			Complement:   text(sender, "complemento_remetente"),
			Neighborhood: text(sender, "bairro_remetente"),
			Zip:          text(sender, "cep_remetente"),
			City:         text(sender, "cidade_remetente"),
			State:        text(sender, "uf_remetente"),
			Phone:        text(sender, "telefone_remetente"),
			Fax:          text(sender, "fax_remetente"),
			Email:        text(sender, "email_remetente"),
		},
	}

	for _, el := range root.SelectElements("objeto_postal") {
		receiver := el.SelectElement("destinatario")
		national := el.SelectElement("nacional")
		dims := el.SelectElement("dimensao_objeto")

		obj := postalObject{
			TrackingCode: text(el, "numero_etiqueta"),
			ServiceCode:  text(el, "codigo_servico_postagem"),
			Weight:       text(el, "peso"),
			Receiver: plpReceiver{
				Name:       text(receiver, "nome_destinatario"),
				Phone:      text(receiver, "telefone_destinatario"),
				Mobile:     text(receiver, "celular_destinatario"),
				Email:      text(receiver, "email_destinatario"),
				Street:     text(receiver, "logradouro_destinatario"),
				Complement: text(receiver, "complemento_destinatario"),
				Number:     text(receiver, "numero_end_destinatario"),
			},
			National: plpNational{
				Neighborhood: text(national, "bairro_destinatario"),
				City:         text(national, "cidade_destinatario"),
				State:        text(national, "uf_destinatario"),
				Zip:          text(national, "cep_destinatario"),
				Invoice:      text(national, "numero_nota_fiscal"),
			},
			Dimensions: plpDimensions{
				Type:     text(dims, "tipo_objeto"),
				Height:   text(dims, "dimensao_altura"),
				Width:    text(dims, "dimensao_largura"),
				Length:   text(dims, "dimensao_comprimento"),
				Diameter: text(dims, "dimensao_diametro"),
			},
			Status: text(el, "status_processamento"),
		}

		if extra := el.SelectElement("servico_adicional"); extra != nil {
			for _, code := range extra.SelectElements("codigo_servico_adicional") {
				obj.AdditionalServices = append(obj.AdditionalServices, code.Text())
			}
			obj.DeclaredValue = text(extra, "valor_declarado")
		}

		d.Objects = append(d.Objects, obj)
	}

	return d
}
