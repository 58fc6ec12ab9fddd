package booking

import (
	"fmt"
	"strings"
	"time"

	"jojocolaresbeauty/models"
	"jojocolaresbeauty/services/availability"
)

const messageFooter = "Sistema de Agendamento"

// BuildAdminRequestMessage renders the booking-request summary sent to the
// admin number when a new appointment comes in.
func BuildAdminRequestMessage(appt models.Appointment, adminURL string) string {
	var services strings.Builder
	for _, s := range appt.Services {
		fmt.Fprintf(&services, "  • %s (%dmin) - R$ %.2f\n", s.Name, s.Duration, s.Price)
	}

	var b strings.Builder
	b.WriteString("🌸 *SOLICITAÇÃO DE AGENDAMENTO* 🌸\n\n")
	b.WriteString("📋 *DADOS DO CLIENTE*\n")
	fmt.Fprintf(&b, "Nome: %s\n", appt.ClientName)
	fmt.Fprintf(&b, "WhatsApp: %s\n", appt.Phone)
	fmt.Fprintf(&b, "Localização: %s - %s\n\n", appt.City, appt.State)
	b.WriteString("💅 *SERVIÇOS SOLICITADOS*\n")
	b.WriteString(services.String())
	b.WriteString("\n📅 *DATA E HORÁRIO*\n")
	fmt.Fprintf(&b, "Data: %s\n", formatDateBR(appt.Date))
	fmt.Fprintf(&b, "Horário: %s\n", appt.Time)
	fmt.Fprintf(&b, "Duração Total: %dh\n\n", availability.RequiredSlots(appt.TotalDuration))
	b.WriteString("📍 *LOCAL DO ATENDIMENTO*\n")
	if appt.ServiceType == models.ServiceTypeDomicilio {
		fmt.Fprintf(&b, "🚗 Domicílio (+R$ %.2f)\n", models.DomicilioFee)
		b.WriteString("⚠️ *Áreas de atendimento a consultar*\n")
	} else {
		b.WriteString("🏠 Studio\n")
	}
	if appt.HairType != "" {
		fmt.Fprintf(&b, "\n💇 *TIPO DE CABELO*\n%s\n", appt.HairType)
	}
	b.WriteString("\n💳 *FORMA DE PAGAMENTO*\n")
	b.WriteString(paymentLabel(appt.PaymentMethod) + "\n\n")
	b.WriteString("💰 *VALORES*\n")
	fmt.Fprintf(&b, "Serviços: R$ %.2f\n", appt.BasePrice)
	if appt.ServiceType == models.ServiceTypeDomicilio {
		fmt.Fprintf(&b, "Taxa Domicílio: R$ %.2f\n", models.DomicilioFee)
	}
	fmt.Fprintf(&b, "*TOTAL: R$ %.2f*\n\n", appt.TotalPrice)
	if adminURL != "" {
		fmt.Fprintf(&b, "🔗 *Confirmar Agendamento:*\n%s", adminURL)
	}
	return b.String()
}

// BuildClientReceiptMessage renders the receipt sent to the client right after
// the booking request is created.
func BuildClientReceiptMessage(clientName string) string {
	return fmt.Sprintf(
		"Olá %s! 👋\n\nRecebemos sua solicitação de agendamento. ✨\n\n"+
			"Nossa equipe irá analisar a disponibilidade e entrará em contato em breve "+
			"para confirmar todos os detalhes.\n\nObrigado por escolher a Jojo Colares Beauty! 💖",
		clientName,
	)
}

func paymentLabel(method string) string {
	switch method {
	case models.PaymentPix:
		return "💰 PIX"
	case models.PaymentCartao:
		return "💳 Cartão"
	case models.PaymentDinheiro:
		return "💵 Dinheiro"
	default:
		return method
	}
}

var monthsBR = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

func formatDateBR(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%02d de %s de %d", d.Day(), monthsBR[d.Month()-1], d.Year())
}
