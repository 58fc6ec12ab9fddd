package admin

import (
	"fmt"
	"strings"

	"jojocolaresbeauty/models"
)

func serviceNames(services []models.Service) string {
	names := make([]string, 0, len(services))
	for _, s := range services {
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}

func buildConfirmedClientMessage(appt models.Appointment) string {
	return fmt.Sprintf(
		"Olá %s! ✨\n\nSeu agendamento para *%s* no dia *%s* às *%s* foi *CONFIRMADO*! 😍\n\n"+
			"Estamos ansiosos para te atender!\n\nCaso tenha dúvidas, pode responder esta mensagem.",
		appt.ClientName, serviceNames(appt.Services), appt.Date, appt.Time,
	)
}

func buildConfirmedAdminMessage(appt models.Appointment) string {
	return fmt.Sprintf(
		"✅ Agendamento Confirmado!\n\nCliente: %s\nData: %s às %s\nServiços: %s\n\n"+
			"Notificação enviada para a cliente.",
		appt.ClientName, appt.Date, appt.Time, serviceNames(appt.Services),
	)
}

func buildCancelledClientMessage(appt models.Appointment) string {
	return fmt.Sprintf(
		"Olá %s. 😔\n\nInformamos que seu agendamento para *%s* no dia *%s* às *%s* precisou ser "+
			"*CANCELADO*.\n\nCaso queira reagendar ou entender o motivo, por favor entre em contato conosco.",
		appt.ClientName, serviceNames(appt.Services), appt.Date, appt.Time,
	)
}

func buildCancelledAdminMessage(appt models.Appointment) string {
	return fmt.Sprintf(
		"❌ Agendamento Cancelado.\n\nCliente: %s\nData: %s às %s\n\nNotificação enviada para a cliente.",
		appt.ClientName, appt.Date, appt.Time,
	)
}
