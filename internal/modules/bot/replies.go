package bot

import (
	"fmt"
	"strings"

	"barberbook/internal/domain"
)

// Every reply is self-contained: whatever message the customer missed,
// the next one always carries the full instructions for its step.

const (
	replyCancelled = "Atendimento cancelado. Quando quiser recomeçar, é só mandar uma mensagem. 👋"

	replyMenuInvalid = "Não entendi. 🤔\n\n1 - Agendar horário\n2 - Falar com um atendente\n\nDigite o número da opção desejada."

	replyNoServices = "Desculpe, não temos serviços disponíveis para agendamento no momento. 😔\n\nDigite 1 para tentar novamente ou 2 para falar com um atendente."

	replyNoBarbers = "Desculpe, estamos sem profissionais disponíveis no momento. 😔\n\nDigite 1 para tentar novamente ou 2 para falar com um atendente."

	replyHumanIntro = "Certo! Um atendente vai falar com você em instantes. 🙋\n\nDigite 0 para voltar ao menu."

	replyHumanAck = "Sua mensagem foi registrada. Um atendente responderá em breve.\n\nDigite 0 para voltar ao menu."

	replyAskDate = "Agora me diga a data do agendamento. Pode ser:\n• hoje\n• amanhã\n• uma data como 25/12"

	replyBadDate = "Não consegui entender a data. 😅 Tente algo como:\n• hoje\n• amanhã\n• 25/12"

	replyBookingFailed = "Ops, não consegui concluir seu agendamento. 😔\n\nDigite 1 para tentar novamente ou 2 para falar com um atendente."
)

func greetingMessage(shopName string) string {
	return fmt.Sprintf(
		"Olá! 👋 Bem-vindo(a) à %s!\n\n1 - Agendar horário\n2 - Falar com um atendente\n\nDigite o número da opção desejada. A qualquer momento, digite 0 para cancelar.",
		shopName,
	)
}

func serviceListMessage(services []domain.Service) string {
	var b strings.Builder
	b.WriteString("Ótimo! Escolha o serviço: ✂️\n\n")
	for i, svc := range services {
		fmt.Fprintf(&b, "%d - %s (R$ %s • %dmin)\n", i+1, svc.Name, money(svc.Price), svc.DurationMinutes)
	}
	b.WriteString("\nDigite o número do serviço.")
	return b.String()
}

func barberListMessage(serviceName string, barbers []domain.Barber) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s selecionado! Agora escolha o profissional: 💈\n\n", serviceName)
	for i, barber := range barbers {
		fmt.Fprintf(&b, "%d - %s\n", i+1, barber.Name)
	}
	b.WriteString("\nDigite o número do profissional.")
	return b.String()
}

func slotListMessage(barberName, dateBR string, slots []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Horários livres de %s em %s: ⏰\n\n", barberName, dateBR)
	for i, slot := range slots {
		fmt.Fprintf(&b, "%d - %s\n", i+1, slot)
	}
	b.WriteString("\nDigite o número do horário.")
	return b.String()
}

func noSlotsMessage(barberName, dateBR string) string {
	return fmt.Sprintf("Poxa, %s não tem horários livres em %s. 😕 Tente outra data:\n• hoje\n• amanhã\n• uma data como 25/12", barberName, dateBR)
}

func invalidChoiceMessage(max int) string {
	return fmt.Sprintf("Opção inválida. Digite um número entre 1 e %d.", max)
}

func confirmationMessage(serviceName, barberName, dateBR, slot string, price float64, code string) string {
	return fmt.Sprintf(
		"Agendamento confirmado! ✅\n\n✂️ Serviço: %s\n💈 Profissional: %s\n📅 Data: %s\n⏰ Horário: %s\n💰 Valor: R$ %s\n\nCódigo: %s\n\nAté lá! Para um novo agendamento, é só mandar mensagem.",
		serviceName, barberName, dateBR, slot, money(price), code,
	)
}

// money renders prices the Brazilian way: comma as decimal separator.
func money(v float64) string {
	return strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}
