package bot

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"barberbook/internal/domain"
	"barberbook/internal/modules/booking"
	"barberbook/internal/repository"
)

// Service runs the WhatsApp booking dialogue. It is stateless between
// calls: all conversation state lives in the SessionStore, so every
// webhook invocation is load → handle → persist → reply.
type Service struct {
	shops     ShopRepository
	services  ServiceRepository
	barbers   BarberRepository
	customers CustomerRepository
	sessions  SessionStore
	slots     SlotFinder
	booker    AppointmentBooker
	messenger Messenger
	log       *slog.Logger

	now func() time.Time
}

func NewService(
	shops ShopRepository,
	services ServiceRepository,
	barbers BarberRepository,
	customers CustomerRepository,
	sessions SessionStore,
	slots SlotFinder,
	booker AppointmentBooker,
	messenger Messenger,
	log *slog.Logger,
) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		shops:     shops,
		services:  services,
		barbers:   barbers,
		customers: customers,
		sessions:  sessions,
		slots:     slots,
		booker:    booker,
		messenger: messenger,
		log:       log,
		now:       time.Now,
	}
}

// HandleMessage processes one inbound message end to end: resolve the
// shop, refresh the loyalty record, run the state machine, persist the
// session and send the reply. Outbound delivery failures are logged
// but never fail the call; the persisted state is authoritative.
func (s *Service) HandleMessage(ctx context.Context, req WebhookRequest) (*Result, error) {
	shop, err := s.shops.GetByInstanceID(ctx, req.InstanceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}

	phone := digitsOnly(req.Sender)
	s.touchCustomer(ctx, shop.ID, phone, req.SenderName)

	sess, err := s.sessions.LoadOrCreate(ctx, shop.ID, phone)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(req.Message)

	// The cancel command wins over every state, including human_support.
	if isCancel(text) {
		if err := s.sessions.Reset(ctx, shop.ID, phone); err != nil {
			return nil, err
		}
		s.send(ctx, shop, req.Sender, replyCancelled)
		return &Result{Cancelled: true, Step: domain.StepWelcome, Reply: replyCancelled}, nil
	}

	next, temp, reply, err := s.dispatch(ctx, shop, sess, text)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Update(ctx, shop.ID, phone, next, temp); err != nil {
		return nil, err
	}

	s.send(ctx, shop, req.Sender, reply)
	return &Result{Step: next, Reply: reply}, nil
}

func (s *Service) dispatch(ctx context.Context, shop *domain.Shop, sess *domain.ConversationSession, text string) (domain.Step, map[string]any, string, error) {
	switch sess.Step {
	case domain.StepMenu:
		return s.handleMenu(ctx, shop, sess, text)
	case domain.StepSelectService:
		return s.handleSelectService(ctx, shop, sess, text)
	case domain.StepSelectBarber:
		return s.handleSelectBarber(ctx, shop, sess, text)
	case domain.StepSelectDate:
		return s.handleSelectDate(ctx, shop, sess, text)
	case domain.StepSelectTime:
		return s.handleSelectTime(ctx, shop, sess, text)
	case domain.StepHumanSupport:
		return domain.StepHumanSupport, sess.TempData, replyHumanAck, nil
	default:
		// welcome, confirmed, or anything unknown: greet and open the menu
		return domain.StepMenu, map[string]any{}, greetingMessage(shop.Name), nil
	}
}

func (s *Service) handleMenu(ctx context.Context, shop *domain.Shop, sess *domain.ConversationSession, text string) (domain.Step, map[string]any, string, error) {
	switch text {
	case "1":
		services, err := s.services.ListActive(ctx, shop.ID)
		if err != nil {
			return "", nil, "", err
		}
		if len(services) == 0 {
			return domain.StepMenu, sess.TempData, replyNoServices, nil
		}
		return domain.StepSelectService, sess.TempData, serviceListMessage(services), nil
	case "2":
		return domain.StepHumanSupport, sess.TempData, replyHumanIntro, nil
	default:
		return domain.StepMenu, sess.TempData, replyMenuInvalid, nil
	}
}

func (s *Service) handleSelectService(ctx context.Context, shop *domain.Shop, sess *domain.ConversationSession, text string) (domain.Step, map[string]any, string, error) {
	services, err := s.services.ListActive(ctx, shop.ID)
	if err != nil {
		return "", nil, "", err
	}
	if len(services) == 0 {
		return domain.StepMenu, sess.TempData, replyNoServices, nil
	}

	n, ok := parseIndex(text)
	if !ok || n < 1 || n > len(services) {
		return domain.StepSelectService, sess.TempData, invalidChoiceMessage(len(services)), nil
	}
	svc := services[n-1]

	barbers, err := s.barbers.ListActive(ctx, shop.ID)
	if err != nil {
		return "", nil, "", err
	}
	if len(barbers) == 0 {
		return domain.StepMenu, sess.TempData, replyNoBarbers, nil
	}

	temp := cloneTemp(sess.TempData)
	temp["service_id"] = svc.ID
	temp["service_name"] = svc.Name
	temp["service_price"] = svc.Price
	temp["service_duration"] = svc.DurationMinutes

	return domain.StepSelectBarber, temp, barberListMessage(svc.Name, barbers), nil
}

func (s *Service) handleSelectBarber(ctx context.Context, shop *domain.Shop, sess *domain.ConversationSession, text string) (domain.Step, map[string]any, string, error) {
	barbers, err := s.barbers.ListActive(ctx, shop.ID)
	if err != nil {
		return "", nil, "", err
	}

	n, ok := parseIndex(text)
	if !ok || n < 1 || n > len(barbers) {
		return domain.StepSelectBarber, sess.TempData, invalidChoiceMessage(len(barbers)), nil
	}
	barber := barbers[n-1]

	temp := cloneTemp(sess.TempData)
	temp["barber_id"] = barber.ID
	temp["barber_name"] = barber.Name

	return domain.StepSelectDate, temp, replyAskDate, nil
}

func (s *Service) handleSelectDate(ctx context.Context, shop *domain.Shop, sess *domain.ConversationSession, text string) (domain.Step, map[string]any, string, error) {
	date, err := parseDate(text, s.now())
	if err != nil {
		return domain.StepSelectDate, sess.TempData, replyBadDate, nil
	}

	barberID := tempInt64(sess.TempData, "barber_id")
	barberName := tempString(sess.TempData, "barber_name")
	duration := int(tempInt64(sess.TempData, "service_duration"))

	slots, err := s.slots.Slots(ctx, shop.ID, barberID, date, duration)
	if err != nil {
		return "", nil, "", err
	}
	if len(slots) == 0 {
		return domain.StepSelectDate, sess.TempData, noSlotsMessage(barberName, formatDateBR(date)), nil
	}

	temp := cloneTemp(sess.TempData)
	temp["date"] = date.Format("2006-01-02")
	temp["slots"] = slots

	return domain.StepSelectTime, temp, slotListMessage(barberName, formatDateBR(date), slots), nil
}

func (s *Service) handleSelectTime(ctx context.Context, shop *domain.Shop, sess *domain.ConversationSession, text string) (domain.Step, map[string]any, string, error) {
	slots := tempStrings(sess.TempData, "slots")

	n, ok := parseIndex(text)
	if !ok || n < 1 || n > len(slots) {
		return domain.StepSelectTime, sess.TempData, invalidChoiceMessage(len(slots)), nil
	}
	slot := slots[n-1]

	date, err := time.ParseInLocation("2006-01-02", tempString(sess.TempData, "date"), s.now().Location())
	if err != nil {
		s.log.Error("bot: corrupted session date", "shop_id", shop.ID, "phone", sess.Phone, "err", err)
		return domain.StepMenu, map[string]any{}, replyBookingFailed, nil
	}

	appt, err := s.booker.Create(ctx, booking.CreateRequest{
		ShopID:    shop.ID,
		BarberID:  tempInt64(sess.TempData, "barber_id"),
		ServiceID: tempInt64(sess.TempData, "service_id"),
		Date:      date,
		Time:      slot,
		Phone:     sess.Phone,
	})
	if err != nil {
		// No retry here: the customer restarts from the menu instead of
		// the session getting stuck on a failing insert.
		s.log.Error("bot: appointment insert failed", "shop_id", shop.ID, "phone", sess.Phone, "err", err)
		return domain.StepMenu, map[string]any{}, replyBookingFailed, nil
	}

	reply := confirmationMessage(
		tempString(sess.TempData, "service_name"),
		tempString(sess.TempData, "barber_name"),
		formatDateBR(date),
		slot,
		appt.FinalPrice,
		appt.Code,
	)
	return domain.StepConfirmed, map[string]any{}, reply, nil
}

// touchCustomer creates the loyalty record on first contact and adopts
// the sender's display name when the stored one is just a placeholder.
// A genuinely-set name is never overwritten. Failures only log: loyalty
// must never break the conversation.
func (s *Service) touchCustomer(ctx context.Context, shopID int64, phone, senderName string) {
	senderName = strings.TrimSpace(senderName)
	if senderName == "" {
		return
	}

	c, err := s.customers.GetByPhone(ctx, shopID, phone)
	if err != nil {
		s.log.Warn("bot: loyalty lookup failed", "shop_id", shopID, "phone", phone, "err", err)
		return
	}
	if c == nil {
		err = s.customers.Create(ctx, &domain.Customer{ShopID: shopID, Phone: phone, Name: senderName})
	} else if isPlaceholderName(c.Name) && c.Name != senderName {
		err = s.customers.UpdateName(ctx, c.ID, senderName)
	}
	if err != nil {
		s.log.Warn("bot: loyalty write failed", "shop_id", shopID, "phone", phone, "err", err)
	}
}

func (s *Service) send(ctx context.Context, shop *domain.Shop, phone, text string) {
	if err := s.messenger.SendText(ctx, shop.InstanceID, shop.APIToken, phone, text); err != nil {
		s.log.Warn("bot: outbound send failed", "shop_id", shop.ID, "phone", phone, "err", err)
	}
}

func isCancel(trimmed string) bool {
	return trimmed == "0" || strings.EqualFold(trimmed, "cancelar")
}

func isPlaceholderName(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "cliente", "null":
		return true
	}
	return false
}

func parseIndex(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func cloneTemp(m map[string]any) map[string]any {
	out := make(map[string]any, len(m)+4)
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Session temp data goes through a JSON round-trip in the store, so
// numbers can come back as float64 and string slices as []any.

func tempInt64(m map[string]any, key string) int64 {
	switch v := m[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

func tempString(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func tempStrings(m map[string]any, key string) []string {
	switch v := m[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
