package creditcardservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/pkg/validate"
)

//go:generate mockgen -source=creditcardservice.go -destination=mock_creditcardservice.go -package=creditcardservice

var (
	ErrInvalidCard  = errors.New("invalid card number")
	ErrCardExpired  = errors.New("card expired")
	ErrCardNotFound = errors.New("credit card not found")
	ErrForbidden    = errors.New("credit card belongs to another user")
	ErrCardInUse    = errors.New("credit card is used by an active order")
)

type Repo interface {
	Create(ctx context.Context, card *domain.CreditCard) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.CreditCard, error)
	ListByOwner(ctx context.Context, ownerID int) ([]domain.CreditCard, error)
	Promote(ctx context.Context, ownerID int, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	IsInUse(ctx context.Context, id uuid.UUID, states []domain.OrderState) (bool, error)
}

type Service struct {
	repo Repo
	now  func() time.Time
}

func New(repo Repo) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateInput struct {
	Number          string
	Title           string
	ExpirationMonth int
	ExpirationYear  int
}

// Create keeps a token and the last digits of the card, never its number.
// The first card of a user becomes the main one.
func (s *Service) Create(ctx context.Context, userID int, in CreateInput) (*domain.CreditCard, error) {
	if !validate.IsCardNumber(in.Number) {
		return nil, ErrInvalidCard
	}
	if validate.IsCardExpired(in.ExpirationMonth, in.ExpirationYear, s.now()) {
		return nil, ErrCardExpired
	}
	cards, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	number := validate.NormalizeCardNumber(in.Number)
	card := &domain.CreditCard{
		ID:              uuid.New(),
		OwnerID:         userID,
		Token:           "card_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		Title:           strings.TrimSpace(in.Title),
		Brand:           validate.CardBrand(number),
		LastNumbers:     number[len(number)-4:],
		ExpirationMonth: in.ExpirationMonth,
		ExpirationYear:  in.ExpirationYear,
		IsMain:          len(cards) == 0,
	}
	if err := s.repo.Create(ctx, card); err != nil {
		zap.L().Error("can't save credit card", zap.Error(err))
		return nil, err
	}
	return card, nil
}

func (s *Service) List(ctx context.Context, userID int) ([]domain.CreditCard, error) {
	return s.repo.ListByOwner(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID int, id uuid.UUID) (*domain.CreditCard, error) {
	card, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}
	if card.OwnerID != userID {
		return nil, ErrForbidden
	}
	return card, nil
}

func (s *Service) Promote(ctx context.Context, userID int, id uuid.UUID) (*domain.CreditCard, error) {
	card, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if card.IsMain {
		return card, nil
	}
	if err := s.repo.Promote(ctx, userID, id); err != nil {
		return nil, err
	}
	card.IsMain = true
	return card, nil
}

// Delete refuses cards an order still has to debit. When the main card goes
// away the most recent remaining card takes its place.
func (s *Service) Delete(ctx context.Context, userID int, id uuid.UUID) error {
	card, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	inUse, err := s.repo.IsInUse(ctx, id, domain.PayableOrderStates)
	if err != nil {
		return err
	}
	if inUse {
		return ErrCardInUse
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	zap.L().Info("credit card deleted", zap.String("card_id", id.String()))
	if !card.IsMain {
		return nil
	}

	remaining, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return err
	}
	if len(remaining) == 0 {
		return nil
	}
	return s.repo.Promote(ctx, userID, remaining[0].ID)
}
