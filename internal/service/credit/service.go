package credit

import (
	"context"

	"github.com/girnar-group/staffops-backend-go/internal/domain/credit"
	attendanceservice "github.com/girnar-group/staffops-backend-go/internal/service/attendance"
	"github.com/shopspring/decimal"
)

type CreditServiceImpl struct {
	creditRepo credit.CreditRepository
}

func NewCreditService(creditRepo credit.CreditRepository) credit.CreditService {
	return &CreditServiceImpl{creditRepo: creditRepo}
}

func mapPartyToResponse(p credit.Party) credit.PartyResponse {
	return credit.PartyResponse{
		ID:      p.ID,
		Name:    p.Name,
		Phone:   p.Phone,
		Note:    p.Note,
		Balance: p.Balance,
	}
}

func mapTransactionToResponse(t credit.Transaction) credit.TransactionResponse {
	return credit.TransactionResponse{
		ID:        t.ID,
		PartyID:   t.PartyID,
		PartyName: t.PartyName,
		Date:      t.Date.Format("2006-01-02"),
		Amount:    t.Amount,
		Kind:      string(t.Kind),
		Note:      t.Note,
	}
}

func (s *CreditServiceImpl) CreateParty(ctx context.Context, req credit.CreatePartyRequest) (credit.PartyResponse, error) {
	if err := req.Validate(); err != nil {
		return credit.PartyResponse{}, err
	}

	created, err := s.creditRepo.CreateParty(ctx, credit.Party{
		Name:  req.Name,
		Phone: req.Phone,
		Note:  req.Note,
	})
	if err != nil {
		return credit.PartyResponse{}, err
	}

	return mapPartyToResponse(created), nil
}

func (s *CreditServiceImpl) ListParties(ctx context.Context, activeOnly bool) ([]credit.PartyResponse, error) {
	parties, err := s.creditRepo.ListParties(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]credit.PartyResponse, 0, len(parties))
	for _, p := range parties {
		responses = append(responses, mapPartyToResponse(p))
	}
	return responses, nil
}

func (s *CreditServiceImpl) DeactivateParty(ctx context.Context, id string) error {
	return s.creditRepo.DeactivateParty(ctx, id)
}

func (s *CreditServiceImpl) AddTransaction(ctx context.Context, req credit.CreateTransactionRequest) (credit.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return credit.TransactionResponse{}, err
	}

	if _, err := s.creditRepo.GetParty(ctx, req.PartyID); err != nil {
		return credit.TransactionResponse{}, err
	}

	created, err := s.creditRepo.CreateTransaction(ctx, credit.Transaction{
		PartyID: req.PartyID,
		Date:    req.ParsedDate(),
		Amount:  req.Amount,
		Kind:    credit.Kind(req.Kind),
		Note:    req.Note,
	})
	if err != nil {
		return credit.TransactionResponse{}, err
	}

	return mapTransactionToResponse(created), nil
}

func (s *CreditServiceImpl) DeleteTransaction(ctx context.Context, id string) error {
	return s.creditRepo.DeleteTransaction(ctx, id)
}

func (s *CreditServiceImpl) Statement(ctx context.Context, partyID string, month, year int) (credit.StatementResponse, error) {
	party, err := s.creditRepo.GetParty(ctx, partyID)
	if err != nil {
		return credit.StatementResponse{}, err
	}

	from, to := attendanceservice.MonthRange(month, year)
	txns, err := s.creditRepo.ListTransactions(ctx, partyID, from, to)
	if err != nil {
		return credit.StatementResponse{}, err
	}

	// The all-time balance comes from the full history, not just the range.
	all, err := s.creditRepo.ListAllTransactions(ctx, partyID)
	if err != nil {
		return credit.StatementResponse{}, err
	}
	party.Balance = credit.Balance(all)

	resp := credit.StatementResponse{
		Party:        mapPartyToResponse(party),
		From:         from.Format("2006-01-02"),
		To:           to.Format("2006-01-02"),
		Transactions: make([]credit.TransactionResponse, 0, len(txns)),
		TotalCredit:  decimal.Zero,
		TotalPayment: decimal.Zero,
	}
	for _, t := range txns {
		resp.Transactions = append(resp.Transactions, mapTransactionToResponse(t))
		switch t.Kind {
		case credit.KindCredit:
			resp.TotalCredit = resp.TotalCredit.Add(t.Amount)
		case credit.KindPayment:
			resp.TotalPayment = resp.TotalPayment.Add(t.Amount)
		}
	}
	resp.Balance = credit.Balance(txns)

	return resp, nil
}
