package sales

import (
	"context"
	"time"

	"github.com/girnar-group/staffops-backend-go/internal/domain/credit"
	"github.com/girnar-group/staffops-backend-go/internal/domain/sales"
	"github.com/girnar-group/staffops-backend-go/internal/pkg/validator"
	attendanceservice "github.com/girnar-group/staffops-backend-go/internal/service/attendance"
)

type SalesServiceImpl struct {
	salesRepo  sales.SalesRepository
	creditRepo credit.CreditRepository
}

func NewSalesService(
	salesRepo sales.SalesRepository,
	creditRepo credit.CreditRepository,
) sales.SalesService {
	return &SalesServiceImpl{
		salesRepo:  salesRepo,
		creditRepo: creditRepo,
	}
}

func mapSaleToResponse(s sales.Sale) sales.SaleResponse {
	return sales.SaleResponse{
		ID:          s.ID,
		Date:        s.Date.Format("2006-01-02"),
		Fuel:        string(s.Fuel),
		Quantity:    s.Quantity,
		Rate:        s.Rate,
		Amount:      s.Amount,
		PaymentMode: string(s.PaymentMode),
		PartyID:     s.PartyID,
		PartyName:   s.PartyName,
		Note:        s.Note,
	}
}

func (s *SalesServiceImpl) Create(ctx context.Context, req sales.CreateSaleRequest) (sales.SaleResponse, error) {
	if err := req.Validate(); err != nil {
		return sales.SaleResponse{}, err
	}

	if sales.PaymentMode(req.PaymentMode) == sales.ModeCredit {
		if _, err := s.creditRepo.GetParty(ctx, *req.PartyID); err != nil {
			return sales.SaleResponse{}, err
		}
	}

	created, err := s.salesRepo.Create(ctx, sales.Sale{
		Date:        req.ParsedDate(),
		Fuel:        sales.Fuel(req.Fuel),
		Quantity:    req.Quantity,
		Rate:        req.Rate,
		Amount:      req.Quantity.Mul(req.Rate),
		PaymentMode: sales.PaymentMode(req.PaymentMode),
		PartyID:     req.PartyID,
		Note:        req.Note,
	})
	if err != nil {
		return sales.SaleResponse{}, err
	}

	return mapSaleToResponse(created), nil
}

func (s *SalesServiceImpl) Delete(ctx context.Context, id string) error {
	return s.salesRepo.Delete(ctx, id)
}

func (s *SalesServiceImpl) DailySummary(ctx context.Context, date string) (sales.SummaryResponse, error) {
	parsed, ok := validator.IsValidDate(date)
	if !ok {
		return sales.SummaryResponse{}, validator.ValidationErrors{{Field: "date", Message: "must be YYYY-MM-DD"}}
	}
	return s.summary(ctx, parsed, parsed)
}

func (s *SalesServiceImpl) MonthlySummary(ctx context.Context, month, year int) (sales.SummaryResponse, error) {
	from, to := attendanceservice.MonthRange(month, year)
	return s.summary(ctx, from, to)
}

func (s *SalesServiceImpl) summary(ctx context.Context, from, to time.Time) (sales.SummaryResponse, error) {
	rows, err := s.salesRepo.ListByRange(ctx, from, to)
	if err != nil {
		return sales.SummaryResponse{}, err
	}

	totals := sales.Sum(rows)
	resp := sales.SummaryResponse{
		From:         from.Format("2006-01-02"),
		To:           to.Format("2006-01-02"),
		Sales:        make([]sales.SaleResponse, 0, len(rows)),
		TotalAmount:  totals.TotalAmount,
		PetrolAmount: totals.PetrolAmount,
		DieselAmount: totals.DieselAmount,
		CashAmount:   totals.CashAmount,
		CreditAmount: totals.CreditAmount,
	}
	for _, row := range rows {
		resp.Sales = append(resp.Sales, mapSaleToResponse(row))
	}
	return resp, nil
}
