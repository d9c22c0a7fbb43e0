package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CampaignInput carries the raw form fields of the creation dialog. Numeric
// fields stay strings until validation so parse failures map to the exact
// user-facing messages.
type CampaignInput struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	InvestmentAmount string `json:"investment_amount"`
	DurationDays     string `json:"duration_days"`
	ROIPercentage    string `json:"roi_percentage"`
}

// NormalizedCampaign is the validated, typed form of CampaignInput.
type NormalizedCampaign struct {
	Name       string
	Investment decimal.Decimal
	Duration   int
	ROI        decimal.Decimal
}

// ValidationError is a user-input rule violation; its message is surfaced
// verbatim.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func newValidationError(msg string) *ValidationError { return &ValidationError{msg: msg} }

// InsufficientBalanceError rejects an investment exceeding the available
// balance.
type InsufficientBalanceError struct {
	Available decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("Insufficient balance. Available: $%s", e.Available.StringFixed(2))
}

// ValidateCampaignInput checks the creation rules in order; the first failure
// wins. A nil balance skips the funds check (the balance query is
// best-effort).
func ValidateCampaignInput(in CampaignInput, balance *decimal.Decimal) (*NormalizedCampaign, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, newValidationError("Campaign name is required")
	}
	investment, err := decimal.NewFromString(strings.TrimSpace(in.InvestmentAmount))
	if err != nil || !investment.IsPositive() {
		return nil, newValidationError("Enter a valid investment amount")
	}
	duration, err := strconv.Atoi(strings.TrimSpace(in.DurationDays))
	if err != nil || duration <= 0 {
		return nil, newValidationError("Enter a valid duration (days)")
	}
	roi, err := decimal.NewFromString(strings.TrimSpace(in.ROIPercentage))
	if err != nil || !roi.IsPositive() {
		return nil, newValidationError("Enter a valid ROI percentage")
	}
	if balance != nil && investment.GreaterThan(*balance) {
		return nil, &InsufficientBalanceError{Available: *balance}
	}
	return &NormalizedCampaign{Name: name, Investment: investment, Duration: duration, ROI: roi}, nil
}

// CampaignPreview holds display-only projections; nothing authoritative.
type CampaignPreview struct {
	DailyROI       decimal.Decimal `json:"daily_roi"`
	ProjectedTotal decimal.Decimal `json:"projected_total"`
}

// PreviewCampaign derives daily ROI and the projected total over the full
// duration. The total is computed from the unrounded daily amount.
func PreviewCampaign(n *NormalizedCampaign) CampaignPreview {
	daily := n.Investment.Mul(n.ROI).Div(decimal.NewFromInt(100))
	return CampaignPreview{
		DailyROI:       daily.Round(2),
		ProjectedTotal: daily.Mul(decimal.NewFromInt(int64(n.Duration))).Round(2),
	}
}
